// Package api is the CLI's typed client for the edutube HTTP API.
//
// Every endpoint has one method. Non-2xx answers come back as *Error
// carrying the server's message; transport failures wrap ErrUnavailable.
// Match with errors.Is / errors.As.
package api
