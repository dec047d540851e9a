// Package cli provides the interactive edutube command-line client.
//
// It wires configuration and the HTTP API client into a REPL that browses
// the home sections, searches, and runs the full direct-upload flow:
// request a presigned URL, PUT the file straight to object storage, then
// confirm the upload so it shows up in "my videos".
//
// A background watcher probes /health and shows online/offline in the
// prompt. The REPL is started via App.Run(ctx), which blocks until the user
// exits.
package cli
