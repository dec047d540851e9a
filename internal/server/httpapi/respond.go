package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/edutube/internal/common"
)

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error(r.Context(), "failed to encode JSON response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	s.respondJSON(w, r, statusCode, messageResponse{Message: message})
}

// respondFailure maps err onto a status and message. upstreamStatus is used
// for provider failures, so search routes can answer 502 while storage
// failures stay 500. fallback is shown for errors without a public message.
func (s *Server) respondFailure(w http.ResponseWriter, r *http.Request, err error, upstreamStatus int, fallback string) {
	status, message := classify(err, upstreamStatus, fallback)

	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "status", status, "error", err)
	}
	s.respondError(w, r, status, message)
}

func classify(err error, upstreamStatus int, fallback string) (int, string) {
	var reqErr *common.RequestError
	var upErr *common.UpstreamError

	switch {
	case errors.As(err, &reqErr):
		return http.StatusBadRequest, reqErr.Message
	case errors.Is(err, common.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, common.ErrConfiguration):
		return http.StatusInternalServerError, err.Error()
	case errors.As(err, &upErr):
		return upstreamStatus, upErr.Message
	default:
		return http.StatusInternalServerError, fallback
	}
}

// decodeJSON reads a JSON body of at most maxBodyBytes into dst. On failure
// it writes the error response and returns false.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, r, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		s.respondError(w, r, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
