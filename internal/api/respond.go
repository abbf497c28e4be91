package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/store"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	message := apperrors.UserMessage(err)
	if code == "" {
		// Uncoded errors are unexpected; never leak their internals.
		code, message = apperrors.ErrCodeInternal, "internal error"
	}

	status := httpStatus(code)
	if status >= 500 {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	s.writeJSON(w, status, map[string]map[string]string{
		"error": {"code": string(code), "message": message},
	})
}

// storeError converts store sentinels into coded errors carrying the
// graph name. Other errors pass through unchanged.
func storeError(err error, name string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperrors.New(apperrors.ErrCodeGraphNotFound, "graph %q not found", name)
	case errors.Is(err, store.ErrExists):
		return apperrors.New(apperrors.ErrCodeGraphExists, "graph %q already exists", name)
	}
	return err
}

func httpStatus(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidGraph, apperrors.ErrCodeInvalidName,
		apperrors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeGraphNotFound,
		apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeGraphExists:
		return http.StatusConflict
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
