package httpx

import (
	"errors"
	"net/http"

	"safe-rescue/safe-common/errs"

	"go.uber.org/zap"
)

// StatusFor maps an error kind to its HTTP status. This is the only place where
// SAFE-Rescue services decide status codes for failures.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument), errors.Is(err, errs.ErrRemoteNotFound):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteError logs err and writes the error envelope. Internal errors are not echoed
// to the client.
func WriteError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(op+" failed", zap.Error(err))
		msg = "internal server error"
	} else {
		logger.Warn(op+" rejected", zap.Int("status", status), zap.Error(err))
	}
	WriteJSON(w, status, Fail(msg))
}
