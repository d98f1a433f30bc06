package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kairos-net/kairos/internal/service"
)

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	body, _ := json.Marshal(v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	requestLog(ctx).Error(fmt.Sprintf(format, args...))

	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeServiceError maps the service's failure kinds onto http statuses.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, format string, args ...interface{}) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "post not found")
	case errors.Is(err, service.ErrNotPostOwner):
		writeError(w, http.StatusForbidden, "post is not owned by account")
	case errors.Is(err, service.ErrInsufficientFunds):
		writeError(w, http.StatusPaymentRequired, "insufficient funds")
	default:
		writeInternalErrorf(ctx, w, format, args...)
	}
}
