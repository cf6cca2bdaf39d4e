// Package api provides http responses and middlewares shared by handlers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// WriteOK writes json body with the given status code.
func WriteOK(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) // nolint
}

// WriteError writes error json body with the given status code.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteOK(w, status, Error{Error: message})
}

// WriteInternalError logs the real error and writes an opaque 500 to the
// client.
func WriteInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	GetLogger(ctx).Errorf(format, args...)
	WriteError(w, http.StatusInternalServerError, "internal error")
}

// GetLogger returns logger entry bound to request, falls back to the default
// one outside of a request scope.
func GetLogger(ctx context.Context) *logrus.Entry {
	if l, ok := ctx.Value(logCtxKey{}).(*logrus.Entry); ok {
		return l
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
