package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/wat-net/hermes/internal/api"
)

type userCtxKey struct{}

// authMiddleware verifies the bearer token and puts the caller's user id into
// the request context.
func (s server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			api.WriteError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		userID, err := s.t.Verify(token)
		if err != nil {
			api.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey{}, userID)))
	})
}

func requestUser(r *http.Request) string {
	id, _ := r.Context().Value(userCtxKey{}).(string)
	return id
}
