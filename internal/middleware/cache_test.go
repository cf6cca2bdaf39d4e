package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached(t *testing.T) {
	calls := 0

	handler := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fmt.Sprintf(`{"count":%d}`, calls))) // nolint
	})

	r, err := http.NewRequest(http.MethodGet, "/count", nil)
	require.NoError(t, err)
	r.RequestURI = "/count"

	w := httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, `{"count":1}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	// second hit within the ttl is served from the cache
	w = httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, `{"count":1}`, w.Body.String())
	assert.Equal(t, 1, calls)

	// a different uri misses
	r2, err := http.NewRequest(http.MethodGet, "/count?user=2", nil)
	require.NoError(t, err)
	r2.RequestURI = "/count?user=2"

	w = httptest.NewRecorder()
	handler(w, r2)
	assert.Equal(t, `{"count":2}`, w.Body.String())
}

func TestCached_skipsErrors(t *testing.T) {
	calls := 0

	handler := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	r, err := http.NewRequest(http.MethodGet, "/fail", nil)
	require.NoError(t, err)
	r.RequestURI = "/fail"

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}

	// error responses are not cached
	assert.Equal(t, 2, calls)
}
