package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertSecurityHeaders(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", h.Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", h.Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := serve(t, handler, "/", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assertSecurityHeaders(t, rec.Header())
}

func TestSecurityHeaders_AppliedToOpsRoutes(t *testing.T) {
	s := NewServer(Options{APIKey: testAPIKey}, stubHealth{ok: true}, stubStats{})

	for _, path := range []string{PathHealthz, PathVersion, PathDebug + PathDebugCache} {
		t.Run(path, func(t *testing.T) {
			// the debug request carries no key, so headers must survive a 401 too
			rec := serve(t, s.Handler(), path, nil)
			assertSecurityHeaders(t, rec.Header())
		})
	}
}
