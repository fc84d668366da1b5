package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})
	h := CORS(next)

	tests := []struct {
		name       string
		method     string
		path       string
		wantCode   int
		wantCalled bool
	}{
		{name: "preflight on save path", method: http.MethodOptions, path: "/save-tasks", wantCode: http.StatusOK},
		{name: "preflight on any path", method: http.MethodOptions, path: "/some/where", wantCode: http.StatusOK},
		{name: "other methods pass through", method: http.MethodPost, path: "/save-tasks", wantCode: http.StatusTeapot, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
			if !tt.wantCalled {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}
