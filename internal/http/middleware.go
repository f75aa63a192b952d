package http

import (
	"net/http"

	"github.com/google/uuid"
)

func (a *API) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		a.Logger.DebugContext(r.Context(), "request received",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
		)
		next.ServeHTTP(w, r)
	})
}
