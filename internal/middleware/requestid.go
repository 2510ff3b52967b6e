package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/alanjohnck/porter-proxy/pkg/logger"
)

// RequestIDHeader is the header carrying the request ID
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, stores it
// in the request context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		r = r.WithContext(logger.ContextWithRequestID(r.Context(), requestID))
		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r)
	})
}
