package middlewares

import (
	"context"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/utils"
	"net/http"
)

type contextKey string

const ContextRequestIDKey contextKey = "request_id"

// RequestID tags every request with an identifier, honoring one supplied by
// the caller.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		ctx := context.WithValue(r.Context(), ContextRequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
