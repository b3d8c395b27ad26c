package middlewares

import (
	"crypto/subtle"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/exceptions"
	"debtflow-service/internal/pkg/utils"
	"net/http"
)

// APIKeyAuth guards every back-office endpoint with a static service key.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.InternalConfig.App.APIKey)) != 1 {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyInvalid(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
