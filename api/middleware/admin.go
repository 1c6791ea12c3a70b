package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/biteaffair/storefront-backend/api/responses"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

// AdminTokenHeader authenticates the out-of-band order reviewer.
const AdminTokenHeader = "X-BA-Admin-Token"

// AdminAuth guards the admin order endpoints with the shared token.
func AdminAuth(token string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(AdminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin token required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
