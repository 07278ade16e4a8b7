package http

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/utils"
)

const authRealm = `Basic realm="work-notes", charset="UTF-8"`

// basicAuth is the single-user gate configured through AUTH_USER and
// AUTH_PASSWORD_HASH.
type basicAuth struct {
	user string
	hash *utils.PasswordHash
}

// newBasicAuth returns nil when no user is configured, which disables the gate.
func newBasicAuth(cfg config.Auth) (*basicAuth, error) {
	if cfg.User == "" {
		return nil, nil
	}

	hash, err := utils.ParsePasswordHash(cfg.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("error parsing AUTH_PASSWORD_HASH: %w", err)
	}
	return &basicAuth{user: cfg.User, hash: hash}, nil
}

func (a *basicAuth) check(user, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.user)) == 1
	passwordOK := a.hash.Verify(password)
	return userOK && passwordOK
}

// withAuth rejects requests without valid basic-auth credentials with 401
// and stores the user name in the request context.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		user, password, ok := r.BasicAuth()
		if !ok || !h.auth.check(user, password) {
			log.Warn().Err(ErrInvalidCredentials).Str("user", user).Str("func", "*Handler.withAuth").Send()
			w.Header().Set("WWW-Authenticate", authRealm)
			http.Error(w, ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
