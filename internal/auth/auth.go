package auth

import (
	"crypto/subtle"

	"github.com/Arjit-Adhikari/qr-order/internal/config"
)

// Authenticator decides whether a supplied credential pair may act as admin.
// Route code depends on this interface only, so the static-pair scheme can be
// swapped out without touching handlers.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// StaticAuthenticator compares against the single configured admin pair.
// No sessions and no tokens: every request re-validates the pair.
type StaticAuthenticator struct {
	username string
	password string
}

func NewStaticAuthenticator(cfg config.AdminConfig) *StaticAuthenticator {
	return &StaticAuthenticator{
		username: cfg.Username,
		password: cfg.Password,
	}
}

func (a *StaticAuthenticator) Authenticate(username, password string) bool {
	// Constant-time comparison keeps response timing from leaking how much
	// of the credential matched.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}
