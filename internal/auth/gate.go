// Package auth is the identity collaborator: an env-sourced credential
// gate issuing opaque session tokens. Login failures are reported with a
// single generic error so callers cannot distinguish a wrong password
// from an unknown user.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"sync"

	"github.com/mthorsen/folio/internal/domain"
)

// Gate validates admin credentials and tracks issued session tokens.
type Gate struct {
	username string
	password string
	logger   *slog.Logger

	mu     sync.Mutex
	tokens map[string]bool
}

// NewGate creates a gate for the configured credentials. Empty
// credentials disable login entirely.
func NewGate(username, password string, logger *slog.Logger) *Gate {
	return &Gate{
		username: username,
		password: password,
		logger:   logger,
		tokens:   make(map[string]bool),
	}
}

// Login checks the credentials and returns a fresh session token.
func (g *Gate) Login(username, password string) (string, error) {
	if g.username == "" || g.password == "" {
		return "", domain.ErrAuthDenied
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		g.logger.Warn("failed admin login attempt")
		return "", domain.ErrAuthDenied
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	g.tokens[token] = true
	g.mu.Unlock()

	g.logger.Info("admin login")
	return token, nil
}

// Valid reports whether the token belongs to an active session.
func (g *Gate) Valid(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tokens[token]
}

// Logout revokes a session token.
func (g *Gate) Logout(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.tokens, token)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
