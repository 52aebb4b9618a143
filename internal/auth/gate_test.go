package auth

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate() *Gate {
	return NewGate("admin", "hunter2", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLogin_Success(t *testing.T) {
	g := newTestGate()

	token, err := g.Login("admin", "hunter2")
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.True(t, g.Valid(token))
}

func TestLogin_GenericDenial(t *testing.T) {
	g := newTestGate()

	_, badUser := g.Login("nobody", "hunter2")
	_, badPass := g.Login("admin", "wrong")

	// Same error either way, no enumeration
	assert.ErrorIs(t, badUser, domain.ErrAuthDenied)
	assert.ErrorIs(t, badPass, domain.ErrAuthDenied)
	assert.Equal(t, badUser, badPass)
}

func TestLogin_DisabledWhenUnconfigured(t *testing.T) {
	g := NewGate("", "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := g.Login("", "")
	assert.ErrorIs(t, err, domain.ErrAuthDenied)
}

func TestLogin_TokensAreUnique(t *testing.T) {
	g := newTestGate()

	a, err := g.Login("admin", "hunter2")
	require.NoError(t, err)
	b, err := g.Login("admin", "hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, g.Valid(a))
	assert.True(t, g.Valid(b))
}

func TestLogout_RevokesToken(t *testing.T) {
	g := newTestGate()

	token, err := g.Login("admin", "hunter2")
	require.NoError(t, err)

	g.Logout(token)
	assert.False(t, g.Valid(token))
}

func TestValid_EmptyToken(t *testing.T) {
	assert.False(t, newTestGate().Valid(""))
}
