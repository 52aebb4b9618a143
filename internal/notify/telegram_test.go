package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTelegram_MessageReceived(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tg := NewTelegramWithBase(srv.URL, srv.Client(), "bot-token", "chat-42", testLogger())

	err := tg.MessageReceived(context.Background(), domain.Message{
		Name:  "Ada",
		Email: "ada@example.com",
		Body:  "Hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "/botbot-token/sendMessage", gotPath)
	assert.Equal(t, "chat-42", gotBody["chat_id"])
	assert.Contains(t, gotBody["text"], "Ada")
	assert.Contains(t, gotBody["text"], "ada@example.com")
}

func TestTelegram_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tg := NewTelegramWithBase(srv.URL, srv.Client(), "t", "c", testLogger())

	err := tg.MessageReceived(context.Background(), domain.Message{Name: "Ada"})
	require.Error(t, err)

	var ne *domain.NotifyError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "send", ne.Op)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.MessageReceived(context.Background(), domain.Message{}))
}
