// Package notify relays contact-form submissions to Telegram. Delivery is
// best-effort: a failed relay is logged and never fails the submission.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mthorsen/folio/internal/domain"
)

// Notifier relays a stored message to an external channel.
type Notifier interface {
	MessageReceived(ctx context.Context, msg domain.Message) error
}

// Telegram posts to the Bot API sendMessage endpoint.
type Telegram struct {
	client  *http.Client
	baseURL string
	token   string
	chatID  string
	logger  *slog.Logger
}

// NewTelegram creates a notifier for the given bot token and chat.
func NewTelegram(token, chatID string, logger *slog.Logger) *Telegram {
	return &Telegram{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.telegram.org",
		token:   token,
		chatID:  chatID,
		logger:  logger,
	}
}

// NewTelegramWithBase creates a notifier against a custom base URL and
// client, for tests.
func NewTelegramWithBase(baseURL string, client *http.Client, token, chatID string, logger *slog.Logger) *Telegram {
	return &Telegram{client: client, baseURL: baseURL, token: token, chatID: chatID, logger: logger}
}

// MessageReceived posts a summary of the submission to the configured
// chat.
func (t *Telegram) MessageReceived(ctx context.Context, msg domain.Message) error {
	text := fmt.Sprintf("New portfolio message from %s (%s):\n%s", msg.Name, msg.Email, msg.Body)

	payload, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    text,
	})
	if err != nil {
		return &domain.NotifyError{Op: "marshal", Err: err}
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &domain.NotifyError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return &domain.NotifyError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.NotifyError{Op: "send", Err: fmt.Errorf("telegram returned %d", resp.StatusCode)}
	}

	t.logger.Debug("telegram relay delivered", "from", msg.Email)
	return nil
}

// Noop is a Notifier that drops everything, used when no token is
// configured.
type Noop struct{}

func (Noop) MessageReceived(ctx context.Context, msg domain.Message) error {
	return nil
}
