// Package notifier delivers finished analysis reports to external channels.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const telegramAPIBase = "https://api.telegram.org"

// Notifier sends one rendered report message.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Telegram sends messages through the Bot API.
type Telegram struct {
	token  string
	chatID string
	client *http.Client
	logger *zap.Logger
}

// NewTelegram creates a notifier for the given bot token and chat.
func NewTelegram(logger *zap.Logger, token, chatID string) *Telegram {
	return &Telegram{
		token:  token,
		chatID: chatID,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

// Notify posts the text to the configured chat.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    text,
	})
	if err != nil {
		return errors.Wrap(err, "marshal telegram payload")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", telegramAPIBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build telegram request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send telegram message")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("telegram API returned %d: %s", resp.StatusCode, string(body))
	}

	t.logger.Debug("telegram message delivered", zap.Int("chars", len(text)))
	return nil
}

// Noop discards every message. Used when no channel is configured.
type Noop struct{}

func (Noop) Notify(context.Context, string) error { return nil }
