package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/telebot.v3"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
)

// Sender is the part of *telebot.Bot the dispatcher uses.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelegramDispatcher relays notifications to an operations chat.
type TelegramDispatcher struct {
	sender Sender
	chat   telebot.ChatID
}

var _ port.Dispatcher = (*TelegramDispatcher)(nil)

// NewTelegramBot creates a send-only bot for token.
func NewTelegramBot(token string) (*telebot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is empty")
	}
	return telebot.NewBot(telebot.Settings{Token: token})
}

func NewTelegramDispatcher(sender Sender, chatID int64) *TelegramDispatcher {
	return &TelegramDispatcher{sender: sender, chat: telebot.ChatID(chatID)}
}

func (d *TelegramDispatcher) Send(ctx context.Context, recipientID int64, kind domain.Kind, payload json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := d.sender.Send(d.chat, envelope(recipientID, kind, payload), &telebot.SendOptions{DisableWebPagePreview: true})
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// envelope is the plain-text transport form of a notification.
func envelope(recipientID int64, kind domain.Kind, payload json.RawMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] recipient %d", kind, recipientID)
	if len(payload) > 0 {
		b.WriteString("\n")
		b.Write(payload)
	}
	return b.String()
}
