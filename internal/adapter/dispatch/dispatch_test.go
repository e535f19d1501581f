package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"

	"crowdfund-lifecycle/internal/core/domain"
)

type fakeSender struct {
	to   telebot.Recipient
	what interface{}
	err  error
}

func (s *fakeSender) Send(to telebot.Recipient, what interface{}, _ ...interface{}) (*telebot.Message, error) {
	s.to = to
	s.what = what
	return &telebot.Message{}, s.err
}

func TestTelegramDispatcherSend(t *testing.T) {
	sender := &fakeSender{}
	d := NewTelegramDispatcher(sender, -1001234)

	err := d.Send(context.Background(), 7, domain.KindSuccessful, json.RawMessage(`{"campaign_id":3}`))
	require.NoError(t, err)

	assert.Equal(t, "-1001234", sender.to.Recipient())
	assert.Equal(t, "[successful] recipient 7\n{\"campaign_id\":3}", sender.what)
}

func TestTelegramDispatcherError(t *testing.T) {
	sender := &fakeSender{err: errors.New("flood wait")}
	d := NewTelegramDispatcher(sender, 1)

	err := d.Send(context.Background(), 7, domain.KindFailed, nil)
	assert.ErrorContains(t, err, "flood wait")
	assert.Equal(t, "[failed] recipient 7", sender.what)
}

func TestTelegramDispatcherCancelled(t *testing.T) {
	sender := &fakeSender{}
	d := NewTelegramDispatcher(sender, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Send(ctx, 7, domain.KindFailed, nil), context.Canceled)
	assert.Nil(t, sender.what)
}

func TestLogDispatcher(t *testing.T) {
	var buf bytes.Buffer
	d := NewLogDispatcher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, d.Send(context.Background(), 9, domain.KindVerifyPaymentAccount, json.RawMessage(`{"from_email":"a@b.c"}`)))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "notification", entry["msg"])
	assert.Equal(t, float64(9), entry["recipient_id"])
	assert.Equal(t, "verify_payment_account", entry["kind"])
}

func TestNewTelegramBotRequiresToken(t *testing.T) {
	_, err := NewTelegramBot("")
	assert.Error(t, err)
}
