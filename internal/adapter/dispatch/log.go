package dispatch

import (
	"context"
	"encoding/json"
	"log/slog"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
)

// LogDispatcher writes every notification to the structured log. It is the
// default sink when no external channel is configured.
type LogDispatcher struct {
	logger *slog.Logger
}

var _ port.Dispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Send(ctx context.Context, recipientID int64, kind domain.Kind, payload json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.logger.InfoContext(ctx, "notification",
		slog.Int64("recipient_id", recipientID),
		slog.String("kind", string(kind)),
		slog.String("payload", string(payload)))
	return nil
}
