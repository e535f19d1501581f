package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
	"crowdfund-lifecycle/internal/metrics"
)

// NotificationGate forwards notifications to the dispatcher at most once per
// (recipient, subject, kind).
//
// The record is claimed before dispatch and is kept when dispatch fails, so
// a retry never delivers twice. Resending a failed notification is left to
// an outbox outside the gate.
type NotificationGate struct {
	store      port.NotificationStore
	dispatcher port.Dispatcher
	logger     *slog.Logger
	clock      func() time.Time
	newID      func() uuid.UUID
}

// NewNotificationGate creates a gate over the given store and dispatcher.
func NewNotificationGate(store port.NotificationStore, dispatcher port.Dispatcher, logger *slog.Logger, clock func() time.Time) *NotificationGate {
	if clock == nil {
		clock = time.Now
	}
	return &NotificationGate{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		clock:      clock,
		newID:      uuid.New,
	}
}

// Notify claims the notification and dispatches it. It returns true when
// this call dispatched successfully, and false when an earlier claim
// suppressed it. A dispatcher failure returns an error wrapping
// domain.ErrDispatchFailure; the claim stays in place.
func (g *NotificationGate) Notify(ctx context.Context, recipientID, subjectID int64, kind domain.Kind, payload json.RawMessage) (bool, error) {
	key := domain.NotificationKey{RecipientID: recipientID, SubjectID: subjectID, Kind: kind}
	log := g.logger.With(
		slog.Int64("recipient_id", recipientID),
		slog.Int64("subject_id", subjectID),
		slog.String("kind", string(kind)))

	exists, err := g.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check notification record: %w", err)
	}
	if exists {
		metrics.RecordNotification(string(kind), metrics.OutcomeSuppressed)
		log.Debug("notification suppressed")
		return false, nil
	}

	rec := domain.NotificationRecord{
		ID:          g.newID(),
		RecipientID: recipientID,
		SubjectID:   subjectID,
		Kind:        kind,
		Payload:     payload,
		CreatedAt:   g.clock().UTC(),
	}
	claimed, err := g.store.Claim(ctx, rec)
	if err != nil {
		return false, fmt.Errorf("claim notification record: %w", err)
	}
	if !claimed {
		metrics.RecordNotification(string(kind), metrics.OutcomeSuppressed)
		log.Debug("notification suppressed, claimed concurrently")
		return false, nil
	}

	if err = g.dispatcher.Send(ctx, recipientID, kind, payload); err != nil {
		metrics.RecordNotification(string(kind), metrics.OutcomeFailed)
		log.Error("notification dispatch failed", slog.String("record_id", rec.ID.String()), slog.Any("error", err))
		return false, fmt.Errorf("%w: %s to %d: %v", domain.ErrDispatchFailure, kind, recipientID, err)
	}
	metrics.RecordNotification(string(kind), metrics.OutcomeDispatched)
	log.Info("notification dispatched", slog.String("record_id", rec.ID.String()))
	return true, nil
}
