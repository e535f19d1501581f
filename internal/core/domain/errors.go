package domain

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrInvalidTransition is returned when the target state is not reachable
	// from the current one.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrInconsistentSnapshot means the ledger reported more confirmed value
	// than confirmed plus waiting value.
	ErrInconsistentSnapshot = errors.New("inconsistent pledge snapshot")
	// ErrDispatchFailure wraps a dispatcher error raised after the
	// notification was claimed.
	ErrDispatchFailure = errors.New("notification dispatch failed")
	ErrInvalidCampaign = errors.New("invalid campaign")
)
