package domain

import (
	"fmt"
	"time"
)

// State is the lifecycle state of a campaign.
type State string

const (
	StateDraft        State = "draft"
	StateInAnalysis   State = "in_analysis"
	StateOnline       State = "online"
	StateWaitingFunds State = "waiting_funds"
	StateSuccessful   State = "successful"
	StateFailed       State = "failed"
	StateRejected     State = "rejected"
	StateDeleted      State = "deleted"
)

// States lists every lifecycle state in declaration order.
var States = []State{
	StateDraft,
	StateInAnalysis,
	StateOnline,
	StateWaitingFunds,
	StateSuccessful,
	StateFailed,
	StateRejected,
	StateDeleted,
}

// transitions is the full table of allowed moves. Moves out of draft and
// in_analysis are moderation decisions; moves out of online and
// waiting_funds are driven by Decide.
var transitions = map[State][]State{
	StateDraft:        {StateInAnalysis, StateOnline, StateRejected, StateDeleted},
	StateInAnalysis:   {StateOnline, StateRejected, StateDeleted},
	StateOnline:       {StateWaitingFunds, StateSuccessful, StateFailed},
	StateWaitingFunds: {StateSuccessful, StateFailed},
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	switch s {
	case StateSuccessful, StateFailed, StateRejected, StateDeleted:
		return true
	default:
		return false
	}
}

// Evaluable reports whether the expiration rule applies to s.
func (s State) Evaluable() bool {
	return s == StateOnline || s == StateWaitingFunds
}

// Settled reports whether s is one of the outcomes of the expiration rule.
func (s State) Settled() bool {
	return s == StateSuccessful || s == StateFailed
}

// CanTransition reports whether the table allows moving from one state to another.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Moderation reports whether moving from one state to another is a
// moderation decision rather than an expiration outcome.
func Moderation(from, to State) bool {
	return (from == StateDraft || from == StateInAnalysis) && CanTransition(from, to)
}

// Decision is the outcome of applying the expiration rule to one campaign.
type Decision struct {
	From State
	To   State
}

// Changed reports whether the decision moves the campaign.
func (d Decision) Changed() bool {
	return d.From != d.To
}

// Notifies reports whether entering the target state emits a lifecycle notification.
func (d Decision) Notifies() bool {
	return d.Changed() && d.To.Settled()
}

// Decide applies the expiration rule to a campaign in online or
// waiting_funds. The first matching rule wins:
//
//  1. not expired: stay
//  2. confirmed pledges cover the goal: successful
//  3. pending confirmations could still cover it: waiting_funds
//  4. otherwise: failed
//
// Decide has no side effects; now is always supplied by the caller.
func Decide(c Campaign, snap PledgeSnapshot, now time.Time) (Decision, error) {
	d := Decision{From: c.State, To: c.State}
	if c.State.Settled() {
		return d, nil
	}
	if !c.State.Evaluable() {
		return d, fmt.Errorf("%w: campaign %d is %s", ErrInvalidTransition, c.ID, c.State)
	}
	if err := snap.Check(); err != nil {
		return d, err
	}

	switch {
	case !c.IsExpired(now):
		// still inside the online window
	case snap.ReachedGoal(c.Goal):
		d.To = StateSuccessful
	case snap.HasPendingConfirmations && snap.PendingReachesGoal(c.Goal):
		d.To = StateWaitingFunds
	default:
		d.To = StateFailed
	}
	return d, nil
}
