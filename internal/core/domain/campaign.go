package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MinOnlineDays and MaxOnlineDays bound the length of the online window.
	MinOnlineDays = 1
	MaxOnlineDays = 60
)

var permalinkPattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// Campaign represents a crowdfunding campaign.
// Monetary values use decimal to avoid float rounding on goal checks.
type Campaign struct {
	ID         int64
	OwnerID    int64
	Name       string
	Permalink  string
	Goal       decimal.Decimal
	OnlineDays int
	OnlineAt   *time.Time // nil until the campaign is launched
	State      State
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ExpiresAt returns the end of the online window. The second return value
// is false while the campaign has never been online.
func (c *Campaign) ExpiresAt() (time.Time, bool) {
	if c.OnlineAt == nil {
		return time.Time{}, false
	}
	return c.OnlineAt.AddDate(0, 0, c.OnlineDays), true
}

// IsExpired reports whether now is at or past the expiration timestamp.
// Campaigns without an online start never expire.
func (c *Campaign) IsExpired(now time.Time) bool {
	expiresAt, ok := c.ExpiresAt()
	if !ok {
		return false
	}
	return !now.Before(expiresAt)
}

// InFunding reports whether the campaign is online and still inside its window.
func (c *Campaign) InFunding(now time.Time) bool {
	return c.State == StateOnline && !c.IsExpired(now)
}

// ShouldFail reports whether the campaign is expired without its confirmed
// pledges covering the goal.
func (c *Campaign) ShouldFail(now time.Time, snap PledgeSnapshot) bool {
	return c.IsExpired(now) && !snap.ReachedGoal(c.Goal)
}

// Validate checks the attribute constraints a campaign must satisfy before
// it is stored.
func (c *Campaign) Validate() error {
	if !c.Goal.IsPositive() {
		return fmt.Errorf("%w: goal must be positive, got %s", ErrInvalidCampaign, c.Goal)
	}
	if c.OnlineDays < MinOnlineDays || c.OnlineDays > MaxOnlineDays {
		return fmt.Errorf("%w: online days must be between %d and %d, got %d",
			ErrInvalidCampaign, MinOnlineDays, MaxOnlineDays, c.OnlineDays)
	}
	if !ValidPermalink(c.Permalink) {
		return fmt.Errorf("%w: malformed permalink %q", ErrInvalidCampaign, c.Permalink)
	}
	if !c.State.Valid() {
		return fmt.Errorf("%w: unknown state %q", ErrInvalidCampaign, c.State)
	}
	return nil
}

// ValidPermalink reports whether p only contains letters, digits, '_' and '-'.
func ValidPermalink(p string) bool {
	return permalinkPattern.MatchString(p)
}
