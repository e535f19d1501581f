package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsExpired(t *testing.T) {
	c := campaignAt(StateOnline, 30)
	expiresAt, ok := c.ExpiresAt()
	assert.True(t, ok)
	assert.True(t, expiresAt.Equal(now))

	assert.True(t, c.IsExpired(now))
	assert.False(t, c.IsExpired(now.Add(-time.Second)))
	assert.True(t, c.IsExpired(now.Add(time.Second)))

	draft := Campaign{OnlineDays: 30, State: StateDraft}
	_, ok = draft.ExpiresAt()
	assert.False(t, ok)
	assert.False(t, draft.IsExpired(now.AddDate(10, 0, 0)))
}

func TestInFundingAndShouldFail(t *testing.T) {
	fresh := campaignAt(StateOnline, 3)
	assert.True(t, fresh.InFunding(now))
	assert.False(t, fresh.ShouldFail(now, snapshot(0, 0)))

	expired := campaignAt(StateOnline, 31)
	assert.False(t, expired.InFunding(now))
	assert.True(t, expired.ShouldFail(now, snapshot(400, 700)))
	assert.False(t, expired.ShouldFail(now, snapshot(1000, 0)))
}

func TestValidate(t *testing.T) {
	valid := Campaign{Goal: decimal.NewFromInt(10), OnlineDays: 1, Permalink: "good_one-2", State: StateDraft}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Campaign)
	}{
		{"zero goal", func(c *Campaign) { c.Goal = decimal.Zero }},
		{"negative goal", func(c *Campaign) { c.Goal = decimal.NewFromInt(-5) }},
		{"no online days", func(c *Campaign) { c.OnlineDays = 0 }},
		{"too many online days", func(c *Campaign) { c.OnlineDays = 61 }},
		{"permalink with spaces", func(c *Campaign) { c.Permalink = "bad link" }},
		{"permalink with slash", func(c *Campaign) { c.Permalink = "a/b" }},
		{"unknown state", func(c *Campaign) { c.State = "archived" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidCampaign)
		})
	}
}
