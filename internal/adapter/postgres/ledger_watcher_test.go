package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCampaignID(t *testing.T) {
	id, err := ParseCampaignID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, payload := range []string{"", "abc", "0", "-3", "4.5"} {
		_, err = ParseCampaignID(payload)
		assert.Error(t, err, payload)
	}
}
