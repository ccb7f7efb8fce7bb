package timezone_test

import (
	"concierge/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.Equal(t, timezone.Location(), now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestParseAndFormat(t *testing.T) {
	checkIn, err := timezone.Parse(time.DateOnly, "2025-07-01")
	require.NoError(t, err)

	assert.Equal(t, timezone.Location(), checkIn.Location())
	assert.Equal(t, "2025-07-01", timezone.Format(checkIn, time.DateOnly))

	// An explicit offset wins over the hotel zone.
	spa, err := timezone.Parse(time.RFC3339, "2025-07-01T10:00:00Z")
	require.NoError(t, err)
	assert.True(t, spa.Equal(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)))

	_, err = timezone.Parse(time.DateOnly, "01/07/2025")
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { timezone.Set("") })

	timezone.Set("Asia/Jakarta")
	assert.Equal(t, "Asia/Jakarta", timezone.Location().String())

	timezone.Set("Mars/Olympus_Mons")
	assert.Equal(t, time.UTC, timezone.Location())
}
