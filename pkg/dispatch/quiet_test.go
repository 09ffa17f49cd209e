package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInQuietWindow(t *testing.T) {
	start, end := 22*60, 8*60 // wraps midnight

	assert.True(t, inQuietWindow(23*60, start, end))
	assert.True(t, inQuietWindow(0, start, end))
	assert.True(t, inQuietWindow(7*60+59, start, end))
	assert.False(t, inQuietWindow(8*60, start, end))
	assert.False(t, inQuietWindow(12*60, start, end))
	assert.False(t, inQuietWindow(21*60+59, start, end))

	// Non-wrapping window.
	assert.True(t, inQuietWindow(14*60, 13*60, 15*60))
	assert.False(t, inQuietWindow(12*60, 13*60, 15*60))

	// start == end disables quiet hours.
	assert.False(t, inQuietWindow(22*60, 22*60, 22*60))
}

func TestQuietExit(t *testing.T) {
	start, end := 22*60, 8*60

	t.Run("before midnight exits tomorrow morning", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 23, 15, 0, 0, time.UTC)
		exit, quiet := quietExit(now, time.UTC, start, end)
		require.True(t, quiet)
		assert.Equal(t, time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC), exit)
	})

	t.Run("after midnight exits same morning", func(t *testing.T) {
		now := time.Date(2026, 3, 11, 6, 30, 0, 0, time.UTC)
		exit, quiet := quietExit(now, time.UTC, start, end)
		require.True(t, quiet)
		assert.Equal(t, time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC), exit)
	})

	t.Run("daytime is not quiet", func(t *testing.T) {
		now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
		_, quiet := quietExit(now, time.UTC, start, end)
		assert.False(t, quiet)
	})

	t.Run("honors the location", func(t *testing.T) {
		nairobi, err := time.LoadLocation("Africa/Nairobi")
		require.NoError(t, err)
		// 20:30 UTC is 23:30 in Nairobi: inside the window there.
		now := time.Date(2026, 3, 10, 20, 30, 0, 0, time.UTC)
		exit, quiet := quietExit(now, nairobi, start, end)
		require.True(t, quiet)
		assert.Equal(t, time.Date(2026, 3, 11, 8, 0, 0, 0, nairobi), exit)
	})
}
