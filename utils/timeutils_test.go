package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentServiceWindow(t *testing.T) {
	auckland, err := time.LoadLocation("Pacific/Auckland")
	require.NoError(t, err)

	tests := []struct {
		name     string
		instant  time.Time
		loc      *time.Location
		expected ServiceWindow
	}{
		{
			name:     "auckland afternoon",
			instant:  time.Date(2025, 10, 16, 1, 30, 0, 0, time.UTC), // 14:30 NZDT
			loc:      auckland,
			expected: ServiceWindow{Date: "2025-10-16", Hour: "14"},
		},
		{
			name:     "utc evening is next day in auckland",
			instant:  time.Date(2025, 10, 16, 12, 5, 0, 0, time.UTC), // 01:05 NZDT on the 17th
			loc:      auckland,
			expected: ServiceWindow{Date: "2025-10-17", Hour: "01"},
		},
		{
			name:     "nil location is utc",
			instant:  time.Date(2025, 10, 16, 9, 59, 59, 0, time.UTC),
			loc:      nil,
			expected: ServiceWindow{Date: "2025-10-16", Hour: "09"},
		},
		{
			name:     "midnight pads hour",
			instant:  time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: ServiceWindow{Date: "2025-01-02", Hour: "00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentServiceWindow(FixedClock(tt.instant), tt.loc)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCurrentServiceWindow_FollowsClock(t *testing.T) {
	now := time.Date(2025, 10, 16, 8, 59, 0, 0, time.UTC)
	clock := ClockFunc(func() time.Time { return now })

	first := CurrentServiceWindow(clock, time.UTC)
	now = now.Add(2 * time.Minute)
	second := CurrentServiceWindow(clock, time.UTC)

	assert.Equal(t, "08", first.Hour)
	assert.Equal(t, "09", second.Hour)
}

func TestSystemClock(t *testing.T) {
	before := time.Now().Add(-time.Second)
	got := SystemClock{}.Now()
	assert.True(t, got.After(before))
}

func TestIso8601FromUnixSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "epoch", input: 0, expected: "1970-01-01T00:00:00Z"},
		{name: "specific timestamp", input: 1696320000, expected: "2023-10-03T08:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Iso8601FromUnixSeconds(tt.input))
		})
	}
}
