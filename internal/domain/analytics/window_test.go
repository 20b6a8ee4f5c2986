package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindow(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	explicitStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	explicitEnd := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	futureEnd := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		preset   string
		start    *time.Time
		end      *time.Time
		allTime  bool
		expected Window
	}{
		{
			name:     "7d preset maps to a 7 day lookback",
			preset:   "7d",
			expected: Window{Start: now.Add(-7 * 24 * time.Hour), End: now},
		},
		{
			name:     "30d preset maps to a 30 day lookback",
			preset:   "30d",
			expected: Window{Start: now.Add(-30 * 24 * time.Hour), End: now},
		},
		{
			name:     "90d preset maps to a 90 day lookback",
			preset:   "90d",
			expected: Window{Start: now.Add(-90 * 24 * time.Hour), End: now},
		},
		{
			name:     "unknown preset falls back to the 30 day default",
			preset:   "14d",
			expected: Window{Start: now.Add(-30 * 24 * time.Hour), End: now},
		},
		{
			name:     "all preset yields an unbounded window ending now",
			preset:   "all",
			expected: Window{End: now, AllTime: true},
		},
		{
			name:     "all time flag yields an unbounded window ending now",
			allTime:  true,
			expected: Window{End: now, AllTime: true},
		},
		{
			name:     "all time flag keeps a caller supplied end",
			allTime:  true,
			end:      &explicitEnd,
			expected: Window{End: explicitEnd, AllTime: true},
		},
		{
			name:     "explicit pair is used verbatim",
			start:    &explicitStart,
			end:      &explicitEnd,
			expected: Window{Start: explicitStart, End: explicitEnd},
		},
		{
			name:     "future explicit end is not clamped to now",
			start:    &explicitStart,
			end:      &futureEnd,
			expected: Window{Start: explicitStart, End: futureEnd},
		},
		{
			name:     "preset takes precedence over explicit dates",
			preset:   "7d",
			start:    &explicitStart,
			end:      &explicitEnd,
			expected: Window{Start: now.Add(-7 * 24 * time.Hour), End: now},
		},
		{
			name:     "no inputs default to the last 30 days",
			expected: Window{Start: now.Add(-30 * 24 * time.Hour), End: now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ResolveWindow(tt.preset, tt.start, tt.end, tt.allTime, now)
			assert.Equal(t, tt.expected, window)
		})
	}
}

func TestResolveWindowSpan(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	window := ResolveWindow("7d", nil, nil, false, now)
	assert.Equal(t, 7*24*time.Hour, window.End.Sub(window.Start))
	assert.False(t, window.AllTime)
}
