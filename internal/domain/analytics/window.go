package analytics

import "time"

// Preset is a named shorthand for a fixed lookback window ending now.
type Preset string

const (
	Preset7d  Preset = "7d"
	Preset30d Preset = "30d"
	Preset90d Preset = "90d"
	PresetAll Preset = "all"
)

const defaultLookbackDays = 30

// Window is a resolved time range over which events are aggregated.
// When AllTime is set no lower bound is applied and the entire event
// history is in scope; End still bounds the daily series.
type Window struct {
	Start   time.Time
	End     time.Time
	AllTime bool
}

// ResolveWindow resolves the caller's range inputs into a Window.
//
// Precedence: the all-time flag wins, then a named preset, then an
// explicit start/end pair, then the 30-day default. Presets and the
// all-time flag override explicit-date parameters so quick-range
// buttons in a UI work without the caller suppressing stale dates.
// An unrecognized preset falls back to the 30-day default rather than
// erroring. An explicit end is used verbatim: a future end date is
// accepted as-is.
func ResolveWindow(preset string, start, end *time.Time, allTime bool, now time.Time) Window {
	if allTime || Preset(preset) == PresetAll {
		endAt := now
		if end != nil && Preset(preset) != PresetAll {
			endAt = *end
		}
		return Window{End: endAt, AllTime: true}
	}

	if preset != "" {
		days := defaultLookbackDays
		switch Preset(preset) {
		case Preset7d:
			days = 7
		case Preset30d:
			days = 30
		case Preset90d:
			days = 90
		}
		return Window{Start: now.Add(-time.Duration(days) * 24 * time.Hour), End: now}
	}

	if start != nil && end != nil {
		return Window{Start: *start, End: *end}
	}

	return Window{Start: now.Add(-defaultLookbackDays * 24 * time.Hour), End: now}
}
