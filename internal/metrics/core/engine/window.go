package engine

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidPreset   = errors.New("invalid range preset")
	ErrIncompleteRange = errors.New("custom range requires both start and end")
	ErrInvalidDate     = errors.New("unparseable custom range bound")
	ErrInvalidRange    = errors.New("range start is after range end")
)

// Preset is a named time range selected in the dashboard.
type Preset string

const (
	PresetWeek   Preset = "1w"
	PresetMonth  Preset = "1m"
	PresetYear   Preset = "1y"
	PresetCustom Preset = "custom"
)

var presetDays = map[Preset]int{
	PresetWeek:  7,
	PresetMonth: 30,
	PresetYear:  365,
}

// ParsePreset accepts the short forms and the long forms shown in the UI
// ("1 week", "1 month", "1 year"). An empty string selects PresetMonth.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PresetMonth, nil
	case "1w", "1 week", "week":
		return PresetWeek, nil
	case "1m", "1 month", "month":
		return PresetMonth, nil
	case "1y", "1 year", "year":
		return PresetYear, nil
	case "custom":
		return PresetCustom, nil
	default:
		return "", ErrInvalidPreset
	}
}

// Window is an inclusive range of calendar days. End includes its whole day.
type Window struct {
	Start Date
	End   Date
}

// SpanDays is the number of calendar days covered, counting both ends.
func (w Window) SpanDays() int {
	return w.Start.DaysUntil(w.End) + 1
}

func (w Window) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// EndInstant is the last instant of the window's final day.
func (w Window) EndInstant() time.Time {
	return w.End.EndOfDay()
}

// Resolve computes the window for a preset anchored at now, or for an explicit
// custom range. It never reads the clock.
func Resolve(preset Preset, customStart, customEnd string, now Date) (Window, error) {
	if preset == PresetCustom {
		return resolveCustom(customStart, customEnd)
	}

	days, ok := presetDays[preset]
	if !ok {
		return Window{}, ErrInvalidPreset
	}

	return Window{
		Start: now.AddDays(-(days - 1)),
		End:   now,
	}, nil
}

func resolveCustom(customStart, customEnd string) (Window, error) {
	if strings.TrimSpace(customStart) == "" || strings.TrimSpace(customEnd) == "" {
		return Window{}, ErrIncompleteRange
	}

	start, ok := Normalize(customStart)
	if !ok {
		return Window{}, ErrInvalidDate
	}
	end, ok := Normalize(customEnd)
	if !ok {
		return Window{}, ErrInvalidDate
	}

	if start.After(end) {
		return Window{}, ErrInvalidRange
	}

	return Window{Start: start, End: end}, nil
}
