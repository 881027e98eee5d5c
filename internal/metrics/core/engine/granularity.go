package engine

// Granularity is the bucketing unit of a series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

const (
	maxDailySpanDays  = 45
	maxWeeklySpanDays = 400
)

// SelectGranularity keeps the number of chart points bounded: daily up to 45
// days, weekly up to 400 days, monthly beyond.
func SelectGranularity(w Window) Granularity {
	span := w.SpanDays()
	switch {
	case span > maxWeeklySpanDays:
		return GranularityMonth
	case span > maxDailySpanDays:
		return GranularityWeek
	default:
		return GranularityDay
	}
}
