package engine

import (
	"fmt"
	"time"
)

// Bucket is one aggregation interval. Start and End are inclusive.
type Bucket struct {
	Label      string
	ShortLabel string
	Start      Date
	End        Date
	Counts     map[Category]int
}

// BuildBuckets returns the empty, ascending, gap-free buckets covering w.
// Week buckets are anchored at w.Start and the last one is cut at w.End.
// Month buckets span their whole calendar month.
func BuildBuckets(w Window, g Granularity) []Bucket {
	if w.Start.After(w.End) {
		panic(fmt.Sprintf("engine: window start %s is after end %s", w.Start, w.End))
	}

	switch g {
	case GranularityDay:
		return dayBuckets(w)
	case GranularityWeek:
		return weekBuckets(w)
	case GranularityMonth:
		return monthBuckets(w)
	default:
		panic(fmt.Sprintf("engine: unknown granularity %q", g))
	}
}

func dayBuckets(w Window) []Bucket {
	buckets := make([]Bucket, 0, w.SpanDays())
	for d := w.Start; !d.After(w.End); d = d.AddDays(1) {
		buckets = append(buckets, newBucket(d, d,
			fmt.Sprintf("%d %s", d.Day, shortWeekday(d.Weekday())),
			fmt.Sprintf("%d", d.Day),
		))
	}
	return buckets
}

func weekBuckets(w Window) []Bucket {
	buckets := make([]Bucket, 0, w.SpanDays()/7+1)
	for start := w.Start; !start.After(w.End); start = start.AddDays(7) {
		end := start.AddDays(6)
		if end.After(w.End) {
			end = w.End
		}
		buckets = append(buckets, newBucket(start, end,
			fmt.Sprintf("%d %s", start.Day, shortMonth(start.Month)),
			fmt.Sprintf("%02d/%02d", start.Day, int(start.Month)),
		))
	}
	return buckets
}

func monthBuckets(w Window) []Bucket {
	first := NewDate(w.Start.Year, w.Start.Month, 1)
	buckets := make([]Bucket, 0, w.End.monthIndex()-w.Start.monthIndex()+1)
	for m := first; !m.After(w.End); m = DateOf(m.Time().AddDate(0, 1, 0)) {
		last := DateOf(m.Time().AddDate(0, 1, -1))
		buckets = append(buckets, newBucket(m, last,
			fmt.Sprintf("%s %02d", shortMonth(m.Month), m.Year%100),
			shortMonth(m.Month),
		))
	}
	return buckets
}

func newBucket(start, end Date, label, short string) Bucket {
	return Bucket{
		Label:      label,
		ShortLabel: short,
		Start:      start,
		End:        end,
		Counts:     make(map[Category]int),
	}
}

// BucketIndex locates the bucket of d without scanning. It reports false when
// d lies outside w.
func BucketIndex(w Window, g Granularity, d Date) (int, bool) {
	if !w.Contains(d) {
		return 0, false
	}
	switch g {
	case GranularityDay:
		return w.Start.DaysUntil(d), true
	case GranularityWeek:
		return w.Start.DaysUntil(d) / 7, true
	case GranularityMonth:
		return d.monthIndex() - w.Start.monthIndex(), true
	default:
		return 0, false
	}
}

func shortWeekday(wd time.Weekday) string {
	return wd.String()[:3]
}

func shortMonth(m time.Month) string {
	return m.String()[:3]
}
