package engine_test

import (
	"testing"
	"time"

	"event-metrics-service/internal/metrics/core/engine"
)

// assertContiguous checks ascending, gap-free, non-overlapping buckets.
func assertContiguous(t *testing.T, buckets []engine.Bucket) {
	t.Helper()
	for i, b := range buckets {
		if b.Start.After(b.End) {
			t.Fatalf("bucket %d: start %s after end %s", i, b.Start, b.End)
		}
		if i == 0 {
			continue
		}
		if next := buckets[i-1].End.AddDays(1); next != b.Start {
			t.Fatalf("bucket %d: expected start %s, got %s", i, next, b.Start)
		}
	}
}

// ------------------------------------------------------------
// DAY
// ------------------------------------------------------------

func TestBuildBuckets_Day(t *testing.T) {
	w := engine.Window{Start: engine.NewDate(2026, time.October, 13), End: today}

	buckets := engine.BuildBuckets(w, engine.GranularityDay)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	assertContiguous(t, buckets)

	if buckets[0].Start != w.Start || buckets[6].End != w.End {
		t.Fatalf("buckets do not cover window: first=%s last=%s", buckets[0].Start, buckets[6].End)
	}
	if buckets[0].Label != "13 Tue" || buckets[0].ShortLabel != "13" {
		t.Fatalf("unexpected first label %q / %q", buckets[0].Label, buckets[0].ShortLabel)
	}
	if buckets[6].Label != "19 Mon" {
		t.Fatalf("unexpected last label %q", buckets[6].Label)
	}
	for i, b := range buckets {
		if b.Counts == nil || len(b.Counts) != 0 {
			t.Fatalf("bucket %d: expected empty counts map, got %v", i, b.Counts)
		}
	}
}

// ------------------------------------------------------------
// WEEK
// ------------------------------------------------------------

func TestBuildBuckets_WeekTruncatesLastBucket(t *testing.T) {
	w := engine.Window{Start: engine.NewDate(2026, time.January, 1), End: engine.NewDate(2026, time.March, 1)}
	if w.SpanDays() != 60 {
		t.Fatalf("expected a 60 day window, got %d", w.SpanDays())
	}

	buckets := engine.BuildBuckets(w, engine.GranularityWeek)
	if len(buckets) != 9 {
		t.Fatalf("expected 9 buckets, got %d", len(buckets))
	}
	assertContiguous(t, buckets)

	if buckets[0].Start != w.Start {
		t.Fatalf("first bucket should start at window start, got %s", buckets[0].Start)
	}
	last := buckets[len(buckets)-1]
	if last.Start != engine.NewDate(2026, time.February, 26) || last.End != w.End {
		t.Fatalf("unexpected last bucket %s..%s", last.Start, last.End)
	}
	if buckets[0].Label != "1 Jan" || buckets[0].ShortLabel != "01/01" {
		t.Fatalf("unexpected label %q / %q", buckets[0].Label, buckets[0].ShortLabel)
	}
}

func TestBuildBuckets_WeekEvenDivision(t *testing.T) {
	w := engine.Window{Start: engine.NewDate(2026, time.January, 1), End: engine.NewDate(2026, time.February, 18)}

	buckets := engine.BuildBuckets(w, engine.GranularityWeek)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	for i, b := range buckets {
		if n := b.Start.DaysUntil(b.End) + 1; n != 7 {
			t.Fatalf("bucket %d: expected 7 days, got %d", i, n)
		}
	}
}

// ------------------------------------------------------------
// MONTH
// ------------------------------------------------------------

func TestBuildBuckets_Month(t *testing.T) {
	w := engine.Window{Start: engine.NewDate(2025, time.January, 15), End: engine.NewDate(2026, time.June, 10)}

	buckets := engine.BuildBuckets(w, engine.GranularityMonth)
	if len(buckets) != 18 {
		t.Fatalf("expected 18 buckets, got %d", len(buckets))
	}
	assertContiguous(t, buckets)

	first, last := buckets[0], buckets[len(buckets)-1]
	if first.Start != engine.NewDate(2025, time.January, 1) || first.End != engine.NewDate(2025, time.January, 31) {
		t.Fatalf("first month bucket should span January: %s..%s", first.Start, first.End)
	}
	if last.End != engine.NewDate(2026, time.June, 30) {
		t.Fatalf("last month bucket should end June 30, got %s", last.End)
	}
	if first.Label != "Jan 25" || first.ShortLabel != "Jan" {
		t.Fatalf("unexpected label %q / %q", first.Label, first.ShortLabel)
	}
	if last.Label != "Jun 26" {
		t.Fatalf("unexpected label %q", last.Label)
	}

	feb := buckets[13]
	if feb.Start != engine.NewDate(2026, time.February, 1) || feb.End != engine.NewDate(2026, time.February, 28) {
		t.Fatalf("unexpected february bucket %s..%s", feb.Start, feb.End)
	}
}

func TestBuildBuckets_PanicsOnReversedWindow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for reversed window")
		}
	}()
	engine.BuildBuckets(engine.Window{Start: today, End: today.AddDays(-1)}, engine.GranularityDay)
}

// ------------------------------------------------------------
// BUCKET INDEX
// ------------------------------------------------------------

func TestBucketIndex(t *testing.T) {
	w := engine.Window{Start: engine.NewDate(2025, time.January, 15), End: engine.NewDate(2026, time.June, 10)}

	tests := []struct {
		name string
		g    engine.Granularity
		d    engine.Date
		want int
		ok   bool
	}{
		{"day_first", engine.GranularityDay, w.Start, 0, true},
		{"day_tenth", engine.GranularityDay, w.Start.AddDays(10), 10, true},
		{"week_sixth_day", engine.GranularityWeek, w.Start.AddDays(6), 0, true},
		{"week_seventh_day", engine.GranularityWeek, w.Start.AddDays(7), 1, true},
		{"month_same", engine.GranularityMonth, engine.NewDate(2025, time.January, 31), 0, true},
		{"month_next_year", engine.GranularityMonth, engine.NewDate(2026, time.March, 3), 14, true},
		{"before_window", engine.GranularityMonth, engine.NewDate(2025, time.January, 14), 0, false},
		{"after_window", engine.GranularityDay, engine.NewDate(2026, time.June, 11), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := engine.BucketIndex(w, tt.g, tt.d)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("expected (%d,%v), got (%d,%v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestBucketIndex_AgreesWithBuildBuckets(t *testing.T) {
	windows := []engine.Window{
		{Start: today.AddDays(-6), End: today},
		{Start: today.AddDays(-200), End: today},
		{Start: today.AddDays(-700), End: today},
	}

	for _, w := range windows {
		g := engine.SelectGranularity(w)
		buckets := engine.BuildBuckets(w, g)
		for d := w.Start; !d.After(w.End); d = d.AddDays(1) {
			idx, ok := engine.BucketIndex(w, g, d)
			if !ok || idx < 0 || idx >= len(buckets) {
				t.Fatalf("%s: no bucket for %s", g, d)
			}
			b := buckets[idx]
			if d.Before(b.Start) || d.After(b.End) {
				t.Fatalf("%s: %s mapped to bucket %s..%s", g, d, b.Start, b.End)
			}
		}
	}
}
