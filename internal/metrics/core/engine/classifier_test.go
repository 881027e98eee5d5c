package engine_test

import (
	"testing"

	"event-metrics-service/internal/metrics/core/engine"
)

func hasCategory(cats []engine.Category, want engine.Category) bool {
	for _, c := range cats {
		if c == want {
			return true
		}
	}
	return false
}

// ------------------------------------------------------------
// PREDICATES
// ------------------------------------------------------------

func TestProductFamilyOf(t *testing.T) {
	tests := map[string]engine.ProductFamily{
		"Dr.Ease":         engine.ProductDrEase,
		"Dr. Ease Clinic": engine.ProductDrEase,
		"DR-EASE":         engine.ProductDrEase,
		"Ease POS":        engine.ProductEasePOS,
		"easepos lite":    engine.ProductEasePOS,
		"Ease":            engine.ProductOther,
		"":                engine.ProductOther,
	}
	for product, want := range tests {
		if got := engine.ProductFamilyOf(engine.Record{Product: product}); got != want {
			t.Fatalf("ProductFamilyOf(%q): expected %s, got %s", product, want, got)
		}
	}
}

func TestParseProductFamily(t *testing.T) {
	tests := map[string]engine.ProductFamily{
		"":         engine.ProductAny,
		"all":      engine.ProductAny,
		"Dr.Ease":  engine.ProductDrEase,
		"dr_ease":  engine.ProductDrEase,
		"Ease POS": engine.ProductEasePOS,
		"ease_pos": engine.ProductEasePOS,
		"other":    engine.ProductOther,
	}
	for in, want := range tests {
		got, ok := engine.ParseProductFamily(in)
		if !ok || got != want {
			t.Fatalf("ParseProductFamily(%q): expected %s, got %s (ok=%v)", in, want, got, ok)
		}
	}
	if _, ok := engine.ParseProductFamily("toaster"); ok {
		t.Fatalf("expected unknown product family to be rejected")
	}
}

func TestTypePredicates(t *testing.T) {
	if !engine.IsOnline(engine.Record{Type: "Online"}) || engine.IsOnsite(engine.Record{Type: "Online"}) {
		t.Fatalf("Online should be online only")
	}
	if !engine.IsOnsite(engine.Record{Type: "On-site"}) || engine.IsOnline(engine.Record{Type: "On-site"}) {
		t.Fatalf("On-site should be onsite only")
	}
	if engine.IsOnline(engine.Record{}) || engine.IsOnsite(engine.Record{}) {
		t.Fatalf("empty type matches neither")
	}
}

// ------------------------------------------------------------
// CLASSIFY
// ------------------------------------------------------------

func TestClassify_NonExclusiveCategories(t *testing.T) {
	w := engine.Window{Start: today.AddDays(-6), End: today}
	c := engine.NewClassifierFor(engine.KindLead, engine.Filter{})

	cl, excl := c.Classify(engine.Record{
		Kind:    engine.KindLead,
		Date:    engine.FormatDayFirst(today),
		Product: "Dr.Ease",
		Source:  "Facebook",
	}, w, engine.GranularityDay)

	if excl != engine.Included {
		t.Fatalf("expected record to be included, got %v", excl)
	}
	if cl.BucketIndex != 6 {
		t.Fatalf("expected bucket 6, got %d", cl.BucketIndex)
	}
	for _, want := range []engine.Category{engine.CategoryAll, engine.CategoryDrEase, engine.CategorySourceKnown} {
		if !hasCategory(cl.Categories, want) {
			t.Fatalf("expected category %s in %v", want, cl.Categories)
		}
	}
	if hasCategory(cl.Categories, engine.CategoryEasePOS) || hasCategory(cl.Categories, engine.CategorySourceUnknown) {
		t.Fatalf("unexpected categories %v", cl.Categories)
	}
}

func TestClassify_Exclusions(t *testing.T) {
	w := engine.Window{Start: today.AddDays(-6), End: today}
	c := engine.NewClassifierFor(engine.KindLead, engine.Filter{})

	if _, excl := c.Classify(engine.Record{Date: "31/02/2024"}, w, engine.GranularityDay); excl != engine.ExcludedUnparseable {
		t.Fatalf("expected ExcludedUnparseable, got %v", excl)
	}
	if _, excl := c.Classify(engine.Record{Date: ""}, w, engine.GranularityDay); excl != engine.ExcludedUnparseable {
		t.Fatalf("expected ExcludedUnparseable for empty date, got %v", excl)
	}
	if _, excl := c.Classify(engine.Record{Date: engine.FormatDayFirst(today.AddDays(1))}, w, engine.GranularityDay); excl != engine.ExcludedOutOfRange {
		t.Fatalf("expected ExcludedOutOfRange, got %v", excl)
	}
	if _, excl := c.Classify(engine.Record{Date: engine.FormatDayFirst(today.AddDays(-7))}, w, engine.GranularityDay); excl != engine.ExcludedOutOfRange {
		t.Fatalf("expected ExcludedOutOfRange, got %v", excl)
	}
}

func TestClassify_ProductFilterExcludesOtherFamilies(t *testing.T) {
	w := engine.Window{Start: today.AddDays(-6), End: today}
	c := engine.NewClassifierFor(engine.KindLead, engine.Filter{Product: engine.ProductDrEase})

	cl, excl := c.Classify(engine.Record{Date: engine.FormatDayFirst(today), Product: "Ease POS"}, w, engine.GranularityDay)
	if excl != engine.Included {
		t.Fatalf("date is in window, expected Included, got %v", excl)
	}
	if hasCategory(cl.Categories, engine.CategoryDrEase) || hasCategory(cl.Categories, engine.CategoryAll) {
		t.Fatalf("filtered record must not count, got %v", cl.Categories)
	}
}

func TestClassify_FilterGatesArePerCategory(t *testing.T) {
	w := engine.Window{Start: today.AddDays(-6), End: today}
	rec := engine.Record{Kind: engine.KindDemo, Date: engine.FormatDayFirst(today), Product: "Dr.Ease", Type: "Onsite"}

	c := engine.NewClassifierFor(engine.KindDemo, engine.Filter{Type: "online"})
	cl, _ := c.Classify(rec, w, engine.GranularityDay)

	if hasCategory(cl.Categories, engine.CategoryAll) || hasCategory(cl.Categories, engine.CategoryDrEase) {
		t.Fatalf("type filter should gate product categories, got %v", cl.Categories)
	}
	if !hasCategory(cl.Categories, engine.CategoryOnsite) {
		t.Fatalf("type breakdown ignores the type filter, expected onsite in %v", cl.Categories)
	}
}

func TestClassify_SourceFilterIsCaseInsensitive(t *testing.T) {
	w := engine.Window{Start: today.AddDays(-6), End: today}
	c := engine.NewClassifierFor(engine.KindLead, engine.Filter{Source: "facebook"})

	cl, _ := c.Classify(engine.Record{Date: "2026-10-19", Source: " Facebook "}, w, engine.GranularityDay)
	if !hasCategory(cl.Categories, engine.CategoryAll) {
		t.Fatalf("expected source filter to match, got %v", cl.Categories)
	}

	cl, _ = c.Classify(engine.Record{Date: "2026-10-19", Source: "Website"}, w, engine.GranularityDay)
	if hasCategory(cl.Categories, engine.CategoryAll) {
		t.Fatalf("expected source filter to reject, got %v", cl.Categories)
	}
}
