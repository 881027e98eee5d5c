package engine

import "github.com/shopspring/decimal"

// DropStats counts records left out of a run.
type DropStats struct {
	Unparseable int
	OutOfRange  int
}

func (s DropStats) Total() int {
	return s.Unparseable + s.OutOfRange
}

// Series is the result of one aggregation run.
type Series struct {
	Window      Window
	Granularity Granularity
	Categories  []Category
	Buckets     []Bucket
	Totals      map[Category]int
	Dropped     DropStats
}

// Aggregate folds records into the buckets of w in a single forward pass.
// Malformed and out-of-range records are dropped and counted, never reported
// as errors.
func Aggregate(records []Record, w Window, c *Classifier) Series {
	g := SelectGranularity(w)
	buckets := BuildBuckets(w, g)
	categories := c.Categories()

	totals := make(map[Category]int, len(categories))
	for _, cat := range categories {
		totals[cat] = 0
		for i := range buckets {
			buckets[i].Counts[cat] = 0
		}
	}

	var dropped DropStats
	for _, r := range records {
		cl, excl := c.Classify(r, w, g)
		switch excl {
		case ExcludedUnparseable:
			dropped.Unparseable++
			continue
		case ExcludedOutOfRange:
			dropped.OutOfRange++
			continue
		}

		counts := buckets[cl.BucketIndex].Counts
		for _, cat := range cl.Categories {
			counts[cat]++
			totals[cat]++
		}
	}

	return Series{
		Window:      w,
		Granularity: g,
		Categories:  categories,
		Buckets:     buckets,
		Totals:      totals,
		Dropped:     dropped,
	}
}

// Shares returns each category's total as a percentage of the "all" total,
// rounded to two decimal places. Shares are zero when nothing matched.
func (s Series) Shares() map[Category]decimal.Decimal {
	shares := make(map[Category]decimal.Decimal, len(s.Totals))
	all := s.Totals[CategoryAll]
	for cat, n := range s.Totals {
		if all == 0 {
			shares[cat] = decimal.Zero
			continue
		}
		shares[cat] = decimal.NewFromInt(int64(n)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(all))).
			Round(2)
	}
	return shares
}
