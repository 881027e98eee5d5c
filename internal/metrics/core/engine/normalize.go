package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateParser is one strategy in the normalisation chain.
type DateParser func(raw string) (Date, bool)

// Normalizer runs its parsers in order and stops at the first success.
type Normalizer struct {
	parsers []DateParser
}

func NewNormalizer(parsers ...DateParser) *Normalizer {
	return &Normalizer{parsers: parsers}
}

var defaultNormalizer = NewNormalizer(ParseDayFirst, ParseISOLike)

// Normalize converts a loosely formatted date string into a Date using the
// default chain (DD/MM/YYYY first, then ISO-like layouts).
func Normalize(raw string) (Date, bool) {
	return defaultNormalizer.Normalize(raw)
}

func (n *Normalizer) Normalize(raw string) (Date, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Date{}, false
	}
	for _, p := range n.parsers {
		if d, ok := p(raw); ok {
			return d, true
		}
	}
	return Date{}, false
}

var dayFirstPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// ParseDayFirst handles D/M/YYYY and DD/MM/YYYY. Components that do not form a
// real calendar date (31/02/2024) are rejected rather than rolled over.
func ParseDayFirst(raw string) (Date, bool) {
	m := dayFirstPattern.FindStringSubmatch(raw)
	if m == nil {
		return Date{}, false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return Date{}, false
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return Date{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return Date{}, false
	}

	return validDate(year, month, day)
}

// isoLikeLayouts are tried in order by ParseISOLike.
var isoLikeLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon Jan 2 2006",
	"Mon, 02 Jan 2006 15:04:05 MST",
}

// ParseISOLike handles ISO 8601 and a handful of common spelled-out layouts.
// The calendar date is read as written; zone offsets are not applied.
func ParseISOLike(raw string) (Date, bool) {
	for _, layout := range isoLikeLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return DateOf(t), true
	}
	return Date{}, false
}

// FormatDayFirst renders d as DD/MM/YYYY, the inverse of ParseDayFirst.
func FormatDayFirst(d Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func validDate(year, month, day int) (Date, bool) {
	if month < 1 || month > 12 || day < 1 || year < 1 {
		return Date{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return Date{}, false
	}
	return DateOf(t), true
}
