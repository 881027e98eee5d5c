package engine

import "strings"

// Dimension is a bit set of filter dimensions.
type Dimension uint8

const (
	DimProduct Dimension = 1 << iota
	DimType
	DimSource
)

// Filter is the active dashboard filter state. Empty fields match anything.
type Filter struct {
	Product ProductFamily
	Type    string
	Source  string
}

// Allows reports whether r passes every filter dimension named in gates.
func (f Filter) Allows(r Record, gates Dimension) bool {
	if gates&DimProduct != 0 && f.Product != ProductAny && ProductFamilyOf(r) != f.Product {
		return false
	}
	if gates&DimType != 0 && f.Type != "" && !strings.EqualFold(strings.TrimSpace(r.Type), strings.TrimSpace(f.Type)) {
		return false
	}
	if gates&DimSource != 0 && f.Source != "" && !strings.EqualFold(strings.TrimSpace(r.Source), strings.TrimSpace(f.Source)) {
		return false
	}
	return true
}

// CategoryDef binds a category to its membership predicate and to the filter
// dimensions that gate it.
type CategoryDef struct {
	Key   Category
	Match func(Record) bool
	Gates Dimension
}

// DefaultCategories returns the tracked categories for a record kind. Lead
// categories honour the product and source filters, demo categories the
// product and type filters. Breakdown categories skip the filter of the
// dimension they break down.
func DefaultCategories(kind Kind) []CategoryDef {
	switch kind {
	case KindDemo:
		return []CategoryDef{
			{Key: CategoryAll, Match: always, Gates: DimProduct | DimType},
			{Key: CategoryDrEase, Match: IsDrEase, Gates: DimProduct | DimType},
			{Key: CategoryEasePOS, Match: IsEasePOS, Gates: DimProduct | DimType},
			{Key: CategoryOtherProduct, Match: IsOtherProduct, Gates: DimProduct | DimType},
			{Key: CategoryOnline, Match: IsOnline, Gates: DimProduct},
			{Key: CategoryOnsite, Match: IsOnsite, Gates: DimProduct},
		}
	default:
		return []CategoryDef{
			{Key: CategoryAll, Match: always, Gates: DimProduct | DimSource},
			{Key: CategoryDrEase, Match: IsDrEase, Gates: DimProduct | DimSource},
			{Key: CategoryEasePOS, Match: IsEasePOS, Gates: DimProduct | DimSource},
			{Key: CategoryOtherProduct, Match: IsOtherProduct, Gates: DimProduct | DimSource},
			{Key: CategorySourceKnown, Match: HasKnownSource, Gates: DimProduct},
			{Key: CategorySourceUnknown, Match: HasUnknownSource, Gates: DimProduct},
		}
	}
}

// Exclusion says why a record was left out of a run.
type Exclusion int

const (
	Included Exclusion = iota
	ExcludedUnparseable
	ExcludedOutOfRange
)

// Classification is where an included record lands.
type Classification struct {
	BucketIndex int
	Categories  []Category
}

type Classifier struct {
	defs       []CategoryDef
	filter     Filter
	normalizer *Normalizer
}

func NewClassifier(defs []CategoryDef, filter Filter) *Classifier {
	return &Classifier{defs: defs, filter: filter, normalizer: defaultNormalizer}
}

// NewClassifierFor builds a classifier with the default categories of kind.
func NewClassifierFor(kind Kind, filter Filter) *Classifier {
	return NewClassifier(DefaultCategories(kind), filter)
}

// Categories lists the tracked category keys in definition order.
func (c *Classifier) Categories() []Category {
	keys := make([]Category, len(c.defs))
	for i, d := range c.defs {
		keys[i] = d.Key
	}
	return keys
}

// Classify normalises the record's date, locates its bucket and evaluates
// every category. A record gated out of all categories is still Included with
// an empty category list.
func (c *Classifier) Classify(r Record, w Window, g Granularity) (Classification, Exclusion) {
	d, ok := c.normalizer.Normalize(r.Date)
	if !ok {
		return Classification{}, ExcludedUnparseable
	}

	idx, ok := BucketIndex(w, g, d)
	if !ok {
		return Classification{}, ExcludedOutOfRange
	}

	cl := Classification{BucketIndex: idx}
	for _, def := range c.defs {
		if !c.filter.Allows(r, def.Gates) {
			continue
		}
		if def.Match(r) {
			cl.Categories = append(cl.Categories, def.Key)
		}
	}
	return cl, Included
}
