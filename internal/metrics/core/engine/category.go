package engine

import "strings"

// Kind is the type of business record (lead or demo).
type Kind string

const (
	KindLead Kind = "lead"
	KindDemo Kind = "demo"
)

func (k Kind) Valid() bool {
	return k == KindLead || k == KindDemo
}

// Record is a raw lead or demo row as materialised by the caller. Fields are
// free text; the engine never mutates a Record.
type Record struct {
	Kind    Kind
	Date    string
	Product string
	Type    string
	Source  string
}

// Category is a tally key tracked per bucket. Categories are non-exclusive.
type Category string

const (
	CategoryAll           Category = "all"
	CategoryDrEase        Category = "dr_ease"
	CategoryEasePOS       Category = "ease_pos"
	CategoryOtherProduct  Category = "other_product"
	CategoryOnline        Category = "online"
	CategoryOnsite        Category = "onsite"
	CategorySourceKnown   Category = "source_known"
	CategorySourceUnknown Category = "source_unknown"
)

// ProductFamily is the closed set of product groupings used by both the
// product categories and the product filter.
type ProductFamily string

const (
	ProductAny     ProductFamily = ""
	ProductDrEase  ProductFamily = "dr_ease"
	ProductEasePOS ProductFamily = "ease_pos"
	ProductOther   ProductFamily = "other"
)

// ParseProductFamily accepts the family keys as well as display names such as
// "Dr.Ease" or "Ease POS".
func ParseProductFamily(s string) (ProductFamily, bool) {
	switch key := squash(s); key {
	case "", "all", "any":
		return ProductAny, true
	case "drease":
		return ProductDrEase, true
	case "easepos":
		return ProductEasePOS, true
	case "other":
		return ProductOther, true
	default:
		return "", false
	}
}

// ProductFamilyOf classifies a record's product text. Dr.Ease variants
// ("Dr.Ease", "Dr. Ease Clinic", "DR-EASE") win over Ease POS.
func ProductFamilyOf(r Record) ProductFamily {
	p := squash(r.Product)
	switch {
	case strings.Contains(p, "drease"):
		return ProductDrEase
	case strings.Contains(p, "easepos"):
		return ProductEasePOS
	default:
		return ProductOther
	}
}

func IsDrEase(r Record) bool { return ProductFamilyOf(r) == ProductDrEase }
func IsEasePOS(r Record) bool { return ProductFamilyOf(r) == ProductEasePOS }
func IsOtherProduct(r Record) bool { return ProductFamilyOf(r) == ProductOther }

func IsOnline(r Record) bool {
	switch squash(r.Type) {
	case "online", "virtual", "remote":
		return true
	}
	return false
}

func IsOnsite(r Record) bool {
	switch squash(r.Type) {
	case "onsite", "offline", "inperson", "visit":
		return true
	}
	return false
}

func HasKnownSource(r Record) bool { return strings.TrimSpace(r.Source) != "" }
func HasUnknownSource(r Record) bool { return !HasKnownSource(r) }

func always(Record) bool { return true }

// squash lowercases s and drops everything that is not a letter or digit.
func squash(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
