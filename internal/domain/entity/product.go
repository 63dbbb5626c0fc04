package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products on the menu.
type Category string

const (
	// CategoryAll is the filter sentinel. Products never carry it.
	CategoryAll      Category = "all"
	CategoryCoffee   Category = "coffee"
	CategoryTea      Category = "tea"
	CategorySmoothie Category = "smoothie"
	CategoryOther    Category = "other"
)

// Categories lists product categories in menu order, without the "all" sentinel.
var Categories = []Category{CategoryCoffee, CategoryTea, CategorySmoothie, CategoryOther}

func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is a product category. "all" is not.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCoffee, CategoryTea, CategorySmoothie, CategoryOther:
		return true
	default:
		return false
	}
}

// IsFilter reports whether c may be used as a menu filter.
func (c Category) IsFilter() bool {
	return c == CategoryAll || c.IsValid()
}

// Label is an optional promotional badge.
type Label string

const (
	LabelNone       Label = ""
	LabelNew        Label = "new"
	LabelPopular    Label = "popular"
	LabelBestseller Label = "bestseller"
)

// Labels lists every promotional label.
var Labels = []Label{LabelNew, LabelPopular, LabelBestseller}

func (l Label) String() string {
	return string(l)
}

// IsValid reports whether l is a known label. The empty label is valid and means no badge.
func (l Label) IsValid() bool {
	switch l {
	case LabelNone, LabelNew, LabelPopular, LabelBestseller:
		return true
	default:
		return false
	}
}

// Product is one sellable menu item.
type Product struct {
	ID          uuid.UUID
	Name        string // Canonical (English) name.
	Description string // Canonical (English) description.
	// Per-language overrides keyed by non-canonical language. Absent or empty entries fall back to the canonical field.
	NameOverrides        map[Language]string
	DescriptionOverrides map[Language]string
	Price                decimal.Decimal
	ImageURL             string
	Label                Label
	Category             Category
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Clone returns a deep copy, so snapshots handed out never alias stored maps.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}

	cloned := *p
	cloned.NameOverrides = cloneOverrides(p.NameOverrides)
	cloned.DescriptionOverrides = cloneOverrides(p.DescriptionOverrides)

	return &cloned
}

func cloneOverrides(src map[Language]string) map[Language]string {
	if src == nil {
		return nil
	}

	dst := make(map[Language]string, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
