package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Image is a responsive image descriptor. URL points at the original asset
// (also used as the SEO/OpenGraph image); Variants are resized renditions
// used to build a srcset.
type Image struct {
	URL      string
	Alt      string
	Variants []ImageVariant
}

// ImageVariant is one rendition of an image at a known pixel width.
type ImageVariant struct {
	URL   string
	Width int
}

// Price carries an amount plus an explicit presence flag. A zero-valued
// Price (Valid=false) means the CMS supplied no price at all, which is a
// different thing from an amount of zero.
type Price struct {
	Amount decimal.Decimal
	Valid  bool
}

// NewPrice returns a present price.
func NewPrice(amount decimal.Decimal) Price {
	return Price{Amount: amount, Valid: true}
}

// Displayable reports whether a price row should be rendered for this price.
// The storefront hides the row for absent prices and, by policy, for a zero
// amount as well: upstream catalogs use 0 as "price on request" rather than
// "free". Flip zeroIsHidden if that ever changes.
func (p Price) Displayable() bool {
	if !p.Valid {
		return false
	}
	if zeroIsHidden && p.Amount.IsZero() {
		return false
	}
	return true
}

const zeroIsHidden = true

// Specification is one key/value row of a product's spec table. Keys are not
// unique; display order is whatever the CMS supplied.
type Specification struct {
	Key   string
	Value string
}

// ProductSummary is the partial projection used in listing contexts (search
// results, related-products grids). It deliberately lacks specifications,
// dealer URL and description so callers cannot reach for fields the CMS
// never resolves for list entries.
type ProductSummary struct {
	ID    string
	Title string
	Slug  string
	Price Price
	Image *Image
}

// Product is the fully resolved record behind a detail page.
type Product struct {
	ID             string
	Title          string
	Slug           string
	Price          Price
	DealerURL      string
	Description    string // markdown
	Image          *Image
	Specifications []Specification
	Related        []ProductSummary
	CategorySlug   string
}

// Summary derives the listing projection of p.
func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:    p.ID,
		Title: p.Title,
		Slug:  p.Slug,
		Price: p.Price,
		Image: p.Image,
	}
}

// Category groups products for the index page.
type Category struct {
	ID    string
	Name  string
	Slug  string
	Image *Image
}

// FilterByTitle returns the summaries whose title contains query,
// case-insensitively. An empty (or all-whitespace) query means no filter.
// Input order is preserved; the input slice is never mutated.
func FilterByTitle(products []ProductSummary, query string) []ProductSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, p)
		}
	}
	return out
}
