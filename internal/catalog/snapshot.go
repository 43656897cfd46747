package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the immutable in-memory catalog a running server serves from.
// It is built once at startup from the CMS and never mutated afterwards, so
// handlers may read it concurrently without locking.
type Snapshot struct {
	BuildID   string
	FetchedAt time.Time

	categories     []Category
	products       []Product
	categoryBySlug map[string]Category
	productBySlug  map[string]Product
}

// NewSnapshot indexes the fetched catalog. Duplicate slugs are a data error:
// slugs are the routing identity, so the build fails rather than shadowing
// one page with another.
func NewSnapshot(categories []Category, products []Product) (*Snapshot, error) {
	s := &Snapshot{
		BuildID:        uuid.NewString(),
		FetchedAt:      time.Now(),
		categories:     categories,
		products:       products,
		categoryBySlug: make(map[string]Category, len(categories)),
		productBySlug:  make(map[string]Product, len(products)),
	}
	for _, c := range categories {
		if c.Slug == "" {
			return nil, fmt.Errorf("catalog: category %q has empty slug", c.ID)
		}
		if _, dup := s.categoryBySlug[c.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate category slug %q", c.Slug)
		}
		s.categoryBySlug[c.Slug] = c
	}
	for _, p := range products {
		if p.Slug == "" {
			return nil, fmt.Errorf("catalog: product %q has empty slug", p.ID)
		}
		if _, dup := s.productBySlug[p.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate product slug %q", p.Slug)
		}
		s.productBySlug[p.Slug] = p
	}
	return s, nil
}

// Categories returns categories in CMS order.
func (s *Snapshot) Categories() []Category { return s.categories }

// Products returns all products in CMS order, as listing projections.
func (s *Snapshot) Products() []ProductSummary {
	out := make([]ProductSummary, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Summary())
	}
	return out
}

// CategoryBySlug looks up a category by its routing slug.
func (s *Snapshot) CategoryBySlug(slug string) (Category, bool) {
	c, ok := s.categoryBySlug[slug]
	return c, ok
}

// ProductBySlug looks up a fully resolved product by its routing slug.
func (s *Snapshot) ProductBySlug(slug string) (Product, bool) {
	p, ok := s.productBySlug[slug]
	return p, ok
}

// ProductsInCategory returns the listing projections of the products that
// belong to the given category, in CMS order.
func (s *Snapshot) ProductsInCategory(slug string) []ProductSummary {
	out := make([]ProductSummary, 0)
	for _, p := range s.products {
		if p.CategorySlug == slug {
			out = append(out, p.Summary())
		}
	}
	return out
}
