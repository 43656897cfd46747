package handlers

import (
	"html/template"

	"millbrook.dev/catalog-web/internal/images"
	"millbrook.dev/catalog-web/internal/nav"
	"millbrook.dev/catalog-web/internal/seo"
)

// PageData is the view model every full page renders through the shared
// layout. Exactly one of the payload pointers is set per page.
type PageData struct {
	Title string
	Path  string
	SEO   seo.Meta

	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	CategoryIndex *CategoryIndexView
	Category      *CategoryView
	Product       *ProductView
	Error         *ErrorView
}

// CategoryCard is one tile in the category grid.
type CategoryCard struct {
	ID    string
	Name  string
	Href  string
	Image *images.View
}

// ProductCard is one tile in a product grid. It is built from the listing
// projection only, so a card can never leak detail-only fields.
type ProductCard struct {
	ID           string
	Title        string
	Href         string
	ShowPrice    bool
	PriceDisplay string
	Image        *images.View
}

// CategoryIndexView backs the "/" page.
type CategoryIndexView struct {
	Heading    string
	Categories []CategoryCard
}

// CategoryView backs a product listing page with its search box: either one
// category's grid or the all-products page.
type CategoryView struct {
	Heading    string
	SearchPath string // the path the search box submits back to
	Query      string
	Grid       string // layout token consumed by the product list partial
	Cards      []ProductCard
}

// SpecRow is one key/value row of the specification table. RowKey combines
// the key with its position so duplicate keys stay distinct.
type SpecRow struct {
	RowKey string
	Key    string
	Value  string
}

// ProductView backs the product detail page. All layout branching is decided
// here so the template stays declarative.
type ProductView struct {
	Title        string
	Image        *images.View
	ShowPrice    bool
	PriceDisplay string
	PanelJustify string // "between" when specs exist, "center" otherwise
	Specs        []SpecRow
	ShowDealer   bool
	DealerURL    string
	Description  template.HTML
	ShowRelated  bool
	Related      []ProductCard
	RelatedGrid  string
}

// ErrorView backs the error page.
type ErrorView struct {
	Status  int
	Message string
}
