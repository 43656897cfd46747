package handlers

import (
	"fmt"
	"strings"

	"millbrook.dev/catalog-web/internal/catalog"
	"millbrook.dev/catalog-web/internal/format"
	"millbrook.dev/catalog-web/internal/images"
	"millbrook.dev/catalog-web/internal/markdown"
	"millbrook.dev/catalog-web/internal/nav"
	"millbrook.dev/catalog-web/internal/seo"
)

// Layout tokens consumed by the grid partials.
const (
	GridThree = "cols-3"
	GridTwo   = "cols-2"
)

// BuildCategoryIndex assembles the "/" page: a "Categories" heading plus one
// card per category in CMS order.
func BuildCategoryIndex(categories []catalog.Category, baseURL string) PageData {
	cards := make([]CategoryCard, 0, len(categories))
	for _, c := range categories {
		cards = append(cards, CategoryCard{
			ID:    c.ID,
			Name:  c.Name,
			Href:  "/categories/" + c.Slug,
			Image: images.For(c.Image, "card-image"),
		})
	}
	return PageData{
		Title:       "Categories",
		Path:        "/",
		SEO:         seo.ForCategoryIndex(baseURL),
		Nav:         nav.Build("/"),
		Breadcrumbs: nav.Breadcrumbs(),
		CategoryIndex: &CategoryIndexView{
			Heading:    "Categories",
			Categories: cards,
		},
	}
}

// BuildCategory assembles a category listing page. products must already be
// scoped to the category; query filters them by title before rendering.
func BuildCategory(c catalog.Category, products []catalog.ProductSummary, query, baseURL string) PageData {
	path := "/categories/" + c.Slug
	filtered := catalog.FilterByTitle(products, query)
	pd := PageData{
		Title: c.Name,
		Path:  path,
		SEO:   seo.ForCategory(c, baseURL),
		Nav:   nav.Build(path),
		Breadcrumbs: nav.Breadcrumbs(
			nav.Crumb{Href: path, Label: c.Name},
		),
		Category: &CategoryView{
			Heading:    c.Name,
			SearchPath: path,
			Query:      strings.TrimSpace(query),
			Grid:       GridThree,
			Cards:      ProductCards(filtered),
		},
	}
	pd.SEO.JSONLD = append(pd.SEO.JSONLD, breadcrumbJSONLD(pd.Breadcrumbs, baseURL))
	return pd
}

// BuildProducts assembles the all-products listing page behind the top nav.
func BuildProducts(products []catalog.ProductSummary, query, baseURL string) PageData {
	const path = "/products"
	filtered := catalog.FilterByTitle(products, query)
	pd := PageData{
		Title: "Products",
		Path:  path,
		SEO:   seo.ForProductIndex(baseURL),
		Nav:   nav.Build(path),
		Breadcrumbs: nav.Breadcrumbs(
			nav.Crumb{Href: path, Label: "Products"},
		),
		Category: &CategoryView{
			Heading:    "Products",
			SearchPath: path,
			Query:      strings.TrimSpace(query),
			Grid:       GridThree,
			Cards:      ProductCards(filtered),
		},
	}
	pd.SEO.JSONLD = append(pd.SEO.JSONLD, breadcrumbJSONLD(pd.Breadcrumbs, baseURL))
	return pd
}

// BuildProduct assembles the product detail page, deciding every optional
// section up front.
func BuildProduct(p catalog.Product, md *markdown.Renderer, baseURL string) PageData {
	path := "/products/" + p.Slug
	view := &ProductView{
		Title:        p.Title,
		Image:        images.For(p.Image, "product-image"),
		PanelJustify: "center",
		ShowDealer:   p.DealerURL != "",
		DealerURL:    p.DealerURL,
		Description:  md.Render(p.Description),
		RelatedGrid:  GridTwo,
	}
	if p.Price.Displayable() {
		view.ShowPrice = true
		view.PriceDisplay = format.Price(p.Price)
	}
	if len(p.Specifications) > 0 {
		view.PanelJustify = "between"
		view.Specs = make([]SpecRow, 0, len(p.Specifications))
		for i, s := range p.Specifications {
			view.Specs = append(view.Specs, SpecRow{
				RowKey: fmt.Sprintf("%s-%d", s.Key, i),
				Key:    s.Key,
				Value:  s.Value,
			})
		}
	}
	if len(p.Related) > 0 {
		view.ShowRelated = true
		view.Related = ProductCards(p.Related)
	}

	crumbs := []nav.Crumb{}
	if p.CategorySlug != "" {
		crumbs = append(crumbs, nav.Crumb{
			Href:  "/categories/" + p.CategorySlug,
			Label: prettifySlug(p.CategorySlug),
		})
	}
	crumbs = append(crumbs, nav.Crumb{Href: path, Label: p.Title})

	pd := PageData{
		Title:       p.Title,
		Path:        path,
		SEO:         seo.ForProduct(p, baseURL),
		Nav:         nav.Build(path),
		Breadcrumbs: nav.Breadcrumbs(crumbs...),
		Product:     view,
	}
	pd.SEO.JSONLD = append(pd.SEO.JSONLD, breadcrumbJSONLD(pd.Breadcrumbs, baseURL))
	return pd
}

// breadcrumbJSONLD maps the rendered trail onto a schema.org BreadcrumbList.
func breadcrumbJSONLD(crumbs []nav.Crumb, baseURL string) string {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{
			Name: c.Label,
			Item: seo.AbsoluteURL(baseURL, c.Href),
		})
	}
	return seo.JSON(seo.BreadcrumbList(items))
}

// BuildError assembles the error page.
func BuildError(status int, message string) PageData {
	return PageData{
		Title: message,
		SEO:   seo.Meta{Title: message},
		Nav:   nav.Build(""),
		Error: &ErrorView{Status: status, Message: message},
	}
}

// ProductCards maps listing projections onto grid cards, preserving order.
// An empty input yields an empty slice; the partial then renders nothing.
func ProductCards(list []catalog.ProductSummary) []ProductCard {
	cards := make([]ProductCard, 0, len(list))
	for _, p := range list {
		card := ProductCard{
			ID:    p.ID,
			Title: p.Title,
			Href:  "/products/" + p.Slug,
			Image: images.For(p.Image, "card-image"),
		}
		if p.Price.Displayable() {
			card.ShowPrice = true
			card.PriceDisplay = format.Price(p.Price)
		}
		cards = append(cards, card)
	}
	return cards
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
