package seo

import (
	"strings"

	"millbrook.dev/catalog-web/internal/catalog"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is the per-page metadata consumed by the head template.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

const siteName = "Millbrook Catalog"

// ForCategoryIndex builds metadata for the category index page.
func ForCategoryIndex(baseURL string) Meta {
	canonical := AbsoluteURL(baseURL, "/")
	return Meta{
		Title:     "Categories",
		Canonical: canonical,
		OG: OpenGraph{
			Title:    "Categories",
			Type:     "website",
			URL:      canonical,
			SiteName: siteName,
		},
		Twitter: Twitter{Card: "summary"},
		JSONLD: []string{
			JSON(WebSite(siteName, baseURL, "")),
		},
	}
}

// ForProductIndex builds metadata for the all-products listing page.
func ForProductIndex(baseURL string) Meta {
	canonical := AbsoluteURL(baseURL, "/products")
	return Meta{
		Title:     "Products",
		Canonical: canonical,
		OG: OpenGraph{
			Title:    "Products",
			Type:     "website",
			URL:      canonical,
			SiteName: siteName,
		},
		Twitter: Twitter{Card: "summary"},
	}
}

// ForCategory builds metadata for a single category listing page.
func ForCategory(c catalog.Category, baseURL string) Meta {
	canonical := AbsoluteURL(baseURL, "/categories/"+c.Slug)
	m := Meta{
		Title:     c.Name,
		Canonical: canonical,
		OG: OpenGraph{
			Title:    c.Name,
			Type:     "website",
			URL:      canonical,
			SiteName: siteName,
		},
		Twitter: Twitter{Card: "summary"},
	}
	if c.Image != nil {
		m.OG.Image = c.Image.URL
		m.Twitter.Image = c.Image.URL
	}
	return m
}

// ForProduct builds metadata for a product detail page. The OG image is the
// product's raw asset URL, not one of the responsive renditions used in the
// body.
func ForProduct(p catalog.Product, baseURL string) Meta {
	canonical := AbsoluteURL(baseURL, "/products/"+p.Slug)
	m := Meta{
		Title:     p.Title,
		Canonical: canonical,
		OG: OpenGraph{
			Title:    p.Title,
			Type:     "product",
			URL:      canonical,
			SiteName: siteName,
		},
		Twitter: Twitter{Card: "summary_large_image"},
	}
	var imageURL string
	if p.Image != nil {
		imageURL = p.Image.URL
		m.OG.Image = imageURL
		m.Twitter.Image = imageURL
	}
	m.JSONLD = append(m.JSONLD, JSON(Product(p.Title, "", canonical, imageURL, p.ID)))
	return m
}

// AbsoluteURL joins the configured site base URL with a path. With no base
// configured the path is returned as-is.
func AbsoluteURL(baseURL, path string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return path
	}
	return baseURL + path
}
