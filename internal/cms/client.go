// Package cms provides read-only access to the headless CMS the catalog is
// authored in. The whole catalog is fetched once at startup; a failed or
// partial fetch is an error that should abort the build, never a
// partially-rendered storefront.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"millbrook.dev/catalog-web/internal/catalog"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

// Client fetches catalog data from a CMS endpoint, or from local YAML
// fixtures when no endpoint is configured.
type Client struct {
	baseURL    string
	http       *http.Client
	contentDir string
}

// NewClient constructs a Client. When baseURL is empty the client serves
// fixtures from contentDir exclusively.
func NewClient(baseURL, contentDir string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:       &http.Client{Timeout: 5 * time.Second},
		contentDir: contentDir,
	}
}

// Load fetches the full catalog: all categories and all fully-resolved
// products. Any malformed record fails the load; the caller is expected to
// treat that as fatal.
func (c *Client) Load(ctx context.Context) ([]catalog.Category, []catalog.Product, error) {
	if c == nil || c.baseURL == "" {
		return loadFixtures(c.dir())
	}
	categories, err := c.fetchCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	products, err := c.fetchProducts(ctx)
	if err != nil {
		return nil, nil, err
	}
	return categories, products, nil
}

func (c *Client) dir() string {
	if c == nil || strings.TrimSpace(c.contentDir) == "" {
		return "content"
	}
	return c.contentDir
}

func (c *Client) fetchCategories(ctx context.Context) ([]catalog.Category, error) {
	var raw []rawCategory
	if err := c.getJSON(ctx, "categories", &raw); err != nil {
		return nil, err
	}
	out := make([]catalog.Category, 0, len(raw))
	for _, rc := range raw {
		cat, err := rc.toCategory()
		if err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, nil
}

func (c *Client) fetchProducts(ctx context.Context) ([]catalog.Product, error) {
	var raw []rawProduct
	if err := c.getJSON(ctx, "products", &raw); err != nil {
		return nil, err
	}
	out := make([]catalog.Product, 0, len(raw))
	for _, rp := range raw {
		p, err := rp.toProduct()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return err
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 5 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("cms: %s status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("cms: decode %s: %w", path, err)
	}
	return nil
}

// Raw payload shapes mirror the CMS REST schema. Prices arrive as JSON
// numbers; json.Number keeps them exact until they become decimals.

type rawImageFormat struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

type rawImage struct {
	URL     string                    `json:"url"`
	Alt     string                    `json:"alternativeText"`
	Formats map[string]rawImageFormat `json:"formats"`
}

type rawCategory struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Image *rawImage `json:"image"`
}

type rawSpecification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type rawProductSummary struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Slug  string       `json:"slug"`
	Price *json.Number `json:"price"`
	Image *rawImage    `json:"image"`
}

type rawProduct struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Slug            string             `json:"slug"`
	Price           *json.Number       `json:"price"`
	DealerURL       string             `json:"dealerUrl"`
	Description     string             `json:"productDescription"`
	Image           *rawImage          `json:"image"`
	Specifications  []rawSpecification `json:"specifications"`
	RelatedProducts *struct {
		Products []rawProductSummary `json:"products"`
	} `json:"relatedProducts"`
	Category *struct {
		Slug string `json:"slug"`
	} `json:"category"`
}

func (ri *rawImage) toImage() *catalog.Image {
	if ri == nil || ri.URL == "" {
		return nil
	}
	img := &catalog.Image{URL: ri.URL, Alt: ri.Alt}
	for _, f := range ri.Formats {
		if f.URL == "" || f.Width <= 0 {
			continue
		}
		img.Variants = append(img.Variants, catalog.ImageVariant{URL: f.URL, Width: f.Width})
	}
	return img
}

func toPrice(n *json.Number) (catalog.Price, error) {
	if n == nil {
		return catalog.Price{}, nil
	}
	amount, err := decimal.NewFromString(n.String())
	if err != nil {
		return catalog.Price{}, fmt.Errorf("cms: bad price %q: %w", n.String(), err)
	}
	return catalog.NewPrice(amount), nil
}

func (rc rawCategory) toCategory() (catalog.Category, error) {
	if rc.ID == "" || rc.Name == "" || rc.Slug == "" {
		return catalog.Category{}, fmt.Errorf("cms: category %q missing id, name or slug", rc.ID)
	}
	return catalog.Category{
		ID:    rc.ID,
		Name:  rc.Name,
		Slug:  rc.Slug,
		Image: rc.Image.toImage(),
	}, nil
}

func (rs rawProductSummary) toSummary() (catalog.ProductSummary, error) {
	if rs.ID == "" || rs.Title == "" || rs.Slug == "" {
		return catalog.ProductSummary{}, fmt.Errorf("cms: related product %q missing id, title or slug", rs.ID)
	}
	price, err := toPrice(rs.Price)
	if err != nil {
		return catalog.ProductSummary{}, err
	}
	return catalog.ProductSummary{
		ID:    rs.ID,
		Title: rs.Title,
		Slug:  rs.Slug,
		Price: price,
		Image: rs.Image.toImage(),
	}, nil
}

func (rp rawProduct) toProduct() (catalog.Product, error) {
	if rp.ID == "" || rp.Title == "" || rp.Slug == "" {
		return catalog.Product{}, fmt.Errorf("cms: product %q missing id, title or slug", rp.ID)
	}
	price, err := toPrice(rp.Price)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("cms: product %q: %w", rp.Slug, err)
	}
	p := catalog.Product{
		ID:          rp.ID,
		Title:       rp.Title,
		Slug:        rp.Slug,
		Price:       price,
		DealerURL:   strings.TrimSpace(rp.DealerURL),
		Description: rp.Description,
		Image:       rp.Image.toImage(),
	}
	for _, s := range rp.Specifications {
		p.Specifications = append(p.Specifications, catalog.Specification{Key: s.Key, Value: s.Value})
	}
	if rp.RelatedProducts != nil {
		for _, rs := range rp.RelatedProducts.Products {
			sum, err := rs.toSummary()
			if err != nil {
				return catalog.Product{}, fmt.Errorf("cms: product %q: %w", rp.Slug, err)
			}
			p.Related = append(p.Related, sum)
		}
	}
	if rp.Category != nil {
		p.CategorySlug = rp.Category.Slug
	}
	return p, nil
}
