package cms

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"millbrook.dev/catalog-web/internal/catalog"
)

// Fixture files let the storefront run without a CMS endpoint: a
// categories.yaml and a products.yaml under the content directory. Related
// products are written as slugs and resolved into listing projections after
// both files have loaded.

type fixtureImage struct {
	URL      string `yaml:"url"`
	Alt      string `yaml:"alt"`
	Variants []struct {
		URL   string `yaml:"url"`
		Width int    `yaml:"width"`
	} `yaml:"variants"`
}

type fixtureCategory struct {
	ID    string        `yaml:"id"`
	Name  string        `yaml:"name"`
	Slug  string        `yaml:"slug"`
	Image *fixtureImage `yaml:"image"`
}

type fixtureProduct struct {
	ID             string        `yaml:"id"`
	Title          string        `yaml:"title"`
	Slug           string        `yaml:"slug"`
	Price          *string       `yaml:"price"`
	DealerURL      string        `yaml:"dealerUrl"`
	Description    string        `yaml:"description"`
	Category       string        `yaml:"category"`
	Image          *fixtureImage `yaml:"image"`
	Specifications []struct {
		Key   string `yaml:"key"`
		Value string `yaml:"value"`
	} `yaml:"specifications"`
	Related []string `yaml:"related"`
}

func loadFixtures(dir string) ([]catalog.Category, []catalog.Product, error) {
	var fcats []fixtureCategory
	if err := readYAML(filepath.Join(dir, "categories.yaml"), &fcats); err != nil {
		return nil, nil, err
	}
	var fprods []fixtureProduct
	if err := readYAML(filepath.Join(dir, "products.yaml"), &fprods); err != nil {
		return nil, nil, err
	}

	categories := make([]catalog.Category, 0, len(fcats))
	for _, fc := range fcats {
		if fc.ID == "" || fc.Name == "" || fc.Slug == "" {
			return nil, nil, fmt.Errorf("cms: fixture category %q missing id, name or slug", fc.ID)
		}
		categories = append(categories, catalog.Category{
			ID:    fc.ID,
			Name:  fc.Name,
			Slug:  fc.Slug,
			Image: fc.Image.toImage(),
		})
	}

	products := make([]catalog.Product, 0, len(fprods))
	for _, fp := range fprods {
		p, err := fp.toProduct()
		if err != nil {
			return nil, nil, err
		}
		products = append(products, p)
	}

	// second pass: resolve related slugs into projections
	bySlug := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		bySlug[p.Slug] = p
	}
	for i, fp := range fprods {
		for _, slug := range fp.Related {
			rel, ok := bySlug[slug]
			if !ok {
				return nil, nil, fmt.Errorf("cms: fixture product %q references unknown related slug %q", fp.Slug, slug)
			}
			products[i].Related = append(products[i].Related, rel.Summary())
		}
	}
	return categories, products, nil
}

func readYAML(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cms: read fixtures: %w", err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("cms: parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (fi *fixtureImage) toImage() *catalog.Image {
	if fi == nil || fi.URL == "" {
		return nil
	}
	img := &catalog.Image{URL: fi.URL, Alt: fi.Alt}
	for _, v := range fi.Variants {
		if v.URL == "" || v.Width <= 0 {
			continue
		}
		img.Variants = append(img.Variants, catalog.ImageVariant{URL: v.URL, Width: v.Width})
	}
	return img
}

func (fp fixtureProduct) toProduct() (catalog.Product, error) {
	if fp.ID == "" || fp.Title == "" || fp.Slug == "" {
		return catalog.Product{}, fmt.Errorf("cms: fixture product %q missing id, title or slug", fp.ID)
	}
	p := catalog.Product{
		ID:           fp.ID,
		Title:        fp.Title,
		Slug:         fp.Slug,
		DealerURL:    fp.DealerURL,
		Description:  fp.Description,
		CategorySlug: fp.Category,
		Image:        fp.Image.toImage(),
	}
	if fp.Price != nil {
		amount, err := decimal.NewFromString(*fp.Price)
		if err != nil {
			return catalog.Product{}, fmt.Errorf("cms: fixture product %q bad price %q: %w", fp.Slug, *fp.Price, err)
		}
		p.Price = catalog.NewPrice(amount)
	}
	for _, s := range fp.Specifications {
		p.Specifications = append(p.Specifications, catalog.Specification{Key: s.Key, Value: s.Value})
	}
	return p, nil
}
