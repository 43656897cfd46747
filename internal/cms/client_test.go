package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtures(t *testing.T, categories, products string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "categories.yaml"), []byte(categories), 0o644); err != nil {
		t.Fatalf("write categories fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "products.yaml"), []byte(products), 0o644); err != nil {
		t.Fatalf("write products fixture: %v", err)
	}
	return dir
}

const categoriesYAML = `
- id: "1"
  name: Cars
  slug: cars
- id: "2"
  name: Bikes
  slug: bikes
  image:
    url: /assets/img/bikes.jpg
    alt: Bikes
    variants:
      - url: /assets/img/bikes-480.jpg
        width: 480
`

const productsYAML = `
- id: p1
  title: Roadster
  slug: roadster
  price: "24999.00"
  dealerUrl: https://dealer.test/roadster
  category: cars
  description: |
    A **fast** roadster.
  specifications:
    - key: Color
      value: Red
    - key: Color
      value: Blue
  related:
    - coupe
- id: p2
  title: Coupe
  slug: coupe
  category: cars
`

func TestLoadFixtures(t *testing.T) {
	dir := writeFixtures(t, categoriesYAML, productsYAML)
	client := NewClient("", dir)
	categories, products, err := client.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Cars", categories[0].Name)
	assert.Equal(t, "Bikes", categories[1].Name)
	require.NotNil(t, categories[1].Image)
	assert.Equal(t, "/assets/img/bikes.jpg", categories[1].Image.URL)
	require.Len(t, categories[1].Image.Variants, 1)

	require.Len(t, products, 2)
	roadster := products[0]
	assert.Equal(t, "Roadster", roadster.Title)
	assert.True(t, roadster.Price.Valid)
	assert.Equal(t, "24999.00", roadster.Price.Amount.String())
	require.Len(t, roadster.Specifications, 2)
	assert.Equal(t, "Red", roadster.Specifications[0].Value)
	assert.Equal(t, "Blue", roadster.Specifications[1].Value)
	require.Len(t, roadster.Related, 1)
	assert.Equal(t, "coupe", roadster.Related[0].Slug)

	coupe := products[1]
	assert.False(t, coupe.Price.Valid, "missing price stays absent")
	assert.Empty(t, coupe.Related)
}

func TestLoadFixturesUnknownRelatedSlug(t *testing.T) {
	dir := writeFixtures(t, categoriesYAML, `
- id: p1
  title: Roadster
  slug: roadster
  related:
    - does-not-exist
`)
	_, _, err := NewClient("", dir).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown related slug")
}

func TestLoadFixturesBadPrice(t *testing.T) {
	dir := writeFixtures(t, categoriesYAML, `
- id: p1
  title: Roadster
  slug: roadster
  price: "not-a-number"
`)
	_, _, err := NewClient("", dir).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad price")
}

func TestLoadFixturesMissingFile(t *testing.T) {
	_, _, err := NewClient("", t.TempDir()).Load(context.Background())
	require.Error(t, err)
}

func TestLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/categories":
			_, _ = w.Write([]byte(`[
				{"id":"1","name":"Cars","slug":"cars"},
				{"id":"2","name":"Bikes","slug":"bikes"}
			]`))
		case "/products":
			_, _ = w.Write([]byte(`[{
				"id":"p1","title":"Widget","slug":"widget","price":19.99,
				"dealerUrl":"https://x.test","productDescription":"**bold**",
				"category":{"slug":"cars"},
				"image":{"url":"/uploads/widget.png","alternativeText":"Widget","formats":{
					"small":{"url":"/uploads/widget-480.png","width":480},
					"medium":{"url":"/uploads/widget-1024.png","width":1024}
				}},
				"specifications":[{"key":"Color","value":"Red"},{"key":"Color","value":"Blue"}],
				"relatedProducts":{"products":[
					{"id":"p2","title":"Gadget","slug":"gadget","price":5}
				]}
			}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	categories, products, err := NewClient(srv.URL, "").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "Widget", p.Title)
	assert.Equal(t, "19.99", p.Price.Amount.String())
	assert.Equal(t, "cars", p.CategorySlug)
	require.NotNil(t, p.Image)
	assert.Equal(t, "/uploads/widget.png", p.Image.URL)
	assert.Len(t, p.Image.Variants, 2)
	require.Len(t, p.Related, 1)
	assert.Equal(t, "Gadget", p.Related[0].Title)
	assert.Equal(t, "5", p.Related[0].Price.Amount.String())
}

func TestLoadRemoteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL, "").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestLoadRemoteMalformedProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/categories" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":"p1","title":"","slug":"x"}]`))
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL, "").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id, title or slug")
}
