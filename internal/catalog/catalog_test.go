package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaries(titles ...string) []ProductSummary {
	out := make([]ProductSummary, 0, len(titles))
	for i, t := range titles {
		out = append(out, ProductSummary{ID: string(rune('a' + i)), Title: t, Slug: t})
	}
	return out
}

func TestFilterByTitleCaseInsensitive(t *testing.T) {
	in := summaries("Road Bike", "Mountain Bike", "Helmet")
	got := FilterByTitle(in, "bike")
	require.Len(t, got, 2)
	assert.Equal(t, "Road Bike", got[0].Title)
	assert.Equal(t, "Mountain Bike", got[1].Title)
}

func TestFilterByTitleEmptyQueryMeansNoFilter(t *testing.T) {
	in := summaries("Road Bike", "Helmet")
	assert.Equal(t, in, FilterByTitle(in, ""))
	assert.Equal(t, in, FilterByTitle(in, "   "))
}

func TestFilterByTitlePreservesOrder(t *testing.T) {
	in := summaries("B-two", "A-one", "B-three")
	got := FilterByTitle(in, "b-")
	require.Len(t, got, 2)
	assert.Equal(t, "B-two", got[0].Title)
	assert.Equal(t, "B-three", got[1].Title)
}

func TestFilterByTitleNoMatches(t *testing.T) {
	got := FilterByTitle(summaries("Helmet"), "xyzzy")
	assert.Empty(t, got)
}

func TestPriceDisplayable(t *testing.T) {
	assert.False(t, Price{}.Displayable(), "absent price")
	assert.False(t, NewPrice(decimal.Zero).Displayable(), "zero amount is hidden by policy")
	assert.True(t, NewPrice(decimal.NewFromFloat(19.99)).Displayable())
}

func TestProductSummaryProjection(t *testing.T) {
	img := &Image{URL: "/img/widget.png"}
	p := Product{
		ID:          "1",
		Title:       "Widget",
		Slug:        "widget",
		Price:       NewPrice(decimal.NewFromInt(5)),
		DealerURL:   "https://dealer.test",
		Description: "**bold**",
		Image:       img,
		Specifications: []Specification{
			{Key: "Color", Value: "Red"},
		},
	}
	s := p.Summary()
	assert.Equal(t, "1", s.ID)
	assert.Equal(t, "Widget", s.Title)
	assert.Equal(t, "widget", s.Slug)
	assert.True(t, s.Price.Valid)
	assert.Same(t, img, s.Image)
}

func TestSnapshotLookups(t *testing.T) {
	cats := []Category{
		{ID: "1", Name: "Cars", Slug: "cars"},
		{ID: "2", Name: "Bikes", Slug: "bikes"},
	}
	prods := []Product{
		{ID: "p1", Title: "Roadster", Slug: "roadster", CategorySlug: "cars"},
		{ID: "p2", Title: "Gravel Bike", Slug: "gravel-bike", CategorySlug: "bikes"},
		{ID: "p3", Title: "Coupe", Slug: "coupe", CategorySlug: "cars"},
	}
	s, err := NewSnapshot(cats, prods)
	require.NoError(t, err)
	assert.NotEmpty(t, s.BuildID)

	got := s.Categories()
	require.Len(t, got, 2)
	assert.Equal(t, "Cars", got[0].Name)
	assert.Equal(t, "Bikes", got[1].Name)

	c, ok := s.CategoryBySlug("bikes")
	require.True(t, ok)
	assert.Equal(t, "Bikes", c.Name)

	p, ok := s.ProductBySlug("coupe")
	require.True(t, ok)
	assert.Equal(t, "Coupe", p.Title)

	_, ok = s.ProductBySlug("missing")
	assert.False(t, ok)

	inCars := s.ProductsInCategory("cars")
	require.Len(t, inCars, 2)
	assert.Equal(t, "Roadster", inCars[0].Title)
	assert.Equal(t, "Coupe", inCars[1].Title)
}

func TestSnapshotRejectsDuplicateSlugs(t *testing.T) {
	_, err := NewSnapshot(nil, []Product{
		{ID: "p1", Title: "A", Slug: "same"},
		{ID: "p2", Title: "B", Slug: "same"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product slug")

	_, err = NewSnapshot([]Category{{ID: "c1", Name: "X"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty slug")
}
