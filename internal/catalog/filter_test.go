package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(v float64) *float64 { return &v }

func sampleProducts() []Product {
	return []Product{
		{ID: "1", Name: "Trail Shoe", Description: "Grippy outsole", Price: 120, Brand: "Brand A", Category: "shoes", CreatedAt: "2024-03-01T10:00:00"},
		{ID: "2", Name: "Rain Jacket", Description: "Waterproof shell", Price: 250, Brand: "Brand B", Category: "outerwear", Rating: rating(4.5), CreatedAt: "2024-05-01T10:00:00.123456"},
		{ID: "3", Name: "Wool Socks", Description: "Warm for trail runs", Price: 15, Brand: "Brand A", Category: "socks",
			Reviews: []Review{{Rating: 5}, {Rating: 3}}, CreatedAt: "2023-12-24T08:30:00"},
		{ID: "4", Name: "Headlamp", Description: "300 lumen", Price: 1200, Brand: "Brand C", Category: "gear"},
		{ID: "5", Name: "bottle", Description: "Steel", Price: 15, Brand: "Brand B", Category: "gear", CreatedAt: "2024-05-01T10:00:00Z"},
	}
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestEffectiveRating(t *testing.T) {
	p := sampleProducts()
	assert.Equal(t, 0.0, p[0].EffectiveRating(), "no rating and no reviews")
	assert.Equal(t, 4.5, p[1].EffectiveRating(), "explicit rating wins")
	assert.Equal(t, 4.0, p[2].EffectiveRating(), "mean of reviews")
}

func TestFilter(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"defaults match up to price max", NewQuery(1000), []string{"1", "2", "3", "5"}},
		{"search is case insensitive on name", Query{Search: "JACKET", PriceMax: 1000}, []string{"2"}},
		{"search matches description", Query{Search: "trail", PriceMax: 1000}, []string{"1", "3"}},
		{"price range inclusive", Query{PriceMin: 15, PriceMax: 120}, []string{"1", "3", "5"}},
		{"brand", Query{Brand: "Brand B", PriceMax: 5000}, []string{"2", "5"}},
		{"min rating", Query{MinRating: 4, PriceMax: 5000}, []string{"2", "3"}},
		{"category", Query{Category: "gear", PriceMax: 5000}, []string{"4", "5"}},
		{"no match", Query{Search: "kayak", PriceMax: 5000}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Filter(products, tc.query)))
		})
	}
}

func TestSort(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortNone, []string{"1", "2", "3", "4", "5"}},
		{SortPriceAsc, []string{"3", "5", "1", "2", "4"}},
		{SortPriceDesc, []string{"4", "2", "1", "3", "5"}},
		{SortNewest, []string{"2", "5", "1", "3", "4"}},
		{SortName, []string{"5", "4", "2", "1", "3"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.key), func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Sort(products, tc.key)))
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	_ = Sort(products, SortPriceDesc)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(products))
}

func TestApply(t *testing.T) {
	got := Apply(sampleProducts(), Query{Brand: "Brand A", PriceMax: 1000}, SortPriceAsc)
	assert.Equal(t, []string{"3", "1"}, ids(got))
}

func TestSortKeyCycle(t *testing.T) {
	k := SortNone
	seen := []SortKey{}
	for range SortKeys {
		k = k.Next()
		seen = append(seen, k)
	}
	assert.Equal(t, []SortKey{SortPriceAsc, SortPriceDesc, SortNewest, SortName, SortNone}, seen)
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("newest")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, k)

	_, err = ParseSortKey("popular")
	assert.Error(t, err)
}

func TestBrands(t *testing.T) {
	assert.Equal(t, []string{"Brand A", "Brand B", "Brand C"}, Brands(sampleProducts()))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★☆", Stars(4))
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
	assert.Equal(t, "★★★★★", Stars(7))
}
