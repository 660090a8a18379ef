package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Query is the set of client-side filters applied to a listing.
// Zero values disable a filter, except PriceMax which must be set by the
// caller (use NewQuery for the storefront defaults).
type Query struct {
	Search    string
	PriceMin  float64
	PriceMax  float64
	Brand     string
	MinRating float64
	Category  string
}

// NewQuery returns a query that matches every product priced up to priceMax.
func NewQuery(priceMax float64) Query {
	return Query{PriceMax: priceMax}
}

// Matches reports whether p passes every filter in q.
func (q Query) Matches(p Product) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	if p.Price < q.PriceMin || p.Price > q.PriceMax {
		return false
	}
	if q.Brand != "" && p.Brand != q.Brand {
		return false
	}
	if p.EffectiveRating() < q.MinRating {
		return false
	}
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	return true
}

// Filter returns the products matching q, in input order.
func Filter(products []Product, q Query) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortKey selects a listing order.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
	SortName      SortKey = "name"
)

// SortKeys lists the orders in the order the storefront cycles through them.
var SortKeys = []SortKey{SortNone, SortPriceAsc, SortPriceDesc, SortNewest, SortName}

// Label returns the display name of a sort key.
func (k SortKey) Label() string {
	switch k {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	case SortNewest:
		return "Newest"
	case SortName:
		return "Name"
	default:
		return "Sort By"
	}
}

// Next returns the key after k in SortKeys, wrapping around.
func (k SortKey) Next() SortKey {
	i := slices.Index(SortKeys, k)
	return SortKeys[(i+1)%len(SortKeys)]
}

// ParseSortKey validates a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if slices.Contains(SortKeys, k) {
		return k, nil
	}
	return SortNone, fmt.Errorf("unknown sort %q (want price-asc, price-desc, newest or name)", s)
}

// Sort returns a sorted copy of products. Ties keep their input order and
// SortNone returns the products unchanged.
func Sort(products []Product, key SortKey) []Product {
	out := slices.Clone(products)

	var cmp func(a, b Product) int
	switch key {
	case SortPriceAsc:
		cmp = func(a, b Product) int { return compareFloat(a.Price, b.Price) }
	case SortPriceDesc:
		cmp = func(a, b Product) int { return compareFloat(b.Price, a.Price) }
	case SortNewest:
		cmp = func(a, b Product) int { return b.Created().Compare(a.Created()) }
	case SortName:
		cmp = func(a, b Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	default:
		return out
	}

	slices.SortStableFunc(out, cmp)
	return out
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Apply filters then sorts.
func Apply(products []Product, q Query, key SortKey) []Product {
	return Sort(Filter(products, q), key)
}

// Brands returns the distinct non-empty brands in products, sorted.
func Brands(products []Product) []string {
	var out []string
	for _, p := range products {
		if p.Brand != "" && !slices.Contains(out, p.Brand) {
			out = append(out, p.Brand)
		}
	}
	slices.Sort(out)
	return out
}
