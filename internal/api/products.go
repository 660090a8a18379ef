package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vovakirdan/tui-shop/internal/catalog"
)

// ListParams are the server-side listing parameters. Zero values are omitted.
type ListParams struct {
	Page      int
	PerPage   int
	Category  string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string // name, price or created_at
	SortOrder string // asc or desc
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.MinPrice != nil {
		v.Set("min_price", strconv.FormatFloat(*p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice != nil {
		v.Set("max_price", strconv.FormatFloat(*p.MaxPrice, 'f', -1, 64))
	}
	if p.SortBy != "" {
		v.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		v.Set("sort_order", p.SortOrder)
	}
	return v
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products   []catalog.Product `json:"products"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

// ListProducts fetches one page of products.
func (c *Client) ListProducts(ctx context.Context, params ListParams) (ProductPage, error) {
	var page ProductPage
	err := c.do(ctx, request{method: http.MethodGet, path: "/products/", query: params.values()}, &page)
	return page, err
}

// AllProducts walks every page of the listing with perPage items per request.
func (c *Client) AllProducts(ctx context.Context, perPage int) ([]catalog.Product, error) {
	var all []catalog.Product
	for page := 1; ; page++ {
		res, err := c.ListProducts(ctx, ListParams{Page: page, PerPage: perPage})
		if err != nil {
			return nil, err
		}
		all = append(all, res.Products...)
		if page >= res.TotalPages || len(res.Products) == 0 {
			return all, nil
		}
	}
}

// Product fetches a single product. A missing product yields ErrNotFound.
func (c *Client) Product(ctx context.Context, id string) (catalog.Product, error) {
	var p catalog.Product
	err := c.do(ctx, request{method: http.MethodGet, path: "/products/" + url.PathEscape(id)}, &p)
	return p, err
}

// Categories lists the product categories.
func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var res struct {
		Categories []catalog.Category `json:"categories"`
	}
	err := c.do(ctx, request{method: http.MethodGet, path: "/categories/"}, &res)
	return res.Categories, err
}
