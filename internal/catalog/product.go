// Package catalog holds the storefront's product model and the client-side
// search, filter and sort rules applied to product listings. It also reads
// and writes offline catalog files.
package catalog

import (
	"strings"
	"time"
)

// Review is a customer review embedded in a product.
type Review struct {
	User      string  `json:"user"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// Product is a catalog entry as served by the backend.
// Brand and Rating are optional; most backends omit them.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images,omitempty"`
	Reviews     []Review `json:"reviews,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// Category is a product category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// EffectiveRating returns the explicit rating when present, otherwise the
// mean review rating, otherwise 0.
func (p Product) EffectiveRating() float64 {
	if p.Rating != nil {
		return *p.Rating
	}
	if len(p.Reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	return sum / float64(len(p.Reviews))
}

// Created parses CreatedAt. Timestamps without a zone are read as UTC.
// The zero time is returned when the field is missing or malformed.
func (p Product) Created() time.Time {
	return parseTimestamp(p.CreatedAt)
}

// Stars renders a rating as five filled or empty stars.
func Stars(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
