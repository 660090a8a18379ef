package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/api/", Timeout: 5 * time.Second})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestListProductsQuery(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		writeJSON(w, http.StatusOK, map[string]any{
			"products":    []map[string]any{{"id": "p1", "name": "Mug", "price": 9.5}},
			"total":       1,
			"page":        2,
			"per_page":    5,
			"total_pages": 1,
		})
	}))

	maxPrice := 250.0
	page, err := c.ListProducts(context.Background(), ListParams{
		Page: 2, PerPage: 5, Search: "mug", MaxPrice: &maxPrice, SortBy: "price", SortOrder: "asc",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/products/", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "5", q.Get("per_page"))
	assert.Equal(t, "mug", q.Get("search"))
	assert.Equal(t, "250", q.Get("max_price"))
	assert.Equal(t, "price", q.Get("sort_by"))
	assert.Equal(t, "asc", q.Get("sort_order"))
	assert.False(t, q.Has("min_price"))

	require.Len(t, page.Products, 1)
	assert.Equal(t, "Mug", page.Products[0].Name)
	assert.Equal(t, 2, page.Page)
}

func TestRequestIDHeader(t *testing.T) {
	var id string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = r.Header.Get("X-Request-ID")
		writeJSON(w, http.StatusOK, map[string]any{"categories": []any{}})
	}))

	_, err := c.Categories(context.Background())
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err, "X-Request-ID should be a uuid, got %q", id)
}

func TestAllProductsWalksPages(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		writeJSON(w, http.StatusOK, map[string]any{
			"products":    []map[string]any{{"id": "p" + strconv.Itoa(page), "name": "P", "price": 1}},
			"total":       3,
			"page":        page,
			"per_page":    1,
			"total_pages": 3,
		})
	}))

	products, err := c.AllProducts(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "p3", products[2].ID)
}

func TestProductNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/missing", r.URL.Path)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
	}))

	_, err := c.Product(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Product not found", apiErr.Message)
	assert.NotEmpty(t, apiErr.RequestID)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "tok-123",
			"refresh_token": "ref-456",
			"user":          map[string]any{"id": "u1", "email": body["email"]},
		})
	}))

	res, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", res.AccessToken)
	assert.Equal(t, "a@b.c", res.User.Email)

	_, err = c.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "Invalid email or password", Message(err, "Login failed"))
}

func TestCartRequiresBearerToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Missing Authorization Header"})
			return
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/cart/":
			writeJSON(w, http.StatusOK, map[string]any{
				"id": "c1", "user": "u1",
				"items": []map[string]any{{"product": "p1", "quantity": 2}, {"product": "p2", "quantity": 1}},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/cart/add":
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "p3", body["product_id"])
			assert.Equal(t, 1.0, body["quantity"])
			writeJSON(w, http.StatusOK, map[string]any{
				"message": "Product added to cart successfully",
				"cart":    map[string]any{"id": "c1", "items": []map[string]any{{"product": "p3", "quantity": 1}}},
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/cart/remove/p3":
			writeJSON(w, http.StatusOK, map[string]any{"cart": map[string]any{"id": "c1", "items": []any{}}})
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	cart, err := c.Cart(ctx, "tok")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Quantity())

	cart, err = c.AddToCart(ctx, "tok", "p3", 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p3", cart.Items[0].Product)

	cart, err = c.RemoveFromCart(ctx, "tok", "p3")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = c.Cart(ctx, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "Missing Authorization Header", Message(err, ""))
}

func TestErrorWithoutBodyUsesStatusText(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.Categories(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestRateLimiterHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"categories": []any{}})
	}))
	defer srv.Close()
	c := New(Options{BaseURL: srv.URL + "/api", RequestsPerSecond: 0.001, Burst: 1})

	_, err := c.Categories(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Categories(ctx)
	assert.Error(t, err, "second request should be held back by the limiter")
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "Login failed", Message(errors.New("dial tcp: refused"), "Login failed"))
}
