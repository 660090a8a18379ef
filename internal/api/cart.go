package api

import (
	"context"
	"net/http"
	"net/url"
)

// CartItem is one line of a cart. Product holds the product id.
type CartItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	AddedAt  string `json:"added_at,omitempty"`
}

// Cart is the signed-in user's cart.
type Cart struct {
	ID    string     `json:"id"`
	User  string     `json:"user"`
	Items []CartItem `json:"items"`
}

// Quantity returns the total number of units in the cart.
func (c Cart) Quantity() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

type cartResponse struct {
	Message string `json:"message"`
	Cart    Cart   `json:"cart"`
}

// Cart fetches the cart for token.
func (c *Client) Cart(ctx context.Context, token string) (Cart, error) {
	var cart Cart
	err := c.do(ctx, request{method: http.MethodGet, path: "/cart/", token: token}, &cart)
	return cart, err
}

// AddToCart adds quantity units of a product and returns the updated cart.
func (c *Client) AddToCart(ctx context.Context, token, productID string, quantity int) (Cart, error) {
	var res cartResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/cart/add",
		token:  token,
		body: map[string]any{
			"product_id": productID,
			"quantity":   quantity,
		},
	}, &res)
	return res.Cart, err
}

// RemoveFromCart drops a product line and returns the updated cart.
func (c *Client) RemoveFromCart(ctx context.Context, token, productID string) (Cart, error) {
	var res cartResponse
	err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/cart/remove/" + url.PathEscape(productID),
		token:  token,
	}, &res)
	return res.Cart, err
}

// ClearCart removes every line from the cart.
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/cart/clear", token: token}, nil)
}
