package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shop/internal/api"
	"github.com/vovakirdan/tui-shop/internal/catalog"
)

// loadProducts fetches the catalog and categories, or serves the offline
// catalog when one is configured.
func loadProducts(s *Session) tea.Cmd {
	return func() tea.Msg {
		if s.Offline != nil {
			return productsLoadedMsg{products: s.Offline.Products, categories: s.Offline.Categories}
		}

		ctx, cancel := s.requestContext()
		defer cancel()

		products, err := s.Client.AllProducts(ctx, s.Config.API.PerPage)
		if err != nil {
			s.logger().Error("load products", "error", err)
			return productsLoadedMsg{err: err}
		}
		categories, err := s.Client.Categories(ctx)
		if err != nil {
			// Category filter is optional; the listing is still usable.
			s.logger().Warn("load categories", "error", err)
		}
		return productsLoadedMsg{products: products, categories: categories}
	}
}

var errOfflineMissing = fmt.Errorf("offline catalog: %w", api.ErrNotFound)

func loadProduct(s *Session, id string) tea.Cmd {
	return func() tea.Msg {
		if s.Offline != nil {
			for _, p := range s.Offline.Products {
				if p.ID == id {
					return productLoadedMsg{id: id, product: p}
				}
			}
			return productLoadedMsg{id: id, err: errOfflineMissing}
		}

		ctx, cancel := s.requestContext()
		defer cancel()

		p, err := s.Client.Product(ctx, id)
		if err != nil && !errors.Is(err, api.ErrNotFound) {
			s.logger().Error("load product", "id", id, "error", err)
		}
		return productLoadedMsg{id: id, product: p, err: err}
	}
}

func login(s *Session, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := s.requestContext()
		defer cancel()

		res, err := s.Client.Login(ctx, email, password)
		if err != nil {
			s.logger().Warn("login failed", "owner", s.Owner, "error", err)
			return loginResultMsg{err: err}
		}
		if err := s.saveToken(res.AccessToken); err != nil {
			return loginResultMsg{err: err}
		}
		s.logger().Info("logged in", "owner", s.Owner, "user", res.User.Email)
		return loginResultMsg{result: res}
	}
}

func loadCart(s *Session, token string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := s.requestContext()
		defer cancel()

		cart, err := s.Client.Cart(ctx, token)
		if err != nil {
			s.logger().Error("load cart", "error", err)
		}
		return cartLoadedMsg{cart: cart, err: err}
	}
}

func addToCart(s *Session, token string, p catalog.Product) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := s.requestContext()
		defer cancel()

		cart, err := s.Client.AddToCart(ctx, token, p.ID, 1)
		if err != nil {
			s.logger().Warn("add to cart", "product", p.ID, "error", err)
		}
		return cartChangedMsg{action: "add", productID: p.ID, name: p.Name, cart: cart, err: err}
	}
}

func removeFromCart(s *Session, token, productID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := s.requestContext()
		defer cancel()

		cart, err := s.Client.RemoveFromCart(ctx, token, productID)
		if err != nil {
			s.logger().Warn("remove from cart", "product", productID, "error", err)
		}
		return cartChangedMsg{action: "remove", productID: productID, cart: cart, err: err}
	}
}

// cartStatus turns an add-to-cart result into a status line.
func cartStatus(msg cartChangedMsg) (string, bool) {
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return "Your session has expired. Please log in again.", false
		}
		return api.Message(msg.err, "Could not update cart."), false
	}
	if msg.action == "remove" {
		return "Removed from cart.", true
	}
	return fmt.Sprintf("Added %s to cart.", msg.name), true
}
