package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shop/internal/api"
	"github.com/vovakirdan/tui-shop/internal/catalog"
)

// pageID names a storefront page.
type pageID int

const (
	pageHome pageID = iota
	pageProducts
	pageDetail
	pageLogin
	pageCart
	pageRecent
	pageGame
)

func (p pageID) String() string {
	switch p {
	case pageHome:
		return "home"
	case pageProducts:
		return "products"
	case pageDetail:
		return "detail"
	case pageLogin:
		return "login"
	case pageCart:
		return "cart"
	case pageRecent:
		return "recent"
	case pageGame:
		return "game"
	default:
		return "unknown"
	}
}

// navigateMsg asks the app to switch pages.
type navigateMsg struct {
	to        pageID
	productID string
}

func navigate(to pageID) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

func openProduct(id string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: pageDetail, productID: id} }
}

// authChangedMsg is sent after login or logout.
type authChangedMsg struct{}

type productsLoadedMsg struct {
	products   []catalog.Product
	categories []catalog.Category
	err        error
}

type productLoadedMsg struct {
	id      string
	product catalog.Product
	err     error
}

type loginResultMsg struct {
	result api.LoginResult
	err    error
}

type cartLoadedMsg struct {
	cart api.Cart
	err  error
}

// cartChangedMsg reports the result of an add or remove.
type cartChangedMsg struct {
	action    string
	productID string
	name      string
	cart      api.Cart
	err       error
}
