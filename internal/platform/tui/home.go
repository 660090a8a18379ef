package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shop/internal/registry"
)

// homeItem is a selectable entry of the storefront menu.
type homeItem struct {
	title       string
	description string
	target      pageID
	logout      bool
	quit        bool
}

// homePage is the storefront's navigation menu.
type homePage struct {
	session   *Session
	items     []homeItem
	cursor    int
	width     int
	height    int
	status    string
	keyMapper *KeyMapper
}

func newHomePage(s *Session) *homePage {
	p := &homePage{session: s, keyMapper: NewKeyMapper()}
	p.refresh()
	return p
}

// refresh rebuilds the menu for the current sign-in state.
func (p *homePage) refresh() {
	auth := homeItem{title: "Login", description: "Sign in to use your cart", target: pageLogin}
	if p.session.SignedIn() {
		auth = homeItem{title: "Logout", description: "Forget the stored token", logout: true}
	}

	p.items = []homeItem{
		{title: "Products", description: "Browse, search and filter the catalog", target: pageProducts},
		{title: "Cart", description: "Review the items in your cart", target: pageCart},
		auth,
	}
	if registry.Exists(GameID) {
		p.items = append(p.items, homeItem{title: "Cart Chase", description: "Collect the items with your cart", target: pageGame})
	}
	p.items = append(p.items,
		homeItem{title: "Recently viewed", description: "Products you looked at", target: pageRecent},
		homeItem{title: "Quit", quit: true},
	)
	if p.cursor >= len(p.items) {
		p.cursor = len(p.items) - 1
	}
}

func (p *homePage) Init() tea.Cmd {
	p.refresh()
	return nil
}

func (p *homePage) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *homePage) Help() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Select, keys.Quit}
}

func (p *homePage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case authChangedMsg:
		p.refresh()
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *homePage) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch p.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return tea.Quit

	case MenuActionUp:
		if p.cursor > 0 {
			p.cursor--
		}

	case MenuActionDown:
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}

	case MenuActionSelect:
		item := p.items[p.cursor]
		switch {
		case item.quit:
			return tea.Quit
		case item.logout:
			p.session.clearToken()
			p.session.logger().Info("logged out", "owner", p.session.Owner)
			p.status = "Logged out."
			return func() tea.Msg { return authChangedMsg{} }
		default:
			p.status = ""
			return navigate(item.target)
		}
	}
	return nil
}

func (p *homePage) View() string {
	var b strings.Builder

	b.WriteString(theme.PageTitle.Render("Welcome to the shop"))
	b.WriteString("\n")

	for i, item := range p.items {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == p.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}

		line := style.Render(fmt.Sprintf("%s%s", cursor, item.title))
		if item.description != "" {
			line += "  " + theme.MenuDescription.Render(item.description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if p.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Success.Render(p.status))
		b.WriteString("\n")
	}

	return b.String()
}
