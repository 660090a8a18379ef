package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shop/internal/api"
	"github.com/vovakirdan/tui-shop/internal/catalog"
)

const (
	msgLoginRequired = "You must be logged in to view your cart."
	msgCartEmpty     = "Your cart is empty."
	msgCartError     = "Could not load cart."
)

// cartPage shows the signed-in user's cart.
type cartPage struct {
	session *Session
	token   string
	loading bool
	err     string
	cart    api.Cart

	table   table.Model
	spinner spinner.Model

	status   string
	statusOK bool
}

func newCartPage(s *Session) *cartPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Stars

	return &cartPage{
		session: s,
		table: table.New(
			table.WithColumns(cartColumns(80)),
			table.WithFocused(true),
			table.WithHeight(10),
		),
		spinner: sp,
	}
}

func cartColumns(width int) []table.Column {
	return []table.Column{
		{Title: "Product", Width: max(20, width-34)},
		{Title: "Quantity", Width: 8},
		{Title: "Added", Width: 20},
	}
}

func (p *cartPage) Init() tea.Cmd {
	p.token = p.session.Token()
	if p.token == "" {
		return nil
	}
	p.loading = true
	p.err = ""
	return tea.Batch(p.spinner.Tick, loadCart(p.session, p.token))
}

func (p *cartPage) SetSize(width, height int) {
	p.table.SetColumns(cartColumns(width))
	p.table.SetWidth(width)
	p.table.SetHeight(max(3, height-6))
}

func (p *cartPage) Help() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Remove, keys.Reload, keys.Back}
}

func (p *cartPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case cartLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.err = msgCartError
			return nil
		}
		p.err = ""
		p.setCart(msg.cart)
		return nil

	case cartChangedMsg:
		p.status, p.statusOK = cartStatus(msg)
		if msg.err == nil {
			p.setCart(msg.cart)
		}
		return nil

	case spinner.TickMsg:
		if !p.loading {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return navigate(pageHome)
		case "r":
			p.status = ""
			return p.Init()
		case "x", "delete":
			return p.removeSelected()
		case "enter":
			if item, ok := p.selected(); ok {
				return openProduct(item.Product)
			}
			return nil
		}
		var cmd tea.Cmd
		p.table, cmd = p.table.Update(msg)
		return cmd
	}
	return nil
}

func (p *cartPage) setCart(cart api.Cart) {
	p.cart = cart
	rows := make([]table.Row, 0, len(cart.Items))
	for _, it := range cart.Items {
		added := ""
		if t := (catalog.Product{CreatedAt: it.AddedAt}).Created(); !t.IsZero() {
			added = t.Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{p.session.productName(it.Product), fmt.Sprintf("%d", it.Quantity), added})
	}
	p.table.SetRows(rows)
	if p.table.Cursor() >= len(rows) {
		p.table.SetCursor(max(0, len(rows)-1))
	}
}

func (p *cartPage) selected() (api.CartItem, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.cart.Items) {
		return api.CartItem{}, false
	}
	return p.cart.Items[i], true
}

func (p *cartPage) removeSelected() tea.Cmd {
	if p.token == "" || p.loading {
		return nil
	}
	item, ok := p.selected()
	if !ok {
		return nil
	}
	return removeFromCart(p.session, p.token, item.Product)
}

func (p *cartPage) View() string {
	var b strings.Builder

	b.WriteString(theme.PageTitle.Render("Your Cart"))
	b.WriteString("\n")

	switch {
	case p.token == "":
		b.WriteString(theme.Error.Render(msgLoginRequired))
	case p.loading:
		b.WriteString(p.spinner.View() + " Loading cart...")
	case p.err != "":
		b.WriteString(theme.Error.Render(p.err))
	case len(p.cart.Items) == 0:
		b.WriteString(theme.Muted.Render(msgCartEmpty))
	default:
		b.WriteString(p.table.View())
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render(fmt.Sprintf("%d items", p.cart.Quantity())))
	}

	if p.status != "" {
		b.WriteString("\n")
		if p.statusOK {
			b.WriteString(theme.Success.Render(p.status))
		} else {
			b.WriteString(theme.Error.Render(p.status))
		}
	}
	return b.String()
}
