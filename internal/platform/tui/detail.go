package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shop/internal/api"
	"github.com/vovakirdan/tui-shop/internal/catalog"
)

const detailChrome = 4

// detailPage shows one product in a scrollable viewport.
type detailPage struct {
	session *Session
	id      string
	back    pageID
	width   int
	height  int

	loading  bool
	notFound bool
	err      string
	product  catalog.Product

	viewport viewport.Model
	spinner  spinner.Model

	status   string
	statusOK bool
}

func newDetailPage(s *Session, id string, back pageID) *detailPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Stars

	return &detailPage{
		session:  s,
		id:       id,
		back:     back,
		viewport: viewport.New(80, 20),
		spinner:  sp,
	}
}

func (p *detailPage) Init() tea.Cmd {
	p.loading = true
	return tea.Batch(p.spinner.Tick, loadProduct(p.session, p.id))
}

func (p *detailPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = width
	p.viewport.Height = max(3, height-detailChrome)
	if !p.loading && p.err == "" && !p.notFound {
		p.viewport.SetContent(p.render())
	}
}

func (p *detailPage) Help() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Add, keys.Back}
}

func (p *detailPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case productLoadedMsg:
		if msg.id != p.id {
			return nil
		}
		p.loading = false
		if errors.Is(msg.err, api.ErrNotFound) {
			p.notFound = true
			return nil
		}
		if msg.err != nil {
			p.err = api.Message(msg.err, "Could not load product.")
			return nil
		}
		p.product = msg.product
		p.session.rememberNames(msg.product)
		p.session.recordView(msg.product)
		p.viewport.SetContent(p.render())
		p.viewport.GotoTop()
		return nil

	case cartChangedMsg:
		p.status, p.statusOK = cartStatus(msg)
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
		case "esc", "b":
			return navigate(p.back)
		case "a":
			if p.loading || p.notFound || p.err != "" {
				return nil
			}
			token := p.session.Token()
			if token == "" {
				p.status, p.statusOK = "Log in to add items to your cart.", false
				return nil
			}
			return addToCart(p.session, token, p.product)
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// render lays out the product for the viewport.
func (p *detailPage) render() string {
	prod := p.product
	width := max(20, p.width-2)
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(theme.PageTitle.Render(prod.Name))
	b.WriteString("\n")
	b.WriteString(theme.Price.Render(fmt.Sprintf("$%.2f", prod.Price)))
	b.WriteString("  ")
	if prod.Stock > 0 {
		b.WriteString(theme.Success.Render(fmt.Sprintf("In stock: %d", prod.Stock)))
	} else {
		b.WriteString(theme.Error.Render("Out of stock"))
	}
	b.WriteString("\n")

	rating := prod.EffectiveRating()
	b.WriteString(theme.Stars.Render(catalog.Stars(rating)))
	b.WriteString(theme.Muted.Render(fmt.Sprintf(" %.1f (%d reviews)", rating, len(prod.Reviews))))
	b.WriteString("\n")

	if prod.Category != "" {
		b.WriteString(theme.FilterLabel.Render("Category: ") + prod.Category + "\n")
	}
	if prod.Brand != "" {
		b.WriteString(theme.FilterLabel.Render("Brand: ") + prod.Brand + "\n")
	}
	b.WriteString("\n")
	b.WriteString(wrap.Render(prod.Description))
	b.WriteString("\n")

	if len(prod.Images) > 0 {
		b.WriteString("\n" + theme.FilterLabel.Render("Images") + "\n")
		for _, img := range prod.Images {
			b.WriteString("  " + img + "\n")
		}
	}

	b.WriteString("\n" + theme.FilterLabel.Render("Reviews") + "\n")
	if len(prod.Reviews) == 0 {
		b.WriteString(theme.Muted.Render("  No reviews yet.") + "\n")
	}
	for _, r := range prod.Reviews {
		line := "  " + theme.Stars.Render(catalog.Stars(r.Rating))
		if r.Comment != "" {
			line += "  " + r.Comment
		}
		if t := (catalog.Product{CreatedAt: r.CreatedAt}).Created(); !t.IsZero() {
			line += theme.Muted.Render("  " + t.Format("2006-01-02"))
		}
		b.WriteString(wrap.Render(line) + "\n")
	}

	return b.String()
}

func (p *detailPage) View() string {
	var b strings.Builder

	switch {
	case p.loading:
		b.WriteString(p.spinner.View() + " Loading product...")
	case p.notFound:
		b.WriteString(theme.Error.Render("Product not found"))
	case p.err != "":
		b.WriteString(theme.Error.Render(p.err))
	default:
		b.WriteString(p.viewport.View())
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
