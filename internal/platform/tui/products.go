package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shop/internal/api"
	"github.com/vovakirdan/tui-shop/internal/catalog"
)

// productsChrome is the number of lines the page draws around the table.
const productsChrome = 7

// productsPage lists the catalog with live search, filters and sorting.
// Filtering happens on the client over the full listing.
type productsPage struct {
	session *Session
	width   int
	height  int

	loading    bool
	loaded     bool
	err        string
	all        []catalog.Product
	categories []catalog.Category
	shown      []catalog.Product

	query    catalog.Query
	sortKey  catalog.SortKey
	brands   []string
	brandIdx int // 0 means all brands
	catIdx   int // 0 means all categories

	search  textinput.Model
	table   table.Model
	spinner spinner.Model

	status   string
	statusOK bool
}

func newProductsPage(s *Session) *productsPage {
	search := textinput.New()
	search.Placeholder = "Search products..."
	search.Prompt = "/ "
	search.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Stars

	t := table.New(
		table.WithColumns(productColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return &productsPage{
		session: s,
		query:   catalog.NewQuery(s.Config.Catalog.PriceMax),
		brands:  slices.Clone(s.Config.Catalog.Brands),
		search:  search,
		table:   t,
		spinner: sp,
	}
}

func productColumns(width int) []table.Column {
	name := max(20, width-44)
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Price", Width: 10},
		{Title: "Brand", Width: 10},
		{Title: "Rating", Width: 7},
		{Title: "Stock", Width: 6},
	}
}

func (p *productsPage) Init() tea.Cmd {
	if p.loading {
		return p.spinner.Tick
	}
	if p.loaded {
		return nil
	}
	p.loading = true
	p.err = ""
	return tea.Batch(p.spinner.Tick, loadProducts(p.session))
}

func (p *productsPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.search.Width = max(10, width-4)
	p.table.SetColumns(productColumns(width))
	p.table.SetWidth(width)
	p.table.SetHeight(max(3, height-productsChrome))
}

func (p *productsPage) Help() []key.Binding {
	if p.search.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),
		}
	}
	return []key.Binding{keys.Up, keys.Down, keys.Select, keys.Search, keys.Price, keys.Brand,
		keys.Rating, keys.Category, keys.Sort, keys.Add, keys.Reload, keys.Back}
}

func (p *productsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.err = api.Message(msg.err, "Could not load products.")
			return nil
		}
		p.loaded = true
		p.all = msg.products
		p.categories = msg.categories
		p.session.rememberNames(msg.products...)
		for _, b := range catalog.Brands(msg.products) {
			if !slices.Contains(p.brands, b) {
				p.brands = append(p.brands, b)
			}
		}
		p.apply()
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
		if p.search.Focused() {
			return p.handleSearchKey(msg)
		}
		return p.handleKey(msg)
	}
	return nil
}

func (p *productsPage) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc", "tab":
		p.search.Blur()
		p.table.Focus()
		return nil
	}

	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	if p.query.Search != p.search.Value() {
		p.query.Search = p.search.Value()
		p.apply()
	}
	return cmd
}

func (p *productsPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	step := p.session.Config.Catalog.PriceStep
	limit := p.session.Config.Catalog.PriceMax

	switch msg.String() {
	case "esc":
		return navigate(pageHome)
	case "/":
		p.table.Blur()
		return p.search.Focus()
	case "]":
		p.query.PriceMax = min(limit, p.query.PriceMax+step)
	case "[":
		p.query.PriceMax = max(0, p.query.PriceMax-step)
	case "b":
		p.brandIdx = (p.brandIdx + 1) % (len(p.brands) + 1)
		p.query.Brand = ""
		if p.brandIdx > 0 {
			p.query.Brand = p.brands[p.brandIdx-1]
		}
	case "t":
		p.query.MinRating = float64((int(p.query.MinRating) + 1) % 6)
	case "c":
		options := p.categoryOptions()
		p.catIdx = (p.catIdx + 1) % (len(options) + 1)
		p.query.Category = ""
		if p.catIdx > 0 {
			p.query.Category = options[p.catIdx-1].ID
		}
	case "s":
		p.sortKey = p.sortKey.Next()
	case "r":
		p.loaded = false
		p.loading = false
		p.status = ""
		return p.Init()
	case "a":
		return p.addSelected()
	case "enter":
		if prod, ok := p.selected(); ok {
			return openProduct(prod.ID)
		}
		return nil
	default:
		var cmd tea.Cmd
		p.table, cmd = p.table.Update(msg)
		return cmd
	}

	p.apply()
	return nil
}

func (p *productsPage) addSelected() tea.Cmd {
	prod, ok := p.selected()
	if !ok {
		return nil
	}
	token := p.session.Token()
	if token == "" {
		p.status, p.statusOK = "Log in to add items to your cart.", false
		return nil
	}
	p.status, p.statusOK = "Adding "+prod.Name+"...", true
	return addToCart(p.session, token, prod)
}

func (p *productsPage) selected() (catalog.Product, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.shown) {
		return catalog.Product{}, false
	}
	return p.shown[i], true
}

// categoryOptions returns the backend categories, or the distinct product
// categories when the backend did not provide any.
func (p *productsPage) categoryOptions() []catalog.Category {
	if len(p.categories) > 0 {
		return p.categories
	}
	var out []catalog.Category
	for _, prod := range p.all {
		if prod.Category == "" || slices.ContainsFunc(out, func(c catalog.Category) bool { return c.ID == prod.Category }) {
			continue
		}
		out = append(out, catalog.Category{ID: prod.Category, Name: prod.Category})
	}
	return out
}

func (p *productsPage) categoryLabel() string {
	if p.query.Category == "" {
		return "All"
	}
	for _, c := range p.categoryOptions() {
		if c.ID == p.query.Category {
			return c.Name
		}
	}
	return p.query.Category
}

// apply recomputes the visible rows from the full listing.
func (p *productsPage) apply() {
	p.shown = catalog.Apply(p.all, p.query, p.sortKey)

	rows := make([]table.Row, 0, len(p.shown))
	for _, prod := range p.shown {
		brand := prod.Brand
		if brand == "" {
			brand = "-"
		}
		rows = append(rows, table.Row{
			prod.Name,
			fmt.Sprintf("$%.2f", prod.Price),
			brand,
			catalog.Stars(prod.EffectiveRating()),
			fmt.Sprintf("%d", prod.Stock),
		})
	}
	p.table.SetRows(rows)
	if p.table.Cursor() >= len(rows) {
		p.table.SetCursor(max(0, len(rows)-1))
	}
}

func (p *productsPage) filterLine() string {
	brand := p.query.Brand
	if brand == "" {
		brand = "All"
	}
	rating := "All"
	if p.query.MinRating > 0 {
		rating = fmt.Sprintf("%.0f+", p.query.MinRating)
	}

	parts := []string{
		theme.FilterLabel.Render("Price ") + theme.FilterValue.Render(fmt.Sprintf("$%.0f - $%.0f", p.query.PriceMin, p.query.PriceMax)),
		theme.FilterLabel.Render("Brand ") + theme.FilterValue.Render(brand),
		theme.FilterLabel.Render("Min rating ") + theme.FilterValue.Render(rating),
		theme.FilterLabel.Render("Category ") + theme.FilterValue.Render(p.categoryLabel()),
		theme.FilterLabel.Render("Sort ") + theme.FilterValue.Render(p.sortKey.Label()),
	}
	return strings.Join(parts, "  ")
}

func (p *productsPage) View() string {
	var b strings.Builder

	b.WriteString(theme.PageTitle.Render("Products"))
	b.WriteString("\n")
	b.WriteString(p.search.View())
	b.WriteString("\n")
	b.WriteString(p.filterLine())
	b.WriteString("\n\n")

	switch {
	case p.loading:
		b.WriteString(p.spinner.View() + " Loading products...")
	case p.err != "":
		b.WriteString(theme.Error.Render(p.err))
	case len(p.shown) == 0:
		b.WriteString(theme.Muted.Render("No products match your filters."))
	default:
		b.WriteString(p.table.View())
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render(fmt.Sprintf("%d of %d products", len(p.shown), len(p.all))))
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
