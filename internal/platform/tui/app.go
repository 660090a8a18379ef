package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shop/internal/registry"
	"github.com/vovakirdan/tui-shop/internal/storage"
)

// GameID is the registry id of the storefront's mini-game.
const GameID = "cartchase"

// appChrome is the number of lines used by the header and the footer.
const appChrome = 4

// page is one storefront screen. Pages are owned by App and only touched
// from its Update.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Help() []key.Binding
}

// App is the top-level storefront model. It routes messages to the
// current page and swaps to the game runner full screen.
type App struct {
	session *Session
	width   int
	height  int

	current  pageID
	previous pageID
	page     page
	home     *homePage
	products *productsPage

	game    *GameModel
	gameGen uint64

	help     help.Model
	signedIn bool
	quitting bool
}

// NewApp creates the storefront for one session.
func NewApp(s *Session) *App {
	h := help.New()
	h.Styles.ShortKey = theme.Info
	h.Styles.ShortDesc = theme.Muted
	h.Styles.ShortSeparator = theme.Muted

	a := &App{
		session:  s,
		home:     newHomePage(s),
		products: newProductsPage(s),
		help:     h,
		signedIn: s.SignedIn(),
	}
	a.page = a.home
	return a
}

// Init starts on the home page.
func (a *App) Init() tea.Cmd {
	return a.page.Init()
}

// Update handles global keys and routing, then forwards to the page.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
		a.help.Width = wsm.Width
		a.session.Runtime.ScreenW = wsm.Width
		a.session.Runtime.ScreenH = wsm.Height
		a.home.SetSize(a.pageSize())
		a.products.SetSize(a.pageSize())
		a.page.SetSize(a.pageSize())
	}

	if a.game != nil {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg, tea.WindowSizeMsg, TickMsg:
			return a.updateGame(msg)
		case navigateMsg:
			return a, nil
		}
		// Backend replies keep flowing to the pages behind the game.
		return a, a.route(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}

	case navigateMsg:
		return a, a.navigate(msg)

	case TickMsg:
		return a, nil
	}

	return a, a.route(msg)
}

// route delivers a non-input message to the pages that own it.
func (a *App) route(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case authChangedMsg:
		a.signedIn = a.session.SignedIn()
		cmd := a.home.Update(msg)
		if a.page != a.home {
			return tea.Batch(cmd, a.page.Update(msg))
		}
		return cmd

	case productsLoadedMsg:
		return a.products.Update(msg)
	}
	return a.page.Update(msg)
}

func (a *App) pageSize() (int, int) {
	return a.width, max(1, a.height-appChrome)
}

func (a *App) navigate(msg navigateMsg) tea.Cmd {
	if msg.to == pageGame {
		return a.startGame()
	}

	var next page
	switch msg.to {
	case pageHome:
		next = a.home
	case pageProducts:
		next = a.products
	case pageDetail:
		back := a.current
		if back == pageDetail {
			back = a.previous
		}
		next = newDetailPage(a.session, msg.productID, back)
	case pageLogin:
		next = newLoginPage(a.session)
	case pageCart:
		next = newCartPage(a.session)
	case pageRecent:
		next = newRecentPage(a.session)
	default:
		return nil
	}

	a.session.logger().Debug("navigate", "from", a.current, "to", msg.to)
	a.previous = a.current
	a.current = msg.to
	a.page = next
	a.page.SetSize(a.pageSize())
	return a.page.Init()
}

func (a *App) startGame() tea.Cmd {
	game, err := registry.Create(GameID)
	if err != nil {
		a.session.logger().Error("start game", "error", err)
		return nil
	}

	a.gameGen++
	cfg := a.session.Runtime
	cfg.ScreenW = a.width
	cfg.ScreenH = a.height
	m := NewGameModel(game, cfg, a.gameGen)
	a.game = &m
	a.session.logger().Info("game started", "owner", a.session.Owner, "game", game.ID())
	return a.game.Init()
}

func (a *App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		a.game = &gm
	}

	if a.game.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.game.BackToMenu() {
		a.game = nil
		a.current = pageHome
		a.page = a.home
		return a, a.home.Init()
	}
	return a, cmd
}

// View draws the header, the current page and the key help.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.game != nil {
		return a.game.View()
	}

	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n\n")
	b.WriteString(a.page.View())

	body := b.String()
	if a.height > 0 {
		body = lipgloss.PlaceVertical(a.height-1, lipgloss.Top, body)
	}
	return body + "\n" + theme.Footer.Render(a.help.View(helpKeys(a.page.Help())))
}

func (a *App) header() string {
	user := "Guest"
	if a.signedIn {
		user = "Signed in"
		if a.session.Owner != storage.LocalOwner {
			user += " as " + a.session.Owner
		}
	}
	title := theme.HeaderBar.Render("tui-shop")
	who := theme.HeaderUser.Render(user)
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(who)
	if gap < 1 {
		return title + " " + who
	}
	return title + strings.Repeat(" ", gap) + who
}

// RunApp runs the storefront in the local terminal.
func RunApp(s *Session) error {
	p := tea.NewProgram(
		NewApp(s),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
