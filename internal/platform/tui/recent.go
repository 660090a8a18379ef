package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shop/internal/storage"
)

const recentLimit = 20

// recentPage lists recently viewed products from local storage.
type recentPage struct {
	session   *Session
	views     []storage.View
	cursor    int
	err       string
	status    string
	keyMapper *KeyMapper
}

func newRecentPage(s *Session) *recentPage {
	return &recentPage{session: s, keyMapper: NewKeyMapper()}
}

func (p *recentPage) Init() tea.Cmd {
	p.err = ""
	p.status = ""
	if p.session.Store == nil {
		p.err = "History is unavailable."
		return nil
	}
	views, err := p.session.Store.RecentViews(p.session.Owner, recentLimit)
	if err != nil {
		p.session.logger().Warn("load recent views", "error", err)
		p.err = "History is unavailable."
		return nil
	}
	p.views = views
	p.cursor = 0
	return nil
}

func (p *recentPage) SetSize(int, int) {}

func (p *recentPage) Help() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Select, keys.Clear, keys.Back}
}

// clear drops the owner's view history.
func (p *recentPage) clear() {
	if p.session.Store == nil || len(p.views) == 0 {
		return
	}
	if err := p.session.Store.ClearViews(p.session.Owner); err != nil {
		p.session.logger().Warn("clear recent views", "error", err)
		p.err = "Could not clear history."
		return
	}
	p.views = nil
	p.cursor = 0
	p.status = "History cleared."
}

func (p *recentPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(km, keys.Clear) {
		p.clear()
		return nil
	}
	switch p.keyMapper.MapKeyToMenuAction(km) {
	case MenuActionBack:
		return navigate(pageHome)
	case MenuActionUp:
		if p.cursor > 0 {
			p.cursor--
		}
	case MenuActionDown:
		if p.cursor < len(p.views)-1 {
			p.cursor++
		}
	case MenuActionSelect:
		if p.cursor < len(p.views) {
			return openProduct(p.views[p.cursor].ProductID)
		}
	}
	return nil
}

func (p *recentPage) View() string {
	var b strings.Builder

	b.WriteString(theme.PageTitle.Render("Recently viewed"))
	b.WriteString("\n")

	switch {
	case p.err != "":
		b.WriteString(theme.Error.Render(p.err))
	case len(p.views) == 0:
		b.WriteString(theme.Muted.Render("You have not viewed any products yet."))
		if p.status != "" {
			b.WriteString("\n" + theme.Success.Render(p.status))
		}
	default:
		for i, v := range p.views {
			cursor := "  "
			style := theme.MenuItemNormal
			if i == p.cursor {
				cursor = "> "
				style = theme.MenuItemActive
			}
			name := v.Name
			if name == "" {
				name = v.ProductID
			}
			line := style.Render(fmt.Sprintf("%s%s", cursor, name))
			if !v.ViewedAt.IsZero() {
				line += "  " + theme.MenuDescription.Render(v.ViewedAt.Format("2006-01-02 15:04"))
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
