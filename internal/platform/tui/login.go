package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shop/internal/api"
)

// loginPage collects credentials and exchanges them for a token.
type loginPage struct {
	session    *Session
	inputs     []textinput.Model
	focus      int
	submitting bool
	message    string
	success    bool
}

func newLoginPage(s *Session) *loginPage {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email:    "
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	return &loginPage{session: s, inputs: []textinput.Model{email, password}}
}

func (p *loginPage) Init() tea.Cmd {
	p.focus = 0
	return p.inputs[0].Focus()
}

func (p *loginPage) SetSize(width, _ int) {
	for i := range p.inputs {
		p.inputs[i].Width = max(10, width-14)
	}
}

func (p *loginPage) Help() []key.Binding {
	return []key.Binding{keys.Switch, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")), keys.Back}
}

func (p *loginPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginResultMsg:
		p.submitting = false
		if msg.err != nil {
			p.message = api.Message(msg.err, "Login failed")
			p.success = false
			return nil
		}
		p.message = "Login successful!"
		p.success = true
		p.inputs[1].SetValue("")
		return func() tea.Msg { return authChangedMsg{} }

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return navigate(pageHome)
		case "tab", "down":
			return p.setFocus(p.focus + 1)
		case "shift+tab", "up":
			return p.setFocus(p.focus - 1)
		case "enter":
			if p.focus == 0 {
				return p.setFocus(1)
			}
			return p.submit()
		}
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return cmd
}

func (p *loginPage) setFocus(i int) tea.Cmd {
	n := len(p.inputs)
	p.focus = ((i % n) + n) % n
	for j := range p.inputs {
		p.inputs[j].Blur()
	}
	return p.inputs[p.focus].Focus()
}

func (p *loginPage) submit() tea.Cmd {
	if p.submitting {
		return nil
	}
	p.submitting = true
	p.message = ""
	return login(p.session, strings.TrimSpace(p.inputs[0].Value()), p.inputs[1].Value())
}

func (p *loginPage) View() string {
	var b strings.Builder

	b.WriteString(theme.PageTitle.Render("Login"))
	b.WriteString("\n")
	for _, in := range p.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case p.submitting:
		b.WriteString(theme.Muted.Render("Signing in..."))
	case p.message != "" && p.success:
		b.WriteString(theme.Success.Render(p.message))
	case p.message != "":
		b.WriteString(theme.Error.Render(p.message))
	}
	return b.String()
}
