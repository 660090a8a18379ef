package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shop/internal/core"
)

// Theme holds the storefront's visual styles.
type Theme struct {
	// Chrome
	HeaderBar  lipgloss.Style
	HeaderUser lipgloss.Style
	PageTitle  lipgloss.Style
	Footer     lipgloss.Style

	// Messages
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	// Menu
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Products
	FilterLabel lipgloss.Style
	FilterValue lipgloss.Style
	Price       lipgloss.Style
	Stars       lipgloss.Style

	// Game palette, indexed by core.Color. Colors missing from the map
	// render unstyled.
	Palette map[core.Color]lipgloss.Style
}

func ansi(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

func defaultPalette() map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorRed:           ansi("1"),
		core.ColorGreen:         ansi("2"),
		core.ColorYellow:        ansi("3"),
		core.ColorBlue:          ansi("4"),
		core.ColorMagenta:       ansi("5"),
		core.ColorCyan:          ansi("6"),
		core.ColorWhite:         ansi("7"),
		core.ColorBrightYellow:  ansi("11"),
		core.ColorBrightMagenta: ansi("13"),
		core.ColorBrightCyan:    ansi("14"),
		core.ColorOrange:        ansi("208"),
		core.ColorGray:          ansi("245"),
	}
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HeaderBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214")).
			Bold(true).
			Padding(0, 1),
		HeaderUser: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")),
		PageTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true).MarginBottom(1),
		Footer:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		FilterLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FilterValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Stars:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),

		Palette: defaultPalette(),
	}
}

// MonochromeTheme returns a theme without colors, for terminals that
// render the default poorly.
func MonochromeTheme() Theme {
	t := DefaultTheme()
	t.HeaderBar = lipgloss.NewStyle().Reverse(true).Bold(true).Padding(0, 1)
	t.HeaderUser = lipgloss.NewStyle().Reverse(true)
	t.Success = lipgloss.NewStyle().Bold(true)
	t.Error = lipgloss.NewStyle().Bold(true).Underline(true)
	t.Price = lipgloss.NewStyle().Bold(true)
	t.Stars = lipgloss.NewStyle()
	t.Palette = nil
	return t
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}
