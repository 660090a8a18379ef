package tui

import (
	"strings"

	"github.com/vovakirdan/tui-shop/internal/core"
)

// RenderScreen turns a screen buffer into styled text using the current
// theme's palette. Each run of same-colored cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	palette := theme.Palette

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		var run strings.Builder
		runColor := core.ColorDefault
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style, ok := palette[runColor]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}

		for x, w := 0, s.Width(); x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}
