// internal/tui/prompt.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// maxCommandLength bounds the command line length.
const maxCommandLength = 200

// Prompt reads single-line input on the bottom screen row.
type Prompt struct {
	tui *TUI
}

// NewPrompt creates a prompt bound to a TUI.
func NewPrompt(t *TUI) *Prompt {
	return &Prompt{tui: t}
}

// ReadLine blocks reading a line shown after the prompt prefix on the
// bottom row. Enter submits; Escape (or Ctrl+C) cancels, returning false.
func (p *Prompt) ReadLine(prompt string) (string, bool) {
	var runes []rune
	for {
		p.draw(prompt, runes)

		switch ev := p.tui.PollEvent().(type) {
		case *tcell.EventResize:
			p.tui.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				p.tui.HideCursor()
				return string(runes), true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				p.tui.HideCursor()
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(runes) > 0 {
					runes = runes[:len(runes)-1]
				}
			case tcell.KeyRune:
				if len(runes) < maxCommandLength {
					runes = append(runes, ev.Rune())
				}
			}
		}
	}
}

// draw renders the prompt row with the cursor after the last character.
// When the line outgrows the row, the head is clipped so the tail stays
// visible.
func (p *Prompt) draw(prompt string, runes []rune) {
	width, height := p.tui.Size()
	if width <= 0 || height <= 0 {
		return
	}
	y := height - 1
	style := tcell.StyleDefault

	for x := 0; x < width; x++ {
		p.tui.screen.SetContent(x, y, ' ', nil, style)
	}

	type cluster struct {
		main      rune
		combining []rune
		width     int
	}
	var clusters []cluster
	total := 0
	gr := uniseg.NewGraphemes(prompt + string(runes))
	for gr.Next() {
		rs := gr.Runes()
		if len(rs) == 0 {
			continue
		}
		c := cluster{main: rs[0], width: gr.Width()}
		if len(rs) > 1 {
			c.combining = rs[1:]
		}
		clusters = append(clusters, c)
		total += c.width
	}

	avail := width - 1 // Keep the last cell free for the cursor
	start := 0
	for total > avail && start < len(clusters) {
		total -= clusters[start].width
		start++
	}

	x := 0
	for _, c := range clusters[start:] {
		p.tui.screen.SetContent(x, y, c.main, c.combining, style)
		x += c.width
	}
	p.tui.screen.ShowCursor(x, y)
	p.tui.Show()
}
