// internal/tui/popup.go
package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

const popupFooter = "Press any key to continue..."

// ShowPopup displays text in a bordered window over the screen interior and
// blocks until a key dismisses it. Arrow and page keys scroll content that
// does not fit; any other key closes the popup. The caller redraws the frame
// afterwards.
func ShowPopup(t *TUI, text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	offset := 0

	for {
		contentHeight := drawPopup(t, lines, offset)
		t.Show()

		switch ev := t.PollEvent().(type) {
		case *tcell.EventResize:
			t.Sync()
		case *tcell.EventKey:
			page := contentHeight
			if page < 1 {
				page = 1
			}
			switch ev.Key() {
			case tcell.KeyUp:
				offset--
			case tcell.KeyDown:
				offset++
			case tcell.KeyPgUp:
				offset -= page
			case tcell.KeyPgDn:
				offset += page
			default:
				return
			}
			maxOffset := len(lines) - contentHeight
			if maxOffset < 0 {
				maxOffset = 0
			}
			if offset > maxOffset {
				offset = maxOffset
			}
			if offset < 0 {
				offset = 0
			}
		}
	}
}

// drawPopup paints the bordered window and returns the number of content
// rows it can show.
func drawPopup(t *TUI, lines []string, offset int) int {
	width, height := t.Size()
	if width < 4 || height < 5 {
		return 1 // Screen too small for a window; keys still dismiss
	}
	style := tcell.StyleDefault

	// Window inset one cell on every side, like the original overlay.
	x0, y0 := 1, 1
	x1, y1 := width-2, height-2

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	for x := x0; x <= x1; x++ {
		t.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		t.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0; y <= y1; y++ {
		t.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		t.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)

	innerWidth := x1 - x0 - 1
	contentHeight := y1 - y0 - 2 // Last interior row is the footer
	if contentHeight < 0 {
		contentHeight = 0
	}

	for i := 0; i < contentHeight; i++ {
		idx := offset + i
		if idx >= len(lines) {
			break
		}
		drawText(t.screen, x0+1, y0+1+i, innerWidth, lines[idx], style)
	}

	drawText(t.screen, x0+1, y1-1, innerWidth, popupFooter, style)

	if contentHeight < 1 {
		return 1
	}
	return contentHeight
}
