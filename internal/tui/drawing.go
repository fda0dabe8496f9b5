// internal/tui/drawing.go
package tui

import (
	"github.com/TheItcor/rawIDE/internal/config"
	"github.com/TheItcor/rawIDE/internal/core"
	"github.com/TheItcor/rawIDE/internal/logger"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// calculateVisualColumn computes the visual screen width of the first
// runeIndex runes of a line. It correctly handles multi-width characters and
// grapheme clusters.
func calculateVisualColumn(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	str := string(line)
	visualWidth := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(str)

	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		runes := gr.Runes()
		width := gr.Width()
		visualWidth += width
		currentRuneIndex += len(runes)
	}
	return visualWidth
}

// DrawBuffer draws the visible portion of the buffer. The viewport origin is
// in rune columns; drawing maps runes to screen cells by visual width. The
// rightmost column stays blank, matching the one-column margin the viewport
// arithmetic reserves.
func DrawBuffer(tuiManager *TUI, editor *core.Editor) {
	defaultStyle := tcell.StyleDefault

	width, height := tuiManager.Size()
	viewY, viewX := editor.GetViewport()
	viewHeight := height - config.ReservedRows

	if viewHeight <= 0 || width <= 0 {
		return
	}
	maxTextWidth := width - 1

	lines := editor.GetBuffer().Lines()

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLineIdx := screenY + viewY

		// Fill the row first so stale cells never survive a redraw.
		for fillX := 0; fillX < width; fillX++ {
			tuiManager.screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		if bufferLineIdx < 0 || bufferLineIdx >= len(lines) {
			continue // Row is below buffer content
		}

		lineStr := string(lines[bufferLineIdx])
		gr := uniseg.NewGraphemes(lineStr)

		currentRuneIndex := 0
		screenX := 0

		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()

			// Skip clusters left of the viewport.
			if currentRuneIndex < viewX {
				currentRuneIndex += len(clusterRunes)
				continue
			}
			// Stop once the cluster no longer fits before the margin.
			if screenX+clusterWidth > maxTextWidth {
				break
			}

			if len(clusterRunes) > 0 {
				mainRune := clusterRunes[0]
				var combining []rune
				if len(clusterRunes) > 1 {
					combining = clusterRunes[1:]
				}
				tuiManager.screen.SetContent(screenX, screenY, mainRune, combining, defaultStyle)
				// Fill remaining cells for wide characters.
				for cw := 1; cw < clusterWidth; cw++ {
					if screenX+cw < width {
						tuiManager.screen.SetContent(screenX+cw, screenY, ' ', nil, defaultStyle)
					}
				}
			}

			screenX += clusterWidth
			currentRuneIndex += len(clusterRunes)
		}
	}
}

// drawText draws text starting at (x, y), honoring grapheme cluster widths
// and stopping before maxWidth cells are exceeded.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	gr := uniseg.NewGraphemes(text)
	currentX := x
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > x+maxWidth {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			screen.SetContent(currentX, y, runes[0], combining, style)
		}
		currentX += clusterWidth
	}
}

// DrawCursor positions the terminal cursor, mapping the rune-column cursor
// and viewport origin to visual cells.
func DrawCursor(tuiManager *TUI, editor *core.Editor) {
	cursor := editor.GetCursor()
	viewY, viewX := editor.GetViewport()
	width, height := tuiManager.Size()
	viewHeight := height - config.ReservedRows

	lineBytes, err := editor.GetBuffer().Line(cursor.Line)
	screenX := 0
	if err == nil {
		screenX = calculateVisualColumn(lineBytes, cursor.Col) - calculateVisualColumn(lineBytes, viewX)
	} else {
		logger.Debugf("DrawCursor: Error getting line %d: %v", cursor.Line, err)
	}
	screenY := cursor.Line - viewY

	if screenX < 0 || screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 {
		tuiManager.screen.HideCursor()
	} else {
		tuiManager.screen.ShowCursor(screenX, screenY)
	}
}
