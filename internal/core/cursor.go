package core

import (
	"unicode/utf8"

	"github.com/TheItcor/rawIDE/internal/logger"
)

// MoveCursor moves the cursor AND adjusts the viewport, handling line wraps.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	currentLine := e.Cursor.Line
	currentCol := e.Cursor.Col
	lineCount := e.buffer.LineCount()

	// Horizontal wrap-around applies only to pure horizontal movement.
	if deltaLine == 0 && lineCount > 0 {
		if deltaCol > 0 { // Attempting to move Right
			lineBytes, err := e.buffer.Line(currentLine)
			if err == nil {
				maxCol := utf8.RuneCount(lineBytes)
				if currentCol >= maxCol && currentLine < lineCount-1 { // At or past EOL and not on the last line
					e.Cursor.Line++
					e.Cursor.Col = 0
					e.ScrollToCursor()
					return // Wrap handled
				}
			}
		} else if deltaCol < 0 { // Attempting to move Left
			if currentCol <= 0 && currentLine > 0 { // At or before BOL and not on the first line
				e.Cursor.Line--
				prevLineBytes, err := e.buffer.Line(e.Cursor.Line)
				if err == nil {
					e.Cursor.Col = utf8.RuneCount(prevLineBytes) // End of previous line
				} else {
					e.Cursor.Col = 0
				}
				e.ScrollToCursor()
				return // Wrap handled
			}
		}
	}

	// Default movement and clamping.
	targetLine := currentLine + deltaLine
	targetCol := currentCol + deltaCol

	// Clamp targetLine vertically
	if targetLine < 0 {
		targetLine = 0
	}
	if lineCount == 0 {
		targetLine = 0
	} else if targetLine >= lineCount {
		targetLine = lineCount - 1
	}

	// Clamp targetCol horizontally based on the target line's content
	if targetCol < 0 {
		targetCol = 0
	}
	if lineCount > 0 {
		targetLineBytes, err := e.buffer.Line(targetLine)
		if err == nil {
			maxCol := utf8.RuneCount(targetLineBytes)
			if targetCol > maxCol {
				targetCol = maxCol
			}
		} else {
			targetCol = 0
		}
	} else {
		targetCol = 0
	}

	e.Cursor.Line = targetLine
	e.Cursor.Col = targetCol

	e.ScrollToCursor()
}

// ScrollToCursor adjusts the viewport so the cursor stays inside it. The
// recomputation is pure: given the cursor and view size it always yields the
// same origin, and a buffer that already fits never scrolls. Horizontal
// scrolling works in rune columns with one column reserved so the cursor can
// always be drawn inside the window.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return // Cannot scroll if view has no dimensions
	}

	// Effective scrolloff (cannot be larger than half the view height)
	effectiveScrollOff := e.ScrollOff
	if effectiveScrollOff*2 >= e.viewHeight {
		effectiveScrollOff = (e.viewHeight - 1) / 2
	}

	// Vertical scrolling with scrolloff
	if e.Cursor.Line < e.ViewportY+effectiveScrollOff {
		e.ViewportY = e.Cursor.Line - effectiveScrollOff
	} else if e.Cursor.Line >= e.ViewportY+e.viewHeight-effectiveScrollOff {
		e.ViewportY = e.Cursor.Line - e.viewHeight + 1 + effectiveScrollOff
	}

	// Horizontal scrolling in rune columns
	usableCols := e.viewWidth - 1
	if usableCols < 1 {
		usableCols = 1
	}
	if e.Cursor.Col < e.ViewportX {
		e.ViewportX = e.Cursor.Col
	} else if e.Cursor.Col >= e.ViewportX+usableCols {
		e.ViewportX = e.Cursor.Col - usableCols + 1
	}

	// Clamp viewport origins
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	if e.ViewportX < 0 {
		e.ViewportX = 0
	}
}

// PageMove moves the cursor and viewport up or down by one page height.
// 'deltaPages' is typically +1 (PageDown) or -1 (PageUp).
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return // Cannot page if view has no height
	}

	targetLine := e.Cursor.Line + (e.viewHeight * deltaPages)

	lineCount := e.buffer.LineCount()
	if targetLine < 0 {
		targetLine = 0
	} else if targetLine >= lineCount {
		targetLine = lineCount - 1
	}

	e.Cursor.Line = targetLine
	e.MoveCursor(0, 0) // Clamp Col against the new line and scroll

	// Explicitly move viewport - ScrollToCursor might not jump a full page
	e.ViewportY += (e.viewHeight * deltaPages)
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	maxViewportY := lineCount - e.viewHeight
	if maxViewportY < 0 {
		maxViewportY = 0
	}
	if e.ViewportY > maxViewportY {
		e.ViewportY = maxViewportY
	}

	e.ScrollToCursor()
}

// Home moves the cursor to the beginning of the current line (column 0).
func (e *Editor) Home() {
	e.Cursor.Col = 0
	e.ScrollToCursor()
}

// End moves the cursor to the end of the current line.
func (e *Editor) End() {
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		logger.Debugf("Error getting line %d for End key: %v", e.Cursor.Line, err)
		e.Cursor.Col = 0
	} else {
		e.Cursor.Col = utf8.RuneCount(lineBytes) // Position after the last rune
	}
	e.ScrollToCursor()
}
