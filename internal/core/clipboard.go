package core

import (
	"fmt"

	"github.com/TheItcor/rawIDE/internal/event"
	"github.com/TheItcor/rawIDE/internal/logger"
)

// YankLine copies the current line, including a trailing newline, into the
// clipboard. Returns true if text was copied.
func (e *Editor) YankLine() (bool, error) {
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		return false, fmt.Errorf("cannot get line %d for yank: %w", e.Cursor.Line, err)
	}

	content := make([]byte, 0, len(lineBytes)+1)
	content = append(content, lineBytes...)
	content = append(content, '\n')

	if err := e.clipboard.Set(content); err != nil {
		// The internal register still holds the line.
		logger.Debugf("Editor: yank reached register only: %v", err)
	}

	logger.Debugf("Editor: Yanked %d bytes", len(content))
	return true, nil
}

// Paste inserts the clipboard content at the cursor as a single
// history-tracked operation. Returns true if text was pasted.
func (e *Editor) Paste() (bool, error) {
	content := e.clipboard.Get()
	if len(content) == 0 {
		return false, nil // Nothing in clipboard
	}

	e.history.Record()

	endPos, err := e.buffer.Insert(e.Cursor, content)
	if err != nil {
		return false, fmt.Errorf("buffer insert failed during paste: %w", err)
	}

	e.Cursor = endPos
	e.MoveCursor(0, 0) // Use MoveCursor to clamp and scroll

	logger.Debugf("Editor: Pasted %d bytes", len(content))
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, nil)
	}
	return true, nil
}
