package core

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/TheItcor/rawIDE/internal/event"
)

// InsertRune inserts a single rune at the cursor as one history-tracked
// operation.
func (e *Editor) InsertRune(r rune) error {
	runeBytes := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(runeBytes, r)

	e.history.Record()
	return e.insertRaw(runeBytes)
}

// InsertText inserts a string at the cursor as one history-tracked
// operation. The text may contain newlines, which split lines.
func (e *Editor) InsertText(text string) error {
	if text == "" {
		return nil
	}
	e.history.Record()
	return e.insertRaw([]byte(text))
}

// InsertNewLine splits the current line at the cursor.
func (e *Editor) InsertNewLine() error {
	return e.InsertRune('\n')
}

// InsertTab inserts the configured number of literal spaces as a single
// history-tracked operation.
func (e *Editor) InsertTab() error {
	return e.InsertText(strings.Repeat(" ", e.tabWidth))
}

// insertRaw performs the buffer insert plus cursor and viewport bookkeeping.
// History is the caller's concern.
func (e *Editor) insertRaw(textBytes []byte) error {
	endPos, err := e.buffer.Insert(e.Cursor, textBytes)
	if err != nil {
		return fmt.Errorf("buffer insert failed: %w", err)
	}

	e.Cursor = endPos
	e.ScrollToCursor()

	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, nil)
	}
	return nil
}

// DeleteBackward deletes the rune before the cursor, merging with the
// previous line when the cursor sits at column 0. At the very start of the
// buffer it is a no-op and records no history.
func (e *Editor) DeleteBackward() error {
	start := e.Cursor
	end := e.Cursor

	if e.Cursor.Col > 0 {
		start.Col--
	} else if e.Cursor.Line > 0 {
		start.Line--
		prevLineBytes, err := e.buffer.Line(start.Line)
		if err != nil {
			return fmt.Errorf("cannot get previous line %d: %w", start.Line, err)
		}
		start.Col = utf8.RuneCount(prevLineBytes)
	} else {
		return nil // Start of buffer, nothing to delete
	}

	e.history.Record()

	if err := e.buffer.Delete(start, end); err != nil {
		return fmt.Errorf("buffer delete failed: %w", err)
	}

	e.Cursor = start
	e.ScrollToCursor()

	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, nil)
	}
	return nil
}
