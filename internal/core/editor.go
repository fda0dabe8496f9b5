// internal/core/editor.go
package core

import (
	"github.com/TheItcor/rawIDE/internal/buffer"
	"github.com/TheItcor/rawIDE/internal/config"
	"github.com/TheItcor/rawIDE/internal/core/clipboard"
	"github.com/TheItcor/rawIDE/internal/core/history"
	"github.com/TheItcor/rawIDE/internal/event"
	"github.com/TheItcor/rawIDE/internal/types"
)

// Editor is the session object: one open buffer, the cursor addressing it
// and the viewport over it. All coordinates are 0-based, with Col counting
// runes rather than bytes.
type Editor struct {
	buffer     buffer.Buffer
	Cursor     types.Position
	ViewportY  int // Top visible line index (0-based)
	ViewportX  int // Leftmost visible rune index (0-based) - Horizontal scroll
	viewWidth  int // Cached terminal width
	viewHeight int // Cached terminal height (excluding reserved rows)
	ScrollOff  int // Number of lines to keep visible above/below cursor

	tabWidth int // Spaces produced per Tab key

	eventManager *event.Manager
	history      *history.Manager
	clipboard    *clipboard.Manager
}

// NewEditor creates a new Editor instance with a given buffer.
func NewEditor(buf buffer.Buffer) *Editor {
	e := &Editor{
		buffer:    buf,
		Cursor:    types.Position{Line: 0, Col: 0},
		ViewportY: 0,
		ViewportX: 0,
		ScrollOff: config.DefaultScrollOff,
		tabWidth:  config.DefaultTabWidth,
	}
	e.history = history.NewManager(e, history.DefaultMaxHistory)
	e.clipboard = clipboard.NewManager(config.SystemClipboard)
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager (may be nil).
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// SetHistoryManager replaces the history manager, typically to apply a
// configured undo depth.
func (e *Editor) SetHistoryManager(mgr *history.Manager) {
	e.history = mgr
}

// GetHistoryManager returns the history manager.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.history
}

// GetClipboardManager returns the clipboard manager.
func (e *Editor) GetClipboardManager() *clipboard.Manager {
	return e.clipboard
}

// SetTabWidth sets how many spaces InsertTab produces.
func (e *Editor) SetTabWidth(width int) {
	if width > 0 {
		e.tabWidth = width
	}
}

// SetViewSize updates the cached view dimensions. Called on resize or before drawing.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	if height > config.ReservedRows {
		e.viewHeight = height - config.ReservedRows
	} else {
		e.viewHeight = 0 // No space to draw buffer
	}

	// Ensure scrolloff isn't larger than half the view height
	if e.ScrollOff*2 >= e.viewHeight && e.viewHeight > 0 {
		e.ScrollOff = (e.viewHeight - 1) / 2
	} else if e.viewHeight <= 0 {
		e.ScrollOff = 0 // No scrolling if no view height
	}

	// After resize, we might need to adjust viewport/cursor
	e.ScrollToCursor()
}

// GetViewSize returns the cached view dimensions (width, text rows).
func (e *Editor) GetViewSize() (int, int) {
	return e.viewWidth, e.viewHeight
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

// SetCursor sets the current cursor position, clamped to the buffer.
func (e *Editor) SetCursor(pos types.Position) {
	e.Cursor = pos     // Set temporarily
	e.MoveCursor(0, 0) // Use MoveCursor to handle clamping
	// MoveCursor already calls ScrollToCursor
}

// GetViewport returns the viewport origin (top line, leftmost rune column).
func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// LoadFile replaces the buffer content with the contents of path and resets
// the cursor and viewport. The state before the load goes onto the undo
// stack, but only once the file has actually been read: a failed open leaves
// buffer, cursor and history untouched.
func (e *Editor) LoadFile(path string) error {
	prev := e.history.Capture()

	if err := e.buffer.Load(path); err != nil {
		return err
	}

	e.history.RecordSnapshot(prev)
	e.Cursor = types.Position{Line: 0, Col: 0}
	e.ViewportY = 0
	e.ViewportX = 0
	e.ScrollToCursor()

	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: e.buffer.FilePath()})
	}
	return nil
}

// SaveBuffer writes the buffer to disk. An empty path reuses the buffer's
// associated file path; a non-empty path becomes the new association.
func (e *Editor) SaveBuffer(path string) error {
	if err := e.buffer.Save(path); err != nil {
		return err
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})
	}
	return nil
}

// Undo restores the previous snapshot. Returns false when the undo stack is
// empty.
func (e *Editor) Undo() bool {
	return e.history.Undo()
}

// Redo reapplies the most recently undone snapshot. Returns false when the
// redo stack is empty.
func (e *Editor) Redo() bool {
	return e.history.Redo()
}
