// internal/event/event.go
package event

import (
	"github.com/TheItcor/rawIDE/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Core editor events
	TypeBufferModified // buffer content changed (insert/delete/split/restore)
	TypeBufferLoaded   // a file was loaded into the buffer
	TypeBufferSaved    // the buffer was written out
	TypeCursorMoved    // the cursor position changed
	TypeModeChanged    // input mode switched (Navigation <-> Insert)

	// Application lifecycle
	TypeAppQuit // termination was requested (:q / :q! / :wq)
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// ModeChangedData carries the display name of the newly active mode.
type ModeChangedData struct {
	ModeName string
}

// AppQuitData could carry an exit reason later.
type AppQuitData struct{}
