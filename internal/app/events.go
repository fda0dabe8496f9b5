package app

import (
	"github.com/TheItcor/rawIDE/internal/event"
)

// handleCursorMovedForStatus updates the status bar based on cursor position
func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false // Not consumed
}

// handleBufferModifiedForStatus updates the status bar when buffer is modified
func (a *App) handleBufferModifiedForStatus(e event.Event) bool {
	a.updateStatusBarContent() // Update status bar (e.g., modified indicator)
	return false               // Not consumed
}

// handleBufferSavedForStatus updates the status bar when buffer is saved
func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	a.updateStatusBarContent() // Update modified status
	return false               // Not consumed
}

// handleBufferLoadedForStatus refreshes file path and modified status after a load
func (a *App) handleBufferLoadedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false // Not consumed
}
