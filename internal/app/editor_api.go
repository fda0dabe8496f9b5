// internal/app/editor_api.go
package app

import (
	"time"

	"github.com/TheItcor/rawIDE/internal/commands"
	"github.com/TheItcor/rawIDE/internal/modehandler"
	"github.com/TheItcor/rawIDE/internal/runner"
	"github.com/TheItcor/rawIDE/internal/tui"
)

// Ensure appEditorAPI implements the commands.API interface.
var _ commands.API = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the commands API.
type appEditorAPI struct {
	app *App // Reference back to the main application
}

// newEditorAPI creates a new API adapter instance.
func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Buffer State ---

func (api *appEditorAPI) BufferFilePath() string {
	return api.app.editor.GetBuffer().FilePath()
}

func (api *appEditorAPI) IsBufferModified() bool {
	return api.app.editor.GetBuffer().IsModified()
}

// --- File Operations ---

func (api *appEditorAPI) OpenFile(path string) error {
	return api.app.editor.LoadFile(path)
}

func (api *appEditorAPI) SaveBuffer(path string) error {
	return api.app.editor.SaveBuffer(path)
}

// --- UI Feedback ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}

// ShowPopup blocks until the popup is dismissed. The main loop repaints the
// frame on return.
func (api *appEditorAPI) ShowPopup(text string) {
	tui.ShowPopup(api.app.tuiManager, text)
}

// --- Session Control ---

func (api *appEditorAPI) RequestQuit() {
	api.app.modeHandler.RequestQuit()
}

// --- External Process Execution ---

func (api *appEditorAPI) Runner() runner.Executor {
	return api.app.runner
}

func (api *appEditorAPI) CompileTimeout() time.Duration {
	return api.app.cfg.Run.CompileTimeout()
}

func (api *appEditorAPI) RunTimeout() time.Duration {
	return api.app.cfg.Run.RunTimeout()
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc modehandler.CommandFunc) error {
	return api.app.GetModeHandler().RegisterCommand(name, cmdFunc)
}
