// internal/app/app.go
package app

import (
	"fmt"

	"github.com/TheItcor/rawIDE/internal/buffer"
	"github.com/TheItcor/rawIDE/internal/commands"
	"github.com/TheItcor/rawIDE/internal/config"
	"github.com/TheItcor/rawIDE/internal/core"
	"github.com/TheItcor/rawIDE/internal/core/history"
	"github.com/TheItcor/rawIDE/internal/event"
	"github.com/TheItcor/rawIDE/internal/input"
	"github.com/TheItcor/rawIDE/internal/logger"
	"github.com/TheItcor/rawIDE/internal/modehandler"
	"github.com/TheItcor/rawIDE/internal/runner"
	"github.com/TheItcor/rawIDE/internal/statusbar"
	"github.com/TheItcor/rawIDE/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	runner       runner.Executor
	cfg          *config.Config
	filePath     string
}

// NewApp creates and initializes a new application instance. filePath may
// be empty for an unnamed scratch buffer.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newAppWithTUI(cfg, filePath, tuiManager), nil
}

// NewAppWithScreen builds the application over an existing screen. Tests use
// this with a tcell simulation screen.
func NewAppWithScreen(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	tuiManager, err := tui.NewWithScreen(screen)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newAppWithTUI(cfg, filePath, tuiManager), nil
}

func newAppWithTUI(cfg *config.Config, filePath string, tuiManager *tui.TUI) *App {
	buf := buffer.NewSliceBuffer()
	editor := core.NewEditor(buf)

	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)
	editor.SetHistoryManager(history.NewManager(editor, cfg.Editor.UndoDepth))
	editor.SetTabWidth(cfg.Editor.TabWidth)
	editor.ScrollOff = cfg.Editor.ScrollOff
	editor.GetClipboardManager().SetUseSystem(cfg.Editor.SystemClipboard)

	inputProcessor := input.NewInputProcessor()
	statusBar := statusbar.New(statusbar.DefaultConfig())
	prompt := tui.NewPrompt(tuiManager)

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: inputProcessor,
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Prompt:         prompt,
	})

	appInstance := &App{
		tuiManager:   tuiManager,
		editor:       editor,
		statusBar:    statusBar,
		eventManager: eventManager,
		modeHandler:  modeHandler,
		runner:       runner.New(),
		cfg:          cfg,
		filePath:     filePath,
	}

	// Built-in ':' commands reach the application through the API adapter.
	commands.RegisterAppCommands(newEditorAPI(appInstance))

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeCursorMoved, appInstance.handleCursorMovedForStatus)
	eventManager.Subscribe(event.TypeBufferModified, appInstance.handleBufferModifiedForStatus)
	eventManager.Subscribe(event.TypeBufferSaved, appInstance.handleBufferSavedForStatus)
	eventManager.Subscribe(event.TypeBufferLoaded, appInstance.handleBufferLoadedForStatus)

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)

	// Mode indicator first, then the startup file message, so the message
	// isn't wiped by the indicator reset.
	statusBar.SetMode(modeHandler.GetCurrentMode().String())

	if filePath != "" {
		if loadErr := editor.LoadFile(filePath); loadErr != nil {
			logger.Warnf("App: error opening '%s': %v", filePath, loadErr)
			statusBar.SetTemporaryMessage("Error opening %s: %v", filePath, loadErr)
		} else {
			statusBar.SetTemporaryMessage("Opened %s", filePath)
		}
	}
	appInstance.updateStatusBarContent()

	return appInstance
}

// Run starts the main loop: draw a frame, block on the next terminal event,
// dispatch it, repeat. It returns once a command requests termination.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	for {
		width, height := a.tuiManager.Size()
		a.editor.SetViewSize(width, height)
		a.drawEditor()

		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return nil // Screen finalized
		}

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
		case *tcell.EventKey:
			if !a.modeHandler.HandleKeyEvent(eventData) {
				a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
				if a.editor.GetBuffer().IsModified() {
					logger.Infof("App: exiting with unsaved changes")
				}
				logger.Infof("App: exiting")
				return nil
			}
		}
	}
}

// GetModeHandler allows the API adapter to access the mode handler for
// command registration.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}
