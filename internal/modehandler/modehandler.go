// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/TheItcor/rawIDE/internal/core"
	"github.com/TheItcor/rawIDE/internal/event"
	"github.com/TheItcor/rawIDE/internal/input"
	"github.com/TheItcor/rawIDE/internal/logger"
	"github.com/TheItcor/rawIDE/internal/statusbar"
	"github.com/TheItcor/rawIDE/internal/types"
	"github.com/gdamore/tcell/v2"
)

// InputMode represents the distinct states of the editing mode machine.
type InputMode int

const (
	// ModeNavigation is the initial mode: cursor movement plus the two
	// transition keys ('i' and ':'). Every other key is ignored.
	ModeNavigation InputMode = iota
	// ModeInsert routes keys into the buffer as edits.
	ModeInsert
)

// String returns the indicator text shown in the status bar.
func (m InputMode) String() string {
	switch m {
	case ModeNavigation:
		return "NAVIGATION"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// CommandFunc is the signature for registered ':' commands. It receives the
// whitespace-split arguments after the command name.
type CommandFunc func(args []string) error

// LineReader reads a single line of interactive input. ok is false when the
// user cancelled instead of submitting. The TUI prompt implements this;
// tests substitute a scripted fake.
type LineReader interface {
	ReadLine(prompt string) (string, bool)
}

// ModeHandler owns the mode machine: it interprets processed input actions
// according to the current mode and runs the ':' command line.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	prompt         LineReader

	currentMode   InputMode
	commands      map[string]CommandFunc
	quitRequested bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Prompt         LineReader
}

// New creates a ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.Prompt == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		prompt:         cfg.Prompt,
		currentMode:    ModeNavigation,
		commands:       make(map[string]CommandFunc),
	}
}

// HandleKeyEvent processes a key event according to the current mode.
// It returns false when the session should terminate.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	// Global chords behave identically in every mode and win over the
	// per-mode dispatch below.
	switch actionEvent.Action {
	case input.ActionEscape:
		mh.setMode(ModeNavigation)
		return true
	case input.ActionUndo:
		if mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Undo")
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
		return true
	case input.ActionRedo:
		if mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Redo")
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}
		return true
	}

	switch mh.currentMode {
	case ModeNavigation:
		return mh.handleActionNavigation(actionEvent)
	case ModeInsert:
		return mh.handleActionInsert(actionEvent)
	default:
		logger.Warnf("ModeHandler: key event in unknown mode %d", mh.currentMode)
		return true
	}
}

// handleActionNavigation dispatches an action in navigation mode. Only
// cursor movement and the transition keys do anything here.
func (mh *ModeHandler) handleActionNavigation(actionEvent input.ActionEvent) bool {
	originalCursor := mh.editor.GetCursor()

	switch actionEvent.Action {
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionInsertRune:
		switch actionEvent.Rune {
		case 'i':
			mh.setMode(ModeInsert)
		case ':':
			return mh.runCommandPrompt()
		}
		// Any other rune is deliberately a no-op: edits are unreachable
		// without switching to insert mode first.
	}

	mh.dispatchCursorMoved(originalCursor)
	return true
}

// handleActionInsert dispatches an action in insert mode.
func (mh *ModeHandler) handleActionInsert(actionEvent input.ActionEvent) bool {
	originalCursor := mh.editor.GetCursor()

	switch actionEvent.Action {
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()

	case input.ActionInsertRune:
		// ':' arrives here as a plain rune and is inserted literally.
		if err := mh.editor.InsertRune(actionEvent.Rune); err != nil {
			logger.Debugf("Err InsertRune: %v", err)
		}
	case input.ActionInsertNewLine:
		if err := mh.editor.InsertNewLine(); err != nil {
			logger.Debugf("Err InsertNewLine: %v", err)
		}
	case input.ActionInsertTab:
		if err := mh.editor.InsertTab(); err != nil {
			logger.Debugf("Err InsertTab: %v", err)
		}
	case input.ActionDeleteBackward:
		if err := mh.editor.DeleteBackward(); err != nil {
			logger.Debugf("Err DeleteBackward: %v", err)
		}

	case input.ActionYankLine:
		copied, err := mh.editor.YankLine()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Yank failed: %v", err)
			logger.Debugf("Yank error: %v", err)
		} else if copied {
			mh.statusBar.SetTemporaryMessage("Yanked line")
		}
	case input.ActionPaste:
		pasted, err := mh.editor.Paste()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			logger.Debugf("Paste error: %v", err)
		} else if !pasted {
			mh.statusBar.SetTemporaryMessage("Clipboard empty")
		}
	}

	mh.dispatchCursorMoved(originalCursor)
	return true
}

// setMode switches the mode machine and refreshes the status indicator.
// Switching clears any transient status message.
func (mh *ModeHandler) setMode(mode InputMode) {
	mh.currentMode = mode
	mh.statusBar.SetMode(mode.String())
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{ModeName: mode.String()})
	logger.Debugf("ModeHandler: mode set to %s", mode)
}

// dispatchCursorMoved emits a cursor event if the cursor actually moved.
func (mh *ModeHandler) dispatchCursorMoved(before types.Position) {
	after := mh.editor.GetCursor()
	if after != before {
		mh.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: after})
	}
}

// RegisterCommand adds a named ':' command.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: registered command ':%s'", name)
	return nil
}

// RequestQuit marks the session for termination once the currently running
// command returns.
func (mh *ModeHandler) RequestQuit() {
	mh.quitRequested = true
}

// GetCurrentMode returns the active input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}
