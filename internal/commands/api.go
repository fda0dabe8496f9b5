package commands

import (
	"time"

	"github.com/TheItcor/rawIDE/internal/modehandler"
	"github.com/TheItcor/rawIDE/internal/runner"
)

// API is the application surface the built-in commands operate through.
type API interface {
	// Buffer state
	BufferFilePath() string
	IsBufferModified() bool

	// File operations routed through the editor
	OpenFile(path string) error
	SaveBuffer(path string) error

	// UI feedback
	SetStatusMessage(format string, args ...interface{})
	ShowPopup(text string)

	// Session control
	RequestQuit()

	// External process execution for :r
	Runner() runner.Executor
	CompileTimeout() time.Duration
	RunTimeout() time.Duration

	RegisterCommand(name string, cmdFunc modehandler.CommandFunc) error
}
