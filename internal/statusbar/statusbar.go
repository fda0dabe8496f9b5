// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/TheItcor/rawIDE/internal/config"
	"github.com/TheItcor/rawIDE/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the appearance and behavior of the status area.
type Config struct {
	StyleBar       tcell.Style // Status bar row (reverse video)
	StylePrompt    tcell.Style // Command line row
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleBar:       tcell.StyleDefault.Reverse(true),
		StylePrompt:    tcell.StyleDefault,
		MessageTimeout: config.MessageTimeout,
	}
}

// StatusBar renders the two reserved rows at the bottom of the screen: the
// status bar proper and the command line area beneath it.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	fileName   string
	isModified bool
	cursorPos  types.Position
	modeName   string

	// Transient message state. While active the message is shown alongside
	// the persistent mode indicator; after expiry only the mode remains.
	tempMessage string
	tempExpiry  time.Time
}

// New creates a new StatusBar with the given configuration.
func New(cfg Config) *StatusBar {
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = config.MessageTimeout
	}
	return &StatusBar{
		config: cfg,
	}
}

// SetFileInfo updates the file path and modified flag shown in the bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.fileName = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetMode updates the displayed mode name. Switching modes drops any
// transient message, leaving the persistent mode indicator.
func (sb *StatusBar) SetMode(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.modeName = name
	sb.tempMessage = ""
	sb.tempExpiry = time.Time{}
}

// SetTemporaryMessage displays a message next to the mode indicator until
// the configured timeout elapses.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempExpiry = time.Now().Add(sb.config.MessageTimeout)
}

// ResetTemporaryMessage clears any transient message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempExpiry = time.Time{}
}

// StatusText returns the current status segment ("MODE: X" or
// "MODE: X - message"), expiring any stale transient message first.
func (sb *StatusBar) StatusText() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.expireLocked()
	return sb.statusTextLocked()
}

// expireLocked drops the transient message once its time is up. Callers
// hold the mutex.
func (sb *StatusBar) expireLocked() {
	if !sb.tempExpiry.IsZero() && time.Now().After(sb.tempExpiry) {
		sb.tempMessage = ""
		sb.tempExpiry = time.Time{}
	}
}

func (sb *StatusBar) statusTextLocked() string {
	if sb.tempMessage != "" {
		return fmt.Sprintf("MODE: %s - %s", sb.modeName, sb.tempMessage)
	}
	return fmt.Sprintf("MODE: %s", sb.modeName)
}

// barTextLocked builds the full status bar line. Callers hold the mutex.
func (sb *StatusBar) barTextLocked() string {
	fileName := sb.fileName
	if fileName == "" {
		fileName = "[no file]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = "*"
	}
	return fmt.Sprintf("rawIDE - %s %s  ln %d, col %d  %s",
		fileName, modifiedIndicator, sb.cursorPos.Line+1, sb.cursorPos.Col+1, sb.statusTextLocked())
}

// Draw renders the status bar and the command line area onto the two rows
// at the bottom of the screen.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height < config.ReservedRows || width <= 0 {
		return
	}
	barY := height - 2
	promptY := height - 1

	sb.mu.Lock()
	sb.expireLocked()
	text := sb.barTextLocked()
	sb.mu.Unlock()

	// Fill the bar row, then draw the text truncated one cell short so the
	// bar keeps the same right margin as the text area.
	for x := 0; x < width; x++ {
		screen.SetContent(x, barY, ' ', nil, sb.config.StyleBar)
	}
	drawTextLine(screen, 0, barY, width-1, text, sb.config.StyleBar)

	// Command line area with its ':' hint. An active prompt draws over this
	// row with the typed command.
	for x := 0; x < width; x++ {
		screen.SetContent(x, promptY, ' ', nil, sb.config.StylePrompt)
	}
	screen.SetContent(0, promptY, ':', nil, sb.config.StylePrompt)
}

// drawTextLine draws text starting at (x, y), honoring grapheme cluster
// widths and stopping before maxWidth cells are exceeded.
func drawTextLine(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	gr := uniseg.NewGraphemes(text)
	currentX := x
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > x+maxWidth {
			break // Stop if cluster doesn't fit
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combiningRunes, style)
		}
		currentX += clusterWidth
	}
}
