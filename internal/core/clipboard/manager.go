package clipboard

import (
	clip "github.com/atotto/clipboard"

	"github.com/TheItcor/rawIDE/internal/logger"
)

// Manager owns the yank register. With the system bridge enabled, yanked
// text is mirrored to the OS clipboard and paste prefers the OS clipboard,
// so text copied in other applications is reachable here. The internal
// register keeps yank/paste working when no OS clipboard is available.
type Manager struct {
	register  []byte
	useSystem bool
}

// NewManager creates a clipboard manager. useSystem enables the OS
// clipboard bridge.
func NewManager(useSystem bool) *Manager {
	return &Manager{useSystem: useSystem}
}

// SetUseSystem toggles the OS clipboard bridge.
func (m *Manager) SetUseSystem(enabled bool) {
	m.useSystem = enabled
}

// Set stores content in the register and, if the bridge is enabled, the OS
// clipboard. The register always holds the content even when the OS
// clipboard is unreachable.
func (m *Manager) Set(content []byte) error {
	m.register = append([]byte(nil), content...)
	if !m.useSystem {
		return nil
	}
	if err := clip.WriteAll(string(content)); err != nil {
		logger.Warnf("Clipboard: system clipboard write failed: %v", err)
		return err
	}
	return nil
}

// Get returns the current clipboard content. With the bridge enabled the OS
// clipboard wins; a read failure falls back to the internal register.
func (m *Manager) Get() []byte {
	if m.useSystem {
		text, err := clip.ReadAll()
		if err == nil && text != "" {
			return []byte(text)
		}
		if err != nil {
			logger.Debugf("Clipboard: system clipboard read failed, using register: %v", err)
		}
	}
	return m.register
}
