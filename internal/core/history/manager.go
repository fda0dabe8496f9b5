package history

import (
	"sync"

	"github.com/TheItcor/rawIDE/internal/buffer"
	"github.com/TheItcor/rawIDE/internal/event"
	"github.com/TheItcor/rawIDE/internal/logger"
	"github.com/TheItcor/rawIDE/internal/types"
)

const DefaultMaxHistory = 200

// EditorInterface defines the methods the history manager needs from the
// editor.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(types.Position)
	GetEventManager() *event.Manager
	ScrollToCursor()
}

// Manager holds the bounded undo and redo stacks of full-state snapshots.
// Record captures the current state before a mutation; Undo and Redo swap
// states between the two stacks.
type Manager struct {
	editor     EditorInterface
	undo       []Snapshot
	redo       []Snapshot
	maxHistory int
	mutex      sync.Mutex
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:     editor,
		undo:       make([]Snapshot, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// snapshotNow captures the current buffer content and cursor.
func (m *Manager) snapshotNow() Snapshot {
	return Snapshot{
		Lines:  m.editor.GetBuffer().Snapshot(),
		Cursor: m.editor.GetCursor(),
	}
}

// restore installs a snapshot as the live state. The buffer marks itself
// modified; the cursor follows the snapshot.
func (m *Manager) restore(s Snapshot) {
	m.editor.GetBuffer().Restore(s.Lines)
	m.editor.SetCursor(s.Cursor)
	m.editor.ScrollToCursor()

	if eventMgr := m.editor.GetEventManager(); eventMgr != nil {
		eventMgr.Dispatch(event.TypeBufferModified, nil)
	}
}

// push appends a snapshot to the undo stack, evicting the oldest entry once
// the stack exceeds its capacity, and clears the redo stack. Callers hold the
// mutex.
func (m *Manager) push(s Snapshot) {
	m.undo = append(m.undo, s)
	if len(m.undo) > m.maxHistory {
		m.undo = m.undo[len(m.undo)-m.maxHistory:]
	}
	m.redo = nil

	logger.Debugf("History: Recorded snapshot. Undo depth: %d", len(m.undo))
}

// Record pushes the current state onto the undo stack and clears the redo
// stack. Call it immediately before every mutating operation.
func (m *Manager) Record() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.push(m.snapshotNow())
}

// Capture returns a snapshot of the current state without touching the
// stacks. Pair it with RecordSnapshot when the mutation that follows can
// still fail and failure must leave history unchanged.
func (m *Manager) Capture() Snapshot {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.snapshotNow()
}

// RecordSnapshot pushes a previously captured snapshot onto the undo stack
// and clears the redo stack.
func (m *Manager) RecordSnapshot(s Snapshot) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.push(s)
}

// Undo restores the most recent snapshot, moving the current state to the
// redo stack. Returns false if there is nothing to undo.
func (m *Manager) Undo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.undo) == 0 {
		logger.Debugf("History: Nothing to undo.")
		return false
	}

	m.redo = append(m.redo, m.snapshotNow())
	last := len(m.undo) - 1
	snap := m.undo[last]
	m.undo = m.undo[:last]

	m.restore(snap)
	logger.Debugf("History: Undo. Undo depth: %d, redo depth: %d", len(m.undo), len(m.redo))
	return true
}

// Redo restores the most recently undone snapshot, moving the current state
// back to the undo stack. Returns false if there is nothing to redo.
func (m *Manager) Redo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.redo) == 0 {
		logger.Debugf("History: Nothing to redo.")
		return false
	}

	m.undo = append(m.undo, m.snapshotNow())
	if len(m.undo) > m.maxHistory {
		m.undo = m.undo[len(m.undo)-m.maxHistory:]
	}
	last := len(m.redo) - 1
	snap := m.redo[last]
	m.redo = m.redo[:last]

	m.restore(snap)
	logger.Debugf("History: Redo. Undo depth: %d, redo depth: %d", len(m.undo), len(m.redo))
	return true
}

// Clear resets both stacks.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.undo = m.undo[:0]
	m.redo = nil
	logger.Debugf("History: Cleared.")
}

// CanUndo returns true if there are snapshots that can be restored.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.undo) > 0
}

// CanRedo returns true if there are undone snapshots that can be reapplied.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.redo) > 0
}
