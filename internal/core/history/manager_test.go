package history

import (
	"testing"

	"github.com/TheItcor/rawIDE/internal/buffer"
	"github.com/TheItcor/rawIDE/internal/event"
	"github.com/TheItcor/rawIDE/internal/types"
)

// fakeEditor satisfies EditorInterface with just a buffer and a cursor.
type fakeEditor struct {
	buf    buffer.Buffer
	cursor types.Position
}

func (f *fakeEditor) GetBuffer() buffer.Buffer        { return f.buf }
func (f *fakeEditor) GetCursor() types.Position       { return f.cursor }
func (f *fakeEditor) SetCursor(pos types.Position)    { f.cursor = pos }
func (f *fakeEditor) GetEventManager() *event.Manager { return nil }
func (f *fakeEditor) ScrollToCursor()                 {}

func newFakeEditor(t *testing.T, text string) *fakeEditor {
	t.Helper()
	buf := buffer.NewSliceBuffer()
	if text != "" {
		if _, err := buf.Insert(types.Position{}, []byte(text)); err != nil {
			t.Fatalf("seeding buffer: %v", err)
		}
	}
	return &fakeEditor{buf: buf}
}

func firstLine(t *testing.T, ed *fakeEditor) string {
	t.Helper()
	line, err := ed.buf.Line(0)
	if err != nil {
		t.Fatalf("Line(0): %v", err)
	}
	return string(line)
}

// typeRune mimics one history-wrapped insert at the cursor.
func typeRune(t *testing.T, ed *fakeEditor, m *Manager, r rune) {
	t.Helper()
	m.Record()
	end, err := ed.buf.Insert(ed.cursor, []byte(string(r)))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	ed.cursor = end
}

func TestUndoEmptyStack(t *testing.T) {
	ed := newFakeEditor(t, "")
	m := NewManager(ed, 10)
	if m.Undo() {
		t.Fatalf("expected Undo to report false on empty stack")
	}
	if m.Redo() {
		t.Fatalf("expected Redo to report false on empty stack")
	}
}

func TestUndoRestoresStatesInReverseOrder(t *testing.T) {
	ed := newFakeEditor(t, "")
	m := NewManager(ed, 10)

	for _, r := range "abc" {
		typeRune(t, ed, m, r)
	}
	if got := firstLine(t, ed); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}

	want := []string{"ab", "a", ""}
	wantCursor := []types.Position{{Line: 0, Col: 2}, {Line: 0, Col: 1}, {Line: 0, Col: 0}}
	for i := range want {
		if !m.Undo() {
			t.Fatalf("undo %d failed", i)
		}
		if got := firstLine(t, ed); got != want[i] {
			t.Fatalf("undo %d: expected %q, got %q", i, want[i], got)
		}
		if ed.cursor != wantCursor[i] {
			t.Fatalf("undo %d: expected cursor %+v, got %+v", i, wantCursor[i], ed.cursor)
		}
	}
	if m.Undo() {
		t.Fatalf("expected exhausted undo stack")
	}
}

func TestUndoThenRedoIsIdentity(t *testing.T) {
	ed := newFakeEditor(t, "")
	m := NewManager(ed, 10)
	for _, r := range "hi" {
		typeRune(t, ed, m, r)
	}

	if !m.Undo() {
		t.Fatalf("undo failed")
	}
	if !m.Redo() {
		t.Fatalf("redo failed")
	}
	if got := firstLine(t, ed); got != "hi" {
		t.Fatalf("expected hi after undo+redo, got %q", got)
	}
	if ed.cursor != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("expected cursor {0 2}, got %+v", ed.cursor)
	}
}

func TestNewMutationClearsRedo(t *testing.T) {
	ed := newFakeEditor(t, "")
	m := NewManager(ed, 10)
	typeRune(t, ed, m, 'a')
	typeRune(t, ed, m, 'b')

	if !m.Undo() {
		t.Fatalf("undo failed")
	}
	if !m.CanRedo() {
		t.Fatalf("expected redo to be available after undo")
	}

	typeRune(t, ed, m, 'z')
	if m.CanRedo() {
		t.Fatalf("expected redo stack cleared by new mutation")
	}
	if m.Redo() {
		t.Fatalf("expected Redo to report false")
	}
	if got := firstLine(t, ed); got != "az" {
		t.Fatalf("expected az, got %q", got)
	}
}

func TestCapacityEvictsOldestStates(t *testing.T) {
	ed := newFakeEditor(t, "")
	m := NewManager(ed, 3)

	for i := 0; i < 5; i++ {
		typeRune(t, ed, m, rune('0'+i))
	}
	if got := firstLine(t, ed); got != "01234" {
		t.Fatalf("expected 01234, got %q", got)
	}

	// Only the three most recent states are recoverable.
	want := []string{"0123", "012", "01"}
	for i := range want {
		if !m.Undo() {
			t.Fatalf("undo %d failed", i)
		}
		if got := firstLine(t, ed); got != want[i] {
			t.Fatalf("undo %d: expected %q, got %q", i, want[i], got)
		}
	}
	if m.Undo() {
		t.Fatalf("states beyond capacity must be unrecoverable")
	}
}

func TestCaptureRecordSnapshotPair(t *testing.T) {
	ed := newFakeEditor(t, "before")
	m := NewManager(ed, 10)

	snap := m.Capture()
	if m.CanUndo() {
		t.Fatalf("Capture must not touch the undo stack")
	}

	// Simulate the mutation succeeding, then commit the captured state.
	if _, err := ed.buf.Insert(types.Position{Line: 0, Col: 6}, []byte("!")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	m.RecordSnapshot(snap)

	if !m.Undo() {
		t.Fatalf("undo failed")
	}
	if got := firstLine(t, ed); got != "before" {
		t.Fatalf("expected before, got %q", got)
	}
}

func TestClearDropsBothStacks(t *testing.T) {
	ed := newFakeEditor(t, "")
	m := NewManager(ed, 10)
	typeRune(t, ed, m, 'a')
	if !m.Undo() {
		t.Fatalf("undo failed")
	}

	m.Clear()
	if m.CanUndo() || m.CanRedo() {
		t.Fatalf("expected both stacks empty after Clear")
	}
}

func TestManagerDefaultsCapacityWhenNonPositive(t *testing.T) {
	ed := newFakeEditor(t, "")
	for _, depth := range []int{0, -4} {
		m := NewManager(ed, depth)
		if m.maxHistory != DefaultMaxHistory {
			t.Fatalf("depth %d: expected default capacity %d, got %d", depth, DefaultMaxHistory, m.maxHistory)
		}
	}
}
