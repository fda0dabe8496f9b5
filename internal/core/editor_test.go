// internal/core/editor_test.go
package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TheItcor/rawIDE/internal/buffer"
	"github.com/TheItcor/rawIDE/internal/types"
)

// newTestEditor seeds an editor with content. The seed insert leaves the
// buffer marked modified; tests that need a clean dirty flag use
// newCleanEditor instead.
func newTestEditor(t *testing.T, content string) *Editor {
	t.Helper()
	buf := buffer.NewSliceBuffer()
	if content != "" {
		if _, err := buf.Insert(types.Position{}, []byte(content)); err != nil {
			t.Fatalf("seeding buffer: %v", err)
		}
	}
	e := NewEditor(buf)
	e.SetViewSize(80, 24)
	return e
}

// newCleanEditor loads content from a real file so the buffer starts
// unmodified and with an empty history.
func newCleanEditor(t *testing.T, content string) *Editor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	buf := buffer.NewSliceBuffer()
	if err := buf.Load(path); err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	e := NewEditor(buf)
	e.SetViewSize(80, 24)
	return e
}

func bufferText(e *Editor) string {
	return string(e.GetBuffer().Bytes())
}

func TestSplitInsertUndoScenario(t *testing.T) {
	e := newTestEditor(t, "ab\ncd")
	e.SetCursor(types.Position{Line: 0, Col: 2})

	if err := e.InsertNewLine(); err != nil {
		t.Fatalf("InsertNewLine: %v", err)
	}
	if got := bufferText(e); got != "ab\n\ncd" {
		t.Fatalf("after split: expected %q, got %q", "ab\n\ncd", got)
	}
	if e.GetCursor() != (types.Position{Line: 1, Col: 0}) {
		t.Fatalf("after split: expected cursor {1 0}, got %+v", e.GetCursor())
	}

	if err := e.InsertText("xy"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if got := bufferText(e); got != "ab\nxy\ncd" {
		t.Fatalf("after insert: expected %q, got %q", "ab\nxy\ncd", got)
	}
	if e.GetCursor() != (types.Position{Line: 1, Col: 2}) {
		t.Fatalf("after insert: expected cursor {1 2}, got %+v", e.GetCursor())
	}

	if !e.Undo() {
		t.Fatalf("first undo failed")
	}
	if got := bufferText(e); got != "ab\n\ncd" {
		t.Fatalf("after first undo: expected %q, got %q", "ab\n\ncd", got)
	}
	if e.GetCursor() != (types.Position{Line: 1, Col: 0}) {
		t.Fatalf("after first undo: expected cursor {1 0}, got %+v", e.GetCursor())
	}

	if !e.Undo() {
		t.Fatalf("second undo failed")
	}
	if got := bufferText(e); got != "ab\ncd" {
		t.Fatalf("after second undo: expected %q, got %q", "ab\ncd", got)
	}
	if e.GetCursor() != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("after second undo: expected cursor {0 2}, got %+v", e.GetCursor())
	}
}

func TestNavigationNeverDirtiesOrRecords(t *testing.T) {
	e := newCleanEditor(t, "one\ntwo\nthree")

	e.MoveCursor(1, 0)
	e.MoveCursor(0, 2)
	e.Home()
	e.End()
	e.PageMove(1)
	e.PageMove(-1)
	e.MoveCursor(0, -1)

	if e.GetBuffer().IsModified() {
		t.Fatalf("navigation set the dirty flag")
	}
	if e.GetHistoryManager().CanUndo() {
		t.Fatalf("navigation pushed to history")
	}
}

func TestDeleteBackwardAtBufferStartIsNoOp(t *testing.T) {
	e := newCleanEditor(t, "ab\ncd")

	if err := e.DeleteBackward(); err != nil {
		t.Fatalf("DeleteBackward: %v", err)
	}
	if got := bufferText(e); got != "ab\ncd" {
		t.Fatalf("content changed: %q", got)
	}
	if e.GetCursor() != (types.Position{}) {
		t.Fatalf("cursor changed: %+v", e.GetCursor())
	}
	if e.GetBuffer().IsModified() {
		t.Fatalf("dirty flag set by no-op delete")
	}
	if e.GetHistoryManager().CanUndo() {
		t.Fatalf("no-op delete pushed to history")
	}
}

func TestDeleteBackwardMergesLines(t *testing.T) {
	e := newTestEditor(t, "ab\ncd")
	e.SetCursor(types.Position{Line: 1, Col: 0})

	if err := e.DeleteBackward(); err != nil {
		t.Fatalf("DeleteBackward: %v", err)
	}
	if got := bufferText(e); got != "abcd" {
		t.Fatalf("expected abcd, got %q", got)
	}
	if e.GetCursor() != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("expected cursor {0 2}, got %+v", e.GetCursor())
	}

	if !e.Undo() {
		t.Fatalf("undo failed")
	}
	if got := bufferText(e); got != "ab\ncd" {
		t.Fatalf("undo did not restore merge: %q", got)
	}
	if e.GetCursor() != (types.Position{Line: 1, Col: 0}) {
		t.Fatalf("undo cursor: expected {1 0}, got %+v", e.GetCursor())
	}
}

func TestDeleteBackwardWithinLine(t *testing.T) {
	e := newTestEditor(t, "abc")
	e.SetCursor(types.Position{Line: 0, Col: 2})

	if err := e.DeleteBackward(); err != nil {
		t.Fatalf("DeleteBackward: %v", err)
	}
	if got := bufferText(e); got != "ac" {
		t.Fatalf("expected ac, got %q", got)
	}
	if e.GetCursor() != (types.Position{Line: 0, Col: 1}) {
		t.Fatalf("expected cursor {0 1}, got %+v", e.GetCursor())
	}
}

func TestInsertTabIsSingleHistoryOperation(t *testing.T) {
	e := newTestEditor(t, "zz")

	if err := e.InsertTab(); err != nil {
		t.Fatalf("InsertTab: %v", err)
	}
	if got := bufferText(e); got != "    zz" {
		t.Fatalf("expected four spaces prefix, got %q", got)
	}
	if e.GetCursor() != (types.Position{Line: 0, Col: 4}) {
		t.Fatalf("expected cursor {0 4}, got %+v", e.GetCursor())
	}

	if !e.Undo() {
		t.Fatalf("undo failed")
	}
	if got := bufferText(e); got != "zz" {
		t.Fatalf("one undo should revert the whole tab, got %q", got)
	}
}

func TestCursorWrapsAcrossLineEnds(t *testing.T) {
	e := newTestEditor(t, "ab\ncd")

	e.SetCursor(types.Position{Line: 0, Col: 2})
	e.MoveCursor(0, 1)
	if e.GetCursor() != (types.Position{Line: 1, Col: 0}) {
		t.Fatalf("right at EOL: expected {1 0}, got %+v", e.GetCursor())
	}

	e.MoveCursor(0, -1)
	if e.GetCursor() != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("left at BOL: expected {0 2}, got %+v", e.GetCursor())
	}
}

func TestVerticalMoveClampsColumn(t *testing.T) {
	e := newTestEditor(t, "abcd\nx")
	e.SetCursor(types.Position{Line: 0, Col: 4})

	e.MoveCursor(1, 0)
	if e.GetCursor() != (types.Position{Line: 1, Col: 1}) {
		t.Fatalf("expected clamped cursor {1 1}, got %+v", e.GetCursor())
	}
}

func TestViewportRecomputeOnCursorFarBelow(t *testing.T) {
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = "line"
	}
	e := newTestEditor(t, strings.Join(lines, "\n"))
	e.SetViewSize(80, 24) // 22 text rows after the reserved ones

	e.SetCursor(types.Position{Line: 50, Col: 0})
	top, _ := e.GetViewport()
	if top != 29 {
		t.Fatalf("expected top row 29, got %d", top)
	}
}

func TestViewportHorizontalScrollInRuneColumns(t *testing.T) {
	e := newTestEditor(t, strings.Repeat("x", 120))
	e.SetViewSize(80, 24) // 79 usable text columns

	e.SetCursor(types.Position{Line: 0, Col: 100})
	_, left := e.GetViewport()
	if left != 22 {
		t.Fatalf("expected left column 22, got %d", left)
	}

	e.SetCursor(types.Position{Line: 0, Col: 5})
	_, left = e.GetViewport()
	if left != 5 {
		t.Fatalf("expected left column 5 after scrolling back, got %d", left)
	}
}

func TestLoadFilePushesPreviousStateToHistory(t *testing.T) {
	e := newCleanEditor(t, "original")
	e.SetCursor(types.Position{Line: 0, Col: 3})

	next := filepath.Join(t.TempDir(), "next.txt")
	if err := os.WriteFile(next, []byte("two\nthree"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := e.LoadFile(next); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := bufferText(e); got != "two\nthree" {
		t.Fatalf("expected loaded content, got %q", got)
	}
	if e.GetCursor() != (types.Position{}) {
		t.Fatalf("load should reset cursor, got %+v", e.GetCursor())
	}
	top, left := e.GetViewport()
	if top != 0 || left != 0 {
		t.Fatalf("load should reset viewport, got %d,%d", top, left)
	}

	if !e.Undo() {
		t.Fatalf("undo after load failed")
	}
	if got := bufferText(e); got != "original" {
		t.Fatalf("undo should restore pre-load content, got %q", got)
	}
	if e.GetCursor() != (types.Position{Line: 0, Col: 3}) {
		t.Fatalf("undo should restore pre-load cursor, got %+v", e.GetCursor())
	}
}

func TestLoadFileFailureLeavesEverythingUntouched(t *testing.T) {
	e := newCleanEditor(t, "keep")
	e.SetCursor(types.Position{Line: 0, Col: 2})

	err := e.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if got := bufferText(e); got != "keep" {
		t.Fatalf("buffer changed on failed load: %q", got)
	}
	if e.GetCursor() != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("cursor changed on failed load: %+v", e.GetCursor())
	}
	if e.GetHistoryManager().CanUndo() {
		t.Fatalf("failed load pushed to history")
	}
	if e.GetBuffer().IsModified() {
		t.Fatalf("failed load dirtied the buffer")
	}
}

func TestSaveBufferClearsModified(t *testing.T) {
	e := newTestEditor(t, "data")
	path := filepath.Join(t.TempDir(), "save.txt")

	if err := e.SaveBuffer(path); err != nil {
		t.Fatalf("SaveBuffer: %v", err)
	}
	if e.GetBuffer().IsModified() {
		t.Fatalf("buffer still modified after save")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "data" {
		t.Fatalf("expected saved content data, got %q", string(data))
	}
}

func TestYankLineAndPaste(t *testing.T) {
	e := newTestEditor(t, "ab\ncd")
	e.GetClipboardManager().SetUseSystem(false)

	copied, err := e.YankLine()
	if err != nil || !copied {
		t.Fatalf("YankLine: copied=%v err=%v", copied, err)
	}

	e.SetCursor(types.Position{Line: 1, Col: 0})
	pasted, err := e.Paste()
	if err != nil || !pasted {
		t.Fatalf("Paste: pasted=%v err=%v", pasted, err)
	}
	if got := bufferText(e); got != "ab\nab\ncd" {
		t.Fatalf("expected yanked line inserted, got %q", got)
	}

	if !e.Undo() {
		t.Fatalf("undo failed")
	}
	if got := bufferText(e); got != "ab\ncd" {
		t.Fatalf("paste should be one history operation, got %q", got)
	}
}

func TestPasteEmptyClipboardDoesNothing(t *testing.T) {
	e := newCleanEditor(t, "ab")
	e.GetClipboardManager().SetUseSystem(false)

	pasted, err := e.Paste()
	if err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if pasted {
		t.Fatalf("expected no paste from empty clipboard")
	}
	if e.GetHistoryManager().CanUndo() {
		t.Fatalf("empty paste pushed to history")
	}
}
