// internal/tui/prompt_test.go
package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestReadLineSubmitsOnEnter(t *testing.T) {
	tui, sim := newSimTUI(t, 40, 12)
	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)

	line, ok := NewPrompt(tui).ReadLine(":")
	if !ok || line != "hi" {
		t.Fatalf("expected (hi, true), got (%q, %v)", line, ok)
	}
}

func TestReadLineCancelsOnEscape(t *testing.T) {
	tui, sim := newSimTUI(t, 40, 12)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	line, ok := NewPrompt(tui).ReadLine(":")
	if ok || line != "" {
		t.Fatalf("expected cancelled read, got (%q, %v)", line, ok)
	}
}

func TestReadLineCancelsOnCtrlC(t *testing.T) {
	tui, sim := newSimTUI(t, 40, 12)
	sim.InjectKey(tcell.KeyCtrlC, rune(tcell.KeyCtrlC), tcell.ModCtrl)

	_, ok := NewPrompt(tui).ReadLine(":")
	if ok {
		t.Fatalf("expected cancelled read")
	}
}

func TestReadLineBackspaceRemovesLastRune(t *testing.T) {
	tui, sim := newSimTUI(t, 40, 12)
	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)

	line, ok := NewPrompt(tui).ReadLine(":")
	if !ok || line != "hi" {
		t.Fatalf("expected (hi, true), got (%q, %v)", line, ok)
	}
}

func TestReadLineEchoesOnBottomRow(t *testing.T) {
	tui, sim := newSimTUI(t, 40, 12)
	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)

	if _, ok := NewPrompt(tui).ReadLine(":"); !ok {
		t.Fatalf("expected submitted read")
	}
	if got := simRow(t, sim, 11, 40); got != ":ab" {
		t.Fatalf("expected prompt echo %q, got %q", ":ab", got)
	}
}
