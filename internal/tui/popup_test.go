// internal/tui/popup_test.go
package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestShowPopupDrawsWindowAndDismisses(t *testing.T) {
	tui, sim := newSimTUI(t, 40, 12)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ShowPopup(tui, "hello popup")

	corner, _, _, _ := sim.GetContent(1, 1)
	if corner != tcell.RuneULCorner {
		t.Fatalf("expected window corner at (1,1), got %q", corner)
	}
	if got := simRow(t, sim, 2, 40); !strings.Contains(got, "hello popup") {
		t.Fatalf("expected content row, got %q", got)
	}
	if got := simRow(t, sim, 9, 40); !strings.Contains(got, "Press any key to continue...") {
		t.Fatalf("expected footer row, got %q", got)
	}
}

func TestShowPopupNormalizesTabsAndCRLF(t *testing.T) {
	tui, sim := newSimTUI(t, 40, 12)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ShowPopup(tui, "a\r\nb\tc\n")

	if got := simRow(t, sim, 2, 40); !strings.Contains(got, "a") {
		t.Fatalf("expected first line, got %q", got)
	}
	if got := simRow(t, sim, 3, 40); !strings.Contains(got, "b    c") {
		t.Fatalf("expected expanded tab, got %q", got)
	}
}

func TestShowPopupScrollsLongContent(t *testing.T) {
	tui, sim := newSimTUI(t, 40, 12)
	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, fmt.Sprintf("l%02d", i))
	}
	ShowPopup(tui, strings.Join(lines, "\n"))

	// Final frame was drawn after one arrow-down.
	if got := simRow(t, sim, 2, 40); !strings.Contains(got, "l01") {
		t.Fatalf("expected scrolled content, got %q", got)
	}
}

func TestShowPopupClampsScrollPastEnd(t *testing.T) {
	tui, sim := newSimTUI(t, 40, 12)
	sim.InjectKey(tcell.KeyPgDn, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyPgDn, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("l%02d", i))
	}
	ShowPopup(tui, strings.Join(lines, "\n"))

	// Seven content rows over ten lines leaves a maximum offset of three.
	if got := simRow(t, sim, 2, 40); !strings.Contains(got, "l03") {
		t.Fatalf("expected clamped scroll, got %q", got)
	}
}

func TestShowPopupTinyScreenStillDismisses(t *testing.T) {
	tui, sim := newSimTUI(t, 3, 4)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ShowPopup(tui, "text")
}
