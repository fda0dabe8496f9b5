// internal/input/action.go
package input

// Action represents an operation requested by a key event. Actions are
// mode-agnostic: the mode handler decides what each one means, or whether it
// is ignored, in the current input mode.
type Action int

// Define the set of possible editor actions.
const (
	ActionUnknown Action = iota // Default/invalid action

	// --- Global Chords ---
	ActionEscape // Force navigation mode
	ActionUndo
	ActionRedo

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Text Manipulation ---
	ActionInsertRune    // Requires Rune argument
	ActionInsertNewLine // Enter
	ActionInsertTab     // Tab, expanded to spaces
	ActionDeleteBackward

	// --- Clipboard ---
	ActionYankLine
	ActionPaste
)

// ActionEvent represents a decoded input event resulting in an action.
// Rune carries the character for ActionInsertRune.
type ActionEvent struct {
	Action Action
	Rune   rune
}
