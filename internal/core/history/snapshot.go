package history

import (
	"github.com/TheItcor/rawIDE/internal/types"
)

// Snapshot is an immutable capture of buffer content plus cursor position.
// The manager owns every snapshot in its stacks; the lines are deep copies
// taken by the buffer, never shared with live content.
type Snapshot struct {
	Lines  [][]byte
	Cursor types.Position
}
