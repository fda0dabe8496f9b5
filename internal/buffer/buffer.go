// internal/buffer/buffer.go
package buffer

import (
	"errors"

	"github.com/TheItcor/rawIDE/internal/types"
)

// ErrNoFilePath is returned by Save when the buffer has no associated file
// path and none was supplied.
var ErrNoFilePath = errors.New("no file path specified for saving")

// Buffer defines the interface for text buffer operations. Content is an
// ordered sequence of lines; the buffer also tracks the associated file path
// and whether unsaved changes exist. It never holds fewer than one line.
type Buffer interface {
	Load(filePath string) error
	Save(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	// Insert places text at pos and returns the position just past the
	// inserted text. Text may contain line breaks, which split lines.
	Insert(pos types.Position, text []byte) (types.Position, error)
	// Delete removes the range [start, end). A range spanning a line
	// boundary merges the surrounding lines.
	Delete(start, end types.Position) error
	Bytes() []byte
	FilePath() string
	IsModified() bool
	// Snapshot returns a deep copy of the content for history capture.
	Snapshot() [][]byte
	// Restore replaces the content with a deep copy of lines and marks the
	// buffer modified.
	Restore(lines [][]byte)
}
