// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/TheItcor/rawIDE/internal/types"
)

// SliceBuffer stores the document as a slice of byte lines.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool
}

// NewSliceBuffer creates an empty SliceBuffer holding one empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]byte{[]byte("")},
	}
}

// Load reads a file into the buffer, replacing existing content. On any read
// error the buffer is left exactly as it was. A trailing final newline is a
// line terminator, not an extra empty line; a lone \r before it is dropped.
func (sb *SliceBuffer) Load(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	newLines := [][]byte{}
	for scanner.Scan() {
		line := scanner.Bytes()
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}

	sb.lines = newLines
	sb.filePath = filePath
	sb.modified = false
	return nil
}

// Lines returns the underlying line slice.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

// LineCount returns the number of lines.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the line at index.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes serializes the content, lines joined with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	var buffer bytes.Buffer
	for i, line := range sb.lines {
		buffer.Write(line)
		if i < len(sb.lines)-1 {
			buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

// Save writes the buffer content. An explicit filePath overrides (and then
// replaces) the stored one. The parent directory is created if missing.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return ErrNoFilePath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path '%s': %w", path, err)
	}
	if dir := filepath.Dir(absPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", dir, err)
		}
	}

	if err := os.WriteFile(path, sb.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// FilePath returns the associated file path, empty if none.
func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// Snapshot returns a deep copy of the content. Mutations via Insert/Delete
// may share backing arrays with previously returned Lines() slices, so the
// copy here is what makes history snapshots immutable.
func (sb *SliceBuffer) Snapshot() [][]byte {
	return copyLines(sb.lines)
}

// Restore replaces the content with a deep copy of lines and marks the
// buffer modified (a restored state is presumed to differ from the saved
// one).
func (sb *SliceBuffer) Restore(lines [][]byte) {
	if len(lines) == 0 {
		lines = [][]byte{[]byte("")}
	}
	sb.lines = copyLines(lines)
	sb.modified = true
}

func copyLines(lines [][]byte) [][]byte {
	out := make([][]byte, len(lines))
	for i, line := range lines {
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		out[i] = lineCopy
	}
	return out
}

// --- Modification methods ---

// runeOffset converts a rune column on a line to a byte offset, clamping to
// the line's rune length.
func runeOffset(line []byte, col int) (validCol int, byteOffset int) {
	byteOff := 0
	runeCount := 0
	for byteOff < len(line) && runeCount < col {
		_, size := utf8.DecodeRune(line[byteOff:])
		byteOff += size
		runeCount++
	}
	return runeCount, byteOff
}

// validatePosition clamps pos to the buffer bounds and returns the byte
// offset of the column within its line.
func (sb *SliceBuffer) validatePosition(pos types.Position) (validPos types.Position, byteOffset int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	col, off := runeOffset(sb.lines[pos.Line], pos.Col)
	return types.Position{Line: pos.Line, Col: col}, off
}

// Insert places text at pos. Embedded '\n' bytes split the line; the tail of
// the original line ends up after the last inserted segment. Returns the
// position just past the inserted text.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.Position, error) {
	validPos, byteOffset := sb.validatePosition(pos)
	if len(text) == 0 {
		return validPos, nil
	}

	sb.modified = true

	currentLine := sb.lines[validPos.Line]
	insertLines := bytes.Split(text, []byte("\n"))

	tail := make([]byte, len(currentLine[byteOffset:]))
	copy(tail, currentLine[byteOffset:])

	sb.lines[validPos.Line] = append(currentLine[:byteOffset], insertLines[0]...)

	if len(insertLines) == 1 {
		sb.lines[validPos.Line] = append(sb.lines[validPos.Line], tail...)
		return types.Position{
			Line: validPos.Line,
			Col:  validPos.Col + utf8.RuneCount(insertLines[0]),
		}, nil
	}

	newLines := make([][]byte, len(insertLines)-1)
	for i := 1; i < len(insertLines); i++ {
		lineCopy := make([]byte, len(insertLines[i]))
		copy(lineCopy, insertLines[i])
		newLines[i-1] = lineCopy
	}
	lastSegRunes := utf8.RuneCount(newLines[len(newLines)-1])
	newLines[len(newLines)-1] = append(newLines[len(newLines)-1], tail...)

	rest := make([][]byte, len(sb.lines[validPos.Line+1:]))
	copy(rest, sb.lines[validPos.Line+1:])
	sb.lines = append(sb.lines[:validPos.Line+1], append(newLines, rest...)...)

	return types.Position{
		Line: validPos.Line + len(newLines),
		Col:  lastSegRunes,
	}, nil
}

// Delete removes the range [start, end). A range spanning lines merges the
// remainder of the end line onto the start line.
func (sb *SliceBuffer) Delete(start, end types.Position) error {
	if end.Before(start) {
		start, end = end, start
	}

	vStart, startOffset := sb.validatePosition(start)
	vEnd, endOffset := sb.validatePosition(end)
	if vStart == vEnd {
		return nil
	}

	sb.modified = true
	startLineBytes := sb.lines[vStart.Line]

	if vStart.Line == vEnd.Line {
		sb.lines[vStart.Line] = append(startLineBytes[:startOffset], startLineBytes[endOffset:]...)
		return nil
	}

	endPart := sb.lines[vEnd.Line][endOffset:]
	sb.lines[vStart.Line] = append(startLineBytes[:startOffset], endPart...)

	if vEnd.Line+1 >= len(sb.lines) {
		sb.lines = sb.lines[:vStart.Line+1]
	} else {
		sb.lines = append(sb.lines[:vStart.Line+1], sb.lines[vEnd.Line+1:]...)
	}

	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}
	return nil
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
