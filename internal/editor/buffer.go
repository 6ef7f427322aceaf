package editor

import (
	"strings"

	"github.com/google/uuid"
)

// BufferID identifies an open buffer. IDs are never reused, so a
// BufferID held after its buffer closes is a safe lookup key that
// simply resolves to nothing.
type BufferID string

// Buffer is an open document, independent of which windows display it.
type Buffer struct {
	id    BufferID
	name  string
	path  string
	lines []string
}

// newBuffer creates a buffer with the given display name and content.
func newBuffer(name, path, content string) *Buffer {
	lines := strings.Split(content, "\n")
	return &Buffer{
		id:    BufferID(uuid.New().String()),
		name:  name,
		path:  path,
		lines: lines,
	}
}

// ID returns the buffer's identity.
func (b *Buffer) ID() BufferID { return b.id }

// Name returns the buffer's display name.
func (b *Buffer) Name() string { return b.name }

// Path returns the file path backing the buffer, empty for scratch buffers.
func (b *Buffer) Path() string { return b.path }

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the content of line i, or the empty string if out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// ClampPoint returns p adjusted to lie within the buffer's content.
func (b *Buffer) ClampPoint(p Point) Point {
	if len(b.lines) == 0 {
		return Point{}
	}
	if p.Line >= uint32(len(b.lines)) {
		p.Line = uint32(len(b.lines) - 1)
	}
	if line := b.lines[p.Line]; p.Column > uint32(len(line)) {
		p.Column = uint32(len(line))
	}
	return p
}
