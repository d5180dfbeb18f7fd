// Package history provides the console's bounded scrollback buffer.
package history

import (
	"fmt"
	"iter"

	"github.com/conn-castle/console/internal/messages"
)

// Buffer is a fixed-capacity ring of lines. Appending to a full buffer evicts the
// oldest line. Buffer is not safe for concurrent use.
type Buffer struct {
	lines []string
	head  int
	size  int
}

// New returns an empty Buffer holding at most capacity lines.
func New(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf(messages.HistoryCapacityFmt, capacity)
	}
	return &Buffer{lines: make([]string, capacity)}, nil
}

// Append adds line, dropping the oldest line when the buffer is full.
func (b *Buffer) Append(line string) {
	if b.size == len(b.lines) {
		b.lines[b.head] = line
		b.head = (b.head + 1) % len(b.lines)
		return
	}
	b.lines[(b.head+b.size)%len(b.lines)] = line
	b.size++
}

// Clear removes every line; capacity is unchanged.
func (b *Buffer) Clear() {
	clear(b.lines)
	b.head = 0
	b.size = 0
}

// All yields the stored lines oldest first.
func (b *Buffer) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(b.lines[(b.head+i)%len(b.lines)]) {
				return
			}
		}
	}
}

// Entries returns a snapshot of the stored lines oldest first.
func (b *Buffer) Entries() []string {
	out := make([]string, 0, b.size)
	for line := range b.All() {
		out = append(out, line)
	}
	return out
}
