// Package buffer provides the owned character sequence the spell engine
// edits. Offsets are rune offsets, and every range handed to the buffer is
// an inclusive [start, end] span.
package buffer

import "fmt"

// Buffer is the pure document state: a growable rune sequence.
type Buffer struct {
	runes []rune
}

func New(text string) *Buffer {
	return &Buffer{runes: []rune(text)}
}

func (b *Buffer) Text() string { return string(b.runes) }

// Len returns the length of the buffer in runes.
func (b *Buffer) Len() int { return len(b.runes) }

// Runes returns the underlying rune slice. Callers must not mutate it and
// must not hold it across a Splice.
func (b *Buffer) Runes() []rune { return b.runes }

// Slice returns the text of the inclusive range [start, end].
func (b *Buffer) Slice(start, end int) string {
	b.mustRange(start, end)
	return string(b.runes[start : end+1])
}

// Splice replaces the inclusive range [start, end] with text and returns
// the signed length delta in runes. Content before start and after end is
// untouched.
func (b *Buffer) Splice(start, end int, text string) int {
	b.mustRange(start, end)
	ins := []rune(text)
	removed := end - start + 1

	out := make([]rune, 0, len(b.runes)-removed+len(ins))
	out = append(out, b.runes[:start]...)
	out = append(out, ins...)
	out = append(out, b.runes[end+1:]...)
	b.runes = out

	return len(ins) - removed
}

func (b *Buffer) mustRange(start, end int) {
	if start < 0 || end < start || end >= len(b.runes) {
		panic(fmt.Sprintf("buffer: range [%d, %d] out of bounds (len %d)", start, end, len(b.runes)))
	}
}
