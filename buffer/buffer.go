package buffer

import "github.com/iw2rmb/pinfield/internal/grapheme"

type Options struct {
	Allowed Charset // default: Alphanumeric
	Text    string  // initial value, sanitized like an insert
}

// Buffer is a fixed-capacity character sequence with sanitized editing.
//
// Invariant: 0 <= Len() <= Cap() after every mutation.
type Buffer struct {
	chars    []string
	capacity int
	allowed  Charset
	version  uint64

	lastChange    Change
	hasLastChange bool
}

// New returns an empty buffer holding at most capacity characters.
// A negative capacity is treated as 0.
func New(capacity int, opt Options) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	if opt.Allowed == nil {
		opt.Allowed = Alphanumeric
	}
	b := &Buffer{
		capacity: capacity,
		allowed:  opt.Allowed,
	}
	if opt.Text != "" {
		kept, _ := b.sanitize(opt.Text)
		b.chars = grapheme.Split(grapheme.Join(kept))
		if len(b.chars) > b.capacity {
			b.chars = b.chars[:b.capacity]
		}
	}
	return b
}

func (b *Buffer) Cap() int { return b.capacity }

func (b *Buffer) Len() int { return len(b.chars) }

// Text returns the current value.
func (b *Buffer) Text() string { return grapheme.Join(b.chars) }

// Version increases by one on every effective mutation.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Allowed() Charset { return b.allowed }

func (b *Buffer) Start() Pos { return At(0) }

func (b *Buffer) End() Pos { return At(len(b.chars)) }

// Extent covers the whole value.
func (b *Buffer) Extent() Range { return Range{Start: b.Start(), End: b.End()} }

// EndCaretRange is the caret after the last character. Controllers re-seat
// their selection here when they gain focus.
func (b *Buffer) EndCaretRange() Range { return Caret(b.End()) }

func (b *Buffer) IsFull() bool { return len(b.chars) >= b.capacity }

func (b *Buffer) IsEmpty() bool { return len(b.chars) == 0 }

// CharAt returns the character at index i.
func (b *Buffer) CharAt(i int) (string, bool) {
	if i < 0 || i >= len(b.chars) {
		return "", false
	}
	return b.chars[i], true
}

func (b *Buffer) sanitize(text string) (kept, rejected []string) {
	return grapheme.Filter(text, b.allowed.Accepts)
}
