package buffer

import (
	"fmt"

	"github.com/iw2rmb/pinfield/internal/grapheme"
)

// Pos points into the value by character offset. Offset is 0-based.
//
// Negative offsets are representable so bounds checks can reject them; no
// buffer method ever produces one.
type Pos struct {
	Offset int
}

// At returns the position at offset.
func At(offset int) Pos { return Pos{Offset: offset} }

// Add returns p moved by delta characters.
func (p Pos) Add(delta int) Pos { return Pos{Offset: p.Offset + delta} }

// Compare orders p against other by offset: -1, 0 or 1.
func (p Pos) Compare(other Pos) int { return ComparePos(p, other) }

func ComparePos(a, b Pos) int {
	if a.Offset < b.Offset {
		return -1
	}
	if a.Offset > b.Offset {
		return 1
	}
	return 0
}

// Range is a span between two positions. Start and End may be given in either
// order; containment and slicing always use the normalized bounds.
//
// An empty range is a caret.
type Range struct {
	Start Pos
	End   Pos
}

func NewRange(start, end Pos) Range {
	return Range{Start: start, End: end}
}

// Caret returns the zero-length range at p.
func Caret(p Pos) Range {
	return Range{Start: p, End: p}
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start.Offset == r.End.Offset
}

// Lower returns min(Start, End).
func (r Range) Lower() int {
	return minInt(r.Start.Offset, r.End.Offset)
}

// Upper returns max(Start, End).
func (r Range) Upper() int {
	return maxInt(r.Start.Offset, r.End.Offset)
}

func (r Range) Len() int {
	return r.Upper() - r.Lower()
}

// Contains reports whether Lower <= index <= Upper. Both ends are inclusive,
// so a caret contains its own offset.
func (r Range) Contains(index int) bool {
	return index >= r.Lower() && index <= r.Upper()
}

// SliceBounds returns the normalized bounds clamped into [0, n], where n is
// the character length of the value being sliced.
func (r Range) SliceBounds(n int) (lo, hi int) {
	if n < 0 {
		n = 0
	}
	return clampInt(r.Lower(), 0, n), clampInt(r.Upper(), 0, n)
}

// Slice returns the characters of s covered by r, clamped to s.
func (r Range) Slice(s string) string {
	lo, hi := r.SliceBounds(grapheme.Count(s))
	return grapheme.Slice(s, lo, hi)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start.Offset, r.End.Offset)
}

// RangeFromOffset returns the span covering up to maxOffset characters from
// from. A negative maxOffset extends to the left. The result is clamped into
// [0, length] and always has Start <= End.
func RangeFromOffset(from Pos, maxOffset, length int) Range {
	if length < 0 {
		length = 0
	}
	anchor := clampInt(from.Offset, 0, length)
	if maxOffset >= 0 {
		return Range{Start: At(anchor), End: At(minInt(length, anchor+maxOffset))}
	}
	return Range{Start: At(maxInt(0, anchor+maxOffset)), End: At(anchor)}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
