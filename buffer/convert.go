package buffer

import "unicode/utf8"

// OffsetClampMode selects how conversions treat out-of-range input.
type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromByteOffset maps a UTF-8 byte offset in Text() to a character
// position. Offsets inside a character are always rejected.
func (b *Buffer) PosFromByteOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, len(b.Text()), mode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off, func(c string) int { return len(c) })
}

// ByteOffsetFromPos maps a character position to a UTF-8 byte offset.
func (b *Buffer) ByteOffsetFromPos(p Pos, mode OffsetClampMode) (int, bool) {
	p, ok := b.normalizePosForMode(p, mode)
	if !ok {
		return 0, false
	}
	off := 0
	for _, c := range b.chars[:p.Offset] {
		off += len(c)
	}
	return off, true
}

// PosFromRuneOffset maps a rune offset in Text() to a character position.
// Offsets inside a multi-rune character are always rejected.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, utf8.RuneCountInString(b.Text()), mode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off, utf8.RuneCountInString)
}

// RuneOffsetFromPos maps a character position to a rune offset.
func (b *Buffer) RuneOffsetFromPos(p Pos, mode OffsetClampMode) (int, bool) {
	p, ok := b.normalizePosForMode(p, mode)
	if !ok {
		return 0, false
	}
	off := 0
	for _, c := range b.chars[:p.Offset] {
		off += utf8.RuneCountInString(c)
	}
	return off, true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(p Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		if !b.Extent().Contains(p.Offset) {
			return Pos{}, false
		}
		return p, true
	case OffsetClamp:
		return At(clampInt(p.Offset, 0, len(b.chars))), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) offsetToPos(off int, width func(cluster string) int) (Pos, bool) {
	cur := 0
	if off == cur {
		return At(0), true
	}
	for i, c := range b.chars {
		cur += width(c)
		if off == cur {
			return At(i + 1), true
		}
		if off < cur {
			return Pos{}, false
		}
	}
	return Pos{}, false
}
