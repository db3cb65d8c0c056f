package buffer

// Dir is a layout direction in a single-row field.
type Dir int

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
)

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveDoc
)

type Move struct {
	Unit MoveUnit
	Dir  Dir // MoveDoc: DirLeft/DirUp = start, DirRight/DirDown = end
}

// MoveCaret returns the caret reached by applying m to r.
//
// A non-empty range collapses to its lower (left) or upper (right) bound
// before moving, so the first arrow press only drops the selection.
func (b *Buffer) MoveCaret(r Range, m Move) Range {
	n := len(b.chars)

	switch m.Unit {
	case MoveDoc:
		switch m.Dir {
		case DirLeft, DirUp:
			return Caret(b.Start())
		default:
			return Caret(b.End())
		}
	case MoveChar:
		lo, hi := r.SliceBounds(n)
		switch m.Dir {
		case DirLeft:
			if !r.IsEmpty() {
				return Caret(At(lo))
			}
			return Caret(At(clampInt(lo-1, 0, n)))
		case DirRight:
			if !r.IsEmpty() {
				return Caret(At(hi))
			}
			return Caret(At(clampInt(hi+1, 0, n)))
		case DirUp:
			return Caret(b.Start())
		case DirDown:
			return Caret(b.End())
		}
	}
	lo, _ := r.SliceBounds(n)
	return Caret(At(lo))
}

// PosFromOffset returns p moved by offset when the result lies within the
// extent.
func (b *Buffer) PosFromOffset(p Pos, offset int) (Pos, bool) {
	next := p.Add(offset)
	if !b.Extent().Contains(next.Offset) {
		return Pos{}, false
	}
	return next, true
}

// PosInDirection resolves a directional move from p.
//
// Left and right move by offset characters. In a single-row field up and
// down jump to a document boundary: up with a positive offset goes to the
// start, down with a positive offset goes to the end, and a non-positive
// offset inverts the jump.
func (b *Buffer) PosInDirection(p Pos, dir Dir, offset int) (Pos, bool) {
	switch dir {
	case DirRight:
		return b.PosFromOffset(p, offset)
	case DirLeft:
		return b.PosFromOffset(p, -offset)
	case DirUp:
		if offset > 0 {
			return b.Start(), true
		}
		return b.End(), true
	case DirDown:
		if offset > 0 {
			return b.End(), true
		}
		return b.Start(), true
	default:
		return Pos{}, false
	}
}

// OffsetBetween returns the signed character distance from one position to
// another.
func (b *Buffer) OffsetBetween(from, to Pos) int {
	return to.Offset - from.Offset
}

// FarthestIn returns the endpoint of r lying farthest in dir.
func (b *Buffer) FarthestIn(r Range, dir Dir) (Pos, bool) {
	switch dir {
	case DirLeft, DirUp:
		return r.Start, true
	case DirRight, DirDown:
		return r.End, true
	default:
		return Pos{}, false
	}
}

// RangeByExtending grows a range from p to the document boundary in dir.
// Vertical directions have no extent in a single-row field.
func (b *Buffer) RangeByExtending(p Pos, dir Dir) (Range, bool) {
	switch dir {
	case DirRight:
		return b.MakeRange(p, b.End())
	case DirLeft:
		return b.MakeRange(b.Start(), p)
	default:
		return Range{}, false
	}
}

// CharacterRangeAt returns the one-character range starting at index.
func (b *Buffer) CharacterRangeAt(index int) (Range, bool) {
	start := At(index)
	if !b.Extent().Contains(start.Offset) {
		return Range{}, false
	}
	end, ok := b.PosFromOffset(start, 1)
	if !ok {
		return Range{}, false
	}
	return b.MakeRange(start, end)
}
