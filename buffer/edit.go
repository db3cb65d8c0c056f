package buffer

import "github.com/iw2rmb/pinfield/internal/grapheme"

// Insert replaces the characters in at with the allowed characters of text.
//
// Disallowed characters are dropped and anything past Cap() is truncated,
// even when inserting mid-value. The returned caret sits at
// min(at.Start + accepted, Cap()), where accepted counts the characters that
// passed the charset.
func (b *Buffer) Insert(text string, at Range) Range {
	kept, rejected := b.sanitize(text)

	change := b.beginChange(at)
	change.Rejected = grapheme.Join(rejected)

	merged := b.replaceRange(at, kept, &change)

	next := clampInt(at.Start.Offset+len(kept)-merged, 0, b.capacity)
	caret := Caret(At(next))
	change.Caret = caret
	b.commitChange(change)
	return caret
}

// Delete removes the characters in r and returns a caret at r.Start as given.
func (b *Buffer) Delete(r Range) Range {
	change := b.beginChange(r)
	b.replaceRange(r, nil, &change)

	caret := Caret(r.Start)
	change.Caret = caret
	b.commitChange(change)
	return caret
}

// SetText replaces the whole value, applying the same sanitizing and
// truncation as Insert.
func (b *Buffer) SetText(s string) Range {
	return b.Insert(s, b.Extent())
}

// Clear empties the value.
func (b *Buffer) Clear() Range {
	return b.Delete(b.Extent())
}

// TextIn returns the characters in r. A caret has no text.
func (b *Buffer) TextIn(r Range) (string, bool) {
	if r.IsEmpty() {
		return "", false
	}
	lo, hi := r.SliceBounds(len(b.chars))
	return grapheme.Join(b.chars[lo:hi]), true
}

// MakeRange builds a range when both positions lie within [0, Len()].
func (b *Buffer) MakeRange(from, to Pos) (Range, bool) {
	ext := b.Extent()
	if !ext.Contains(from.Offset) || !ext.Contains(to.Offset) {
		return Range{}, false
	}
	return Range{Start: from, End: to}, true
}

// replaceRange splices ins into r and re-segments the result, so a combining
// mark typed after its base joins the preceding character. It returns how
// many characters the re-segmentation merged away.
func (b *Buffer) replaceRange(r Range, ins []string, change *Change) int {
	lo, hi := r.SliceBounds(len(b.chars))
	deleted := b.chars[lo:hi]
	if len(deleted) == 0 && len(ins) == 0 {
		return 0
	}

	spliced := make([]string, 0, lo+len(ins)+len(b.chars)-hi)
	spliced = append(spliced, b.chars[:lo]...)
	spliced = append(spliced, ins...)
	spliced = append(spliced, b.chars[hi:]...)

	out := grapheme.Split(grapheme.Join(spliced))
	merged := len(spliced) - len(out)

	if len(out) > b.capacity {
		change.Truncated = grapheme.Join(out[b.capacity:])
		out = out[:b.capacity]
	}

	change.Deleted = grapheme.Join(deleted)
	change.Inserted = grapheme.Join(ins)

	before := grapheme.Join(b.chars)
	b.chars = out
	if grapheme.Join(out) != before {
		b.version++
	}
	return merged
}
