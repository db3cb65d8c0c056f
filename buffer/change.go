package buffer

// Change describes the outcome of the most recent edit that either changed
// the value or dropped input.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64

	// Range is the requested range, as passed by the caller.
	Range Range
	Caret Range

	Inserted  string // accepted characters placed into the value
	Deleted   string // characters removed from the value
	Rejected  string // characters dropped by the charset
	Truncated string // characters cut off at capacity
}

// Changed reports whether the value changed.
func (c Change) Changed() bool { return c.VersionAfter != c.VersionBefore }

// LastChange returns the most recent recorded change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(r Range) Change {
	return Change{
		VersionBefore: b.version,
		Range:         r,
	}
}

func (b *Buffer) commitChange(c Change) {
	c.VersionAfter = b.version
	if !c.Changed() && c.Rejected == "" && c.Truncated == "" {
		return
	}
	b.lastChange = c
	b.hasLastChange = true
}
