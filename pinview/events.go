package pinview

import "github.com/iw2rmb/pinfield/buffer"

// ChangeEvent is delivered to Config.OnChange after every edit that changed
// the value.
type ChangeEvent struct {
	Version   uint64
	Value     string
	Selection buffer.Range
	Full      bool

	// Rejected holds characters dropped by the charset or cut at capacity
	// during the same edit.
	Rejected string
}

func buildChangeEvent(b *buffer.Buffer, sel buffer.Range) ChangeEvent {
	ev := ChangeEvent{
		Version:   b.Version(),
		Value:     b.Text(),
		Selection: sel,
		Full:      b.IsFull(),
	}
	if ch, ok := b.LastChange(); ok && ch.VersionAfter == b.Version() {
		ev.Rejected = ch.Rejected + ch.Truncated
	}
	return ev
}

// CompleteMsg is emitted when an edit fills every slot.
type CompleteMsg struct {
	ID    int
	Value string
}

// SubmitMsg is emitted on the Submit binding.
type SubmitMsg struct {
	ID    int
	Value string
	Full  bool
}
