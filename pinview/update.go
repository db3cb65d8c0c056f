package pinview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/pinfield/buffer"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case pasteMsg:
		if msg.id != m.id {
			return m, nil
		}
		if msg.err != nil {
			m.cfg.Logger.Debug("clipboard read failed", "err", msg.err)
			return m, nil
		}
		if !m.focused || m.state == ViewDisabled {
			return m, nil
		}
		cmd := m.insertText(msg.text)
		return m, cmd
	case revealExpiredMsg:
		m.expireReveal(msg)
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.state == ViewDisabled {
		return m, nil
	}

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		cmd := m.insertText(string(msg.Runes))
		return m, cmd
	}

	km := m.cfg.KeyMap
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, km.Left):
		m.sel = m.buf.MoveCaret(m.sel, buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.sel = m.buf.MoveCaret(m.sel, buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		m.sel = m.buf.MoveCaret(m.sel, buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirLeft})
	case key.Matches(msg, km.End):
		m.sel = m.buf.MoveCaret(m.sel, buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirRight})

	case key.Matches(msg, km.Backspace):
		cmd = m.deleteBackward()
	case key.Matches(msg, km.Delete):
		cmd = m.deleteForward()
	case key.Matches(msg, km.Clear):
		cmd = m.deleteRange(m.buf.Extent())

	case key.Matches(msg, km.Paste):
		cmd = m.Paste()
	case key.Matches(msg, km.Submit):
		cmd = m.submit()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			cmd = m.insertText(string(msg.Runes))
		}
	}

	return m, cmd
}

func (m *Model) insertText(s string) tea.Cmd {
	before := m.buf.Version()
	m.sel = m.buf.Insert(s, buffer.NormalizeRange(m.sel))
	m.logDropped(before)
	if m.buf.Version() == before {
		return nil
	}

	var reveal tea.Cmd
	if ch, ok := m.buf.CharAt(m.sel.Start.Offset - 1); ok {
		reveal = m.scheduleReveal(m.sel.Start.Offset-1, ch)
	} else {
		m.cancelReveal()
	}
	return tea.Batch(reveal, m.notifyChange())
}

// deleteBackward removes the selection, or for a caret the character before
// it (MoveToPreviousOnDelete) or under it.
func (m *Model) deleteBackward() tea.Cmd {
	r := buffer.NormalizeRange(m.sel)
	if r.IsEmpty() {
		at := r.Start.Offset
		var ok bool
		if !m.cfg.MoveToPreviousOnDelete {
			r, ok = m.buf.CharacterRangeAt(at)
		}
		if !ok {
			if r, ok = m.buf.CharacterRangeAt(at - 1); !ok {
				return nil
			}
		}
	}
	return m.deleteRange(r)
}

func (m *Model) deleteForward() tea.Cmd {
	r := buffer.NormalizeRange(m.sel)
	if r.IsEmpty() {
		var ok bool
		if r, ok = m.buf.CharacterRangeAt(r.Start.Offset); !ok {
			return nil
		}
	}
	return m.deleteRange(r)
}

func (m *Model) deleteRange(r buffer.Range) tea.Cmd {
	before := m.buf.Version()
	m.sel = m.buf.Delete(buffer.NormalizeRange(r))
	if m.buf.Version() == before {
		return nil
	}
	m.cancelReveal()
	return m.notifyChange()
}

func (m *Model) submit() tea.Cmd {
	ev := SubmitMsg{ID: m.id, Value: m.buf.Text(), Full: m.buf.IsFull()}
	if m.cfg.BlurOnSubmit {
		*m = m.Blur()
	}
	return func() tea.Msg { return ev }
}

// notifyChange runs the host callbacks for an edit that changed the value.
// A full buffer also fires OnComplete, emits CompleteMsg and, with
// BlurOnComplete, gives up focus.
func (m *Model) notifyChange() tea.Cmd {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, m.sel))
	}
	if !m.buf.IsFull() {
		return nil
	}

	value := m.buf.Text()
	m.cfg.Logger.Debug("pin complete", "id", m.id, "length", m.buf.Len())
	if m.cfg.OnComplete != nil {
		m.cfg.OnComplete(value)
	}
	if m.cfg.BlurOnComplete {
		*m = m.Blur()
	}
	id := m.id
	return func() tea.Msg { return CompleteMsg{ID: id, Value: value} }
}

func (m *Model) logDropped(before uint64) {
	ch, ok := m.buf.LastChange()
	if !ok || ch.VersionBefore != before {
		return
	}
	if ch.Rejected == "" && ch.Truncated == "" {
		return
	}
	m.cfg.Logger.Debug("input dropped",
		"id", m.id,
		"rejected", len([]rune(ch.Rejected)),
		"truncated", len([]rune(ch.Truncated)),
	)
}
