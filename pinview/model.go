package pinview

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/pinfield/buffer"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model is a Bubble Tea component for fixed-length code entry.
//
// The zero value is not usable; construct with New.
type Model struct {
	id  int
	cfg Config
	buf *buffer.Buffer

	sel     buffer.Range
	focused bool
	state   ViewState

	reveal revealState
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		id:  nextID(),
		cfg: cfg,
		buf: buffer.New(cfg.Length, buffer.Options{Allowed: cfg.Charset, Text: cfg.Value}),
	}
	m.sel = m.buf.EndCaretRange()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// ID identifies this model's asynchronous messages.
func (m Model) ID() int { return m.id }

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Config() Config { return m.cfg }

func (m Model) Value() string { return m.buf.Text() }

// SetValue replaces the value, sanitized and truncated, and moves the caret
// to the end. Host callbacks are not invoked.
func (m Model) SetValue(s string) Model {
	m.buf.SetText(s)
	m.sel = m.buf.EndCaretRange()
	m.cancelReveal()
	return m
}

// Reset clears the value. Host callbacks are not invoked.
func (m Model) Reset() Model {
	return m.SetValue("")
}

func (m Model) Selection() buffer.Range { return m.sel }

// SetSelection sets the selection when both ends lie within the extent.
func (m Model) SetSelection(r buffer.Range) (Model, bool) {
	nr, ok := m.buf.MakeRange(r.Start, r.End)
	if !ok {
		return m, false
	}
	m.sel = nr
	return m, true
}

// SetConfig applies cfg, rebuilding the buffer for the new length and charset
// while keeping as much of the current value as still fits.
func (m Model) SetConfig(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	value := m.buf.Text()
	m.cfg = cfg
	m.buf = buffer.New(cfg.Length, buffer.Options{Allowed: cfg.Charset, Text: value})
	m.sel = m.buf.EndCaretRange()
	m.cancelReveal()
	return m
}

// Focus gives the field keyboard focus and moves the caret to the end of the
// value. A disabled field refuses focus; a field in the error state returns
// to normal.
func (m Model) Focus() Model {
	if m.focused || m.state == ViewDisabled {
		return m
	}
	m.focused = true
	m.sel = m.buf.EndCaretRange()
	if m.state == ViewError {
		m.state = ViewNormal
	}
	if m.cfg.OnFocus != nil {
		m.cfg.OnFocus()
	}
	return m
}

func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	m.focused = false
	if m.cfg.OnBlur != nil {
		m.cfg.OnBlur()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) ViewState() ViewState { return m.state }

// SetViewState changes the field state. Disabling blurs the field.
func (m Model) SetViewState(s ViewState) Model {
	m.state = s
	if s == ViewDisabled {
		m = m.Blur()
	}
	return m
}

// Slots returns the display snapshot of every slot.
//
// A slot is active when the field is focused, the view state is normal and
// the selection contains the slot index.
func (m Model) Slots() []Slot {
	slots := make([]Slot, m.buf.Cap())
	for i := range slots {
		ch, filled := m.buf.CharAt(i)
		s := Slot{Index: i, Char: ch, Filled: filled}

		switch m.state {
		case ViewDisabled:
			s.State = SlotDisabled
		case ViewError:
			s.State = SlotError
		default:
			if m.focused && m.sel.Contains(i) {
				s.State = SlotActive
			}
		}

		switch {
		case !filled:
			s.Display = m.cfg.Placeholder
		case m.cfg.Secure && !m.reveal.shows(i, ch, m.buf.Version()):
			s.Display = m.cfg.SecureChar
			s.Masked = true
		default:
			s.Display = ch
		}
		slots[i] = s
	}
	return slots
}

// Paste returns a command that reads the clipboard and inserts its contents
// at the selection.
func (m Model) Paste() tea.Cmd {
	cb := m.cfg.Clipboard
	if cb == nil {
		return nil
	}
	id := m.id
	return func() tea.Msg {
		s, err := cb.ReadText()
		return pasteMsg{id: id, text: s, err: err}
	}
}

type pasteMsg struct {
	id   int
	text string
	err  error
}
