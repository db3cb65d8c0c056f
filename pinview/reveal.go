package pinview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// revealState tracks the one secure slot that is temporarily shown in clear
// text. Every schedule or cancel bumps token, so a tick that fires after a
// newer edit finds a stale token and does nothing. The slot is only shown
// while the buffer is still at the version the reveal was recorded for.
type revealState struct {
	token   uint64
	active  bool
	slot    int
	char    string
	version uint64
}

func (r revealState) shows(slot int, char string, version uint64) bool {
	return r.active && r.slot == slot && r.char == char && r.version == version
}

type revealExpiredMsg struct {
	id    int
	token uint64
}

func (m *Model) scheduleReveal(slot int, char string) tea.Cmd {
	m.reveal.token++
	if !m.cfg.Secure || m.cfg.SecureDelay <= 0 {
		m.reveal.active = false
		return nil
	}
	m.reveal.active = true
	m.reveal.slot = slot
	m.reveal.char = char
	m.reveal.version = m.buf.Version()

	id, token := m.id, m.reveal.token
	return tea.Tick(m.cfg.SecureDelay, func(time.Time) tea.Msg {
		return revealExpiredMsg{id: id, token: token}
	})
}

func (m *Model) cancelReveal() {
	m.reveal.token++
	m.reveal.active = false
}

func (m *Model) expireReveal(msg revealExpiredMsg) {
	if msg.id != m.id || msg.token != m.reveal.token {
		return
	}
	m.reveal.active = false
}

// Revealing reports the slot currently shown in clear text in secure mode.
func (m Model) Revealing() (slot int, ok bool) {
	ch, _ := m.buf.CharAt(m.reveal.slot)
	if !m.reveal.shows(m.reveal.slot, ch, m.buf.Version()) {
		return 0, false
	}
	return m.reveal.slot, true
}
