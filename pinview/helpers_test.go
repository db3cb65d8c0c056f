package pinview

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends s one character per key press and collects the commands.
func typeText(m Model, s string) (Model, []tea.Cmd) {
	var cmds []tea.Cmd
	for _, r := range s {
		var cmd tea.Cmd
		m, cmd = m.Update(runes(string(r)))
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, cmds
}

// collect runs cmd and flattens batches into their messages.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

type recordLogger struct {
	msgs []string
}

func (l *recordLogger) Debug(msg string, args ...any) {
	l.msgs = append(l.msgs, fmt.Sprint(append([]any{msg}, args...)...))
}
