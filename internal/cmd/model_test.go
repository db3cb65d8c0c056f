package cmd

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/crypto/bcrypt"

	"github.com/iw2rmb/pinfield/buffer"
	"github.com/iw2rmb/pinfield/internal/verify"
	"github.com/iw2rmb/pinfield/pinview"
)

func fieldConfig() pinview.Config {
	return pinview.Config{Length: 4, Charset: buffer.Digits, BlurOnComplete: true}
}

// drive feeds msg to m and keeps feeding the messages its commands produce,
// stopping at tea.QuitMsg.
func drive(t *testing.T, m runModel, msg tea.Msg) (runModel, bool) {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if _, ok := next.(tea.QuitMsg); ok {
			return m, true
		}

		model, cmd := m.Update(next)
		m = model.(runModel)
		queue = append(queue, run(cmd)...)
	}
	return m, false
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func typeCode(t *testing.T, m runModel, code string) (runModel, bool) {
	t.Helper()
	var quit bool
	for _, r := range code {
		m, quit = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if quit {
			return m, true
		}
	}
	return m, false
}

func TestRunModel_AcceptsWithoutVerifier(t *testing.T) {
	m := newRunModel(fieldConfig(), nil, 0, nil)

	m, quit := typeCode(t, m, "12a34")
	if !quit {
		t.Fatalf("expected quit after the last slot was filled")
	}
	if m.outcome != outcomeAccepted || m.code != "1234" {
		t.Fatalf("outcome=%v code=%q", m.outcome, m.code)
	}
}

func TestRunModel_VerifiesAgainstHash(t *testing.T) {
	hash, err := verify.HashCode("4711", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashCode: %v", err)
	}
	v, err := verify.New(hash)
	if err != nil {
		t.Fatalf("verify.New: %v", err)
	}
	m := newRunModel(fieldConfig(), v, 3, nil)

	m, quit := typeCode(t, m, "1111")
	if quit {
		t.Fatalf("wrong code ended the program")
	}
	if m.field.ViewState() != pinview.ViewError || m.field.Value() != "" {
		t.Fatalf("after mismatch: state=%v value=%q", m.field.ViewState(), m.field.Value())
	}
	if !strings.Contains(m.status, "1 of 3") {
		t.Fatalf("status: got %q", m.status)
	}

	m, quit = typeCode(t, m, "4711")
	if !quit || m.outcome != outcomeAccepted || m.code != "4711" {
		t.Fatalf("after correct code: quit=%v outcome=%v code=%q", quit, m.outcome, m.code)
	}
	if m.attempts != 2 {
		t.Fatalf("attempts: got %d, want 2", m.attempts)
	}
}

func TestRunModel_LocksAfterMaxAttempts(t *testing.T) {
	hash, err := verify.HashCode("0000", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashCode: %v", err)
	}
	v, _ := verify.New(hash)
	m := newRunModel(fieldConfig(), v, 2, nil)

	m, quit := typeCode(t, m, "1234")
	if quit {
		t.Fatalf("first mismatch ended the program")
	}
	m, quit = typeCode(t, m, "5678")
	if !quit || m.outcome != outcomeLocked {
		t.Fatalf("after second mismatch: quit=%v outcome=%v", quit, m.outcome)
	}
}

func TestRunModel_FirstKeyAfterErrorClearsIt(t *testing.T) {
	v, _ := verify.New(mustHash(t, "9999"))
	m := newRunModel(fieldConfig(), v, 0, nil)

	m, _ = typeCode(t, m, "1234")
	if m.field.ViewState() != pinview.ViewError {
		t.Fatalf("expected error state")
	}
	m, _ = typeCode(t, m, "5")
	if m.field.ViewState() != pinview.ViewNormal || m.status != "" {
		t.Fatalf("error not cleared: state=%v status=%q", m.field.ViewState(), m.status)
	}
	if m.field.Value() != "5" || !m.field.Focused() {
		t.Fatalf("value=%q focused=%v", m.field.Value(), m.field.Focused())
	}
}

func TestRunModel_SubmitIncomplete(t *testing.T) {
	m := newRunModel(fieldConfig(), nil, 0, nil)
	m, _ = typeCode(t, m, "12")

	m, quit := drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if quit {
		t.Fatalf("incomplete submit ended the program")
	}
	if m.status != "enter all 4 characters" {
		t.Fatalf("status: got %q", m.status)
	}
}

func TestRunModel_Cancel(t *testing.T) {
	m := newRunModel(fieldConfig(), nil, 0, nil)
	m, quit := drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !quit || m.outcome != outcomeCanceled {
		t.Fatalf("quit=%v outcome=%v", quit, m.outcome)
	}
}

func TestRunModel_View(t *testing.T) {
	m := newRunModel(fieldConfig(), nil, 0, nil)
	m, _ = typeCode(t, m, "12")

	view := ansi.Strip(m.View())
	for _, want := range []string{"Enter 4-character code", "12", "paste", "quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func mustHash(t *testing.T, code string) string {
	t.Helper()
	h, err := verify.HashCode(code, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashCode: %v", err)
	}
	return h
}

func TestRunModel_ReloadKeepsValueAndFocus(t *testing.T) {
	m := newRunModel(fieldConfig(), nil, 0, nil)
	m, _ = typeCode(t, m, "12")

	next := fieldConfig()
	next.Length = 6
	m, _ = drive(t, m, reloadMsg{field: next})

	if got := m.field.Buffer().Cap(); got != 6 {
		t.Fatalf("cap after reload: got %d, want 6", got)
	}
	if m.field.Value() != "12" || !m.field.Focused() {
		t.Fatalf("after reload: value=%q focused=%v", m.field.Value(), m.field.Focused())
	}
}
