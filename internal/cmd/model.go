package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/pinfield/internal/logging"
	"github.com/iw2rmb/pinfield/internal/verify"
	"github.com/iw2rmb/pinfield/pinview"
)

type outcome int

const (
	outcomePending outcome = iota
	outcomeAccepted
	outcomeCanceled
	outcomeLocked
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	quitKey = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit"))
)

type verifiedMsg struct {
	code string
	err  error
}

type reloadMsg struct {
	field pinview.Config
}

// runModel hosts the entry field and drives verification.
type runModel struct {
	field    pinview.Model
	verifier *verify.Verifier
	logger   *logging.Logger

	maxAttempts int
	attempts    int
	verifying   bool

	status string
	help   help.Model
	keys   []key.Binding

	outcome outcome
	code    string
}

func newRunModel(fc pinview.Config, v *verify.Verifier, maxAttempts int, logger *logging.Logger) runModel {
	if logger == nil {
		logger = logging.NopLogger()
	}
	field := pinview.New(fc).Focus()
	return runModel{
		field:       field,
		verifier:    v,
		logger:      logger,
		maxAttempts: maxAttempts,
		help:        help.New(),
		keys:        helpKeys(field),
	}
}

func helpKeys(field pinview.Model) []key.Binding {
	km := field.Config().KeyMap
	return []key.Binding{km.Backspace, km.Clear, km.Paste, km.Submit, quitKey}
}

func (m runModel) Init() tea.Cmd { return m.field.Init() }

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			m.outcome = outcomeCanceled
			return m, tea.Quit
		}
		if m.verifying {
			return m, nil
		}
		// The first key after a failure starts a fresh attempt.
		if m.field.ViewState() == pinview.ViewError {
			m.field = m.field.SetViewState(pinview.ViewNormal)
			m.status = ""
		}
		m.field = m.field.Focus()

	case pinview.CompleteMsg:
		if msg.ID != m.field.ID() {
			return m, nil
		}
		return m.submit(msg.Value)

	case pinview.SubmitMsg:
		if msg.ID != m.field.ID() || m.verifying {
			return m, nil
		}
		if !msg.Full {
			m.status = fmt.Sprintf("enter all %d characters", m.field.Buffer().Cap())
			return m, nil
		}
		return m.submit(msg.Value)

	case verifiedMsg:
		return m.verified(msg)

	case reloadMsg:
		m.field = m.field.SetConfig(msg.field)
		m.keys = helpKeys(m.field)
		return m, nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m runModel) submit(code string) (tea.Model, tea.Cmd) {
	if m.verifier == nil {
		m.code = code
		m.outcome = outcomeAccepted
		m.logger.Info("code entered")
		return m, tea.Quit
	}

	m.verifying = true
	m.status = "checking..."
	v := m.verifier
	return m, func() tea.Msg {
		return verifiedMsg{code: code, err: v.Check(code)}
	}
}

func (m runModel) verified(msg verifiedMsg) (tea.Model, tea.Cmd) {
	m.verifying = false
	m.attempts++

	if msg.err == nil {
		m.code = msg.code
		m.outcome = outcomeAccepted
		m.logger.Info("code accepted", "attempts", m.attempts)
		return m, tea.Quit
	}

	m.logger.Warn("code rejected", "attempt", m.attempts, "error", msg.err.Error())
	if m.maxAttempts > 0 && m.attempts >= m.maxAttempts {
		m.outcome = outcomeLocked
		return m, tea.Quit
	}

	m.field = m.field.Reset().Blur().SetViewState(pinview.ViewError)
	if m.maxAttempts > 0 {
		m.status = fmt.Sprintf("incorrect code (%d of %d attempts)", m.attempts, m.maxAttempts)
	} else {
		m.status = "incorrect code, try again"
	}
	return m, nil
}

func (m runModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Enter %d-character code", m.field.Buffer().Cap())))
	b.WriteString("\n\n")
	b.WriteString(m.field.View())
	b.WriteString("\n\n")
	if m.status != "" {
		st := statusStyle
		if m.field.ViewState() == pinview.ViewError {
			st = errorStyle
		}
		b.WriteString(st.Render(m.status))
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys))
	b.WriteString("\n")
	return b.String()
}
