package pinview

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// Clipboard is the paste source. Errors must not crash the UI; the model
// logs and ignores them.
type Clipboard interface {
	ReadText() (string, error)
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func() (string, error)

func (f ClipboardFunc) ReadText() (string, error) { return f() }

var ErrNoClipboard = errors.New("no clipboard command available")

// DefaultClipboardCommands are tried in order: Wayland, X11, macOS.
var DefaultClipboardCommands = [][]string{
	{"wl-paste", "--no-newline"},
	{"xclip", "-selection", "clipboard", "-o"},
	{"pbpaste"},
}

// CommandClipboard reads the system clipboard through external tools.
type CommandClipboard struct {
	Commands [][]string    // default: DefaultClipboardCommands
	Timeout  time.Duration // per command, default: 2s
}

func (c CommandClipboard) ReadText() (string, error) {
	cmds := c.Commands
	if len(cmds) == 0 {
		cmds = DefaultClipboardCommands
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	var errs []error
	for _, argv := range cmds {
		if len(argv) == 0 {
			continue
		}
		out, err := runClipboardCommand(argv, timeout)
		if err == nil {
			return out, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", ErrNoClipboard
	}
	return "", fmt.Errorf("%w: %w", ErrNoClipboard, errors.Join(errs...))
}

func runClipboardCommand(argv []string, timeout time.Duration) (string, error) {
	if _, err := exec.LookPath(argv[0]); err != nil {
		return "", fmt.Errorf("%s: %w", argv[0], err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", argv[0], err)
	}
	return string(out), nil
}
