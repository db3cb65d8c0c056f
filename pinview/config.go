package pinview

import (
	"time"

	"github.com/iw2rmb/pinfield/buffer"
)

const (
	DefaultLength      = 5
	DefaultSecureChar  = "*"
	DefaultSecureDelay = 800 * time.Millisecond
)

// Config configures the Model.
//
// Boolean fields are plain Go zero values; use DefaultConfig for the
// recommended behavior.
type Config struct {
	// Length is the number of slots and the buffer capacity.
	// Values <= 0 fall back to DefaultLength.
	Length int

	// Charset filters typed and pasted characters. nil means Alphanumeric.
	Charset buffer.Charset

	// Initial value, sanitized and truncated to Length.
	Value string

	// Placeholder is drawn in empty slots. Empty means blank slots.
	Placeholder string

	// Secure masks entered characters with SecureChar. The most recently
	// typed character stays visible for SecureDelay (0 masks immediately).
	Secure      bool
	SecureChar  string
	SecureDelay time.Duration

	// MoveToPreviousOnDelete makes backspace on a caret delete the character
	// before it. When false backspace clears the slot under the caret.
	MoveToPreviousOnDelete bool

	// BlurOnComplete blurs the field once every slot is filled.
	BlurOnComplete bool
	// BlurOnSubmit blurs the field on the Submit binding.
	BlurOnSubmit bool

	// Group splits the slots into two halves separated by GroupSpacing.
	Group        bool
	ItemSpacing  int
	GroupSpacing int

	Style     Style
	KeyMap    KeyMap
	Clipboard Clipboard
	Logger    Logger

	OnChange   func(ChangeEvent)
	OnComplete func(value string)
	OnFocus    func()
	OnBlur     func()
}

// DefaultConfig returns the recommended configuration.
func DefaultConfig() Config {
	return Config{
		Length:                 DefaultLength,
		Charset:                buffer.Alphanumeric,
		SecureChar:             DefaultSecureChar,
		SecureDelay:            DefaultSecureDelay,
		MoveToPreviousOnDelete: true,
		BlurOnComplete:         true,
		ItemSpacing:            1,
		GroupSpacing:           3,
		Style:                  DefaultStyle(),
		KeyMap:                 DefaultKeyMap(),
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Length <= 0 {
		cfg.Length = DefaultLength
	}
	if cfg.Charset == nil {
		cfg.Charset = buffer.Alphanumeric
	}
	if cfg.SecureChar == "" {
		cfg.SecureChar = DefaultSecureChar
	}
	if cfg.SecureDelay < 0 {
		cfg.SecureDelay = 0
	}
	if cfg.ItemSpacing < 0 {
		cfg.ItemSpacing = 0
	}
	if cfg.GroupSpacing < 0 {
		cfg.GroupSpacing = 0
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	return cfg
}

// Logger receives debug diagnostics. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
