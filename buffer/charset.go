package buffer

import (
	"strings"
	"unicode"

	"github.com/iw2rmb/pinfield/internal/grapheme"
)

// Charset decides which runes survive insertion. A character (grapheme
// cluster) is accepted only if every rune in it is allowed.
type Charset func(r rune) bool

// Alphanumeric allows Unicode letters, combining marks and numbers.
func Alphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}

// Digits allows ASCII 0-9 only.
func Digits(r rune) bool {
	return r >= '0' && r <= '9'
}

// ASCIIAlphanumeric allows ASCII letters and digits.
func ASCIIAlphanumeric(r rune) bool {
	return Digits(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Any allows everything except control characters.
func Any(r rune) bool {
	return !unicode.IsControl(r)
}

// Accepts reports whether cluster passes the charset.
func (c Charset) Accepts(cluster string) bool {
	if c == nil {
		c = Alphanumeric
	}
	return grapheme.AllRunes(cluster, c)
}

// CharsetByName resolves a configuration name to a Charset.
//
// Names: "alphanumeric" (default for ""), "numeric", "ascii", "any".
func CharsetByName(name string) (Charset, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "alphanumeric":
		return Alphanumeric, true
	case "numeric", "digits":
		return Digits, true
	case "ascii":
		return ASCIIAlphanumeric, true
	case "any":
		return Any, true
	default:
		return nil, false
	}
}

// CharsetNames lists the names accepted by CharsetByName.
func CharsetNames() []string {
	return []string{"alphanumeric", "numeric", "ascii", "any"}
}
