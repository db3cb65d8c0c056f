package grapheme

import (
	"testing"
	"unicode"
)

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F44D\U0001F3FD" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != "\U0001F44D\U0001F3FD" {
		t.Fatalf("split[2]=%q, want thumbs up with skin tone", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count empty=%d, want 0", c)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F44D\U0001F3FD" + "b"
	if got, want := Slice(text, 1, 3), "e\u0301\U0001F44D\U0001F3FD"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
	if got := Slice(text, 3, 1); got != "" {
		t.Fatalf("inverted slice=%q, want empty", got)
	}
	if got, want := Slice(text, -4, 1), "a"; got != want {
		t.Fatalf("negative start slice=%q, want %q", got, want)
	}
}

func TestFilter_PartitionsInOrder(t *testing.T) {
	kept, dropped := Filter("1a-2", func(c string) bool {
		return AllRunes(c, unicode.IsDigit)
	})
	if got, want := Join(kept), "12"; got != want {
		t.Fatalf("kept=%q, want %q", got, want)
	}
	if got, want := Join(dropped), "a-"; got != want {
		t.Fatalf("dropped=%q, want %q", got, want)
	}
}

func TestAllRunes(t *testing.T) {
	if AllRunes("", unicode.IsLetter) {
		t.Fatalf("empty cluster must not satisfy")
	}
	if !AllRunes("e\u0301", func(r rune) bool { return unicode.IsLetter(r) || unicode.IsMark(r) }) {
		t.Fatalf("combining cluster should satisfy letter-or-mark")
	}
	if AllRunes("e\u0301", unicode.IsLetter) {
		t.Fatalf("combining mark is not a letter")
	}
}
