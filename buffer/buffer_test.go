package buffer

import "testing"

func TestNew_NegativeCapacityClampsToZero(t *testing.T) {
	b := New(-3, Options{})
	if got := b.Cap(); got != 0 {
		t.Fatalf("cap=%d, want 0", got)
	}
	if !b.IsFull() {
		t.Fatalf("zero-capacity buffer should be full")
	}

	caret := b.Insert("12", b.EndCaretRange())
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if caret != Caret(At(0)) {
		t.Fatalf("caret=%v, want %v", caret, Caret(At(0)))
	}
}

func TestNew_InitialTextIsSanitized(t *testing.T) {
	b := New(4, Options{Allowed: Digits, Text: "1a2-3456"})
	if got, want := b.Text(), "1234"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if b.Version() != 0 {
		t.Fatalf("initial text should not bump version, got %d", b.Version())
	}
}

func TestBuffer_Boundaries(t *testing.T) {
	b := New(6, Options{Text: "abc"})

	if got := b.Start(); got != At(0) {
		t.Fatalf("start=%v, want 0", got)
	}
	if got := b.End(); got != At(3) {
		t.Fatalf("end=%v, want 3", got)
	}
	if got, want := b.Extent(), NewRange(At(0), At(3)); got != want {
		t.Fatalf("extent=%v, want %v", got, want)
	}
	if got, want := b.EndCaretRange(), Caret(At(3)); got != want {
		t.Fatalf("end caret=%v, want %v", got, want)
	}
	if b.IsFull() || b.IsEmpty() {
		t.Fatalf("buffer should be neither full nor empty")
	}
}

func TestBuffer_CharAt(t *testing.T) {
	b := New(4, Options{Allowed: Any, Text: "a\U0001F44D\U0001F3FDb"})
	if got, ok := b.CharAt(1); !ok || got != "\U0001F44D\U0001F3FD" {
		t.Fatalf("CharAt(1)=(%q,%v), want emoji cluster", got, ok)
	}
	if _, ok := b.CharAt(3); ok {
		t.Fatalf("CharAt past end should fail")
	}
	if _, ok := b.CharAt(-1); ok {
		t.Fatalf("CharAt(-1) should fail")
	}
}

func TestCharsetByName(t *testing.T) {
	for _, name := range CharsetNames() {
		if _, ok := CharsetByName(name); !ok {
			t.Fatalf("CharsetByName(%q) should resolve", name)
		}
	}
	if _, ok := CharsetByName("hex"); ok {
		t.Fatalf("unknown charset should not resolve")
	}

	cs, _ := CharsetByName("numeric")
	if !cs.Accepts("7") || cs.Accepts("x") || cs.Accepts("٣") {
		t.Fatalf("numeric charset should accept ASCII digits only")
	}
	var zero Charset
	if !zero.Accepts("x") || zero.Accepts("-") {
		t.Fatalf("nil charset should behave like Alphanumeric")
	}
}
