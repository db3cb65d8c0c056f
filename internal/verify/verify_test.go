package verify

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashCode("4711", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashCode: %v", err)
	}

	v, err := New(hash)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !v.Verify("4711") {
		t.Fatalf("matching code rejected")
	}
	if v.Verify("4712") {
		t.Fatalf("wrong code accepted")
	}
	if err := v.Check("0000"); !errors.Is(err, ErrMismatch) {
		t.Fatalf("Check: got %v, want ErrMismatch", err)
	}
}

func TestHashCode_Cost(t *testing.T) {
	if _, err := HashCode("1", bcrypt.MinCost-1); err == nil {
		t.Fatalf("cost below minimum should fail")
	}
	if _, err := HashCode("1", bcrypt.MaxCost+1); err == nil {
		t.Fatalf("cost above maximum should fail")
	}

	hash, err := HashCode("1", 0)
	if err != nil {
		t.Fatalf("HashCode with default cost: %v", err)
	}
	if cost, _ := bcrypt.Cost([]byte(hash)); cost != bcrypt.DefaultCost {
		t.Fatalf("cost: got %d, want %d", cost, bcrypt.DefaultCost)
	}
}

func TestNew_RejectsMalformedHash(t *testing.T) {
	for _, h := range []string{"", "1234", "$2a$xx$notahash"} {
		if _, err := New(h); err == nil {
			t.Fatalf("New(%q) succeeded", h)
		}
	}
}
