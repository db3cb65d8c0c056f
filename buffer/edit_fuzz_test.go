package buffer

import (
	"math/rand"
	"testing"
)

type fuzzOp struct {
	insert bool
	text   string
	start  int
	end    int
}

func FuzzBuffer_EditsPreserveCapacity(f *testing.F) {
	f.Add(int64(1), 4)
	f.Add(int64(42), 0)
	f.Add(int64(7), 6)

	f.Fuzz(func(t *testing.T, seed int64, capacity int) {
		if capacity > 64 || capacity < -4 {
			t.Skip()
		}
		rng := rand.New(rand.NewSource(seed))
		b := New(capacity, Options{Allowed: Digits})
		limit := b.Cap()

		for i := 0; i < 64; i++ {
			op := randomOp(rng, b.Len())
			var caret Range
			if op.insert {
				caret = b.Insert(op.text, NewRange(At(op.start), At(op.end)))
			} else {
				caret = b.Delete(NewRange(At(op.start), At(op.end)))
			}

			if b.Len() > limit {
				t.Fatalf("step %d: len=%d exceeds capacity %d", i, b.Len(), limit)
			}
			if !caret.IsEmpty() {
				t.Fatalf("step %d: returned range %v is not a caret", i, caret)
			}
			if _, ok := b.TextIn(caret); ok {
				t.Fatalf("step %d: caret reported text", i)
			}
			for j := 0; j < b.Len(); j++ {
				c, _ := b.CharAt(j)
				if !Digits([]rune(c)[0]) {
					t.Fatalf("step %d: disallowed character %q survived", i, c)
				}
			}
		}
	})
}

func randomOp(rng *rand.Rand, n int) fuzzOp {
	const alphabet = "0123456789ab-"
	text := make([]byte, rng.Intn(8))
	for i := range text {
		text[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return fuzzOp{
		insert: rng.Intn(3) > 0,
		text:   string(text),
		start:  rng.Intn(n+4) - 2,
		end:    rng.Intn(n+4) - 2,
	}
}
