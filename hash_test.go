package layeredmap

import "testing"

func TestStringHashDeterministic(t *testing.T) {
	if StringHash("hello") != StringHash("hello") {
		t.Fatal("StringHash is not deterministic for equal inputs")
	}
}

func TestStringHashDistinguishesInputs(t *testing.T) {
	if StringHash("hello") == StringHash("world") {
		t.Fatal("StringHash collided on two short, distinct strings")
	}
}

func TestUint64HashIsIdentity(t *testing.T) {
	if Uint64Hash(12345) != 12345 {
		t.Fatalf("Uint64Hash(12345) = %d, want 12345", Uint64Hash(12345))
	}
}

func TestPairHashCommutativeCombination(t *testing.T) {
	a, b := uint64(111), uint64(222)
	if PairHash(a, b) != PairHash(b, a) {
		t.Fatal("PairHash(a, b) != PairHash(b, a); xor combination must be commutative")
	}
	if PairHash(a, b) == a || PairHash(a, b) == b {
		t.Fatal("PairHash degenerated to one of its inputs")
	}
}
