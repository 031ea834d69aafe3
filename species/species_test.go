package species

import (
	"errors"
	"testing"
)

func TestAtomicNumber(t *testing.T) {
	cases := map[string]int{"H": 1, "C": 6, "Fe": 26, "U": 92, "Og": 118, "X": 0}
	for symbol, want := range cases {
		z, err := AtomicNumber(symbol)
		if err != nil {
			t.Fatalf("AtomicNumber(%q): %v", symbol, err)
		}
		if z != want {
			t.Fatalf("AtomicNumber(%q) = %d, want %d", symbol, z, want)
		}
	}
}

func TestAtomicNumberUnknown(t *testing.T) {
	_, err := AtomicNumber("Zz")
	if err == nil {
		t.Fatal("expected error for unknown symbol")
	}
	var unknown *ErrUnknownSymbol
	if !errors.As(err, &unknown) {
		t.Fatalf("wrong error type: %T", err)
	}
	if unknown.Symbol != "Zz" {
		t.Fatalf("error carries %q, want Zz", unknown.Symbol)
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	for z := 0; z < len(Symbols); z++ {
		s, err := Symbol(z)
		if err != nil {
			t.Fatalf("Symbol(%d): %v", z, err)
		}
		back, err := AtomicNumber(s)
		if err != nil {
			t.Fatalf("AtomicNumber(%q): %v", s, err)
		}
		if back != z {
			t.Fatalf("round trip %d -> %q -> %d", z, s, back)
		}
	}
}

func TestSymbolOutOfRange(t *testing.T) {
	if _, err := Symbol(-1); err == nil {
		t.Fatal("expected error for negative atomic number")
	}
	if _, err := Symbol(len(Symbols)); err == nil {
		t.Fatal("expected error past the table end")
	}
}
