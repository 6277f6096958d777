package rawtrace

import (
	"testing"

	"github.com/consensys/witness-air/field"
)

func mkcol(vals ...uint64) Column {
	out := make(Column, len(vals))
	for i, v := range vals {
		out[i] = field.FromUint64(v)
	}

	return out
}

func Test_Lookup_ResizeTo_01(t *testing.T) {
	l := &Lookup{
		A: []Column{mkcol(1, 2)},
		B: []Side{{Columns: []Column{mkcol(1, 2, 3)}}},
	}

	if err := l.ResizeTo(3); err != nil {
		t.Fatal(err)
	}

	if len(l.A[0]) != 3 {
		t.Fatalf("A not padded: len = %d", len(l.A[0]))
	}

	if !l.A[0][2].IsZero() {
		t.Fatal("padding value is not zero")
	}

	if !l.AFilter[0].IsOne() || !l.AFilter[1].IsOne() {
		t.Fatal("default filter over original rows must be one")
	}

	if !l.AFilter[2].IsZero() {
		t.Fatal("padding row filter must be zero")
	}
}

func Test_Lookup_ResizeTo_RejectsShrink(t *testing.T) {
	l := &Lookup{
		A: []Column{mkcol(1, 2, 3)},
		B: []Side{{Columns: []Column{mkcol(1, 2, 3)}}},
	}

	if err := l.ResizeTo(1); err == nil {
		t.Fatal("expected an error shrinking below natural height")
	}
}

func Test_Lookup_Height_MismatchedColumnsErrors(t *testing.T) {
	l := &Lookup{
		A: []Column{mkcol(1, 2, 3), mkcol(1, 2)},
	}

	if _, err := l.AHeight(); err == nil {
		t.Fatal("expected an error for mismatched column lengths")
	}
}

func Test_Permutation_ResizeTo_01(t *testing.T) {
	p := &Permutation{
		A: []Column{mkcol(1, 2)},
		B: []Column{mkcol(2, 1, 3)},
	}

	if err := p.ResizeTo(3); err != nil {
		t.Fatal(err)
	}

	if len(p.A[0]) != 3 || !p.A[0][2].IsZero() {
		t.Fatal("A not correctly zero-padded")
	}
}
