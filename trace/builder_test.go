package trace

import (
	"testing"

	"github.com/consensys/witness-air/field"
	"github.com/consensys/witness-air/rawtrace"
)

func col(vals ...uint64) rawtrace.Column {
	out := make(rawtrace.Column, len(vals))
	for i, v := range vals {
		out[i] = field.FromUint64(v)
	}

	return out
}

func Test_Lookup_01(t *testing.T) {
	// A = [1,2,3], B = [1,2,3,1] (B has every A value plus an extra 1).
	l := &rawtrace.Lookup{
		Handle: "identity",
		A:      []rawtrace.Column{col(1, 2, 3)},
		B: []rawtrace.Side{
			{Columns: []rawtrace.Column{col(1, 2, 3, 1)}},
		},
	}

	b := &Batch{Lookups: []*rawtrace.Lookup{l}, Alpha: field.FromUint64(7), Delta: field.FromUint64(11)}

	result, err := b.Run()
	if err != nil {
		t.Fatal(err)
	}

	d := Evaluate(result.AIR, result.Matrix, b.Alpha, b.Delta)
	if !d.Ok() {
		t.Fatalf("unexpected constraint failures: %v", d.Failures())
	}

	if result.Matrix.Height != 4 {
		t.Fatalf("height = %d, expected 4", result.Matrix.Height)
	}
}

func Test_Lookup_02_FilteredASide(t *testing.T) {
	// Only rows where AFilter=1 should need a match: row 1 (value 99) is
	// masked off and has no counterpart in B, which must not break
	// soundness.
	l := &rawtrace.Lookup{
		Handle:  "filtered",
		A:       []rawtrace.Column{col(5, 99, 6)},
		AFilter: col(1, 0, 1),
		B: []rawtrace.Side{
			{Columns: []rawtrace.Column{col(5, 6)}},
		},
	}

	b := &Batch{Lookups: []*rawtrace.Lookup{l}, Alpha: field.FromUint64(3), Delta: field.FromUint64(17)}

	result, err := b.Run()
	if err != nil {
		t.Fatal(err)
	}

	d := Evaluate(result.AIR, result.Matrix, b.Alpha, b.Delta)
	if !d.Ok() {
		t.Fatalf("unexpected constraint failures: %v", d.Failures())
	}
}

func Test_Lookup_03_UnmatchedRowFails(t *testing.T) {
	// A contains a value never present in B: the running sum cannot return
	// to zero.
	l := &rawtrace.Lookup{
		Handle: "broken",
		A:      []rawtrace.Column{col(1, 2, 3)},
		B: []rawtrace.Side{
			{Columns: []rawtrace.Column{col(1, 2)}},
		},
	}

	b := &Batch{Lookups: []*rawtrace.Lookup{l}, Alpha: field.FromUint64(7), Delta: field.FromUint64(11)}

	if _, err := b.Run(); err == nil {
		t.Fatal("expected an error for an unmatched A-row")
	}
}

func Test_Lookup_04_MultipleBSides(t *testing.T) {
	l := &rawtrace.Lookup{
		Handle: "split",
		A:      []rawtrace.Column{col(1, 2, 3, 4)},
		B: []rawtrace.Side{
			{Columns: []rawtrace.Column{col(1, 2)}},
			{Columns: []rawtrace.Column{col(3, 4)}},
		},
	}

	b := &Batch{Lookups: []*rawtrace.Lookup{l}, Alpha: field.FromUint64(5), Delta: field.FromUint64(13)}

	result, err := b.Run()
	if err != nil {
		t.Fatal(err)
	}

	d := Evaluate(result.AIR, result.Matrix, b.Alpha, b.Delta)
	if !d.Ok() {
		t.Fatalf("unexpected constraint failures: %v", d.Failures())
	}
}

func Test_Permutation_01(t *testing.T) {
	p := &rawtrace.Permutation{
		Handle: "reorder",
		A:      []rawtrace.Column{col(1, 2, 3)},
		B:      []rawtrace.Column{col(3, 1, 2)},
	}

	b := &Batch{Permutations: []*rawtrace.Permutation{p}, Alpha: field.FromUint64(9), Delta: field.FromUint64(21)}

	result, err := b.Run()
	if err != nil {
		t.Fatal(err)
	}

	d := Evaluate(result.AIR, result.Matrix, b.Alpha, b.Delta)
	if !d.Ok() {
		t.Fatalf("unexpected constraint failures: %v", d.Failures())
	}
}

func Test_Permutation_02_NotAPermutationFails(t *testing.T) {
	p := &rawtrace.Permutation{
		Handle: "broken",
		A:      []rawtrace.Column{col(1, 2, 3)},
		B:      []rawtrace.Column{col(1, 2, 4)},
	}

	b := &Batch{Permutations: []*rawtrace.Permutation{p}, Alpha: field.FromUint64(9), Delta: field.FromUint64(21)}

	if _, err := b.Run(); err == nil {
		t.Fatal("expected an error for a non-permutation")
	}
}

func Test_Describe_01(t *testing.T) {
	l := &rawtrace.Lookup{
		Handle: "id",
		A:      []rawtrace.Column{col(1, 2)},
		B:      []rawtrace.Side{{Columns: []rawtrace.Column{col(1, 2)}}},
	}

	b := &Batch{Lookups: []*rawtrace.Lookup{l}, Alpha: field.FromUint64(3), Delta: field.FromUint64(5)}

	result, err := b.Run()
	if err != nil {
		t.Fatal(err)
	}

	desc := Describe(result.AIR)
	if desc == "" {
		t.Fatal("expected a non-empty description")
	}
}

func Test_Batch_MixedHeights(t *testing.T) {
	// The lookup is shorter than the permutation; both must be padded to
	// the common height of 4.
	l := &rawtrace.Lookup{
		Handle: "short",
		A:      []rawtrace.Column{col(1, 2)},
		B:      []rawtrace.Side{{Columns: []rawtrace.Column{col(1, 2)}}},
	}

	p := &rawtrace.Permutation{
		Handle: "long",
		A:      []rawtrace.Column{col(1, 2, 3, 4)},
		B:      []rawtrace.Column{col(4, 3, 2, 1)},
	}

	b := &Batch{
		Lookups:      []*rawtrace.Lookup{l},
		Permutations: []*rawtrace.Permutation{p},
		Alpha:        field.FromUint64(2),
		Delta:        field.FromUint64(99),
	}

	result, err := b.Run()
	if err != nil {
		t.Fatal(err)
	}

	if result.Matrix.Height != 4 {
		t.Fatalf("height = %d, expected 4", result.Matrix.Height)
	}

	d := Evaluate(result.AIR, result.Matrix, b.Alpha, b.Delta)
	if !d.Ok() {
		t.Fatalf("unexpected constraint failures: %v", d.Failures())
	}
}
