package field

import "testing"

func Test_Element_01(t *testing.T) {
	if !Zero().IsZero() {
		t.Fatal("Zero() is not zero")
	}

	if !One().IsOne() {
		t.Fatal("One() is not one")
	}
}

func Test_Element_02(t *testing.T) {
	a := FromUint64(7)
	b := FromUint64(35)

	sum := a.Add(b)
	if !sum.Equal(FromUint64(42)) {
		t.Fatalf("7+35 = %s, expected 42", sum)
	}

	diff := b.Sub(a)
	if !diff.Equal(FromUint64(28)) {
		t.Fatalf("35-7 = %s, expected 28", diff)
	}

	prod := a.Mul(b)
	if !prod.Equal(FromUint64(245)) {
		t.Fatalf("7*35 = %s, expected 245", prod)
	}
}

func Test_Element_03(t *testing.T) {
	x := FromUint64(12345)

	inv, err := x.Inv()
	if err != nil {
		t.Fatal(err)
	}

	if !x.Mul(inv).IsOne() {
		t.Fatal("x * x^-1 != 1")
	}
}

func Test_Element_04(t *testing.T) {
	if _, err := Zero().Inv(); err == nil {
		t.Fatal("expected error inverting zero")
	}
}

func Test_Element_05(t *testing.T) {
	x := FromUint64(9876543210)

	roundtrip := FromBytes(x.Bytes())
	if !roundtrip.Equal(x) {
		t.Fatalf("roundtrip through Bytes() changed value: %s != %s", roundtrip, x)
	}
}

func Test_Horner_01(t *testing.T) {
	alpha := FromUint64(2)

	got := Horner(alpha, nil)
	if !got.IsZero() {
		t.Fatalf("Horner of empty row = %s, expected 0", got)
	}
}

func Test_Horner_02(t *testing.T) {
	alpha := FromUint64(10)
	row := []Element{FromUint64(1), FromUint64(2), FromUint64(3)}

	// Horner of [1,2,3] in base 10 is 123.
	got := Horner(alpha, row)
	if !got.Equal(FromUint64(123)) {
		t.Fatalf("Horner([1,2,3], 10) = %s, expected 123", got)
	}
}
