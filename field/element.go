// Package field provides the prime-field element used throughout the
// witness generator and AIR: the BLS12-377 scalar field, as exposed by
// gnark-crypto. Every trace cell and every challenge is a field.Element.
package field

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// ErrInverseOfZero is returned by Inv when called on the zero element, which
// has no multiplicative inverse.
var ErrInverseOfZero = errors.New("field: inverse of zero")

// Element wraps fr.Element, the BLS12-377 scalar field element from
// gnark-crypto, giving it the canonical Zero/One/Add/Sub/Mul/Inv surface this
// module's components are written against.
type Element struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()

	return e
}

// FromUint64 constructs an Element from a non-negative integer.
func FromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)

	return e
}

// FromBytes decodes an Element from 32 big-endian bytes, reducing modulo the
// field prime as gnark-crypto's SetBytes does.
func FromBytes(b []byte) Element {
	var e Element
	e.inner.SetBytes(b)

	return e
}

// Add x + y
func (x Element) Add(y Element) Element {
	var z Element
	z.inner.Add(&x.inner, &y.inner)

	return z
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var z Element
	z.inner.Sub(&x.inner, &y.inner)

	return z
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var z Element
	z.inner.Mul(&x.inner, &y.inner)

	return z
}

// Inv returns x⁻¹. It is an error to invert the zero element.
func (x Element) Inv() (Element, error) {
	if x.IsZero() {
		return Element{}, ErrInverseOfZero
	}

	var z Element
	z.inner.Inverse(&x.inner)

	return z, nil
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.inner.IsZero()
}

// IsOne reports whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.inner.IsOne()
}

// Equal reports whether x and y represent the same field element.
func (x Element) Equal(y Element) bool {
	return x.inner.Equal(&y.inner)
}

// Bytes returns the canonical 32-byte big-endian encoding of x.
func (x Element) Bytes() [32]byte {
	return x.inner.Bytes()
}

// String renders x in decimal, for logging and error messages.
func (x Element) String() string {
	return x.inner.String()
}

// Horner folds a row of columns into a single element using Horner's method
// in alpha: ((...(0*alpha + row[0])*alpha + row[1])...)*alpha + row[n-1].
// An empty row folds to Zero, per the AIR's degenerate-side contract.
func Horner(alpha Element, row []Element) Element {
	acc := Zero()
	for _, v := range row {
		acc = acc.Mul(alpha).Add(v)
	}

	return acc
}

// Element implements fmt.Stringer (see String above).
var _ fmt.Stringer = Element{}
