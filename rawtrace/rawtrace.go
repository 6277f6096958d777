// Package rawtrace holds the in-memory representation of raw lookup and
// permutation assertions — the inputs to the trace builder, before they are
// laid out on the shared trace matrix and given their auxiliary witness
// columns.
package rawtrace

import (
	"fmt"

	"github.com/consensys/witness-air/field"
	"github.com/consensys/witness-air/witnesserr"
)

// Column is a single column of a raw table: one field element per row.
type Column []field.Element

// Side is one B-side of a lookup: an ordered list of B-columns plus the
// filter gating which of its rows are active.
type Side struct {
	Columns []Column
	Filter  Column
}

// Lookup is a raw "L" assertion: an A-side searched against the union of
// one or more B-sides, each independently filterable.
type Lookup struct {
	// Handle names this argument for diagnostics only; never part of the
	// algebraic contract.
	Handle string
	A      []Column
	AFilter Column
	B      []Side
}

// Permutation is a raw "P" assertion: A-rows and B-rows claimed to be equal
// as multisets, with no filters.
type Permutation struct {
	Handle string
	A      []Column
	B      []Column
}

// height returns the common row count of a set of equal-length columns, or
// an error naming the inconsistency.
func height(cols []Column, what string) (int, error) {
	if len(cols) == 0 {
		return 0, witnesserr.New(witnesserr.InconsistentRaw, "", fmt.Sprintf("%s has no columns", what))
	}

	h := len(cols[0])
	if h == 0 {
		return 0, witnesserr.New(witnesserr.InconsistentRaw, "", fmt.Sprintf("%s has zero-length columns", what))
	}

	for i, c := range cols {
		if len(c) != h {
			return 0, witnesserr.New(witnesserr.InconsistentRaw, "",
				fmt.Sprintf("%s column %d has length %d, expected %d", what, i, len(c), h))
		}
	}

	return h, nil
}

// AHeight returns the common length of the A-columns.
func (l *Lookup) AHeight() (int, error) {
	return height(l.A, "lookup A-side")
}

// BHeight returns the common length of side s's B-columns.
func (l *Lookup) BHeight(s int) (int, error) {
	return height(l.B[s].Columns, fmt.Sprintf("lookup B-side %d", s))
}

// Height returns the overall height this lookup will occupy once resized:
// the maximum of the A-side and every B-side's natural height. A freshly
// constructed Lookup (before ResizeTo) reports its natural, unpadded height.
func (l *Lookup) Height() (int, error) {
	h, err := l.AHeight()
	if err != nil {
		return 0, err
	}

	for s := range l.B {
		bh, err := l.BHeight(s)
		if err != nil {
			return 0, err
		}

		if bh > h {
			h = bh
		}
	}

	return h, nil
}

// ResizeTo pads every A-column, B-column, and filter to height h with
// field.Zero(). A missing filter defaults to "all ones": every existing row
// is active, but padding rows are always filter-disabled (zero), which is
// what keeps the padded argument sound.
func (l *Lookup) ResizeTo(h int) error {
	cur, err := l.Height()
	if err != nil {
		return err
	}

	if h < cur {
		return witnesserr.New(witnesserr.InconsistentRaw, l.Handle,
			fmt.Sprintf("cannot resize to height %d smaller than natural height %d", h, cur))
	}

	aLen := 0
	if len(l.A) > 0 {
		aLen = len(l.A[0])
	}

	l.AFilter = padFilter(l.AFilter, aLen, h)

	for i := range l.A {
		l.A[i] = padColumn(l.A[i], h)
	}

	for s := range l.B {
		bLen := 0
		if len(l.B[s].Columns) > 0 {
			bLen = len(l.B[s].Columns[0])
		}

		l.B[s].Filter = padFilter(l.B[s].Filter, bLen, h)

		for i := range l.B[s].Columns {
			l.B[s].Columns[i] = padColumn(l.B[s].Columns[i], h)
		}
	}

	return nil
}

// padColumn extends col with field.Zero() up to length h.
func padColumn(col Column, h int) Column {
	if len(col) >= h {
		return col[:h]
	}

	out := make(Column, h)
	copy(out, col)

	for i := len(col); i < h; i++ {
		out[i] = field.Zero()
	}

	return out
}

// padFilter extends a filter to height h. A missing filter (nil, or shorter
// than the original data length n) defaults to all-ones over [0,n), then
// zero-pads (disabled) over [n,h) — the padding rows must never contribute.
func padFilter(filter Column, n, h int) Column {
	if len(filter) < n {
		filter = nil
	}

	out := make(Column, h)

	for i := 0; i < n; i++ {
		if i < len(filter) {
			out[i] = filter[i]
		} else {
			out[i] = field.One()
		}
	}

	for i := n; i < h; i++ {
		out[i] = field.Zero()
	}

	return out
}

// Height returns the larger of the A-side and B-side heights, erroring if
// the columns within either side disagree in length. The two sides may
// differ in height; ResizeTo pads both to a common height.
func (p *Permutation) Height() (int, error) {
	ah, err := height(p.A, "permutation A-side")
	if err != nil {
		return 0, err
	}

	bh, err := height(p.B, "permutation B-side")
	if err != nil {
		return 0, err
	}

	if ah > bh {
		return ah, nil
	}

	return bh, nil
}

// Width returns the common column count w of A and B.
func (p *Permutation) Width() int {
	return len(p.A)
}

// ResizeTo pads every A-column and B-column to height h with field.Zero().
// Permutation arguments carry no filters, so padding rows contribute
// (0+delta) on both sides equally and cancel in the running product.
func (p *Permutation) ResizeTo(h int) error {
	cur, err := p.Height()
	if err != nil {
		return err
	}

	if h < cur {
		return witnesserr.New(witnesserr.InconsistentRaw, p.Handle,
			fmt.Sprintf("cannot resize to height %d smaller than natural height %d", h, cur))
	}

	for i := range p.A {
		p.A[i] = padColumn(p.A[i], h)
	}

	for i := range p.B {
		p.B[i] = padColumn(p.B[i], h)
	}

	return nil
}
