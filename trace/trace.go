// Package trace lays raw lookup and permutation tables (package rawtrace)
// out on a single column-major matrix, computes their auxiliary witness
// columns (inverses, multiplicities, running sums/products), and produces
// the air.Config descriptors that assert those columns are correct.
package trace

import (
	"github.com/consensys/witness-air/air"
	"github.com/consensys/witness-air/field"
)

// Matrix is the composite witness: height rows of field elements, one
// column per entry in Columns, column-major as is conventional for
// arithmetization (each constraint reads across one row, but columns are
// filled independently and often at different times).
type Matrix struct {
	Columns [][]field.Element
	Height  int
}

// Width returns the number of columns.
func (m *Matrix) Width() int {
	return len(m.Columns)
}

// Row is a view onto one row of a Matrix, implementing air.RowReader.
type Row struct {
	m   *Matrix
	idx int
}

// At implements air.RowReader.
func (r Row) At(col int) field.Element {
	return r.m.Columns[col][r.idx]
}

// RowAt returns a Row view of the matrix at idx.
func (m *Matrix) RowAt(idx int) Row {
	return Row{m: m, idx: idx}
}

var _ air.RowReader = Row{}

// Evaluate drives cfg over every row of m with the given challenges,
// recording every non-zero assertion via a DebugAsserter. It is the
// reference way to check that a built Matrix actually satisfies its AIR,
// used by tests and by cmd/witnessgen's --verify flag.
func Evaluate(cfg *air.AIR, m *Matrix, alpha, delta field.Element) *air.DebugAsserter {
	d := air.NewDebugAsserter(m.Height)

	for i := 0; i < m.Height; i++ {
		d.StartRow(i)

		local := m.RowAt(i)

		var next air.RowReader
		if i < m.Height-1 {
			n := m.RowAt(i + 1)
			next = n
		}

		cfg.Eval(i, m.Height, local, next, alpha, delta, d)
	}

	return d
}
