// Package air implements the constraint emitter: a list of per-argument
// index descriptors ("Config") whose combined width matches the trace,
// exposing a single Eval entry point that emits all first-row, transition,
// and last-row constraints against any algebraic backend through the
// Asserter interface.
package air

import "github.com/consensys/witness-air/field"

// RowReader gives read-only access to the field element at an absolute
// column index in one row of the trace.
type RowReader interface {
	At(col int) field.Element
}

// Asserter records algebraic equalities emitted by Eval, each gated by
// exactly one of three row selectors. An implementation backed by a real
// STARK backend would record these as symbolic polynomial assertions; a
// debug implementation (see air/debug.go) evaluates them immediately
// against a concrete witness.
type Asserter interface {
	// WhenFirstRow records that value must be zero, active only on row 0.
	WhenFirstRow(name string, value field.Element)
	// WhenTransition records that value must be zero, active on every row
	// except the last.
	WhenTransition(name string, value field.Element)
	// WhenLastRow records that value must be zero, active only on the last
	// row.
	WhenLastRow(name string, value field.Element)
}

// Config is the tagged-union index descriptor: either a LookupConfig or a
// PermutationConfig. Every Config's indices are absolute into the
// composite trace once returned by the trace builder.
type Config interface {
	// Handle names the argument this descriptor came from, for diagnostics.
	Handle() string
	// Width returns the number of physical columns this descriptor claims.
	Width() int
	// Shift returns a copy of this descriptor with every index increased by
	// offset, converting a locally-indexed descriptor (built against
	// [0, width)) into one absolute within the composite trace. The trace
	// builder assigns absolute indices directly and does not call Shift.
	Shift(offset int) Config
	// Eval emits this argument's constraints for the row pair (rowIdx,
	// rowIdx+1), given height as the total trace height, reading column
	// values via local/next and folding with the public challenges
	// (alpha, delta).
	Eval(rowIdx, height int, local, next RowReader, alpha, delta field.Element, asserter Asserter)
}

// AIR is the full constraint set: one Config per pushed argument, in the
// same append order the trace builder used. Its declared Width must equal
// the trace matrix width.
type AIR struct {
	configs []Config
	width   int
}

// New constructs an empty AIR.
func New() *AIR {
	return &AIR{}
}

// Push appends a (typically already-shifted) descriptor to the AIR.
func (a *AIR) Push(c Config) {
	a.configs = append(a.configs, c)
	a.width += c.Width()
}

// Width returns the sum of all pushed descriptors' widths.
func (a *AIR) Width() int {
	return a.width
}

// Configs returns the descriptors in append order.
func (a *AIR) Configs() []Config {
	return a.configs
}

// Eval emits every argument's constraints for the row pair (rowIdx,
// rowIdx+1) against asserter. Callers drive this once per row of the trace,
// rowIdx running from 0 to height-1; when rowIdx is the last row, next may
// be nil (WhenTransition is not active there, so Eval implementations must
// not dereference next unless rowIdx < height-1).
func (a *AIR) Eval(rowIdx, height int, local, next RowReader, alpha, delta field.Element, asserter Asserter) {
	for _, c := range a.configs {
		c.Eval(rowIdx, height, local, next, alpha, delta, asserter)
	}
}
