package air

import "github.com/consensys/witness-air/field"

// Failure records one non-zero assertion observed by DebugAsserter.
type Failure struct {
	Name  string
	Row   int
	Value field.Element
}

// DebugAsserter is an Asserter that evaluates every assertion immediately
// against a concrete witness, recording any that are non-zero. It never
// halts evaluation: the whole trace is checked and every violation reported,
// which is what makes it useful for diagnosing a broken witness rather than
// just learning that one exists.
type DebugAsserter struct {
	row      int
	height   int
	failures []Failure
}

// NewDebugAsserter constructs a DebugAsserter for a trace of the given
// height. Callers must call StartRow before each call to AIR.Eval.
func NewDebugAsserter(height int) *DebugAsserter {
	return &DebugAsserter{height: height}
}

// StartRow must be called with the current row index before each AIR.Eval
// call, so the asserter knows which selector(s) are active.
func (d *DebugAsserter) StartRow(row int) {
	d.row = row
}

// Failures returns every recorded non-zero assertion, in evaluation order.
func (d *DebugAsserter) Failures() []Failure {
	return d.failures
}

// Ok reports whether no assertion failed.
func (d *DebugAsserter) Ok() bool {
	return len(d.failures) == 0
}

func (d *DebugAsserter) record(name string, value field.Element) {
	if !value.IsZero() {
		d.failures = append(d.failures, Failure{Name: name, Row: d.row, Value: value})
	}
}

// WhenFirstRow implements Asserter: active only on row 0.
func (d *DebugAsserter) WhenFirstRow(name string, value field.Element) {
	if d.row == 0 {
		d.record(name, value)
	}
}

// WhenTransition implements Asserter: active on every row but the last.
func (d *DebugAsserter) WhenTransition(name string, value field.Element) {
	if d.row < d.height-1 {
		d.record(name, value)
	}
}

// WhenLastRow implements Asserter: active only on the last row.
func (d *DebugAsserter) WhenLastRow(name string, value field.Element) {
	if d.row == d.height-1 {
		d.record(name, value)
	}
}
