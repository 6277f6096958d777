package trace

import (
	"fmt"
	"strings"

	"github.com/consensys/witness-air/air"
	"github.com/consensys/witness-air/field"
	"github.com/consensys/witness-air/internal/occmap"
	"github.com/consensys/witness-air/rawtrace"
	"github.com/consensys/witness-air/witnesserr"
)

// Builder accumulates columns for a single composite Matrix, handing back
// an absolute column index for everything it registers, then computes each
// pushed argument's auxiliary witness columns (inverses, multiplicities,
// running sums/products) against them.
type Builder struct {
	height int
	alpha  field.Element
	delta  field.Element
	cols   [][]field.Element
}

// New constructs a Builder for a trace of the given height and public
// Fiat–Shamir challenges (alpha, delta). Every raw table pushed into this
// builder must already be resized to height (see rawtrace.Lookup.ResizeTo /
// rawtrace.Permutation.ResizeTo); the Batch driver in batch.go handles that.
func New(height int, alpha, delta field.Element) *Builder {
	return &Builder{height: height, alpha: alpha, delta: delta}
}

func (b *Builder) addColumn(col []field.Element) int {
	idx := len(b.cols)
	b.cols = append(b.cols, col)

	return idx
}

// rowValue Horner-folds a set of raw columns at row i.
func rowValue(alpha field.Element, cols []rawtrace.Column, i int) field.Element {
	vals := make([]field.Element, len(cols))
	for j, c := range cols {
		vals[j] = c[i]
	}

	return field.Horner(alpha, vals)
}

// inverseColumn computes (rowValue(cols[i])+delta)^-1 for every row,
// returning witnesserr.InverseOfZero (wrapping the handle) the first time
// that sum is zero.
func inverseColumn(alpha, delta field.Element, cols []rawtrace.Column, height int, handle string) ([]field.Element, error) {
	out := make([]field.Element, height)

	for i := 0; i < height; i++ {
		sum := rowValue(alpha, cols, i).Add(delta)

		inv, err := sum.Inv()
		if err != nil {
			return nil, witnesserr.Wrap(witnesserr.InverseOfZero, handle,
				fmt.Errorf("row %d: %w", i, err))
		}

		out[i] = inv
	}

	return out, nil
}

// PushLookup lays l's columns onto the matrix and computes its auxiliary
// witness columns (inverses, multiplicities, running log-derivative sum),
// returning the air.Config that asserts they are correct. l must already be
// resized to b.height.
func (b *Builder) PushLookup(l *rawtrace.Lookup) (air.Config, error) {
	h, err := l.Height()
	if err != nil {
		return nil, err
	}

	if h != b.height {
		return nil, witnesserr.New(witnesserr.WidthMismatch, l.Handle,
			fmt.Sprintf("lookup height %d does not match trace height %d", h, b.height))
	}

	cfg := air.LookupConfig{HandleName: l.Handle}

	// Canonical physical column order: A-values, (B-values per side),
	// a_filter, (b_filter per side), a_inverses, (b_inverses per side),
	// (multiplicities per side), prefix-sum. Every auxiliary column is
	// computed ahead of the append loop that needs it, so the append order
	// below is exactly the column order regardless of computation order.
	for _, c := range l.A {
		cfg.AColumnsIDs = append(cfg.AColumnsIDs, b.addColumn(c))
	}

	cfg.BColumnsIDs = make([][]int, len(l.B))

	for s := range l.B {
		var bCols []int
		for _, c := range l.B[s].Columns {
			bCols = append(bCols, b.addColumn(c))
		}

		cfg.BColumnsIDs[s] = bCols
	}

	cfg.AFilterID = b.addColumn(l.AFilter)

	for s := range l.B {
		cfg.BFilterIDs = append(cfg.BFilterIDs, b.addColumn(l.B[s].Filter))
	}

	aInv, err := inverseColumn(b.alpha, b.delta, l.A, b.height, l.Handle)
	if err != nil {
		return nil, err
	}

	cfg.AInversesID = b.addColumn(aInv)

	for s := range l.B {
		bInv, err := inverseColumn(b.alpha, b.delta, l.B[s].Columns, b.height, l.Handle)
		if err != nil {
			return nil, err
		}

		cfg.BInversesIDs = append(cfg.BInversesIDs, b.addColumn(bInv))
	}

	// Multiplicity build: count every active A-row's folded value, then
	// claim each occurrence on the first active B-row (across sides, in
	// side-then-row order) where that value appears.
	occ := occmap.New()

	for i := 0; i < b.height; i++ {
		if l.AFilter[i].IsZero() {
			continue
		}

		occ.Add(rowValue(b.alpha, l.A, i))
	}

	for s := range l.B {
		side := l.B[s]
		mult := make([]field.Element, b.height)

		for i := 0; i < b.height; i++ {
			if side.Filter[i].IsZero() {
				mult[i] = field.Zero()
				continue
			}

			count, ok := occ.TakeAndRemove(rowValue(b.alpha, side.Columns, i))
			if ok {
				mult[i] = field.FromUint64(uint64(count))
			} else {
				mult[i] = field.Zero()
			}
		}

		cfg.OccurrencesIDs = append(cfg.OccurrencesIDs, b.addColumn(mult))
	}

	check := make([]field.Element, b.height)
	check[0] = lookupDelta(&cfg, b, l, 0)

	for i := 1; i < b.height; i++ {
		check[i] = check[i-1].Add(lookupDelta(&cfg, b, l, i))
	}

	if !check[b.height-1].IsZero() {
		return nil, witnesserr.New(witnesserr.InvariantViolated, l.Handle,
			"running log-derivative sum did not return to zero at the last row")
	}

	cfg.CheckID = b.addColumn(check)

	return cfg, nil
}

// lookupDelta recomputes the per-row delta term directly from the raw
// columns rather than via air.LookupConfig.Eval's RowReader path, since at
// build time the auxiliary columns the Config reads are exactly the ones
// being computed here.
func lookupDelta(cfg *air.LookupConfig, b *Builder, l *rawtrace.Lookup, i int) field.Element {
	aInv := b.cols[cfg.AInversesID][i]
	d := l.AFilter[i].Mul(aInv)

	for s := range l.B {
		side := l.B[s]
		mult := b.cols[cfg.OccurrencesIDs[s]][i]
		bInv := b.cols[cfg.BInversesIDs[s]][i]
		d = d.Sub(side.Filter[i].Mul(mult).Mul(bInv))
	}

	return d
}

// PushPermutation lays p's columns onto the matrix and computes its
// auxiliary witness columns (B-side inverse, running product), returning
// the air.Config that asserts they are correct. p must already be resized
// to b.height.
func (b *Builder) PushPermutation(p *rawtrace.Permutation) (air.Config, error) {
	h, err := p.Height()
	if err != nil {
		return nil, err
	}

	if h != b.height {
		return nil, witnesserr.New(witnesserr.WidthMismatch, p.Handle,
			fmt.Sprintf("permutation height %d does not match trace height %d", h, b.height))
	}

	cfg := air.PermutationConfig{HandleName: p.Handle}

	for _, c := range p.A {
		cfg.AColumnsIDs = append(cfg.AColumnsIDs, b.addColumn(c))
	}

	for _, c := range p.B {
		cfg.BColumnsIDs = append(cfg.BColumnsIDs, b.addColumn(c))
	}

	bInv, err := inverseColumn(b.alpha, b.delta, p.B, b.height, p.Handle)
	if err != nil {
		return nil, err
	}

	cfg.BInverseID = b.addColumn(bInv)

	check := make([]field.Element, b.height)
	check[0] = rowValue(b.alpha, p.A, 0).Add(b.delta).Mul(bInv[0])

	for i := 1; i < b.height; i++ {
		step := rowValue(b.alpha, p.A, i).Add(b.delta).Mul(bInv[i])
		check[i] = check[i-1].Mul(step)
	}

	if !check[b.height-1].Equal(field.One()) {
		return nil, witnesserr.New(witnesserr.InvariantViolated, p.Handle,
			"running product did not return to one at the last row")
	}

	cfg.CheckID = b.addColumn(check)

	return cfg, nil
}

// Finalize returns the completed Matrix. Callers must not push further
// arguments afterwards.
func (b *Builder) Finalize() *Matrix {
	return &Matrix{Columns: b.cols, Height: b.height}
}

// Describe renders a one-line-per-argument summary of every Config pushed
// into ai so far: its handle, kind, and the absolute column range it
// claims. Useful for diagnosing a width mismatch or confirming the
// partition-of-columns invariant holds.
func Describe(ai *air.AIR) string {
	var sb strings.Builder

	offset := 0

	for _, cfg := range ai.Configs() {
		kind := "lookup"
		if _, ok := cfg.(air.PermutationConfig); ok {
			kind = "permutation"
		}

		fmt.Fprintf(&sb, "%s [%s] columns [%d, %d)\n", cfg.Handle(), kind, offset, offset+cfg.Width())
		offset += cfg.Width()
	}

	return sb.String()
}
