package air

import "github.com/consensys/witness-air/field"

// LookupConfig is the index descriptor for a log-derivative lookup
// argument. Every field is an absolute column index once the descriptor
// has been shifted by the trace builder.
type LookupConfig struct {
	// HandleName identifies the argument this descriptor belongs to.
	HandleName string
	// AColumnsIDs are the A-side value columns, in canonical (Horner) order.
	AColumnsIDs []int
	// BColumnsIDs holds, per B-side, that side's value columns in canonical
	// order.
	BColumnsIDs [][]int
	// AFilterID is the A-side filter column.
	AFilterID int
	// BFilterIDs holds, per B-side, that side's filter column.
	BFilterIDs []int
	// AInversesID is the (aRow+delta)^-1 column.
	AInversesID int
	// BInversesIDs holds, per B-side, that side's (bRow+delta)^-1 column.
	BInversesIDs []int
	// OccurrencesIDs holds, per B-side, that side's multiplicity column.
	OccurrencesIDs []int
	// CheckID is the single running log-derivative sum column, shared
	// across all B-sides of this lookup.
	CheckID int
}

// Handle implements Config.
func (c LookupConfig) Handle() string { return c.HandleName }

// Width implements Config:
// |a_cols| + Σ|b_side_cols| + 1 + |sides| + 1 + |sides| + |sides| + 1.
func (c LookupConfig) Width() int {
	w := len(c.AColumnsIDs) + 1 + len(c.BFilterIDs) + 1 + len(c.BInversesIDs) + len(c.OccurrencesIDs) + 1

	for _, bc := range c.BColumnsIDs {
		w += len(bc)
	}

	return w
}

// Shift implements Config.
func (c LookupConfig) Shift(offset int) Config {
	shifted := LookupConfig{
		HandleName:     c.HandleName,
		AColumnsIDs:    shiftAll(c.AColumnsIDs, offset),
		AFilterID:      c.AFilterID + offset,
		AInversesID:    c.AInversesID + offset,
		BFilterIDs:     shiftAll(c.BFilterIDs, offset),
		BInversesIDs:   shiftAll(c.BInversesIDs, offset),
		OccurrencesIDs: shiftAll(c.OccurrencesIDs, offset),
		CheckID:        c.CheckID + offset,
	}

	shifted.BColumnsIDs = make([][]int, len(c.BColumnsIDs))
	for s, bc := range c.BColumnsIDs {
		shifted.BColumnsIDs[s] = shiftAll(bc, offset)
	}

	return shifted
}

func shiftAll(ids []int, offset int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = id + offset
	}

	return out
}

func readCols(r RowReader, ids []int) []field.Element {
	out := make([]field.Element, len(ids))
	for i, id := range ids {
		out[i] = r.At(id)
	}

	return out
}

// delta computes one row's contribution to the running log-derivative sum
// (localDelta or nextDelta, depending on which RowReader is passed):
//
//	filterA*invA - Σ_s filterB_s*occurrences_s*invB_s
func (c LookupConfig) delta(row RowReader) field.Element {
	d := row.At(c.AFilterID).Mul(row.At(c.AInversesID))

	for s := range c.BColumnsIDs {
		term := row.At(c.BFilterIDs[s]).
			Mul(row.At(c.OccurrencesIDs[s])).
			Mul(row.At(c.BInversesIDs[s]))
		d = d.Sub(term)
	}

	return d
}

// Eval implements Config, emitting the five constraint families of a
// log-derivative lookup argument.
func (c LookupConfig) Eval(rowIdx, height int, local, next RowReader, alpha, delta field.Element, asserter Asserter) {
	one := field.One()

	// 1. Row-wise inverse soundness, every row.
	aRow := field.Horner(alpha, readCols(local, c.AColumnsIDs))
	aCheck := aRow.Add(delta).Mul(local.At(c.AInversesID)).Sub(one)
	asserter.WhenFirstRow(c.HandleName+"/a_inverse", aCheck)
	asserter.WhenTransition(c.HandleName+"/a_inverse", aCheck)
	asserter.WhenLastRow(c.HandleName+"/a_inverse", aCheck)

	for s := range c.BColumnsIDs {
		bRow := field.Horner(alpha, readCols(local, c.BColumnsIDs[s]))
		bCheck := bRow.Add(delta).Mul(local.At(c.BInversesIDs[s])).Sub(one)
		asserter.WhenFirstRow(c.HandleName+"/b_inverse", bCheck)
		asserter.WhenTransition(c.HandleName+"/b_inverse", bCheck)
		asserter.WhenLastRow(c.HandleName+"/b_inverse", bCheck)
	}

	// 2-3. First row: check = localDelta.
	localDelta := c.delta(local)
	asserter.WhenFirstRow(c.HandleName+"/check_init", local.At(c.CheckID).Sub(localDelta))

	// 4. Transition: next.check - local.check = nextDelta.
	if rowIdx < height-1 && next != nil {
		nextDelta := c.delta(next)
		diff := next.At(c.CheckID).Sub(local.At(c.CheckID)).Sub(nextDelta)
		asserter.WhenTransition(c.HandleName+"/check_step", diff)
	}

	// 5. Last row: check = 0.
	asserter.WhenLastRow(c.HandleName+"/check_terminal", local.At(c.CheckID))
}
