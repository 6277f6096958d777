package air

import "github.com/consensys/witness-air/field"

// PermutationConfig is the index descriptor for a grand-product
// permutation argument. A-columns and B-columns both have width w; the
// running product lives in Check, and BInverse caches (bRow+delta)^-1 so
// the running-product update is a multiplication, not a division.
type PermutationConfig struct {
	HandleName  string
	AColumnsIDs []int
	BColumnsIDs []int
	BInverseID  int
	CheckID     int
}

// Handle implements Config.
func (c PermutationConfig) Handle() string { return c.HandleName }

// Width implements Config: 2*w + 2 (A-columns, B-columns, BInverse, Check).
func (c PermutationConfig) Width() int {
	return len(c.AColumnsIDs) + len(c.BColumnsIDs) + 2
}

// Shift implements Config.
func (c PermutationConfig) Shift(offset int) Config {
	return PermutationConfig{
		HandleName:  c.HandleName,
		AColumnsIDs: shiftAll(c.AColumnsIDs, offset),
		BColumnsIDs: shiftAll(c.BColumnsIDs, offset),
		BInverseID:  c.BInverseID + offset,
		CheckID:     c.CheckID + offset,
	}
}

// Eval implements Config, emitting the four constraint families of a
// grand-product permutation argument:
//
//  1. every row: (bRow+delta)*bInverse = 1
//  2. first row: check = (aRow+delta)*bInverse
//  3. transition: next.check = local.check*(aRow'+delta)*next.bInverse
//  4. last row: check = 1
func (c PermutationConfig) Eval(rowIdx, height int, local, next RowReader, alpha, delta field.Element, asserter Asserter) {
	one := field.One()

	bRow := field.Horner(alpha, readCols(local, c.BColumnsIDs))
	bCheck := bRow.Add(delta).Mul(local.At(c.BInverseID)).Sub(one)
	asserter.WhenFirstRow(c.HandleName+"/b_inverse", bCheck)
	asserter.WhenTransition(c.HandleName+"/b_inverse", bCheck)
	asserter.WhenLastRow(c.HandleName+"/b_inverse", bCheck)

	aRow := field.Horner(alpha, readCols(local, c.AColumnsIDs))
	initCheck := local.At(c.CheckID).Sub(aRow.Add(delta).Mul(local.At(c.BInverseID)))
	asserter.WhenFirstRow(c.HandleName+"/check_init", initCheck)

	if rowIdx < height-1 && next != nil {
		nextARow := field.Horner(alpha, readCols(next, c.AColumnsIDs))
		step := nextARow.Add(delta).Mul(next.At(c.BInverseID)).Mul(local.At(c.CheckID))
		diff := next.At(c.CheckID).Sub(step)
		asserter.WhenTransition(c.HandleName+"/check_step", diff)
	}

	asserter.WhenLastRow(c.HandleName+"/check_terminal", local.At(c.CheckID).Sub(one))
}
