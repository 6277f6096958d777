package trace

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/consensys/witness-air/air"
	"github.com/consensys/witness-air/field"
	"github.com/consensys/witness-air/rawtrace"
)

// Batch is the top-level witness-generation driver: it takes every raw
// lookup and permutation argument belonging to one trace, resizes them all
// to a common height, and builds the composite Matrix and AIR in a fixed
// order (lookups first, then permutations, each in the order given) so that
// two runs over the same input always produce byte-identical column
// layouts.
type Batch struct {
	Lookups      []*rawtrace.Lookup
	Permutations []*rawtrace.Permutation
	Alpha        field.Element
	Delta        field.Element
	Log          *logrus.Logger
}

// Result is the output of a Batch run: the composite matrix and the AIR
// whose Eval checks it.
type Result struct {
	Matrix *Matrix
	AIR    *air.AIR
}

// Run computes the common height, resizes every argument to it, and builds
// the witness. A parallel precomputeInverses pass, one goroutine per
// argument, runs first; every auxiliary column is then computed and
// appended to the shared Matrix sequentially, in argument order, so trace
// layout never depends on goroutine scheduling.
func (b *Batch) Run() (*Result, error) {
	log := b.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	height, err := b.commonHeight()
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"height":       height,
		"lookups":      len(b.Lookups),
		"permutations": len(b.Permutations),
	}).Debug("witness: resolved trace height")

	for _, l := range b.Lookups {
		if err := l.ResizeTo(height); err != nil {
			return nil, err
		}
	}

	for _, p := range b.Permutations {
		if err := p.ResizeTo(height); err != nil {
			return nil, err
		}
	}

	if err := b.precomputeInverses(); err != nil {
		return nil, err
	}

	builder := New(height, b.Alpha, b.Delta)
	ai := air.New()

	for _, l := range b.Lookups {
		cfg, err := builder.PushLookup(l)
		if err != nil {
			log.WithError(err).WithField("handle", l.Handle).Warn("witness: lookup witness failed")
			return nil, err
		}

		ai.Push(cfg)
	}

	for _, p := range b.Permutations {
		cfg, err := builder.PushPermutation(p)
		if err != nil {
			log.WithError(err).WithField("handle", p.Handle).Warn("witness: permutation witness failed")
			return nil, err
		}

		ai.Push(cfg)
	}

	return &Result{Matrix: builder.Finalize(), AIR: ai}, nil
}

// commonHeight returns the maximum natural height across every argument in
// the batch.
func (b *Batch) commonHeight() (int, error) {
	height := 0

	for _, l := range b.Lookups {
		h, err := l.Height()
		if err != nil {
			return 0, err
		}

		if h > height {
			height = h
		}
	}

	for _, p := range b.Permutations {
		h, err := p.Height()
		if err != nil {
			return 0, err
		}

		if h > height {
			height = h
		}
	}

	return height, nil
}

// precomputeInverses computes, in parallel with one goroutine per
// argument, the (rowValue+delta)^-1 column of each lookup's A-side and of
// each permutation's B-side, and discards the results. Its effect on Run is
// that an InverseOfZero on those columns is reported before any column is
// appended; lookup B-side inverses are not computed here, and the
// sequential PushLookup/PushPermutation pass recomputes every inverse
// column itself.
func (b *Batch) precomputeInverses() error {
	var wg sync.WaitGroup

	errs := make([]error, len(b.Lookups)+len(b.Permutations))

	for i, l := range b.Lookups {
		wg.Add(1)

		go func(i int, l *rawtrace.Lookup) {
			defer wg.Done()

			h, err := l.Height()
			if err != nil {
				errs[i] = err
				return
			}

			_, errs[i] = inverseColumn(b.Alpha, b.Delta, l.A, h, l.Handle)
		}(i, l)
	}

	for i, p := range b.Permutations {
		wg.Add(1)

		go func(i int, p *rawtrace.Permutation) {
			defer wg.Done()

			h, err := p.Height()
			if err != nil {
				errs[len(b.Lookups)+i] = err
				return
			}

			_, errs[len(b.Lookups)+i] = inverseColumn(b.Alpha, b.Delta, p.B, h, p.Handle)
		}(i, p)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
