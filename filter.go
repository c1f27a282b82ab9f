package wordle

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"crosswarped.com/wordle/internal/index"
	"crosswarped.com/wordle/pkg/primitives"
)

// Admits reports whether word is consistent with the constraint.
func (c Constraint) Admits(word string) bool {
	if c.Impossible || len(word) != WordLength {
		return false
	}

	for i := range WordLength {
		r := rune(word[i])
		if want := c.Confirmed[i]; want != 0 && r != want {
			return false
		}
		if c.ExcludedAt[i].Contains(r) {
			return false
		}
	}

	cts := primitives.CountLetters(word)
	letters := cts.Letters()
	if !c.MustContain.SubsetOf(letters) {
		return false
	}
	for r, n := range c.MaxCount {
		if cts.Of(r) > n {
			return false
		}
	}
	// A letter excluded at a position must still turn up somewhere else.
	for i := range WordLength {
		if !c.ExcludedAt[i].SubsetOf(letters) {
			return false
		}
	}
	return true
}

// Reduce returns the words of pool admitted by c, in their original order.
// pool is not modified.
func Reduce(pool []string, c Constraint) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if c.Admits(w) {
			out = append(out, w)
		}
	}
	return out
}

// ReduceParallel is Reduce with the pool split across workers goroutines.
// The result is identical to Reduce. workers <= 0 means GOMAXPROCS.
func ReduceParallel(ctx context.Context, pool []string, c Constraint, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(pool) + workers - 1) / workers
	if chunk == 0 {
		return []string{}, ctx.Err()
	}

	parts := make([][]string, 0, workers)
	for start := 0; start < len(pool); start += chunk {
		parts = append(parts, pool[start:min(start+chunk, len(pool))])
	}

	results := make([][]string, len(parts))
	g, ctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Reduce(part, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, r := range results {
		n += len(r)
	}
	out := make([]string, 0, n)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// Outcome describes where a candidate pool stands.
type Outcome int

const (
	// Searching means more than one candidate remains.
	Searching Outcome = iota
	// Solved means exactly one candidate remains.
	Solved
	// Contradiction means no candidate is consistent with the evidence.
	Contradiction
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Contradiction:
		return "contradiction"
	default:
		return "searching"
	}
}

// Classify reports whether pool is solved, contradictory or still open.
func Classify(pool []string) Outcome {
	switch len(pool) {
	case 0:
		return Contradiction
	case 1:
		return Solved
	default:
		return Searching
	}
}

// IndexedPool is a word pool with a precomputed letter-position index. Reduce
// returns the same words as the package-level Reduce.
type IndexedPool struct {
	ix *index.Index
}

// NewIndexedPool indexes words. words must not be modified afterwards.
func NewIndexedPool(ctx context.Context, words []string) (*IndexedPool, error) {
	wordLength := WordLength
	ix, err := index.Build(ctx, index.Params{
		Words:      words,
		WordLength: &wordLength,
	})
	if err != nil {
		return nil, fmt.Errorf("index.Build: %w", err)
	}
	return &IndexedPool{ix: ix}, nil
}

// Len returns the size of the indexed pool.
func (p *IndexedPool) Len() int {
	return p.ix.Len()
}

// Reduce returns the indexed words admitted by c, in their original order.
func (p *IndexedPool) Reduce(c Constraint) []string {
	if c.Impossible {
		return []string{}
	}
	return p.ix.Reduce(index.Query{
		Confirmed:   c.Confirmed[:],
		ExcludedAt:  c.ExcludedAt[:],
		MustContain: c.MustContain,
		MaxCount:    c.MaxCount,
	})
}
