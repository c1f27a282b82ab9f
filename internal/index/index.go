// Package index precomputes letter-position bitsets over a word list so that
// a constraint can be applied with a handful of set operations instead of a
// scan of every word.
package index

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"crosswarped.com/wordle/pkg/primitives"
)

const numLetters = 26

type Params struct {
	Words []string
	// WordLength defaults to 5. Words of any other length are never matched.
	WordLength *int
}

type params struct {
	words      []string
	wordLength int
}

func asParams(p Params) (params, error) {
	pp := params{
		words:      p.Words,
		wordLength: 5,
	}
	if p.WordLength != nil {
		pp.wordLength = *p.WordLength
	}
	if pp.wordLength <= 0 {
		return params{}, fmt.Errorf("word length must be positive, got %d", pp.wordLength)
	}
	return pp, nil
}

// Index maps every (position, letter) and every (letter, minimum count) pair to
// the set of word indices satisfying it.
type Index struct {
	words      []string
	wordLength int

	// valid holds the words of the right length.
	valid *bitset.BitSet
	none  *bitset.BitSet

	// letters[i][c] is the set of words with letter c at position i.
	letters [][numLetters]*bitset.BitSet
	// atLeast[c][k] is the set of words with k+1 or more occurrences of letter c.
	atLeast [numLetters][]*bitset.BitSet
}

// Query is a constraint expressed in index terms. Slices are indexed by position.
type Query struct {
	Confirmed   []rune
	ExcludedAt  []primitives.CharSet
	MustContain primitives.CharSet
	MaxCount    map[rune]int
}

// Build indexes p.Words. The words slice is retained, not copied.
func Build(ctx context.Context, p Params) (*Index, error) {
	pp, err := asParams(p)
	if err != nil {
		return nil, err
	}

	n := uint(len(pp.words))
	ix := &Index{
		words:      pp.words,
		wordLength: pp.wordLength,
		valid:      bitset.New(n),
		none:       bitset.New(n),
		letters:    make([][numLetters]*bitset.BitSet, pp.wordLength),
	}

	for w, word := range pp.words {
		if w%4096 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if len(word) != pp.wordLength {
			continue
		}
		ix.valid.Set(uint(w))

		for i := 0; i < len(word); i++ {
			c := rune(word[i])
			if !primitives.InRange(c) {
				continue
			}
			set := ix.letters[i][c-'a']
			if set == nil {
				set = bitset.New(n)
				ix.letters[i][c-'a'] = set
			}
			set.Set(uint(w))
		}

		cts := primitives.CountLetters(word)
		for c := range cts.Letters().All() {
			for k := range cts.Of(c) {
				sets := ix.atLeast[c-'a']
				for len(sets) <= k {
					sets = append(sets, bitset.New(n))
				}
				sets[k].Set(uint(w))
				ix.atLeast[c-'a'] = sets
			}
		}
	}

	return ix, ctx.Err()
}

// Len returns the number of indexed words, including ones of the wrong length.
func (ix *Index) Len() int {
	return len(ix.words)
}

func (ix *Index) at(i int, c rune) *bitset.BitSet {
	if !primitives.InRange(c) || i >= ix.wordLength {
		return ix.none
	}
	if set := ix.letters[i][c-'a']; set != nil {
		return set
	}
	return ix.none
}

// withAtLeast returns the words containing k or more copies of c.
func (ix *Index) withAtLeast(c rune, k int) *bitset.BitSet {
	if k <= 0 {
		return ix.valid
	}
	if !primitives.InRange(c) {
		return ix.none
	}
	sets := ix.atLeast[c-'a']
	if k > len(sets) {
		return ix.none
	}
	return sets[k-1]
}

// Match returns the set of word indices satisfying q.
func (ix *Index) Match(q Query) *bitset.BitSet {
	ret := ix.valid.Clone()

	for i, c := range q.Confirmed {
		if c != 0 {
			ret.InPlaceIntersection(ix.at(i, c))
		}
	}

	// Letters excluded at a position are known to be in the word, just not there.
	required := q.MustContain
	for i, excluded := range q.ExcludedAt {
		required.AddAll(excluded)
		for c := range excluded.All() {
			ret.InPlaceDifference(ix.at(i, c))
		}
	}

	for c := range required.All() {
		ret.InPlaceIntersection(ix.withAtLeast(c, 1))
	}

	for c, n := range q.MaxCount {
		ret.InPlaceDifference(ix.withAtLeast(c, n+1))
	}

	return ret
}

// Words returns the words in set, in index order.
func (ix *Index) Words(set *bitset.BitSet) []string {
	out := make([]string, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, ix.words[i])
	}
	return out
}

// Reduce returns the words satisfying q, in index order.
func (ix *Index) Reduce(q Query) []string {
	return ix.Words(ix.Match(q))
}
