package primitives

// LetterCounts holds the number of occurrences of each letter 'a' thru 'z' in a word.
type LetterCounts [numChars]uint8

// CountLetters counts the letters of w. Bytes outside a-z are not counted.
func CountLetters(w string) LetterCounts {
	var cts LetterCounts
	for i := 0; i < len(w); i++ {
		if InRange(rune(w[i])) {
			cts[w[i]-minChar]++
		}
	}
	return cts
}

// Of returns the number of occurrences of r.
func (lc *LetterCounts) Of(r rune) int {
	if !InRange(r) {
		return 0
	}
	return int(lc[r-minChar])
}

// Inc records one more occurrence of r. Characters outside a-z are ignored.
func (lc *LetterCounts) Inc(r rune) {
	if InRange(r) {
		lc[r-minChar]++
	}
}

// Dec removes one occurrence of r, stopping at zero.
func (lc *LetterCounts) Dec(r rune) {
	if InRange(r) && lc[r-minChar] > 0 {
		lc[r-minChar]--
	}
}

// Letters returns the set of letters occurring at least once.
func (lc *LetterCounts) Letters() CharSet {
	var c CharSet
	for i, n := range lc {
		if n > 0 {
			c.bits |= 1 << uint(i)
		}
	}
	return c
}
