package primitives

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// CharSet efficiently represents a set of lowercase letters using bit manipulation.
// It supports characters from 'a' to 'z', which fits in a uint32.
//
// The zero value is an empty set ready to use.
type CharSet struct {
	bits uint32
}

const (
	minChar  = 'a'
	maxChar  = 'z'
	numChars = maxChar - minChar + 1
)

// NewCharSet creates a set holding the given letters. Characters outside a-z
// are ignored.
func NewCharSet(letters ...rune) CharSet {
	var c CharSet
	for _, r := range letters {
		c.Add(r)
	}
	return c
}

// InRange reports whether r can be stored in a CharSet.
func InRange(r rune) bool {
	return r >= minChar && r <= maxChar
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !InRange(r) {
		return fmt.Errorf("character %q is out of range", r)
	}
	c.bits |= 1 << uint(r-minChar)
	return nil
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other CharSet) {
	c.bits |= other.bits
}

// Contains checks if a character is in the set.
func (c CharSet) Contains(r rune) bool {
	if !InRange(r) {
		return false
	}
	return c.bits&(1<<uint(r-minChar)) != 0
}

// IsEmpty reports whether the set holds no characters.
func (c CharSet) IsEmpty() bool {
	return c.bits == 0
}

// Count returns the number of characters in the set.
func (c CharSet) Count() int {
	return bits.OnesCount32(c.bits)
}

// SubsetOf reports whether every character of c is also in other.
func (c CharSet) SubsetOf(other CharSet) bool {
	return c.bits&^other.bits == 0
}

// Equal reports whether both sets hold the same characters. go-cmp uses it to
// compare values holding a CharSet.
func (c CharSet) Equal(other CharSet) bool {
	return c.bits == other.bits
}

// All iterates over the characters of the set in alphabetical order.
func (c CharSet) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		rest := c.bits
		for rest != 0 {
			i := bits.TrailingZeros32(rest)
			if !yield(rune(minChar + i)) {
				return
			}
			rest &^= 1 << uint(i)
		}
	}
}

// String returns the letters of the set in alphabetical order, e.g. "{a, n}".
func (c CharSet) String() string {
	var chars []string
	for r := range c.All() {
		chars = append(chars, string(r))
	}
	return "{" + strings.Join(chars, ", ") + "}"
}
