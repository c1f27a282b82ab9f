package wordle

import (
	"errors"
	"fmt"
	"strings"

	"crosswarped.com/wordle/pkg/primitives"
)

// WordLength is the number of letters in every word of the game.
const WordLength = 5

// ErrInvalidInputLength is returned when a guess or its feedback does not
// have exactly WordLength positions.
var ErrInvalidInputLength = errors.New("invalid input length")

// LetterMark is the feedback the game gives for a single guessed letter.
type LetterMark int

const (
	// Absent means the letter does not occur, or occurs fewer times than it was guessed.
	Absent LetterMark = iota
	// Present means the letter occurs, but not at this position.
	Present
	// Correct means the letter occurs at exactly this position.
	Correct
)

func (m LetterMark) String() string {
	switch m {
	case Correct:
		return "Correct"
	case Present:
		return "Present"
	default:
		return "Absent"
	}
}

// Symbol returns the feedback character for m: 'g', 'y' or '.'.
func (m LetterMark) Symbol() byte {
	switch m {
	case Correct:
		return 'g'
	case Present:
		return 'y'
	default:
		return '.'
	}
}

// ParseMarks maps user feedback to one LetterMark per character.
//
// 'g' and 'G' are Correct, 'y' and 'Y' are Present. Everything else, including
// characters that mean nothing to us, is Absent.
func ParseMarks(feedback string) []LetterMark {
	marks := make([]LetterMark, 0, len(feedback))
	for _, r := range feedback {
		switch r {
		case 'g', 'G':
			marks = append(marks, Correct)
		case 'y', 'Y':
			marks = append(marks, Present)
		default:
			marks = append(marks, Absent)
		}
	}
	return marks
}

// FormatMarks is the inverse of ParseMarks, using '.' for Absent.
func FormatMarks(marks []LetterMark) string {
	var b strings.Builder
	b.Grow(len(marks))
	for _, m := range marks {
		b.WriteByte(m.Symbol())
	}
	return b.String()
}

// Constraint is everything a single guess tells us about the answer.
type Constraint struct {
	// Confirmed[i] is the letter required at position i, or 0 if unknown.
	Confirmed [WordLength]rune
	// ExcludedAt[i] holds letters known to be in the word but not at position i.
	ExcludedAt [WordLength]primitives.CharSet
	// MustContain holds every letter marked Correct or Present.
	MustContain primitives.CharSet
	// MaxCount bounds the occurrences of each letter that was marked Absent at
	// least once. Letters never marked Absent have no entry.
	MaxCount map[rune]int
	// Impossible is set when a Correct or Present mark fell on a character
	// outside a-z. No word satisfies such a constraint.
	Impossible bool
}

// Normalize turns a guess and its feedback into a Constraint.
//
// The guess is lowercased. Both guess and marks must have WordLength entries.
// Characters outside a-z are accepted: marked Absent they bound nothing, marked
// Correct or Present they make the constraint Impossible.
func Normalize(guess string, marks []LetterMark) (Constraint, error) {
	guess = strings.ToLower(guess)
	if len(guess) != WordLength || len(marks) != WordLength {
		return Constraint{}, fmt.Errorf("%w: guess %q has %d letters and %d marks, want %d",
			ErrInvalidInputLength, guess, len(guess), len(marks), WordLength)
	}

	var c Constraint
	var earned primitives.LetterCounts // Correct and Present marks per letter.
	var absent primitives.CharSet

	// First classify each position; Absent marks can only be interpreted once
	// every Correct and Present mark of this guess is known.
	for i, m := range marks {
		r := rune(guess[i])
		if !primitives.InRange(r) {
			if m == Correct {
				c.Confirmed[i] = r
			}
			if m == Correct || m == Present {
				c.Impossible = true
			}
			continue
		}
		switch m {
		case Correct:
			c.Confirmed[i] = r
			c.MustContain.Add(r)
			earned.Inc(r)
		case Present:
			c.ExcludedAt[i].Add(r)
			c.MustContain.Add(r)
			earned.Inc(r)
		default:
			absent.Add(r)
		}
	}

	// An Absent letter occurs exactly as often as it earned Correct or Present
	// marks, which is zero for a letter that earned none.
	if !absent.IsEmpty() {
		c.MaxCount = make(map[rune]int, absent.Count())
		for r := range absent.All() {
			c.MaxCount[r] = earned.Of(r)
		}
	}

	return c, nil
}

// NormalizeFeedback is Normalize with the feedback given as user symbols.
func NormalizeFeedback(guess, feedback string) (Constraint, error) {
	return Normalize(guess, ParseMarks(feedback))
}

// Observation is one guess together with the feedback the game gave for it.
type Observation struct {
	Guess string
	Marks []LetterMark
}

// Constraint normalizes the observation.
func (o Observation) Constraint() (Constraint, error) {
	return Normalize(o.Guess, o.Marks)
}

func (o Observation) String() string {
	return fmt.Sprintf("%s %s", o.Guess, FormatMarks(o.Marks))
}

// Score returns the feedback the game would give for guess if the answer were answer.
//
// Correct letters are assigned first; each remaining guess letter, left to
// right, is Present while unmatched copies of it remain in the answer.
func Score(guess, answer string) ([]LetterMark, error) {
	guess, answer = strings.ToLower(guess), strings.ToLower(answer)
	if len(guess) != WordLength || len(answer) != WordLength {
		return nil, fmt.Errorf("%w: cannot score %q against %q", ErrInvalidInputLength, guess, answer)
	}

	marks := make([]LetterMark, WordLength)
	var unmatched primitives.LetterCounts
	for i := range WordLength {
		if guess[i] == answer[i] {
			marks[i] = Correct
		} else {
			unmatched.Inc(rune(answer[i]))
		}
	}
	for i := range WordLength {
		if marks[i] == Correct {
			continue
		}
		r := rune(guess[i])
		if unmatched.Of(r) > 0 {
			marks[i] = Present
			unmatched.Dec(r)
		}
	}
	return marks, nil
}

func (c Constraint) String() string {
	var s strings.Builder
	for i := range WordLength {
		fmt.Fprintf(&s, "%d:", i)
		if c.Confirmed[i] != 0 {
			fmt.Fprintf(&s, " +%c", c.Confirmed[i])
		}
		for r := range c.ExcludedAt[i].All() {
			fmt.Fprintf(&s, " ~%c", r)
		}
		s.WriteByte('\n')
	}
	fmt.Fprintf(&s, "contains %s", c.MustContain)
	var bounded primitives.CharSet
	for r := range c.MaxCount {
		bounded.Add(r)
	}
	for r := range bounded.All() {
		fmt.Fprintf(&s, " %c<=%d", r, c.MaxCount[r])
	}
	if c.Impossible {
		s.WriteString(" impossible")
	}
	return s.String()
}
