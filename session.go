package wordle

import (
	"context"
	"slices"
)

// Session tracks the candidate pool across rounds of one game.
//
// The filter itself is stateless; Session is the caller-owned state that the
// interactive hosts thread between rounds.
type Session struct {
	round      int
	candidates []string
	history    []Observation

	workers        int
	indexThreshold int
	indexed        *IndexedPool
}

type SessionParams struct {
	// Workers used per round by ReduceParallel; 0 or 1 filters on the calling goroutine.
	Workers int
	// IndexThreshold is the pool size from which the first round goes through an
	// IndexedPool. Zero disables the index.
	IndexThreshold int
}

// CreateSession starts a game over words. words is copied.
func CreateSession(words []string, params SessionParams) *Session {
	return &Session{
		round:          1,
		candidates:     slices.Clone(words),
		workers:        params.Workers,
		indexThreshold: params.IndexThreshold,
	}
}

// Round returns the 1-based number of the round awaiting an observation.
func (s *Session) Round() int {
	return s.round
}

// Candidates returns a copy of the words still consistent with every
// observation so far.
func (s *Session) Candidates() []string {
	return slices.Clone(s.candidates)
}

// History returns a copy of the observations applied so far, oldest first.
func (s *Session) History() []Observation {
	return slices.Clone(s.history)
}

// Outcome classifies the current candidates.
func (s *Session) Outcome() Outcome {
	return Classify(s.candidates)
}

// Apply narrows the candidates with one guess and its feedback symbols. On
// error the session is left unchanged.
func (s *Session) Apply(ctx context.Context, guess, feedback string) (Outcome, error) {
	return s.ApplyObservation(ctx, Observation{Guess: guess, Marks: ParseMarks(feedback)})
}

// ApplyObservation is Apply with the feedback already mapped to marks.
func (s *Session) ApplyObservation(ctx context.Context, o Observation) (Outcome, error) {
	c, err := o.Constraint()
	if err != nil {
		return s.Outcome(), err
	}

	next, err := s.reduce(ctx, c)
	if err != nil {
		return s.Outcome(), err
	}

	s.candidates = next
	s.history = append(s.history, o)
	s.round++
	return s.Outcome(), nil
}

func (s *Session) reduce(ctx context.Context, c Constraint) ([]string, error) {
	// The index only describes the initial pool, so it can serve the first round alone.
	if len(s.history) == 0 && s.indexThreshold > 0 && len(s.candidates) >= s.indexThreshold {
		if s.indexed == nil {
			ix, err := NewIndexedPool(ctx, s.candidates)
			if err != nil {
				return nil, err
			}
			s.indexed = ix
		}
		return s.indexed.Reduce(c), nil
	}
	if s.workers > 1 {
		return ReduceParallel(ctx, s.candidates, c, s.workers)
	}
	return Reduce(s.candidates, c), nil
}
