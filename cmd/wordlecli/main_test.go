package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/vyevs/ansi"

	"crosswarped.com/wordle"
)

var sample = []string{"crane", "slate", "plane", "trade", "grade", "brake"}

func playScript(t *testing.T, input, answer string, show int) string {
	t.Helper()
	var out strings.Builder
	a := &assistant{
		in:     bufio.NewScanner(strings.NewReader(input)),
		out:    &out,
		answer: answer,
		show:   show,
	}
	if err := a.play(t.Context(), wordle.CreateSession(sample, wordle.SessionParams{})); err != nil {
		t.Fatalf("play() error = %v", err)
	}
	return out.String()
}

func TestPlay_Solved(t *testing.T) {
	got := playScript(t, "crane\n.gg.g\ntrade\n.gg.g\n", "", 20)

	for _, want := range []string{
		"Remaining possible words: 3\ntrade, grade, brake\n",
		"Round 2",
		"Remaining possible words: 1",
		"Solution is likely: brake",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPlay_RepromptsOnBadLength(t *testing.T) {
	got := playScript(t, "cran\n.g.y.\ncrane\n.g.y.\n", "", 20)

	if !strings.Contains(got, "Please enter a 5-letter guess and feedback of length 5") {
		t.Errorf("output missing length warning:\n%s", got)
	}
	if strings.Contains(got, "Round 2") {
		t.Errorf("a rejected guess advanced the round:\n%s", got)
	}
	if !strings.Contains(got, "No candidates remain") {
		t.Errorf("output missing contradiction message:\n%s", got)
	}
}

func TestPlay_NonLetterGuess(t *testing.T) {
	got := playScript(t, "tr4de\ngg.gg\n", "", 20)
	if !strings.Contains(got, "Solution is likely: trade") {
		t.Errorf("output missing solution:\n%s", got)
	}
}

func TestPlay_TruncatesList(t *testing.T) {
	got := playScript(t, "xxxxx\n.....\n", "", 2)

	if !strings.Contains(got, "Remaining possible words: 6\ncrane, slate...\n") {
		t.Errorf("output does not truncate the list:\n%s", got)
	}
	if !strings.Contains(got, "Round 2") {
		t.Errorf("output missing second round:\n%s", got)
	}
}

func TestPlay_SimulatedAnswer(t *testing.T) {
	got := playScript(t, "slate\ncrane\ngrade\n", "grade", 20)

	for _, want := range []string{
		"Feedback: ..g.g",
		"Feedback: .gg.g",
		"Solution is likely: grade",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPlay_EndOfInput(t *testing.T) {
	got := playScript(t, "crane\n", "", 20)
	if strings.Contains(got, "Remaining possible words") {
		t.Errorf("filtered without feedback:\n%s", got)
	}
}

func TestColorize(t *testing.T) {
	got := colorize("ab", []wordle.LetterMark{wordle.Correct, wordle.Absent})
	want := ansi.FGColorName("green") + "a" + ansi.FGColorName("light gray") + "b" + ansi.Clear
	if got != want {
		t.Errorf("colorize() = %q, want %q", got, want)
	}
}
