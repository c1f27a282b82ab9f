package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vyevs/ansi"
	"github.com/vyevs/vtools"

	"crosswarped.com/wordle"
)

const helpText = `
Wordle Solver Assistant

Usage:
  wordlecli -begin      Run the assistant (downloads the word list if needed)
  wordlecli -update     Force-download the latest word list and exit
  wordlecli -h          Show this help message

Options:
  -begin        Start the game
  -update       Force download the latest word list and exit
  -words PATH   Where the word list is cached (default words.txt)
  -url URL      Where the word list is downloaded from
  -cloud        Load words from BigQuery instead (-project, -scope)
  -stems        Keep a single word per English stem
  -answer WORD  Simulate a game: feedback is computed against WORD
  -show N       Number of remaining words to print (default 20)
  -workers N    Filter with N goroutines
  -color        Colour the guess by its feedback (default true)
  -v            Print timing information

Gameplay:
  - Enter your 5-letter guess when prompted
  - Enter feedback using:
      g/G = green (correct letter, correct position)
      y/Y = yellow (correct letter, wrong position)
      . or _ = gray (letter not in word)
  - Example: For a guess of 'crane' with feedback gray, green, gray, yellow, gray, enter: .g.y.
`

func main() {
	begin := flag.Bool("begin", false, "Start the game")
	update := flag.Bool("update", false, "Force download the latest word list and exit")
	wordsPath := flag.String("words", wordle.DefaultWordListPath, "The file the word list is cached in")
	url := flag.String("url", wordle.DefaultWordListURL, "The URL to download the word list from")
	loadWordsFromCloud := flag.Bool("cloud", false, "Load words from cloud")
	project := flag.String("project", wordle.DefaultProject, "The cloud project holding the words")
	scope := flag.String("scope", "regular", "The scope of the words to load")
	stems := flag.Bool("stems", false, "Keep a single word per English stem")
	answer := flag.String("answer", "", "Simulate play against the specified answer")
	show := flag.Int("show", 20, "The number of remaining words to print")
	workers := flag.Int("workers", 1, "The number of goroutines filtering each round")
	indexThreshold := flag.Int("index-threshold", 5000, "Index the word list when it has at least this many words, 0 to disable")
	color := flag.Bool("color", true, "Colour the guess by its feedback")
	verbose := flag.Bool("v", false, "Print timing information")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for loading the word list")

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), helpText)
	}
	flag.Parse()

	if *update {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()

		fmt.Println("Downloading latest word list...")
		if _, err := wordle.DownloadWordList(ctx, nil, *url, *wordsPath, true); err != nil {
			fmt.Println("Error downloading word list:", err)
			os.Exit(1)
		}
		fmt.Printf("Word list downloaded and saved as %q.\n", *wordsPath)
		return
	}

	if !*begin {
		fmt.Print(helpText)
		return
	}

	if *answer != "" && len(*answer) != wordle.WordLength {
		fmt.Printf("The answer must have %d letters\n", wordle.WordLength)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	words, err := loadWords(ctx, *loadWordsFromCloud, *project, *scope, *url, *wordsPath)
	cancel()
	if err != nil {
		fmt.Println("Error loading words:", err)
		os.Exit(1)
	}
	if *stems {
		words = wordle.CollapseStems(words)
	}
	fmt.Printf("Loaded %d %d-letter words.\n", len(words), wordle.WordLength)

	a := &assistant{
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
		answer:  strings.ToLower(*answer),
		show:    *show,
		color:   *color,
		verbose: *verbose,
	}
	session := wordle.CreateSession(words, wordle.SessionParams{
		Workers:        *workers,
		IndexThreshold: *indexThreshold,
	})
	if err := a.play(context.Background(), session); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func loadWords(ctx context.Context, cloud bool, project, scope, url, path string) ([]string, error) {
	if cloud {
		fmt.Println("Loading words from cloud...")
		return wordle.LoadWordsFromCloud(ctx, project, scope, wordle.WordLength)
	}

	fetched, err := wordle.DownloadWordList(ctx, nil, url, path, false)
	if err != nil {
		return nil, fmt.Errorf("downloading word list: %w", err)
	}
	if fetched {
		fmt.Printf("Word list downloaded and saved as %q.\n", path)
	} else {
		fmt.Println("Local word list found.")
	}
	return wordle.LoadWordsFromFile(ctx, path, wordle.WordLength)
}

// assistant runs the prompt loop of one game.
type assistant struct {
	in  *bufio.Scanner
	out io.Writer

	// answer, when set, replaces the feedback prompt with the score against it.
	answer  string
	show    int
	color   bool
	verbose bool
}

func (a *assistant) prompt(msg string) (string, bool) {
	fmt.Fprint(a.out, msg)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// play runs rounds until the session is solved, contradictory, or input runs out.
func (a *assistant) play(ctx context.Context, s *wordle.Session) error {
	for {
		fmt.Fprintf(a.out, "\nRound %d\n", s.Round())

		guess, ok := a.prompt("Enter your guess: ")
		if !ok {
			return a.in.Err()
		}
		guess = strings.ToLower(guess)

		var feedback string
		if a.answer != "" {
			marks, err := wordle.Score(guess, a.answer)
			if err != nil {
				fmt.Fprintf(a.out, "Please enter a %d-letter guess.\n", wordle.WordLength)
				continue
			}
			feedback = wordle.FormatMarks(marks)
			fmt.Fprintf(a.out, "Feedback: %s\n", feedback)
		} else {
			feedback, ok = a.prompt("Feedback (g=green, y=yellow, . or _=gray, e.g. .g.y.): ")
			if !ok {
				return a.in.Err()
			}
		}

		start := time.Now()
		outcome, err := s.Apply(ctx, guess, feedback)
		switch {
		case errors.Is(err, wordle.ErrInvalidInputLength):
			fmt.Fprintf(a.out, "Please enter a %d-letter guess and feedback of length %d (g/y/./_).\n", wordle.WordLength, wordle.WordLength)
			continue
		case err != nil:
			return err
		}
		if a.verbose {
			vtools.TimeIt(start, "filtering")
		}

		if a.color {
			fmt.Fprintln(a.out, colorize(guess, wordle.ParseMarks(feedback)))
		}
		a.report(s.Candidates())

		switch outcome {
		case wordle.Solved:
			fmt.Fprintf(a.out, "Solution is likely: %s\n", s.Candidates()[0])
			return nil
		case wordle.Contradiction:
			fmt.Fprintln(a.out, "No candidates remain; check the feedback you entered.")
			return nil
		}
	}
}

func (a *assistant) report(candidates []string) {
	fmt.Fprintf(a.out, "Remaining possible words: %d\n", len(candidates))
	shown := candidates
	if a.show >= 0 && len(shown) > a.show {
		shown = shown[:a.show]
	}
	line := strings.Join(shown, ", ")
	if len(shown) < len(candidates) {
		line += "..."
	}
	fmt.Fprintln(a.out, line)
}

// colorize renders guess with each letter in its feedback colour.
func colorize(guess string, marks []wordle.LetterMark) string {
	var b strings.Builder
	b.Grow(len(guess) * 8)
	for i := 0; i < len(guess) && i < len(marks); i++ {
		switch marks[i] {
		case wordle.Correct:
			b.WriteString(ansi.FGColorName("green"))
		case wordle.Present:
			b.WriteString(ansi.FGColorName("yellow"))
		default:
			b.WriteString(ansi.FGColorName("light gray"))
		}
		b.WriteByte(guess[i])
	}
	b.WriteString(ansi.Clear)
	return b.String()
}
