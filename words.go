package wordle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/kljensen/snowball/english"
)

const (
	// DefaultWordListURL is the list of words the game accepts as guesses.
	DefaultWordListURL = "https://raw.githubusercontent.com/tabatkins/wordle-list/main/words"
	// DefaultWordListPath is where the downloaded list is cached.
	DefaultWordListPath = "words.txt"
)

// ReadWords reads one word per line from r, keeping only words of exactly
// length letters a-z. Lines are trimmed and lowercased; blank lines and lines
// starting with '#' are skipped. Order is preserved.
func ReadWords(ctx context.Context, r io.Reader, length int) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if len(word) != length || strings.IndexFunc(word, func(r rune) bool {
			return r < 'a' || r > 'z'
		}) >= 0 {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return words, nil
}

// LoadWordsFromFile uses ReadWords to read from the specified file.
func LoadWordsFromFile(ctx context.Context, path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(ctx, f, length)
}

// DownloadWordList fetches url into path unless path already exists. With
// force set the list is always fetched. It reports whether a download happened.
//
// The file is written to a temporary sibling first so an interrupted download
// never leaves a truncated list behind.
func DownloadWordList(ctx context.Context, client *http.Client, url, path string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("http.NewRequest: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return false, fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, err
	}
	return true, nil
}

// CollapseStems keeps only the first word of each English stem, so that e.g.
// "cares" and "cared" do not both survive. Order is preserved.
func CollapseStems(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		stem := english.Stem(w, true)
		if seen[stem] {
			continue
		}
		seen[stem] = true
		out = append(out, w)
	}
	return out
}
