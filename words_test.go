package wordle

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadWords(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"Crane",
		"  slate  ",
		"",
		"cluster",
		"can't",
		"trade",
		"crane",
	}, "\n")

	got, err := ReadWords(t.Context(), strings.NewReader(input), WordLength)
	if err != nil {
		t.Fatalf("ReadWords() error = %v", err)
	}
	// Duplicates are harmless and kept.
	if diff := cmp.Diff([]string{"crane", "slate", "trade", "crane"}, got); diff != "" {
		t.Errorf("ReadWords() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadWords_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if _, err := ReadWords(ctx, strings.NewReader("crane\nslate\n"), WordLength); err == nil {
		t.Error("ReadWords() with cancelled context succeeded, want error")
	}
}

func TestLoadWordsFromFile(t *testing.T) {
	words := loadWords(t)
	if len(words) != 62 {
		t.Errorf("loaded %d words, want 62", len(words))
	}
	if slices.Contains(words, "cluster") {
		t.Error("loaded a seven letter word")
	}

	if _, err := LoadWordsFromFile(t.Context(), "testdata/missing.txt", WordLength); err == nil {
		t.Error("LoadWordsFromFile() on a missing file succeeded, want error")
	}
}

func TestDownloadWordList(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := requests.Add(1)
		fmt.Fprintf(w, "crane\nslate\nversion%d\n", n)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), DefaultWordListPath)

	tests := []struct {
		name         string
		force        bool
		wantFetched  bool
		wantRequests int32
	}{
		{"missing file is fetched", false, true, 1},
		{"cached file is reused", false, false, 1},
		{"forced update refetches", true, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetched, err := DownloadWordList(t.Context(), srv.Client(), srv.URL, path, tt.force)
			if err != nil {
				t.Fatalf("DownloadWordList() error = %v", err)
			}
			if fetched != tt.wantFetched {
				t.Errorf("DownloadWordList() = %v, want %v", fetched, tt.wantFetched)
			}
			if got := requests.Load(); got != tt.wantRequests {
				t.Errorf("server saw %d requests, want %d", got, tt.wantRequests)
			}
		})
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(bs), "crane\nslate\nversion2\n"; got != want {
		t.Errorf("cached list = %q, want %q", got, want)
	}
}

func TestDownloadWordList_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "words.txt")
	if _, err := DownloadWordList(t.Context(), srv.Client(), srv.URL, path, false); err == nil {
		t.Fatal("DownloadWordList() succeeded on a 404, want error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("a failed download left %s behind (stat error %v)", path, err)
	}
}

func TestCollapseStems(t *testing.T) {
	got := CollapseStems([]string{"cares", "crane", "cared", "crane", "slate"})
	if diff := cmp.Diff([]string{"cares", "crane", "slate"}, got); diff != "" {
		t.Errorf("CollapseStems() mismatch (-want +got):\n%s", diff)
	}
}
