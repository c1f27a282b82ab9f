package wordle

import (
	"errors"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/api/iterator"
)

type fakeRows struct {
	rows [][]bigquery.Value
	err  error
}

func (f *fakeRows) Next(dst interface{}) error {
	if len(f.rows) == 0 {
		if f.err != nil {
			return f.err
		}
		return iterator.Done
	}
	*dst.(*[]bigquery.Value) = f.rows[0]
	f.rows = f.rows[1:]
	return nil
}

func TestCollectWords(t *testing.T) {
	it := &fakeRows{rows: [][]bigquery.Value{
		{"CRANE"},
		{"cluster"},
		{},
		{"slate", false},
		{"o'hare"},
	}}
	got, err := collectWords(it, WordLength)
	if err != nil {
		t.Fatalf("collectWords() error = %v", err)
	}
	if diff := cmp.Diff([]string{"crane", "slate"}, got); diff != "" {
		t.Errorf("collectWords() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectWords_Errors(t *testing.T) {
	boom := errors.New("boom")

	if _, err := collectWords(&fakeRows{err: boom}, WordLength); !errors.Is(err, boom) {
		t.Errorf("collectWords() error = %v, want %v", err, boom)
	}
	if _, err := collectWords(&fakeRows{rows: [][]bigquery.Value{{int64(12345)}}}, WordLength); err == nil {
		t.Error("collectWords() accepted a non-string word")
	}
}
