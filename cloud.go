package wordle

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// DefaultProject is the Google Cloud project holding the word table.
const DefaultProject = "xword-x"

// LoadWordsFromCloud loads the non-obscure words of the given scope and length
// from BigQuery, in table order.
func LoadWordsFromCloud(ctx context.Context, project, scope string, length int) ([]string, error) {
	if project == "" {
		project = DefaultProject
	}
	client, err := bigquery.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf("SELECT word_key FROM `%s.FirestoreQuery.all_words` "+
		"WHERE scope = @scope AND obscure = false AND LENGTH(word_key) = @length", project)
	q := client.Query(query)
	q.Location = "US"
	q.Parameters = []bigquery.QueryParameter{
		{Name: "scope", Value: scope},
		{Name: "length", Value: length},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}
	return collectWords(it, length)
}

type rowIterator interface {
	Next(dst interface{}) error
}

// collectWords drains it, keeping the lowercased first column of each row when
// it is a word of the given length.
func collectWords(it rowIterator, length int) ([]string, error) {
	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		if len(row) == 0 {
			continue
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		word = strings.ToLower(word)
		if len(word) != length || strings.IndexFunc(word, func(r rune) bool {
			return r < 'a' || r > 'z'
		}) >= 0 {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}
