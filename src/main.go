package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"crosswarped.com/wordle"
)

const (
	defaultMaxResults = 20
	maxMaxResults     = 1000
)

type ObservationRequest struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

type FilterWordsRequest struct {
	Words        []string             `json:"words"`
	Scope        string               `json:"scope"`
	Project      string               `json:"project"`
	Observations []ObservationRequest `json:"observations"`
	MaxResults   int                  `json:"maxResults"`
}

type FilterWordsResponse struct {
	Success       bool     `json:"success"`
	Remaining     int      `json:"remaining"`
	Candidates    []string `json:"candidates"`
	Solved        bool     `json:"solved"`
	Contradiction bool     `json:"contradiction"`
	Error         string   `json:"error,omitempty"`
}

// loadWordsFromCloud is replaced in tests.
var loadWordsFromCloud = wordle.LoadWordsFromCloud

type result struct {
	candidates []string
	remaining  int
	outcome    wordle.Outcome
}

func execute(ctx context.Context, req FilterWordsRequest) (result, error) {
	if req.MaxResults == 0 {
		req.MaxResults = defaultMaxResults
	}
	if req.MaxResults < 0 {
		return result{}, fmt.Errorf("maxResults must be at least 1")
	}
	if req.MaxResults > maxMaxResults {
		return result{}, fmt.Errorf("maxResults must be at most %d", maxMaxResults)
	}

	for i, word := range req.Words {
		req.Words[i] = strings.ToLower(strings.TrimSpace(word))
	}

	if req.Scope != "" {
		words, err := loadWordsFromCloud(ctx, req.Project, req.Scope, wordle.WordLength)
		if err != nil {
			return result{}, fmt.Errorf("loadWordsFromCloud: %w", err)
		}
		fmt.Printf("Loaded %d words from scope %q\n", len(words), req.Scope)
		req.Words = append(req.Words, words...)
	}

	if len(req.Words) == 0 {
		return result{}, fmt.Errorf("words must not be empty")
	}

	session := wordle.CreateSession(req.Words, wordle.SessionParams{IndexThreshold: 5000})
	for i, o := range req.Observations {
		if _, err := session.Apply(ctx, o.Guess, o.Feedback); err != nil {
			return result{}, fmt.Errorf("observation %d: %w", i+1, err)
		}
	}

	candidates := session.Candidates()
	res := result{
		candidates: candidates[:min(len(candidates), req.MaxResults)],
		remaining:  len(candidates),
		outcome:    session.Outcome(),
	}
	return res, nil
}

// writeFilterHeaders marks the response as JSON that any solver page may read.
// Preflight answers are cached for an hour.
func writeFilterHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Max-Age", "3600")
	h.Set("Content-Type", "application/json")
}

// filterWords narrows a word list by the observations in the request body.
func filterWords(w http.ResponseWriter, r *http.Request) {
	writeFilterHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req FilterWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v\n", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(FilterWordsResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	res, err := execute(r.Context(), req)

	response := FilterWordsResponse{
		Success:       err == nil,
		Remaining:     res.remaining,
		Candidates:    res.candidates,
		Solved:        err == nil && res.outcome == wordle.Solved,
		Contradiction: err == nil && res.outcome == wordle.Contradiction,
	}
	if err != nil {
		response.Error = err.Error()
	} else if response.Contradiction {
		response.Error = "No candidates remain; the feedback is inconsistent"
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v\n", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/filter-words", filterWords)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	hostname, shown := "", "0.0.0.0"
	if os.Getenv("LOCAL_ONLY") == "true" {
		hostname, shown = "127.0.0.1", "127.0.0.1"
	}
	fmt.Printf("Serving word filtering at http://%s:%s/filter-words\n", shown, port)
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("serving /filter-words on port %s: %v", port, err)
	}
}
