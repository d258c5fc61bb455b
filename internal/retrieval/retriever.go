package retrieval

import (
	"context"
	"fmt"
)

// Document is a knowledge-base chunk with its backend-assigned relevance
// score. Higher means more similar.
type Document struct {
	Content string
	Score   float64
}

// Searcher is the external vector-search backend: top-k nearest neighbors
// for a query string.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]Document, error)
}

// Retriever filters backend results by a minimum relevance score. An empty
// result after filtering is the caller's signal that the question is out of
// the knowledge domain.
type Retriever struct {
	searcher Searcher
	topK     int
	minScore float64
}

func New(searcher Searcher, topK int, minScore float64) *Retriever {
	return &Retriever{searcher: searcher, topK: topK, minScore: minScore}
}

// Retrieve returns the surviving documents in backend order. Only documents
// whose score strictly exceeds the threshold are kept.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]Document, error) {
	docs, err := r.searcher.Search(ctx, query, r.topK)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if d.Score > r.minScore {
			out = append(out, d)
		}
	}
	return out, nil
}
