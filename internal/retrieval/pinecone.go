package retrieval

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/v2/pinecone"
)

// Embedder turns a query string into the vector the index was built with.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// PineconeSearcher queries a managed Pinecone index. Chunk text is stored in
// the "text" metadata field at ingestion time.
type PineconeSearcher struct {
	index    *pinecone.IndexConnection
	embedder Embedder
}

func NewPineconeSearcher(ctx context.Context, apiKey, indexName string, embedder Embedder) (*PineconeSearcher, error) {
	client, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("init pinecone client: %w", err)
	}
	idx, err := client.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("describe index %q: %w", indexName, err)
	}
	conn, err := client.Index(pinecone.NewIndexConnParams{Host: idx.Host})
	if err != nil {
		return nil, fmt.Errorf("connect to index %q: %w", indexName, err)
	}
	return &PineconeSearcher{index: conn, embedder: embedder}, nil
}

func (s *PineconeSearcher) Search(ctx context.Context, query string, topK int) ([]Document, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	res, err := s.index.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vec,
		TopK:            uint32(topK),
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	docs := make([]Document, 0, len(res.Matches))
	for _, m := range res.Matches {
		if m.Vector == nil || m.Vector.Metadata == nil {
			continue
		}
		text := m.Vector.Metadata.Fields["text"].GetStringValue()
		if text == "" {
			continue
		}
		docs = append(docs, Document{Content: text, Score: float64(m.Score)})
	}
	return docs, nil
}
