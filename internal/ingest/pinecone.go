package ingest

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/v2/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

// PineconeWriter upserts chunk vectors into the managed index the online
// retriever reads from.
type PineconeWriter struct {
	index *pinecone.IndexConnection
}

func NewPineconeWriter(ctx context.Context, apiKey, indexName string) (*PineconeWriter, error) {
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
	return &PineconeWriter{index: conn}, nil
}

func (w *PineconeWriter) Upsert(ctx context.Context, vectors []Vector) error {
	out := make([]*pinecone.Vector, 0, len(vectors))
	for _, v := range vectors {
		md, err := structpb.NewStruct(map[string]interface{}{"text": v.Text})
		if err != nil {
			return fmt.Errorf("build metadata for %s: %w", v.ID, err)
		}
		out = append(out, &pinecone.Vector{Id: v.ID, Values: v.Values, Metadata: md})
	}
	if _, err := w.index.UpsertVectors(ctx, out); err != nil {
		return fmt.Errorf("upsert vectors: %w", err)
	}
	return nil
}
