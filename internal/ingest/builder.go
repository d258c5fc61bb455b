// Package ingest is the offline knowledge-base build: split the FAQ document
// into overlapping chunks, embed them and upsert into the vector index. It
// runs once, from cmd/indexer, not in the message path.
package ingest

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

const embedBatchSize = 64

// Vector is one indexed chunk: the embedding plus the original text, which
// is stored as metadata so retrieval can hand it back verbatim.
type Vector struct {
	ID     string
	Values []float32
	Text   string
}

type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

type VectorWriter interface {
	Upsert(ctx context.Context, vectors []Vector) error
}

type Builder struct {
	chunkSize    int
	chunkOverlap int
	embedder     Embedder
	writer       VectorWriter
}

func NewBuilder(embedder Embedder, writer VectorWriter, chunkSize, chunkOverlap int) *Builder {
	return &Builder{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		embedder:     embedder,
		writer:       writer,
	}
}

// Build chunks the document, embeds every chunk and writes the vectors.
// Returns the number of chunks indexed.
func (b *Builder) Build(ctx context.Context, text string) (int, error) {
	chunks := Split(text, b.chunkSize, b.chunkOverlap)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("document produced no chunks")
	}

	for i := 0; i < len(chunks); i += embedBatchSize {
		end := i + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[i:end]

		embeddings, err := b.embedder.EmbedBatch(ctx, batch)
		if err != nil {
			return 0, fmt.Errorf("embed batch %d: %w", i/embedBatchSize, err)
		}
		vectors := make([]Vector, len(batch))
		for j, chunk := range batch {
			vectors[j] = Vector{ID: uuid.NewString(), Values: embeddings[j], Text: chunk}
		}
		if err := b.writer.Upsert(ctx, vectors); err != nil {
			return 0, fmt.Errorf("upsert batch %d: %w", i/embedBatchSize, err)
		}
		log.Printf("indexed %d/%d chunks", end, len(chunks))
	}
	return len(chunks), nil
}
