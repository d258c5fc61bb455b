// Command indexer is the one-shot knowledge-base build: it reads the FAQ
// document, chunks it, embeds the chunks and upserts them into the vector
// index the bot retrieves from.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Margii4/weimaraner-faq-bot/internal/config"
	"github.com/Margii4/weimaraner-faq-bot/internal/ingest"
	"github.com/Margii4/weimaraner-faq-bot/internal/llm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	ctx := context.Background()

	data, err := os.ReadFile(cfg.FAQFilePath)
	if err != nil {
		log.Fatalf("failed to read FAQ document %s: %v", cfg.FAQFilePath, err)
	}

	writer, err := ingest.NewPineconeWriter(ctx, cfg.PineconeAPIKey, cfg.PineconeIndex)
	if err != nil {
		log.Fatalf("failed to connect to vector index: %v", err)
	}
	embedder := llm.NewEmbedder(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.EmbeddingModel)

	builder := ingest.NewBuilder(embedder, writer, cfg.ChunkSize, cfg.ChunkOverlap)
	n, err := builder.Build(ctx, string(data))
	if err != nil {
		log.Fatalf("index build failed: %v", err)
	}
	log.Printf("Vector store built and uploaded: %d chunks.", n)
}
