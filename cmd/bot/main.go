package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/Margii4/weimaraner-faq-bot/internal/config"
	"github.com/Margii4/weimaraner-faq-bot/internal/history"
	"github.com/Margii4/weimaraner-faq-bot/internal/lang"
	"github.com/Margii4/weimaraner-faq-bot/internal/llm"
	"github.com/Margii4/weimaraner-faq-bot/internal/pipeline"
	"github.com/Margii4/weimaraner-faq-bot/internal/retrieval"
	"github.com/Margii4/weimaraner-faq-bot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	ctx := context.Background()

	repo, err := history.NewFileRepository(cfg.HistoryFilePath)
	if err != nil {
		log.Fatalf("failed to init history repository: %v", err)
	}
	store, err := history.NewStore(repo, cfg.HistoryLimit)
	if err != nil {
		log.Fatalf("failed to load history: %v", err)
	}

	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	embedder := llm.NewEmbedder(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.EmbeddingModel)
	searcher, err := retrieval.NewPineconeSearcher(ctx, cfg.PineconeAPIKey, cfg.PineconeIndex, embedder)
	if err != nil {
		log.Fatalf("failed to connect to vector index: %v", err)
	}
	retriever := retrieval.New(searcher, cfg.RetrievalTopK, cfg.RetrievalMinScore)

	p := pipeline.New(
		store,
		retriever,
		llmClient,
		lang.Code(cfg.DefaultLanguage),
		cfg.HistoryCommand,
		cfg.RequestTimeout,
	)

	bot, err := telegram.New(cfg.TelegramBotToken, p, cfg.HistoryCommand)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	log.Printf("Bot started.")
	bot.Start(ctx)
}
