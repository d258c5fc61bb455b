package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY,required"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	EmbeddingModel   string      `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Vector index
	PineconeAPIKey string `env:"PINECONE_API_KEY,required"`
	PineconeIndex  string `env:"PINECONE_INDEX,required"`

	// Retrieval
	RetrievalTopK     int     `env:"RETRIEVAL_TOP_K" envDefault:"3"`
	RetrievalMinScore float64 `env:"RETRIEVAL_MIN_SCORE" envDefault:"0.3"`

	// Conversation
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	HistoryLimit    int           `env:"HISTORY_LIMIT" envDefault:"5"`
	HistoryFilePath string        `env:"HISTORY_FILE_PATH" envDefault:"data/user_history.json"`
	HistoryCommand  string        `env:"HISTORY_COMMAND" envDefault:"resents"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// Ingestion (cmd/indexer only)
	FAQFilePath  string `env:"FAQ_FILE_PATH" envDefault:"data/weimaraner_faq.txt"`
	ChunkSize    int    `env:"CHUNK_SIZE" envDefault:"500"`
	ChunkOverlap int    `env:"CHUNK_OVERLAP" envDefault:"80"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
