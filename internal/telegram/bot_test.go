package telegram

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Margii4/weimaraner-faq-bot/internal/history"
	"github.com/Margii4/weimaraner-faq-bot/internal/lang"
	"github.com/Margii4/weimaraner-faq-bot/internal/llm"
	"github.com/Margii4/weimaraner-faq-bot/internal/pipeline"
	"github.com/Margii4/weimaraner-faq-bot/internal/retrieval"
)

type fakeSender struct{ sent []tgbotapi.MessageConfig }

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

type memRepo struct{ saved map[string]history.Record }

func (m *memRepo) Load() (map[string]history.Record, error) { return m.saved, nil }
func (m *memRepo) Save(users map[string]history.Record) error {
	m.saved = users
	return nil
}

type fakeRetriever struct{ docs []retrieval.Document }

func (f *fakeRetriever) Retrieve(ctx context.Context, query string) ([]retrieval.Document, error) {
	return f.docs, nil
}

type fakeLLM struct{ resp llm.Response }

func (f fakeLLM) Generate(ctx context.Context, systemPrompt, userPrompt string) (llm.Response, error) {
	return f.resp, nil
}

func newTestBot(t *testing.T) (*Bot, *fakeSender) {
	t.Helper()
	store, err := history.NewStore(&memRepo{}, 5)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	p := pipeline.New(
		store,
		&fakeRetriever{docs: []retrieval.Document{{Content: "ctx", Score: 0.9}}},
		fakeLLM{resp: llm.Response{Content: "an answer"}},
		lang.English,
		"resents",
		time.Second,
	)
	fs := &fakeSender{}
	return &Bot{s: fs, pipeline: p, keyboard: buildKeyboard("resents")}, fs
}

func message(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: 42, UserName: "tester"},
		Chat: &tgbotapi.Chat{ID: 100},
		Text: text,
	}
}

func TestStartCommandSendsGreeting(t *testing.T) {
	b, fs := newTestBot(t)
	msg := message("/start")
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}}
	b.handleIncomingMessage(context.Background(), msg)

	if len(fs.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fs.sent))
	}
	if fs.sent[0].Text != "Hi! I am an AI FAQ bot for the Weimaraner breed. Ask your question!" {
		t.Fatalf("unexpected greeting: %q", fs.sent[0].Text)
	}
	if _, ok := fs.sent[0].ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup); !ok {
		t.Fatalf("greeting missing reply keyboard")
	}
}

func TestQuestionGetsAnswerWithKeyboard(t *testing.T) {
	b, fs := newTestBot(t)
	b.handleIncomingMessage(context.Background(), message("what color are they?"))

	if len(fs.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fs.sent))
	}
	out := fs.sent[0]
	if out.Text != "an answer" {
		t.Fatalf("unexpected answer: %q", out.Text)
	}
	if out.ParseMode != tgbotapi.ModeMarkdown {
		t.Fatalf("answers should use markdown parse mode, got %q", out.ParseMode)
	}
	if _, ok := out.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup); !ok {
		t.Fatalf("answer missing reply keyboard")
	}
}

func TestKeyboardLayout(t *testing.T) {
	kb := buildKeyboard("resents")
	if len(kb.Keyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(kb.Keyboard))
	}
	if kb.Keyboard[0][0].Text != "Resents" || kb.Keyboard[0][1].Text != "Clear memory" {
		t.Fatalf("unexpected first row: %+v", kb.Keyboard[0])
	}
	if kb.Keyboard[1][0].Text != "English" || kb.Keyboard[1][1].Text != "Italiano" {
		t.Fatalf("unexpected language row: %+v", kb.Keyboard[1])
	}
	if !kb.ResizeKeyboard {
		t.Fatalf("keyboard should resize")
	}
}

func TestCommandReplyIsPlainText(t *testing.T) {
	b, fs := newTestBot(t)
	b.handleIncomingMessage(context.Background(), message("Clear memory"))
	if len(fs.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fs.sent))
	}
	if fs.sent[0].ParseMode != "" {
		t.Fatalf("command ack should not set parse mode, got %q", fs.sent[0].ParseMode)
	}
	if fs.sent[0].Text != "Memory cleared." {
		t.Fatalf("unexpected ack: %q", fs.sent[0].Text)
	}
}
