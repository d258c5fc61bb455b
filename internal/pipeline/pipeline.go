// Package pipeline is the per-message control flow: command routing first,
// then the retrieval-augmented answer path.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Margii4/weimaraner-faq-bot/internal/history"
	"github.com/Margii4/weimaraner-faq-bot/internal/lang"
	"github.com/Margii4/weimaraner-faq-bot/internal/llm"
	"github.com/Margii4/weimaraner-faq-bot/internal/prompt"
	"github.com/Margii4/weimaraner-faq-bot/internal/retrieval"
)

// Reply is what the transport sends back. Markdown is set when the text
// carries bold labels (history echo, generated answers).
type Reply struct {
	Text     string
	Markdown bool
}

// DocRetriever is the relevance-filtered document source.
type DocRetriever interface {
	Retrieve(ctx context.Context, query string) ([]retrieval.Document, error)
}

type command struct {
	match func(text string) bool
	run   func(userID, text string) Reply
}

type Pipeline struct {
	store           *history.Store
	retriever       DocRetriever
	generator       llm.Client
	defaultLang     lang.Code
	historyCmd      string
	timeout         time.Duration
	commands        []command
	controlKeywords []string
}

func New(store *history.Store, retriever DocRetriever, generator llm.Client, defaultLang lang.Code, historyCmd string, timeout time.Duration) *Pipeline {
	if !lang.Valid(defaultLang) {
		defaultLang = lang.English
	}
	p := &Pipeline{
		store:       store,
		retriever:   retriever,
		generator:   generator,
		defaultLang: defaultLang,
		historyCmd:  historyCmd,
		timeout:     timeout,
	}
	p.controlKeywords = append(lang.Names(), "clear memory", historyCmd)

	// First match wins; anything unmatched falls through to retrieval.
	p.commands = []command{
		{
			match: func(t string) bool { _, ok := lang.FromName(t); return ok },
			run:   p.setLanguage,
		},
		{
			match: func(t string) bool { return strings.EqualFold(t, "clear memory") },
			run:   p.clearMemory,
		},
		{
			match: func(t string) bool { return strings.EqualFold(t, historyCmd) },
			run:   p.showHistory,
		},
	}
	return p
}

// Start handles the /start command: default language, greeting.
func (p *Pipeline) Start(userID string) Reply {
	if err := p.store.SetLang(userID, p.defaultLang); err != nil {
		log.Printf("failed to persist default language for %s: %v", userID, err)
	}
	return Reply{Text: greeting}
}

// Respond routes one incoming message to a command handler or the answer path.
func (p *Pipeline) Respond(ctx context.Context, userID, text string) Reply {
	text = strings.TrimSpace(text)
	for _, c := range p.commands {
		if c.match(text) {
			return c.run(userID, text)
		}
	}
	return p.answer(ctx, userID, text)
}

func (p *Pipeline) setLanguage(userID, text string) Reply {
	code, _ := lang.FromName(text)
	if err := p.store.SetLang(userID, code); err != nil {
		log.Printf("failed to persist language for %s: %v", userID, err)
		return Reply{Text: failureReply(code)}
	}
	return Reply{Text: fmt.Sprintf(langSetFmt, lang.DisplayName(code))}
}

func (p *Pipeline) clearMemory(userID, _ string) Reply {
	if err := p.store.Clear(userID); err != nil {
		log.Printf("failed to clear history for %s: %v", userID, err)
		return Reply{Text: failureReply(p.resolveLanguage(userID, ""))}
	}
	return Reply{Text: memoryWiped}
}

func (p *Pipeline) showHistory(userID, _ string) Reply {
	entries := p.store.Get(userID)
	if len(entries) == 0 {
		return Reply{Text: historyEmpty}
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("*Q:* %s\n*A:* %s", e.Question, e.Answer))
	}
	return Reply{Text: strings.Join(lines, "\n\n"), Markdown: true}
}

func (p *Pipeline) answer(ctx context.Context, userID, text string) Reply {
	code := p.resolveLanguage(userID, text)
	recent := p.recentQuestions(userID)
	query := buildQuery(recent, text)
	log.Printf("query from user %s (%s): %q", userID, code, query)

	rctx, cancel := context.WithTimeout(ctx, p.timeout)
	docs, err := p.retriever.Retrieve(rctx, query)
	cancel()
	if err != nil {
		log.Printf("retrieval failed for user %s: %v", userID, err)
		return Reply{Text: failureReply(code)}
	}
	if len(docs) == 0 {
		// The only topic guardrail: no sufficiently relevant context means
		// the generator is never called ungrounded.
		return Reply{Text: outOfDomainReply(code)}
	}

	gctx, cancel := context.WithTimeout(ctx, p.timeout)
	resp, err := p.generator.Generate(gctx, prompt.System(code), prompt.User(code, docs, recent, text))
	cancel()
	if err != nil {
		log.Printf("generation failed for user %s: %v", userID, err)
		return Reply{Text: failureReply(code)}
	}
	log.Printf("llm response for user %s [model=%s, tokens: prompt=%d, completion=%d, total=%d]",
		userID, resp.Model, resp.PromptTokens, resp.CompletionTokens, resp.TotalTokens)

	if err := p.store.Append(userID, text, resp.Content); err != nil {
		log.Printf("failed to persist history for %s: %v", userID, err)
	}
	return Reply{Text: resp.Content, Markdown: true}
}

func (p *Pipeline) resolveLanguage(userID, text string) lang.Code {
	if code, ok := p.store.Lang(userID); ok {
		return code
	}
	return lang.Detect(text)
}
