package telegram

import (
	"context"
	"log"
	"strconv"
	"unicode"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Margii4/weimaraner-faq-bot/internal/lang"
	"github.com/Margii4/weimaraner-faq-bot/internal/pipeline"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	s        sender
	pipeline *pipeline.Pipeline
	keyboard tgbotapi.ReplyKeyboardMarkup
}

func New(botToken string, p *pipeline.Pipeline, historyCmd string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		s:        botAPISender{api: api},
		pipeline: p,
		keyboard: buildKeyboard(historyCmd),
	}, nil
}

// buildKeyboard is the fixed control surface attached to every reply:
// history recall, clear memory, and the language names.
func buildKeyboard(historyCmd string) tgbotapi.ReplyKeyboardMarkup {
	names := lang.Names()
	langRow := make([]tgbotapi.KeyboardButton, 0, len(names))
	for _, n := range names {
		langRow = append(langRow, tgbotapi.NewKeyboardButton(n))
	}
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonLabel(historyCmd)),
			tgbotapi.NewKeyboardButton("Clear memory"),
		),
		langRow,
	)
	kb.ResizeKeyboard = true
	return kb
}

func buttonLabel(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		b.handleIncomingMessage(ctx, update.Message)
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)
	userID := strconv.FormatInt(msg.From.ID, 10)

	var reply pipeline.Reply
	if msg.IsCommand() && msg.Command() == "start" {
		reply = b.pipeline.Start(userID)
	} else {
		reply = b.pipeline.Respond(ctx, userID, msg.Text)
	}
	b.send(msg.Chat.ID, reply)
}

func (b *Bot) send(chatID int64, reply pipeline.Reply) {
	out := tgbotapi.NewMessage(chatID, reply.Text)
	out.ReplyMarkup = b.keyboard
	if reply.Markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	if _, err := b.s.Send(out); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
