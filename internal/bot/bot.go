package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mindflowbot/mindflow/internal/bot/handlers"
	"github.com/mindflowbot/mindflow/internal/categorizer"
	"github.com/mindflowbot/mindflow/internal/storage"
	"github.com/mindflowbot/mindflow/internal/timeparse"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	handlers *handlers.Handlers
}

func New(api *tgbotapi.BotAPI, store storage.Store, cat *categorizer.Categorizer, parser *timeparse.Parser, notifier handlers.Notifier) (*Bot, error) {
	if api == nil {
		return nil, fmt.Errorf("telegram api is required")
	}
	return &Bot{
		api:      api,
		handlers: handlers.New(api, store, cat, parser, notifier),
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	if update.Message.IsCommand() {
		b.handlers.HandleCommand(ctx, update.Message)
		return
	}

	// Any other text is a journal entry.
	b.handlers.HandleMessage(ctx, update.Message)
}
