package handlers

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mindflowbot/mindflow/internal/categorizer"
	"github.com/mindflowbot/mindflow/internal/storage"
	"github.com/mindflowbot/mindflow/internal/timeparse"
)

// Notifier nudges the delivery loop after a reminder is created.
type Notifier interface {
	Notify()
}

type Handlers struct {
	api         *tgbotapi.BotAPI
	store       storage.Store
	categorizer *categorizer.Categorizer
	parser      *timeparse.Parser
	notifier    Notifier
}

func New(api *tgbotapi.BotAPI, store storage.Store, cat *categorizer.Categorizer, parser *timeparse.Parser, notifier Notifier) *Handlers {
	return &Handlers{
		api:         api,
		store:       store,
		categorizer: cat,
		parser:      parser,
		notifier:    notifier,
	}
}

func (h *Handlers) HandleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.handleStart(msg)
	case "today":
		h.handleToday(ctx, msg)
	case "archive":
		h.handleArchive(ctx, msg)
	case "search":
		h.handleSearch(ctx, msg)
	case "categories":
		h.handleCategories(ctx, msg)
	case "addcategory":
		h.handleAddCategory(ctx, msg)
	case "reminders":
		h.handleReminders(ctx, msg)
	default:
		h.sendMessage(msg.Chat.ID, "Unknown command. Send /start to see what I can do.")
	}
}

func (h *Handlers) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.api.Send(msg); err != nil {
		log.Printf("Failed to send message to chat %d: %v", chatID, err)
	}
}
