package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mindflowbot/mindflow/internal/models"
)

// HandleMessage is the capture pipeline: categorize the note, save it as a
// journal entry and, when the text carries a time reference, schedule a
// reminder for it.
func (h *Handlers) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		h.sendMessage(msg.Chat.ID, "Please send a non-empty message.")
		return
	}

	category, emoji := h.categorizer.Categorize(ctx, text, userID)

	entry := &models.Entry{UserID: userID, Text: text, Category: category}
	if err := h.store.CreateEntry(ctx, entry); err != nil {
		log.Printf("Failed to save entry for user %d: %v", userID, err)
		h.sendMessage(msg.Chat.ID, "❌ Couldn't save that. Please try again later.")
		return
	}

	reply := fmt.Sprintf("✅ Saved!\nCategory: %s %s", emoji, category)

	now := time.Now()
	if res, ok := h.parser.Extract(text, now); ok {
		reminder := &models.Reminder{
			UserID:  userID,
			EntryID: entry.EntryID,
			Text:    text,
			DueAt:   res.DueAt,
		}
		if err := h.store.CreateReminder(ctx, reminder); err != nil {
			// The entry stays saved; the user just doesn't get a reminder.
			log.Printf("Failed to create reminder for entry %d: %v", entry.EntryID, err)
		} else {
			reply += fmt.Sprintf("\n⏰ Reminder set for %s", res.Description)
			if h.notifier != nil {
				h.notifier.Notify()
			}
		}
	}

	h.sendMessage(msg.Chat.ID, reply)
}
