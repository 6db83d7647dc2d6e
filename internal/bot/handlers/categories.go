package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mindflowbot/mindflow/internal/categorizer"
	"github.com/mindflowbot/mindflow/internal/models"
)

func (h *Handlers) handleCategories(ctx context.Context, msg *tgbotapi.Message) {
	var b strings.Builder
	b.WriteString("📂 Categories:\n")
	for _, cat := range categorizer.SystemCategories() {
		fmt.Fprintf(&b, "\n%s %s", cat.Emoji, cat.Name)
	}

	custom, err := h.store.CustomCategoriesForUser(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to list custom categories for user %d: %v", msg.From.ID, err)
	}
	if len(custom) > 0 {
		b.WriteString("\n\nYour categories:\n")
		for _, cat := range custom {
			fmt.Fprintf(&b, "\n🔧 %s (%s)", cat.Name, cat.Keywords)
		}
	}

	b.WriteString("\n\nAdd your own with /addcategory name: keyword1, keyword2")
	h.sendMessage(msg.Chat.ID, b.String())
}

func (h *Handlers) handleAddCategory(ctx context.Context, msg *tgbotapi.Message) {
	arg := strings.TrimSpace(msg.CommandArguments())
	name, keywords, ok := strings.Cut(arg, ":")
	name = strings.TrimSpace(name)
	keywords = strings.TrimSpace(keywords)
	if !ok || name == "" || keywords == "" {
		h.sendMessage(msg.Chat.ID, "Usage: /addcategory name: keyword1, keyword2\nExample: /addcategory Health: gym, doctor, vitamins")
		return
	}

	category := &models.CustomCategory{
		UserID:   msg.From.ID,
		Name:     name,
		Keywords: keywords,
	}
	if err := h.store.UpsertCustomCategory(ctx, category); err != nil {
		log.Printf("Failed to save custom category for user %d: %v", msg.From.ID, err)
		h.sendMessage(msg.Chat.ID, "❌ Couldn't save the category. Please try again later.")
		return
	}

	// New keywords must take effect for the very next message.
	h.categorizer.Invalidate()

	h.sendMessage(msg.Chat.ID, fmt.Sprintf("🔧 Category %q saved with keywords: %s", name, keywords))
}
