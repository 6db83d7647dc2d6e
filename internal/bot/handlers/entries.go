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

const archiveDateLayout = "02.01.2006"

func (h *Handlers) handleToday(ctx context.Context, msg *tgbotapi.Message) {
	entries, err := h.store.TodayEntries(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to get today's entries for user %d: %v", msg.From.ID, err)
		h.sendMessage(msg.Chat.ID, "❌ Couldn't fetch your entries. Please try again later.")
		return
	}
	if len(entries) == 0 {
		h.sendMessage(msg.Chat.ID, "📭 No entries today yet. Send me a thought!")
		return
	}
	h.sendMessage(msg.Chat.ID, formatEntries("📅 Today's entries:", entries))
}

func (h *Handlers) handleArchive(ctx context.Context, msg *tgbotapi.Message) {
	arg := strings.TrimSpace(msg.CommandArguments())
	if arg == "" {
		h.sendMessage(msg.Chat.ID, "Usage: /archive DD.MM.YYYY\nExample: /archive 23.08.2025")
		return
	}
	day, err := time.ParseInLocation(archiveDateLayout, arg, time.Local)
	if err != nil {
		h.sendMessage(msg.Chat.ID, fmt.Sprintf("I don't understand the date %q. Use DD.MM.YYYY, e.g. 23.08.2025.", arg))
		return
	}

	entries, err := h.store.EntriesByDate(ctx, msg.From.ID, day)
	if err != nil {
		log.Printf("Failed to get entries for user %d on %s: %v", msg.From.ID, arg, err)
		h.sendMessage(msg.Chat.ID, "❌ Couldn't fetch your entries. Please try again later.")
		return
	}
	if len(entries) == 0 {
		h.sendMessage(msg.Chat.ID, fmt.Sprintf("📭 No entries on %s.", arg))
		return
	}
	h.sendMessage(msg.Chat.ID, formatEntries(fmt.Sprintf("🗓 Entries for %s:", arg), entries))
}

func (h *Handlers) handleSearch(ctx context.Context, msg *tgbotapi.Message) {
	term := strings.TrimSpace(msg.CommandArguments())
	if term == "" {
		h.sendMessage(msg.Chat.ID, "Usage: /search <word or phrase>")
		return
	}

	entries, err := h.store.SearchEntries(ctx, msg.From.ID, term)
	if err != nil {
		log.Printf("Failed to search entries for user %d: %v", msg.From.ID, err)
		h.sendMessage(msg.Chat.ID, "❌ Search failed. Please try again later.")
		return
	}
	if len(entries) == 0 {
		h.sendMessage(msg.Chat.ID, fmt.Sprintf("🔍 Nothing found for %q.", term))
		return
	}
	h.sendMessage(msg.Chat.ID, formatEntries(fmt.Sprintf("🔍 Results for %q:", term), entries))
}

func formatEntries(header string, entries []*models.Entry) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "\n🕐 %s [%s]\n%s\n", entry.CreatedAt.Format("15:04"), entry.Category, entry.Text)
	}
	return b.String()
}
