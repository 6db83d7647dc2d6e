package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	maxListedReminders = 10
	maxListedTextLen   = 100
)

func (h *Handlers) handleReminders(ctx context.Context, msg *tgbotapi.Message) {
	reminders, err := h.store.RemindersForUser(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to list reminders for user %d: %v", msg.From.ID, err)
		h.sendMessage(msg.Chat.ID, "❌ Couldn't fetch your reminders. Please try again later.")
		return
	}
	if len(reminders) == 0 {
		h.sendMessage(msg.Chat.ID, `📭 No reminders yet.

Mention a time in any message and I'll set one:
• call mom in 20 minutes
• tomorrow at 9:00 standup
• 15.09 dentist appointment`)
		return
	}

	var b strings.Builder
	b.WriteString("⏰ Your reminders:\n")
	for i, r := range reminders {
		if i == maxListedReminders {
			fmt.Fprintf(&b, "\n…and %d more", len(reminders)-maxListedReminders)
			break
		}
		status := "⏳"
		if r.IsSent {
			status = "✅"
		}
		fmt.Fprintf(&b, "\n%s %s — %s", status, r.DueAt.Format("02.01 15:04"), truncateText(r.Text, maxListedTextLen))
	}
	h.sendMessage(msg.Chat.ID, b.String())
}

// truncateText shortens long note texts for the listing. The limit counts
// runes so multi-byte text is never cut mid-character.
func truncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
