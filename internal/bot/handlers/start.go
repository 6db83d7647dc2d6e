package handlers

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

func (h *Handlers) handleStart(msg *tgbotapi.Message) {
	h.sendMessage(msg.Chat.ID, `Hi! I'm MindFlow Journal — a place to dump your thoughts.

Just send me any text and I'll file it by category. If the text mentions a time, I'll remind you about it:
• meet Anna in 10 minutes
• tomorrow at 9:00 team meeting
• 23 august birthday party

Commands:
/today — today's entries
/archive — entries for a specific date
/search — search your entries
/categories — list categories
/addcategory — add your own category
/reminders — your reminders`)
}
