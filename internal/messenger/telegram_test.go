package messenger

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestReminderMessage(t *testing.T) {
	msg := reminderMessage(42, "buy milk in 10 minutes")

	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.Equal(t, "⏰ <b>Reminder!</b>\n\nbuy milk in 10 minutes", msg.Text)
}

func TestReminderMessageEscapesUserText(t *testing.T) {
	msg := reminderMessage(42, "compare a < b & c > d")

	assert.Contains(t, msg.Text, "a &lt; b &amp; c &gt; d")
	assert.NotContains(t, msg.Text, "a < b")
}
