// Package messenger adapts Telegram to the scheduler's Messenger contract.
package messenger

import (
	"context"
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Telegram struct {
	api *tgbotapi.BotAPI
}

func NewTelegram(api *tgbotapi.BotAPI) *Telegram {
	return &Telegram{api: api}
}

// Send delivers a reminder to the user. The note text is repeated verbatim
// under the alert header.
func (t *Telegram) Send(ctx context.Context, userID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := t.api.Send(reminderMessage(userID, text)); err != nil {
		return fmt.Errorf("failed to send reminder to user %d: %w", userID, err)
	}
	return nil
}

// reminderMessage builds the delivery message: a bold header over the note
// text. The text is escaped so user content never breaks the HTML mode.
func reminderMessage(userID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(userID, "⏰ <b>Reminder!</b>\n\n"+html.EscapeString(text))
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}
