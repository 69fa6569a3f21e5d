package handler

import (
	"context"

	tele "gopkg.in/telebot.v3"
)

// TelegramSender delivers notifications as private chat messages
type TelegramSender struct {
	bot *tele.Bot
}

// NewTelegramSender creates a sender over bot
func NewTelegramSender(bot *tele.Bot) *TelegramSender {
	return &TelegramSender{bot: bot}
}

// Send messages userID. Members who never opened a chat with the bot
// cannot be reached and come back as an error.
func (s *TelegramSender) Send(ctx context.Context, userID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.bot.Send(&tele.User{ID: userID}, text, mainMenuMarkup())
	return err
}
