// Package telegram is the bot's user surface: it serves the chat
// commands over Telegram long polling and delivers transaction
// notifications as chat messages.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NewAPI authenticates against the Telegram Bot API with the given
// token. The returned handle is shared by the command bot and the
// notification sink.
func NewAPI(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	api.Debug = false
	return api, nil
}
