package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// It decouples registration, broadcast and notification logic from the
// concrete bot library, so tests can record sent messages with a fake.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
