// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"phone_lookup_bot/internal/app"
)

// RegisterBotCommands installs the command menu and wires the /start, /admin
// and /id commands plus the free-text handler to the command router.
func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	router *app.CommandRouter,
	baseLogger *logrus.Entry,
) error {
	err := b.SetCommands([]telebot.Command{
		{Text: "start", Description: "Запустить бота"},
		{Text: "admin", Description: "Панель администратора"},
		{Text: "id", Description: "Получение ID"},
	})
	if err != nil {
		return err
	}

	b.Handle("/start", func(c telebot.Context) error {
		sender := c.Sender()
		logCtx := baseLogger.WithField("command", "/start").WithField("sender_id", sender.ID)
		logCtx.Info("Command received")

		fullName := sender.FirstName
		if sender.LastName != "" {
			fullName = fullName + " " + sender.LastName
		}

		reply, err := router.HandleStart(ctx, app.Sender{
			ID:       sender.ID,
			FullName: fullName,
			Username: sender.Username,
		})
		if err != nil {
			logCtx.WithError(err).Error("Failed to process /start")
			return err
		}
		return c.Send(reply)
	})

	b.Handle("/admin", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := baseLogger.WithField("command", "/admin").WithField("sender_id", senderID)
		logCtx.Info("Command received")

		reply, err := router.HandleAdmin(ctx, senderID)
		if err != nil {
			logCtx.WithError(err).Error("Failed to process /admin")
			return err
		}
		return c.Send(reply)
	})

	b.Handle("/id", func(c telebot.Context) error {
		return c.Send(router.HandleID(c.Sender().ID))
	})

	b.Handle(telebot.OnText, func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := baseLogger.WithField("handler", "text").WithField("sender_id", senderID)

		reply, err := router.HandleText(ctx, senderID, c.Text())
		if err != nil {
			logCtx.WithError(err).Error("Failed to process text message")
			return err
		}
		return c.Send(reply)
	})

	return nil
}
