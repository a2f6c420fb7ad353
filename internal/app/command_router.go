package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"phone_lookup_bot/internal/domain/phone"
)

// User-visible reply texts.
const (
	msgAdminGreeting  = "Привет, администратор! Используйте команду /admin для отправки сообщений всем пользователям."
	msgUserGreeting   = "Привет! Отправьте мне любой номер телефона, и я создам ссылки на Telegram и WhatsApp."
	msgAccessDenied   = "У вас нет доступа к этой команде."
	msgBroadcastSent  = "Сообщение отправлено всем пользователям."
	msgBroadcastEmpty = "Сообщение не может быть пустым."
	msgParseError     = "Ошибка: Неверный формат номера телефона. Убедитесь, что номер в международном формате."
	msgInvalidNumber  = "Ошибка: Некорректный номер телефона."
)

// Sender describes the author of an inbound message, as reported by the
// bot platform.
type Sender struct {
	ID       int64
	FullName string
	Username string
}

// CommandRouter maps inbound commands and free text to handler logic. Methods
// return the reply text, so the transport layer only forwards strings and the
// routing table stays testable with a fake client.
//
// Per-admin conversation flow: /admin puts the admin into the awaiting state,
// the next text message is broadcast (or rejected when empty) and the state
// returns to idle. Everyone else always stays on the stateless path.
type CommandRouter struct {
	registration       *RegistrationService
	broadcast          *BroadcastService
	notifier           *AdminNotifier
	state              *ConversationState
	lookup             phone.Lookup
	adminIDs           []int64
	defaultCountryCode string
	logger             *logrus.Entry
}

func NewCommandRouter(
	registration *RegistrationService,
	broadcast *BroadcastService,
	notifier *AdminNotifier,
	state *ConversationState,
	lookup phone.Lookup,
	adminIDs []int64,
	defaultCountryCode string,
	logger *logrus.Entry,
) *CommandRouter {
	return &CommandRouter{
		registration:       registration,
		broadcast:          broadcast,
		notifier:           notifier,
		state:              state,
		lookup:             lookup,
		adminIDs:           adminIDs,
		defaultCountryCode: defaultCountryCode,
		logger:             logger,
	}
}

func (r *CommandRouter) isAdmin(senderID int64) bool {
	for _, id := range r.adminIDs {
		if id == senderID {
			return true
		}
	}
	return false
}

// HandleStart registers the sender if unknown, notifies the admins about the
// /start and returns a role-appropriate greeting.
func (r *CommandRouter) HandleStart(ctx context.Context, sender Sender) (string, error) {
	created, total, err := r.registration.Register(ctx, sender.ID, sender.FullName)
	if err != nil {
		return "", err
	}

	r.logger.WithFields(logrus.Fields{
		"sender_id":   sender.ID,
		"new_user":    created,
		"total_users": total,
	}).Info("Processed /start")

	var userLink string
	if sender.Username != "" {
		userLink = fmt.Sprintf(`<a href="https://t.me/%s">%s</a>`, sender.Username, sender.FullName)
	} else {
		userLink = fmt.Sprintf("%s (Username отсутствует)", sender.FullName)
	}
	r.notifier.Notify(
		fmt.Sprintf("Пользователь %s (ID: %d) нажал /start. Всего пользователей: %d", userLink, sender.ID, total),
		&telebot.SendOptions{ParseMode: telebot.ModeHTML},
	)

	if r.isAdmin(sender.ID) {
		return msgAdminGreeting, nil
	}
	return msgUserGreeting, nil
}

// HandleAdmin replies with the current user count and prompts the admin for a
// broadcast text. Non-admins are rejected and their state is left untouched.
func (r *CommandRouter) HandleAdmin(ctx context.Context, senderID int64) (string, error) {
	if !r.isAdmin(senderID) {
		r.logger.WithField("sender_id", senderID).Warn("Unauthorized /admin attempt")
		return msgAccessDenied, nil
	}

	count, err := r.broadcast.UserCount(ctx)
	if err != nil {
		return "", err
	}

	r.state.SetAwaiting(senderID)
	return fmt.Sprintf("Введите сообщение, которое вы хотите отправить всем пользователям. Количество пользователей: %d", count), nil
}

// HandleID replies with the sender's own Telegram ID.
func (r *CommandRouter) HandleID(senderID int64) string {
	return strconv.FormatInt(senderID, 10)
}

// HandleText processes any non-command text: a pending broadcast prompt for
// an admin, or a phone-number submission for everyone else.
func (r *CommandRouter) HandleText(ctx context.Context, senderID int64, text string) (string, error) {
	if r.state.IsAwaiting(senderID) {
		r.state.Clear(senderID)

		if !r.isAdmin(senderID) {
			// Only reachable if the sender was dropped from the admin list
			// while a prompt was pending.
			r.logger.WithField("sender_id", senderID).Warn("Non-admin reached broadcast prompt state")
			return msgAccessDenied, nil
		}

		content := strings.TrimSpace(text)
		if content == "" {
			return msgBroadcastEmpty, nil
		}

		if err := r.broadcast.Broadcast(ctx, content); err != nil {
			return "", err
		}
		return msgBroadcastSent, nil
	}

	return r.handlePhoneNumber(senderID, text), nil
}

// handlePhoneNumber runs the lookup pipeline: normalize, resolve metadata,
// build deep links. Lookup failures become a user reply plus one admin
// notification; they never propagate.
func (r *CommandRouter) handlePhoneNumber(senderID int64, text string) string {
	normalized := phone.Normalize(strings.TrimSpace(text), r.defaultCountryCode)

	logCtx := r.logger.WithFields(logrus.Fields{
		"sender_id":  senderID,
		"normalized": normalized,
	})
	logCtx.Info("Processing phone number submission")

	info, err := r.lookup.Resolve(normalized)
	switch {
	case errors.Is(err, phone.ErrNotANumber):
		logCtx.WithError(err).Warn("Phone number parse failed")
		r.notifier.Notify(fmt.Sprintf("Ошибка разбора номера от пользователя %d: %v", senderID, err), nil)
		return msgParseError
	case errors.Is(err, phone.ErrInvalidNumber):
		logCtx.WithError(err).Warn("Phone number is not valid")
		r.notifier.Notify(fmt.Sprintf("Ошибка проверки номера от пользователя %d: %v", senderID, err), nil)
		return msgInvalidNumber
	case err != nil:
		logCtx.WithError(err).Error("Phone lookup failed")
		r.notifier.Notify(fmt.Sprintf("Общая ошибка от пользователя %d: %v", senderID, err), nil)
		return fmt.Sprintf("Ошибка: %v", err)
	}

	return fmt.Sprintf(
		"Телефон: %s\nСтрана: %s\nОператор: %s\nTelegram: %s\nWhatsApp: %s",
		info.Number,
		info.Country,
		info.Carrier,
		phone.TelegramLink(info.Number),
		phone.WhatsAppLink(info.Number),
	)
}
