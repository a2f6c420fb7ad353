package app

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"phone_lookup_bot/internal/domain/telegram"
)

// AdminNotifier delivers service notifications to every configured admin.
// Delivery is best effort: a failure for one admin is logged and does not
// stop delivery to the rest, and nothing is reported back to the caller.
type AdminNotifier struct {
	client   telegram.Client
	adminIDs []int64
	logger   *logrus.Entry
}

func NewAdminNotifier(client telegram.Client, adminIDs []int64, logger *logrus.Entry) *AdminNotifier {
	return &AdminNotifier{
		client:   client,
		adminIDs: adminIDs,
		logger:   logger,
	}
}

// Notify sends the text to all admins.
func (n *AdminNotifier) Notify(text string, options *telebot.SendOptions) {
	for _, adminID := range n.adminIDs {
		if err := n.client.SendMessage(adminID, text, options); err != nil {
			n.logger.WithError(err).WithField("admin_id", adminID).Error("Failed to notify admin")
		}
	}
}
