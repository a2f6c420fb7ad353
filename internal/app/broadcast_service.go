package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"phone_lookup_bot/internal/domain/telegram"
	"phone_lookup_bot/internal/domain/user"
)

// BroadcastService delivers one message to every registered user.
type BroadcastService struct {
	userRepo user.Repository
	client   telegram.Client
	logger   *logrus.Entry
}

func NewBroadcastService(ur user.Repository, client telegram.Client, logger *logrus.Entry) *BroadcastService {
	return &BroadcastService{
		userRepo: ur,
		client:   client,
		logger:   logger,
	}
}

// UserCount returns the number of registered users.
func (s *BroadcastService) UserCount(ctx context.Context) (int, error) {
	return s.userRepo.Count(ctx)
}

// Broadcast sends the text to every user registered at the moment of the
// call. The recipient list is a snapshot: users registered afterwards are
// not included. Deliveries run concurrently; a failure for one recipient
// (e.g. the user blocked the bot) is logged and never aborts the rest, and
// no retry is attempted. Broadcast returns once every attempt was issued.
func (s *BroadcastService) Broadcast(ctx context.Context, text string) error {
	userIDs, err := s.userRepo.ListTelegramIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users for broadcast: %w", err)
	}

	if len(userIDs) == 0 {
		s.logger.Warn("No users to broadcast to")
		return nil
	}

	s.logger.WithField("user_count", len(userIDs)).Info("Starting broadcast")

	var wg sync.WaitGroup
	for _, userID := range userIDs {
		wg.Add(1)
		go func(recipientID int64) {
			defer wg.Done()
			if err := s.client.SendMessage(recipientID, text, nil); err != nil {
				s.logger.WithError(err).WithField("user_id", recipientID).Error("Failed to deliver broadcast message")
				return
			}
			s.logger.WithField("user_id", recipientID).Debug("Broadcast message delivered")
		}(userID)
	}
	wg.Wait()

	s.logger.Info("Broadcast finished")
	return nil
}
