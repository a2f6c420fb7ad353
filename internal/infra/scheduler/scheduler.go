package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"phone_lookup_bot/internal/app"
)

// StatsScheduler periodically reports the registered-user count to the admins.
type StatsScheduler struct {
	cronEngine    *cron.Cron
	broadcast     *app.BroadcastService
	notifier      *app.AdminNotifier
	logger        *log.Logger
	cronSpecDaily string
}

func NewStatsScheduler(
	broadcast *app.BroadcastService,
	notifier *app.AdminNotifier,
	logger *log.Logger,
	cronSpecDaily string, // e.g., "0 9 * * *" (9:00 AM daily)
) *StatsScheduler {
	return &StatsScheduler{
		cronEngine:    cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		broadcast:     broadcast,
		notifier:      notifier,
		logger:        logger,
		cronSpecDaily: cronSpecDaily,
	}
}

func (s *StatsScheduler) Start() {
	s.logger.Println("INFO: Starting stats scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecDaily, func() {
		s.logger.Println("INFO: Cron job triggered for daily stats report.")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		count, err := s.broadcast.UserCount(ctx)
		if err != nil {
			s.logger.Printf("ERROR: Failed to count users for daily stats report: %v", err)
			return
		}
		s.notifier.Notify(fmt.Sprintf("Ежедневная сводка: всего пользователей: %d", count), nil)
		s.logger.Printf("INFO: Daily stats report sent. Users: %d", count)
	})
	if err != nil {
		s.logger.Fatalf("FATAL: Could not add daily stats cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Println("INFO: Stats scheduler started.")
}

func (s *StatsScheduler) Stop() {
	s.logger.Println("INFO: Stopping stats scheduler...")
	ctx := s.cronEngine.Stop() // Waits for running jobs.
	<-ctx.Done()
	s.logger.Println("INFO: Stats scheduler gracefully stopped.")
}
