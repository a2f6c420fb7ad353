package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phone_lookup_bot/internal/app"
	"phone_lookup_bot/internal/domain/user"
	"phone_lookup_bot/internal/infra/config"
	idb "phone_lookup_bot/internal/infra/database"
	"phone_lookup_bot/internal/infra/logger"
	"phone_lookup_bot/internal/infra/phonemeta"
	"phone_lookup_bot/internal/infra/scheduler"
	"phone_lookup_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Phone Lookup Bot starting...")

	mainLogger := log.New(os.Stdout, "MAIN: ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.Environment)
	appLogger := logger.Get()

	mainLogger.Printf("INFO: Configuration loaded. LogLevel: %s, Environment: %s, Storage: %s, Admins: %d",
		cfg.LogLevel, cfg.Environment, cfg.StorageDriver, len(cfg.AdminTelegramIDs))

	// Initialize the user store. Both backends satisfy the same repository
	// interface; everything downstream depends only on that.
	var userRepo user.Repository
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			mainLogger.Fatalf("FATAL: Could not connect to database: %v", err)
		}
		defer db.Close()
		userRepo = idb.NewPostgresUserRepository(db)
		mainLogger.Println("INFO: PostgreSQL user repository initialized.")
	case config.DriverSQLite:
		gormDB, err := idb.NewSQLiteConnection(cfg.SQLitePath)
		if err != nil {
			mainLogger.Fatalf("FATAL: Could not open SQLite database: %v", err)
		}
		if sqlDB, err := gormDB.DB(); err == nil {
			defer sqlDB.Close()
		}
		userRepo = idb.NewGormUserRepository(gormDB)
		mainLogger.Println("INFO: SQLite user repository initialized.")
	}

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			log.Printf("ERROR (telebot): %v", err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				log.Printf("ERROR (telebot context): Message: %s, Sender: %d, Chat: %d", c.Text(), c.Sender().ID, c.Chat().ID)
			}
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}

	botClient := telegram.NewTelebotAdapter(bot)

	// Initialize application services
	notifier := app.NewAdminNotifier(botClient, cfg.AdminTelegramIDs, appLogger.WithField("component", "admin_notifier"))
	registrationService := app.NewRegistrationService(userRepo)
	broadcastService := app.NewBroadcastService(userRepo, botClient, appLogger.WithField("component", "broadcast"))
	conversationState := app.NewConversationState()
	lookup := phonemeta.NewMetadataLookup("en")

	router := app.NewCommandRouter(
		registrationService,
		broadcastService,
		notifier,
		conversationState,
		lookup,
		cfg.AdminTelegramIDs,
		cfg.DefaultCountryCode,
		appLogger.WithField("component", "router"),
	)
	mainLogger.Println("INFO: Command router initialized.")

	// Register Handlers
	ctx := context.Background()
	if err := telegram.RegisterBotCommands(ctx, bot, router, appLogger.WithField("component", "handlers")); err != nil {
		mainLogger.Fatalf("FATAL: Could not register bot commands: %v", err)
	}
	mainLogger.Println("INFO: Bot command handlers registered.")

	// Daily stats report to admins
	schedulerLogger := log.New(os.Stdout, "SCHEDULER: ", log.LstdFlags|log.Lshortfile)
	statsScheduler := scheduler.NewStatsScheduler(broadcastService, notifier, schedulerLogger, cfg.CronSpecDailyStats)
	statsScheduler.Start()

	mainLogger.Println("INFO: Application setup complete. Bot is starting...")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Println("INFO: Shutting down application...")
	statsScheduler.Stop()
	bot.Stop()
	mainLogger.Println("INFO: Application shut down gracefully.")
}
