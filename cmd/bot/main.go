package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	mainLogger := logger.Component("main")

	cfg, err := config.Load()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			mainLogger.WithField("missing", cfgErr.Missing).Fatal("Environment variables are not configured")
		}
		mainLogger.WithError(err).Fatal("Could not load application configuration")
	}

	logCloser, err := logger.Init(cfg)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not initialize logger")
	}
	defer logCloser.Close()

	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Schedule: %s", cfg.LogLevel, cfg.Environment, cfg.PollSchedule)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional notification journal
	var journal notification.Journal
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not connect to database")
		}
		defer db.Close()
		if err := idb.Migrate(ctx, db); err != nil {
			mainLogger.WithError(err).Fatal("Could not prepare notification journal")
		}
		journal = idb.NewPostgresJournalRepository(db)
		mainLogger.Info("Notification journal enabled.")
	}

	// Initialize Telegram Bot. Offline skips the getMe call so startup needs no network.
	pref := telebot.Settings{
		Token:   cfg.TelegramToken,
		Offline: !cfg.BotCommandsEnabled,
		Poller:  &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Component("telebot").WithError(err)
			if c != nil && c.Chat() != nil {
				entry = entry.WithField("chat_id", c.Chat().ID)
			}
			entry.Error("Telegram handler failed")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	if cfg.BotCommandsEnabled {
		telegram.RegisterBotCommands(bot, logger.Component("telegram"))
		go bot.Start()
		defer bot.Stop()
		mainLogger.Info("Bot command handlers registered.")
	}

	pacer, err := scheduler.NewPacer(cfg.PollSchedule, logger.Component("scheduler"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create poll scheduler")
	}

	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, journal, logger.Component("notifier"))
	apiClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, logger.Component("practicum"))

	cursor := cfg.PollFromDate
	if cursor == 0 {
		cursor = time.Now().Unix()
	}
	poller := app.NewPoller(apiClient, notifier, pacer, cursor, logger.Component("poller"))

	_ = poller.Run(ctx) // returns only once ctx is cancelled
	mainLogger.Info("Application shut down gracefully.")
}
