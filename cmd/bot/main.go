package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mindflowbot/mindflow/internal/ai"
	"github.com/mindflowbot/mindflow/internal/bot"
	"github.com/mindflowbot/mindflow/internal/categorizer"
	"github.com/mindflowbot/mindflow/internal/config"
	"github.com/mindflowbot/mindflow/internal/messenger"
	"github.com/mindflowbot/mindflow/internal/scheduler"
	"github.com/mindflowbot/mindflow/internal/storage"
	"github.com/mindflowbot/mindflow/internal/storage/postgres"
	"github.com/mindflowbot/mindflow/internal/storage/sqlite"
	"github.com/mindflowbot/mindflow/internal/timeparse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var refiner categorizer.Refiner
	if cfg.AIAPIKey != "" {
		refiner = ai.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	} else {
		log.Println("AI_API_KEY not set, keyword categorization only")
	}
	cat := categorizer.New(store, refiner)

	parser := timeparse.New(parserLocale(cfg.ParserLocale))

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("Failed to create Telegram bot: %v", err)
	}

	sched := scheduler.New(store, messenger.NewTelegram(api), cfg.CheckInterval)
	go sched.Run(ctx)

	b, err := bot.New(api, store, cat, parser, sched)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down", sig)
		cancel()
	}()

	if err := b.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot stopped: %v", err)
	}
	log.Println("Shutdown complete")
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.DatabaseURI != "" {
		log.Println("Using PostgreSQL storage")
		return postgres.New(ctx, cfg.DatabaseURI)
	}
	log.Printf("Using SQLite storage at %s", cfg.DatabasePath)
	return sqlite.New(cfg.DatabasePath)
}

func parserLocale(name string) timeparse.Locale {
	switch name {
	case "ru":
		return timeparse.Russian()
	default:
		return timeparse.English()
	}
}
