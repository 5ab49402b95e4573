package main

import (
	"fmt"
	"net/http"
	"os"

	"phonebot/internal/config"
	"phonebot/internal/logger"
	"phonebot/internal/telegram"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Webhook error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: webhook <set|delete|info> [--drop-pending]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.BotConfigured() {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	registrar, err := telegram.NewRegistrar(
		cfg.TelegramBotToken,
		cfg.TelegramAPIEndpoint,
		&http.Client{Timeout: cfg.TelegramSendTimeout},
	)
	if err != nil {
		return err
	}
	log := logger.Get()
	log.Infof("Authorized as @%s", registrar.BotUsername())

	switch command := os.Args[1]; command {
	case "set":
		link, err := telegram.WebhookURL(cfg.PublicURL)
		if err != nil {
			return err
		}
		if err := registrar.Set(link); err != nil {
			return err
		}
		log.Infof("Webhook set to %s", link)

	case "delete":
		dropPending := len(os.Args) > 2 && os.Args[2] == "--drop-pending"
		if err := registrar.Delete(dropPending); err != nil {
			return err
		}
		log.Infow("Webhook deleted", "drop_pending_updates", dropPending)

	case "info":
		info, err := registrar.Info()
		if err != nil {
			return err
		}
		log.Infow("Webhook info",
			"url", info.URL,
			"pending_update_count", info.PendingUpdateCount,
			"last_error_message", info.LastErrorMessage,
			"last_error_date", info.LastErrorDate,
		)

	default:
		return fmt.Errorf("unknown command: %s (use set, delete, or info)", command)
	}

	return nil
}
