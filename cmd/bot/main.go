package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"WeatherHubBot/internal/bot"
	"WeatherHubBot/internal/config"
	"WeatherHubBot/internal/database"
	"WeatherHubBot/internal/locales"
	"WeatherHubBot/internal/logger"
	"WeatherHubBot/internal/scheduler"
	"WeatherHubBot/internal/server"
	"WeatherHubBot/internal/storage"
	"WeatherHubBot/internal/weather"
)

func main() {
	// Загружаем .env файл, если он есть
	envPath, envErr := config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.Setup("info", false, os.Stderr)
		bootLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.Setup(cfg.Log.Level, cfg.Log.Pretty, os.Stdout)
	if envErr != nil {
		log.Warn().Err(envErr).Msg("Continuing with system environment variables")
	} else {
		log.Info().Str("path", envPath).Msg("Loaded .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Database, logger.Component(log, "database"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	users := database.NewUserStore(db)

	dialogues, closeDialogues, err := newDialogueStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create dialogue storage")
	}
	defer closeDialogues()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := bot.NewMetrics(registry)

	texts, err := locales.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load locales")
	}

	// Инициализация бота
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to authorize bot")
	}
	api.Debug = cfg.Telegram.Debug
	log.Info().Str("account", api.Self.UserName).Msg("Authorized on account")

	handlers := bot.NewHandlers(bot.Deps{
		Users:      users,
		Dialogues:  dialogues,
		Forecast:   weather.NewClient(&http.Client{Timeout: cfg.Forecast.Timeout}, cfg.Forecast.BaseURL),
		Credential: bot.EnvCredential(bot.CredentialEnv),
		Texts:      texts,
		Responder:  bot.NewTelegramResponder(api),
		Metrics:    metrics,
		Logger:     logger.Component(log, "handlers"),
	})
	router := bot.NewRouter(handlers, dialogues, metrics, logger.Component(log, "router"))

	housekeeping := scheduler.New(dialogues, users, metrics, cfg.Dialogue.CleanupInterval, logger.Component(log, "scheduler"))
	if err := housekeeping.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}
	defer housekeeping.Stop()

	deps := server.Deps{
		Gatherer: registry,
		Logger:   logger.Component(log, "http"),
	}

	var (
		updates <-chan tgbotapi.Update
		done    <-chan struct{}
	)
	if cfg.Telegram.UseWebhook() {
		hook := server.NewWebhook(api.HandleUpdate, api.Buffer, logger.Component(log, "webhook"))
		deps.WebhookPath = cfg.Telegram.WebhookPath
		deps.Webhook = hook
		updates = hook.Updates()

		if err := setWebhook(api, cfg.Telegram.WebhookURL, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to set webhook")
		}

		// после закрытия вебхук отвечает 503, а consume дочитывает уже принятое
		go func() {
			<-ctx.Done()
			hook.Close()
		}()
	} else {
		// вебхук мешает getUpdates
		if _, err := api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			log.Warn().Err(err).Msg("Failed to delete webhook")
		}
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates = api.GetUpdatesChan(u)
		done = ctx.Done()
		log.Info().Msg("Long polling started")
	}

	srv := server.New(":"+cfg.HTTPPort, server.NewRouter(deps), logger.Component(log, "http"))
	srv.Start()

	consume(done, updates, router, log)

	log.Info().Msg("Shutting down server ...")
	if !cfg.Telegram.UseWebhook() {
		api.StopReceivingUpdates()
	}
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("HTTP server Shutdown")
	}
	log.Info().Msg("Server gracefully stopped")
}

// newDialogueStore выбирает Redis, если он настроен и отвечает, иначе память процесса
func newDialogueStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storage.DialogueStore, func(), error) {
	if cfg.Redis.Enabled() {
		client := storage.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err := storage.Ping(ctx, client); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Address).Msg("Redis unavailable, dialogue state kept in memory")
			_ = client.Close()
		} else {
			store := storage.NewRedisStorage(client, cfg.Dialogue.TTL)
			log.Info().Str("addr", cfg.Redis.Address).Msg("Dialogue state stored in Redis")
			return store, func() { _ = store.Close() }, nil
		}
	}

	store, err := storage.NewMemoryStorage(cfg.Dialogue.CacheSize, cfg.Dialogue.TTL)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

func setWebhook(api *tgbotapi.BotAPI, url string, log zerolog.Logger) error {
	webhook, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return err
	}
	if _, err := api.Request(webhook); err != nil {
		return err
	}

	info, err := api.GetWebhookInfo()
	if err != nil {
		return err
	}
	if info.LastErrorDate != 0 {
		log.Warn().Str("error", info.LastErrorMessage).Msg("Telegram webhook error")
	}
	log.Info().Str("url", url).Msg("Webhook set")
	return nil
}

type dispatcher interface {
	Dispatch(ctx context.Context, upd bot.Update) error
}

// consume запускает по горутине на апдейт и ждёт их завершения.
// Выход: закрытие done или закрытие канала updates (вебхук закрывает его сам, когда всё принятое уже в канале).
func consume(done <-chan struct{}, updates <-chan tgbotapi.Update, router dispatcher, log zerolog.Logger) {
	var wg sync.WaitGroup
	defer wg.Wait()

	// начатые апдейты дорабатывают после сигнала остановки
	ctx := context.Background()

	for {
		select {
		case <-done:
			return
		case u, ok := <-updates:
			if !ok {
				return
			}
			upd, ok := bot.FromTelegram(u)
			if !ok {
				continue
			}

			wg.Add(1)
			go func() {
				defer wg.Done()

				l := log.With().
					Str("update_id", uuid.NewString()).
					Int("telegram_update_id", u.UpdateID).
					Int64("user_id", upd.UserID).
					Logger()

				if err := router.Dispatch(ctx, upd); err != nil {
					l.Error().Err(err).Str("kind", upd.Kind.String()).Msg("Failed to handle update")
				}
			}()
		}
	}
}
