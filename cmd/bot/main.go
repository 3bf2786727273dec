package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/config"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/infra/postgres"
	pgrepository "github.com/aliskhannn/flashcard-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/infra/sqlite"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/logger"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/repository"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/service"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/storage"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/tone"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bank, err := loadBank(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to load question bank", zap.Error(err))
	}
	lg.Info("question bank loaded",
		zap.String("source", cfg.Bank.Source),
		zap.Int("categories", len(bank.ListCategories(ctx))),
	)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Mulai bot"},
		{Command: "menu", Description: "Kembali ke menu kuis"},
		{Command: "help", Description: "Bantuan"},
	}
	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	sessionOptions, closeAudio, err := newSessionOptions(cfg, lg)
	if err != nil {
		lg.Fatal("failed to set up audio", zap.Error(err))
	}
	defer closeAudio()

	handler := telegram.NewHandler(bot, lg, bank, telegram.Options{
		TimerRefresh:   cfg.Telegram.TimerRefresh,
		UpdateTimeout:  cfg.Telegram.UpdateTimeout,
		SessionOptions: sessionOptions,
	})

	store := storage.NewSessionStorage(handler.NewSession, cfg.Storage.IdleTTL, lg)
	handler.SetStore(store)
	defer store.CloseAll()

	if err = store.StartSweeper(ctx, cfg.Storage.SweepSpec); err != nil {
		lg.Fatal("failed to start session sweeper", zap.Error(err))
	}

	if err = handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("handler stopped", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

// loadBank builds the question bank from the configured source.
func loadBank(ctx context.Context, cfg *config.Config, lg *zap.Logger) (*repository.BankRepository, error) {
	switch cfg.Bank.Source {
	case config.BankSourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()

		return pgrepository.NewBankLoader(pool).Load(ctx)

	case config.BankSourceSQLite:
		db, err := sqlite.Open(ctx, cfg.Bank.SQLitePath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = db.Close() }()

		empty, err := db.Empty(ctx)
		if err != nil {
			return nil, err
		}
		if empty {
			seed, err := repository.LoadJSONBank(cfg.Bank.JSONPath)
			if err != nil {
				return nil, fmt.Errorf("seed sqlite: %w", err)
			}
			if err = db.Seed(ctx, seed); err != nil {
				return nil, fmt.Errorf("seed sqlite: %w", err)
			}
			lg.Info("sqlite question bank seeded", zap.String("from", cfg.Bank.JSONPath))
		}

		return db.Load(ctx)

	default:
		return repository.NewJSONBankRepository(cfg.Bank.JSONPath)
	}
}

// newSessionOptions returns the per-chat session options and a cleanup
// function for the audio worker pool.
func newSessionOptions(cfg *config.Config, lg *zap.Logger) (func(chatID int64) []service.Option, func(), error) {
	duration := service.WithDefaultDuration(cfg.Game.DefaultDuration)

	if !cfg.Audio.Enabled {
		player := tone.NewLogPlayer(lg)
		return func(int64) []service.Option {
			return []service.Option{duration, service.WithPlayer(player)}
		}, func() {}, nil
	}

	// Tone uploads go through a separate client bounded by audio.send_timeout.
	client := &http.Client{Timeout: cfg.Audio.SendTimeout}
	audioBot, err := tgbotapi.NewBotAPIWithClient(cfg.TelegramAPIToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, nil, fmt.Errorf("create audio bot: %w", err)
	}

	synth := tone.NewSynth(cfg.Audio.SampleRate)
	pool := worker.NewPool(cfg.Audio.Workers, cfg.Audio.QueueSize)

	return func(chatID int64) []service.Option {
		player := telegram.NewTonePlayer(audioBot, chatID, synth, pool, lg)
		return []service.Option{duration, service.WithPlayer(player)}
	}, pool.Close, nil
}
