package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/vytor/kanaflash/internal/audio"
	"github.com/vytor/kanaflash/internal/config"
	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/quiz"
	"github.com/vytor/kanaflash/internal/repository/kv"
	"github.com/vytor/kanaflash/internal/services"
	"github.com/vytor/kanaflash/internal/session"
	"github.com/vytor/kanaflash/internal/storage"
)

// app holds everything built from the configuration.
type app struct {
	cfg   config.Config
	log   *logger.Logger
	store storage.KeyValueStore
	db    *sql.DB

	settingsService   services.SettingsService
	mistakeService    services.MistakeService
	testRecordService services.TestRecordService
	quizService       services.QuizService
	resolver          *audio.Resolver
	player            audio.Player
}

func setupLogger(cfg config.Config, out io.Writer, colors bool) *logger.Logger {
	log := logger.New(
		logger.WithOutput(out),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(colors),
	)
	logger.SetDefault(log)
	return log
}

// newApp opens the store, loads the session and builds the services.
func newApp(ctx context.Context, cfg config.Config, log *logger.Logger) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log}

	switch cfg.StoreBackend {
	case config.StoreMemory:
		log.Warn("using in-memory store, data is lost on exit")
		a.store = storage.NewMemoryStore()
	default:
		st, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.store = st
		a.db = st.DB()
	}

	defaults, err := config.LoadSettingsFile(cfg.SettingsFile, models.DefaultSettings())
	if err != nil {
		a.Close()
		return nil, err
	}
	if err := services.ValidateSettings(defaults); err != nil {
		a.Close()
		return nil, fmt.Errorf("settings file %s: %w", cfg.SettingsFile, err)
	}

	settingsRepo := kv.NewSettingsRepository(a.store, defaults)
	mistakeRepo := kv.NewMistakeRepository(a.store)
	recordRepo := kv.NewTestRecordRepository(a.store)

	ctx = logger.NewContext(ctx, log)
	state, err := session.Load(ctx, settingsRepo, mistakeRepo, recordRepo)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var remote audio.Fetcher
	if cfg.AudioRemoteBase != "" {
		remote = audio.NewRemoteSource(cfg.AudioRemoteBase, 15*time.Second)
	}
	a.resolver, err = audio.NewResolver(audio.LocalSource{Dir: cfg.AudioDir}, remote, cfg.AudioCacheSize)
	if err != nil {
		a.Close()
		return nil, err
	}
	if p := audio.NewCommandPlayer(cfg.AudioPlayerCmd); p != nil {
		a.player = p
	}

	a.settingsService = services.NewSettingsService(state, settingsRepo)
	a.mistakeService = services.NewMistakeService(state, mistakeRepo)
	a.testRecordService = services.NewTestRecordService(state, recordRepo)
	a.quizService = services.NewQuizService(state, quiz.New(), a.mistakeService, a.testRecordService)
	return a, nil
}

func (a *app) Close() {
	if a.store == nil {
		return
	}
	a.log.Debug("closing store")
	if err := a.store.Close(); err != nil {
		a.log.Error("failed to close store: %v", err)
	}
	a.store = nil
}
