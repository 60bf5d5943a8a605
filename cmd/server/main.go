package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vytor/kanaflash/internal/api"
	"github.com/vytor/kanaflash/internal/config"
	"github.com/vytor/kanaflash/internal/jobs"
	"github.com/vytor/kanaflash/internal/services"
	"github.com/vytor/kanaflash/internal/worker"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "kanaflash",
		Short:        "Kana learning backend",
		SilenceUsage: true,
		RunE:         runServeCmd,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMistakesCmd())
	rootCmd.AddCommand(newRecordsCmd())
	rootCmd.AddCommand(newKanaCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := setupLogger(cfg, os.Stdout, true)

	log.Info("===========================================")
	log.Info("KanaFlash Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("store_backend=%s", cfg.StoreBackend)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("audio_dir=%s", cfg.AudioDir)
	log.Debug("audio_remote_base=%s", cfg.AudioRemoteBase)
	log.Debug("audio_player_cmd=%q", cfg.AudioPlayerCmd)
	log.Debug("audio_cache_size=%d", cfg.AudioCacheSize)
	log.Debug("prefetch_worker_count=%d", cfg.PrefetchWorkerCount)
	log.Debug("prefetch_queue_size=%d", cfg.PrefetchQueueSize)
	log.Debug("settings_file=%s", cfg.SettingsFile)

	a, err := newApp(cmd.Context(), cfg, log)
	if err != nil {
		log.Error("startup failed: %v", err)
		return err
	}
	defer a.Close()

	if a.player == nil {
		log.Warn("AUDIO_PLAYER_CMD not set, play requests will report failure")
	}

	// Initialize worker pool
	prefetchPool := worker.NewPool(cfg.PrefetchWorkerCount, cfg.PrefetchQueueSize)
	jobQueue := jobs.NewWorkerQueue(prefetchPool, a.resolver)

	srv := &api.Server{
		SettingsService:   a.settingsService,
		MistakeService:    a.mistakeService,
		TestRecordService: a.testRecordService,
		QuizService:       a.quizService,
		AudioService:      services.NewAudioService(a.resolver, a.player, jobQueue),
		DB:                a.db,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	prefetchPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		log.Info("received signal %v, initiating graceful shutdown", sig)
	case err := <-serveErr:
		log.Error("HTTP server error: %v", err)
		prefetchPool.Stop()
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping prefetch pool")
	cancel()
	prefetchPool.Stop()

	log.Info("===========================================")
	log.Info("KanaFlash Server Stopped")
	log.Info("===========================================")
	return nil
}
