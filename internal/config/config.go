package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vytor/kanaflash/internal/audio"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	StoreBackend        string
	AudioDir            string
	AudioRemoteBase     string
	AudioPlayerCmd      string
	AudioCacheSize      int
	PrefetchWorkerCount int
	PrefetchQueueSize   int
	SettingsFile        string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:kanaflash.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		StoreBackend:        strings.ToLower(envOr("STORE_BACKEND", StoreSQLite)),
		AudioDir:            envOr("AUDIO_DIR", "assets/audio"),
		AudioRemoteBase:     envOr("AUDIO_REMOTE_BASE", audio.DefaultRemoteBase),
		AudioPlayerCmd:      os.Getenv("AUDIO_PLAYER_CMD"),
		AudioCacheSize:      envIntOr("AUDIO_CACHE_SIZE", audio.DefaultCacheSize),
		PrefetchWorkerCount: envIntOr("PREFETCH_WORKER_COUNT", 2),
		PrefetchQueueSize:   envIntOr("PREFETCH_QUEUE_SIZE", 256),
		SettingsFile:        envOr("SETTINGS_FILE", "kanaflash.toml"),
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	switch c.StoreBackend {
	case StoreSQLite:
		if c.DBPath == "" {
			problems = append(problems, "DB_PATH cannot be empty")
		}
	case StoreMemory:
	default:
		problems = append(problems, fmt.Sprintf("STORE_BACKEND must be %s or %s, got %q", StoreSQLite, StoreMemory, c.StoreBackend))
	}
	switch strings.ToUpper(strings.TrimSpace(c.LogLevel)) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", c.LogLevel))
	}
	if c.AudioRemoteBase != "" {
		if u, err := url.Parse(c.AudioRemoteBase); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, fmt.Sprintf("AUDIO_REMOTE_BASE must be an http(s) URL, got %q", c.AudioRemoteBase))
		}
	}
	if c.AudioCacheSize < 1 {
		problems = append(problems, "AUDIO_CACHE_SIZE must be at least 1")
	}
	if c.PrefetchWorkerCount < 1 || c.PrefetchWorkerCount > 32 {
		problems = append(problems, "PREFETCH_WORKER_COUNT must be between 1 and 32")
	}
	if c.PrefetchQueueSize < 1 {
		problems = append(problems, "PREFETCH_QUEUE_SIZE must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
