package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	GeminiAPIKey      string
	GeminiModel       string
	YouTubeAPIKey     string
	TelegramToken     string
	HTTPAddr          string
	HistoryBackend    string
	HistoryDBPath     string
	MaxHistorySize    int
	ContextWindowSize int
	NLUTimeout        time.Duration
	VideoTimeout      time.Duration
	LogLevel          string
}

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       "gemini-2.0-flash",
		YouTubeAPIKey:     os.Getenv("YOUTUBE_API_KEY"),
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		HTTPAddr:          ":8080",
		HistoryBackend:    BackendSQLite,
		HistoryDBPath:     "data/assistant.db",
		MaxHistorySize:    100, // Default qiymat
		ContextWindowSize: 5,
		NLUTimeout:        20 * time.Second,
		VideoTimeout:      5 * time.Second,
		LogLevel:          "info",
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.GeminiModel = model
	}
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		config.HTTPAddr = addr
	}
	if backend := os.Getenv("HISTORY_BACKEND"); backend != "" {
		config.HistoryBackend = backend
	}
	if dbPath := os.Getenv("HISTORY_DB_PATH"); dbPath != "" {
		config.HistoryDBPath = dbPath
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.LogLevel = level
	}

	if raw := os.Getenv("MAX_HISTORY_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("MAX_HISTORY_SIZE noto'g'ri formatda: %q", raw)
		}
		config.MaxHistorySize = parsed
	}

	if raw := os.Getenv("CONTEXT_WINDOW_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("CONTEXT_WINDOW_SIZE noto'g'ri formatda: %q", raw)
		}
		config.ContextWindowSize = parsed
	}

	if raw := os.Getenv("NLU_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("NLU_TIMEOUT noto'g'ri formatda: %q", raw)
		}
		config.NLUTimeout = parsed
	}

	if raw := os.Getenv("VIDEO_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("VIDEO_TIMEOUT noto'g'ri formatda: %q", raw)
		}
		config.VideoTimeout = parsed
	}

	// Validatsiya
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable bo'sh")
	}
	if config.HistoryBackend != BackendSQLite && config.HistoryBackend != BackendMemory {
		return nil, fmt.Errorf("HISTORY_BACKEND noma'lum: %q", config.HistoryBackend)
	}

	return config, nil
}
