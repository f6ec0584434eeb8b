package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// RAG backend connection
	RagBackendURL    string
	RagBackendAPIKey string
	BackendTimeout   time.Duration

	// Auth for the JSON API. Empty leaves /api open.
	RagviewAPIKey string

	// Navigation targets
	ChatsURL string

	// Upload limits
	MaxUploadBytes int64

	// Chunking defaults for previews
	DefaultChunkSize    int
	DefaultChunkOverlap int
	MinChunk            int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		RagBackendURL:    envOr("RAG_BACKEND_URL", "http://localhost:8081"),
		RagBackendAPIKey: os.Getenv("RAG_BACKEND_API_KEY"),
		BackendTimeout:   envDuration("BACKEND_TIMEOUT", 30*time.Second),

		RagviewAPIKey: os.Getenv("RAGVIEW_API_KEY"),

		ChatsURL: envOr("CHATS_URL", "/chats"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultChunkSize:    envInt("DEFAULT_CHUNK_SIZE", 1500),
		DefaultChunkOverlap: envInt("DEFAULT_CHUNK_OVERLAP", 200),
		MinChunk:            envInt("MIN_CHUNK", 1),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.BackendTimeout <= 0 {
		cfg.BackendTimeout = 30 * time.Second
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DefaultChunkSize <= 0 {
		cfg.DefaultChunkSize = 1500
	}
	if cfg.DefaultChunkOverlap <= 0 {
		cfg.DefaultChunkOverlap = 200
	}
	if cfg.MinChunk <= 0 {
		cfg.MinChunk = 1
	}

	return cfg
}

func (c Config) Validate() error {
	u, err := url.Parse(c.RagBackendURL)
	if err != nil {
		return fmt.Errorf("RAG_BACKEND_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("RAG_BACKEND_URL must be an absolute http(s) URL, got %q", c.RagBackendURL)
	}
	if c.ChatsURL == "" {
		return fmt.Errorf("CHATS_URL is required")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
