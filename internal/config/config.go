package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	DesigndocAPIKey string

	// Groq analysis
	GroqAPIKey    string
	GroqModel     string
	GroqMaxTokens int

	// Worker pool
	WorkerCount          int
	MaxQueueSize         int
	MaxConcurrentAnalyze int

	// Upload limits
	MaxUploadBytes int64

	// Chunking defaults
	ChunkThreshold int
	ChunkSize      int
	ChunkOverlap   int

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		DesigndocAPIKey: os.Getenv("DESIGNDOC_API_KEY"),

		GroqAPIKey:    os.Getenv("GROQ_API_KEY"),
		GroqModel:     envOr("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqMaxTokens: envInt("GROQ_MAX_TOKENS", 3000),

		WorkerCount:          envInt("WORKER_COUNT", 4),
		MaxQueueSize:         envInt("MAX_QUEUE_SIZE", 100),
		MaxConcurrentAnalyze: envInt("MAX_CONCURRENT_ANALYZE", 5),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		ChunkThreshold: envInt("CHUNK_THRESHOLD", 3000),
		ChunkSize:      envInt("CHUNK_SIZE", 2000),
		ChunkOverlap:   envInt("CHUNK_OVERLAP", 200),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxConcurrentAnalyze <= 0 {
		cfg.MaxConcurrentAnalyze = 5
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.GroqMaxTokens <= 0 {
		cfg.GroqMaxTokens = 3000
	}
	if cfg.ChunkThreshold <= 0 {
		cfg.ChunkThreshold = 3000
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 2000
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = 200
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DesigndocAPIKey == "" {
		return fmt.Errorf("DESIGNDOC_API_KEY is required")
	}
	if c.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
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
