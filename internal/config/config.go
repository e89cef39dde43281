package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Database settings
	DatabasePath string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Cache settings
	CacheSize int
	CacheTTL  time.Duration

	// Court portal settings
	HighCourtBaseURL     string
	DistrictCourtBaseURL string
	DefaultCourtName     string

	// Scraper settings
	ScraperTimeout time.Duration
	HeadlessMode   bool
	UserAgent      string
	BrowserPath    string

	// Download settings
	DownloadPath          string
	DownloadTimeout       time.Duration
	JudgmentRetentionDays int

	// Concurrency settings
	MaxConcurrentFetches int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not an error if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:                 getEnv("HOST", "0.0.0.0"),
		Port:                 getEnv("PORT", "8080"),
		DatabasePath:         getEnv("DATABASE_PATH", "./data/court_data.db"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		HighCourtBaseURL:     getEnv("HIGH_COURT_BASE_URL", "https://services.ecourts.gov.in/ecourtindia_v6/"),
		DistrictCourtBaseURL: getEnv("DISTRICT_COURT_BASE_URL", "https://districts.ecourts.gov.in/india-dco-beta/"),
		DefaultCourtName:     getEnv("DEFAULT_COURT_NAME", "Delhi"),
		UserAgent:            getEnv("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
		BrowserPath:          getEnv("ROD_BROWSER_PATH", ""),
		DownloadPath:         getEnv("DOWNLOAD_PATH", "./downloads"),
	}

	// Parse integer values
	var err error
	cfg.CacheSize, err = strconv.Atoi(getEnv("CACHE_SIZE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = time.Duration(cacheTTL) * time.Minute

	scraperTimeout, err := strconv.Atoi(getEnv("SCRAPER_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCRAPER_TIMEOUT: %w", err)
	}
	cfg.ScraperTimeout = time.Duration(scraperTimeout) * time.Second

	downloadTimeout, err := strconv.Atoi(getEnv("DOWNLOAD_TIMEOUT", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid DOWNLOAD_TIMEOUT: %w", err)
	}
	cfg.DownloadTimeout = time.Duration(downloadTimeout) * time.Second

	// 0 disables the periodic judgment file cleanup.
	cfg.JudgmentRetentionDays, err = strconv.Atoi(getEnv("JUDGMENT_RETENTION_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid JUDGMENT_RETENTION_DAYS: %w", err)
	}

	cfg.HeadlessMode = getEnv("HEADLESS_MODE", "true") == "true"

	cfg.MaxConcurrentFetches, err = strconv.Atoi(getEnv("MAX_CONCURRENT_FETCHES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_CONCURRENT_FETCHES: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
