package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings. Values come from the environment
// (a .env file is loaded by main before this is read).
type Config struct {
	Port   string
	DBPath string

	// LinkedIn credentials for interactive login
	LinkedInEmail    string
	LinkedInPassword string

	// Path of the persisted cookie bundle that lets runs skip login
	CookiesPath string

	// Scraper pacing and limits
	BaseDelay   time.Duration // base pacing delay, jitter is applied on top
	ScrapeLimit int           // max new profiles stored per scrape call
	ResultsWait time.Duration // bounded wait for the results container

	// HuggingFace inference API for message generation
	HuggingFaceAPIKey string
	HuggingFaceModel  string

	// CORS allow-list
	AllowedOrigins []string
}

// Load reads configuration from the environment, applying defaults
// for everything except the LinkedIn credentials.
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "5000"),
		DBPath:            getEnv("DB_PATH", "data/outflo.db"),
		LinkedInEmail:     os.Getenv("LINKEDIN_EMAIL"),
		LinkedInPassword:  os.Getenv("LINKEDIN_PASSWORD"),
		CookiesPath:       getEnv("LINKEDIN_COOKIES_PATH", "data/linkedin_cookies.json"),
		BaseDelay:         time.Duration(getEnvInt("SCRAPE_BASE_DELAY_MS", 2000)) * time.Millisecond,
		ScrapeLimit:       getEnvInt("SCRAPE_LIMIT", 20),
		ResultsWait:       time.Duration(getEnvInt("SCRAPE_RESULTS_WAIT_MS", 10000)) * time.Millisecond,
		HuggingFaceAPIKey: os.Getenv("HUGGINGFACE_API_KEY"),
		HuggingFaceModel:  getEnv("HUGGINGFACE_MODEL", "mistralai/Mistral-7B-Instruct-v0.2"),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
