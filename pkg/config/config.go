package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External APIs
	DataGo       DataGoConfig
	AlphaVantage AlphaVantageConfig
	Google       GoogleConfig
	OpenAI       OpenAIConfig

	// Search tool rate limits (in-process, best effort)
	Search SearchConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DataGoConfig holds 공공데이터포털 (data.go.kr) stock API configuration
type DataGoConfig struct {
	ServiceKey string
	BaseURL    string
}

// AlphaVantageConfig holds Alpha Vantage API configuration
type AlphaVantageConfig struct {
	APIKey  string
	BaseURL string
}

// GoogleConfig holds Google Custom Search API configuration
type GoogleConfig struct {
	APIKey  string
	CSEID   string
	BaseURL string
}

// OpenAIConfig holds OpenAI chat-completions configuration
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// SearchConfig holds the search tool's request ceilings
type SearchConfig struct {
	PerSecond int
	PerDay    int
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
//
// API credentials are intentionally not validated here: the provider
// adapters receive whatever is set (possibly empty) and fail at the
// network call with a provider-specific auth error.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		// External APIs
		DataGo: DataGoConfig{
			ServiceKey: getEnv("DATA_GO_SERVICE_KEY", ""),
			BaseURL:    getEnv("DATA_GO_BASE_URL", "https://apis.data.go.kr/1160100/service/GetStockSecuritiesInfoService"),
		},

		AlphaVantage: AlphaVantageConfig{
			APIKey:  getEnv("ALPHA_VANTAGE_API_KEY", ""),
			BaseURL: getEnv("ALPHA_VANTAGE_BASE_URL", "https://www.alphavantage.co/query"),
		},

		Google: GoogleConfig{
			APIKey:  getEnv("GOOGLE_API_KEY", ""),
			CSEID:   getEnv("GOOGLE_CSE_ID", ""),
			BaseURL: getEnv("GOOGLE_SEARCH_BASE_URL", "https://www.googleapis.com/customsearch/v1"),
		},

		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o"),
		},

		Search: SearchConfig{
			PerSecond: getEnvAsInt("SEARCH_RATE_PER_SECOND", 1),
			PerDay:    getEnvAsInt("SEARCH_RATE_PER_DAY", 100),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks structural configuration values.
// Credentials are deliberately excluded (see Load).
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Search.PerSecond <= 0 {
		return fmt.Errorf("SEARCH_RATE_PER_SECOND must be positive")
	}
	if c.Search.PerDay <= 0 {
		return fmt.Errorf("SEARCH_RATE_PER_DAY must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
