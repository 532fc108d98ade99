package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Vapi (voice platform) configuration
	VapiBaseURL       string `mapstructure:"VAPI_BASE_URL"`
	VapiAPIKey        string `mapstructure:"VAPI_API_KEY"`
	VapiSecretKey     string `mapstructure:"VAPI_SECRET_KEY"`
	VapiAssistantName string `mapstructure:"VAPI_ASSISTANT_NAME"`
	PublicBackendURL  string `mapstructure:"PUBLIC_BACKEND_URL"`

	// Twilio (telephony provider) configuration
	TwilioBaseURL     string `mapstructure:"TWILIO_BASE_URL"`
	TwilioAccountSID  string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioCountryCode string `mapstructure:"TWILIO_COUNTRY_CODE"`

	// Rate limiting
	RateLimitEnabled   bool `mapstructure:"RATE_LIMIT_ENABLED"`
	RateLimitPerMinute int  `mapstructure:"RATE_LIMIT_PER_MINUTE"`

	// Knowledge base configuration
	SearchBaseURL      string `mapstructure:"SEARCH_BASE_URL"`
	SearchAPIKey       string `mapstructure:"SEARCH_API_KEY"`
	EmbeddingBaseURL   string `mapstructure:"EMBEDDING_BASE_URL"`
	EmbeddingAPIKey    string `mapstructure:"EMBEDDING_API_KEY"`
	EmbeddingModel     string `mapstructure:"EMBEDDING_MODEL"`
	CacheTTLSeconds    int    `mapstructure:"CACHE_TTL_SECONDS"`
	CacheMaxEntries    int    `mapstructure:"CACHE_MAX_ENTRIES"`
	SearchTimeoutSec   int    `mapstructure:"SEARCH_TIMEOUT_SEC"`
	SearchResultLimit  int    `mapstructure:"SEARCH_RESULT_LIMIT"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "voice_assistant")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	// Vapi defaults
	viper.SetDefault("VAPI_BASE_URL", "https://api.vapi.ai")
	viper.SetDefault("VAPI_API_KEY", "")
	viper.SetDefault("VAPI_SECRET_KEY", "")
	viper.SetDefault("VAPI_ASSISTANT_NAME", "Restaurant Voice Assistant")
	viper.SetDefault("PUBLIC_BACKEND_URL", "")

	// Twilio defaults
	viper.SetDefault("TWILIO_BASE_URL", "https://api.twilio.com")
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_COUNTRY_CODE", "US")

	// Rate limit defaults
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	// Knowledge base defaults
	viper.SetDefault("SEARCH_BASE_URL", "")
	viper.SetDefault("SEARCH_API_KEY", "")
	viper.SetDefault("EMBEDDING_BASE_URL", "")
	viper.SetDefault("EMBEDDING_API_KEY", "")
	viper.SetDefault("EMBEDDING_MODEL", "text-embedding-3-small")
	viper.SetDefault("CACHE_TTL_SECONDS", 60)
	viper.SetDefault("CACHE_MAX_ENTRIES", 1000)
	viper.SetDefault("SEARCH_TIMEOUT_SEC", 15)
	viper.SetDefault("SEARCH_RESULT_LIMIT", 5)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.VapiSecretKey == "" {
			return fmt.Errorf("VAPI_SECRET_KEY must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TwilioConfigured reports whether provider credentials are present.
// Allocation without them is a declared degraded mode, not an error.
func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}
