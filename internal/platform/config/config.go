package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AuthEnabled       bool

	CORSAllowedOrigins []string
	RateLimit          string // limiter format, e.g. "100-M"
	RedisURL           string // optional; rate limiter falls back to memory store when empty

	MigrationsPath     string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	DefaultPageSize int
	MaxPageSize     int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "grn-tracker")
	viper.SetDefault("AUTH_ENABLED", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	viper.SetDefault("DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("MAX_PAGE_SIZE", 100)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", time.Hour)

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "grn-tracker"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.AuthEnabled = viper.GetBool("AUTH_ENABLED")
	if !cfg.AuthEnabled {
		log.Println("Warning: AUTH_ENABLED is false. API routes accept unauthenticated requests.")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}
	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.ServerReadTimeout = durationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.ServerWriteTimeout = durationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)

	cfg.DefaultPageSize = viper.GetInt("DEFAULT_PAGE_SIZE")
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	cfg.MaxPageSize = viper.GetInt("MAX_PAGE_SIZE")
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		log.Printf("Warning: MAX_PAGE_SIZE (%d) below DEFAULT_PAGE_SIZE. Using %d.\n", cfg.MaxPageSize, cfg.DefaultPageSize)
		cfg.MaxPageSize = cfg.DefaultPageSize
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return cfg, nil
}

// durationOrDefault parses key as a duration (e.g. "60m", "1h"), logging and
// falling back to def when the value is missing or invalid.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
