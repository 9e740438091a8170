package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress               string        `env:"RUN_ADDRESS"`
	DatabaseURI              string        `env:"DATABASE_URI"`
	ExtractionServiceAddress string        `env:"EXTRACTION_API_ADDRESS"`
	MatcherServiceAddress    string        `env:"MATCHING_API_ADDRESS"`
	UploadDir                string        `env:"UPLOAD_DIR"`
	CatalogFile              string        `env:"CATALOG_FILE"`
	MatchTimeout             time.Duration `env:"MATCH_TIMEOUT"`
	ExtractionTimeout        time.Duration `env:"EXTRACTION_TIMEOUT"`
	MaxUploadSize            int64         `env:"MAX_UPLOAD_SIZE"`
	AutoMatch                bool          `env:"AUTO_MATCH" envDefault:"true"`
	ShutdownTimeout          time.Duration `env:"SHUTDOWN_TIMEOUT"`
	AllowedOrigins           []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	LogLevel                 string        `env:"LOG_LEVEL"`
}

const (
	defaultRunAddress        = ":8000"
	defaultUploadDir         = "uploads"
	defaultMatchTimeout      = 10 * time.Second
	defaultExtractionTimeout = 60 * time.Second
	defaultMaxUploadSize     = 20 << 20
	defaultShutdownTimeout   = 10 * time.Second
	defaultLogLevel          = "info"
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:], env.ToMap(os.Environ()))
}

func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultRunAddress
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = defaultUploadDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	flags := flag.NewFlagSet("salesorders", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		matchTimeoutStr      = cfg.MatchTimeout.String()
		extractionTimeoutStr = cfg.ExtractionTimeout.String()
		shutdownTimeoutStr   = cfg.ShutdownTimeout.String()
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.ExtractionServiceAddress, "e", cfg.ExtractionServiceAddress, "Extraction service base URL")
	flags.StringVar(&cfg.MatcherServiceAddress, "m", cfg.MatcherServiceAddress, "Matching service base URL")
	flags.StringVar(&cfg.UploadDir, "u", cfg.UploadDir, "Directory for uploaded documents")
	flags.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "Product catalog CSV file")
	flags.StringVar(&matchTimeoutStr, "match-timeout", matchTimeoutStr, "Timeout for a matching call")
	flags.StringVar(&extractionTimeoutStr, "extraction-timeout", extractionTimeoutStr, "Timeout for an extraction call")
	flags.Int64Var(&cfg.MaxUploadSize, "max-upload", cfg.MaxUploadSize, "Maximum upload size in bytes")
	flags.BoolVar(&cfg.AutoMatch, "auto-match", cfg.AutoMatch, "Match line items right after upload")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.MatchTimeout, err = time.ParseDuration(matchTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid match timeout: %w", err)
	}

	if cfg.ExtractionTimeout, err = time.ParseDuration(extractionTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid extraction timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.MatchTimeout <= 0 {
		cfg.MatchTimeout = defaultMatchTimeout
	}

	if cfg.ExtractionTimeout <= 0 {
		cfg.ExtractionTimeout = defaultExtractionTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = defaultMaxUploadSize
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.ExtractionServiceAddress == "" {
		return nil, fmt.Errorf("extraction service address must be provided")
	}

	if cfg.MatcherServiceAddress == "" {
		return nil, fmt.Errorf("matching service address must be provided")
	}

	return cfg, nil
}
