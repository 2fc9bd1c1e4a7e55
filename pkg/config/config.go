package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Cache drivers
const (
	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig     `envconfig:"SERVER"`
	Annotation AnnotationConfig `envconfig:"ANNOTATION"`
	Cache      CacheConfig      `envconfig:"CACHE"`
	Redis      RedisConfig      `envconfig:"REDIS"`
	Assembly   AssemblyAIConfig `envconfig:"ASSEMBLYAI"`
	Watcher    WatcherConfig    `envconfig:"WATCHER"`
	Logging    LoggingConfig    `envconfig:"LOG"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `split_words:"true" default:"8080"`
	Host            string   `split_words:"true" default:"0.0.0.0"`
	Environment     string   `split_words:"true" default:"development"`
	AllowedOrigins  []string `split_words:"true" default:"http://localhost:3000"`
	ShutdownTimeout int      `split_words:"true" default:"10"`
	BodyLimit       string   `split_words:"true" default:"100M"`
}

// AnnotationConfig holds pipeline defaults
type AnnotationConfig struct {
	KeyPointsMultiplier float64 `split_words:"true" default:"1.6"`
	DefaultLength       string  `split_words:"true" default:"medium"`
}

// CacheConfig holds result cache configuration
type CacheConfig struct {
	Driver          string        `split_words:"true" default:"memory"`
	TTL             time.Duration `split_words:"true" default:"10m"`
	CleanupInterval time.Duration `split_words:"true" default:"1m"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `split_words:"true" default:"localhost"`
	Port     string `split_words:"true" default:"6379"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
}

// AssemblyAIConfig holds speech-to-text configuration
type AssemblyAIConfig struct {
	APIKey               string        `split_words:"true"`
	BaseURL              string        `split_words:"true"`
	SpeechModel          string        `split_words:"true" default:"best"`
	LanguageCode         string        `split_words:"true"`
	MaxConcurrentUploads int           `split_words:"true" default:"2"`
	RequestTimeout       time.Duration `split_words:"true" default:"10m"`
	RetryInitialInterval time.Duration `split_words:"true" default:"2s"`
	RetryMaxInterval     time.Duration `split_words:"true" default:"10s"`
	RetryMaxElapsedTime  time.Duration `split_words:"true" default:"30s"`
}

// WatcherConfig holds watch-folder configuration
type WatcherConfig struct {
	MaxConcurrent int    `split_words:"true" default:"2"`
	OutputFormat  string `split_words:"true" default:"json"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `split_words:"true" default:"info"`
	Format string `split_words:"true" default:"json"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.Annotation.KeyPointsMultiplier <= 0 {
		return fmt.Errorf("ANNOTATION_KEY_POINTS_MULTIPLIER must be positive, got %v", c.Annotation.KeyPointsMultiplier)
	}
	switch strings.ToLower(c.Annotation.DefaultLength) {
	case "short", "medium", "long":
	default:
		return fmt.Errorf("ANNOTATION_DEFAULT_LENGTH must be short, medium or long, got %q", c.Annotation.DefaultLength)
	}
	switch c.Cache.Driver {
	case CacheDriverNone, CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("CACHE_DRIVER must be none, memory or redis, got %q", c.Cache.Driver)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}
	if c.Assembly.MaxConcurrentUploads < 1 {
		return fmt.Errorf("ASSEMBLYAI_MAX_CONCURRENT_UPLOADS must be at least 1")
	}
	if c.Watcher.MaxConcurrent < 1 {
		return fmt.Errorf("WATCHER_MAX_CONCURRENT must be at least 1")
	}
	switch c.Watcher.OutputFormat {
	case "json", "yaml":
	default:
		return fmt.Errorf("WATCHER_OUTPUT_FORMAT must be json or yaml, got %q", c.Watcher.OutputFormat)
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// TranscriptionEnabled reports whether an AssemblyAI key is configured
func (c *Config) TranscriptionEnabled() bool {
	return c.Assembly.APIKey != ""
}
