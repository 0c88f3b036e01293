// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Model    ModelConfig
	Storage  StorageConfig
	CORS     CORSConfig
	Log      LogConfig
	Generate GenerateConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// ModelConfig selects and tunes the generative model.
type ModelConfig struct {
	Provider    string
	APIKey      string
	Name        string
	Timeout     time.Duration
	Temperature float64
}

type StorageConfig struct {
	Backend     string
	DatabaseURL string
	SeedSamples bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

type GenerateConfig struct {
	// TTL bounds how long a generated trip stays available for save or export.
	TTL time.Duration
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load("../.env"); err != nil {
		if err := godotenv.Load(".env"); err != nil {
			slog.Debug("no .env file loaded", "err", err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a validated Config from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	e := env{get: getenv}

	provider := strings.ToLower(e.str("MODEL_PROVIDER", ProviderGemini))
	cfg := Config{
		Server: ServerConfig{
			Port:            e.str("PORT", "8080"),
			ReadTimeout:     e.duration("SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			ShutdownTimeout: e.duration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Model: ModelConfig{
			Provider:    provider,
			Timeout:     e.duration("MODEL_TIMEOUT", 60*time.Second),
			Temperature: e.float("MODEL_TEMPERATURE", 0.7),
		},
		Storage: StorageConfig{
			Backend:     strings.ToLower(e.str("STORAGE_BACKEND", BackendMemory)),
			DatabaseURL: e.str("DATABASE_URL", ""),
			SeedSamples: e.bool("SEED_SAMPLE_TRIPS", false),
		},
		CORS: CORSConfig{
			AllowedOrigins: e.list("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  e.str("LOG_LEVEL", "info"),
			Format: e.str("LOG_FORMAT", "text"),
		},
		Generate: GenerateConfig{
			TTL: e.duration("GENERATION_TTL", 2*time.Hour),
		},
	}

	switch provider {
	case ProviderGemini:
		cfg.Model.APIKey = e.str("GEMINI_API_KEY", "")
		cfg.Model.Name = e.str("MODEL_NAME", "gemini-1.5-flash")
	case ProviderOpenAI:
		cfg.Model.APIKey = e.str("OPENAI_API_KEY", "")
		cfg.Model.Name = e.str("MODEL_NAME", "gpt-4o-mini")
	}

	if err := errors.Join(e.errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Model.Provider {
	case ProviderGemini:
		if c.Model.APIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required when MODEL_PROVIDER=gemini"))
		}
	case ProviderOpenAI:
		if c.Model.APIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required when MODEL_PROVIDER=openai"))
		}
	default:
		errs = append(errs, fmt.Errorf("MODEL_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, c.Model.Provider))
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORAGE_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendMemory, BackendPostgres, c.Storage.Backend))
	}

	if c.Model.Timeout <= 0 {
		errs = append(errs, errors.New("MODEL_TIMEOUT must be positive"))
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		errs = append(errs, errors.New("MODEL_TEMPERATURE must be between 0 and 2"))
	}
	if c.Generate.TTL <= 0 {
		errs = append(errs, errors.New("GENERATION_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// env reads typed values and collects parse errors instead of failing fast,
// so one run reports every malformed variable.
type env struct {
	get  func(string) string
	errs []error
}

func (e *env) str(k, def string) string {
	if v := strings.TrimSpace(e.get(k)); v != "" {
		return v
	}
	return def
}

func (e *env) duration(k string, def time.Duration) time.Duration {
	v := e.str(k, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s must be a duration (e.g. 30s): %w", k, err))
		return def
	}
	return d
}

func (e *env) float(k string, def float64) float64 {
	v := e.str(k, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s must be a number: %w", k, err))
		return def
	}
	return f
}

func (e *env) bool(k string, def bool) bool {
	v := e.str(k, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s must be true or false: %w", k, err))
		return def
	}
	return b
}

func (e *env) list(k string, def []string) []string {
	v := e.str(k, "")
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
