package config

import (
	"strings"
	"testing"
	"time"
)

func lookup(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(lookup(map[string]string{"GEMINI_API_KEY": "g-key"}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Model.Provider != ProviderGemini || cfg.Model.Name != "gemini-1.5-flash" || cfg.Model.APIKey != "g-key" {
		t.Fatalf("model=%+v", cfg.Model)
	}
	if cfg.Model.Timeout != 60*time.Second || cfg.Model.Temperature != 0.7 {
		t.Fatalf("timeout=%v temperature=%v", cfg.Model.Timeout, cfg.Model.Temperature)
	}
	if cfg.Server.Port != "8080" || cfg.Storage.Backend != BackendMemory || cfg.Storage.SeedSamples {
		t.Fatalf("server=%+v storage=%+v", cfg.Server, cfg.Storage)
	}
	if cfg.Generate.TTL != 2*time.Hour {
		t.Fatalf("ttl=%v, want 2h", cfg.Generate.TTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("origins=%v, want [*]", cfg.CORS.AllowedOrigins)
	}
}

func TestFromEnv_OpenAI(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(lookup(map[string]string{
		"MODEL_PROVIDER":       "OpenAI",
		"OPENAI_API_KEY":       "sk",
		"MODEL_TIMEOUT":        "15s",
		"MODEL_TEMPERATURE":    "0.2",
		"CORS_ALLOWED_ORIGINS": "http://localhost:5173, https://journey.example ,",
		"SEED_SAMPLE_TRIPS":    "true",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Model.Provider != ProviderOpenAI || cfg.Model.Name != "gpt-4o-mini" || cfg.Model.APIKey != "sk" {
		t.Fatalf("model=%+v", cfg.Model)
	}
	if cfg.Model.Timeout != 15*time.Second || cfg.Model.Temperature != 0.2 {
		t.Fatalf("timeout=%v temperature=%v", cfg.Model.Timeout, cfg.Model.Temperature)
	}
	if got := strings.Join(cfg.CORS.AllowedOrigins, "|"); got != "http://localhost:5173|https://journey.example" {
		t.Fatalf("origins=%q", got)
	}
	if !cfg.Storage.SeedSamples {
		t.Fatalf("seed samples not enabled")
	}
}

func TestFromEnv_MissingKeyIsFatal(t *testing.T) {
	t.Parallel()

	_, err := FromEnv(lookup(map[string]string{"OPENAI_API_KEY": "only-openai"}))
	if err == nil || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Fatalf("err=%v, want missing GEMINI_API_KEY", err)
	}
}

func TestFromEnv_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	_, err := FromEnv(lookup(map[string]string{
		"MODEL_PROVIDER":  "claude",
		"STORAGE_BACKEND": "postgres",
		"MODEL_TIMEOUT":   "soon",
	}))
	if err == nil || !strings.Contains(err.Error(), "MODEL_TIMEOUT") {
		t.Fatalf("err=%v, want malformed MODEL_TIMEOUT", err)
	}

	_, err = FromEnv(lookup(map[string]string{"MODEL_PROVIDER": "claude", "STORAGE_BACKEND": "postgres"}))
	for _, want := range []string{"MODEL_PROVIDER", "DATABASE_URL"} {
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("err=%v, want mention of %s", err, want)
		}
	}
}
