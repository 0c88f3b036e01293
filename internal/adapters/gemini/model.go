// Package gemini implements generator.Model on the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/journeyexplore/trip-planner-api/internal/ports/out/generator"
)

const DefaultModel = "gemini-1.5-flash"

var errEmptyResponse = errors.New("gemini: response has no text")

type Model struct {
	client      *genai.Client
	name        string
	temperature float32
	logger      *slog.Logger
}

type config struct {
	name        string
	baseURL     string
	temperature float32
	logger      *slog.Logger
}

type Option func(*config)

// WithModelName selects the Gemini model. Empty keeps DefaultModel.
func WithModelName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithBaseURL points the client at another endpoint, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *config) { c.baseURL = u }
}

func WithTemperature(t float32) Option {
	return func(c *config) { c.temperature = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds a Gemini-backed model. apiKey must be non-empty.
func New(ctx context.Context, apiKey string, opts ...Option) (*Model, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	cfg := config{name: DefaultModel, temperature: 0.7, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Model{client: client, name: cfg.name, temperature: cfg.temperature, logger: cfg.logger}, nil
}

// Generate sends prompt as a single user turn and returns the concatenated
// text of the first candidate.
func (m *Model) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.name, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(m.temperature),
	})
	if err != nil {
		err = classify(err)
		m.logger.Debug("gemini request failed", "model", m.name, "class", generator.Class(err), "err", err)
		return "", err
	}

	text := responseText(resp)
	if text == "" {
		return "", generator.NewFatalError(errEmptyResponse)
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if p != nil {
				b.WriteString(p.Text)
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

// classify maps SDK failures onto generator error classes. API errors carry an
// HTTP status; anything else is a transport problem.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return generator.ClassifyStatus(apiErr.Code, fmt.Errorf("gemini: %w", err))
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return generator.ClassifyStatus(apiErrPtr.Code, fmt.Errorf("gemini: %w", err))
	}
	return generator.NewTransientError(fmt.Errorf("gemini: %w", err))
}
