// Package openai implements generator.Model on the OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/journeyexplore/trip-planner-api/internal/ports/out/generator"
)

const DefaultModel = "gpt-4o-mini"

var errEmptyResponse = errors.New("openai: response has no content")

type Model struct {
	client      oai.Client
	name        string
	temperature float64
	logger      *slog.Logger
}

type config struct {
	name        string
	baseURL     string
	temperature float64
	logger      *slog.Logger
}

type Option func(*config)

// WithModelName selects the chat model. Empty keeps DefaultModel.
func WithModelName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

func WithBaseURL(u string) Option {
	return func(c *config) { c.baseURL = u }
}

func WithTemperature(t float64) Option {
	return func(c *config) { c.temperature = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds an OpenAI-backed model. SDK retries are disabled; a failed call
// falls back instead of waiting.
func New(apiKey string, opts ...Option) (*Model, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	cfg := config{name: DefaultModel, temperature: 0.7, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}
	return &Model{
		client:      oai.NewClient(reqOpts...),
		name:        cfg.name,
		temperature: cfg.temperature,
		logger:      cfg.logger,
	}, nil
}

func (m *Model) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model:       oai.ChatModel(m.name),
		Messages:    []oai.ChatCompletionMessageParamUnion{oai.UserMessage(prompt)},
		Temperature: oai.Float(m.temperature),
	})
	if err != nil {
		err = classify(err)
		m.logger.Debug("openai request failed", "model", m.name, "class", generator.Class(err), "err", err)
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", generator.NewFatalError(errEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

// classify maps SDK failures onto generator error classes. API errors carry an
// HTTP status; anything else is a transport problem.
func classify(err error) error {
	var apiErr *oai.Error
	if errors.As(err, &apiErr) {
		return generator.ClassifyStatus(apiErr.StatusCode, fmt.Errorf("openai: %w", err))
	}
	return generator.NewTransientError(fmt.Errorf("openai: %w", err))
}
