// Package planner turns a trip request into a complete itinerary.
//
// The model is asked for a JSON itinerary; whatever comes back is extracted,
// parsed and merged field by field over fallback defaults. Any failure along
// the way yields a fully synthesized trip instead, so callers never see a model
// error.
package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/journeyexplore/trip-planner-api/internal/app/fallback"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/generator"
)

// Stage names used in logs and metrics.
const (
	StageRequest = "request"
	StageExtract = "extract"
	StageParse   = "parse"
	StageMerge   = "merge"
)

const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

type Service struct {
	model   generator.Model
	logger  *slog.Logger
	metrics *Metrics
	timeout time.Duration
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithTimeout bounds a single model call. Zero leaves the caller's deadline alone.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService returns a planner backed by model. A nil model makes every
// generation fall back.
func NewService(model generator.Model, opts ...Option) *Service {
	s := &Service{
		model:  model,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateTripPlan returns a complete trip for req. req is expected to have
// passed ValidateTripRequest. It never fails: model, transport and decode
// errors all end in fallback.Synthesize.
func (s *Service) GenerateTripPlan(ctx context.Context, req domain.TripRequest) domain.GeneratedTrip {
	text, err := s.request(ctx, req)
	if err != nil {
		return s.fallback(req, StageRequest, generator.Class(err), err)
	}

	raw, err := extractObject(text)
	if err != nil {
		return s.fallback(req, StageExtract, "malformed", err)
	}

	doc, err := parseObject(raw)
	if err != nil {
		return s.fallback(req, StageParse, "malformed", err)
	}

	trip := merge(req, doc)
	s.metrics.observeGeneration(SourceModel, StageMerge, "none")
	s.logger.Debug("trip generated by model",
		"destination", req.Destination,
		"days", req.Days,
		"itineraryDays", len(trip.Itinerary),
		"hotels", len(trip.Hotels),
	)
	return trip
}

func (s *Service) request(ctx context.Context, req domain.TripRequest) (string, error) {
	if s.model == nil {
		return "", generator.NewFatalError(errNoModel)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := s.now()
	text, err := s.model.Generate(ctx, BuildPrompt(req))
	outcome := "ok"
	if err != nil {
		outcome = generator.Class(err)
	}
	s.metrics.observeModelCall(outcome, s.now().Sub(start).Seconds())
	return text, err
}

func (s *Service) fallback(req domain.TripRequest, stage, class string, err error) domain.GeneratedTrip {
	s.metrics.observeGeneration(SourceFallback, stage, class)
	s.logger.Warn("trip generation fell back to synthesized plan",
		"stage", stage,
		"class", class,
		"destination", req.Destination,
		"days", req.Days,
		"error", err,
	)
	return fallback.Synthesize(req)
}
