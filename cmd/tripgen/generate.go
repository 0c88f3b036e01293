package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/journeyexplore/trip-planner-api/internal/adapters/pdf"
	"github.com/journeyexplore/trip-planner-api/internal/adapters/providers"
	"github.com/journeyexplore/trip-planner-api/internal/app/export"
	"github.com/journeyexplore/trip-planner-api/internal/app/planner"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
	platformclock "github.com/journeyexplore/trip-planner-api/internal/platform/clock"
	"github.com/journeyexplore/trip-planner-api/internal/platform/config"
	"github.com/journeyexplore/trip-planner-api/internal/platform/logging"
)

type generateOptions struct {
	request   domain.TripRequest
	format    string
	pdfPath   string
	plannedBy string
	offline   bool
	logLevel  string
}

func generateCmd() *cobra.Command {
	var (
		opts     generateOptions
		budget   string
		travel   string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a trip plan",
		Long: `Generate asks the configured model for an itinerary and prints it.

Model failures never abort the command: the plan falls back to one priced
from the built-in cost tables. Use --offline to skip the model entirely.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.request.Budget = domain.Budget(budget)
			opts.request.TravelType = domain.TravelType(travel)
			opts.request.Currency = domain.Currency(currency)

			logger := logging.New(opts.logLevel, "text")
			svc, err := newPlanner(cmd.Context(), opts.offline, logger)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), svc, opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.request.Destination, "destination", "", "Where to go (required)")
	f.IntVar(&opts.request.Days, "days", 3, "Trip length in days (1-30)")
	f.StringVar(&budget, "budget", string(domain.BudgetModerate), "cheap, moderate or luxury")
	f.StringVar(&travel, "travel-type", string(domain.TravelTypeSolo), "solo, couple, family or friends")
	f.StringVar(&currency, "currency", string(domain.CurrencyINR), "USD, EUR, GBP, JPY or INR")
	f.StringVar(&opts.format, "format", "json", "Output format: json or yaml")
	f.StringVar(&opts.pdfPath, "pdf", "", "Also write the trip document to this path")
	f.StringVar(&opts.plannedBy, "planned-by", domain.DefaultProfile().Name, "Name printed as the planner in the document")
	f.BoolVar(&opts.offline, "offline", false, "Skip the model and synthesize the plan")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}

// newPlanner wires the configured model. Offline runs need no configuration.
func newPlanner(ctx context.Context, offline bool, logger *slog.Logger) (*planner.Service, error) {
	if offline {
		return planner.NewService(nil, planner.WithLogger(slog.New(slog.DiscardHandler))), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	model, err := providers.New(ctx, cfg.Model, logger)
	if err != nil {
		return nil, err
	}
	return planner.NewService(model, planner.WithLogger(logger), planner.WithTimeout(cfg.Model.Timeout)), nil
}

func runGenerate(ctx context.Context, svc *planner.Service, opts generateOptions, out io.Writer) error {
	format := strings.ToLower(opts.format)
	if format != "json" && format != "yaml" && format != "yml" {
		return fmt.Errorf("unknown format %q (want json or yaml)", opts.format)
	}
	req, err := planner.ValidateTripRequest(opts.request)
	if err != nil {
		var pe *planner.Error
		if errors.As(err, &pe) {
			return fmt.Errorf("%s: %v", pe.Message, pe.Details)
		}
		return err
	}

	trip := svc.GenerateTripPlan(ctx, req)

	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(trip); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(trip); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	}

	if opts.pdfPath == "" {
		return nil
	}
	f, err := os.Create(opts.pdfPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.pdfPath, err)
	}
	exporter := export.NewExporter(pdf.NewCanvas, platformclock.NewSystemClock())
	if err := exporter.Export(trip, opts.plannedBy, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
