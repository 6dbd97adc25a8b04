package tips

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-map/app/observability/metrics"
	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

// TextGenerator is the external text-generation API.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// Generate asks for tips about one location and returns the text as
	// received. Every call reaches the generator; nothing is cached.
	Generate(ctx context.Context, locationName string) (string, error)
	// Enabled is false when no credential is configured.
	Enabled() bool
}

type ServiceImpl struct {
	logger    *slog.Logger
	generator TextGenerator
}

// NewTipsService accepts a nil generator, meaning the feature is disabled.
func NewTipsService(generator TextGenerator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		generator: generator,
	}
}

func (s *ServiceImpl) Enabled() bool {
	return s.generator != nil
}

func (s *ServiceImpl) Generate(ctx context.Context, locationName string) (string, error) {
	ctx, span := otel.Tracer("TipsService").Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("location.name", locationName),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Generate"), slog.String("location", locationName))

	if !s.Enabled() {
		l.WarnContext(ctx, "Tip generation requested without credential")
		span.SetStatus(codes.Error, "configuration missing")
		return "", types.ErrConfigurationMissing
	}

	m := metrics.Get()
	m.TipRequestsTotal.Add(ctx, 1)
	start := time.Now()

	text, err := s.generator.GenerateContent(ctx, getLocationTipsPrompt(locationName))
	m.TipDurationSeconds.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.Bool("error", err != nil)))
	if err != nil {
		m.TipFailuresTotal.Add(ctx, 1)
		l.ErrorContext(ctx, "Tip generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return "", fmt.Errorf("%w: %v", types.ErrGenerationFailed, err)
	}

	l.InfoContext(ctx, "Tips generated", slog.Int("length", len(text)))
	span.SetStatus(codes.Ok, "tips generated")
	return text, nil
}
