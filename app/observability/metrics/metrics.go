package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	TipRequestsTotal             metric.Int64Counter
	TipFailuresTotal             metric.Int64Counter
	TipDurationSeconds           metric.Float64Histogram
	CardsRenderedTotal           metric.Int64Counter
	ItineraryLoadDurationSeconds metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider, so call it
// after tracer.InitTracingAndMetrics.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("ItineraryMap")
		var err error
		m := &AppMetrics{}

		m.TipRequestsTotal, err = meter.Int64Counter(
			"tip_requests_total",
			metric.WithDescription("Total number of tip generation requests started"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create tip_requests_total: %v", err)
		}

		m.TipFailuresTotal, err = meter.Int64Counter(
			"tip_failures_total",
			metric.WithDescription("Total number of failed tip generations"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create tip_failures_total: %v", err)
		}

		m.TipDurationSeconds, err = meter.Float64Histogram(
			"tip_duration_seconds",
			metric.WithDescription("Duration of tip generation calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create tip_duration_seconds: %v", err)
		}

		m.CardsRenderedTotal, err = meter.Int64Counter(
			"cards_rendered_total",
			metric.WithDescription("Total number of day cards rendered"),
			metric.WithUnit("{card}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create cards_rendered_total: %v", err)
		}

		m.ItineraryLoadDurationSeconds, err = meter.Float64Histogram(
			"itinerary_load_duration_seconds",
			metric.WithDescription("Duration of itinerary file loads in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_load_duration_seconds: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global AppMetrics, initializing it on first use. Before a
// MeterProvider is installed the instruments are no-ops.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
