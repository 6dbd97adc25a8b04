package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes the immutable itinerary loaded at startup. Every method
// returns the load error when the file could not be loaded.
type Service interface {
	All(ctx context.Context) ([]types.Location, error)
	ByID(ctx context.Context, id int) (types.Location, error)
	Days(ctx context.Context) ([]int, error)
	Summary(ctx context.Context) (types.ItinerarySummary, error)
	// LoadErr is nil when the collection is usable.
	LoadErr() error
}

type ServiceImpl struct {
	logger    *slog.Logger
	locations []types.Location
	loadErr   error
	title     string
	subtitle  string
}

// NewItineraryService loads the collection once through repo. A load failure
// is kept and reported by every call instead of aborting startup.
func NewItineraryService(ctx context.Context, repo Repository, title, subtitle string, logger *slog.Logger) *ServiceImpl {
	locations, err := repo.Load(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Itinerary unavailable, pages will show an error", slog.Any("error", err))
	}
	return &ServiceImpl{
		logger:    logger,
		locations: locations,
		loadErr:   err,
		title:     title,
		subtitle:  subtitle,
	}
}

func (s *ServiceImpl) LoadErr() error {
	return s.loadErr
}

// All returns a copy of the collection in file order.
func (s *ServiceImpl) All(_ context.Context) ([]types.Location, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return slices.Clone(s.locations), nil
}

func (s *ServiceImpl) ByID(ctx context.Context, id int) (types.Location, error) {
	_, span := otel.Tracer("ItineraryService").Start(ctx, "ByID", trace.WithAttributes(
		attribute.Int("location.id", id),
	))
	defer span.End()

	if s.loadErr != nil {
		span.SetStatus(codes.Error, "itinerary unavailable")
		return types.Location{}, s.loadErr
	}
	if id < 1 || id > len(s.locations) {
		span.SetStatus(codes.Error, "not found")
		return types.Location{}, fmt.Errorf("%w: %d", types.ErrLocationNotFound, id)
	}
	return s.locations[id-1], nil
}

// Days returns the distinct day numbers present, ascending.
func (s *ServiceImpl) Days(_ context.Context) ([]int, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return DistinctDays(s.locations), nil
}

func (s *ServiceImpl) Summary(ctx context.Context) (types.ItinerarySummary, error) {
	_, span := otel.Tracer("ItineraryService").Start(ctx, "Summary")
	defer span.End()

	if s.loadErr != nil {
		span.RecordError(s.loadErr)
		span.SetStatus(codes.Error, "itinerary unavailable")
		return types.ItinerarySummary{}, s.loadErr
	}

	days := DistinctDays(s.locations)
	summary := types.ItinerarySummary{
		Title:    s.title,
		Subtitle: s.subtitle,
		Stops:    len(s.locations),
		Days:     days,
		Centre:   Centroid(s.locations),
		Bounds:   BoundsOf(s.locations),
	}
	if len(days) > 0 {
		summary.FirstDay = days[0]
		summary.LastDay = days[len(days)-1]
	}
	for _, loc := range s.locations {
		if !loc.HasCoordinates() {
			summary.Unplotted++
		}
	}
	span.SetStatus(codes.Ok, "summary built")
	return summary, nil
}

// DistinctDays returns the sorted set of day numbers in locations.
func DistinctDays(locations []types.Location) []int {
	days := make([]int, 0, 8)
	for _, loc := range locations {
		if !slices.Contains(days, loc.Day) {
			days = append(days, loc.Day)
		}
	}
	slices.Sort(days)
	return days
}

// Centroid is the arithmetic mean of all valid coordinates, nil if none.
func Centroid(locations []types.Location) *types.Coordinates {
	var lat, lng float64
	n := 0
	for _, loc := range locations {
		if !loc.HasCoordinates() {
			continue
		}
		lat += *loc.Lat
		lng += *loc.Lng
		n++
	}
	if n == 0 {
		return nil
	}
	return &types.Coordinates{Lat: lat / float64(n), Lng: lng / float64(n)}
}

// BoundsOf returns the box around all valid coordinates, nil if none.
func BoundsOf(locations []types.Location) *types.Bounds {
	var b *types.Bounds
	for _, loc := range locations {
		if !loc.HasCoordinates() {
			continue
		}
		lat, lng := *loc.Lat, *loc.Lng
		if b == nil {
			b = &types.Bounds{
				SouthWest: types.Coordinates{Lat: lat, Lng: lng},
				NorthEast: types.Coordinates{Lat: lat, Lng: lng},
			}
			continue
		}
		b.SouthWest.Lat = min(b.SouthWest.Lat, lat)
		b.SouthWest.Lng = min(b.SouthWest.Lng, lng)
		b.NorthEast.Lat = max(b.NorthEast.Lat, lat)
		b.NorthEast.Lng = max(b.NorthEast.Lng, lng)
	}
	return b
}
