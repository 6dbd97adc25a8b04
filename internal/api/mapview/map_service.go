package mapview

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-map/internal/api/itinerary"
	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

// dayColors cycles per day number.
var dayColors = []string{"#1e3c72", "#e4572e", "#17bebb", "#ffc914", "#76b041", "#9b5de5", "#f15bb5"}

// DayColor returns the marker colour for day.
func DayColor(day int) string {
	if day < 1 {
		day = 1
	}
	return dayColors[(day-1)%len(dayColors)]
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// Render builds the map payload for every location (mode.All) or for
	// one day. Records without coordinates are listed in Skipped.
	Render(ctx context.Context, locations []types.Location, mode types.MapMode) (types.MapView, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	tiles  types.TileLayer
}

func NewMapService(tiles types.TileLayer, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		tiles:  tiles,
	}
}

func (s *ServiceImpl) Render(ctx context.Context, locations []types.Location, mode types.MapMode) (types.MapView, error) {
	_, span := otel.Tracer("MapService").Start(ctx, "Render", trace.WithAttributes(
		attribute.Bool("map.all", mode.All),
		attribute.Int("map.day", mode.Day),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Render"))

	selected := locations
	view := types.MapView{Mode: "all", Tiles: s.tiles}
	if !mode.All {
		selected = make([]types.Location, 0, len(locations))
		for _, loc := range locations {
			if loc.Day == mode.Day {
				selected = append(selected, loc)
			}
		}
		if len(selected) == 0 {
			span.SetStatus(codes.Error, "day not found")
			return types.MapView{}, fmt.Errorf("%w: %d", types.ErrDayNotFound, mode.Day)
		}
		view.Mode = "day"
		view.Day = mode.Day
	}

	features := make([]types.Feature, 0, len(selected)+1)
	line := make([][2]float64, 0, len(selected))
	plotted := make([]types.Location, 0, len(selected))
	for _, loc := range selected {
		if !loc.HasCoordinates() {
			view.Skipped = append(view.Skipped, loc.ID)
			continue
		}
		point := [2]float64{*loc.Lng, *loc.Lat}
		features = append(features, types.Feature{
			Type:     "Feature",
			Geometry: types.Geometry{Type: "Point", Coordinates: point},
			Properties: map[string]any{
				"id":    loc.ID,
				"name":  loc.Name,
				"day":   loc.Day,
				"order": loc.ID,
				"popup": fmt.Sprintf("Day %d · %s", loc.Day, loc.Name),
				"color": DayColor(loc.Day),
			},
		})
		line = append(line, point)
		plotted = append(plotted, loc)
	}

	if mode.All && len(line) > 1 {
		features = append(features, types.Feature{
			Type:     "Feature",
			Geometry: types.Geometry{Type: "LineString", Coordinates: line},
			Properties: map[string]any{
				"kind": "route",
			},
		})
	}

	view.Features = types.FeatureCollection{Type: "FeatureCollection", Features: features}
	view.Centre = itinerary.Centroid(plotted)
	view.Bounds = itinerary.BoundsOf(plotted)

	if len(view.Skipped) > 0 {
		l.WarnContext(ctx, "Locations without coordinates left off the map", slog.Any("ids", view.Skipped))
	}
	span.SetAttributes(attribute.Int("map.markers", len(plotted)))
	span.SetStatus(codes.Ok, "map rendered")
	return view, nil
}
