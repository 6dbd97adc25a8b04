package daycards

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-map/app/observability/metrics"
	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// Render returns the cards of one day in file order. Driver blocks are
	// filled only in driver mode; the last card never has a connector.
	Render(ctx context.Context, locations []types.Location, day int, mode types.ViewMode) (types.DayView, error)
}

type ServiceImpl struct {
	logger        *slog.Logger
	navigationURL string
}

// NewDayCardsService takes the deep-link template, which must contain two
// %s verbs for latitude and longitude.
func NewDayCardsService(navigationURL string, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:        logger,
		navigationURL: navigationURL,
	}
}

func (s *ServiceImpl) Render(ctx context.Context, locations []types.Location, day int, mode types.ViewMode) (types.DayView, error) {
	ctx, span := otel.Tracer("DayCardsService").Start(ctx, "Render", trace.WithAttributes(
		attribute.Int("day", day),
		attribute.String("mode", string(mode)),
	))
	defer span.End()

	cards := make([]types.Card, 0, 8)
	for _, loc := range locations {
		if loc.Day != day {
			continue
		}
		card := types.Card{
			LocationID: loc.ID,
			Order:      len(cards) + 1,
			Name:       loc.Name,
			Type:       loc.Type,
			Budget:     loc.Budget,
			Tips:       loc.Tips,
			Pictures:   loc.Pictures(),
			Connector:  loc.Connector(),
		}
		if mode.IsDriver() {
			card.Driver = &types.DriverBlock{
				Mapcode:       loc.Mapcode,
				NavigationURL: s.NavigationURL(loc),
			}
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		span.SetStatus(codes.Error, "day not found")
		return types.DayView{}, fmt.Errorf("%w: %d", types.ErrDayNotFound, day)
	}
	cards[len(cards)-1].Connector = ""

	metrics.Get().CardsRenderedTotal.Add(ctx, int64(len(cards)),
		metric.WithAttributes(attribute.String("mode", string(mode))))
	s.logger.DebugContext(ctx, "Day cards rendered",
		slog.Int("day", day), slog.String("mode", string(mode)), slog.Int("cards", len(cards)))
	span.SetStatus(codes.Ok, "cards rendered")
	return types.DayView{Day: day, Mode: mode, Cards: cards}, nil
}

// NavigationURL formats the deep link for loc, empty when it has no coordinates.
func (s *ServiceImpl) NavigationURL(loc types.Location) string {
	if !loc.HasCoordinates() || s.navigationURL == "" {
		return ""
	}
	return fmt.Sprintf(s.navigationURL,
		strconv.FormatFloat(*loc.Lat, 'f', -1, 64),
		strconv.FormatFloat(*loc.Lng, 'f', -1, 64))
}
