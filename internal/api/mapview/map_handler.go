package mapview

import (
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-map/internal/api"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/itinerary"
	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

type HandlerImpl struct {
	logger    *slog.Logger
	itinerary itinerary.Service
	service   Service
}

func NewHandlerImpl(itineraryService itinerary.Service, service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:    logger,
		itinerary: itineraryService,
		service:   service,
	}
}

// GetMap godoc
// @Summary      Map markers and route
// @Description  GeoJSON markers for all stops (with the route polyline) or for one day.
// @Tags         map
// @Produce      json
// @Param        day query int false "Restrict to one day"
// @Success      200 {object} types.MapView
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /map [get]
func (h *HandlerImpl) GetMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("MapHandler").Start(r.Context(), "GetMap", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/map"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetMap"))

	mode := types.MapMode{All: true}
	if raw := r.URL.Query().Get("day"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil || day < 1 {
			l.WarnContext(ctx, "Invalid day parameter", slog.String("day", raw))
			span.SetStatus(codes.Error, "invalid day")
			api.ErrorResponse(w, r, http.StatusBadRequest, "day must be a positive integer")
			return
		}
		mode = types.MapMode{Day: day}
	}

	locations, err := h.itinerary.All(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Itinerary unavailable", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "itinerary unavailable")
		api.DomainErrorResponse(w, r, err)
		return
	}

	view, err := h.service.Render(ctx, locations, mode)
	if err != nil {
		l.WarnContext(ctx, "Map render failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		api.DomainErrorResponse(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "map returned")
	api.WriteJSONResponse(w, r, http.StatusOK, view)
}
