package daycards

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	appMiddleware "github.com/FACorreiaa/go-itinerary-map/app/middleware"
	"github.com/FACorreiaa/go-itinerary-map/internal/api"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/itinerary"
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

// GetDay godoc
// @Summary      Cards for one day
// @Description  Cards in itinerary order with connectors; driver fields only when mode=driver.
// @Tags         days
// @Produce      json
// @Param        day  path  int    true  "Day number"
// @Param        mode query string false "passenger (default) or driver"
// @Success      200 {object} types.DayView
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /days/{day} [get]
func (h *HandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DayCardsHandler").Start(r.Context(), "GetDay", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/days/{day}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetDay"))

	dayStr := chi.URLParam(r, "day")
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 {
		l.WarnContext(ctx, "Invalid day parameter", slog.String("day", dayStr))
		span.SetStatus(codes.Error, "invalid day")
		api.ErrorResponse(w, r, http.StatusBadRequest, "day must be a positive integer")
		return
	}
	mode := appMiddleware.GetViewModeFromContext(ctx)
	span.SetAttributes(attribute.Int("day", day), attribute.String("mode", string(mode)))

	locations, err := h.itinerary.All(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Itinerary unavailable", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "itinerary unavailable")
		api.DomainErrorResponse(w, r, err)
		return
	}

	view, err := h.service.Render(ctx, locations, day, mode)
	if err != nil {
		l.WarnContext(ctx, "Day render failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		api.DomainErrorResponse(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "day returned")
	api.WriteJSONResponse(w, r, http.StatusOK, view)
}
