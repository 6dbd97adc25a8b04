package itinerary

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-map/internal/api"
	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
	}
}

// GetItinerary godoc
// @Summary      Get the itinerary
// @Description  Returns the summary (days, centre, bounds) and every record in file order.
// @Tags         itinerary
// @Produce      json
// @Success      200 {object} types.ItineraryResponse
// @Failure      503 {object} map[string]interface{} "DataUnavailable or DataMalformed"
// @Router       /itinerary [get]
func (h *HandlerImpl) GetItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itinerary"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetItinerary"))

	summary, err := h.service.Summary(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Itinerary unavailable", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "itinerary unavailable")
		api.DomainErrorResponse(w, r, err)
		return
	}
	locations, err := h.service.All(ctx)
	if err != nil {
		span.RecordError(err)
		api.DomainErrorResponse(w, r, err)
		return
	}

	l.DebugContext(ctx, "Returning itinerary", slog.Int("stops", len(locations)))
	span.SetStatus(codes.Ok, "itinerary returned")
	api.WriteJSONResponse(w, r, http.StatusOK, types.ItineraryResponse{
		Summary:   summary,
		Locations: locations,
	})
}

// GetDays godoc
// @Summary      List itinerary days
// @Tags         itinerary
// @Produce      json
// @Success      200 {object} map[string][]int
// @Failure      503 {object} map[string]interface{}
// @Router       /days [get]
func (h *HandlerImpl) GetDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetDays")
	defer span.End()

	days, err := h.service.Days(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Itinerary unavailable", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "itinerary unavailable")
		api.DomainErrorResponse(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, map[string][]int{"days": days})
}
