package tips

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
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
	tasks     *TaskManager
}

func NewHandlerImpl(itineraryService itinerary.Service, tasks *TaskManager, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:    logger,
		itinerary: itineraryService,
		tasks:     tasks,
	}
}

// StartTipsRequest is the body of POST /tips.
type StartTipsRequest struct {
	LocationID int `json:"location_id" example:"3"`
}

// StartLocationTips godoc
// @Summary      Generate tips for a location
// @Description  Starts an asynchronous tip generation; poll the returned task.
// @Tags         tips
// @Produce      json
// @Param        id path int true "Location ID (1-based position in the itinerary)"
// @Success      202 {object} types.TipTask
// @Failure      404 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{} "ConfigurationMissing"
// @Router       /locations/{id}/tips [post]
func (h *HandlerImpl) StartLocationTips(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid location ID", slog.String("id", idStr))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid location ID")
		return
	}
	h.start(w, r, id)
}

// StartTips godoc
// @Summary      Generate tips for a location
// @Tags         tips
// @Accept       json
// @Produce      json
// @Param        request body StartTipsRequest true "Location to describe"
// @Success      202 {object} types.TipTask
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /tips [post]
func (h *HandlerImpl) StartTips(w http.ResponseWriter, r *http.Request) {
	var req StartTipsRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	h.start(w, r, req.LocationID)
}

func (h *HandlerImpl) start(w http.ResponseWriter, r *http.Request, locationID int) {
	ctx, span := otel.Tracer("TipsHandler").Start(r.Context(), "StartTips", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		attribute.Int("location.id", locationID),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "StartTips"), slog.Int("location_id", locationID))

	loc, err := h.itinerary.ByID(ctx, locationID)
	if err != nil {
		l.WarnContext(ctx, "Location lookup failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "location lookup failed")
		api.DomainErrorResponse(w, r, err)
		return
	}

	task, err := h.tasks.Start(ctx, loc)
	if err != nil {
		l.WarnContext(ctx, "Tip task not started", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "task not started")
		api.DomainErrorResponse(w, r, err)
		return
	}

	span.SetAttributes(attribute.String("task.id", task.ID.String()))
	span.SetStatus(codes.Ok, "task started")
	w.Header().Set("Location", "/api/v1/tips/"+task.ID.String())
	api.WriteJSONResponse(w, r, http.StatusAccepted, task)
}

// GetTipTask godoc
// @Summary      Poll a tip generation
// @Description  Returns pending, succeeded (with text) or failed (with the error text).
// @Tags         tips
// @Produce      json
// @Param        taskID path string true "Task ID"
// @Success      200 {object} types.TipTask
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /tips/{taskID} [get]
func (h *HandlerImpl) GetTipTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TipsHandler").Start(r.Context(), "GetTipTask", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/tips/{taskID}"),
	))
	defer span.End()

	taskIDStr := chi.URLParam(r, "taskID")
	taskID, err := uuid.Parse(taskIDStr)
	if err != nil {
		h.logger.WarnContext(ctx, "Invalid task ID", slog.String("task_id", taskIDStr))
		span.SetStatus(codes.Error, "invalid task id")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.tasks.Get(taskID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "task not found")
		if !errors.Is(err, types.ErrTaskNotFound) {
			h.logger.ErrorContext(ctx, "Task lookup failed", slog.Any("error", err))
		}
		api.DomainErrorResponse(w, r, err)
		return
	}

	span.SetAttributes(attribute.String("task.status", string(task.Status)))
	api.WriteJSONResponse(w, r, http.StatusOK, task)
}
