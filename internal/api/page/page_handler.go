package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	appMiddleware "github.com/FACorreiaa/go-itinerary-map/app/middleware"
	"github.com/FACorreiaa/go-itinerary-map/internal/api"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/daycards"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/itinerary"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/mapview"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/tips"
	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const overviewTab = "overview"

// Tab is one entry of the tab selector.
type Tab struct {
	ID     string
	Label  string
	URL    string
	Active bool
}

// PageError is the blocking error shown instead of the page.
type PageError struct {
	Code    string
	Message string
}

// Data is what the index template renders.
type Data struct {
	Title       string
	Subtitle    string
	Mode        types.ViewMode
	ToggleURL   string
	Tabs        []Tab
	Map         types.MapView
	Day         *types.DayView
	TipsEnabled bool
	Error       *PageError
}

type HandlerImpl struct {
	logger    *slog.Logger
	itinerary itinerary.Service
	maps      mapview.Service
	cards     daycards.Service
	tips      tips.Service
	title     string
}

func NewHandlerImpl(itineraryService itinerary.Service, maps mapview.Service, cards daycards.Service,
	tipsService tips.Service, title string, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:    logger,
		itinerary: itineraryService,
		maps:      maps,
		cards:     cards,
		tips:      tipsService,
		title:     title,
	}
}

// Index renders the single page. Query: mode=driver|passenger,
// tab=overview|day-N.
func (h *HandlerImpl) Index(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PageHandler").Start(r.Context(), "Index")
	defer span.End()

	l := h.logger.With(slog.String("handler", "Index"))
	mode := appMiddleware.GetViewModeFromContext(ctx)
	tab := r.URL.Query().Get("tab")
	if tab == "" {
		tab = overviewTab
	}
	span.SetAttributes(attribute.String("mode", string(mode)), attribute.String("tab", tab))

	if err := h.itinerary.LoadErr(); err != nil {
		l.ErrorContext(ctx, "Itinerary unavailable", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "itinerary unavailable")
		h.render(w, r, http.StatusServiceUnavailable, "error", Data{
			Title: h.title,
			Error: &PageError{Code: api.ErrorCode(err), Message: err.Error()},
		})
		return
	}
	summary, err := h.itinerary.Summary(ctx)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	locations, err := h.itinerary.All(ctx)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := Data{
		Title:       summary.Title,
		Subtitle:    summary.Subtitle,
		Mode:        mode,
		ToggleURL:   pageURL(tab, mode.Toggled()),
		TipsEnabled: h.tips.Enabled(),
	}
	data.Tabs = append(data.Tabs, Tab{ID: overviewTab, Label: "Overview", URL: pageURL(overviewTab, mode), Active: tab == overviewTab})
	for _, day := range summary.Days {
		id := "day-" + strconv.Itoa(day)
		data.Tabs = append(data.Tabs, Tab{ID: id, Label: fmt.Sprintf("Day %d", day), URL: pageURL(id, mode), Active: tab == id})
	}

	mapMode := types.MapMode{All: true}
	if tab != overviewTab {
		day, ok := parseDayTab(tab)
		if !ok {
			span.SetStatus(codes.Error, "unknown tab")
			h.render(w, r, http.StatusBadRequest, "error", Data{
				Title: h.title,
				Error: &PageError{Code: "BadRequest", Message: fmt.Sprintf("unknown tab %q", tab)},
			})
			return
		}
		view, err := h.cards.Render(ctx, locations, day, mode)
		if err != nil {
			l.WarnContext(ctx, "Day render failed", slog.Any("error", err))
			h.renderError(w, r, err)
			return
		}
		data.Day = &view
		mapMode = types.MapMode{Day: day}
	}

	data.Map, err = h.maps.Render(ctx, locations, mapMode)
	if err != nil {
		l.WarnContext(ctx, "Map render failed", slog.Any("error", err))
		h.renderError(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "page rendered")
	h.render(w, r, http.StatusOK, "index", data)
}

func (h *HandlerImpl) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.render(w, r, api.StatusFor(err), "error", Data{
		Title: h.title,
		Error: &PageError{Code: api.ErrorCode(err), Message: err.Error()},
	})
}

func (h *HandlerImpl) render(w http.ResponseWriter, r *http.Request, status int, name string, data Data) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render template", slog.String("template", name), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to write page", slog.Any("error", err))
	}
}

func parseDayTab(tab string) (int, bool) {
	rest, ok := strings.CutPrefix(tab, "day-")
	if !ok {
		return 0, false
	}
	day, err := strconv.Atoi(rest)
	if err != nil || day < 1 {
		return 0, false
	}
	return day, true
}

func pageURL(tab string, mode types.ViewMode) string {
	q := url.Values{}
	q.Set("tab", tab)
	q.Set(appMiddleware.ModeQueryParam, string(mode))
	return "/?" + q.Encode()
}
