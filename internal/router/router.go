package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/FACorreiaa/go-itinerary-map/internal/api/daycards"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/itinerary"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/mapview"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/page"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/tips"

	_ "github.com/FACorreiaa/go-itinerary-map/docs"
)

// Config contains dependencies needed for the router setup
type Config struct {
	PageHandler        *page.HandlerImpl
	ItineraryHandler   *itinerary.HandlerImpl
	MapHandler         *mapview.HandlerImpl
	DayCardsHandler    *daycards.HandlerImpl
	TipsHandler        *tips.HandlerImpl
	ViewModeMiddleware func(http.Handler) http.Handler
	AllowedOrigins     []string
	TipsRateLimit      int // per client IP per minute, 0 disables
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Group(func(r chi.Router) {
		r.Use(cfg.ViewModeMiddleware)
		r.Get("/", cfg.PageHandler.Index)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{"Location"},
			MaxAge:         300,
		}))
		r.Use(cfg.ViewModeMiddleware)

		r.Get("/itinerary", cfg.ItineraryHandler.GetItinerary)
		r.Get("/days", cfg.ItineraryHandler.GetDays)
		r.Get("/days/{day}", cfg.DayCardsHandler.GetDay)
		r.Get("/map", cfg.MapHandler.GetMap)

		r.Group(func(r chi.Router) {
			if cfg.TipsRateLimit > 0 {
				r.Use(httprate.LimitByIP(cfg.TipsRateLimit, time.Minute))
			}
			r.Post("/locations/{id}/tips", cfg.TipsHandler.StartLocationTips)
			r.Post("/tips", cfg.TipsHandler.StartTips)
		})
		r.Get("/tips/{taskID}", cfg.TipsHandler.GetTipTask)
	})

	return r
}
