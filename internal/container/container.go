package container

import (
	"context"
	"errors"
	"log/slog"

	"github.com/FACorreiaa/go-itinerary-map/config"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/daycards"
	generativeAI "github.com/FACorreiaa/go-itinerary-map/internal/api/generative_ai"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/itinerary"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/mapview"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/page"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/tips"
	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	Itinerary        *itinerary.ServiceImpl
	TipTasks         *tips.TaskManager
	PageHandler      *page.HandlerImpl
	ItineraryHandler *itinerary.HandlerImpl
	MapHandler       *mapview.HandlerImpl
	DayCardsHandler  *daycards.HandlerImpl
	TipsHandler      *tips.HandlerImpl
}

// NewContainer wires repositories, services and handlers. It never fails on
// a bad itinerary file or a missing credential: both are surfaced to users.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	itineraryRepo := itinerary.NewFileRepository(cfg.Itinerary.Path, logger)
	itineraryService := itinerary.NewItineraryService(ctx, itineraryRepo, cfg.Itinerary.Title, cfg.Itinerary.Subtitle, logger)

	mapService := mapview.NewMapService(types.TileLayer{
		URL:         cfg.Map.TileURL,
		Attribution: cfg.Map.Attribution,
	}, logger)
	dayCardsService := daycards.NewDayCardsService(cfg.Map.NavigationURL, logger)

	var generator tips.TextGenerator
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.APIKey(), cfg.GenAI.Model)
	switch {
	case errors.Is(err, types.ErrConfigurationMissing):
		logger.WarnContext(ctx, "No text-generation credential configured, AI tips disabled",
			slog.String("env", cfg.GenAI.APIKeyEnv))
	case err != nil:
		return nil, err
	default:
		generator = aiClient
		logger.InfoContext(ctx, "AI tips enabled", slog.String("model", aiClient.Model()))
	}
	tipsService := tips.NewTipsService(generator, logger)
	tipTasks := tips.NewTaskManager(tipsService, cfg.Tips.TaskTTL, cfg.Tips.CleanupInterval, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		Itinerary:        itineraryService,
		TipTasks:         tipTasks,
		PageHandler:      page.NewHandlerImpl(itineraryService, mapService, dayCardsService, tipsService, cfg.Itinerary.Title, logger),
		ItineraryHandler: itinerary.NewHandlerImpl(itineraryService, logger),
		MapHandler:       mapview.NewHandlerImpl(itineraryService, mapService, logger),
		DayCardsHandler:  daycards.NewHandlerImpl(itineraryService, dayCardsService, logger),
		TipsHandler:      tips.NewHandlerImpl(itineraryService, tipTasks, logger),
	}, nil
}

// Close waits for in-flight tip generations.
func (c *Container) Close() {
	c.TipTasks.Wait()
}
