package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/FACorreiaa/go-itinerary-map/config"
	generativeAI "github.com/FACorreiaa/go-itinerary-map/internal/api/generative_ai"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/itinerary"
	"github.com/FACorreiaa/go-itinerary-map/internal/api/tips"
)

// Prints the generated tips for one stop of the configured itinerary.
//
//	go run ./scripts -stop 3
var (
	stop = flag.Int("stop", 1, "1-based position of the stop in the itinerary file")
	path = flag.String("itinerary", "", "itinerary file, defaults to itinerary.path from config")
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}
	flag.Parse()
	ctx := context.Background()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *path != "" {
		cfg.Itinerary.Path = *path
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	repo := itinerary.NewFileRepository(cfg.Itinerary.Path, logger)
	itin := itinerary.NewItineraryService(ctx, repo, cfg.Itinerary.Title, cfg.Itinerary.Subtitle, logger)

	loc, err := itin.ByID(ctx, *stop)
	if err != nil {
		log.Fatalf("stop %d: %v", *stop, err)
	}

	client, err := generativeAI.NewAIClient(ctx, cfg.APIKey(), cfg.GenAI.Model)
	if err != nil {
		log.Fatalf("%s is not set: %v", cfg.GenAI.APIKeyEnv, err)
	}
	fmt.Printf("Day %d · %s (%s)\n\n", loc.Day, loc.Name, client.Model())

	text, err := tips.NewTipsService(client, logger).Generate(ctx, loc.Name)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(text)
}
