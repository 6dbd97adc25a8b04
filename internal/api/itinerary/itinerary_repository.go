package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"gopkg.in/yaml.v3"

	"github.com/FACorreiaa/go-itinerary-map/app/observability/metrics"
	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

var _ Repository = (*FileRepository)(nil)

// Repository loads the itinerary collection.
type Repository interface {
	// Load returns the records in file order. Errors wrap
	// types.ErrDataUnavailable or types.ErrDataMalformed.
	Load(ctx context.Context) ([]types.Location, error)
}

// FileRepository reads the itinerary from a local file. The format is picked
// from the extension: .yaml/.yml, .toml, anything else is JSON.
type FileRepository struct {
	logger *slog.Logger
	path   string
}

func NewFileRepository(path string, logger *slog.Logger) *FileRepository {
	return &FileRepository{
		logger: logger,
		path:   path,
	}
}

type tomlDocument struct {
	Locations []types.Location `toml:"locations"`
}

func (r *FileRepository) Load(ctx context.Context) ([]types.Location, error) {
	ctx, span := otel.Tracer("ItineraryRepository").Start(ctx, "Load")
	defer span.End()
	span.SetAttributes(attribute.String("itinerary.path", r.path))

	start := time.Now()
	l := r.logger.With(slog.String("method", "Load"), slog.String("path", r.path))

	raw, err := os.ReadFile(r.path)
	if err != nil {
		l.ErrorContext(ctx, "Failed to read itinerary file", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", types.ErrDataUnavailable, r.path)
		}
		return nil, fmt.Errorf("%w: %v", types.ErrDataUnavailable, err)
	}

	locations, err := decode(r.path, raw)
	if err != nil {
		l.ErrorContext(ctx, "Failed to parse itinerary file", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, err
	}

	metrics.Get().ItineraryLoadDurationSeconds.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("format", formatOf(r.path))))
	l.InfoContext(ctx, "Itinerary loaded", slog.Int("stops", len(locations)))
	span.SetAttributes(attribute.Int("itinerary.stops", len(locations)))
	span.SetStatus(codes.Ok, "loaded")
	return locations, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

func decode(path string, raw []byte) ([]types.Location, error) {
	var locations []types.Location
	switch formatOf(path) {
	case "yaml":
		if err := yaml.Unmarshal(raw, &locations); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrDataMalformed, err)
		}
	case "toml":
		var doc tomlDocument
		if _, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrDataMalformed, err)
		}
		locations = doc.Locations
	default:
		if err := json.Unmarshal(raw, &locations); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrDataMalformed, err)
		}
	}

	if locations == nil {
		return nil, fmt.Errorf("%w: no records", types.ErrDataMalformed)
	}
	for i := range locations {
		loc := &locations[i]
		if strings.TrimSpace(loc.Name) == "" {
			return nil, fmt.Errorf("%w: record %d has no name", types.ErrDataMalformed, i+1)
		}
		if loc.Day < 1 {
			return nil, fmt.Errorf("%w: record %d (%s) has no valid day", types.ErrDataMalformed, i+1, loc.Name)
		}
		loc.ID = i + 1
	}
	return locations, nil
}
