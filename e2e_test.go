package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/suite"

	appMiddleware "github.com/FACorreiaa/go-itinerary-map/app/middleware"
	"github.com/FACorreiaa/go-itinerary-map/config"
	"github.com/FACorreiaa/go-itinerary-map/internal/container"
	api "github.com/FACorreiaa/go-itinerary-map/internal/router"
	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

const twoShopsYAML = `
- name: Shop A
  day: 1
  lat: 26.2
  lng: 127.7
  mapcode: "33 002 123*45"
  next_drive: "15 min drive"
  tips:
    intro: First stop
- name: Shop B
  day: 1
  lat: 26.3
  lng: 127.8
  mapcode: "33 004 567*89"
- name: Lookout
  day: 2
`

// E2ETestSuite drives the full router against a temporary itinerary file.
type E2ETestSuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	container *container.Container
}

func newTestRouter(c *container.Container, cfg *config.Config) http.Handler {
	mainRouter := api.SetupRouter(&api.Config{
		PageHandler:        c.PageHandler,
		ItineraryHandler:   c.ItineraryHandler,
		MapHandler:         c.MapHandler,
		DayCardsHandler:    c.DayCardsHandler,
		TipsHandler:        c.TipsHandler,
		ViewModeMiddleware: appMiddleware.ViewMode,
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		TipsRateLimit:      cfg.Tips.RateLimit,
	})
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Mount("/", mainRouter)
	return router
}

func loadTestContainer(t testing.TB, itineraryPath string) (*container.Container, *config.Config) {
	t.Helper()
	cfg, err := config.LoadEmbedded()
	if err != nil {
		t.Fatalf("embedded config: %v", err)
	}
	cfg.Itinerary.Path = itineraryPath
	cfg.GenAI.APIKeyEnv = "ITINERARY_MAP_E2E_UNSET_KEY"
	cfg.Tips.CleanupInterval = 0

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := container.NewContainer(context.Background(), &cfg, logger)
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	return c, &cfg
}

// SetupSuite initializes the test suite
func (suite *E2ETestSuite) SetupSuite() {
	path := filepath.Join(suite.T().TempDir(), "itinerary.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(twoShopsYAML), 0o600))

	c, cfg := loadTestContainer(suite.T(), path)
	suite.container = c
	suite.server = httptest.NewServer(newTestRouter(c, cfg))
	suite.client = &http.Client{Timeout: 10 * time.Second}
}

// TearDownSuite cleans up after all tests
func (suite *E2ETestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	suite.container.Close()
}

func (suite *E2ETestSuite) do(method, path string) (*http.Response, []byte) {
	req, err := http.NewRequest(method, suite.server.URL+path, nil)
	suite.Require().NoError(err)
	resp, err := suite.client.Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)
	return resp, body
}

func (suite *E2ETestSuite) TestPing() {
	resp, body := suite.do(http.MethodGet, "/ping")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal("pong", string(body))
}

func (suite *E2ETestSuite) TestItineraryAndDays() {
	resp, body := suite.do(http.MethodGet, "/api/v1/itinerary")
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var itin types.ItineraryResponse
	suite.Require().NoError(json.Unmarshal(body, &itin))
	suite.Equal(3, itin.Summary.Stops)
	suite.Equal([]int{1, 2}, itin.Summary.Days)
	suite.Equal(1, itin.Summary.Unplotted)
	suite.Equal("Shop A", itin.Locations[0].Name)
	suite.Equal(1, itin.Locations[0].ID)

	resp, body = suite.do(http.MethodGet, "/api/v1/days")
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	var days struct {
		Days []int `json:"days"`
	}
	suite.Require().NoError(json.Unmarshal(body, &days))
	suite.Equal([]int{1, 2}, days.Days)
}

// Toggling the mode changes only the driver blocks of the same day.
func (suite *E2ETestSuite) TestDayCardsModeToggle() {
	_, passengerBody := suite.do(http.MethodGet, "/api/v1/days/1")
	_, driverBody := suite.do(http.MethodGet, "/api/v1/days/1?mode=driver")

	var passenger, driver types.DayView
	suite.Require().NoError(json.Unmarshal(passengerBody, &passenger))
	suite.Require().NoError(json.Unmarshal(driverBody, &driver))

	suite.Require().Len(passenger.Cards, 2)
	suite.Require().Len(driver.Cards, 2)
	suite.Equal(types.ModePassenger, passenger.Mode)
	suite.Equal(types.ModeDriver, driver.Mode)

	for i := range passenger.Cards {
		suite.Nil(passenger.Cards[i].Driver)
		suite.Require().NotNil(driver.Cards[i].Driver)

		withoutDriver := driver.Cards[i]
		withoutDriver.Driver = nil
		suite.Equal(passenger.Cards[i], withoutDriver)
	}
	suite.Equal("15 min drive", passenger.Cards[0].Connector)
	suite.Empty(passenger.Cards[1].Connector)
	suite.Equal("33 002 123*45", driver.Cards[0].Driver.Mapcode)
	suite.Contains(driver.Cards[0].Driver.NavigationURL, "26.2,127.7")
}

func (suite *E2ETestSuite) TestMap() {
	resp, body := suite.do(http.MethodGet, "/api/v1/map")
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var all types.MapView
	suite.Require().NoError(json.Unmarshal(body, &all))
	suite.Equal("FeatureCollection", all.Features.Type)
	suite.Len(all.Features.Features, 3) // two points and the route
	suite.Equal([]int{3}, all.Skipped)
	suite.NotNil(all.Centre)

	resp, body = suite.do(http.MethodGet, "/api/v1/map?day=1")
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	var day types.MapView
	suite.Require().NoError(json.Unmarshal(body, &day))
	suite.Len(day.Features.Features, 2)

	resp, _ = suite.do(http.MethodGet, "/api/v1/map?day=7")
	suite.Equal(http.StatusNotFound, resp.StatusCode)
}

func (suite *E2ETestSuite) TestPage() {
	resp, body := suite.do(http.MethodGet, "/?tab=day-1&mode=driver")
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	suite.True(strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	page := string(body)
	suite.Equal(2, strings.Count(page, `data-role="driver"`))
	suite.Equal(1, strings.Count(page, `data-role="connector"`))
	suite.Contains(page, "AI tips are disabled")
}

func (suite *E2ETestSuite) TestTipsWithoutCredential() {
	resp, body := suite.do(http.MethodPost, "/api/v1/locations/1/tips")
	suite.Equal(http.StatusServiceUnavailable, resp.StatusCode)

	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(body, &payload))
	suite.Equal("ConfigurationMissing", payload["code"])
	suite.Equal(false, payload["success"])
}

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

// A malformed file blocks every surface with the same error.
func TestE2E_MalformedItinerary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itinerary.json")
	if err := os.WriteFile(path, []byte(`[{"name": "No day"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	c, cfg := loadTestContainer(t, path)
	defer c.Close()
	srv := httptest.NewServer(newTestRouter(c, cfg))
	defer srv.Close()

	for _, p := range []string{"/", "/api/v1/itinerary", "/api/v1/days/1", "/api/v1/map"} {
		resp, err := http.Get(srv.URL + p)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("%s: got %d, want 503", p, resp.StatusCode)
		}
	}
}

func TestE2E_TipsRateLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itinerary.yaml")
	if err := os.WriteFile(path, []byte(twoShopsYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	c, cfg := loadTestContainer(t, path)
	defer c.Close()
	cfg.Tips.RateLimit = 2
	srv := httptest.NewServer(newTestRouter(c, cfg))
	defer srv.Close()

	var codes []int
	for range 3 {
		resp, err := http.Post(srv.URL+"/api/v1/locations/1/tips", "application/json", nil)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	want := []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusTooManyRequests}
	if !slices.Equal(codes, want) {
		t.Errorf("got %v, want %v", codes, want)
	}

	// reads are not limited
	resp, err := http.Get(srv.URL + "/api/v1/days/1")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("days: got %d", resp.StatusCode)
	}
}
