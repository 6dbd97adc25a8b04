package daycards

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

const navTemplate = "https://www.google.com/maps/dir/?api=1&destination=%s,%s"

func ptr(f float64) *float64 { return &f }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func twoShops() []types.Location {
	return []types.Location{
		{ID: 1, Name: "Shop A", Day: 1, Lat: ptr(26.1), Lng: ptr(127.1), Budget: "¥500", NextDrive: "15 min", Mapcode: "11 111*11"},
		{ID: 2, Name: "Shop B", Day: 1, Lat: ptr(26.2), Lng: ptr(127.2), Budget: "¥800", Mapcode: "22 222*22"},
	}
}

func TestDayCards_TwoShopsScenario(t *testing.T) {
	s := NewDayCardsService(navTemplate, discardLogger())
	ctx := context.Background()

	passenger, err := s.Render(ctx, twoShops(), 1, types.ModePassenger)
	require.NoError(t, err)
	require.Len(t, passenger.Cards, 2)
	assert.Equal(t, "Shop A", passenger.Cards[0].Name)
	assert.Equal(t, "Shop B", passenger.Cards[1].Name)
	assert.Equal(t, "15 min", passenger.Cards[0].Connector)
	assert.Empty(t, passenger.Cards[1].Connector)
	for _, c := range passenger.Cards {
		assert.Nil(t, c.Driver)
	}

	driver, err := s.Render(ctx, twoShops(), 1, types.ModeDriver)
	require.NoError(t, err)
	require.Len(t, driver.Cards, 2)
	assert.Equal(t, "Shop A", driver.Cards[0].Name)
	assert.Equal(t, "Shop B", driver.Cards[1].Name)
	assert.Equal(t, "15 min", driver.Cards[0].Connector)
	assert.Empty(t, driver.Cards[1].Connector)

	require.NotNil(t, driver.Cards[0].Driver)
	assert.Equal(t, "11 111*11", driver.Cards[0].Driver.Mapcode)
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=26.1,127.1", driver.Cards[0].Driver.NavigationURL)
	require.NotNil(t, driver.Cards[1].Driver)
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=26.2,127.2", driver.Cards[1].Driver.NavigationURL)
}

func TestDayCards_ToggleOnlyChangesDriverBlock(t *testing.T) {
	s := NewDayCardsService(navTemplate, discardLogger())
	ctx := context.Background()

	passenger, err := s.Render(ctx, twoShops(), 1, types.ModePassenger)
	require.NoError(t, err)
	driver, err := s.Render(ctx, twoShops(), 1, types.ModeDriver)
	require.NoError(t, err)

	for i := range driver.Cards {
		c := driver.Cards[i]
		c.Driver = nil
		assert.Equal(t, passenger.Cards[i], c)
	}

	back, err := s.Render(ctx, twoShops(), 1, types.ModeDriver.Toggled())
	require.NoError(t, err)
	assert.Equal(t, passenger, back)
}

func TestDayCards_FilterKeepsFileOrder(t *testing.T) {
	locations := []types.Location{
		{ID: 1, Name: "Z", Day: 2, DriveTime: "5 min"},
		{ID: 2, Name: "first day", Day: 1},
		{ID: 3, Name: "A", Day: 2, NextDrive: "10 min"},
		{ID: 4, Name: "M", Day: 2, NextDrive: "should not show"},
	}
	s := NewDayCardsService(navTemplate, discardLogger())

	view, err := s.Render(context.Background(), locations, 2, types.ModePassenger)
	require.NoError(t, err)

	var names, connectors []string
	for i, c := range view.Cards {
		names = append(names, c.Name)
		connectors = append(connectors, c.Connector)
		assert.Equal(t, i+1, c.Order)
	}
	assert.Equal(t, []string{"Z", "A", "M"}, names)
	assert.Equal(t, []string{"5 min", "10 min", ""}, connectors)
	assert.Equal(t, 2, view.Day)
	assert.Equal(t, types.ModePassenger, view.Mode)
}

func TestDayCards_EveryRecordRenderedOnce(t *testing.T) {
	locations := []types.Location{
		{ID: 1, Name: "A", Day: 1}, {ID: 2, Name: "B", Day: 2}, {ID: 3, Name: "C", Day: 1},
		{ID: 4, Name: "D", Day: 3}, {ID: 5, Name: "E", Day: 3}, {ID: 6, Name: "F", Day: 3},
	}
	s := NewDayCardsService(navTemplate, discardLogger())

	seen := map[int]int{}
	for day := 1; day <= 3; day++ {
		view, err := s.Render(context.Background(), locations, day, types.ModeDriver)
		require.NoError(t, err)
		for _, c := range view.Cards {
			seen[c.LocationID]++
		}
	}
	assert.Len(t, seen, len(locations))
	for id, n := range seen {
		assert.Equal(t, 1, n, "location %d", id)
	}
}

func TestDayCards_MissingOptionalFieldsRenderBlank(t *testing.T) {
	s := NewDayCardsService(navTemplate, discardLogger())

	view, err := s.Render(context.Background(), []types.Location{{ID: 1, Name: "Bare", Day: 1}}, 1, types.ModeDriver)
	require.NoError(t, err)
	require.Len(t, view.Cards, 1)

	c := view.Cards[0]
	assert.Equal(t, types.Tips{}, c.Tips)
	assert.Empty(t, c.Budget)
	assert.Empty(t, c.Pictures)
	require.NotNil(t, c.Driver)
	assert.Empty(t, c.Driver.Mapcode)
	assert.Empty(t, c.Driver.NavigationURL, "no deep link without coordinates")
}

func TestDayCards_UnknownDay(t *testing.T) {
	s := NewDayCardsService(navTemplate, discardLogger())
	_, err := s.Render(context.Background(), twoShops(), 5, types.ModePassenger)
	assert.ErrorIs(t, err, types.ErrDayNotFound)
}

func TestNavigationURL(t *testing.T) {
	s := NewDayCardsService("geo:%s,%s", discardLogger())
	assert.Equal(t, "geo:26.2123456,-127.5", s.NavigationURL(types.Location{Lat: ptr(26.2123456), Lng: ptr(-127.5)}))

	empty := NewDayCardsService("", discardLogger())
	assert.Empty(t, empty.NavigationURL(types.Location{Lat: ptr(1), Lng: ptr(2)}))
}
