package appMiddleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

func TestViewMode(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.ViewMode
	}{
		{"default is passenger", "", types.ModePassenger},
		{"driver", "?mode=driver", types.ModeDriver},
		{"case insensitive", "?mode=DRIVER", types.ModeDriver},
		{"explicit passenger", "?mode=passenger", types.ModePassenger},
		{"unknown falls back", "?mode=pilot", types.ModePassenger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got types.ViewMode
			h := ViewMode(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetViewModeFromContext(r.Context())
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetViewModeFromContext_Missing(t *testing.T) {
	assert.Equal(t, types.ModePassenger, GetViewModeFromContext(context.Background()))
}
