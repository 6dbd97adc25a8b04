package appMiddleware

import (
	"context"
	"net/http"

	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

type contextKey string

const ViewModeKey contextKey = "viewMode"

// ModeQueryParam is the query parameter carrying the driver/passenger toggle.
const ModeQueryParam = "mode"

// ViewMode reads the ?mode= toggle from the request and stores the parsed
// value in the request context. Absent or unknown values mean passenger.
func ViewMode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode := types.ParseViewMode(r.URL.Query().Get(ModeQueryParam))
		ctx := context.WithValue(r.Context(), ViewModeKey, mode)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetViewModeFromContext returns the mode stored by ViewMode, passenger if
// the middleware did not run.
func GetViewModeFromContext(ctx context.Context) types.ViewMode {
	mode, ok := ctx.Value(ViewModeKey).(types.ViewMode)
	if !ok {
		return types.ModePassenger
	}
	return mode
}
