package logger

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
)

// New builds the application logger: coloured tint output in development
// (the default when env is empty), JSON otherwise.
func New(env string, w io.Writer) *slog.Logger {
	if env == "development" || env == "" {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// StructuredLogger logs the start and completion of every request. It expects
// the RequestID middleware to run first.
func StructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			reqID := chimw.GetReqID(r.Context())

			requestLogger := logger.With(
				slog.String("req_id", reqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.UserAgent()),
				slog.String("proto", r.Proto),
			)

			requestLogger.DebugContext(r.Context(), "Request started")

			next.ServeHTTP(ww, r)

			requestLogger.InfoContext(r.Context(), "Request completed",
				slog.Int("status", ww.Status()),
				slog.Int("bytes_written", ww.BytesWritten()),
				slog.Duration("latency", time.Since(start)),
			)
		})
	}
}
