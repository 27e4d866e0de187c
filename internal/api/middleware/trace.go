package middleware

import (
	"log/slog"
	"net/http"

	"github.com/clinichub/clinic-api/internal/api/shared"
	"github.com/clinichub/clinic-api/internal/platform/logger"
)

// TraceMiddleware generates a trace ID for each request, stores it in the
// request context, and attaches a trace-scoped logger so downstream log
// lines correlate with the error responses the client sees.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		traceLogger := logger.FromContextOrDefault(ctx, slog.Default()).
			With("trace_id", shared.GetTraceID(ctx))
		ctx = logger.WithLogger(ctx, traceLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
