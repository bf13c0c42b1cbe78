package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samandr77/microservices/dashboard/pkg/logger"
)

// RequestIDHeader carries the dashboard request id to downstream services.
const RequestIDHeader = "X-Request-Id"

// LoggingRoundTripper logs every outgoing call with its status and duration, and forwards
// the request id of the incoming request.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &LoggingRoundTripper{Transport: transport}
}

func (l *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()
	target := fmt.Sprintf("%s %s", r.Method, r.URL.Redacted())

	if reqID := logger.RequestIDFromCtx(ctx); reqID != "" {
		r = r.Clone(ctx)
		r.Header.Set(RequestIDHeader, reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", target)

	start := time.Now()

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		slog.WarnContext(ctx, "outgoing request failed", "request", target, "error", err, "elapsed", time.Since(start))
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", target, "status", resp.StatusCode, "elapsed", time.Since(start))

	return resp, nil
}
