package transport_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dashboard/pkg/logger"
	"github.com/samandr77/microservices/dashboard/pkg/transport"
)

//nolint:paralleltest
func TestRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	now := time.Now().Format(time.DateOnly)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case "time":
				return slog.Attr{Key: a.Key, Value: slog.StringValue(now)}
			case "elapsed":
				return slog.Attr{Key: a.Key, Value: slog.StringValue("-")}
			}
			return a
		},
	})))

	var gotRequestID string

	mux := http.NewServeMux()
	mux.HandleFunc("/clients", func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(transport.RequestIDHeader)
		_, _ = fmt.Fprintf(w, `{"result": []}`)
	})
	mux.HandleFunc("/clients/info", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
	}

	ctx := logger.SetRequestID(context.Background(), "req-1")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/clients", strings.NewReader(`{}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-1", gotRequestID)

	req, err = http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/clients/info", nil)
	require.NoError(t, err)

	resp2, err := client.Do(req)
	require.NoError(t, err)

	defer resp2.Body.Close()

	require.Equal(t, fmt.Sprintf(`{"time":"%s","level":"INFO","msg":"outgoing request","request":"POST %s/clients"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"POST %s/clients","status":200,"elapsed":"-"}
{"time":"%s","level":"INFO","msg":"outgoing request","request":"GET %s/clients/info"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"GET %s/clients/info","status":404,"elapsed":"-"}
`, now, server.URL, now, server.URL, now, server.URL, now, server.URL), buf.String())
}
