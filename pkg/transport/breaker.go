package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned without calling the downstream service while its breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

var errServerFailure = errors.New("server failure")

// BreakerRoundTripper stops calling a downstream service after threshold consecutive
// failures. Transport errors and 5xx responses count as failures; 5xx responses are still
// handed to the caller.
type BreakerRoundTripper struct {
	Transport http.RoundTripper
	cb        *gobreaker.CircuitBreaker
}

func NewBreakerRoundTripper(name string, threshold uint32, openTimeout time.Duration, transport http.RoundTripper) *BreakerRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &BreakerRoundTripper{Transport: transport, cb: cb}
}

func (b *BreakerRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	res, err := b.cb.Execute(func() (any, error) {
		resp, err := b.Transport.RoundTrip(r)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerFailure
		}

		return resp, nil
	})

	switch {
	case err == nil:
		return res.(*http.Response), nil //nolint:forcetypeassert
	case errors.Is(err, errServerFailure):
		return res.(*http.Response), nil //nolint:forcetypeassert
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %s", ErrCircuitOpen, b.cb.Name())
	default:
		return nil, err
	}
}

func (b *BreakerRoundTripper) State() gobreaker.State {
	return b.cb.State()
}
