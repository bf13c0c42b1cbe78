package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks -mock_names=Service=MockEventService

type Service interface {
	InvalidateClient(ctx context.Context, clientID int64) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// ClientChangedEvent is what the clients backend publishes after a client record changed.
type ClientChangedEvent struct {
	ClientID int64  `json:"clientId"`
	Action   string `json:"action"`
}

// OnClientChanged drops the cached list and info of the changed client, so changes made
// outside the dashboard show up without waiting for the cache to expire.
func (h *EventHandler) OnClientChanged(ctx context.Context, msg kafka.Message) error {
	var event ClientChangedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.ClientID <= 0 {
		return fmt.Errorf("invalid client id %d", event.ClientID)
	}

	err = h.s.InvalidateClient(ctx, event.ClientID)
	if err != nil {
		return fmt.Errorf("invalidate client %d: %w", event.ClientID, err)
	}

	slog.DebugContext(ctx, "client cache invalidated", "client_id", event.ClientID, "action", event.Action)

	return nil
}
