package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	l     *slog.Logger
	w     messageWriter
	topic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return newProducer(l, w, topic)
}

func newProducer(l *slog.Logger, w messageWriter, topic string) *Producer {
	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

// ClientChangedEvent is published after a client was changed from the dashboard.
type ClientChangedEvent struct {
	ClientID  int64              `json:"clientId"`
	Action    entity.AuditAction `json:"action"`
	UserID    string             `json:"userId"`
	RequestID string             `json:"requestId,omitempty"`
}

// SendClientChanged is fire-and-forget: failures are logged, never returned.
func (p *Producer) SendClientChanged(ctx context.Context, entry entity.AuditEntry) {
	event := ClientChangedEvent{
		ClientID:  entry.ClientID,
		Action:    entry.Action,
		UserID:    entry.UserID.String(),
		RequestID: entry.RequestID,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(entry.ClientID, 10)),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
