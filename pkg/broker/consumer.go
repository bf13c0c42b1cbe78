package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"
)

const (
	handleAttempts = 3
	handleBackoff  = 500 * time.Millisecond
)

type HandlerFunc func(context.Context, kafka.Message) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads a consumer group and dispatches messages by topic. An offset is committed
// once its handler has run, whether or not the handler succeeded after its retries.
type Consumer struct {
	l             *slog.Logger
	r             messageReader
	wg            *sync.WaitGroup
	backoff       time.Duration
	topicHandlers map[string]HandlerFunc
}

func NewConsumer(
	brokers []string,
	groupID string,
	topics ...string,
) *Consumer {
	l := slog.Default().WithGroup("kafka").With("group_id", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      &infoLogger{l: l},
		ErrorLogger: &errorLogger{l: l},
	})

	return newConsumer(l, r, handleBackoff)
}

func newConsumer(l *slog.Logger, r messageReader, backoff time.Duration) *Consumer {
	return &Consumer{
		l:             l,
		r:             r,
		wg:            &sync.WaitGroup{},
		backoff:       backoff,
		topicHandlers: make(map[string]HandlerFunc),
	}
}

func (c *Consumer) Handle(topic string, handler HandlerFunc) *Consumer {
	c.topicHandlers[topic] = handler
	return c
}

func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			m, err := c.r.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					c.l.Info("consumer stopped")
					return
				}

				c.l.Error(fmt.Sprintf("fetch kafka msg: %s", err))

				continue
			}

			c.dispatch(ctx, m)

			err = c.r.CommitMessages(ctx, m)
			if err != nil && ctx.Err() == nil {
				c.l.Error(fmt.Sprintf("commit kafka msg: %s", err), "topic", m.Topic, "offset", m.Offset)
			}
		}
	}()

	return c
}

func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) {
	handler, ok := c.topicHandlers[m.Topic]
	if !ok {
		c.l.Warn("kafka handler not found", "topic", m.Topic)
		return
	}

	b := retry.WithMaxRetries(handleAttempts-1, retry.NewExponential(c.backoff))

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		return retry.RetryableError(handler(ctx, m))
	})
	if err != nil {
		c.l.Error(fmt.Sprintf("handle kafka msg: %s", err), "topic", m.Topic, "offset", m.Offset)
	}
}

func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
	}

	c.wg.Wait()
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
