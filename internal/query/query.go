// Package query caches the results of read requests by query key.
//
// A key is observed through Fetch. The first observation runs the fetch function; callers
// that observe the same key while it is in flight share that single call. Resolved values
// younger than StaleTime are served from the store. Older values are served as well, and a
// background refresh replaces them. Failed fetches are retried and never cached.
package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

const maxRetryDelay = time.Second * 30

// Key identifies a cached query. Name groups queries of one kind, ID selects an instance.
// Scope separates the cached values of different callers, so a value fetched with one
// caller's credentials is never served to another.
type Key struct {
	Name  string
	ID    string
	Scope string
}

func (k Key) String() string {
	return k.instance() + k.Scope
}

// instance is the store prefix shared by every scope of the key.
func (k Key) instance() string {
	return k.Name + ":" + k.ID + "|"
}

// Entry is what a Store keeps per key.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type Store interface {
	// Get reports ok=false when the key is absent or expired.
	Get(ctx context.Context, key string) (entry Entry, ok bool, err error)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type Options struct {
	// StaleTime is how long a resolved value is served without a refetch.
	StaleTime time.Duration
	// GCTime is how long an entry lives in the store after its last update.
	GCTime time.Duration
	// Retry is the number of extra attempts after a failed fetch.
	Retry int
	// RetryDelay is the first backoff delay. It doubles per attempt up to 30s.
	RetryDelay time.Duration
	// ShouldRetry filters errors worth retrying. Nil retries every error.
	ShouldRetry func(err error) bool
}

func DefaultOptions() Options {
	return Options{
		StaleTime:  0,
		GCTime:     time.Minute * 5,
		Retry:      3,
		RetryDelay: time.Second,
	}
}

type Client struct {
	store Store
	opts  Options
	sf    singleflight.Group
	now   func() time.Time

	mu       sync.Mutex
	gens     map[string]uint64
	inflight map[string]int
}

func New(store Store, opts Options) *Client {
	if opts.GCTime <= 0 {
		opts.GCTime = DefaultOptions().GCTime
	}

	if opts.Retry < 0 {
		opts.Retry = 0
	}

	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultOptions().RetryDelay
	}

	return &Client{
		store:    store,
		opts:     opts,
		now:      time.Now,
		gens:     make(map[string]uint64),
		inflight: make(map[string]int),
	}
}

// Fetch returns the cached value of key or resolves it with fn.
func Fetch[T any](ctx context.Context, c *Client, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	k := key.String()

	entry, ok, err := c.store.Get(ctx, k)
	if err != nil {
		slog.WarnContext(ctx, "query cache read failed", "key", k, "error", err)
	}

	if ok {
		var v T

		err = json.Unmarshal(entry.Data, &v)
		if err == nil {
			if c.now().Sub(entry.UpdatedAt) >= c.opts.StaleTime {
				c.refresh(ctx, k, load(c, k, fn))
			}

			return v, nil
		}

		slog.WarnContext(ctx, "query cache entry is unreadable", "key", k, "error", err)
	}

	ch := c.do(ctx, k, load(c, k, fn))

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}

		v, ok := res.Val.(T)
		if !ok {
			return zero, fmt.Errorf("query %s: unexpected value type %T", k, res.Val)
		}

		return v, nil
	}
}

// Invalidate drops the given keys in every scope. The next Fetch of each key runs a new fetch.
func (c *Client) Invalidate(ctx context.Context, keys ...Key) error {
	for _, key := range keys {
		prefix := key.instance()

		c.forget(prefix)

		err := c.store.DeletePrefix(ctx, prefix)
		if err != nil {
			return fmt.Errorf("delete %s: %w", prefix, err)
		}
	}

	return nil
}

// InvalidateQueries drops every key with the given name.
func (c *Client) InvalidateQueries(ctx context.Context, name string) error {
	prefix := name + ":"

	c.forget(prefix)

	err := c.store.DeletePrefix(ctx, prefix)
	if err != nil {
		return fmt.Errorf("delete prefix %s: %w", prefix, err)
	}

	return nil
}

// forget makes in-flight fetches of matching keys discard their results.
func (c *Client) forget(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.inflight {
		if strings.HasPrefix(k, prefix) {
			c.gens[k]++
			c.sf.Forget(k)
		}
	}
}

type loader func(ctx context.Context) (any, error)

func load[T any](c *Client, k string, fn func(ctx context.Context) (T, error)) loader {
	return func(ctx context.Context) (any, error) {
		gen := c.generation(k)

		var v T

		err := c.retry(ctx, func(ctx context.Context) error {
			var err error

			v, err = fn(ctx)

			return err
		})
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(v)
		if err != nil {
			slog.WarnContext(ctx, "query result is not cacheable", "key", k, "error", err)
			return v, nil
		}

		// A key invalidated while the fetch was running keeps its new, empty state.
		if c.generation(k) != gen {
			return v, nil
		}

		err = c.store.Set(ctx, k, Entry{Data: data, UpdatedAt: c.now()}, c.opts.GCTime)
		if err != nil {
			slog.WarnContext(ctx, "query cache write failed", "key", k, "error", err)
			return v, nil
		}

		// Invalidate may have run between the check and the write.
		if c.generation(k) != gen {
			err = c.store.Delete(ctx, k)
			if err != nil {
				slog.WarnContext(ctx, "query cache delete failed", "key", k, "error", err)
			}
		}

		return v, nil
	}
}

// do joins the in-flight call of k or starts one. The call outlives the caller's cancellation
// so other waiters still get its result.
func (c *Client) do(ctx context.Context, k string, fn loader) <-chan singleflight.Result {
	fetchCtx := context.WithoutCancel(ctx)

	return c.sf.DoChan(k, func() (any, error) {
		c.track(k, 1)
		defer c.track(k, -1)

		return fn(fetchCtx)
	})
}

func (c *Client) refresh(ctx context.Context, k string, fn loader) {
	ch := c.do(ctx, k, fn)

	go func() {
		res := <-ch
		if res.Err != nil {
			slog.WarnContext(ctx, "query background refresh failed", "key", k, "error", res.Err)
		}
	}()
}

func (c *Client) retry(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.opts.Retry == 0 {
		return fn(ctx)
	}

	backoff := retry.WithCappedDuration(maxRetryDelay, retry.NewExponential(c.opts.RetryDelay))
	backoff = retry.WithMaxRetries(uint64(c.opts.Retry), backoff)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if c.opts.ShouldRetry != nil && !c.opts.ShouldRetry(err) {
			return err
		}

		return retry.RetryableError(err)
	})
}

func (c *Client) generation(k string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.gens[k]
}

func (c *Client) track(k string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Generations matter only while a fetch of k runs.
	c.inflight[k] += delta
	if c.inflight[k] <= 0 {
		delete(c.inflight, k)
		delete(c.gens, k)
	}
}
