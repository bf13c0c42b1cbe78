package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// RedisStore shares cached queries between replicas. Expiry is left to Redis TTLs.
type RedisStore struct {
	cli    redis.UniversalClient
	prefix string
}

func NewRedisStore(cli redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{cli: cli, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	data, err := s.cli.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, false, nil
		}

		return Entry{}, false, fmt.Errorf("get %s: %w", key, err)
	}

	var entry Entry

	err = json.Unmarshal(data, &entry)
	if err != nil {
		return Entry{}, false, fmt.Errorf("decode %s: %w", key, err)
	}

	return entry, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	err = s.cli.Set(ctx, s.prefix+key, data, ttl).Err()
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, 0, len(keys))
	for _, key := range keys {
		full = append(full, s.prefix+key)
	}

	return s.cli.Del(ctx, full...).Err()
}

func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	iter := s.cli.Scan(ctx, 0, s.prefix+prefix+"*", scanBatch).Iterator()

	var batch []string

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())

		if len(batch) == scanBatch {
			err := s.cli.Del(ctx, batch...).Err()
			if err != nil {
				return err
			}

			batch = batch[:0]
		}
	}

	err := iter.Err()
	if err != nil {
		return fmt.Errorf("scan %s: %w", prefix, err)
	}

	if len(batch) > 0 {
		return s.cli.Del(ctx, batch...).Err()
	}

	return nil
}
