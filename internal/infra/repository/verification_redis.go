package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"airease-backend/internal/domain/verification"
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	verificationKeyPrefix = "verification:"
	// expired entries linger this long so a late verify still reports "expired"
	verificationGrace = time.Hour
	maxTxRetries      = 5
)

var ErrVerificationContention = errors.New("verification entry is under contention")

// RedisVerificationStore shares pending registrations across instances.
// Each Update runs as WATCH/GET then MULTI/SET|DEL/EXEC.
type RedisVerificationStore struct {
	client *redis.Client
	clock  clock.Clock
}

func NewRedisVerificationStore(client *redis.Client, clk clock.Clock) *RedisVerificationStore {
	return &RedisVerificationStore{client: client, clock: clk}
}

func (s *RedisVerificationStore) Update(ctx context.Context, key string, fn func(*verification.Entry) (*verification.Entry, error)) error {
	redisKey := verificationKeyPrefix + key

	for range maxTxRetries {
		var fnErr error
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			current, err := s.load(ctx, tx, redisKey)
			if err != nil {
				return err
			}

			next, err := fn(current)
			fnErr = err

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if next == nil {
					pipe.Del(ctx, redisKey)
					return nil
				}
				ttl := next.ExpiresAt.Sub(s.clock.Now()) + verificationGrace
				if ttl <= 0 {
					pipe.Del(ctx, redisKey)
					return nil
				}
				raw, err := json.Marshal(next)
				if err != nil {
					return err
				}
				pipe.Set(ctx, redisKey, raw, ttl)
				return nil
			})
			return err
		}, redisKey)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return errs.Wrap(err, "update verification entry")
		}
		return fnErr
	}
	return ErrVerificationContention
}

func (s *RedisVerificationStore) load(ctx context.Context, tx *redis.Tx, key string) (*verification.Entry, error) {
	raw, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var e verification.Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, errs.Wrap(err, "decode verification entry")
	}
	return &e, nil
}
