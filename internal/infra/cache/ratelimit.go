package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPrefix = "ratelimit:auth:"
	rateLimitTTL    = 120 * time.Second
)

type RateLimitResult struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// tokenBucketScript refills and consumes in one atomic step.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])
	local burst = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])
	local ttl = tonumber(ARGV[4])

	local data = redis.call('HMGET', key, 'tokens', 'last_update')
	local tokens = tonumber(data[1]) or burst
	local last_update = tonumber(data[2]) or now

	local elapsed = now - last_update
	tokens = math.min(burst, tokens + (elapsed * rate))

	local allowed = 0
	local retry_after = 0

	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	else
		retry_after = math.ceil((1 - tokens) / rate)
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_update', now)
	redis.call('EXPIRE', key, ttl)

	return {allowed, retry_after, math.floor(tokens)}
`)

// RateLimiter throttles auth endpoints per client IP.
type RateLimiter struct {
	client        *redis.Client
	ratePerMinute int
	burst         int
	logger        *slog.Logger
}

func NewRateLimiter(client *redis.Client, ratePerMinute, burst int, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		client:        client,
		ratePerMinute: ratePerMinute,
		burst:         burst,
		logger:        logger,
	}
}

// Allow fails open: a redis outage never blocks sign-up.
func (r *RateLimiter) Allow(ctx context.Context, ip string) RateLimitResult {
	if r.ratePerMinute <= 0 {
		return RateLimitResult{Allowed: true, Remaining: int64(r.burst)}
	}

	key := rateLimitPrefix + hashIP(ip)
	ratePerSecond := float64(r.ratePerMinute) / 60.0

	result, err := tokenBucketScript.Run(ctx, r.client,
		[]string{key},
		ratePerSecond, r.burst, time.Now().Unix(), int(rateLimitTTL.Seconds()),
	).Int64Slice()
	if err != nil || len(result) != 3 {
		r.logger.Warn("rate limit check failed, allowing request", slog.Any("error", err))
		return RateLimitResult{Allowed: true, Remaining: int64(r.burst)}
	}

	return RateLimitResult{
		Allowed:    result[0] == 1,
		RetryAfter: time.Duration(result[1]) * time.Second,
		Remaining:  result[2],
	}
}

func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}
