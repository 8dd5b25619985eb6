package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// tokenBucket refills capacity tokens continuously at rate tokens per
// second and takes one token per call. Returns 1 when the call is allowed.
var tokenBucket = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local rate = tonumber(ARGV[3])
	local ttl_seconds = tonumber(ARGV[4])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	local elapsed = math.max(0, now_ms - last_refill)
	tokens = math.min(capacity, tokens + elapsed * rate / 1000)

	local allowed = 0
	if tokens >= 1 then
		allowed = 1
		tokens = tokens - 1
	end

	redis.call('HSET', key, 'tokens', tostring(tokens), 'last_refill_ms', now_ms)
	redis.call('EXPIRE', key, ttl_seconds)
	return allowed
`)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

type Redis struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	rps    float64
	burst  int
}

// NewRedis connects to redis and checks the connection with a ping.
func NewRedis(ctx context.Context, opts RedisOptions, rps float64, burst int) (*Redis, error) {
	const op = "ratelimit.NewRedis"
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ttl := opts.TTL
	if ttl < time.Second {
		ttl = time.Minute
	}
	return &Redis{rdb: rdb, prefix: opts.Prefix, ttl: ttl, rps: rps, burst: burst}, nil
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	const op = "ratelimit.Redis.Allow"
	res, err := tokenBucket.Run(
		ctx, r.rdb, []string{r.prefix + key},
		time.Now().UnixMilli(), r.burst, r.rps, int64(r.ttl/time.Second),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return res == 1, nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
