package fortunes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	boterr "github.com/tavernbot/dicebot/internal/errors"
)

const (
	fortuneKeyPrefix = "fortune:"

	// Records only matter for the calendar day they were drawn on; 48h
	// covers every timezone the bot may observe midnight in.
	fortuneTTL = 48 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed fortune repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = fortuneTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func fortuneKey(userID, date string) string {
	return fmt.Sprintf("%s%s:%s", fortuneKeyPrefix, userID, date)
}

// Get retrieves a user's fortune for a given date
func (r *redisRepository) Get(ctx context.Context, userID, date string) (*Fortune, error) {
	data, err := r.client.Get(ctx, fortuneKey(userID, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, boterr.NotFoundf("no fortune for user %s on %s", userID, date)
		}
		return nil, boterr.Wrapf(err, "failed to get fortune for user %s", userID)
	}

	var fortune Fortune
	if err := json.Unmarshal(data, &fortune); err != nil {
		return nil, boterr.Wrap(err, "failed to deserialize fortune")
	}

	return &fortune, nil
}

// Set stores a fortune record
func (r *redisRepository) Set(ctx context.Context, fortune *Fortune) error {
	if fortune == nil {
		return boterr.InvalidArgument("fortune cannot be nil")
	}
	if fortune.UserID == "" || fortune.Date == "" {
		return boterr.InvalidArgument("fortune user ID and date are required")
	}

	data, err := json.Marshal(fortune)
	if err != nil {
		return boterr.Wrap(err, "failed to serialize fortune")
	}

	if err := r.client.Set(ctx, fortuneKey(fortune.UserID, fortune.Date), string(data), r.ttl).Err(); err != nil {
		return boterr.Wrapf(err, "failed to store fortune for user %s", fortune.UserID)
	}

	return nil
}
