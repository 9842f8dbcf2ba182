package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis is the lookup cache: resolved encyclopedia summaries are kept for
// a TTL so repeated questions about the same person skip the outbound call.
// A miss returns ErrCacheMiss; every other failure is the caller's to absorb.
type IRedis interface {
	SetSummary(ctx context.Context, key string, payload string, expiration time.Duration) error
	GetSummary(ctx context.Context, key string) (string, error)
}

var ErrCacheMiss = errors.New("cache miss")

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) SetSummary(ctx context.Context, key string, payload string, expiration time.Duration) error {
	err := r.client.Set(ctx, "summary:"+key, payload, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching summary for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetSummary(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, "summary:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading cached summary for key %s: %v", key, err))
		return "", err
	}
	return val, nil
}
