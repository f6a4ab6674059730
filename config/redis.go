package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to Redis for the stats cache. With no REDIS_ADDR
// configured the app runs without a cache, which is fine at journal scale.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	addr := GetEnv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, stats caching disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: GetEnv("REDIS_USER"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	res, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Connected to Redis:", res)
	return rdb, nil
}
