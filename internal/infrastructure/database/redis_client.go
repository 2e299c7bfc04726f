package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the Redis client holding editing sessions.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
func ConnectRedis() *redis.Client {
	rdb := redis.NewClient(NewRedisOptionsFromEnv())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	log.Printf("[session][redis] connected addr=%s", rdb.Options().Addr)
	return rdb
}

func NewRedisOptionsFromEnv() *redis.Options {
	return &redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: getenvDefault("REDIS_PASSWORD", ""),
	}
}
