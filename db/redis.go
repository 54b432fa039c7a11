package db

import (
	"context"
	"fmt"
	"time"

	"catalogkv/config"
	"catalogkv/logger"

	"github.com/redis/go-redis/v9"
)

const (
	connectTimeout = 5 * time.Second
	probeKey       = "catalogkv:probe"
	probeValue     = "Redis connection successful!"
)

// ConnectRedis 初始化Redis连接
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr(), err)
	}

	logger.Info("Redis连接成功",
		logger.String("addr", cfg.RedisAddr()),
		logger.Int("db", cfg.RedisDB))
	return client, nil
}

// Probe 测试Redis基本读写操作
func Probe(ctx context.Context, client redis.Cmdable) error {
	if err := client.Set(ctx, probeKey, probeValue, time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set Redis key: %w", err)
	}

	val, err := client.Get(ctx, probeKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get Redis key: %w", err)
	}
	if val != probeValue {
		return fmt.Errorf("unexpected value from Redis: got %s", val)
	}

	if err := client.Del(ctx, probeKey).Err(); err != nil {
		return fmt.Errorf("failed to delete Redis key: %w", err)
	}
	return nil
}
