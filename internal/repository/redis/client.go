package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/asgard/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client - подключение к Redis, через которое идут стримы матриц
type Client struct {
	client *redis.Client
	logger *zap.Logger
}

func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.Int("db", cfg.DB),
	)

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	c.logger.Info("Closing Redis connection")
	return c.client.Close()
}

func (c *Client) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Streams возвращает репозиторий стримов поверх этого подключения
func (c *Client) Streams() *StreamRepository {
	return NewStreamRepository(c.client, c.logger)
}

func (c *Client) Raw() *redis.Client {
	return c.client
}
