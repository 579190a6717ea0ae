package redis

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// batchBlock - короткое ожидание в ConsumeBatch, чтобы не крутить пустой цикл
const batchBlock = 50 * time.Millisecond

var _ repository.StreamRepository = (*StreamRepository)(nil)

// StreamRepository - Redis Streams поверх go-redis
type StreamRepository struct {
	client *redis.Client
	logger *zap.Logger

	// readTimeout - BLOCK для XREADGROUP, 0 означает значения по умолчанию
	readTimeout time.Duration
}

// NewStreamRepository создает новый экземпляр StreamRepository
func NewStreamRepository(client *redis.Client, logger *zap.Logger) *StreamRepository {
	return &StreamRepository{
		client: client,
		logger: logger,
	}
}

// WithReadTimeout задает, сколько XREADGROUP ждет новых сообщений
func (r *StreamRepository) WithReadTimeout(d time.Duration) *StreamRepository {
	r.readTimeout = d
	return r
}

func (r *StreamRepository) block(def time.Duration) time.Duration {
	if r.readTimeout > 0 {
		return r.readTimeout
	}
	return def
}

// CreateConsumerGroup создаёт consumer group для стрима
func (r *StreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	// "$" - только новые сообщения, MKSTREAM создает стрим при необходимости
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		if strings.HasPrefix(err.Error(), "BUSYGROUP") {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeBatch читает до maxCount новых сообщений, ожидая не дольше read timeout.
// Пустой стрим дает пустой срез.
func (r *StreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	messages, err := r.read(ctx, stream, group, consumer, int64(maxCount), r.block(batchBlock))
	if err != nil {
		return nil, fmt.Errorf("failed to consume batch: %w", err)
	}
	return messages, nil
}

func (r *StreamRepository) read(
	ctx context.Context,
	stream, group, consumer string,
	count int64,
	block time.Duration,
) ([]domain.StreamMessage, error) {
	result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    count,
		Block:    block,
	}).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var out []domain.StreamMessage
	for _, s := range result {
		for _, msg := range s.Messages {
			out = append(out, domain.StreamMessage{
				ID:   msg.ID,
				Data: msg.Values,
			})
		}
	}
	return out, nil
}

// AckMessages подтверждает обработку нескольких сообщений одним XACK
func (r *StreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}

	if err := r.client.XAck(ctx, stream, group, messageIDs...).Err(); err != nil {
		r.logger.Error("Failed to acknowledge messages",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Strings("message_ids", messageIDs),
			zap.Error(err))
		return fmt.Errorf("failed to acknowledge messages: %w", err)
	}

	r.logger.Debug("Messages acknowledged",
		zap.String("stream", stream),
		zap.Int("count", len(messageIDs)))
	return nil
}

// PublishToStream сериализует data в JSON и кладет в поле domain.StreamDataField
func (r *StreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error("Failed to marshal data",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			domain.StreamDataField: string(jsonData),
		},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Message published to stream",
		zap.String("stream", stream),
		zap.String("message_id", id))
	return nil
}
