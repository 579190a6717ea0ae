package matrix

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
	"github.com/asgard/internal/pkg/errors"
	"github.com/asgard/internal/pkg/validator"
	"github.com/asgard/internal/usecase/dto"
	"github.com/asgard/internal/worker"
	"go.uber.org/zap"
)

const (
	WorkerName = "matrix"

	DefaultBatchSize = 10
	emptyQueueSleep  = 100 * time.Millisecond
	errorSleep       = time.Second
	publishBackoff   = 100 * time.Millisecond
)

// Handler - то, что умеет ответить на запрос jormun
type Handler interface {
	Handle(ctx context.Context, req dto.Request) (*dto.Response, error)
}

// MatrixWorker читает запросы матриц из Redis Stream и публикует ответы
type MatrixWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	handler    Handler
	batchSize  int
	maxRetries int
}

func NewMatrixWorker(
	streamRepo repository.StreamRepository,
	handler Handler,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	logger *zap.Logger,
) *MatrixWorker {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if maxRetries <= 0 {
		maxRetries = 1
	}

	return &MatrixWorker{
		BaseWorker: worker.NewBaseWorker(WorkerName, consumerGroup, logger),
		streamRepo: streamRepo,
		handler:    handler,
		batchSize:  batchSize,
		maxRetries: maxRetries,
	}
}

// Start запускает воркер
func (w *MatrixWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting MatrixWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamMatrixRequest, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.processBatch(ctx)
		switch {
		case err != nil:
			logger.Error("Failed to process batch", zap.Error(err))
			w.sleep(ctx, errorSleep)
		case processed == 0:
			w.sleep(ctx, emptyQueueSleep)
		}
	}
}

func (w *MatrixWorker) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// processBatch читает пачку запросов, отвечает на каждый и подтверждает всю пачку.
// Возвращает количество прочитанных сообщений.
func (w *MatrixWorker) processBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamMatrixRequest,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		w.processMessage(ctx, msg)
		ids = append(ids, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamMatrixRequest, w.ConsumerGroup(), ids); err != nil {
		// сообщения останутся в pending и будут видны через XPENDING
		w.Logger().Error("Failed to ack messages", zap.Error(err))
	}

	return len(messages), nil
}

func (w *MatrixWorker) processMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	event, err := parseEvent(msg)
	if err != nil {
		// без request_id ответить некому
		logger.Warn("Failed to parse message, skipping", zap.Error(err))
		return
	}
	logger = logger.With(zap.String("request_id", event.RequestID.String()))

	reply := w.handle(ctx, event)
	if reply.Error != "" {
		logger.Warn("Matrix request failed", zap.String("code", reply.Code), zap.String("error", reply.Error))
	}

	if err := w.publish(ctx, reply); err != nil {
		logger.Error("Failed to publish matrix response", zap.Error(err))
	}
}

func parseEvent(msg domain.StreamMessage) (*domain.MatrixRequestEvent, error) {
	payload, err := msg.Payload()
	if err != nil {
		return nil, err
	}

	var event domain.MatrixRequestEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("invalid event json: %w", err)
	}
	if !event.HasRequestID() {
		return nil, fmt.Errorf("event has no request_id")
	}
	return &event, nil
}

// handle никогда не возвращает ошибку: она уходит в ответ
func (w *MatrixWorker) handle(ctx context.Context, event *domain.MatrixRequestEvent) domain.MatrixResponseEvent {
	reply := domain.MatrixResponseEvent{RequestID: event.RequestID}

	var req dto.Request
	if err := json.Unmarshal(event.Request, &req); err != nil {
		return withError(reply, errors.ErrInvalidRequest.Wrap(err))
	}
	if req.RequestedAPI.IsMatrix() {
		if err := validator.Validate(req); err != nil {
			return withError(reply, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err)).Wrap(err))
		}
	}

	resp, err := w.handler.Handle(ctx, req)
	if err != nil {
		return withError(reply, err)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return withError(reply, errors.ErrInternalServer.Wrap(err))
	}
	reply.Response = body
	return reply
}

func withError(reply domain.MatrixResponseEvent, err error) domain.MatrixResponseEvent {
	reply.Error = err.Error()

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		reply.Code = appErr.Code
	} else {
		reply.Code = errors.ErrInternalServer.Code
	}
	return reply
}

func (w *MatrixWorker) publish(ctx context.Context, reply domain.MatrixResponseEvent) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.streamRepo.PublishToStream(ctx, domain.StreamMatrixResponse, reply); err == nil {
			return nil
		}
		if attempt < w.maxRetries {
			select {
			case <-time.After(publishBackoff * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("publish after %d attempts: %w", w.maxRetries, err)
}
