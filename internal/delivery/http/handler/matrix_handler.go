package handler

import (
	"context"
	"time"

	"github.com/asgard/internal/pkg/errors"
	"github.com/asgard/internal/pkg/utils"
	"github.com/asgard/internal/pkg/validator"
	"github.com/asgard/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MatrixUseCase - обработчик запросов jormun
type MatrixUseCase interface {
	Handle(ctx context.Context, req dto.Request) (*dto.Response, error)
}

// MatrixHandler обрабатывает HTTP запросы матриц
type MatrixHandler struct {
	matrixUC MatrixUseCase
	logger   *zap.Logger
}

// NewMatrixHandler создает новый экземпляр MatrixHandler
func NewMatrixHandler(matrixUC MatrixUseCase, logger *zap.Logger) *MatrixHandler {
	return &MatrixHandler{
		matrixUC: matrixUC,
		logger:   logger,
	}
}

// ComputeMatrix godoc
// @Summary Street network routing matrix
// @Description Время в пути от каждого origin до каждого destination. Результаты идут одной строкой, origins-major.
// @Description Запрос неподдерживаемого типа возвращает пустой ответ.
// @Tags Matrix
// @Accept json
// @Produce json
// @Param request body dto.Request true "Запрос jormun"
// @Success 200 {object} utils.SuccessResponse{data=dto.Response}
// @Failure 400 {object} utils.ErrorResponse "INVALID_REQUEST или INVALID_MODE"
// @Failure 422 {object} utils.ErrorResponse "INVALID_PLACE или PROJECTION_GAP"
// @Failure 500 {object} utils.ErrorResponse "RESULT_COUNT_MISMATCH"
// @Router /api/v1/matrix [post]
func (h *MatrixHandler) ComputeMatrix(c *fiber.Ctx) error {
	var req dto.Request
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse matrix request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	// тело запроса неподдерживаемого типа не проверяется: ответ все равно пустой
	if req.RequestedAPI.IsMatrix() {
		if err := validator.Validate(req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err)))
		}
	}

	start := time.Now()
	resp, err := h.matrixUC.Handle(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	meta := &utils.Meta{TimeMSec: float64(time.Since(start).Microseconds()) / 1000}
	if !resp.IsEmpty() {
		meta.Total = len(resp.SNRoutingMatrix.Rows[0].RoutingResponse)
	}

	return utils.SendSuccess(c, resp, meta)
}
