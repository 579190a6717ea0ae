package usecase

import (
	"context"
	"fmt"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
	"github.com/asgard/internal/infrastructure/costing"
	"github.com/asgard/internal/pkg/errors"
	"github.com/asgard/internal/usecase/dto"
	"go.uber.org/zap"
)

// MatrixUseCase - обработка запросов матрицы времени в пути от jormun
type MatrixUseCase struct {
	resolver   *CostingResolver
	projection *ProjectionAdapter
	solver     repository.MatrixSolver
	graph      repository.GraphReader
	logger     *zap.Logger
}

func NewMatrixUseCase(
	graph repository.GraphReader,
	projector repository.Projector,
	solver repository.MatrixSolver,
	factory *costing.Factory,
	logger *zap.Logger,
) (*MatrixUseCase, error) {
	resolver, err := NewCostingResolver(factory)
	if err != nil {
		return nil, err
	}

	return &MatrixUseCase{
		resolver:   resolver,
		projection: NewProjectionAdapter(projector, graph, logger),
		solver:     solver,
		graph:      graph,
		logger:     logger,
	}, nil
}

// Handle обрабатывает один запрос. Запрос неподдерживаемого типа дает пустой ответ без ошибки.
func (uc *MatrixUseCase) Handle(ctx context.Context, req dto.Request) (*dto.Response, error) {
	if !req.RequestedAPI.IsMatrix() {
		// empty response, jormun should be not too sad about it
		uc.logger.Warn("wrong request: aborting",
			zap.String("requested_api", string(req.RequestedAPI)))
		return &dto.Response{}, nil
	}

	matrixReq := req.SNRoutingMatrix
	origins := matrixReq.OriginPlaces()
	destinations := matrixReq.DestinationPlaces()

	uc.logger.Info(fmt.Sprintf("Processing matrix request %dx%d", len(origins), len(destinations)),
		zap.String("mode", matrixReq.Mode),
		zap.Float64("speed", matrixReq.Speed),
		zap.Uint32("max_duration", matrixReq.MaxDuration))

	resolution, err := uc.resolver.Resolve(matrixReq.Mode, matrixReq.Speed, matrixReq.MaxDuration)
	if err != nil {
		uc.logger.Warn("Failed to resolve costing",
			zap.String("mode", matrixReq.Mode),
			zap.Error(err))
		return nil, err
	}

	projection, err := uc.projection.Project(ctx, origins, destinations, resolution.Mode, resolution.Model)
	if err != nil {
		uc.logger.Warn("Failed to project locations", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Computing matrix...")
	results, err := uc.solver.SourceToTarget(
		ctx,
		projection.Sources,
		projection.Targets,
		uc.graph,
		resolution.Costings,
		resolution.TravelMode,
		resolution.UnreachableDistance,
	)
	if err != nil {
		uc.logger.Error("Failed to compute matrix", zap.Error(err))
		return nil, fmt.Errorf("compute matrix: %w", err)
	}
	uc.logger.Info("Computing matrix done.")

	matrix, err := domain.NewMatrixFromFlat(len(origins), len(destinations), results)
	if err != nil {
		uc.logger.Error("Matrix solver broke its result contract",
			zap.Int("expected", len(origins)*len(destinations)),
			zap.Int("got", len(results)),
			zap.Error(err))
		return nil, errors.ErrResultCountMismatch.WithDetails(map[string]interface{}{
			"expected": len(origins) * len(destinations),
			"got":      len(results),
		}).Wrap(err)
	}

	grid, stats := Classify(matrix, matrixReq.MaxDuration)
	response := dto.NewMatrixResponse(grid)

	uc.logger.Info(fmt.Sprintf("Request done with %d unknown and %d unreached", stats.Unknown, stats.Unreached))

	uc.trimGraphCache()

	return response, nil
}

// trimGraphCache asks the graph to drop its cache when it reports being over budget.
func (uc *MatrixUseCase) trimGraphCache() {
	if uc.graph.OverCommitted() {
		uc.graph.Clear()
	}
	uc.logger.Info("Everything is clear.")
}

// Costing возвращает последнюю costing-модель режима
func (uc *MatrixUseCase) Costing(mode domain.Mode) domain.CostingModel {
	return uc.resolver.Costing(mode)
}
