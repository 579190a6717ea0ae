package app

import (
	"context"
	"fmt"

	"github.com/asgard/internal/config"
	"github.com/asgard/internal/domain/repository"
	"github.com/asgard/internal/infrastructure/costing"
	"github.com/asgard/internal/infrastructure/engine"
	"github.com/asgard/internal/repository/file"
	"github.com/asgard/internal/repository/postgres"
	"github.com/asgard/internal/usecase"
	"go.uber.org/zap"
)

// Engine - граф, проектор, решатель и обработчик матриц одного процесса
type Engine struct {
	Graph     *engine.Graph
	Projector *engine.Projector
	Matrix    *usecase.MatrixUseCase

	// DB заполнен только для GRAPH_SOURCE=postgres
	DB *postgres.DB
}

// NewEngine открывает хранилище графа из cfg.Graph и собирает обработчик матриц
func NewEngine(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Engine, error) {
	e := &Engine{}

	store, err := e.openStore(cfg, log)
	if err != nil {
		return nil, err
	}

	e.Graph, err = engine.NewGraph(ctx, store, cfg.Graph.MaxCacheSize, log)
	if err != nil {
		_ = e.Close()
		return nil, fmt.Errorf("load graph: %w", err)
	}

	e.Projector = engine.NewProjector(cfg.Projector.MaxCacheSize, log)

	e.Matrix, err = usecase.NewMatrixUseCase(
		e.Graph,
		e.Projector,
		engine.NewSolver(),
		costing.NewDefaultFactory(),
		log,
	)
	if err != nil {
		_ = e.Close()
		return nil, fmt.Errorf("init matrix use case: %w", err)
	}

	return e, nil
}

func (e *Engine) openStore(cfg *config.Config, log *zap.Logger) (repository.EdgeStore, error) {
	switch cfg.Graph.Source {
	case config.GraphSourceFile:
		store, err := file.LoadGraphFile(cfg.Graph.File)
		if err != nil {
			return nil, err
		}
		log.Info("Graph source: file", zap.String("path", cfg.Graph.File))
		return store, nil
	case config.GraphSourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return nil, err
		}
		e.DB = db
		log.Info("Graph source: postgres", zap.String("database", cfg.Database.DBName))
		return postgres.NewGraphRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown graph source %q", cfg.Graph.Source)
	}
}

func (e *Engine) Close() error {
	if e.DB == nil {
		return nil
	}
	return e.DB.Close()
}
