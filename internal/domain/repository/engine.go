package repository

import (
	"context"

	"github.com/asgard/internal/domain"
)

// EdgeStore - постоянное хранилище дорожного графа
type EdgeStore interface {
	// Nodes возвращает все вершины графа
	Nodes(ctx context.Context) ([]domain.Node, error)

	// Outgoing возвращает исходящие ребра вершины
	Outgoing(ctx context.Context, nodeID int64) ([]domain.Edge, error)
}

// GraphReader - доступ к графу с кешем тайлов
type GraphReader interface {
	Node(id int64) (domain.Node, bool)
	Nodes() []domain.Node
	Outgoing(ctx context.Context, nodeID int64) ([]domain.Edge, error)

	// OverCommitted сообщает, что кеш тайлов превысил бюджет памяти
	OverCommitted() bool

	// Clear очищает кеш тайлов
	Clear()
}

// Projector - проекция идентификаторов мест на граф
type Projector interface {
	Project(
		ctx context.Context,
		places []domain.PlaceID,
		graph GraphReader,
		mode domain.Mode,
		costing domain.CostingModel,
	) (map[domain.PlaceID]domain.ProjectedLocation, error)
}

// MatrixSolver - many-to-many решатель
type MatrixSolver interface {
	// SourceToTarget returns len(sources)*len(targets) entries, sources-major.
	SourceToTarget(
		ctx context.Context,
		sources, targets []domain.ProjectedLocation,
		graph GraphReader,
		costings domain.ModeCostings,
		mode domain.TravelMode,
		maxDistance float64,
	) ([]domain.MatrixEntry, error)
}
