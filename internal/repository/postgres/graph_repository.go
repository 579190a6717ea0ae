package postgres

import (
	"context"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
	"github.com/asgard/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type graphRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewGraphRepository - хранилище графа в таблицах graph_nodes / graph_edges
func NewGraphRepository(db *DB) repository.EdgeStore {
	return &graphRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *graphRepository) Nodes(ctx context.Context) ([]domain.Node, error) {
	query := `
		SELECT id, lon, lat
		FROM graph_nodes
		ORDER BY id
	`

	var nodes []domain.Node
	if err := r.db.SelectContext(ctx, &nodes, query); err != nil {
		r.logger.Error("Failed to load graph nodes", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return nodes, nil
}

func (r *graphRepository) Outgoing(ctx context.Context, nodeID int64) ([]domain.Edge, error) {
	query := `
		SELECT source, target, length_m, speed_kmh, access
		FROM graph_edges
		WHERE source = $1
	`

	var edges []domain.Edge
	if err := r.db.SelectContext(ctx, &edges, query, nodeID); err != nil {
		r.logger.Error("Failed to load outgoing edges",
			zap.Int64("node_id", nodeID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return edges, nil
}
