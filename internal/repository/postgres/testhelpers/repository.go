package testhelpers

import (
	"github.com/asgard/internal/domain/repository"
	"github.com/asgard/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewGraphRepositoryForTest creates a graph repository with test database and logger
func NewGraphRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.EdgeStore {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewGraphRepository(pgDB)
}
