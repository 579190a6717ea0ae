package usecase

import (
	"context"
	"fmt"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
	"github.com/asgard/internal/pkg/errors"
	"go.uber.org/zap"
)

// Projection - спроецированные источники и цели в порядке запроса
type Projection struct {
	Sources []domain.ProjectedLocation
	Targets []domain.ProjectedLocation
}

// ProjectionAdapter drives the projector for one request.
type ProjectionAdapter struct {
	projector repository.Projector
	graph     repository.GraphReader
	logger    *zap.Logger
}

func NewProjectionAdapter(projector repository.Projector, graph repository.GraphReader, logger *zap.Logger) *ProjectionAdapter {
	return &ProjectionAdapter{
		projector: projector,
		graph:     graph,
		logger:    logger,
	}
}

// Project projects every origin and destination once and requires a location for each.
func (a *ProjectionAdapter) Project(
	ctx context.Context,
	origins, destinations []domain.PlaceID,
	mode domain.Mode,
	model domain.CostingModel,
) (*Projection, error) {
	places := uniquePlaces(origins, destinations)

	a.logger.Info(fmt.Sprintf("Projecting %d locations...", len(origins)+len(destinations)),
		zap.Int("unique", len(places)))
	locations, err := a.projector.Project(ctx, places, a.graph, mode, model)
	if err != nil {
		return nil, fmt.Errorf("project locations: %w", err)
	}
	a.logger.Info("Projecting locations done.")

	sources, err := lookup(locations, origins)
	if err != nil {
		return nil, err
	}
	targets, err := lookup(locations, destinations)
	if err != nil {
		return nil, err
	}

	return &Projection{Sources: sources, Targets: targets}, nil
}

// uniquePlaces concatenates origins and destinations keeping the first occurrence of each id.
func uniquePlaces(origins, destinations []domain.PlaceID) []domain.PlaceID {
	seen := make(map[domain.PlaceID]struct{}, len(origins)+len(destinations))
	out := make([]domain.PlaceID, 0, len(origins)+len(destinations))
	for _, list := range [][]domain.PlaceID{origins, destinations} {
		for _, p := range list {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

func lookup(locations map[domain.PlaceID]domain.ProjectedLocation, places []domain.PlaceID) ([]domain.ProjectedLocation, error) {
	out := make([]domain.ProjectedLocation, len(places))
	for i, p := range places {
		loc, ok := locations[p]
		if !ok {
			return nil, errors.ErrProjectionGap.WithDetails(map[string]interface{}{"place": string(p)})
		}
		out[i] = loc
	}
	return out, nil
}
