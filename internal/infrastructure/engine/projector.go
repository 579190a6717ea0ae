package engine

import (
	"context"
	"math"
	"sort"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
	apperrors "github.com/asgard/internal/pkg/errors"
	"github.com/asgard/internal/pkg/utils"
	"go.uber.org/zap"
)

const metersPerDegreeLat = 111320.0

// Projector snaps places to the nearest graph node usable by the costing model.
// Places with no usable node within the snap distance are left out of the result.
type Projector struct {
	cache  *projectionCache
	logger *zap.Logger
}

var _ repository.Projector = (*Projector)(nil)

// NewProjector создает проектор с LRU-кешем на maxCacheSize мест
func NewProjector(maxCacheSize int, logger *zap.Logger) *Projector {
	return &Projector{
		cache:  newProjectionCache(maxCacheSize),
		logger: logger,
	}
}

func (p *Projector) Project(
	ctx context.Context,
	places []domain.PlaceID,
	graph repository.GraphReader,
	mode domain.Mode,
	costing domain.CostingModel,
) (map[domain.PlaceID]domain.ProjectedLocation, error) {
	out := make(map[domain.PlaceID]domain.ProjectedLocation, len(places))

	for _, place := range places {
		if _, done := out[place]; done {
			continue
		}

		key := projectionKey{mode: mode, place: place}
		if loc, ok := p.cache.get(key); ok {
			out[place] = loc
			continue
		}

		pt, err := ParsePlace(place)
		if err != nil {
			return nil, apperrors.ErrInvalidPlace.
				WithDetails(map[string]interface{}{"place": string(place)}).
				Wrap(err)
		}

		loc, ok, err := p.snap(ctx, place, pt, graph, costing)
		if err != nil {
			return nil, err
		}
		if !ok {
			p.logger.Debug("No graph node near place",
				zap.String("place", string(place)),
				zap.String("mode", string(mode)),
			)
			continue
		}

		p.cache.put(key, loc)
		out[place] = loc
	}

	return out, nil
}

type candidate struct {
	node     domain.Node
	distance float64
}

func (p *Projector) snap(
	ctx context.Context,
	place domain.PlaceID,
	pt domain.Point,
	graph repository.GraphReader,
	costing domain.CostingModel,
) (domain.ProjectedLocation, bool, error) {
	radius := costing.Options().MaxSnapDistance
	dLat := radius / metersPerDegreeLat
	dLon := radius / (metersPerDegreeLat * math.Max(math.Cos(pt.Lat*math.Pi/180), 1e-6))

	var candidates []candidate
	for _, n := range graph.Nodes() {
		if math.Abs(n.Lat-pt.Lat) > dLat || math.Abs(n.Lon-pt.Lon) > dLon {
			continue
		}
		d := utils.HaversineMeters(pt.Lat, pt.Lon, n.Lat, n.Lon)
		if d <= radius {
			candidates = append(candidates, candidate{node: n, distance: d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance == candidates[j].distance {
			return candidates[i].node.ID < candidates[j].node.ID
		}
		return candidates[i].distance < candidates[j].distance
	})

	for _, c := range candidates {
		edges, err := graph.Outgoing(ctx, c.node.ID)
		if err != nil {
			return domain.ProjectedLocation{}, false, err
		}
		for _, e := range edges {
			if costing.Allowed(e) {
				return domain.ProjectedLocation{
					Place:        place,
					NodeID:       c.node.ID,
					Lon:          c.node.Lon,
					Lat:          c.node.Lat,
					SnapDistance: c.distance,
				}, true, nil
			}
		}
	}

	return domain.ProjectedLocation{}, false, nil
}

// CacheStats returns (size, hits, misses, evictions) of the projection cache.
func (p *Projector) CacheStats() (size, hits, misses, evictions int) {
	hits, misses, evictions = p.cache.stats()
	return p.cache.len(), hits, misses, evictions
}
