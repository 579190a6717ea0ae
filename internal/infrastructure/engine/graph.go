package engine

import (
	"context"
	"sync/atomic"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
	"github.com/asgard/internal/pkg/errors"
	"go.uber.org/zap"
)

// DefaultMaxCacheSize is the edge budget of the adjacency cache when none is configured.
const DefaultMaxCacheSize = 1_000_000

// Graph - граф дорожной сети поверх EdgeStore с кешем смежности
type Graph struct {
	store        repository.EdgeStore
	nodes        map[int64]domain.Node
	nodeList     []domain.Node
	coverage     domain.BoundingBox
	adj          *AdjacencyCache
	maxCacheSize int
	clears       atomic.Int64
	logger       *zap.Logger
}

var _ repository.GraphReader = (*Graph)(nil)

// NewGraph loads every node from store. Edges are read lazily through the cache.
// maxCacheSize is the number of cached edges above which the graph reports OverCommitted.
func NewGraph(ctx context.Context, store repository.EdgeStore, maxCacheSize int, logger *zap.Logger) (*Graph, error) {
	if maxCacheSize <= 0 {
		maxCacheSize = DefaultMaxCacheSize
	}

	nodes, err := store.Nodes(ctx)
	if err != nil {
		return nil, errors.ErrGraphUnavailable.Wrap(err)
	}
	if len(nodes) == 0 {
		return nil, errors.ErrGraphUnavailable.WithDetails(map[string]interface{}{"reason": "graph has no nodes"})
	}

	g := &Graph{
		store:        store,
		nodes:        make(map[int64]domain.Node, len(nodes)),
		nodeList:     nodes,
		adj:          NewAdjacencyCache(),
		maxCacheSize: maxCacheSize,
		logger:       logger,
	}
	for i, n := range nodes {
		g.nodes[n.ID] = n
		if i == 0 {
			g.coverage = domain.BoundingBox{MinLat: n.Lat, MinLon: n.Lon, MaxLat: n.Lat, MaxLon: n.Lon}
			continue
		}
		g.coverage.Extend(domain.Point{Lat: n.Lat, Lon: n.Lon})
	}

	logger.Info("Graph loaded",
		zap.Int("nodes", len(nodes)),
		zap.Int("max_cache_size", maxCacheSize),
	)

	return g, nil
}

func (g *Graph) Node(id int64) (domain.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) Nodes() []domain.Node {
	return g.nodeList
}

// Outgoing returns the edges leaving nodeID, reading the store on cache miss.
func (g *Graph) Outgoing(ctx context.Context, nodeID int64) ([]domain.Edge, error) {
	if edges, ok := g.adj.Get(nodeID); ok {
		return edges, nil
	}

	edges, err := g.store.Outgoing(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	g.adj.Put(nodeID, edges)
	return edges, nil
}

func (g *Graph) OverCommitted() bool {
	_, edges := g.adj.Size()
	return edges > g.maxCacheSize
}

func (g *Graph) Clear() {
	nodes, edges := g.adj.Size()
	g.adj.Clear()
	g.clears.Add(1)
	g.logger.Debug("Graph cache cleared",
		zap.Int("nodes", nodes),
		zap.Int("edges", edges),
	)
}

// Stats returns a snapshot of the graph and its cache.
func (g *Graph) Stats() domain.GraphStats {
	nodes, edges := g.adj.Size()
	gets, hits, _ := g.adj.Stats()
	return domain.GraphStats{
		Nodes:       len(g.nodeList),
		CachedTiles: nodes,
		CachedEdges: edges,
		CacheBudget: g.maxCacheSize,
		CacheGets:   gets,
		CacheHits:   hits,
		Clears:      int(g.clears.Load()),
		Coverage:    g.coverage,
	}
}
