package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/infrastructure/costing"
	"github.com/asgard/internal/infrastructure/engine"
	apperrors "github.com/asgard/internal/pkg/errors"
	"github.com/asgard/internal/repository/file"
)

// testGraph is a small street: 1 - 2 - 3 - 4, 100 m per segment, plus an isolated node 5.
// 3 - 4 is a footway.
func testGraph(t *testing.T, maxCacheSize int) *engine.Graph {
	t.Helper()

	nodes := []domain.Node{
		{ID: 1, Lon: 2.3500, Lat: 48.8500},
		{ID: 2, Lon: 2.3510, Lat: 48.8500},
		{ID: 3, Lon: 2.3520, Lat: 48.8500},
		{ID: 4, Lon: 2.3530, Lat: 48.8500},
		{ID: 5, Lon: 2.4000, Lat: 48.9000},
	}
	road := func(from, to int64) domain.Edge {
		return domain.Edge{From: from, To: to, LengthM: 100, SpeedKmh: 36, Access: domain.AccessAll}
	}
	footway := func(from, to int64) domain.Edge {
		return domain.Edge{From: from, To: to, LengthM: 100, Access: domain.AccessFoot}
	}
	edges := []domain.Edge{
		road(1, 2), road(2, 1),
		road(2, 3), road(3, 2),
		footway(3, 4), footway(4, 3),
	}

	store, err := file.NewMemoryStore(nodes, edges)
	require.NoError(t, err)

	g, err := engine.NewGraph(context.Background(), store, maxCacheSize, zap.NewNop())
	require.NoError(t, err)
	return g
}

func mustCost(t *testing.T, family domain.CostingFamily, speed float64) domain.CostingModel {
	t.Helper()
	m, err := costing.NewDefaultFactory().Create(family, costing.ForSpeed(speed))
	require.NoError(t, err)
	return m
}

func TestGraph_OverCommittedAndClear(t *testing.T) {
	g := testGraph(t, 1)
	ctx := context.Background()

	_, err := g.Outgoing(ctx, 1)
	require.NoError(t, err)
	assert.False(t, g.OverCommitted())

	_, err = g.Outgoing(ctx, 2)
	require.NoError(t, err)
	assert.True(t, g.OverCommitted())

	_, err = g.Outgoing(ctx, 1)
	require.NoError(t, err)

	stats := g.Stats()
	assert.Equal(t, 5, stats.Nodes)
	assert.Equal(t, 2, stats.CachedTiles)
	assert.Equal(t, 3, stats.CachedEdges)
	assert.Equal(t, 3, stats.CacheGets)
	assert.Equal(t, 1, stats.CacheHits)

	g.Clear()
	assert.False(t, g.OverCommitted())
	stats = g.Stats()
	assert.Zero(t, stats.CachedEdges)
	assert.Equal(t, 1, stats.Clears)
	assert.InDelta(t, 48.85, stats.Coverage.MinLat, 1e-9)
	assert.InDelta(t, 2.40, stats.Coverage.MaxLon, 1e-9)
}

func TestGraph_Node(t *testing.T) {
	g := testGraph(t, 0)

	n, ok := g.Node(3)
	assert.True(t, ok)
	assert.InDelta(t, 2.352, n.Lon, 1e-9)

	_, ok = g.Node(42)
	assert.False(t, ok)
}

func TestParsePlace(t *testing.T) {
	pt, err := engine.ParsePlace("2.3744;48.8443")
	require.NoError(t, err)
	assert.InDelta(t, 2.3744, pt.Lon, 1e-9)
	assert.InDelta(t, 48.8443, pt.Lat, 1e-9)

	pt, err = engine.ParsePlace("coord:2.3744:48.8443")
	require.NoError(t, err)
	assert.InDelta(t, 48.8443, pt.Lat, 1e-9)

	for _, bad := range []domain.PlaceID{"", "stop_area:RAT:SA:GDLYO", "a;b", "1;2;3", "2.3;95", "coord:1"} {
		_, err := engine.ParsePlace(bad)
		assert.Error(t, err, bad)
	}
}

func TestProjector_Project(t *testing.T) {
	g := testGraph(t, 0)
	p := engine.NewProjector(100, zap.NewNop())
	ctx := context.Background()
	walk := mustCost(t, domain.CostingPedestrian, 1.4)

	places := []domain.PlaceID{"2.3500;48.8500", "2.3531;48.8500", "2.3500;48.8500", "10.0;50.0"}
	got, err := p.Project(ctx, places, g, domain.ModeWalking, walk)
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got["2.3500;48.8500"].NodeID)
	assert.Equal(t, int64(4), got["2.3531;48.8500"].NodeID)
	assert.Greater(t, got["2.3531;48.8500"].SnapDistance, 0.0)
	_, ok := got["10.0;50.0"]
	assert.False(t, ok, "far away place must be left out")

	size, hits, _, _ := p.CacheStats()
	assert.Equal(t, 2, size)
	assert.Zero(t, hits)

	_, err = p.Project(ctx, places[:1], g, domain.ModeWalking, walk)
	require.NoError(t, err)
	_, hits, _, _ = p.CacheStats()
	assert.Equal(t, 1, hits)
}

func TestProjector_SkipsNodesTheCostingCannotUse(t *testing.T) {
	g := testGraph(t, 0)
	p := engine.NewProjector(100, zap.NewNop())
	car := mustCost(t, domain.CostingAuto, 1.4)

	got, err := p.Project(context.Background(), []domain.PlaceID{"2.3530;48.8500"}, g, domain.ModeCar, car)
	require.NoError(t, err)

	assert.Equal(t, int64(3), got["2.3530;48.8500"].NodeID, "node 4 only has footways")
}

func TestProjector_InvalidPlace(t *testing.T) {
	g := testGraph(t, 0)
	p := engine.NewProjector(100, zap.NewNop())
	walk := mustCost(t, domain.CostingPedestrian, 1.4)

	_, err := p.Project(context.Background(), []domain.PlaceID{"stop_area:foo"}, g, domain.ModeWalking, walk)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidPlace))
}

func TestProjector_CacheIsBounded(t *testing.T) {
	g := testGraph(t, 0)
	p := engine.NewProjector(2, zap.NewNop())
	walk := mustCost(t, domain.CostingPedestrian, 1.4)

	places := []domain.PlaceID{"2.3500;48.8500", "2.3510;48.8500", "2.3520;48.8500"}
	_, err := p.Project(context.Background(), places, g, domain.ModeWalking, walk)
	require.NoError(t, err)

	size, _, _, evictions := p.CacheStats()
	assert.Equal(t, 2, size)
	assert.Equal(t, 1, evictions)
}

func locations(ids ...int64) []domain.ProjectedLocation {
	out := make([]domain.ProjectedLocation, len(ids))
	for i, id := range ids {
		out[i] = domain.ProjectedLocation{NodeID: id}
	}
	return out
}

func TestSolver_SourceToTarget(t *testing.T) {
	g := testGraph(t, 0)
	s := engine.NewSolver()

	var costings domain.ModeCostings
	costings[domain.TravelModePedestrian] = mustCost(t, domain.CostingPedestrian, 1.0)

	res, err := s.SourceToTarget(context.Background(),
		locations(1, 4),
		locations(1, 3, 4, 5),
		g, costings, domain.TravelModePedestrian, 10000)
	require.NoError(t, err)
	require.Len(t, res, 8)

	durations := make([]uint32, len(res))
	for i, r := range res {
		durations[i] = r.Duration
	}
	assert.Equal(t, []uint32{0, 200, 300, domain.MaxCost, 300, 100, 0, domain.MaxCost}, durations)
	assert.InDelta(t, 300.0, res[2].Distance, 1e-9)
}

func TestSolver_DistanceBound(t *testing.T) {
	g := testGraph(t, 0)
	s := engine.NewSolver()

	var costings domain.ModeCostings
	costings[domain.TravelModePedestrian] = mustCost(t, domain.CostingPedestrian, 1.0)

	res, err := s.SourceToTarget(context.Background(),
		locations(1), locations(3, 4),
		g, costings, domain.TravelModePedestrian, 250)
	require.NoError(t, err)

	assert.Equal(t, uint32(200), res[0].Duration)
	assert.Equal(t, domain.MaxCost, res[1].Duration)
}

func TestSolver_UsesRequestedModeSlot(t *testing.T) {
	g := testGraph(t, 0)
	s := engine.NewSolver()

	var costings domain.ModeCostings
	costings[domain.TravelModeDrive] = mustCost(t, domain.CostingAuto, 1.0)

	res, err := s.SourceToTarget(context.Background(),
		locations(1), locations(3, 4),
		g, costings, domain.TravelModeDrive, 10000)
	require.NoError(t, err)

	assert.Equal(t, uint32(20), res[0].Duration)
	assert.Equal(t, domain.MaxCost, res[1].Duration, "cars cannot use the footway")

	_, err = s.SourceToTarget(context.Background(),
		locations(1), locations(3),
		g, costings, domain.TravelModeBicycle, 10000)
	assert.Error(t, err)
}

func TestSolver_FiniteCostNeverHitsSentinel(t *testing.T) {
	nodes := []domain.Node{{ID: 1, Lon: 0, Lat: 0}, {ID: 2, Lon: 1, Lat: 0}}
	edges := []domain.Edge{{From: 1, To: 2, LengthM: float64(domain.MaxCost) - 0.3, Access: domain.AccessFoot}}
	store, err := file.NewMemoryStore(nodes, edges)
	require.NoError(t, err)
	g, err := engine.NewGraph(context.Background(), store, 0, zap.NewNop())
	require.NoError(t, err)

	var costings domain.ModeCostings
	costings[domain.TravelModePedestrian] = mustCost(t, domain.CostingPedestrian, 1.0)

	res, err := engine.NewSolver().SourceToTarget(context.Background(),
		locations(1), locations(2),
		g, costings, domain.TravelModePedestrian, 2*float64(domain.MaxCost))
	require.NoError(t, err)

	assert.Equal(t, domain.MaxCost-1, res[0].Duration)
}

func TestSolver_ContextCancelled(t *testing.T) {
	g := testGraph(t, 0)
	s := engine.NewSolver()

	var costings domain.ModeCostings
	costings[domain.TravelModePedestrian] = mustCost(t, domain.CostingPedestrian, 1.0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SourceToTarget(ctx, locations(1), locations(2), g, costings, domain.TravelModePedestrian, 1000)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingStore struct{ err error }

func (s failingStore) Nodes(context.Context) ([]domain.Node, error) { return nil, s.err }
func (s failingStore) Outgoing(context.Context, int64) ([]domain.Edge, error) {
	return nil, s.err
}

func TestNewGraph_Unavailable(t *testing.T) {
	_, err := engine.NewGraph(context.Background(), failingStore{err: errors.New("connection reset")}, 0, zap.NewNop())
	assert.True(t, errors.Is(err, apperrors.ErrGraphUnavailable))

	_, err = engine.NewGraph(context.Background(), failingStore{}, 0, zap.NewNop())
	assert.True(t, errors.Is(err, apperrors.ErrGraphUnavailable), "empty graph")
}
