package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
)

// MockProjector is a mock of repository.Projector
type MockProjector struct {
	mock.Mock
}

func (m *MockProjector) Project(
	ctx context.Context,
	places []domain.PlaceID,
	graph repository.GraphReader,
	mode domain.Mode,
	costing domain.CostingModel,
) (map[domain.PlaceID]domain.ProjectedLocation, error) {
	args := m.Called(ctx, places, graph, mode, costing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.PlaceID]domain.ProjectedLocation), args.Error(1)
}

// MockMatrixSolver is a mock of repository.MatrixSolver
type MockMatrixSolver struct {
	mock.Mock
}

func (m *MockMatrixSolver) SourceToTarget(
	ctx context.Context,
	sources, targets []domain.ProjectedLocation,
	graph repository.GraphReader,
	costings domain.ModeCostings,
	mode domain.TravelMode,
	maxDistance float64,
) ([]domain.MatrixEntry, error) {
	args := m.Called(ctx, sources, targets, graph, costings, mode, maxDistance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatrixEntry), args.Error(1)
}

// MockGraphReader is a mock of repository.GraphReader
type MockGraphReader struct {
	mock.Mock
}

func (m *MockGraphReader) Node(id int64) (domain.Node, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.Node), args.Bool(1)
}

func (m *MockGraphReader) Nodes() []domain.Node {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Node)
}

func (m *MockGraphReader) Outgoing(ctx context.Context, nodeID int64) ([]domain.Edge, error) {
	args := m.Called(ctx, nodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Edge), args.Error(1)
}

func (m *MockGraphReader) OverCommitted() bool {
	return m.Called().Bool(0)
}

func (m *MockGraphReader) Clear() {
	m.Called()
}

// projectAll builds a projector result mapping every place to its own node.
func projectAll(places ...domain.PlaceID) map[domain.PlaceID]domain.ProjectedLocation {
	out := make(map[domain.PlaceID]domain.ProjectedLocation, len(places))
	for i, p := range places {
		out[p] = domain.ProjectedLocation{Place: p, NodeID: int64(i + 1)}
	}
	return out
}

func entries(durations ...uint32) []domain.MatrixEntry {
	out := make([]domain.MatrixEntry, len(durations))
	for i, d := range durations {
		out[i] = domain.MatrixEntry{Duration: d}
	}
	return out
}
