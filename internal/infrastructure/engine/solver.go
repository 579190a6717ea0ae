package engine

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
)

// Solver - many-to-many решатель: Дейкстра из каждого источника,
// ограниченная расстоянием maxDistance
type Solver struct{}

var _ repository.MatrixSolver = (*Solver)(nil)

func NewSolver() *Solver {
	return &Solver{}
}

type label struct {
	node     int64
	cost     float64
	distance float64
}

type labelHeap []label

func (h labelHeap) Len() int            { return len(h) }
func (h labelHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h labelHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *labelHeap) Push(x interface{}) { *h = append(*h, x.(label)) }
func (h *labelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func (s *Solver) SourceToTarget(
	ctx context.Context,
	sources, targets []domain.ProjectedLocation,
	graph repository.GraphReader,
	costings domain.ModeCostings,
	mode domain.TravelMode,
	maxDistance float64,
) ([]domain.MatrixEntry, error) {
	if mode < 0 || mode >= domain.TravelModeCount || costings[mode] == nil {
		return nil, fmt.Errorf("no costing for travel mode %s", mode)
	}
	costing := costings[mode]

	targetNodes := make(map[int64][]int, len(targets))
	for j, t := range targets {
		targetNodes[t.NodeID] = append(targetNodes[t.NodeID], j)
	}

	m := domain.NewMatrix(len(sources), len(targets))
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.oneToMany(ctx, i, src, targetNodes, len(targets), graph, costing, maxDistance, m); err != nil {
			return nil, err
		}
	}

	return m.Flatten(), nil
}

func (s *Solver) oneToMany(
	ctx context.Context,
	row int,
	src domain.ProjectedLocation,
	targetNodes map[int64][]int,
	targetCount int,
	graph repository.GraphReader,
	costing domain.CostingModel,
	maxDistance float64,
	m domain.Matrix,
) error {
	best := map[int64]float64{src.NodeID: 0}
	settled := make(map[int64]bool)
	remaining := targetCount

	h := &labelHeap{{node: src.NodeID}}
	for h.Len() > 0 && remaining > 0 {
		cur := heap.Pop(h).(label)
		if settled[cur.node] {
			continue
		}
		settled[cur.node] = true

		if cur.cost < float64(domain.MaxCost) {
			// a finite cost must not round onto the sentinel
			duration := math.Min(math.Round(cur.cost), float64(domain.MaxCost-1))
			for _, col := range targetNodes[cur.node] {
				m.Set(row, col, domain.MatrixEntry{
					Duration: uint32(duration),
					Distance: cur.distance,
				})
			}
		}
		remaining -= len(targetNodes[cur.node])

		edges, err := graph.Outgoing(ctx, cur.node)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !costing.Allowed(e) || settled[e.To] {
				continue
			}
			distance := cur.distance + e.LengthM
			if distance > maxDistance {
				continue
			}
			cost := cur.cost + costing.EdgeCost(e)
			if c, seen := best[e.To]; seen && c <= cost {
				continue
			}
			best[e.To] = cost
			heap.Push(h, label{node: e.To, cost: cost, distance: distance})
		}
	}

	return nil
}
