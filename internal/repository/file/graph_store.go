package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/domain/repository"
)

// GraphFile - формат JSON-файла с графом
type GraphFile struct {
	Nodes []domain.Node `json:"nodes"`
	Edges []domain.Edge `json:"edges"`
}

// MemoryStore keeps a whole graph in memory. Used for small extracts and tests.
type MemoryStore struct {
	nodes    []domain.Node
	outgoing map[int64][]domain.Edge
}

var _ repository.EdgeStore = (*MemoryStore)(nil)

// NewMemoryStore builds a store from nodes and edges. Edges must reference known nodes.
func NewMemoryStore(nodes []domain.Node, edges []domain.Edge) (*MemoryStore, error) {
	known := make(map[int64]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := known[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node %d", n.ID)
		}
		known[n.ID] = struct{}{}
	}

	outgoing := make(map[int64][]domain.Edge)
	for _, e := range edges {
		if _, ok := known[e.From]; !ok {
			return nil, fmt.Errorf("edge %d->%d: unknown source node", e.From, e.To)
		}
		if _, ok := known[e.To]; !ok {
			return nil, fmt.Errorf("edge %d->%d: unknown target node", e.From, e.To)
		}
		outgoing[e.From] = append(outgoing[e.From], e)
	}

	sorted := make([]domain.Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &MemoryStore{nodes: sorted, outgoing: outgoing}, nil
}

// LoadGraphFile reads a GraphFile from path
func LoadGraphFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	var gf GraphFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("decode graph file %s: %w", path, err)
	}

	return NewMemoryStore(gf.Nodes, gf.Edges)
}

func (s *MemoryStore) Nodes(ctx context.Context) ([]domain.Node, error) {
	return s.nodes, nil
}

func (s *MemoryStore) Outgoing(ctx context.Context, nodeID int64) ([]domain.Edge, error) {
	return s.outgoing[nodeID], nil
}
