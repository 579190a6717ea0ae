package engine

import (
	"sync"

	"github.com/asgard/internal/domain"
)

// AdjacencyCache keeps the outgoing edges of visited nodes. It never evicts on its own:
// the owner checks Size against its budget and calls Clear.
// It's safe for concurrent use.
type AdjacencyCache struct {
	mu    sync.RWMutex
	m     map[int64][]domain.Edge
	edges int
	// stats
	gets int
	hits int
	puts int
}

func NewAdjacencyCache() *AdjacencyCache {
	return &AdjacencyCache{
		m: make(map[int64][]domain.Edge),
	}
}

// Get returns the adjacency list for node, and true if it was cached.
func (c *AdjacencyCache) Get(node int64) ([]domain.Edge, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gets++
	v, ok := c.m[node]
	if ok {
		c.hits++
	}
	return v, ok
}

// Put stores the adjacency list of node, replacing any previous one.
func (c *AdjacencyCache) Put(node int64, edges []domain.Edge) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.m[node]; ok {
		c.edges -= len(old)
	}
	c.m[node] = edges
	c.edges += len(edges)
	c.puts++
}

// Size returns the number of cached nodes and edges.
func (c *AdjacencyCache) Size() (nodes, edges int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m), c.edges
}

// Clear drops every cached adjacency list and resets stats.
func (c *AdjacencyCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[int64][]domain.Edge)
	c.edges = 0
	c.gets = 0
	c.hits = 0
	c.puts = 0
}

// Stats returns (gets, hits, puts) snapshot under lock.
func (c *AdjacencyCache) Stats() (gets, hits, puts int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gets, c.hits, c.puts
}
