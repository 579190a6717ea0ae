package engine

import (
	"container/list"
	"sync"

	"github.com/asgard/internal/domain"
)

// defaultProjectionCapacity is used when the projector is built without a max cache size.
const defaultProjectionCapacity = 10000

type projectionKey struct {
	mode  domain.Mode
	place domain.PlaceID
}

type projectionEntry struct {
	key projectionKey
	val domain.ProjectedLocation
}

// projectionCache is a bounded LRU of projected places.
type projectionCache struct {
	mu        sync.Mutex
	m         map[projectionKey]*list.Element
	ll        *list.List
	capacity  int
	hits      int
	misses    int
	evictions int
}

func newProjectionCache(capacity int) *projectionCache {
	if capacity <= 0 {
		capacity = defaultProjectionCapacity
	}
	return &projectionCache{
		m:        make(map[projectionKey]*list.Element, capacity),
		ll:       list.New(),
		capacity: capacity,
	}
}

func (c *projectionCache) get(k projectionKey) (domain.ProjectedLocation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.m[k]; ok {
		c.hits++
		c.ll.MoveToFront(el)
		return el.Value.(projectionEntry).val, true
	}
	c.misses++
	return domain.ProjectedLocation{}, false
}

func (c *projectionCache) put(k projectionKey, v domain.ProjectedLocation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.m[k]; ok {
		el.Value = projectionEntry{key: k, val: v}
		c.ll.MoveToFront(el)
		return
	}

	c.m[k] = c.ll.PushFront(projectionEntry{key: k, val: v})

	if c.ll.Len() > c.capacity {
		tail := c.ll.Back()
		if tail != nil {
			e := tail.Value.(projectionEntry)
			delete(c.m, e.key)
			c.ll.Remove(tail)
			c.evictions++
		}
	}
}

func (c *projectionCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *projectionCache) stats() (hits, misses, evictions int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, c.evictions
}
