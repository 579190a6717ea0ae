package domain

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// Extend расширяет bbox так, чтобы он покрывал точку p
func (b *BoundingBox) Extend(p Point) {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lon < b.MinLon {
		b.MinLon = p.Lon
	}
	if p.Lon > b.MaxLon {
		b.MaxLon = p.Lon
	}
}

// GraphStats статистика по загруженному графу
type GraphStats struct {
	Nodes       int         `json:"nodes"`
	CachedTiles int         `json:"cached_tiles"`
	CachedEdges int         `json:"cached_edges"`
	CacheBudget int         `json:"cache_budget"`
	CacheGets   int         `json:"cache_gets"`
	CacheHits   int         `json:"cache_hits"`
	Clears      int         `json:"clears"`
	Coverage    BoundingBox `json:"coverage"`
}
