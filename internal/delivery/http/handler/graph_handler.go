package handler

import (
	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type GraphStatsProvider interface {
	Stats() domain.GraphStats
}

type ProjectionCacheStats interface {
	CacheStats() (size, hits, misses, evictions int)
}

// GraphStatsResponse - состояние графа и кеша проекций
type GraphStatsResponse struct {
	Graph      domain.GraphStats `json:"graph"`
	Projection ProjectionStats   `json:"projection"`
}

type ProjectionStats struct {
	Size      int `json:"size"`
	Hits      int `json:"hits"`
	Misses    int `json:"misses"`
	Evictions int `json:"evictions"`
}

// GraphHandler отдает статистику движка
type GraphHandler struct {
	graph     GraphStatsProvider
	projector ProjectionCacheStats
}

func NewGraphHandler(graph GraphStatsProvider, projector ProjectionCacheStats) *GraphHandler {
	return &GraphHandler{graph: graph, projector: projector}
}

// GetStats godoc
// @Summary Graph cache statistics
// @Tags Graph
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=GraphStatsResponse}
// @Router /api/v1/graph/stats [get]
func (h *GraphHandler) GetStats(c *fiber.Ctx) error {
	resp := GraphStatsResponse{Graph: h.graph.Stats()}
	if h.projector != nil {
		size, hits, misses, evictions := h.projector.CacheStats()
		resp.Projection = ProjectionStats{Size: size, Hits: hits, Misses: misses, Evictions: evictions}
	}
	return utils.SendSuccess(c, resp, nil)
}
