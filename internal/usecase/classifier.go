package usecase

import "github.com/asgard/internal/domain"

// ClassificationStats - счетчики для логов
type ClassificationStats struct {
	Unknown   int
	Unreached int
}

// classifyDuration checks the sentinel before the threshold: MaxCost is larger than any
// max duration and must never read as unreached.
func classifyDuration(duration, maxDuration uint32) domain.RoutingStatus {
	switch {
	case duration == domain.MaxCost:
		return domain.RoutingStatusUnknown
	case duration > maxDuration:
		return domain.RoutingStatusUnreached
	default:
		return domain.RoutingStatusReached
	}
}

// Classify assigns a routing status to every pair of m.
func Classify(m domain.Matrix, maxDuration uint32) (domain.PairGrid, ClassificationStats) {
	var stats ClassificationStats

	grid := make(domain.PairGrid, m.Rows())
	for i := range grid {
		grid[i] = make([]domain.PairResult, m.Cols())
		for j := range grid[i] {
			d := m.At(i, j).Duration
			status := classifyDuration(d, maxDuration)
			switch status {
			case domain.RoutingStatusUnknown:
				stats.Unknown++
			case domain.RoutingStatusUnreached:
				stats.Unreached++
			}
			grid[i][j] = domain.PairResult{Duration: d, Status: status}
		}
	}

	return grid, stats
}
