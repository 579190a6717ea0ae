package dto

import "github.com/asgard/internal/domain"

// Response - ответ для jormun. Пустой ответ означает, что запрос не обработан.
type Response struct {
	SNRoutingMatrix *RoutingMatrix `json:"sn_routing_matrix,omitempty"`
}

// RoutingMatrix - jormun ждет не матрицу, а одну строку со всеми результатами
type RoutingMatrix struct {
	Rows []RoutingMatrixRow `json:"rows"`
}

type RoutingMatrixRow struct {
	RoutingResponse []RoutingResponse `json:"routing_response"`
}

type RoutingResponse struct {
	Duration      uint32               `json:"duration"`
	RoutingStatus domain.RoutingStatus `json:"routing_status"`
}

// NewMatrixResponse flattens grid origins-major into a single row.
func NewMatrixResponse(grid domain.PairGrid) *Response {
	row := grid.Flatten()
	out := make([]RoutingResponse, len(row))
	for i, r := range row {
		out[i] = RoutingResponse{
			Duration:      r.Duration,
			RoutingStatus: r.Status,
		}
	}

	return &Response{
		SNRoutingMatrix: &RoutingMatrix{
			Rows: []RoutingMatrixRow{{RoutingResponse: out}},
		},
	}
}

// IsEmpty reports whether no matrix row was populated.
func (r *Response) IsEmpty() bool {
	return r == nil || r.SNRoutingMatrix == nil || len(r.SNRoutingMatrix.Rows) == 0
}
