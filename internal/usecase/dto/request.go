package dto

import "github.com/asgard/internal/domain"

// RequestedAPI - тип запроса jormun
type RequestedAPI string

const (
	APIStreetNetworkRoutingMatrix RequestedAPI = "street_network_routing_matrix"
	APIDirectPath                 RequestedAPI = "direct_path"
)

// IsMatrix reports whether the handler serves this kind of request.
func (a RequestedAPI) IsMatrix() bool {
	return a == APIStreetNetworkRoutingMatrix || a == APIDirectPath
}

// Request - входящий запрос jormun
type Request struct {
	RequestedAPI    RequestedAPI                      `json:"requested_api"`
	SNRoutingMatrix StreetNetworkRoutingMatrixRequest `json:"sn_routing_matrix"`
}

// StreetNetworkRoutingMatrixRequest - параметры матрицы
type StreetNetworkRoutingMatrixRequest struct {
	Origins      []LocationContext `json:"origins" validate:"dive"`
	Destinations []LocationContext `json:"destinations" validate:"dive"`
	Mode         string            `json:"mode"`
	// Speed in meters per second
	Speed       float64 `json:"speed" validate:"gte=0"`
	MaxDuration uint32  `json:"max_duration"`
}

// LocationContext - место в запросе
type LocationContext struct {
	Place          string `json:"place" validate:"required"`
	AccessDuration uint32 `json:"access_duration,omitempty"`
}

// OriginPlaces returns the origin identifiers in request order.
func (r *StreetNetworkRoutingMatrixRequest) OriginPlaces() []domain.PlaceID {
	return places(r.Origins)
}

// DestinationPlaces returns the destination identifiers in request order.
func (r *StreetNetworkRoutingMatrixRequest) DestinationPlaces() []domain.PlaceID {
	return places(r.Destinations)
}

func places(locs []LocationContext) []domain.PlaceID {
	out := make([]domain.PlaceID, len(locs))
	for i, l := range locs {
		out[i] = domain.PlaceID(l.Place)
	}
	return out
}
