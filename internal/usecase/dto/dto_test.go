package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgard/internal/domain"
)

func TestRequestedAPI_IsMatrix(t *testing.T) {
	assert.True(t, APIStreetNetworkRoutingMatrix.IsMatrix())
	assert.True(t, APIDirectPath.IsMatrix())
	assert.False(t, RequestedAPI("places").IsMatrix())
	assert.False(t, RequestedAPI("").IsMatrix())
}

func TestRequest_Decode(t *testing.T) {
	raw := `{
		"requested_api": "street_network_routing_matrix",
		"sn_routing_matrix": {
			"origins": [{"place": "2.37;48.84"}],
			"destinations": [{"place": "2.36;48.85"}, {"place": "coord:2.35:48.86"}],
			"mode": "walking",
			"speed": 1.12,
			"max_duration": 1800
		}
	}`

	var req Request
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	assert.Equal(t, APIStreetNetworkRoutingMatrix, req.RequestedAPI)
	assert.Equal(t, []domain.PlaceID{"2.37;48.84"}, req.SNRoutingMatrix.OriginPlaces())
	assert.Equal(t, []domain.PlaceID{"2.36;48.85", "coord:2.35:48.86"}, req.SNRoutingMatrix.DestinationPlaces())
	assert.Equal(t, uint32(1800), req.SNRoutingMatrix.MaxDuration)
}

func TestNewMatrixResponse(t *testing.T) {
	grid := domain.PairGrid{
		{{Duration: 10, Status: domain.RoutingStatusReached}, {Duration: domain.MaxCost, Status: domain.RoutingStatusUnknown}},
		{{Duration: 700, Status: domain.RoutingStatusUnreached}, {Duration: 5, Status: domain.RoutingStatusReached}},
	}

	resp := NewMatrixResponse(grid)

	require.False(t, resp.IsEmpty())
	require.Len(t, resp.SNRoutingMatrix.Rows, 1)
	row := resp.SNRoutingMatrix.Rows[0].RoutingResponse
	require.Len(t, row, 4)
	assert.Equal(t, uint32(700), row[2].Duration)
	assert.Equal(t, domain.RoutingStatusUnknown, row[1].RoutingStatus)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"routing_status":"unreached"`)

	assert.True(t, (&Response{}).IsEmpty())
	empty, err := json.Marshal(&Response{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(empty))
}
