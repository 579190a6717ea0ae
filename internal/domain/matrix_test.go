package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixFromFlat(t *testing.T) {
	flat := []MatrixEntry{{Duration: 1}, {Duration: 2}, {Duration: 3}, {Duration: 4}, {Duration: 5}, {Duration: 6}}

	m, err := NewMatrixFromFlat(2, 3, flat)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, uint32(3), m.At(0, 2).Duration)
	assert.Equal(t, uint32(4), m.At(1, 0).Duration)
	assert.Equal(t, flat, m.Flatten())

	_, err = NewMatrixFromFlat(2, 3, flat[:5])
	assert.Error(t, err)

	_, err = NewMatrixFromFlat(3, 3, flat)
	assert.Error(t, err)
}

func TestNewMatrix_DefaultsToMaxCost(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(1, 1, MatrixEntry{Duration: 10})

	assert.Equal(t, MaxCost, m.At(0, 0).Duration)
	assert.Equal(t, uint32(10), m.At(1, 1).Duration)
}

func TestPairGrid_Flatten(t *testing.T) {
	grid := PairGrid{
		{{Duration: 1, Status: RoutingStatusReached}, {Duration: 2, Status: RoutingStatusUnknown}},
		{{Duration: 3, Status: RoutingStatusUnreached}, {Duration: 4, Status: RoutingStatusReached}},
	}

	row := grid.Flatten()

	require.Len(t, row, 4)
	assert.Equal(t, uint32(1), row[0].Duration)
	assert.Equal(t, uint32(2), row[1].Duration)
	assert.Equal(t, uint32(3), row[2].Duration)
	assert.Equal(t, RoutingStatusReached, row[3].Status)
}
