package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	for _, m := range SupportedModes() {
		parsed, ok := ParseMode(string(m))
		assert.True(t, ok, m)
		assert.Equal(t, m, parsed)
	}

	for _, s := range []string{"", "Walking", "bss", "ridesharing", "car_no_park"} {
		_, ok := ParseMode(s)
		assert.False(t, ok, s)
	}
}

func TestMode_IndexIsInjective(t *testing.T) {
	seen := make(map[ModeIndex]Mode)
	for _, m := range SupportedModes() {
		idx := m.Index()
		assert.GreaterOrEqual(t, int(idx), 0)
		assert.Less(t, int(idx), int(TravelModeCount))
		_, dup := seen[idx]
		assert.False(t, dup, "index %d reused by %s", idx, m)
		seen[idx] = m
	}

	assert.Equal(t, ModeIndex(-1), Mode("plane").Index())
}

func TestMode_TravelModeAndCosting(t *testing.T) {
	tests := []struct {
		mode    Mode
		travel  TravelMode
		costing CostingFamily
	}{
		{ModeWalking, TravelModePedestrian, CostingPedestrian},
		{ModeBike, TravelModeBicycle, CostingBicycle},
		{ModeCar, TravelModeDrive, CostingAuto},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			tm, ok := tt.mode.TravelMode()
			assert.True(t, ok)
			assert.Equal(t, tt.travel, tm)

			c, ok := tt.mode.Costing()
			assert.True(t, ok)
			assert.Equal(t, tt.costing, c)
		})
	}
}

func TestUnreachableDistance(t *testing.T) {
	assert.Equal(t, 600*DistanceDivisorPedestrian, UnreachableDistance(ModeWalking, 600))
	assert.Equal(t, 600*DistanceDivisorBicycle, UnreachableDistance(ModeBike, 600))
	assert.Equal(t, 600*DistanceDivisorAuto, UnreachableDistance(ModeCar, 600))
	assert.Equal(t, UnreachableDistance(ModeCar, 42), UnreachableDistance(Mode("other"), 42))
	assert.Zero(t, UnreachableDistance(ModeWalking, 0))
}

func TestCostingFamilies(t *testing.T) {
	families := CostingFamilies()
	assert.Len(t, families, 12)
	assert.Equal(t, "auto", CostingAuto.String())
	assert.Equal(t, "pedestrian", CostingPedestrian.String())
	assert.Equal(t, "unknown", CostingFamily(42).String())
}
