package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgard/internal/domain"
)

func TestDefaultOptions_CoversEveryFamily(t *testing.T) {
	opts := DefaultOptions()

	assert.Len(t, opts, int(domain.CostingFamilyCount))
	for _, family := range domain.CostingFamilies() {
		_, ok := opts[family]
		assert.True(t, ok, family.String())
	}
	assert.Equal(t, defaultPedestrianSpeed, opts.For(domain.CostingPedestrian).Speed)
	assert.Equal(t, defaultBicycleSpeed, opts.For(domain.CostingBicycle).Speed)
}

func TestDefaultOptions_ReturnsCopies(t *testing.T) {
	opts := DefaultOptions()
	p := opts[domain.CostingPedestrian]
	p.Speed = 99
	opts[domain.CostingPedestrian] = p

	assert.Equal(t, defaultPedestrianSpeed, DefaultOptions().For(domain.CostingPedestrian).Speed)
}

func TestForSpeed(t *testing.T) {
	defaults := DefaultOptions()

	for _, speed := range []float64{0.5, 1.4, 5.0, 12.3} {
		opts := ForSpeed(speed)

		assert.InDelta(t, speed*3.6, opts.For(domain.CostingPedestrian).Speed, 1e-9)
		assert.InDelta(t, speed*3.6, opts.For(domain.CostingBicycle).Speed, 1e-9)
		assert.Equal(t, defaults.For(domain.CostingAuto), opts.For(domain.CostingAuto))
		assert.Equal(t, defaults.For(domain.CostingTruck), opts.For(domain.CostingTruck))
	}
}

func TestFactory_Create(t *testing.T) {
	f := NewDefaultFactory()
	opts := ForSpeed(1.4)

	tests := []struct {
		family domain.CostingFamily
		mode   domain.TravelMode
	}{
		{domain.CostingPedestrian, domain.TravelModePedestrian},
		{domain.CostingBicycle, domain.TravelModeBicycle},
		{domain.CostingAuto, domain.TravelModeDrive},
	}

	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			model, err := f.Create(tt.family, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.family, model.Family())
			assert.Equal(t, tt.mode, model.TravelMode())
		})
	}

	_, err := f.Create(domain.CostingTruck, opts)
	assert.Error(t, err)
}

func TestFactory_CreateReturnsFreshInstances(t *testing.T) {
	f := NewDefaultFactory()

	a, err := f.Create(domain.CostingPedestrian, ForSpeed(1))
	require.NoError(t, err)
	b, err := f.Create(domain.CostingPedestrian, ForSpeed(2))
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.InDelta(t, 3.6, a.Speed(), 1e-9)
	assert.InDelta(t, 7.2, b.Speed(), 1e-9)
}

func TestModels_EdgeCost(t *testing.T) {
	edge := domain.Edge{From: 1, To: 2, LengthM: 360, SpeedKmh: 36, Access: domain.AccessAll}

	walk := NewPedestrianCost(domain.CostingOptions{Speed: 3.6})
	assert.InDelta(t, 360.0, walk.EdgeCost(edge), 1e-9)

	bike := NewBicycleCost(domain.CostingOptions{Speed: 18})
	assert.InDelta(t, 72.0, bike.EdgeCost(edge), 1e-9)

	slow := edge
	slow.SpeedKmh = 12
	assert.InDelta(t, 108.0, bike.EdgeCost(slow), 1e-9)

	car := NewAutoCost(domain.CostingOptions{})
	assert.InDelta(t, 36.0, car.EdgeCost(edge), 1e-9)

	noSpeed := edge
	noSpeed.SpeedKmh = 0
	assert.InDelta(t, 360/(defaultAutoSpeed/3.6), car.EdgeCost(noSpeed), 1e-9)

	doubled := NewPedestrianCost(domain.CostingOptions{Speed: 3.6, Factor: 2})
	assert.InDelta(t, 720.0, doubled.EdgeCost(edge), 1e-9)
}

func TestModels_ZeroSpeedKeepsParameter(t *testing.T) {
	edge := domain.Edge{From: 1, To: 2, LengthM: 360, Access: domain.AccessAll}

	walk := NewPedestrianCost(ForSpeed(0).For(domain.CostingPedestrian))
	assert.Zero(t, walk.Speed())
	assert.InDelta(t, 360/(defaultPedestrianSpeed/3.6), walk.EdgeCost(edge), 1e-9)

	bike := NewBicycleCost(ForSpeed(0).For(domain.CostingBicycle))
	assert.Zero(t, bike.Speed())
	assert.InDelta(t, 360/(defaultBicycleSpeed/3.6), bike.EdgeCost(edge), 1e-9)
}

func TestModels_Allowed(t *testing.T) {
	footway := domain.Edge{Access: domain.AccessFoot}
	road := domain.Edge{Access: domain.AccessCar | domain.AccessBike}

	walk := NewPedestrianCost(domain.CostingOptions{})
	bike := NewBicycleCost(domain.CostingOptions{})
	car := NewAutoCost(domain.CostingOptions{})

	assert.True(t, walk.Allowed(footway))
	assert.False(t, walk.Allowed(road))
	assert.False(t, bike.Allowed(footway))
	assert.True(t, bike.Allowed(road))
	assert.True(t, car.Allowed(road))
	assert.False(t, car.Allowed(footway))
}
