package costing

import (
	"sync"

	"github.com/asgard/internal/domain"
)

// MetersPerSecondToKmh converts the speed sent by jormun into the unit costing options use.
const MetersPerSecondToKmh = 3.6

const (
	defaultPedestrianSpeed = 5.1
	defaultBicycleSpeed    = 18.0
	defaultSnapDistance    = 1000.0
)

// Options maps every costing family to its options.
type Options map[domain.CostingFamily]domain.CostingOptions

var (
	defaultOptionsOnce sync.Once
	defaultOptions     Options
)

func buildDefaultOptions() Options {
	opts := make(Options, domain.CostingFamilyCount)
	for _, family := range domain.CostingFamilies() {
		opts[family] = domain.CostingOptions{
			Factor:          1,
			MaxSnapDistance: defaultSnapDistance,
		}
	}

	pedestrian := opts[domain.CostingPedestrian]
	pedestrian.Speed = defaultPedestrianSpeed
	opts[domain.CostingPedestrian] = pedestrian

	multimodal := opts[domain.CostingMultimodal]
	multimodal.Speed = defaultPedestrianSpeed
	opts[domain.CostingMultimodal] = multimodal

	bicycle := opts[domain.CostingBicycle]
	bicycle.Speed = defaultBicycleSpeed
	opts[domain.CostingBicycle] = bicycle

	return opts
}

// DefaultOptions returns a copy of the process-wide template. The template is built once.
func DefaultOptions() Options {
	defaultOptionsOnce.Do(func() {
		defaultOptions = buildDefaultOptions()
	})
	return defaultOptions.Clone()
}

func (o Options) Clone() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// For returns the options of a family; families without an entry get zero options.
func (o Options) For(family domain.CostingFamily) domain.CostingOptions {
	return o[family]
}

// ForSpeed clones the defaults and applies speed (m/s) to the pedestrian and bicycle
// families. The auto family always keeps the engine defaults.
func ForSpeed(speed float64) Options {
	opts := DefaultOptions()
	kmh := speed * MetersPerSecondToKmh

	pedestrian := opts[domain.CostingPedestrian]
	pedestrian.Speed = kmh
	opts[domain.CostingPedestrian] = pedestrian

	bicycle := opts[domain.CostingBicycle]
	bicycle.Speed = kmh
	opts[domain.CostingBicycle] = bicycle

	return opts
}
