package costing

import "github.com/asgard/internal/domain"

// defaultAutoSpeed is used for car edges without a speed.
const defaultAutoSpeed = 50.0

type baseCost struct {
	family domain.CostingFamily
	mode   domain.TravelMode
	access domain.Access
	opts   domain.CostingOptions
}

func (c *baseCost) TravelMode() domain.TravelMode  { return c.mode }
func (c *baseCost) Family() domain.CostingFamily   { return c.family }
func (c *baseCost) Options() domain.CostingOptions { return c.opts }
func (c *baseCost) Speed() float64                 { return c.opts.Speed }
func (c *baseCost) Allowed(e domain.Edge) bool     { return e.Access.Has(c.access) }

func (c *baseCost) factor() float64 {
	if c.opts.Factor <= 0 {
		return 1
	}
	return c.opts.Factor
}

// speedOr returns the configured speed, or def when the request carried none.
func (c *baseCost) speedOr(def float64) float64 {
	if c.opts.Speed <= 0 {
		return def
	}
	return c.opts.Speed
}

func secondsAt(lengthM, kmh float64) float64 {
	return lengthM / (kmh / MetersPerSecondToKmh)
}

type pedestrianCost struct{ baseCost }

// NewPedestrianCost walks every foot edge at the configured speed.
func NewPedestrianCost(opts domain.CostingOptions) domain.CostingModel {
	return &pedestrianCost{baseCost{
		family: domain.CostingPedestrian,
		mode:   domain.TravelModePedestrian,
		access: domain.AccessFoot,
		opts:   opts,
	}}
}

func (c *pedestrianCost) EdgeCost(e domain.Edge) float64 {
	return secondsAt(e.LengthM, c.speedOr(defaultPedestrianSpeed)) * c.factor()
}

type bicycleCost struct{ baseCost }

// NewBicycleCost rides every bike edge at the configured speed, capped by the edge speed.
func NewBicycleCost(opts domain.CostingOptions) domain.CostingModel {
	return &bicycleCost{baseCost{
		family: domain.CostingBicycle,
		mode:   domain.TravelModeBicycle,
		access: domain.AccessBike,
		opts:   opts,
	}}
}

func (c *bicycleCost) EdgeCost(e domain.Edge) float64 {
	speed := c.speedOr(defaultBicycleSpeed)
	if e.SpeedKmh > 0 && e.SpeedKmh < speed {
		speed = e.SpeedKmh
	}
	return secondsAt(e.LengthM, speed) * c.factor()
}

type autoCost struct{ baseCost }

// NewAutoCost drives car edges at their own speed.
func NewAutoCost(opts domain.CostingOptions) domain.CostingModel {
	return &autoCost{baseCost{
		family: domain.CostingAuto,
		mode:   domain.TravelModeDrive,
		access: domain.AccessCar,
		opts:   opts,
	}}
}

func (c *autoCost) EdgeCost(e domain.Edge) float64 {
	speed := e.SpeedKmh
	if speed <= 0 {
		speed = c.opts.Speed
	}
	if speed <= 0 {
		speed = defaultAutoSpeed
	}
	return secondsAt(e.LengthM, speed) * c.factor()
}
