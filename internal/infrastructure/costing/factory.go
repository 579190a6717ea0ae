package costing

import (
	"fmt"
	"sync"

	"github.com/asgard/internal/domain"
)

// Constructor builds a costing model from the options of its family.
type Constructor func(opts domain.CostingOptions) domain.CostingModel

// Factory - реестр конструкторов costing-моделей
type Factory struct {
	mu    sync.RWMutex
	ctors map[domain.CostingFamily]Constructor
}

func NewFactory() *Factory {
	return &Factory{
		ctors: make(map[domain.CostingFamily]Constructor),
	}
}

// NewDefaultFactory returns a factory with auto, pedestrian and bicycle registered.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	f.Register(domain.CostingAuto, NewAutoCost)
	f.Register(domain.CostingPedestrian, NewPedestrianCost)
	f.Register(domain.CostingBicycle, NewBicycleCost)
	return f
}

func (f *Factory) Register(family domain.CostingFamily, ctor Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ctors[family] = ctor
}

// Create builds a new model for family using its entry in opts.
func (f *Factory) Create(family domain.CostingFamily, opts Options) (domain.CostingModel, error) {
	f.mu.RLock()
	ctor, ok := f.ctors[family]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no costing registered for %s", family)
	}
	return ctor(opts.For(family)), nil
}
