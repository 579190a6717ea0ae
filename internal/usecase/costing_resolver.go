package usecase

import (
	"fmt"
	"sync"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/infrastructure/costing"
	"github.com/asgard/internal/pkg/errors"
)

// Resolution - все, что нужно решателю для одного режима
type Resolution struct {
	Mode                domain.Mode
	Index               domain.ModeIndex
	TravelMode          domain.TravelMode
	Costing             domain.CostingFamily
	Model               domain.CostingModel
	Costings            domain.ModeCostings
	UnreachableDistance float64
}

// CostingResolver maps a mode and a speed to a costing model.
//
// Every call builds a fresh model and a private ModeCostings array for the request, so
// concurrent requests for the same mode never share a model. The last model built for
// each mode is kept and seeds the other slots of later requests.
type CostingResolver struct {
	factory *costing.Factory

	mu   sync.RWMutex
	last domain.ModeCostings
}

// NewCostingResolver создает резолвер и модели по умолчанию для всех режимов
func NewCostingResolver(factory *costing.Factory) (*CostingResolver, error) {
	r := &CostingResolver{factory: factory}

	defaults := costing.DefaultOptions()
	for _, mode := range domain.SupportedModes() {
		family, _ := mode.Costing()
		model, err := factory.Create(family, defaults)
		if err != nil {
			return nil, fmt.Errorf("default costing for %s: %w", mode, err)
		}
		r.last[mode.Index()] = model
	}

	return r, nil
}

// Resolve validates mode and builds its costing for speed (m/s). Unknown modes fail with
// ErrInvalidMode and leave the stored models untouched.
func (r *CostingResolver) Resolve(mode string, speed float64, maxDuration uint32) (*Resolution, error) {
	m, ok := domain.ParseMode(mode)
	if !ok {
		return nil, errors.ErrInvalidMode.WithDetails(map[string]interface{}{"mode": mode})
	}
	travelMode, _ := m.TravelMode()
	family, _ := m.Costing()
	idx := m.Index()

	model, err := r.factory.Create(family, costing.ForSpeed(speed))
	if err != nil {
		return nil, errors.ErrInternalServer.Wrap(err)
	}

	r.mu.Lock()
	r.last[idx] = model
	costings := r.last
	r.mu.Unlock()

	return &Resolution{
		Mode:                m,
		Index:               idx,
		TravelMode:          travelMode,
		Costing:             family,
		Model:               model,
		Costings:            costings,
		UnreachableDistance: domain.UnreachableDistance(m, maxDuration),
	}, nil
}

// Costing returns the last model built for mode, nil for unsupported modes.
func (r *CostingResolver) Costing(mode domain.Mode) domain.CostingModel {
	idx := mode.Index()
	if idx < 0 {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last[idx]
}
