package domain

// CostingFamily - семейство costing-моделей движка
type CostingFamily int

const (
	CostingAuto CostingFamily = iota
	CostingAutoShorter
	CostingBicycle
	CostingBus
	CostingHOV
	CostingMotorScooter
	CostingMultimodal
	CostingPedestrian
	CostingTransit
	CostingTruck
	CostingMotorcycle
	CostingAutoDataFix

	CostingFamilyCount
)

var costingFamilyNames = [CostingFamilyCount]string{
	"auto",
	"auto_shorter",
	"bicycle",
	"bus",
	"hov",
	"motor_scooter",
	"multimodal",
	"pedestrian",
	"transit",
	"truck",
	"motorcycle",
	"auto_data_fix",
}

func (c CostingFamily) String() string {
	if c < 0 || c >= CostingFamilyCount {
		return "unknown"
	}
	return costingFamilyNames[c]
}

// CostingFamilies lists every family in enum order.
func CostingFamilies() []CostingFamily {
	families := make([]CostingFamily, 0, CostingFamilyCount)
	for c := CostingAuto; c < CostingFamilyCount; c++ {
		families = append(families, c)
	}
	return families
}

// Costing returns the family used to cost the mode.
func (m Mode) Costing() (CostingFamily, bool) {
	switch m {
	case ModeWalking:
		return CostingPedestrian, true
	case ModeBike:
		return CostingBicycle, true
	case ModeCar:
		return CostingAuto, true
	default:
		return 0, false
	}
}

// CostingOptions - параметры costing-модели одного семейства
type CostingOptions struct {
	// Speed is the adjustable travel speed in km/h. Zero means "use edge speeds".
	Speed float64 `json:"speed"`
	// Factor multiplies every edge cost.
	Factor float64 `json:"factor"`
	// MaxSnapDistance bounds the projection of a place onto the network, in meters.
	MaxSnapDistance float64 `json:"max_snap_distance"`
}

// CostingModel - функция стоимости ребер для одного режима
type CostingModel interface {
	TravelMode() TravelMode
	Family() CostingFamily
	Options() CostingOptions
	// Speed returns the configured speed in km/h.
	Speed() float64
	Allowed(e Edge) bool
	// EdgeCost returns the traversal time of e in seconds.
	EdgeCost(e Edge) float64
}

// ModeCostings holds one costing model per travel mode slot.
type ModeCostings [TravelModeCount]CostingModel
