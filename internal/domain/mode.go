package domain

import "fmt"

// Mode - режим передвижения, который присылает jormun
type Mode string

const (
	ModeWalking Mode = "walking"
	ModeBike    Mode = "bike"
	ModeCar     Mode = "car"
)

// TravelMode - внутренний режим движка маршрутизации
type TravelMode int

const (
	TravelModeDrive TravelMode = iota
	TravelModePedestrian
	TravelModeBicycle
	TravelModePublicTransit

	// TravelModeCount is the number of travel modes the engine knows about,
	// not only the ones exposed through Mode.
	TravelModeCount
)

func (t TravelMode) String() string {
	switch t {
	case TravelModeDrive:
		return "drive"
	case TravelModePedestrian:
		return "pedestrian"
	case TravelModeBicycle:
		return "bicycle"
	case TravelModePublicTransit:
		return "public_transit"
	default:
		return fmt.Sprintf("travel_mode(%d)", int(t))
	}
}

var modeTravelModes = map[Mode]TravelMode{
	ModeWalking: TravelModePedestrian,
	ModeBike:    TravelModeBicycle,
	ModeCar:     TravelModeDrive,
}

// SupportedModes returns the modes accepted by the matrix handler.
func SupportedModes() []Mode {
	return []Mode{ModeWalking, ModeBike, ModeCar}
}

// ParseMode validates a raw mode string. There is no default mode.
func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	_, ok := modeTravelModes[m]
	return m, ok
}

// TravelMode возвращает режим движка для режима jormun
func (m Mode) TravelMode() (TravelMode, bool) {
	tm, ok := modeTravelModes[m]
	return tm, ok
}

// ModeIndex - индекс слота costing-модели для режима
type ModeIndex int

// Index returns the costing slot of the mode, or -1 for unsupported modes.
func (m Mode) Index() ModeIndex {
	tm, ok := modeTravelModes[m]
	if !ok {
		return -1
	}
	return ModeIndex(tm)
}

// Unreachable distance divisors (meters per duration unit) used to bound the matrix search.
const (
	DistanceDivisorPedestrian float64 = 28
	DistanceDivisorBicycle    float64 = 56
	DistanceDivisorAuto       float64 = 56
)

// UnreachableDistance converts a max duration into the distance bound of the search.
// Any mode other than walking and bike shares the auto divisor.
func UnreachableDistance(m Mode, maxDuration uint32) float64 {
	d := float64(maxDuration)
	switch m {
	case ModeWalking:
		return d * DistanceDivisorPedestrian
	case ModeBike:
		return d * DistanceDivisorBicycle
	default:
		return d * DistanceDivisorAuto
	}
}
