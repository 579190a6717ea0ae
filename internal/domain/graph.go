package domain

// Access - битовая маска разрешенных режимов на ребре
type Access uint8

const (
	AccessFoot Access = 1 << iota
	AccessBike
	AccessCar

	AccessAll = AccessFoot | AccessBike | AccessCar
)

// Has reports whether every bit of o is set.
func (a Access) Has(o Access) bool {
	return a&o == o
}

// Node - вершина дорожного графа
type Node struct {
	ID  int64   `json:"id" db:"id"`
	Lon float64 `json:"lon" db:"lon"`
	Lat float64 `json:"lat" db:"lat"`
}

// Edge - направленное ребро дорожного графа
type Edge struct {
	From     int64   `json:"from" db:"source"`
	To       int64   `json:"to" db:"target"`
	LengthM  float64 `json:"length_m" db:"length_m"`
	SpeedKmh float64 `json:"speed_kmh" db:"speed_kmh"`
	Access   Access  `json:"access" db:"access"`
}

// PlaceID - идентификатор места в терминах navitia ("lon;lat", "coord:lon:lat")
type PlaceID string

// ProjectedLocation - место, спроецированное на граф
type ProjectedLocation struct {
	Place        PlaceID `json:"place"`
	NodeID       int64   `json:"node_id"`
	Lon          float64 `json:"lon"`
	Lat          float64 `json:"lat"`
	SnapDistance float64 `json:"snap_distance"`
}
