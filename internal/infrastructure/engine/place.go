package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asgard/internal/domain"
	"github.com/asgard/internal/pkg/utils"
)

// ParsePlace reads a navitia place identifier. Accepted forms are "lon;lat"
// and "coord:lon:lat".
func ParsePlace(place domain.PlaceID) (domain.Point, error) {
	s := strings.TrimSpace(string(place))

	var lonStr, latStr string
	switch {
	case strings.HasPrefix(s, "coord:"):
		parts := strings.Split(strings.TrimPrefix(s, "coord:"), ":")
		if len(parts) != 2 {
			return domain.Point{}, fmt.Errorf("malformed coord place %q", place)
		}
		lonStr, latStr = parts[0], parts[1]
	case strings.Contains(s, ";"):
		parts := strings.Split(s, ";")
		if len(parts) != 2 {
			return domain.Point{}, fmt.Errorf("malformed place %q", place)
		}
		lonStr, latStr = parts[0], parts[1]
	default:
		return domain.Point{}, fmt.Errorf("unsupported place %q", place)
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("bad longitude in %q: %w", place, err)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("bad latitude in %q: %w", place, err)
	}
	if !utils.ValidateCoordinates(lat, lon) {
		return domain.Point{}, fmt.Errorf("coordinates out of range in %q", place)
	}

	return domain.Point{Lat: lat, Lon: lon}, nil
}
