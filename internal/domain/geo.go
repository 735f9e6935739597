package domain

import (
	"fmt"
	"math"
)

// Point is a waypoint in whatever space the view uses (video pixels or map
// coordinates). The console only preserves ordering.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Validate rejects points that cannot be drawn: NaN or infinite components.
func (p Point) Validate() error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return fmt.Errorf("%w: point (%v, %v)", ErrInvalidCoordinate, p.X, p.Y)
	}
	return nil
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l LatLng) Validate() error {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lng, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, l)
	}
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("%w: latitude %f out of range", ErrInvalidCoordinate, l.Lat)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("%w: longitude %f out of range", ErrInvalidCoordinate, l.Lng)
	}

	return nil
}

func (l LatLng) String() string {
	return fmt.Sprintf("%.6f, %.6f", l.Lat, l.Lng)
}
