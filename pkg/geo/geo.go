// Package geo provides the coordinate and camera value types used by the
// maps plugin. Values are plain data carriers; projection helpers live in
// this package so that camera math stays out of the controller.
package geo

import "math"

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the coordinate is within the WGS 84 range.
func (l LatLng) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// LatLngBounds is an axis-aligned region between two coordinates.
type LatLngBounds struct {
	SouthWest LatLng
	NorthEast LatLng
}

// Contains reports whether the coordinate lies inside the bounds.
// Bounds spanning the antimeridian are not supported.
func (b LatLngBounds) Contains(p LatLng) bool {
	return p.Latitude >= b.SouthWest.Latitude &&
		p.Latitude <= b.NorthEast.Latitude &&
		p.Longitude >= b.SouthWest.Longitude &&
		p.Longitude <= b.NorthEast.Longitude
}

// Extend returns bounds grown to include the coordinate.
func (b LatLngBounds) Extend(p LatLng) LatLngBounds {
	return LatLngBounds{
		SouthWest: LatLng{
			Latitude:  math.Min(b.SouthWest.Latitude, p.Latitude),
			Longitude: math.Min(b.SouthWest.Longitude, p.Longitude),
		},
		NorthEast: LatLng{
			Latitude:  math.Max(b.NorthEast.Latitude, p.Latitude),
			Longitude: math.Max(b.NorthEast.Longitude, p.Longitude),
		},
	}
}

// BoundsOf returns the smallest bounds containing all points.
// Returns the zero bounds for an empty slice.
func BoundsOf(points []LatLng) LatLngBounds {
	if len(points) == 0 {
		return LatLngBounds{}
	}
	b := LatLngBounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b
}

// CameraPosition describes the map camera.
type CameraPosition struct {
	// Target is the coordinate at the center of the viewport.
	Target LatLng

	// Zoom is the zoom level, where 0 shows the whole world in one tile.
	Zoom float64

	// Bearing is the camera rotation in degrees clockwise from north.
	Bearing float64

	// Tilt is the viewing angle in degrees from straight down.
	Tilt float64
}
