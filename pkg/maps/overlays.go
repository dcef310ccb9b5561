package maps

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/go-drift/maps/pkg/geo"
)

// OverlayID is the opaque handle issued for a shape overlay.
type OverlayID int64

// PolylineOptions describes a path drawn on the map.
type PolylineOptions struct {
	// Points are the path vertices. At least two are required.
	Points []geo.LatLng

	// Width is the stroke width in logical pixels.
	Width float64

	// Color is the stroke color as ARGB.
	Color uint32

	// Geodesic draws segments as great-circle arcs.
	Geodesic bool
}

// PolygonOptions describes a filled region on the map.
type PolygonOptions struct {
	// Ring is the outer boundary. Closed automatically if the last vertex
	// does not repeat the first.
	Ring []geo.LatLng

	// Holes are inner boundaries cut out of the region.
	Holes [][]geo.LatLng

	// StrokeWidth is the boundary stroke width in logical pixels.
	StrokeWidth float64

	// StrokeColor is the boundary color as ARGB.
	StrokeColor uint32

	// FillColor is the region color as ARGB.
	FillColor uint32
}

// CircleOptions describes a circle centered on a coordinate.
type CircleOptions struct {
	Center geo.LatLng

	// Radius is the circle radius in meters. Must be positive.
	Radius float64

	StrokeWidth float64
	StrokeColor uint32
	FillColor   uint32
}

func (o PolylineOptions) validate() error {
	if len(o.Points) < 2 {
		return fmt.Errorf("%w: polyline needs at least 2 points, got %d", ErrInvalidOverlay, len(o.Points))
	}
	for _, p := range o.Points {
		if !p.Valid() {
			return fmt.Errorf("%w: coordinate out of range: %+v", ErrInvalidOverlay, p)
		}
	}
	return nil
}

// validate rejects malformed polygons Go-side before the vendor SDK sees
// them; the SDK's failure mode for bad rings is a native crash, not an
// error.
func (o PolygonOptions) validate() error {
	rings := make([]geom.LineString, 0, 1+len(o.Holes))
	outer, err := ringLineString(o.Ring)
	if err != nil {
		return err
	}
	rings = append(rings, outer)
	for _, hole := range o.Holes {
		ls, err := ringLineString(hole)
		if err != nil {
			return err
		}
		rings = append(rings, ls)
	}
	if _, err := geom.NewPolygon(rings); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOverlay, err)
	}
	return nil
}

func (o CircleOptions) validate() error {
	if !o.Center.Valid() {
		return fmt.Errorf("%w: coordinate out of range: %+v", ErrInvalidOverlay, o.Center)
	}
	if o.Radius <= 0 {
		return fmt.Errorf("%w: circle radius must be positive, got %v", ErrInvalidOverlay, o.Radius)
	}
	return nil
}

// ringLineString builds a closed linear ring, appending the first vertex
// when the input ring is open.
func ringLineString(ring []geo.LatLng) (geom.LineString, error) {
	if len(ring) < 3 {
		return geom.LineString{}, fmt.Errorf("%w: ring needs at least 3 points, got %d", ErrInvalidOverlay, len(ring))
	}
	for _, p := range ring {
		if !p.Valid() {
			return geom.LineString{}, fmt.Errorf("%w: coordinate out of range: %+v", ErrInvalidOverlay, p)
		}
	}
	closed := ring
	if ring[0] != ring[len(ring)-1] {
		closed = append(append([]geo.LatLng{}, ring...), ring[0])
	}
	coords := make([]float64, 0, len(closed)*2)
	for _, p := range closed {
		coords = append(coords, p.Longitude, p.Latitude)
	}
	ls, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	if err != nil {
		return geom.LineString{}, fmt.Errorf("%w: %v", ErrInvalidOverlay, err)
	}
	return ls, nil
}

func latLngPayloads(points []geo.LatLng) []map[string]any {
	out := make([]map[string]any, len(points))
	for i, p := range points {
		out[i] = map[string]any{"latitude": p.Latitude, "longitude": p.Longitude}
	}
	return out
}

func (o PolylineOptions) payload(id OverlayID) map[string]any {
	return map[string]any{
		"overlayId": int64(id),
		"points":    latLngPayloads(o.Points),
		"width":     o.Width,
		"color":     o.Color,
		"geodesic":  o.Geodesic,
	}
}

func (o PolygonOptions) payload(id OverlayID) map[string]any {
	holes := make([]any, len(o.Holes))
	for i, hole := range o.Holes {
		holes[i] = latLngPayloads(hole)
	}
	return map[string]any{
		"overlayId":   int64(id),
		"ring":        latLngPayloads(o.Ring),
		"holes":       holes,
		"strokeWidth": o.StrokeWidth,
		"strokeColor": o.StrokeColor,
		"fillColor":   o.FillColor,
	}
}

func (o CircleOptions) payload(id OverlayID) map[string]any {
	return map[string]any{
		"overlayId":   int64(id),
		"latitude":    o.Center.Latitude,
		"longitude":   o.Center.Longitude,
		"radius":      o.Radius,
		"strokeWidth": o.StrokeWidth,
		"strokeColor": o.StrokeColor,
		"fillColor":   o.FillColor,
	}
}
