package geo

import (
	"math"

	"github.com/wroge/wgs84"
)

// tileSize is the vendor SDK's tile edge length in logical pixels.
const tileSize = 256

// earthCircumference is the WGS 84 equatorial circumference in meters,
// which equals the extent of the EPSG:3857 plane.
const earthCircumference = 2 * math.Pi * 6378137

// MaxZoom is the largest zoom level the camera helpers will produce.
const MaxZoom = 21

// ToMercator projects a coordinate onto the EPSG:3857 plane in meters.
func ToMercator(p LatLng) (x, y float64) {
	f := wgs84.EPSG().Transform(4326, 3857)
	x, y, _ = f(p.Longitude, p.Latitude, 0)
	return x, y
}

// FromMercator converts an EPSG:3857 point back to a coordinate.
func FromMercator(x, y float64) LatLng {
	f := wgs84.EPSG().Transform(3857, 4326)
	lng, lat, _ := f(x, y, 0)
	return LatLng{Latitude: lat, Longitude: lng}
}

// CameraForBounds computes a camera that fits the bounds inside a viewport
// of width by height logical pixels, keeping at least padding pixels of
// margin on every side. The camera targets the Mercator midpoint of the
// bounds with zero bearing and tilt.
//
// Degenerate inputs (empty viewport after padding, or zero-extent bounds)
// clamp to MaxZoom rather than failing; a point annotation fit is a valid
// request.
func CameraForBounds(b LatLngBounds, width, height, padding float64) CameraPosition {
	swX, swY := ToMercator(b.SouthWest)
	neX, neY := ToMercator(b.NorthEast)

	target := FromMercator((swX+neX)/2, (swY+neY)/2)

	availW := width - 2*padding
	availH := height - 2*padding
	spanX := math.Abs(neX - swX)
	spanY := math.Abs(neY - swY)

	zoom := float64(MaxZoom)
	if availW > 0 && availH > 0 && spanX > 0 && spanY > 0 {
		// Zoom z renders the world at tileSize*2^z pixels, so the span fits
		// when span/circumference * tileSize*2^z <= avail on both axes.
		zx := math.Log2(availW * earthCircumference / (tileSize * spanX))
		zy := math.Log2(availH * earthCircumference / (tileSize * spanY))
		zoom = math.Min(zx, zy)
		zoom = math.Max(0, math.Min(zoom, MaxZoom))
	}

	return CameraPosition{Target: target, Zoom: zoom}
}
