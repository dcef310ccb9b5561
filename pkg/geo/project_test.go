package geo

import (
	"math"
	"testing"
)

func TestToMercator_Origin(t *testing.T) {
	x, y := ToMercator(LatLng{})
	if math.Abs(x) > 1e-6 || math.Abs(y) > 1e-6 {
		t.Errorf("origin projects to (%v, %v), want (0, 0)", x, y)
	}
}

func TestMercator_RoundTrip(t *testing.T) {
	p := LatLng{Latitude: 48.2082, Longitude: 16.3738}
	got := FromMercator(ToMercator(p))
	if math.Abs(got.Latitude-p.Latitude) > 1e-6 || math.Abs(got.Longitude-p.Longitude) > 1e-6 {
		t.Errorf("round trip: got %+v, want %+v", got, p)
	}
}

func TestCameraForBounds_World(t *testing.T) {
	// The full Mercator square at 85.0511 degrees spans exactly one tile
	// at zoom 0.
	world := LatLngBounds{
		SouthWest: LatLng{Latitude: -85.0511, Longitude: -180},
		NorthEast: LatLng{Latitude: 85.0511, Longitude: 180},
	}

	cam := CameraForBounds(world, 256, 256, 0)
	if math.Abs(cam.Zoom) > 0.01 {
		t.Errorf("world zoom: got %v, want 0", cam.Zoom)
	}
	if math.Abs(cam.Target.Latitude) > 0.01 || math.Abs(cam.Target.Longitude) > 0.01 {
		t.Errorf("world target: got %+v, want origin", cam.Target)
	}

	// Doubling the viewport gains exactly one zoom level.
	larger := CameraForBounds(world, 512, 512, 0)
	if math.Abs(larger.Zoom-(cam.Zoom+1)) > 0.01 {
		t.Errorf("doubled viewport zoom: got %v, want %v", larger.Zoom, cam.Zoom+1)
	}
}

func TestCameraForBounds_PaddingShrinksZoom(t *testing.T) {
	b := LatLngBounds{
		SouthWest: LatLng{Latitude: 48.1, Longitude: 16.2},
		NorthEast: LatLng{Latitude: 48.3, Longitude: 16.5},
	}

	plain := CameraForBounds(b, 400, 300, 0)
	padded := CameraForBounds(b, 400, 300, 40)
	if padded.Zoom >= plain.Zoom {
		t.Errorf("padding should reduce zoom: %v >= %v", padded.Zoom, plain.Zoom)
	}
}

func TestCameraForBounds_PointClampsToMaxZoom(t *testing.T) {
	p := LatLng{Latitude: 48.2, Longitude: 16.4}
	cam := CameraForBounds(LatLngBounds{SouthWest: p, NorthEast: p}, 400, 300, 0)
	if cam.Zoom != MaxZoom {
		t.Errorf("point bounds zoom: got %v, want %v", cam.Zoom, float64(MaxZoom))
	}
	if math.Abs(cam.Target.Latitude-p.Latitude) > 1e-6 {
		t.Errorf("point bounds target: got %+v, want %+v", cam.Target, p)
	}
}
