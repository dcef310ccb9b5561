package geo

import "testing"

func TestLatLng_Valid(t *testing.T) {
	tests := []struct {
		name string
		p    LatLng
		want bool
	}{
		{"origin", LatLng{0, 0}, true},
		{"poles", LatLng{90, 0}, true},
		{"antimeridian", LatLng{0, -180}, true},
		{"latitude too high", LatLng{90.1, 0}, false},
		{"latitude too low", LatLng{-90.1, 0}, false},
		{"longitude too high", LatLng{0, 180.5}, false},
	}
	for _, tt := range tests {
		if got := tt.p.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLatLngBounds_Contains(t *testing.T) {
	b := LatLngBounds{
		SouthWest: LatLng{Latitude: 10, Longitude: 20},
		NorthEast: LatLng{Latitude: 30, Longitude: 40},
	}

	if !b.Contains(LatLng{Latitude: 20, Longitude: 30}) {
		t.Error("expected interior point to be contained")
	}
	if !b.Contains(LatLng{Latitude: 10, Longitude: 20}) {
		t.Error("expected corner to be contained")
	}
	if b.Contains(LatLng{Latitude: 9, Longitude: 30}) {
		t.Error("expected point south of bounds to be excluded")
	}
	if b.Contains(LatLng{Latitude: 20, Longitude: 41}) {
		t.Error("expected point east of bounds to be excluded")
	}
}

func TestLatLngBounds_Extend(t *testing.T) {
	b := LatLngBounds{
		SouthWest: LatLng{Latitude: 10, Longitude: 20},
		NorthEast: LatLng{Latitude: 30, Longitude: 40},
	}

	grown := b.Extend(LatLng{Latitude: 35, Longitude: 15})
	if grown.NorthEast.Latitude != 35 {
		t.Errorf("north edge: got %v, want 35", grown.NorthEast.Latitude)
	}
	if grown.SouthWest.Longitude != 15 {
		t.Errorf("west edge: got %v, want 15", grown.SouthWest.Longitude)
	}

	same := b.Extend(LatLng{Latitude: 20, Longitude: 30})
	if same != b {
		t.Errorf("interior point changed bounds: got %+v", same)
	}
}

func TestBoundsOf(t *testing.T) {
	if got := BoundsOf(nil); got != (LatLngBounds{}) {
		t.Errorf("empty input: got %+v", got)
	}

	got := BoundsOf([]LatLng{
		{Latitude: 5, Longitude: 8},
		{Latitude: -3, Longitude: 12},
		{Latitude: 2, Longitude: -7},
	})
	want := LatLngBounds{
		SouthWest: LatLng{Latitude: -3, Longitude: -7},
		NorthEast: LatLng{Latitude: 5, Longitude: 12},
	}
	if got != want {
		t.Errorf("BoundsOf: got %+v, want %+v", got, want)
	}
}
