package maps

import "github.com/go-drift/maps/pkg/geo"

// toFloat64 converts various numeric types to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

// toInt64 converts various numeric types to int64.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	default:
		return 0, false
	}
}

// parseString extracts a string from an any value.
func parseString(value any) string {
	s, _ := value.(string)
	return s
}

// parseBool extracts a bool from an any value.
func parseBool(value any) bool {
	b, _ := value.(bool)
	return b
}

// parseLatLng extracts a coordinate from event or config data carrying
// "latitude" and "longitude" keys.
func parseLatLng(m map[string]any) (geo.LatLng, bool) {
	lat, okLat := toFloat64(m["latitude"])
	lng, okLng := toFloat64(m["longitude"])
	if !okLat || !okLng {
		return geo.LatLng{}, false
	}
	return geo.LatLng{Latitude: lat, Longitude: lng}, true
}
