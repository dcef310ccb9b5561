package maps

import "github.com/go-drift/maps/pkg/geo"

// MapType selects the vendor SDK base layer.
type MapType string

const (
	MapTypeNormal    MapType = "normal"
	MapTypeSatellite MapType = "satellite"
	MapTypeTerrain   MapType = "terrain"
	MapTypeHybrid    MapType = "hybrid"
	MapTypeNone      MapType = "none"
)

// MapOptions defines the initial frame and camera of a map view.
// It is applied once, when the view is materialized.
type MapOptions struct {
	// X, Y position the view inside the host in logical pixels.
	X, Y float64

	// Width, Height size the view in logical pixels.
	Width, Height float64

	// Camera is the initial camera. A zero value centers on (0, 0) at
	// zoom 0.
	Camera geo.CameraPosition

	// MapType selects the base layer. Empty means MapTypeNormal.
	MapType MapType
}

// MarkerOptions describes a marker to place on the map.
type MarkerOptions struct {
	// Position is the marker coordinate. Required.
	Position geo.LatLng

	// Title is the info window title shown on tap.
	Title string

	// Snippet is the secondary info window text.
	Snippet string

	// Flat renders the marker flat against the map instead of billboarded.
	Flat bool

	// Draggable allows the user to drag the marker.
	Draggable bool

	// Opacity is the marker opacity in [0, 1]. Nil means fully opaque.
	Opacity *float64

	// Icon replaces the vendor SDK's default pin. Nil keeps the default.
	Icon *Icon
}

// DecodeMarkerOptions builds MarkerOptions from an already-deserialized
// configuration map, as delivered by a plugin bridge. Absent fields take
// their documented defaults.
func DecodeMarkerOptions(m map[string]any) MarkerOptions {
	opts := MarkerOptions{
		Title:     parseString(m["title"]),
		Snippet:   parseString(m["snippet"]),
		Flat:      parseBool(m["isFlat"]),
		Draggable: parseBool(m["draggable"]),
	}
	if pos, ok := parseLatLng(m); ok {
		opts.Position = pos
	} else if coord, ok := m["coordinate"].(map[string]any); ok {
		opts.Position, _ = parseLatLng(coord)
	}
	if v, ok := toFloat64(m["opacity"]); ok {
		opts.Opacity = &v
	}
	return opts
}

// payload builds the channel representation of the marker with defaults
// resolved. id is the handle assigned by the controller.
func (o MarkerOptions) payload(id MarkerID) (map[string]any, error) {
	opacity := 1.0
	if o.Opacity != nil {
		opacity = *o.Opacity
	}
	p := map[string]any{
		"markerId":  int64(id),
		"latitude":  o.Position.Latitude,
		"longitude": o.Position.Longitude,
		"title":     o.Title,
		"snippet":   o.Snippet,
		"isFlat":    o.Flat,
		"draggable": o.Draggable,
		"opacity":   opacity,
	}
	if o.Icon != nil {
		data, err := o.Icon.encode()
		if err != nil {
			return nil, err
		}
		p["icon"] = data
	}
	return p, nil
}

// CameraUpdate carries optional camera overrides. Nil fields keep the
// live camera's current value.
type CameraUpdate struct {
	Target  *geo.LatLng
	Zoom    *float64
	Bearing *float64
	Tilt    *float64

	// Animate animates the transition instead of jumping.
	Animate bool
}

// resolve fills absent fields from the current camera.
func (u CameraUpdate) resolve(current geo.CameraPosition) geo.CameraPosition {
	next := current
	if u.Target != nil {
		next.Target = *u.Target
	}
	if u.Zoom != nil {
		next.Zoom = *u.Zoom
	}
	if u.Bearing != nil {
		next.Bearing = *u.Bearing
	}
	if u.Tilt != nil {
		next.Tilt = *u.Tilt
	}
	return next
}

// cameraPayload builds the channel representation of a camera position.
func cameraPayload(c geo.CameraPosition) map[string]any {
	return map[string]any{
		"latitude":  c.Target.Latitude,
		"longitude": c.Target.Longitude,
		"zoom":      c.Zoom,
		"bearing":   c.Bearing,
		"tilt":      c.Tilt,
	}
}
