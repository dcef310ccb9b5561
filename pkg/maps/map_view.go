package maps

import (
	"sync"

	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/rendering"

	"github.com/go-drift/maps/pkg/geo"
)

// mapViewType is the platform view type identifier registered with the
// framework's platform view registry.
const mapViewType = "native_map_view"

// eventsChannelName carries map events from the native side, routed to
// views by the "viewId" field of each event.
const eventsChannelName = "drift/maps/events"

var mapEvents = platform.NewEventChannel(eventsChannelName)

type nativeMapFactory struct{}

func (nativeMapFactory) ViewType() string {
	return mapViewType
}

func (nativeMapFactory) Create(viewID int64, params map[string]any) (platform.PlatformView, error) {
	return newNativeMapView(viewID, params), nil
}

func init() {
	platform.GetPlatformViewRegistry().RegisterFactory(nativeMapFactory{})
}

// nativeMapView is the platform view wrapping the vendor map SDK surface.
// It caches the camera reported by native camera-move events so that
// partial camera updates can resolve against live state without a
// round-trip.
type nativeMapView struct {
	viewID  int64
	offset  rendering.Offset
	size    rendering.Size
	visible bool

	mu     sync.RWMutex
	camera geo.CameraPosition
	sub    *platform.Subscription

	// OnCameraMove is called while the camera moves.
	// Called on the UI thread via [platform.Dispatch].
	OnCameraMove func(geo.CameraPosition)

	// OnCameraIdle is called when camera movement settles.
	// Called on the UI thread via [platform.Dispatch].
	OnCameraIdle func()

	// OnMapTap is called when the map is tapped away from any marker.
	// Called on the UI thread via [platform.Dispatch].
	OnMapTap func(geo.LatLng)

	// OnMarkerTap is called when a marker is tapped.
	// Called on the UI thread via [platform.Dispatch].
	OnMarkerTap func(MarkerID)

	// OnInfoWindowTap is called when a marker's info window is tapped.
	// Called on the UI thread via [platform.Dispatch].
	OnInfoWindowTap func(MarkerID)

	// OnMarkerDragEnd is called when a marker drag gesture ends.
	// Called on the UI thread via [platform.Dispatch].
	OnMarkerDragEnd func(MarkerID, geo.LatLng)
}

// newNativeMapView constructs the view, seeds the camera cache from the
// creation params, and subscribes to the shared map event channel.
func newNativeMapView(viewID int64, params map[string]any) *nativeMapView {
	v := &nativeMapView{viewID: viewID}
	if cam, ok := params["camera"].(map[string]any); ok {
		v.camera = parseCamera(cam)
	}
	v.sub = mapEvents.Listen(platform.EventHandler{
		OnEvent: v.handleEvent,
		OnError: func(err error) {
			errors.Report(&errors.DriftError{
				Op:      "maps.events",
				Kind:    errors.KindPlatform,
				Channel: eventsChannelName,
				Err:     err,
			})
		},
	})
	return v
}

func (v *nativeMapView) ViewID() int64 {
	return v.viewID
}

func (v *nativeMapView) ViewType() string {
	return mapViewType
}

// Create implements platform.PlatformView. The vendor SDK builds its view
// natively from the creation params; no Go-side initialization remains.
func (v *nativeMapView) Create(params map[string]any) error {
	return nil
}

func (v *nativeMapView) Dispose() {
	v.mu.Lock()
	sub := v.sub
	v.sub = nil
	v.mu.Unlock()
	if sub != nil {
		sub.Cancel()
	}
}

func (v *nativeMapView) SetSize(size rendering.Size) {
	v.size = size
	platform.GetPlatformViewRegistry().UpdateViewGeometry(v.viewID, v.offset, v.size)
}

func (v *nativeMapView) SetOffset(offset rendering.Offset) {
	v.offset = offset
	platform.GetPlatformViewRegistry().UpdateViewGeometry(v.viewID, v.offset, v.size)
}

func (v *nativeMapView) SetVisible(visible bool) {
	v.visible = visible
	platform.GetPlatformViewRegistry().SetViewVisible(v.viewID, visible)
}

// Camera returns the camera last reported by native, or last assigned.
func (v *nativeMapView) Camera() geo.CameraPosition {
	v.mu.RLock()
	cam := v.camera
	v.mu.RUnlock()
	return cam
}

// setCamera updates the cached camera after a successful assignment.
func (v *nativeMapView) setCamera(cam geo.CameraPosition) {
	v.mu.Lock()
	v.camera = cam
	v.mu.Unlock()
}

// handleEvent routes one event from the shared map event channel. Events
// for other view IDs are ignored.
func (v *nativeMapView) handleEvent(data any) {
	m, ok := data.(map[string]any)
	if !ok {
		v.reportParse("map event", data)
		return
	}
	if id, ok := toInt64(m["viewId"]); !ok || id != v.viewID {
		return
	}

	switch parseString(m["event"]) {
	case "cameraMove":
		cam := parseCamera(m)
		v.setCamera(cam)
		v.mu.RLock()
		cb := v.OnCameraMove
		v.mu.RUnlock()
		if cb != nil {
			platform.Dispatch(func() { cb(cam) })
		}

	case "cameraIdle":
		v.mu.RLock()
		cb := v.OnCameraIdle
		v.mu.RUnlock()
		if cb != nil {
			platform.Dispatch(func() { cb() })
		}

	case "mapTap":
		pos, ok := parseLatLng(m)
		if !ok {
			v.reportParse("LatLng", data)
			return
		}
		v.mu.RLock()
		cb := v.OnMapTap
		v.mu.RUnlock()
		if cb != nil {
			platform.Dispatch(func() { cb(pos) })
		}

	case "markerTap":
		id, ok := toInt64(m["markerId"])
		if !ok {
			v.reportParse("MarkerID", data)
			return
		}
		v.mu.RLock()
		cb := v.OnMarkerTap
		v.mu.RUnlock()
		if cb != nil {
			platform.Dispatch(func() { cb(MarkerID(id)) })
		}

	case "infoWindowTap":
		id, ok := toInt64(m["markerId"])
		if !ok {
			v.reportParse("MarkerID", data)
			return
		}
		v.mu.RLock()
		cb := v.OnInfoWindowTap
		v.mu.RUnlock()
		if cb != nil {
			platform.Dispatch(func() { cb(MarkerID(id)) })
		}

	case "markerDragEnd":
		id, okID := toInt64(m["markerId"])
		pos, okPos := parseLatLng(m)
		if !okID || !okPos {
			v.reportParse("marker drag", data)
			return
		}
		v.mu.RLock()
		cb := v.OnMarkerDragEnd
		v.mu.RUnlock()
		if cb != nil {
			platform.Dispatch(func() { cb(MarkerID(id), pos) })
		}
	}
}

func (v *nativeMapView) reportParse(dataType string, got any) {
	errors.Report(&errors.DriftError{
		Op:      "maps.parseEvent",
		Kind:    errors.KindParsing,
		Channel: eventsChannelName,
		Err: &errors.ParseError{
			Channel:  eventsChannelName,
			DataType: dataType,
			Got:      got,
		},
	})
}

// parseCamera extracts a camera position from event or config data.
// Absent fields decode as zero.
func parseCamera(m map[string]any) geo.CameraPosition {
	cam := geo.CameraPosition{}
	if pos, ok := parseLatLng(m); ok {
		cam.Target = pos
	}
	if z, ok := toFloat64(m["zoom"]); ok {
		cam.Zoom = z
	}
	if b, ok := toFloat64(m["bearing"]); ok {
		cam.Bearing = b
	}
	if t, ok := toFloat64(m["tilt"]); ok {
		cam.Tilt = t
	}
	return cam
}
