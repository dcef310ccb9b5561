package maps

import (
	"fmt"
	"sync"

	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/rendering"

	"github.com/go-drift/maps/pkg/geo"
)

// MapController owns one embedded native map view and forwards mutations
// to the vendor SDK over the platform channel bridge.
//
// The view is materialized asynchronously on the UI thread; the constructor
// never blocks. Until materialization completes (and after Dispose), every
// mutation fails with [ErrViewUnavailable].
//
// Mutations block until the native side has applied them, with two
// deliberate exceptions: single-marker removal and Dispose are
// fire-and-forget, so a removed handle may briefly remain visible to a
// racing read. The asymmetry matches the plugin's JS-facing contract.
//
// Create with [NewMapController] and manage lifecycle with
// [core.UseController]:
//
//	s.map = core.UseController(&s.StateBase, func() *maps.MapController {
//		return maps.NewMapController(maps.MapOptions{Width: 400, Height: 300})
//	})
//	s.map.OnMarkerTap = func(id maps.MarkerID) { ... }
//
// Pass the controller to a [widgets.NativeMap] widget to embed the native
// surface in the widget tree.
//
// All methods are safe for concurrent use.
type MapController struct {
	mu     sync.RWMutex
	opts   MapOptions
	view   *nativeMapView // guarded by mu; nil until materialized
	viewID int64          // guarded by mu

	markers     *markerTable         // guarded by mu
	attach      attachment           // guarded by mu
	overlays    map[OverlayID]string // guarded by mu; handle -> overlay kind
	nextOverlay int64                // guarded by mu

	// OnCameraMove is called while the camera moves.
	// Called on the UI thread.
	OnCameraMove func(geo.CameraPosition)

	// OnCameraIdle is called when camera movement settles.
	// Called on the UI thread.
	OnCameraIdle func()

	// OnMapTap is called when the map is tapped away from any marker.
	// Called on the UI thread.
	OnMapTap func(geo.LatLng)

	// OnMarkerTap is called when a marker is tapped.
	// Called on the UI thread.
	OnMarkerTap func(MarkerID)

	// OnInfoWindowTap is called when a marker's info window is tapped.
	// Called on the UI thread.
	OnInfoWindowTap func(MarkerID)

	// OnMarkerDragEnd is called when a marker drag gesture ends.
	// Called on the UI thread.
	OnMarkerDragEnd func(MarkerID, geo.LatLng)
}

// NewMapController creates a map controller and schedules materialization
// of the native view on the UI thread. The returned controller is usable
// immediately; mutations fail with [ErrViewUnavailable] until the view is
// up.
func NewMapController(opts MapOptions) *MapController {
	if opts.MapType == "" {
		opts.MapType = MapTypeNormal
	}
	c := &MapController{
		opts:     opts,
		markers:  newMarkerTable(),
		attach:   directAttachment{},
		overlays: make(map[OverlayID]string),
	}

	if !platform.Dispatch(c.materialize) {
		errors.Report(&errors.DriftError{
			Op:   "maps.NewMapController",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("no UI dispatcher registered: %w", ErrViewUnavailable),
		})
	}
	return c
}

// materialize runs on the UI thread.
func (c *MapController) materialize() {
	params := map[string]any{
		"x":       c.opts.X,
		"y":       c.opts.Y,
		"width":   c.opts.Width,
		"height":  c.opts.Height,
		"camera":  cameraPayload(c.opts.Camera),
		"mapType": string(c.opts.MapType),
	}

	view, err := platform.GetPlatformViewRegistry().Create(mapViewType, params)
	if err != nil {
		errors.Report(&errors.DriftError{
			Op:   "maps.materialize",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("failed to create map view: %w", err),
		})
		return
	}
	mapView, ok := view.(*nativeMapView)
	if !ok {
		errors.Report(&errors.DriftError{
			Op:   "maps.materialize",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("unexpected view type: %T", view),
		})
		return
	}

	// Wire view callbacks to controller callback fields.
	mapView.OnCameraMove = func(cam geo.CameraPosition) {
		if c.OnCameraMove != nil {
			c.OnCameraMove(cam)
		}
	}
	mapView.OnCameraIdle = func() {
		if c.OnCameraIdle != nil {
			c.OnCameraIdle()
		}
	}
	mapView.OnMapTap = func(pos geo.LatLng) {
		if c.OnMapTap != nil {
			c.OnMapTap(pos)
		}
	}
	mapView.OnMarkerTap = func(id MarkerID) {
		if c.OnMarkerTap != nil {
			c.OnMarkerTap(id)
		}
	}
	mapView.OnInfoWindowTap = func(id MarkerID) {
		if c.OnInfoWindowTap != nil {
			c.OnInfoWindowTap(id)
		}
	}
	mapView.OnMarkerDragEnd = func(id MarkerID, pos geo.LatLng) {
		if c.OnMarkerDragEnd != nil {
			c.OnMarkerDragEnd(id, pos)
		}
	}

	mapView.SetOffset(rendering.Offset{X: c.opts.X, Y: c.opts.Y})
	mapView.SetSize(rendering.Size{Width: c.opts.Width, Height: c.opts.Height})

	c.mu.Lock()
	c.view = mapView
	c.viewID = mapView.ViewID()
	c.mu.Unlock()
}

// ViewID returns the platform view ID, or 0 if the view is not up.
func (c *MapController) ViewID() int64 {
	c.mu.RLock()
	id := c.viewID
	c.mu.RUnlock()
	return id
}

// Camera returns the live camera position.
func (c *MapController) Camera() (geo.CameraPosition, error) {
	c.mu.RLock()
	view := c.view
	c.mu.RUnlock()
	if view == nil {
		return geo.CameraPosition{}, ErrViewUnavailable
	}
	return view.Camera(), nil
}

// IsClustering reports whether markers currently route through the SDK
// cluster manager.
func (c *MapController) IsClustering() bool {
	c.mu.RLock()
	_, clustered := c.attach.(clusterAttachment)
	c.mu.RUnlock()
	return clustered
}

// HasMarker reports whether the handle is currently tracked.
func (c *MapController) HasMarker(id MarkerID) bool {
	c.mu.RLock()
	ok := c.markers.has(id)
	c.mu.RUnlock()
	return ok
}

// MarkerIDs returns the currently tracked marker handles in no particular
// order.
func (c *MapController) MarkerIDs() []MarkerID {
	c.mu.RLock()
	ids := c.markers.ids()
	c.mu.RUnlock()
	return ids
}

// AddMarker places one marker and returns its handle.
func (c *MapController) AddMarker(opts MarkerOptions) (MarkerID, error) {
	ids, err := c.AddMarkers([]MarkerOptions{opts})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// AddMarkers places a batch of markers and returns their handles in input
// order. When clustering is active the whole batch goes to the cluster
// manager in one call with a single re-cluster. An empty batch performs no
// native call.
func (c *MapController) AddMarkers(specs []MarkerOptions) ([]MarkerID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == nil {
		return nil, ErrViewUnavailable
	}
	if len(specs) == 0 {
		return []MarkerID{}, nil
	}

	ids := make([]MarkerID, len(specs))
	payloads := make([]map[string]any, len(specs))
	for i, opts := range specs {
		ids[i] = c.markers.issue()
		p, err := opts.payload(ids[i])
		if err != nil {
			return nil, err
		}
		payloads[i] = p
	}

	if err := c.attach.addMarkers(c.viewID, payloads); err != nil {
		return nil, err
	}
	for i, opts := range specs {
		c.markers.put(ids[i], opts)
	}
	return ids, nil
}

// RemoveMarker detaches a marker. The handle check is synchronous; the
// native detach and the handle-table delete run fire-and-forget on the UI
// thread. Removing an unknown or already-removed handle fails with
// [ErrMarkerNotFound].
func (c *MapController) RemoveMarker(id MarkerID) error {
	c.mu.RLock()
	view := c.view
	tracked := c.markers.has(id)
	c.mu.RUnlock()
	if view == nil {
		return ErrViewUnavailable
	}
	if !tracked {
		return ErrMarkerNotFound
	}

	scheduled := platform.Dispatch(func() {
		c.mu.Lock()
		if !c.markers.remove(id) {
			c.mu.Unlock()
			return
		}
		attach := c.attach
		viewID := c.viewID
		c.mu.Unlock()

		if err := attach.removeMarkers(viewID, []int64{int64(id)}); err != nil {
			errors.Report(&errors.DriftError{
				Op:   "maps.RemoveMarker",
				Kind: errors.KindPlatform,
				Err:  err,
			})
		}
	})
	if !scheduled {
		return ErrViewUnavailable
	}
	return nil
}

// RemoveMarkers detaches every present handle in the batch, silently
// skipping absent ones. When clustering is active the whole removal is one
// batched cluster call.
func (c *MapController) RemoveMarkers(ids []MarkerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == nil {
		return ErrViewUnavailable
	}

	removed := make([]int64, 0, len(ids))
	for _, id := range ids {
		if c.markers.remove(id) {
			removed = append(removed, int64(id))
		}
	}
	if len(removed) == 0 {
		return nil
	}
	return c.attach.removeMarkers(c.viewID, removed)
}

// EnableClustering creates the SDK cluster manager and moves every tracked
// marker into it in one batch. No-op if clustering is already active.
func (c *MapController) EnableClustering() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == nil {
		return ErrViewUnavailable
	}
	if _, clustered := c.attach.(clusterAttachment); clustered {
		return nil
	}

	var payloads []map[string]any
	if c.markers.len() > 0 {
		var err error
		payloads, err = c.markers.payloads()
		if err != nil {
			return err
		}
	}

	reg := platform.GetPlatformViewRegistry()
	if _, err := reg.InvokeViewMethod(c.viewID, "cluster#create", nil); err != nil {
		return err
	}

	// Attach to the new surface before detaching from the old one; a
	// failure mid-move must never leave markers attached to neither. On
	// failure the manager is torn down so direct attachment stays the
	// active surface.
	if len(payloads) > 0 {
		if err := (clusterAttachment{}).addMarkers(c.viewID, payloads); err != nil {
			reg.InvokeViewMethod(c.viewID, "cluster#destroy", nil)
			return err
		}
		if err := (directAttachment{}).removeMarkers(c.viewID, markerIDValues(c.markers.ids())); err != nil {
			reg.InvokeViewMethod(c.viewID, "cluster#destroy", nil)
			return err
		}
	}

	c.attach = clusterAttachment{}
	return nil
}

// DisableClustering destroys the SDK cluster manager and re-attaches every
// tracked marker directly to the map. No-op if clustering is not active.
func (c *MapController) DisableClustering() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == nil {
		return ErrViewUnavailable
	}
	if _, clustered := c.attach.(clusterAttachment); !clustered {
		return nil
	}

	var payloads []map[string]any
	if c.markers.len() > 0 {
		var err error
		payloads, err = c.markers.payloads()
		if err != nil {
			return err
		}
	}

	// Re-attach directly before destroying the manager; the markers must
	// always be riding one of the two surfaces. A failed destroy rolls the
	// direct copies back.
	reg := platform.GetPlatformViewRegistry()
	if len(payloads) > 0 {
		if err := (directAttachment{}).addMarkers(c.viewID, payloads); err != nil {
			return err
		}
	}
	if _, err := reg.InvokeViewMethod(c.viewID, "cluster#destroy", nil); err != nil {
		if len(payloads) > 0 {
			(directAttachment{}).removeMarkers(c.viewID, markerIDValues(c.markers.ids()))
		}
		return err
	}

	c.attach = directAttachment{}
	return nil
}

// SetCamera applies a camera update. Absent fields keep the live camera's
// current value. The transition animates when Animate is set.
func (c *MapController) SetCamera(update CameraUpdate) error {
	c.mu.RLock()
	view := c.view
	viewID := c.viewID
	c.mu.RUnlock()
	if view == nil {
		return ErrViewUnavailable
	}

	resolved := update.resolve(view.Camera())
	method := "setCamera"
	if update.Animate {
		method = "animateCamera"
	}
	if _, err := platform.GetPlatformViewRegistry().InvokeViewMethod(viewID, method, cameraPayload(resolved)); err != nil {
		return err
	}
	view.setCamera(resolved)
	return nil
}

// SetMapType selects the base layer.
func (c *MapController) SetMapType(t MapType) error {
	return c.invoke("setMapType", map[string]any{"type": string(t)})
}

// SetIndoorEnabled toggles indoor floor plans.
func (c *MapController) SetIndoorEnabled(enabled bool) error {
	return c.invoke("setIndoorEnabled", map[string]any{"enabled": enabled})
}

// SetTrafficEnabled toggles the traffic layer.
func (c *MapController) SetTrafficEnabled(enabled bool) error {
	return c.invoke("setTrafficEnabled", map[string]any{"enabled": enabled})
}

// SetAccessibilityElementsEnabled toggles native accessibility elements on
// the map surface.
func (c *MapController) SetAccessibilityElementsEnabled(enabled bool) error {
	return c.invoke("setAccessibilityElementsEnabled", map[string]any{"enabled": enabled})
}

// SetMyLocationEnabled toggles the SDK's own-location indicator.
func (c *MapController) SetMyLocationEnabled(enabled bool) error {
	return c.invoke("setMyLocationEnabled", map[string]any{"enabled": enabled})
}

// SetPadding insets the map's logo, compass, and camera viewport.
func (c *MapController) SetPadding(insets platform.EdgeInsets) error {
	return c.invoke("setPadding", map[string]any{
		"top":    insets.Top,
		"bottom": insets.Bottom,
		"left":   insets.Left,
		"right":  insets.Right,
	})
}

// SetMapStyle applies vendor style rules, or resets to the default style
// when rules is empty.
func (c *MapController) SetMapStyle(rules []StyleRule) error {
	style, err := styleJSON(rules)
	if err != nil {
		return err
	}
	return c.invoke("setMapStyle", map[string]any{"style": style})
}

// MoveToBounds fits the camera to the bounds with the given pixel padding,
// using the view's configured dimensions.
func (c *MapController) MoveToBounds(b geo.LatLngBounds, padding float64, animate bool) error {
	cam := geo.CameraForBounds(b, c.opts.Width, c.opts.Height, padding)
	return c.SetCamera(CameraUpdate{
		Target:  &cam.Target,
		Zoom:    &cam.Zoom,
		Animate: animate,
	})
}

// Resize re-applies the view geometry from the visible bounds and rebuilds
// the overflow clip mask. Any previous mask is cleared first; a new one is
// installed only when the frame overflows the visible bounds.
func (c *MapController) Resize(frame, visible rendering.Rect) error {
	c.mu.RLock()
	view := c.view
	viewID := c.viewID
	c.mu.RUnlock()
	if view == nil {
		return ErrViewUnavailable
	}

	view.SetOffset(rendering.Offset{X: visible.Left, Y: visible.Top})
	view.SetSize(rendering.Size{Width: frame.Width(), Height: frame.Height()})

	reg := platform.GetPlatformViewRegistry()
	if _, err := reg.InvokeViewMethod(viewID, "clearClipMask", nil); err != nil {
		return err
	}
	regions := OverflowRegions(frame, visible)
	if len(regions) == 0 {
		return nil
	}
	_, err := reg.InvokeViewMethod(viewID, "setClipMask", maskPayload(frame, regions))
	return err
}

// AddPolyline draws a path overlay and returns its handle.
func (c *MapController) AddPolyline(opts PolylineOptions) (OverlayID, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	return c.addOverlay("addPolyline", "polyline", opts.payload)
}

// AddPolygon draws a filled region overlay and returns its handle.
func (c *MapController) AddPolygon(opts PolygonOptions) (OverlayID, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	return c.addOverlay("addPolygon", "polygon", opts.payload)
}

// AddCircle draws a circle overlay and returns its handle.
func (c *MapController) AddCircle(opts CircleOptions) (OverlayID, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	return c.addOverlay("addCircle", "circle", opts.payload)
}

// RemoveOverlay detaches a shape overlay. Removing an unknown handle fails
// with [ErrOverlayNotFound].
func (c *MapController) RemoveOverlay(id OverlayID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == nil {
		return ErrViewUnavailable
	}
	if _, ok := c.overlays[id]; !ok {
		return ErrOverlayNotFound
	}
	if _, err := platform.GetPlatformViewRegistry().InvokeViewMethod(c.viewID, "removeOverlay", map[string]any{
		"overlayId": int64(id),
	}); err != nil {
		return err
	}
	delete(c.overlays, id)
	return nil
}

// Dispose releases the native map view fire-and-forget on the UI thread.
// The handle tables are discarded with the view; subsequent mutations fail
// with [ErrViewUnavailable]. Dispose is idempotent.
func (c *MapController) Dispose() {
	platform.Dispatch(func() {
		c.mu.Lock()
		viewID := c.viewID
		c.view = nil
		c.viewID = 0
		c.markers = newMarkerTable()
		c.overlays = make(map[OverlayID]string)
		c.attach = directAttachment{}
		c.mu.Unlock()

		if viewID != 0 {
			platform.GetPlatformViewRegistry().Dispose(viewID)
		}
	})
}

// invoke runs a synchronous single-field mutation against the live view.
func (c *MapController) invoke(method string, args map[string]any) error {
	c.mu.RLock()
	view := c.view
	viewID := c.viewID
	c.mu.RUnlock()
	if view == nil {
		return ErrViewUnavailable
	}
	_, err := platform.GetPlatformViewRegistry().InvokeViewMethod(viewID, method, args)
	return err
}

func (c *MapController) addOverlay(method, kind string, payload func(OverlayID) map[string]any) (OverlayID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == nil {
		return 0, ErrViewUnavailable
	}

	c.nextOverlay++
	id := OverlayID(c.nextOverlay)
	if _, err := platform.GetPlatformViewRegistry().InvokeViewMethod(c.viewID, method, payload(id)); err != nil {
		return 0, err
	}
	c.overlays[id] = kind
	return id, nil
}

func markerIDValues(ids []MarkerID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
