package maps

import "github.com/go-drift/drift/pkg/platform"

// attachment is the strategy for where tracked markers live on the native
// side. Exactly one strategy is active per controller at any time: markers
// attach either directly to the map or to the SDK cluster manager.
type attachment interface {
	// addMarkers attaches a batch of markers to this surface.
	addMarkers(viewID int64, markers []map[string]any) error

	// removeMarkers detaches a batch of markers from this surface.
	removeMarkers(viewID int64, ids []int64) error
}

// directAttachment attaches markers straight to the map view.
type directAttachment struct{}

func (directAttachment) addMarkers(viewID int64, markers []map[string]any) error {
	_, err := platform.GetPlatformViewRegistry().InvokeViewMethod(viewID, "addMarkers", map[string]any{
		"markers": markers,
	})
	return err
}

func (directAttachment) removeMarkers(viewID int64, ids []int64) error {
	_, err := platform.GetPlatformViewRegistry().InvokeViewMethod(viewID, "removeMarkers", map[string]any{
		"markerIds": ids,
	})
	return err
}

// clusterAttachment routes markers through the SDK cluster manager. Batches
// map to a single cluster mutation followed by exactly one re-cluster, so
// the SDK never recomputes clusters per marker.
type clusterAttachment struct{}

func (a clusterAttachment) addMarkers(viewID int64, markers []map[string]any) error {
	reg := platform.GetPlatformViewRegistry()
	if _, err := reg.InvokeViewMethod(viewID, "cluster#addMarkers", map[string]any{
		"markers": markers,
	}); err != nil {
		return err
	}
	return a.recluster(viewID)
}

func (a clusterAttachment) removeMarkers(viewID int64, ids []int64) error {
	reg := platform.GetPlatformViewRegistry()
	if _, err := reg.InvokeViewMethod(viewID, "cluster#removeMarkers", map[string]any{
		"markerIds": ids,
	}); err != nil {
		return err
	}
	return a.recluster(viewID)
}

func (clusterAttachment) recluster(viewID int64) error {
	_, err := platform.GetPlatformViewRegistry().InvokeViewMethod(viewID, "cluster#cluster", nil)
	return err
}
