package maps

import "errors"

// Sentinel errors for map operations.
var (
	// ErrViewUnavailable is returned when the native map view has not been
	// materialized yet or has been disposed.
	ErrViewUnavailable = errors.New("maps: map view not available")

	// ErrMarkerNotFound is returned when a marker handle is not tracked by
	// the controller.
	ErrMarkerNotFound = errors.New("maps: marker not found")

	// ErrOverlayNotFound is returned when an overlay handle is not tracked
	// by the controller.
	ErrOverlayNotFound = errors.New("maps: overlay not found")

	// ErrInvalidOverlay is returned when an overlay spec fails validation
	// before being sent to the native side.
	ErrInvalidOverlay = errors.New("maps: invalid overlay")
)
