// Package maps binds a native vendor map view into Drift applications.
// A MapController owns one embedded map platform view and forwards camera,
// marker, overlay, and layer mutations to the vendor SDK over the platform
// channel bridge. Rendering, tiles, and cluster computation stay on the
// native side; this package marshals configuration, tracks marker and
// overlay handles, and keeps every view mutation on the UI thread.
package maps
