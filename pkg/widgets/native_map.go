// Package widgets provides the Drift widget embedding the native map view.
package widgets

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"

	"github.com/go-drift/maps/pkg/maps"
)

// NativeMap embeds a native vendor map view.
//
// Create a [maps.MapController] with [core.UseController] and pass it to
// this widget:
//
//	s.map = core.UseController(s, func() *maps.MapController {
//		return maps.NewMapController(maps.MapOptions{Width: 400, Height: 300})
//	})
//	s.map.OnMarkerTap = func(id maps.MarkerID) { ... }
//
//	// in Build:
//	widgets.NativeMap{Controller: s.map, Height: 300}
//
// Width and Height set explicit dimensions. If Width is 0, the view expands
// to fill available width; if Height is 0, it follows a 16:9 aspect of the
// laid-out width, the usual shape for an embedded map viewport.
type NativeMap struct {
	core.RenderObjectBase

	// Controller provides the native map surface and mutation API.
	Controller *maps.MapController

	// Width of the map view in logical pixels (0 = expand to fill).
	Width float64

	// Height of the map view in logical pixels (0 = 16:9 of the width).
	Height float64
}

// CreateRenderObject creates the render object for this widget.
func (n NativeMap) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderNativeMap{
		controller: n.Controller,
		width:      n.Width,
		height:     n.Height,
	}
	r.SetSelf(r)
	return r
}

// UpdateRenderObject updates the render object with new widget properties.
func (n NativeMap) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderNativeMap); ok {
		r.controller = n.Controller
		r.width = n.Width
		r.height = n.Height
		r.MarkNeedsLayout()
		r.MarkNeedsPaint()
	}
}

var _ layout.PlatformViewOwner = (*renderNativeMap)(nil)

type renderNativeMap struct {
	layout.RenderBoxBase
	controller *maps.MapController
	width      float64
	height     float64
}

const tileSize = 256

func (r *renderNativeMap) PerformLayout() {
	constraints := r.Constraints()
	width := r.width
	if width == 0 {
		width = constraints.MaxWidth
	}
	width = min(max(width, constraints.MinWidth), constraints.MaxWidth)

	height := r.height
	if height == 0 {
		height = width * 9 / 16
	}
	height = min(max(height, constraints.MinHeight), constraints.MaxHeight)

	r.SetSize(graphics.Size{Width: width, Height: height})
}

func (r *renderNativeMap) Paint(ctx *layout.PaintContext) {
	size := r.Size()

	// Draw an unloaded-tiles placeholder while the native surface attaches
	bgPaint := graphics.DefaultPaint()
	bgPaint.Color = graphics.Color(0xFFE5E3DF)
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), bgPaint)

	seamPaint := graphics.DefaultPaint()
	seamPaint.Color = graphics.Color(0xFFD6D4CE)
	for x := float64(tileSize); x < size.Width; x += tileSize {
		ctx.Canvas.DrawLine(graphics.Offset{X: x, Y: 0}, graphics.Offset{X: x, Y: size.Height}, seamPaint)
	}
	for y := float64(tileSize); y < size.Height; y += tileSize {
		ctx.Canvas.DrawLine(graphics.Offset{X: 0, Y: y}, graphics.Offset{X: size.Width, Y: y}, seamPaint)
	}

	if r.controller != nil && r.controller.ViewID() != 0 {
		ctx.EmbedPlatformView(r.controller.ViewID(), size)
	}
}

// PlatformViewID implements PlatformViewOwner.
func (r *renderNativeMap) PlatformViewID() int64 {
	if r.controller != nil && r.controller.ViewID() != 0 {
		return r.controller.ViewID()
	}
	return -1
}

func (r *renderNativeMap) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}
