package maps

import "github.com/go-drift/drift/pkg/rendering"

// OverflowRegions computes the rectangles of the map view's frame that fall
// outside the visible container bounds, in the view's own coordinate space.
// The regions are subtracted from the view's render surface with an even-odd
// clip so that content scrolled under the container's chrome is not drawn.
//
// Only vertical overflow is considered. Inputs are not normalized; callers
// must pass well-formed rectangles with Top <= Bottom.
func OverflowRegions(frame, visible rendering.Rect) []rendering.Rect {
	var regions []rendering.Rect
	if visible.Top < frame.Top {
		regions = append(regions, rendering.RectFromLTWH(0, 0, visible.Width(), frame.Top-visible.Top))
	}
	if visible.Bottom > frame.Bottom {
		regions = append(regions, rendering.RectFromLTWH(0, visible.Height(), visible.Width(), visible.Bottom-frame.Bottom))
	}
	return regions
}

// maskPayload builds the channel representation of an even-odd clip mask:
// the full view bounds plus one sub-path per overflow region. The native
// side fills the combined path with the even-odd rule, excluding the
// overflow regions from rendering.
func maskPayload(bounds rendering.Rect, regions []rendering.Rect) map[string]any {
	rects := make([]map[string]any, len(regions))
	for i, r := range regions {
		rects[i] = rectPayload(r)
	}
	return map[string]any{
		"bounds":   rectPayload(rendering.RectFromLTWH(0, 0, bounds.Width(), bounds.Height())),
		"regions":  rects,
		"fillRule": "evenOdd",
	}
}

func rectPayload(r rendering.Rect) map[string]any {
	return map[string]any{
		"x":      r.Left,
		"y":      r.Top,
		"width":  r.Width(),
		"height": r.Height(),
	}
}
