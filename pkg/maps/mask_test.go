package maps

import (
	"testing"

	"github.com/go-drift/drift/pkg/rendering"
)

func TestOverflowRegions_FullyVisible(t *testing.T) {
	frame := rendering.RectFromLTWH(0, 100, 400, 300)
	visible := rendering.RectFromLTWH(0, 150, 400, 200)

	if regions := OverflowRegions(frame, visible); len(regions) != 0 {
		t.Errorf("expected no overflow regions, got %v", regions)
	}
}

func TestOverflowRegions_TopOverflow(t *testing.T) {
	frame := rendering.RectFromLTWH(0, 100, 400, 300)
	visible := rendering.RectFromLTWH(0, 90, 400, 300)

	regions := OverflowRegions(frame, visible)
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	r := regions[0]
	if r.Left != 0 || r.Top != 0 {
		t.Errorf("top region origin: got (%v, %v), want (0, 0)", r.Left, r.Top)
	}
	if r.Width() != 400 {
		t.Errorf("top region width: got %v, want 400", r.Width())
	}
	if r.Height() != 10 {
		t.Errorf("top region height: got %v, want 10", r.Height())
	}
}

func TestOverflowRegions_BottomOverflow(t *testing.T) {
	frame := rendering.RectFromLTWH(0, 100, 400, 300)
	visible := rendering.RectFromLTWH(0, 100, 400, 305)

	regions := OverflowRegions(frame, visible)
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	r := regions[0]
	if r.Top != visible.Height() {
		t.Errorf("bottom region y: got %v, want %v", r.Top, visible.Height())
	}
	if r.Width() != 400 {
		t.Errorf("bottom region width: got %v, want 400", r.Width())
	}
	if r.Height() != 5 {
		t.Errorf("bottom region height: got %v, want 5", r.Height())
	}
}

func TestOverflowRegions_BothEnds(t *testing.T) {
	frame := rendering.RectFromLTWH(0, 100, 400, 300)
	visible := rendering.RectFromLTWH(0, 80, 400, 350)

	regions := OverflowRegions(frame, visible)
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	if regions[0].Height() != 20 {
		t.Errorf("top region height: got %v, want 20", regions[0].Height())
	}
	if regions[1].Height() != 30 {
		t.Errorf("bottom region height: got %v, want 30", regions[1].Height())
	}
}

func TestMaskPayload(t *testing.T) {
	frame := rendering.RectFromLTWH(0, 100, 400, 300)
	regions := OverflowRegions(frame, rendering.RectFromLTWH(0, 90, 400, 300))

	payload := maskPayload(frame, regions)
	if payload["fillRule"] != "evenOdd" {
		t.Errorf("fillRule: got %v, want evenOdd", payload["fillRule"])
	}
	bounds, ok := payload["bounds"].(map[string]any)
	if !ok {
		t.Fatalf("bounds missing from payload")
	}
	// Bounds are in the view's local coordinate space.
	if bounds["x"] != 0.0 || bounds["y"] != 0.0 {
		t.Errorf("bounds origin: got (%v, %v), want (0, 0)", bounds["x"], bounds["y"])
	}
	if bounds["width"] != 400.0 || bounds["height"] != 300.0 {
		t.Errorf("bounds size: got (%v, %v), want (400, 300)", bounds["width"], bounds["height"])
	}
	rects, ok := payload["regions"].([]map[string]any)
	if !ok || len(rects) != 1 {
		t.Fatalf("regions: got %v, want 1 rect", payload["regions"])
	}
}
