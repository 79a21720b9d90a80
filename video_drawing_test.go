// video_drawing_test.go - Drawing engine test suite

package main

import (
	"testing"
)

func newTestDraw() (*DrawEngine, *FrameBuffer) {
	fb := NewFrameBuffer(nil)
	return NewDrawEngine(fb), fb
}

// TestDrawEngine_LineDiagonal tests a 45-degree line: one pixel per
// step, endpoints included.
func TestDrawEngine_LineDiagonal(t *testing.T) {
	d, fb := newTestDraw()
	d.DrawLine(10, 10, 60, 60, true)

	for i := 0; i <= 50; i++ {
		if !fb.GetPixel(10+i, 10+i) {
			t.Errorf("Diagonal missing pixel (%d,%d)", 10+i, 10+i)
		}
	}
	if got := countBackPixels(fb); got != 51 {
		t.Errorf("Expected 51 diagonal pixels, got %d", got)
	}
}

// TestDrawEngine_LineOctants tests endpoint inclusion and pixel count
// across all eight octants. A Bresenham line covers its major axis
// once per step, so the count is max(|dx|,|dy|)+1.
func TestDrawEngine_LineOctants(t *testing.T) {
	testCases := []struct {
		x1, y1, x2, y2 int
	}{
		{100, 100, 140, 110}, // shallow right-down
		{100, 100, 140, 90},  // shallow right-up
		{100, 100, 60, 110},  // shallow left-down
		{100, 100, 60, 90},   // shallow left-up
		{100, 100, 110, 140}, // steep right-down
		{100, 100, 110, 60},  // steep right-up
		{100, 100, 90, 140},  // steep left-down
		{100, 100, 90, 60},   // steep left-up
	}

	for _, tc := range testCases {
		d, fb := newTestDraw()
		d.DrawLine(tc.x1, tc.y1, tc.x2, tc.y2, true)

		if !fb.GetPixel(tc.x1, tc.y1) || !fb.GetPixel(tc.x2, tc.y2) {
			t.Errorf("Line (%d,%d)-(%d,%d) missing an endpoint", tc.x1, tc.y1, tc.x2, tc.y2)
		}
		dx := tc.x2 - tc.x1
		if dx < 0 {
			dx = -dx
		}
		dy := tc.y2 - tc.y1
		if dy < 0 {
			dy = -dy
		}
		want := max(dx, dy) + 1
		if got := countBackPixels(fb); got != want {
			t.Errorf("Line (%d,%d)-(%d,%d): %d pixels, expected %d",
				tc.x1, tc.y1, tc.x2, tc.y2, got, want)
		}
	}
}

// TestDrawEngine_LineAxisAligned tests horizontal, vertical and
// single-point lines.
func TestDrawEngine_LineAxisAligned(t *testing.T) {
	d, fb := newTestDraw()

	d.DrawLine(5, 0, 25, 0, true)
	if countBackPixels(fb) != 21 {
		t.Errorf("Horizontal line: %d pixels, expected 21", countBackPixels(fb))
	}

	fb.Clear()
	d.DrawLine(0, 5, 0, 25, true)
	if countBackPixels(fb) != 21 {
		t.Errorf("Vertical line: %d pixels, expected 21", countBackPixels(fb))
	}

	fb.Clear()
	d.DrawLine(7, 7, 7, 7, true)
	if !fb.GetPixel(7, 7) || countBackPixels(fb) != 1 {
		t.Error("Degenerate line should plot exactly its single point")
	}
}

// TestDrawEngine_RectOutline tests the outline's corners, perimeter
// count and hollow interior.
func TestDrawEngine_RectOutline(t *testing.T) {
	d, fb := newTestDraw()
	d.DrawRect(50, 50, 30, 20, true)

	for _, c := range [][2]int{{50, 50}, {79, 50}, {50, 69}, {79, 69}} {
		if !fb.GetPixel(c[0], c[1]) {
			t.Errorf("Corner (%d,%d) not set", c[0], c[1])
		}
	}
	for _, p := range [][2]int{{51, 51}, {65, 60}, {78, 68}} {
		if fb.GetPixel(p[0], p[1]) {
			t.Errorf("Interior pixel (%d,%d) set by outline", p[0], p[1])
		}
	}

	// Perimeter: two 30-wide edges plus two 18-tall interior columns.
	if got := countBackPixels(fb); got != 96 {
		t.Errorf("Outline pixel count %d, expected 96", got)
	}
}

// TestDrawEngine_RectThin tests one and two row rectangles and
// rejected extents.
func TestDrawEngine_RectThin(t *testing.T) {
	d, fb := newTestDraw()

	d.DrawRect(0, 0, 10, 1, true)
	if countBackPixels(fb) != 10 {
		t.Errorf("1-row rect: %d pixels, expected 10", countBackPixels(fb))
	}

	fb.Clear()
	d.DrawRect(0, 0, 10, 2, true)
	if countBackPixels(fb) != 20 {
		t.Errorf("2-row rect: %d pixels, expected 20", countBackPixels(fb))
	}

	fb.Clear()
	d.DrawRect(0, 0, 0, 5, true)
	d.DrawRect(0, 0, 5, -1, true)
	if countBackPixels(fb) != 0 {
		t.Error("Non-positive extent rect drew pixels")
	}
}

// TestDrawEngine_CircleOutline tests cardinal points and the silent
// handling of degenerate radii.
func TestDrawEngine_CircleOutline(t *testing.T) {
	d, fb := newTestDraw()
	d.DrawCircle(100, 100, 20, true)

	for _, p := range [][2]int{{120, 100}, {80, 100}, {100, 120}, {100, 80}} {
		if !fb.GetPixel(p[0], p[1]) {
			t.Errorf("Circle missing cardinal point (%d,%d)", p[0], p[1])
		}
	}
	if fb.GetPixel(100, 100) {
		t.Error("Circle outline filled its centre")
	}

	fb.Clear()
	d.DrawCircle(50, 50, 0, true)
	if !fb.GetPixel(50, 50) || countBackPixels(fb) != 1 {
		t.Error("Radius-0 circle should plot only its centre")
	}

	fb.Clear()
	d.DrawCircle(50, 50, -5, true)
	if countBackPixels(fb) != 0 {
		t.Error("Negative radius circle drew pixels")
	}
}

// TestDrawEngine_FillCircleArea tests the x*x+y*y <= r*r containment
// rule: radius 9 covers exactly 253 lattice points.
func TestDrawEngine_FillCircleArea(t *testing.T) {
	d, fb := newTestDraw()
	d.FillCircle(100, 100, 9, true)

	if got := countBackPixels(fb); got != 253 {
		t.Errorf("Filled circle r=9: %d pixels, expected 253", got)
	}
	if !fb.GetPixel(109, 100) {
		t.Error("Boundary pixel at r on the axis should be inside")
	}
	if fb.GetPixel(110, 100) {
		t.Error("Pixel past the radius should be outside")
	}
	// The corner at (r/sqrt2)+1 in both axes falls outside: 7*7+7*7=98 > 81.
	if fb.GetPixel(107, 107) {
		t.Error("Diagonal pixel outside the radius was filled")
	}
}

// TestDrawEngine_FillCircleClipped tests a fill centred on the corner:
// only the on-screen quadrant survives.
func TestDrawEngine_FillCircleClipped(t *testing.T) {
	d, fb := newTestDraw()
	d.FillCircle(0, 0, 9, true)

	// One quadrant of the 253-point disk, axes included.
	if got := countBackPixels(fb); got != 73 {
		t.Errorf("Corner-clipped fill: %d pixels, expected 73", got)
	}
}

// TestDrawEngine_Ellipse tests extreme points and axis-degenerate
// ellipses.
func TestDrawEngine_Ellipse(t *testing.T) {
	d, fb := newTestDraw()
	d.DrawEllipse(100, 100, 30, 10, true)

	for _, p := range [][2]int{{70, 100}, {130, 100}, {100, 90}, {100, 110}} {
		if !fb.GetPixel(p[0], p[1]) {
			t.Errorf("Ellipse missing extreme point (%d,%d)", p[0], p[1])
		}
	}
	if fb.GetPixel(100, 100) {
		t.Error("Ellipse outline filled its centre")
	}

	fb.Clear()
	d.DrawEllipse(100, 100, 0, 10, true)
	if !fb.GetPixel(100, 90) || !fb.GetPixel(100, 110) || countBackPixels(fb) != 21 {
		t.Errorf("rx=0 ellipse should be a 21-pixel vertical line, got %d", countBackPixels(fb))
	}

	fb.Clear()
	d.DrawEllipse(100, 100, 10, 0, true)
	if !fb.GetPixel(90, 100) || !fb.GetPixel(110, 100) || countBackPixels(fb) != 21 {
		t.Errorf("ry=0 ellipse should be a 21-pixel horizontal line, got %d", countBackPixels(fb))
	}

	fb.Clear()
	d.DrawEllipse(100, 100, -1, 5, true)
	if countBackPixels(fb) != 0 {
		t.Error("Negative radius ellipse drew pixels")
	}
}

// TestDrawEngine_TriangleOutline tests that all three vertices land.
func TestDrawEngine_TriangleOutline(t *testing.T) {
	d, fb := newTestDraw()
	d.DrawTriangle(20, 20, 60, 30, 40, 60, true)

	for _, p := range [][2]int{{20, 20}, {60, 30}, {40, 60}} {
		if !fb.GetPixel(p[0], p[1]) {
			t.Errorf("Triangle outline missing vertex (%d,%d)", p[0], p[1])
		}
	}
}

// TestDrawEngine_FillTriangle tests barycentric containment on a right
// triangle with power-of-two legs, where the barycentric coordinates
// are dyadic and therefore exact in floating point.
func TestDrawEngine_FillTriangle(t *testing.T) {
	d, fb := newTestDraw()
	d.FillTriangle(0, 0, 8, 0, 0, 8, true)

	// Closed right triangle with legs of 8: sum of 9+8+...+1 points.
	if got := countBackPixels(fb); got != 45 {
		t.Errorf("Filled right triangle: %d pixels, expected 45", got)
	}
	if !fb.GetPixel(0, 0) || !fb.GetPixel(8, 0) || !fb.GetPixel(0, 8) {
		t.Error("Filled triangle missing a vertex")
	}
	if !fb.GetPixel(2, 2) {
		t.Error("Filled triangle missing an interior point")
	}
	if fb.GetPixel(5, 5) {
		t.Error("Point beyond the hypotenuse was filled")
	}
}

// TestDrawEngine_FillTriangleDegenerate tests that a zero-area
// triangle plots nothing.
func TestDrawEngine_FillTriangleDegenerate(t *testing.T) {
	d, fb := newTestDraw()
	d.FillTriangle(10, 10, 20, 20, 30, 30, true)
	if got := countBackPixels(fb); got != 0 {
		t.Errorf("Degenerate triangle drew %d pixels, expected 0", got)
	}
}

// TestDrawEngine_Bitmap tests the blit's transparency modes.
func TestDrawEngine_Bitmap(t *testing.T) {
	// Checker pattern: set pixels on the main diagonal only.
	sprite := []byte{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}

	d, fb := newTestDraw()

	// transparent=0: zero source pixels leave the plane alone.
	fb.FillRect(0, 0, 4, 4, true)
	d.DrawBitmap(0, 0, sprite, 4, 4, 0)
	if countBackPixels(fb) != 16 {
		t.Errorf("Transparent-0 blit disturbed background: %d pixels, expected 16", countBackPixels(fb))
	}

	// transparent=-1: every source pixel is written, zeros clear.
	d.DrawBitmap(0, 0, sprite, 4, 4, -1)
	if got := countBackPixels(fb); got != 4 {
		t.Errorf("Opaque blit: %d pixels, expected 4", got)
	}
	if !fb.GetPixel(0, 0) || fb.GetPixel(1, 0) {
		t.Error("Opaque blit pattern wrong")
	}

	// transparent=1: only zero source pixels are written (as clear).
	fb.Clear()
	fb.FillRect(0, 0, 4, 4, true)
	d.DrawBitmap(0, 0, sprite, 4, 4, 1)
	if got := countBackPixels(fb); got != 4 {
		t.Errorf("Transparent-1 blit: %d pixels, expected 4", got)
	}
}

// TestDrawEngine_BitmapBounds tests the 8x8 cap and short data.
func TestDrawEngine_BitmapBounds(t *testing.T) {
	d, fb := newTestDraw()

	full := make([]byte, 64)
	for i := range full {
		full[i] = 1
	}
	// Height past the cap is ignored; the 64 bytes cover 8 rows exactly.
	d.DrawBitmap(0, 0, full, 8, 12, -1)
	if got := countBackPixels(fb); got != 64 {
		t.Errorf("Capped blit: %d pixels, expected 64", got)
	}

	// Width past the cap: columns 8+ are skipped but still count toward
	// the row stride, so a 16-wide source reads its second row from byte
	// 16, not from the first row's tail.
	fb.Clear()
	wide := make([]byte, 32)
	for i := 0; i < 16; i++ {
		wide[i] = 1
	}
	d.DrawBitmap(0, 0, wide, 16, 2, -1)
	if got := countBackPixels(fb); got != 8 {
		t.Errorf("Wide-source blit: %d pixels, expected 8", got)
	}
	if !fb.GetPixel(7, 0) {
		t.Error("Wide-source blit missed (7,0)")
	}
	if fb.GetPixel(0, 1) {
		t.Error("Wide-source blit lit row 1 from the first row's tail")
	}

	// Short data stops the blit without touching pixels past the end.
	fb.Clear()
	d.DrawBitmap(0, 0, []byte{1, 1, 1}, 2, 2, -1)
	if got := countBackPixels(fb); got != 3 {
		t.Errorf("Short-data blit: %d pixels, expected 3", got)
	}

	fb.Clear()
	d.DrawBitmap(0, 0, full, 0, 8, -1)
	if countBackPixels(fb) != 0 {
		t.Error("Zero-width blit drew pixels")
	}
}

// TestDrawEngine_Capabilities tests the fixed capability report.
func TestDrawEngine_Capabilities(t *testing.T) {
	d, _ := newTestDraw()
	caps := d.Capabilities()

	if caps.ColorDepth != 1 {
		t.Errorf("Expected ColorDepth=1, got %d", caps.ColorDepth)
	}
	if caps.MaxBitmapWidth != ODC_CELL_WIDTH || caps.MaxBitmapHeight != ODC_CELL_HEIGHT {
		t.Errorf("Expected 8x8 bitmap cap, got %dx%d", caps.MaxBitmapWidth, caps.MaxBitmapHeight)
	}
	found := false
	for _, p := range caps.Primitives {
		if p == "fill-triangle" {
			found = true
		}
	}
	if !found {
		t.Error("Capability report missing fill-triangle")
	}
}
