// video_drawing.go - ODC scan-conversion drawing primitives

/*
video_drawing.go - ODC Drawing Engine

Scan-conversion primitives for the Orion Display Controller. Every
routine plots through the frame store's back plane and inherits its
silent clipping, so callers never see an error for off-screen geometry.

Features:
- Integer Bresenham lines, all eight octants, endpoints inclusive
- Rectangle outlines that plot each perimeter pixel exactly once
- Midpoint circles and two-region midpoint ellipses
- Brute-force filled circles and barycentric filled triangles
- 8x8-capped bitmap blit with optional transparent-value skip
*/

package main

// DrawEngine renders geometric primitives into a frame store.
type DrawEngine struct {
	fb *FrameBuffer
}

// NewDrawEngine creates a drawing engine over the given frame store.
func NewDrawEngine(fb *FrameBuffer) *DrawEngine {
	return &DrawEngine{fb: fb}
}

// =============================================================================
// Lines
// =============================================================================

// DrawLine plots an integer Bresenham line from (x1, y1) to (x2, y2),
// both endpoints included, symmetric across all eight octants.
func (d *DrawEngine) DrawLine(x1, y1, x2, y2 int, on bool) {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		d.fb.SetPixel(x1, y1, on)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// =============================================================================
// Rectangles
// =============================================================================

// DrawRect draws a w*h rectangle outline anchored at (x, y). The two
// horizontal edges cover the full width; the vertical edges only span
// the interior rows so the corners are plotted once. Rectangles one or
// two rows tall are just their horizontal edges.
func (d *DrawEngine) DrawRect(x, y, w, h int, on bool) {
	if w <= 0 || h <= 0 {
		return
	}
	x2 := x + w - 1
	y2 := y + h - 1
	d.fb.DrawHLine(x, x2, y, on)
	if h > 1 {
		d.fb.DrawHLine(x, x2, y2, on)
	}
	if h > 2 {
		d.fb.DrawVLine(x, y+1, y2-1, on)
		if w > 1 {
			d.fb.DrawVLine(x2, y+1, y2-1, on)
		}
	}
}

// FillRect fills a w*h rectangle anchored at (x, y).
func (d *DrawEngine) FillRect(x, y, w, h int, on bool) {
	d.fb.FillRect(x, y, w, h, on)
}

// =============================================================================
// Circles and Ellipses
// =============================================================================

// DrawCircle plots a midpoint circle of radius r centred on (cx, cy).
// The decision variable starts at 3-2r; each step emits all eight
// symmetric points.
func (d *DrawEngine) DrawCircle(cx, cy, r int, on bool) {
	if r < 0 {
		return
	}
	x := 0
	y := r
	dec := 3 - 2*r
	for x <= y {
		d.emitCirclePoints(cx, cy, x, y, on)
		if dec < 0 {
			dec += 4*x + 6
		} else {
			dec += 4*(x-y) + 10
			y--
		}
		x++
	}
}

func (d *DrawEngine) emitCirclePoints(cx, cy, x, y int, on bool) {
	d.fb.SetPixel(cx+x, cy+y, on)
	d.fb.SetPixel(cx-x, cy+y, on)
	d.fb.SetPixel(cx+x, cy-y, on)
	d.fb.SetPixel(cx-x, cy-y, on)
	d.fb.SetPixel(cx+y, cy+x, on)
	d.fb.SetPixel(cx-y, cy+x, on)
	d.fb.SetPixel(cx+y, cy-x, on)
	d.fb.SetPixel(cx-y, cy-x, on)
}

// FillCircle fills radius r around (cx, cy) with a bounding-box scan
// and an x*x+y*y <= r*r containment test. Deliberately the simple
// O(r*r) version, not a scanline fill.
func (d *DrawEngine) FillCircle(cx, cy, r int, on bool) {
	if r < 0 {
		return
	}
	rsq := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rsq {
				d.fb.SetPixel(cx+dx, cy+dy, on)
			}
		}
	}
}

// DrawEllipse plots a two-region midpoint ellipse with radii (rx, ry)
// centred on (cx, cy). Region 1 walks while the slope magnitude is
// below 1, region 2 takes over to the y axis; each step emits the four
// symmetric points.
func (d *DrawEngine) DrawEllipse(cx, cy, rx, ry int, on bool) {
	if rx < 0 || ry < 0 {
		return
	}
	if rx == 0 {
		d.fb.DrawVLine(cx, cy-ry, cy+ry, on)
		return
	}
	if ry == 0 {
		d.fb.DrawHLine(cx-rx, cx+rx, cy, on)
		return
	}

	x := 0
	y := ry
	rx2 := float64(rx * rx)
	ry2 := float64(ry * ry)
	dx := 2 * ry2 * float64(x)
	dy := 2 * rx2 * float64(y)

	// Region 1
	d1 := ry2 - rx2*float64(ry) + 0.25*rx2
	for dx < dy {
		d.emitEllipsePoints(cx, cy, x, y, on)
		if d1 < 0 {
			x++
			dx += 2 * ry2
			d1 += dx + ry2
		} else {
			x++
			y--
			dx += 2 * ry2
			dy -= 2 * rx2
			d1 += dx - dy + ry2
		}
	}

	// Region 2
	fx := float64(x)
	fy := float64(y)
	d2 := ry2*(fx+0.5)*(fx+0.5) + rx2*(fy-1)*(fy-1) - rx2*ry2
	for y >= 0 {
		d.emitEllipsePoints(cx, cy, x, y, on)
		if d2 > 0 {
			y--
			dy -= 2 * rx2
			d2 += rx2 - dy
		} else {
			y--
			x++
			dx += 2 * ry2
			dy -= 2 * rx2
			d2 += dx - dy + rx2
		}
	}
}

func (d *DrawEngine) emitEllipsePoints(cx, cy, x, y int, on bool) {
	d.fb.SetPixel(cx+x, cy+y, on)
	d.fb.SetPixel(cx-x, cy+y, on)
	d.fb.SetPixel(cx+x, cy-y, on)
	d.fb.SetPixel(cx-x, cy-y, on)
}

// =============================================================================
// Triangles
// =============================================================================

// DrawTriangle draws the three edges between the given vertices.
func (d *DrawEngine) DrawTriangle(x1, y1, x2, y2, x3, y3 int, on bool) {
	d.DrawLine(x1, y1, x2, y2, on)
	d.DrawLine(x2, y2, x3, y3, on)
	d.DrawLine(x3, y3, x1, y1, on)
}

// FillTriangle fills the triangle by scanning its bounding box and
// testing barycentric containment: all three coordinates non-negative
// and summing to 1 within 1e-6. Degenerate (zero-area) triangles
// produce NaN coordinates and plot nothing.
func (d *DrawEngine) FillTriangle(x1, y1, x2, y2, x3, y3 int, on bool) {
	minX := min(x1, x2, x3)
	maxX := max(x1, x2, x3)
	minY := min(y1, y2, y3)
	maxY := max(y1, y2, y3)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= ODC_WIDTH {
		maxX = ODC_WIDTH - 1
	}
	if maxY >= ODC_HEIGHT {
		maxY = ODC_HEIGHT - 1
	}

	fx1, fy1 := float64(x1), float64(y1)
	fx2, fy2 := float64(x2), float64(y2)
	fx3, fy3 := float64(x3), float64(y3)
	denom := (fy2-fy3)*(fx1-fx3) + (fx3-fx2)*(fy1-fy3)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			fpx, fpy := float64(px), float64(py)
			alpha := ((fy2-fy3)*(fpx-fx3) + (fx3-fx2)*(fpy-fy3)) / denom
			beta := ((fy3-fy1)*(fpx-fx3) + (fx1-fx3)*(fpy-fy3)) / denom
			gamma := 1 - alpha - beta
			if alpha >= 0 && beta >= 0 && gamma >= 0 {
				sum := alpha + beta + gamma
				if sum > 1-1e-6 && sum < 1+1e-6 {
					d.fb.SetPixel(px, py, on)
				}
			}
		}
	}
}

// =============================================================================
// Bitmap Blit
// =============================================================================

// DrawBitmap blits a small bitmap at (x, y). The source is row-major,
// one byte per pixel, nonzero meaning set. Width and height are capped
// at 8; rows and columns past the cap are ignored, though the caller's
// width still sets the source row stride. A transparent value of 0 or 1
// skips source pixels with that value; pass -1 to blit every pixel.
func (d *DrawEngine) DrawBitmap(x, y int, data []byte, w, h int, transparent int) {
	if w <= 0 || h <= 0 {
		return
	}
	stride := w
	if w > ODC_CELL_WIDTH {
		w = ODC_CELL_WIDTH
	}
	if h > ODC_CELL_HEIGHT {
		h = ODC_CELL_HEIGHT
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*stride + col
			if idx >= len(data) {
				return
			}
			value := 0
			if data[idx] != 0 {
				value = 1
			}
			if transparent >= 0 && value == transparent {
				continue
			}
			d.fb.SetPixel(x+col, y+row, value != 0)
		}
	}
}

// =============================================================================
// Capability Reporting
// =============================================================================

// DrawCapabilities describes what the drawing engine can do, for
// callers that probe before issuing commands.
type DrawCapabilities struct {
	ColorDepth      int
	MaxBitmapWidth  int
	MaxBitmapHeight int
	Primitives      []string
}

// Capabilities reports the fixed 1-bit depth and the primitive set.
func (d *DrawEngine) Capabilities() DrawCapabilities {
	return DrawCapabilities{
		ColorDepth:      1,
		MaxBitmapWidth:  ODC_CELL_WIDTH,
		MaxBitmapHeight: ODC_CELL_HEIGHT,
		Primitives: []string{
			"line", "rect", "fill-rect", "circle", "fill-circle",
			"ellipse", "triangle", "fill-triangle", "bitmap",
		},
	}
}
