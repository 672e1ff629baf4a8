// Package clip provides rectangular line clipping for the line rasterizer.
// Adapted from gogpu/gg's internal/clip Cohen-Sutherland edge clipper,
// trimmed to the line-segment case (the Bezier-curve clipping the teacher
// package also implements has no analogue in a triangle/line rasterizer)
// and converted from float64 path-space points to float32 pixel
// coordinates against a tile's pixel bounds.
package clip

// Point is a float32 2D point in pixel space.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle in pixel space. Line treats it as
// closed, [Min, Max] on both axes: a point on a Max edge is inside.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeTop    = 4
	outcodeBottom = 8
)

func outcode(r Rect, p Point) int {
	code := outcodeInside
	switch {
	case p.X < r.MinX:
		code |= outcodeLeft
	case p.X > r.MaxX:
		code |= outcodeRight
	}
	switch {
	case p.Y < r.MinY:
		code |= outcodeTop
	case p.Y > r.MaxY:
		code |= outcodeBottom
	}
	return code
}

// Line clips the segment p0-p1 to the rectangle r using the
// Cohen-Sutherland algorithm. ok is false if the segment lies entirely
// outside r. t0 and t1 report how far each returned endpoint moved along
// the original segment (0 at p0, 1 at p1), so callers can remap
// per-vertex interpolation parameters after clipping.
func Line(r Rect, p0, p1 Point) (c0, c1 Point, t0, t1 float32, ok bool) {
	code0 := outcode(r, p0)
	code1 := outcode(r, p1)
	t0, t1 = 0, 1
	origP0, origP1 := p0, p1

	for {
		if code0|code1 == 0 {
			return p0, p1, t0, t1, true
		}
		if code0&code1 != 0 {
			return Point{}, Point{}, 0, 0, false
		}

		codeOut := code0
		updatingFirst := true
		if codeOut == 0 {
			codeOut = code1
			updatingFirst = false
		}

		var p Point
		var t float32
		dx := origP1.X - origP0.X
		dy := origP1.Y - origP0.Y

		switch {
		case codeOut&outcodeTop != 0:
			t = (r.MinY - origP0.Y) / dy
			p = Point{origP0.X + t*dx, r.MinY}
		case codeOut&outcodeBottom != 0:
			t = (r.MaxY - origP0.Y) / dy
			p = Point{origP0.X + t*dx, r.MaxY}
		case codeOut&outcodeRight != 0:
			t = (r.MaxX - origP0.X) / dx
			p = Point{r.MaxX, origP0.Y + t*dy}
		case codeOut&outcodeLeft != 0:
			t = (r.MinX - origP0.X) / dx
			p = Point{r.MinX, origP0.Y + t*dy}
		}

		if updatingFirst {
			p0, t0 = p, t
			code0 = outcode(r, p0)
		} else {
			p1, t1 = p, t
			code1 = outcode(r, p1)
		}
	}
}
