package vecmath

// Mat3 is a row-major 3x3 matrix. The triangle rasterizer uses it to hold
// coords_to_weights: a matrix that maps a homogeneous screen pixel
// (x, y, 1) to unbalanced barycentric weights (w0, w1, wh).
type Mat3 struct {
	Rows [3]Vec3
}

// Apply maps the homogeneous point p = (x, y, 1) through M, returning
// (row0·p, row1·p, row2·p).
func (m Mat3) Apply(x, y float32) Vec3 {
	p := Vec3{x, y, 1}
	return Vec3{
		X: m.Rows[0].Dot(p),
		Y: m.Rows[1].Dot(p),
		Z: m.Rows[2].Dot(p),
	}
}

// Mul returns m * o (matrix product, row-major).
func (m Mat3) Mul(o Mat3) Mat3 {
	col := func(i int) Vec3 {
		return Vec3{o.Rows[0].index(i), o.Rows[1].index(i), o.Rows[2].index(i)}
	}
	c0, c1, c2 := col(0), col(1), col(2)
	var out Mat3
	for i := range 3 {
		r := m.Rows[i]
		out.Rows[i] = Vec3{r.Dot(c0), r.Dot(c1), r.Dot(c2)}
	}
	return out
}

// Finite reports whether every entry of m is finite.
func (m Mat3) Finite() bool {
	return m.Rows[0].Finite() && m.Rows[1].Finite() && m.Rows[2].Finite()
}

func (v Vec3) index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// NDCToPixel builds the forward NDC -> pixel-space matrix: maps NDC
// (x, y) in [-1, 1] to a pixel coordinate in [0, width] x [0, height],
// with y flipped since NDC +y points up and pixel +y points down.
func NDCToPixel(width, height float32) Mat3 {
	return Mat3{Rows: [3]Vec3{
		{X: width / 2, Y: 0, Z: width / 2},
		{X: 0, Y: -height / 2, Z: height / 2},
		{X: 0, Y: 0, Z: 1},
	}}
}

// PixelToNDC builds the inverse of NDCToPixel: maps a pixel coordinate
// back to NDC. This is the matrix the triangle rasterizer's
// coords_to_weights construction composes with its barycentric-row
// matrix, since that matrix's rows are built from clip-space (homogeneous
// NDC-domain) vertex coordinates but must accept pixel-space (x, y, 1)
// input.
func PixelToNDC(width, height float32) Mat3 {
	return Mat3{Rows: [3]Vec3{
		{X: 2 / width, Y: 0, Z: -1},
		{X: 0, Y: -2 / height, Z: 1},
		{X: 0, Y: 0, Z: 1},
	}}
}
