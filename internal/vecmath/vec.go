// Package vecmath provides the minimal float32 vector and matrix kernels
// the rasterizer needs: a 3-component vector, a 3x3 matrix, and the
// NDC-to-pixel transforms used by coords_to_weights. It is deliberately not
// a general-purpose linear algebra library — the host application's choice
// of vector/matrix types is an external concern; this package exists only
// to serve the triangle and line rasterizers.
package vecmath

import "github.com/chewxy/math32"

// Vec3 is a 3-component float32 vector, used for screen-space cross
// products and barycentric weight rows.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Cross returns the 3D cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Dot returns the scalar dot product v · o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Scale returns v scaled uniformly by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// LenSq returns the squared Euclidean length of v.
func (v Vec3) LenSq() float32 {
	return v.Dot(v)
}

// Finite reports whether all components of v are finite (not NaN or ±Inf).
func (v Vec3) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float32) bool {
	return !math32.IsInf(f, 0) && !math32.IsNaN(f)
}

// Max returns the greater of a and b.
func Max(a, b float32) float32 { return math32.Max(a, b) }

// Min returns the lesser of a and b.
func Min(a, b float32) float32 { return math32.Min(a, b) }

// Abs returns the absolute value of f.
func Abs(f float32) float32 { return math32.Abs(f) }
