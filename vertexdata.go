package swrast

// Lerpable is the two-weight half of the interpolation contract: a type
// that can be combined as a weighted sum of two instances of itself. The
// line rasterizer uses only this method, since a line has two endpoints.
//
// Implementations must satisfy: for any a, b and weights wa, wb with
// wa+wb == 1 (within float error), WeightedSum2 returns the affine
// combination wa*a + wb*b component-wise.
type Lerpable[T any] interface {
	WeightedSum2(other T, wSelf, wOther float32) T
}

// VertexData is the full interpolation contract required of a per-vertex
// attribute record: weighted sums of two values (for lines) and of three
// values (for triangles). Implementations generate one instantiation per
// concrete attribute type rather than paying a virtual dispatch cost per
// fragment, per the polymorphism design note: swrast uses Go generics
// instead of an interface-typed per-fragment path.
type VertexData[T any] interface {
	Lerpable[T]

	// WeightedSum3 returns the affine combination w0*v0 + w1*v1 + w2*v2,
	// where v1, v2 are the other two vertices and w0+w1+w2 == 1 (within
	// float error, after perspective correction).
	WeightedSum3(v1, v2 T, w0, w1, w2 float32) T
}

// Unit is the marker VertexData type for primitives carrying no
// interpolated attributes at all (e.g. a depth-only prepass).
type Unit struct{}

// WeightedSum2 implements Lerpable[Unit]; Unit carries no data so there is
// nothing to combine.
func (Unit) WeightedSum2(Unit, float32, float32) Unit { return Unit{} }

// WeightedSum3 implements VertexData[Unit].
func (Unit) WeightedSum3(Unit, Unit, float32, float32, float32) Unit { return Unit{} }

// F32 is a single float32 scalar attribute implementing VertexData[F32].
type F32 float32

func (v F32) WeightedSum2(o F32, w, wo float32) F32 {
	return F32(float32(v)*w + float32(o)*wo)
}

func (v F32) WeightedSum3(v1, v2 F32, w0, w1, w2 float32) F32 {
	return F32(float32(v)*w0 + float32(v1)*w1 + float32(v2)*w2)
}

// Vec2 is a two-component float32 attribute (e.g. texture coordinates)
// implementing VertexData[Vec2].
type Vec2 [2]float32

func (v Vec2) WeightedSum2(o Vec2, w, wo float32) Vec2 {
	return Vec2{v[0]*w + o[0]*wo, v[1]*w + o[1]*wo}
}

func (v Vec2) WeightedSum3(v1, v2 Vec2, w0, w1, w2 float32) Vec2 {
	return Vec2{
		v[0]*w0 + v1[0]*w1 + v2[0]*w2,
		v[1]*w0 + v1[1]*w1 + v2[1]*w2,
	}
}

// Vec3 is a three-component float32 attribute (e.g. world-space normal)
// implementing VertexData[Vec3].
type Vec3 [3]float32

func (v Vec3) WeightedSum2(o Vec3, w, wo float32) Vec3 {
	return Vec3{
		v[0]*w + o[0]*wo,
		v[1]*w + o[1]*wo,
		v[2]*w + o[2]*wo,
	}
}

func (v Vec3) WeightedSum3(v1, v2 Vec3, w0, w1, w2 float32) Vec3 {
	return Vec3{
		v[0]*w0 + v1[0]*w1 + v2[0]*w2,
		v[1]*w0 + v1[1]*w1 + v2[1]*w2,
		v[2]*w0 + v1[2]*w1 + v2[2]*w2,
	}
}
