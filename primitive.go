package swrast

// Vertex is a single assembled vertex: its clip-space position plus
// interpolatable attributes.
type Vertex[VD any] struct {
	Pos  ClipPos
	Data VD
}

// PrimitiveAssembler names the Rasterizer a primitive kind feeds and
// expands one collected group of VertexCount() vertices into the vertex
// sequence that rasterizer expects. Collection itself (pulling
// VertexCount() vertices off the post-vertex-shader stream) is shared
// logic in render.go, since it does not vary by kind; Emit is what
// differs: TriangleList passes the group through unchanged, while
// LineTriangleList re-emits it as three edges.
type PrimitiveAssembler[VD any] interface {
	// VertexCount is how many vertices one group consists of — what the
	// geometry shader stage receives and may re-emit zero or more of.
	VertexCount() int

	// Emit expands one collected group into the rasterizer-ready vertex
	// stream.
	Emit(group []Vertex[VD], emit func(Vertex[VD]))

	// IsTriangle reports whether Emit's output is consumed three
	// vertices at a time by the triangle rasterizer (true) or two at a
	// time by the line rasterizer (false).
	IsTriangle() bool
}

// TriangleList collects three consecutive vertices into one triangle and
// emits them unchanged, in order, to the triangle rasterizer.
type TriangleList[VD any] struct{}

func (TriangleList[VD]) VertexCount() int { return 3 }
func (TriangleList[VD]) IsTriangle() bool { return true }

func (TriangleList[VD]) Emit(group []Vertex[VD], emit func(Vertex[VD])) {
	for _, v := range group {
		emit(v)
	}
}

// LineList collects two consecutive vertices into one line segment and
// emits them unchanged to the line rasterizer.
type LineList[VD any] struct{}

func (LineList[VD]) VertexCount() int { return 2 }
func (LineList[VD]) IsTriangle() bool { return false }

func (LineList[VD]) Emit(group []Vertex[VD], emit func(Vertex[VD])) {
	for _, v := range group {
		emit(v)
	}
}

// LineTriangleList collects three vertices (a, b, c) as a triangle's
// worth of input but emits them as its three wireframe edges — a-b, b-c,
// c-a — six vertices total, to the line rasterizer. Useful for debug
// wireframe overlays driven by the same vertex stream as a filled pass.
type LineTriangleList[VD any] struct{}

func (LineTriangleList[VD]) VertexCount() int { return 3 }
func (LineTriangleList[VD]) IsTriangle() bool { return false }

func (LineTriangleList[VD]) Emit(group []Vertex[VD], emit func(Vertex[VD])) {
	if len(group) != 3 {
		return
	}
	a, b, c := group[0], group[1], group[2]
	emit(a)
	emit(b)
	emit(b)
	emit(c)
	emit(c)
	emit(a)
}
