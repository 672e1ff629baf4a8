package swrast

// Pipeline is the user-extensible stage orchestrator. A Pipeline instance
// is a pure function object implemented by callers: Render (in render.go)
// drives it, and is not itself part of the interface, so callers cannot
// override it.
//
// Vtx is the caller's vertex type, VD the interpolatable per-vertex
// attribute record, Frag the pre-blend fragment type, and Pix the stored
// pixel type.
type Pipeline[Vtx any, VD VertexData[VD], Frag any, Pix any] interface {
	// VertexShader maps a user vertex to homogeneous clip-space position
	// plus interpolatable attributes. Required.
	VertexShader(v Vtx) (ClipPos, VD)

	// FragmentShader maps interpolated per-fragment attributes to a
	// fragment value. Required; must be pure.
	FragmentShader(vd VD) Frag

	// BlendShader combines the pixel target's existing value with a new
	// fragment. The default behavior (DefaultBlend) simply returns the
	// new fragment.
	BlendShader(old Pix, frag Frag) Pix

	// GeometryShader turns one assembled primitive into zero or more
	// primitives of the same vertex count. The default behavior
	// (BasePipeline.GeometryShader) emits the primitive unchanged.
	GeometryShader(verts []Vertex[VD], emit func([]Vertex[VD]))

	// PixelMode reports whether the pixel target should be written.
	PixelMode() PixelMode

	// DepthMode reports how this pipeline interacts with the depth
	// target.
	DepthMode() DepthMode

	// CoordinateMode reports the coordinate-space conventions this
	// pipeline's VertexShader produces positions in.
	CoordinateMode() CoordinateMode

	// CullMode reports which triangle winding, if any, to discard.
	CullMode() CullMode

	// AaMode reports the anti-aliasing strategy to use.
	AaMode() AaMode
}

// BasePipeline supplies the common default-behavior stages so concrete
// pipelines can embed it and override only what they need, rather than
// implementing every Pipeline method by hand.
type BasePipeline[VD any] struct{}

// PixelMode defaults to PixelModeWrite.
func (BasePipeline[VD]) PixelMode() PixelMode { return PixelModeWrite }

// DepthMode defaults to DepthNone.
func (BasePipeline[VD]) DepthMode() DepthMode { return DepthNone }

// CoordinateMode defaults to DefaultCoordinateMode.
func (BasePipeline[VD]) CoordinateMode() CoordinateMode { return DefaultCoordinateMode }

// CullMode defaults to CullNone.
func (BasePipeline[VD]) CullMode() CullMode { return CullNone }

// AaMode defaults to AaNone.
func (BasePipeline[VD]) AaMode() AaMode { return AaNone }

// GeometryShader defaults to emitting the primitive unchanged.
func (BasePipeline[VD]) GeometryShader(verts []Vertex[VD], emit func([]Vertex[VD])) {
	emit(verts)
}

// DefaultBlend implements the default BlendShader behavior: ignore old
// and return frag reinterpreted as Pix. Embed this call in a concrete
// pipeline's BlendShader when Frag and Pix are the same type and no
// blending (e.g. alpha compositing) is needed.
func DefaultBlend[Pix any](old Pix, frag Pix) Pix {
	return frag
}
