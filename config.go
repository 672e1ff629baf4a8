package swrast

// DepthOrdering is the comparison a DepthMode applies between a candidate
// fragment's depth and the depth already stored in the target.
type DepthOrdering int

const (
	depthOrderingNone DepthOrdering = iota
	DepthLess
	DepthGreater
)

// DepthMode controls whether and how a Pipeline interacts with the depth
// target. A zero DepthMode is DepthNone: no test, no write.
type DepthMode struct {
	// HasTest reports whether Test should be applied. When false, every
	// fragment passes the depth test unconditionally.
	HasTest bool
	Test    DepthOrdering
	// Write reports whether a passing fragment's depth should be stored.
	Write bool
}

// UsesDepth reports whether this mode needs to interact with the depth
// target at all (and therefore requires a depth target of matching size).
func (d DepthMode) UsesDepth() bool { return d.HasTest || d.Write }

var (
	// DepthNone disables depth entirely: no test, no write.
	DepthNone = DepthMode{}

	// DepthLessWrite passes when the new depth is less than the stored
	// depth, and writes the new depth on pass. The common "closer wins"
	// policy.
	DepthLessWrite = DepthMode{HasTest: true, Test: DepthLess, Write: true}

	// DepthGreaterWrite passes when the new depth is greater than the
	// stored depth, and writes on pass.
	DepthGreaterWrite = DepthMode{HasTest: true, Test: DepthGreater, Write: true}

	// DepthLessPass tests but does not write; useful for depth pre-pass
	// style pipelines that reuse an existing depth buffer read-only.
	DepthLessPass = DepthMode{HasTest: true, Test: DepthLess, Write: false}

	// DepthGreaterPass tests but does not write.
	DepthGreaterPass = DepthMode{HasTest: true, Test: DepthGreater, Write: false}
)

// PixelMode controls whether the pipeline writes the pixel target.
// PixelModePass runs the rasterizer for its depth side effects only.
type PixelMode bool

const (
	PixelModeWrite PixelMode = true
	PixelModePass  PixelMode = false
)

// CullMode selects which triangle winding, if any, is discarded before
// rasterization.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// AaMode selects the anti-aliasing strategy. AaNone disables MSAA; AaMSAA
// subsamples on a 2^Level x 2^Level grid per primitive, per pixel.
type AaMode struct {
	MSAA  bool
	Level int
}

var AaNone = AaMode{}

// MSAA constructs an AaMode requesting MSAA at the given level (0..=6,
// where level k subsamples on a 2^k x 2^k grid).
func MSAA(level int) AaMode {
	return AaMode{MSAA: true, Level: level}
}

// Handedness is the handedness of a Pipeline's coordinate space.
type Handedness int

const (
	HandednessLeft  Handedness = iota // Vulkan, DirectX
	HandednessRight                   // OpenGL, Metal
)

// YAxisDirection is the direction +y represents in screen space.
type YAxisDirection int

const (
	YAxisDown YAxisDirection = iota // +y points towards the bottom of the screen
	YAxisUp                         // +y points towards the top of the screen
)

// ZClipRange is an inclusive depth-clip range [Min, Max]. HasRange is
// false when z-clipping is disabled (CoordinateMode.WithoutZClip).
type ZClipRange struct {
	HasRange bool
	Min, Max float32
}

// CoordinateMode configures the coordinate-space conventions a Pipeline's
// vertex stage produces clip-space positions in.
type CoordinateMode struct {
	Handedness     Handedness
	YAxisDirection YAxisDirection
	ZClipRange     ZClipRange
}

// WithoutZClip returns a copy of c with z-clipping disabled.
func (c CoordinateMode) WithoutZClip() CoordinateMode {
	c.ZClipRange = ZClipRange{}
	return c
}

var (
	// CoordinateModeOpenGL: right-handed, y = up, z clip range [-1, 1].
	CoordinateModeOpenGL = CoordinateMode{
		Handedness:     HandednessRight,
		YAxisDirection: YAxisUp,
		ZClipRange:     ZClipRange{HasRange: true, Min: -1, Max: 1},
	}

	// CoordinateModeVulkan: left-handed, y = down, z clip range [0, 1].
	// This is the default CoordinateMode.
	CoordinateModeVulkan = CoordinateMode{
		Handedness:     HandednessLeft,
		YAxisDirection: YAxisDown,
		ZClipRange:     ZClipRange{HasRange: true, Min: 0, Max: 1},
	}

	// CoordinateModeMetal: right-handed, y = down, z clip range [0, 1].
	CoordinateModeMetal = CoordinateMode{
		Handedness:     HandednessRight,
		YAxisDirection: YAxisDown,
		ZClipRange:     ZClipRange{HasRange: true, Min: 0, Max: 1},
	}

	// CoordinateModeDirectX: left-handed, y = up, z clip range [0, 1].
	CoordinateModeDirectX = CoordinateMode{
		Handedness:     HandednessLeft,
		YAxisDirection: YAxisUp,
		ZClipRange:     ZClipRange{HasRange: true, Min: 0, Max: 1},
	}

	// DefaultCoordinateMode is CoordinateModeVulkan, matching the
	// zero-value-adjacent convention of the pipeline this was derived
	// from: most new pipelines target Vulkan-style clip space.
	DefaultCoordinateMode = CoordinateModeVulkan
)
