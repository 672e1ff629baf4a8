package swrast

import (
	"fmt"

	"github.com/gogpu/swrast/internal/parallel"
)

// RenderOptions configures the non-overridable Render entry point itself
// (as opposed to Pipeline's per-pipeline config getters).
type RenderOptions struct {
	// Workers caps the number of goroutines used for parallel band
	// dispatch. Zero means GOMAXPROCS.
	Workers int
}

// Render is the non-overridable entry point described in §4.1. It drives
// pipeline's vertex and geometry stages over vertices, assembles
// primitives via assembler, and rasterizes them into pixel and/or depth
// using parallel row-band dispatch.
//
// vertices is drained as a []Vtx slice rather than a general iterator:
// Go's lack of lazy generator syntax (no `yield`) makes a channel- or
// callback-based iterator this package's only alternative, and both add
// goroutine or allocation overhead a CPU rasterizer's hot path doesn't
// need. Per the concurrency model (§5), the full post-geometry vertex
// stream must be materialized before parallel dispatch begins anyway, so
// accepting a slice up front does not give up anything the staged
// pull-model would have bought.
func Render[Vtx any, VD VertexData[VD], Frag any, Pix any](
	pipeline Pipeline[Vtx, VD, Frag, Pix],
	assembler PrimitiveAssembler[VD],
	vertices []Vtx,
	pixel Target[Pix],
	depth Target[float32],
	opts RenderOptions,
) {
	pixelMode := pipeline.PixelMode()
	depthMode := pipeline.DepthMode()

	if !bool(pixelMode) && !depthMode.UsesDepth() {
		return
	}

	var targetW, targetH int
	if bool(pixelMode) {
		size := pixel.Size()
		if depthMode.UsesDepth() {
			dsize := depth.Size()
			if size[0] != dsize[0] || size[1] != dsize[1] {
				panic(fmt.Errorf("%w: pixel %v, depth %v", ErrSizeMismatch, size, dsize))
			}
		}
		targetW, targetH = size[0], size[1]
	} else {
		size := depth.Size()
		targetW, targetH = size[0], size[1]
	}
	if targetW == 0 || targetH == 0 {
		return
	}

	stream := collectVertexStream(pipeline, assembler, vertices)
	if len(stream) == 0 {
		return
	}

	mode := pipeline.CoordinateMode()
	cull := pipeline.CullMode()
	aa := pipeline.AaMode()

	workers := parallel.Workers(opts.Workers)
	msaaLevel := 0
	if aa.MSAA {
		msaaLevel = aa.Level
	}
	bandHeight := parallel.BandHeight(targetW, targetH, msaaLevel, workers)

	Logger().Debug("swrast render",
		"target_w", targetW, "target_h", targetH,
		"workers", workers, "band_height", bandHeight,
		"primitive_vertices", len(stream))

	shader := pipelineShader[Vtx, VD, Frag, Pix]{pipeline}

	parallel.Dispatch(targetH, bandHeight, workers, func(rowStart, rowEnd int) {
		bl := newBlitter[VD, Frag, Pix](shader, pixel, depth, depthMode, pixelMode, aa, targetW, rowEnd-rowStart)
		if assembler.IsTriangle() {
			for i := 0; i+3 <= len(stream); i += 3 {
				var tri [3]Vertex[VD]
				copy(tri[:], stream[i:i+3])
				rasterizeTriangle(tri, mode, cull, targetW, targetH, 0, rowStart, targetW, rowEnd, bl)
			}
		} else {
			for i := 0; i+2 <= len(stream); i += 2 {
				var ln [2]Vertex[VD]
				copy(ln[:], stream[i:i+2])
				rasterizeLine(ln, mode, targetW, targetH, 0, rowStart, targetW, rowEnd, bl)
			}
		}
	})
}

// pipelineShader adapts a Pipeline to the blitter's minimal
// fragmentBlender interface.
type pipelineShader[Vtx any, VD VertexData[VD], Frag any, Pix any] struct {
	p Pipeline[Vtx, VD, Frag, Pix]
}

func (s pipelineShader[Vtx, VD, Frag, Pix]) FragmentShader(vd VD) Frag {
	return s.p.FragmentShader(vd)
}

func (s pipelineShader[Vtx, VD, Frag, Pix]) BlendShader(old Pix, frag Frag) Pix {
	return s.p.BlendShader(old, frag)
}

// collectVertexStream runs the vertex shader over every input vertex,
// then the geometry shader over each collected group, draining the
// result into a single rasterizer-ready vertex slice. This is the "lazy
// stream... queuing outputs in a small FIFO" of §4.1 step 3, fully
// materialized up front per §5's parallel dispatch requirement.
func collectVertexStream[Vtx any, VD VertexData[VD], Frag any, Pix any](
	pipeline Pipeline[Vtx, VD, Frag, Pix],
	assembler PrimitiveAssembler[VD],
	vertices []Vtx,
) []Vertex[VD] {
	n := assembler.VertexCount()
	out := make([]Vertex[VD], 0, len(vertices))

	vi := 0
	nextShaded := func() (Vertex[VD], bool) {
		if vi >= len(vertices) {
			return Vertex[VD]{}, false
		}
		pos, data := pipeline.VertexShader(vertices[vi])
		vi++
		return Vertex[VD]{Pos: pos, Data: data}, true
	}

	group := make([]Vertex[VD], 0, n)
	for {
		group = group[:0]
		for len(group) < n {
			v, ok := nextShaded()
			if !ok {
				return out
			}
			group = append(group, v)
		}

		pipeline.GeometryShader(append([]Vertex[VD](nil), group...), func(emitted []Vertex[VD]) {
			assembler.Emit(emitted, func(v Vertex[VD]) {
				out = append(out, v)
			})
		})
	}
}
