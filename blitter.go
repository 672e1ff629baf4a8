package swrast

// fragmentBlender is the minimal subset of Pipeline the blitter needs.
// Any Pipeline[Vtx, VD, Frag, Pix] satisfies this automatically, since Go
// interfaces are structural.
type fragmentBlender[VD any, Frag any, Pix any] interface {
	FragmentShader(vd VD) Frag
	BlendShader(old Pix, frag Frag) Pix
}

// blitter adapts a rasterizer's fragment emission to a Pipeline's
// fragment/blend stages and to the pixel/depth targets, per §4.5. One
// blitter is created per parallel render band (see render.go); its MSAA
// cache is therefore band-local, which sacrifices some cross-band cache
// reuse at band boundaries in exchange for never sharing mutable cache
// state across goroutines.
type blitter[VD any, Frag any, Pix any] struct {
	shader    fragmentBlender[VD, Frag, Pix]
	pixel     Target[Pix]
	depth     Target[float32]
	depthMode DepthMode
	pixelMode PixelMode
	aaMode    AaMode

	primID int
	msaa   *msaaCache[Frag]
	// msaaBlend is non-nil only when Frag implements Lerpable[Frag]; MSAA
	// blending is silently downgraded to a single center sample when the
	// pipeline's fragment type does not support weighted sums, since
	// there is no general way to average an arbitrary Frag.
	msaaBlend func(a, b Frag, wa, wb float32) Frag
}

func newBlitter[VD any, Frag any, Pix any](
	shader fragmentBlender[VD, Frag, Pix],
	pixel Target[Pix],
	depth Target[float32],
	depthMode DepthMode,
	pixelMode PixelMode,
	aaMode AaMode,
	bandWidth, bandHeight int,
) *blitter[VD, Frag, Pix] {
	b := &blitter[VD, Frag, Pix]{
		shader:    shader,
		pixel:     pixel,
		depth:     depth,
		depthMode: depthMode,
		pixelMode: pixelMode,
		aaMode:    aaMode,
	}
	if aaMode.MSAA {
		var zero Frag
		if lerp, ok := any(zero).(Lerpable[Frag]); ok {
			_ = lerp
			b.msaaBlend = func(a, bb Frag, wa, wb float32) Frag {
				return any(a).(Lerpable[Frag]).WeightedSum2(bb, wa, wb)
			}
			b.msaa = newMSAACache[Frag](bandWidth, bandHeight, aaMode.Level)
		}
	}
	return b
}

// beginPrimitive marks the start of a new primitive's fragments, which
// invalidates (lazily) any MSAA cache entries tagged with older
// primitive ids.
func (b *blitter[VD, Frag, Pix]) beginPrimitive() {
	b.primID++
}

// testFragment applies the depth test, if any, at the assumed-exclusive
// index (x, y).
func (b *blitter[VD, Frag, Pix]) testFragment(x, y int, z float32) bool {
	if !b.depthMode.HasTest {
		return true
	}
	old := b.depth.ReadExclusiveUnchecked(x, y)
	switch b.depthMode.Test {
	case DepthLess:
		return z < old
	case DepthGreater:
		return z > old
	default:
		return true
	}
}

// emitFragment writes depth (if configured) and shades and writes the
// pixel (if configured), resolving MSAA sub-samples when active.
// getVData recomputes the interpolated attribute record at any float
// pixel coordinate (xf, yf); originX/originY are the band's tile origin,
// needed to translate global pixel coordinates into the band-local MSAA
// cache's coordinate space.
func (b *blitter[VD, Frag, Pix]) emitFragment(
	x, y, originX, originY int,
	getVData func(xf, yf float32) VD,
	z float32,
) {
	if b.depthMode.Write {
		b.depth.WriteExclusiveUnchecked(x, y, z)
	}
	if !bool(b.pixelMode) {
		return
	}

	var frag Frag
	if b.msaa != nil && b.msaaBlend != nil {
		frag = b.resolveMSAA(x, y, originX, originY, getVData)
	} else {
		frag = b.shader.FragmentShader(getVData(float32(x)+0.5, float32(y)+0.5))
	}

	old := b.pixel.ReadExclusiveUnchecked(x, y)
	blended := b.shader.BlendShader(old, frag)
	b.pixel.WriteExclusiveUnchecked(x, y, blended)
}

// resolveMSAA blends the four sub-sample cache corners surrounding pixel
// (x, y) via two 1-D lerps, matching the bilinear combine described in
// §4.5.
func (b *blitter[VD, Frag, Pix]) resolveMSAA(x, y, originX, originY int, getVData func(xf, yf float32) VD) Frag {
	level := b.aaMode.Level
	cellSize := 1 << uint(level)

	localX, localY := x-originX, y-originY
	cgx := localX >> uint(level)
	cgy := localY >> uint(level)

	fracX := float32(localX-cgx*cellSize) / float32(cellSize)
	fracY := float32(localY-cgy*cellSize) / float32(cellSize)

	sample := func(ci, cj int) Frag {
		return b.msaa.get(ci, cj, b.primID, func() Frag {
			gx := originX + ci*cellSize
			gy := originY + cj*cellSize
			return b.shader.FragmentShader(getVData(float32(gx)+0.5, float32(gy)+0.5))
		})
	}

	t00 := sample(cgx, cgy)
	t10 := sample(cgx+1, cgy)
	t01 := sample(cgx, cgy+1)
	t11 := sample(cgx+1, cgy+1)

	col0 := b.msaaBlend(t00, t01, 1-fracY, fracY)
	col1 := b.msaaBlend(t10, t11, 1-fracY, fracY)
	return b.msaaBlend(col0, col1, 1-fracX, fracX)
}
