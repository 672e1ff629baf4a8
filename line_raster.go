package swrast

import (
	"github.com/gogpu/swrast/internal/clip"
	"github.com/gogpu/swrast/internal/vecmath"
)

// rasterizeLine implements §4.4: a screen-linear (not perspective-correct)
// line rasterizer. Both endpoints are shaded, clipped to the tile bounds,
// then walked pixel-by-pixel along whichever screen axis has the greater
// extent, interpolating z and attributes linearly in screen space.
func rasterizeLine[VD VertexData[VD], Frag any, Pix any](
	ln [2]Vertex[VD],
	mode CoordinateMode,
	targetW, targetH int,
	tileMinX, tileMinY, tileMaxX, tileMaxY int,
	bl *blitter[VD, Frag, Pix],
) {
	bl.beginPrimitive()

	yFlip := float32(1)
	if mode.YAxisDirection == YAxisDown {
		yFlip = -1
	}

	var clipPos [2]ClipPos
	var euc [2][3]float32 // x, y, z in euclidean (post-divide) space
	for i, v := range ln {
		p := v.Pos
		clipPos[i] = ClipPos{p.X(), p.Y() * yFlip, p.Z(), p.W()}
		w := maxF32(clipPos[i].W(), triangleEpsilon)
		euc[i] = [3]float32{clipPos[i].X() / w, clipPos[i].Y() / w, clipPos[i].Z() / w}
	}

	ndcToPixel := vecmath.NDCToPixel(float32(targetW), float32(targetH))
	p0 := ndcToPixel.Apply(euc[0][0], euc[0][1])
	p1 := ndcToPixel.Apply(euc[1][0], euc[1][1])
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	rect := clip.Rect{
		MinX: float32(tileMinX), MinY: float32(tileMinY),
		MaxX: float32(tileMaxX), MaxY: float32(tileMaxY),
	}
	c0, c1, t0, t1, ok := clip.Line(rect, clip.Point{X: x0, Y: y0}, clip.Point{X: x1, Y: y1})
	if !ok {
		return
	}

	data := [2]VD{ln[0].Data, ln[1].Data}

	dx, dy := c1.X-c0.X, c1.Y-c0.Y
	steps := int(maxF32(absF32(dx), absF32(dy)))
	if steps < 1 {
		steps = 1
	}

	for s := 0; s <= steps; s++ {
		frac := float32(s) / float32(steps)
		xf := c0.X + dx*frac
		yf := c0.Y + dy*frac
		x, y := int(xf), int(yf)
		if x < tileMinX || x >= tileMaxX || y < tileMinY || y >= tileMaxY {
			continue
		}

		t := t0 + (t1-t0)*frac
		z := euc[0][2] + (euc[1][2]-euc[0][2])*t

		if mode.ZClipRange.HasRange && (z < mode.ZClipRange.Min || z > mode.ZClipRange.Max) {
			continue
		}
		if !bl.testFragment(x, y, z) {
			continue
		}

		getVData := func(xf, yf float32) VD {
			tt := t0 + (t1-t0)*lineParamAt(c0, c1, xf, yf)
			return data[0].WeightedSum2(data[1], 1-tt, tt)
		}
		bl.emitFragment(x, y, tileMinX, tileMinY, getVData, z)
	}
}

// lineParamAt projects (xf, yf) onto the clipped segment c0-c1 and
// returns the fractional position along it, used to recompute
// interpolation weights at a fragment's exact sub-pixel position.
func lineParamAt(c0, c1 clip.Point, xf, yf float32) float32 {
	dx, dy := c1.X-c0.X, c1.Y-c0.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	return ((xf-c0.X)*dx + (yf-c0.Y)*dy) / lenSq
}

func absF32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
