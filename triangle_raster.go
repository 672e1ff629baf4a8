package swrast

import (
	"github.com/gogpu/swrast/internal/vecmath"
)

const triangleEpsilon = 1e-4

// rasterizeTriangle implements §4.3: perspective-correct barycentric
// triangle rasterization with winding cull, a numerically guarded
// coords_to_weights construction, an optional row-bounds optimization for
// larger triangles, and a branch that skips the per-pixel z-clip test
// when every vertex already passes it.
func rasterizeTriangle[VD VertexData[VD], Frag any, Pix any](
	tri [3]Vertex[VD],
	mode CoordinateMode,
	cull CullMode,
	targetW, targetH int,
	tileMinX, tileMinY, tileMaxX, tileMaxY int,
	bl *blitter[VD, Frag, Pix],
) {
	bl.beginPrimitive()

	yFlip := float32(1)
	if mode.YAxisDirection == YAxisDown {
		yFlip = -1
	}

	var clip [3]ClipPos
	for i, v := range tri {
		p := v.Pos
		clip[i] = ClipPos{p.X(), p.Y() * yFlip, p.Z(), p.W()}
	}

	var euc [3]vecmath.Vec3 // (x/w, y/w, z/w)
	for i, c := range clip {
		w := vecmath.Max(c.W(), triangleEpsilon)
		euc[i] = vecmath.Vec3{X: c.X() / w, Y: c.Y() / w, Z: c.Z() / w}
	}

	// Winding: z-component of the screen-space cross product of two edges.
	e1x, e1y := euc[1].X-euc[0].X, euc[1].Y-euc[0].Y
	e2x, e2y := euc[2].X-euc[0].X, euc[2].Y-euc[0].Y
	winding := e1x*e2y - e1y*e2x

	switch cull {
	case CullBack:
		if winding > 0 {
			return
		}
	case CullFront:
		if winding < 0 {
			return
		}
	}

	data := [3]VD{tri[0].Data, tri[1].Data, tri[2].Data}
	if winding > 0 {
		clip[1], clip[2] = clip[2], clip[1]
		euc[1], euc[2] = euc[2], euc[1]
		data[1], data[2] = data[2], data[1]
	}

	// coords_to_weights: build the barycentric-row matrix from homogeneous
	// (post-flip, pre-divide) clip coordinates, then compose with the
	// pixel -> NDC matrix so the result accepts pixel-space input.
	c := vecmath.Vec3{X: clip[2].X(), Y: clip[2].Y(), Z: clip[2].W()}
	ca := vecmath.Vec3{X: clip[0].X(), Y: clip[0].Y(), Z: clip[0].W()}.Sub(c)
	cb := vecmath.Vec3{X: clip[1].X(), Y: clip[1].Y(), Z: clip[1].W()}.Sub(c)
	n := ca.Cross(cb)

	recDet := float32(1)
	if n.LenSq() > 0 {
		recDet = 1 / vecmath.Min(n.Dot(c), -triangleEpsilon)
	}

	rowsMatrix := vecmath.Mat3{Rows: [3]vecmath.Vec3{
		cb.Cross(c).Scale(recDet),
		c.Cross(ca).Scale(recDet),
		n.Scale(recDet),
	}}
	coordsToWeights := rowsMatrix.Mul(vecmath.PixelToNDC(float32(targetW), float32(targetH)))
	if !coordsToWeights.Finite() {
		return
	}

	ndcToPixel := vecmath.NDCToPixel(float32(targetW), float32(targetH))
	var px, py [3]float32
	for i := range euc {
		p := ndcToPixel.Apply(euc[i].X, euc[i].Y)
		px[i], py[i] = p.X, p.Y
	}

	minX, maxX := minOf3(px), maxOf3(px)
	minY, maxY := minOf3(py), maxOf3(py)

	ix0 := clampInt(int(floor32(minX)), tileMinX, tileMaxX)
	ix1 := clampInt(int(ceil32(maxX)), tileMinX, tileMaxX)
	iy0 := clampInt(int(floor32(minY)), tileMinY, tileMaxY)
	iy1 := clampInt(int(ceil32(maxY)), tileMinY, tileMaxY)
	if ix0 >= ix1 || iy0 >= iy1 {
		return
	}

	area := (ix1 - ix0) * (iy1 - iy0)
	useRowBounds := area > 128

	allInZClip := true
	if mode.ZClipRange.HasRange {
		for i := range euc {
			if euc[i].Z < mode.ZClipRange.Min || euc[i].Z > mode.ZClipRange.Max {
				allInZClip = false
				break
			}
		}
	}

	weightAt := func(xf, yf float32) (w0, w1, wh float32) {
		w := coordsToWeights.Apply(xf, yf)
		return w.X, w.Y, w.Z
	}

	getVData := func(xf, yf float32) VD {
		w0, w1, wh := weightAt(xf, yf)
		a, b := w0/wh, w1/wh
		return data[0].WeightedSum3(data[1], data[2], a, b, 1-a-b)
	}

	for y := iy0; y < iy1; y++ {
		rowX0, rowX1 := ix0, ix1
		if useRowBounds {
			rowX0, rowX1 = rowXExtent(px, py, y, ix0, ix1)
			if rowX0 >= rowX1 {
				continue
			}
		}
		for x := rowX0; x < rowX1; x++ {
			xf, yf := float32(x)+0.5, float32(y)+0.5
			w0, w1, wh := weightAt(xf, yf)
			w2 := wh - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			a, b := w0/wh, w1/wh
			z := euc[0].Z*a + euc[1].Z*b + euc[2].Z*(1-a-b)

			if !allInZClip && mode.ZClipRange.HasRange {
				if z < mode.ZClipRange.Min || z > mode.ZClipRange.Max {
					continue
				}
			}

			if !bl.testFragment(x, y, z) {
				continue
			}
			bl.emitFragment(x, y, tileMinX, tileMinY, getVData, z)
		}
	}
}

// rowXExtent solves the triangle's three screen-space edges for the pixel
// x-span covering the given row y, restricting the full bounding-box
// sweep to the triangle's actual horizontal extent at that row.
func rowXExtent(px, py [3]float32, y, fallbackMin, fallbackMax int) (int, int) {
	yf := float32(y) + 0.5
	minX, maxX := float32(1e30), float32(-1e30)
	found := false
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		y0, y1 := py[i], py[j]
		if (y0 <= yf && y1 > yf) || (y1 <= yf && y0 > yf) {
			t := (yf - y0) / (y1 - y0)
			x := px[i] + t*(px[j]-px[i])
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			found = true
		}
	}
	if !found {
		return fallbackMin, fallbackMax
	}
	x0 := clampInt(int(floor32(minX)), fallbackMin, fallbackMax)
	x1 := clampInt(int(ceil32(maxX)), fallbackMin, fallbackMax)
	return x0, x1
}

func minOf3(v [3]float32) float32 {
	m := v[0]
	if v[1] < m {
		m = v[1]
	}
	if v[2] < m {
		m = v[2]
	}
	return m
}

func maxOf3(v [3]float32) float32 {
	m := v[0]
	if v[1] > m {
		m = v[1]
	}
	if v[2] > m {
		m = v[2]
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floor32(f float32) float32 {
	i := float32(int(f))
	if f < i {
		i -= 1
	}
	return i
}

func ceil32(f float32) float32 {
	i := float32(int(f))
	if f > i {
		i += 1
	}
	return i
}
