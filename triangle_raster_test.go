package swrast

import "testing"

type constShader struct{ color uint32 }

func (s constShader) FragmentShader(vd F32) uint32        { return s.color }
func (s constShader) BlendShader(old, frag uint32) uint32 { return frag }

func newTestBlitter(width, height int, depthMode DepthMode, aa AaMode, shader fragmentBlender[F32, uint32, uint32]) (*blitter[F32, uint32, uint32], *Buffer2D[uint32], *Buffer2D[float32]) {
	pixel := NewBuffer2D(width, height, uint32(0))
	depth := NewBuffer2D(width, height, float32(1e30))
	bl := newBlitter[F32, uint32, uint32](shader, pixel, depth, depthMode, PixelModeWrite, aa, width, height)
	return bl, pixel, depth
}

func countCovered(pixel *Buffer2D[uint32], color uint32) int {
	n := 0
	for _, v := range pixel.Raw() {
		if v == color {
			n++
		}
	}
	return n
}

func TestRasterizeTriangleCoversInterior(t *testing.T) {
	const w, h = 64, 64
	bl, pixel, _ := newTestBlitter(w, h, DepthNone, AaNone, constShader{0xFF0000FF})

	tri := [3]Vertex[F32]{
		{Pos: ClipPos{-1, -1, 0, 1}},
		{Pos: ClipPos{1, -1, 0, 1}},
		{Pos: ClipPos{0, 1, 0, 1}},
	}
	rasterizeTriangle(tri, DefaultCoordinateMode.WithoutZClip(), CullNone, w, h, 0, 0, w, h, bl)

	covered := countCovered(pixel, 0xFF0000FF)
	if covered == 0 {
		t.Fatal("expected some pixels covered by the triangle")
	}
	// A full-NDC triangle roughly halves the framebuffer (it's a
	// full-width-base, full-height triangle): expect a sizeable but not
	// total fraction covered.
	total := w * h
	if covered >= total || covered < total/8 {
		t.Errorf("covered %d of %d pixels, expected a partial but substantial fraction", covered, total)
	}

	// center of the framebuffer should be inside the triangle.
	cx, cy := w/2, h/2
	idx := cx + cy*w
	if pixel.Raw()[idx] != 0xFF0000FF {
		t.Error("expected framebuffer center to be covered by the triangle")
	}
}

func TestRasterizeTriangleOutsideCornerUntouched(t *testing.T) {
	const w, h = 64, 64
	bl, pixel, _ := newTestBlitter(w, h, DepthNone, AaNone, constShader{0xFF0000FF})

	tri := [3]Vertex[F32]{
		{Pos: ClipPos{-1, -1, 0, 1}},
		{Pos: ClipPos{1, -1, 0, 1}},
		{Pos: ClipPos{0, 1, 0, 1}},
	}
	rasterizeTriangle(tri, DefaultCoordinateMode.WithoutZClip(), CullNone, w, h, 0, 0, w, h, bl)

	// The four pixel-grid corners cannot all be inside a triangle
	// inscribed within the NDC square; at least one must remain clear.
	corners := []int{0, w - 1, (h - 1) * w, (h-1)*w + w - 1}
	clear := false
	for _, idx := range corners {
		if pixel.Raw()[idx] == 0 {
			clear = true
		}
	}
	if !clear {
		t.Error("expected at least one framebuffer corner outside the triangle")
	}
}

func TestRasterizeTriangleBackfaceCull(t *testing.T) {
	const w, h = 32, 32
	tri := [3]Vertex[F32]{
		{Pos: ClipPos{-1, -1, 0, 1}},
		{Pos: ClipPos{1, -1, 0, 1}},
		{Pos: ClipPos{0, 1, 0, 1}},
	}
	reversed := [3]Vertex[F32]{tri[0], tri[2], tri[1]}

	blFront, pxFront, _ := newTestBlitter(w, h, DepthNone, AaNone, constShader{0xFF0000FF})
	rasterizeTriangle(tri, DefaultCoordinateMode.WithoutZClip(), CullBack, w, h, 0, 0, w, h, blFront)
	frontCount := countCovered(pxFront, 0xFF0000FF)

	blBack, pxBack, _ := newTestBlitter(w, h, DepthNone, AaNone, constShader{0xFF0000FF})
	rasterizeTriangle(reversed, DefaultCoordinateMode.WithoutZClip(), CullBack, w, h, 0, 0, w, h, blBack)
	backCount := countCovered(pxBack, 0xFF0000FF)

	if frontCount == 0 {
		t.Fatal("expected front-facing triangle to be rasterized")
	}
	if backCount != 0 {
		t.Errorf("expected back-facing triangle to be fully culled, got %d pixels", backCount)
	}
}

func TestRasterizeTriangleDepthOcclusion(t *testing.T) {
	const w, h = 16, 16
	near := [3]Vertex[F32]{
		{Pos: ClipPos{-1, -1, 0.0, 1}},
		{Pos: ClipPos{1, -1, 0.0, 1}},
		{Pos: ClipPos{0, 1, 0.0, 1}},
	}
	far := [3]Vertex[F32]{
		{Pos: ClipPos{-1, -1, 0.5, 1}},
		{Pos: ClipPos{1, -1, 0.5, 1}},
		{Pos: ClipPos{0, 1, 0.5, 1}},
	}

	nearShader := constShader{0x00FF00FF}
	farShader := constShader{0xFF0000FF}

	pixel := NewBuffer2D(w, h, uint32(0))
	depth := NewBuffer2D(w, h, float32(1e30))

	blNear := newBlitter[F32, uint32, uint32](nearShader, pixel, depth, DepthLessWrite, PixelModeWrite, AaNone, w, h)
	rasterizeTriangle(near, DefaultCoordinateMode.WithoutZClip(), CullNone, w, h, 0, 0, w, h, blNear)

	blFar := newBlitter[F32, uint32, uint32](farShader, pixel, depth, DepthLessWrite, PixelModeWrite, AaNone, w, h)
	rasterizeTriangle(far, DefaultCoordinateMode.WithoutZClip(), CullNone, w, h, 0, 0, w, h, blFar)

	cx, cy := w/2, h/2
	idx := cx + cy*w
	if pixel.Raw()[idx] != 0x00FF00FF {
		t.Errorf("expected near triangle's color to survive depth test, got %#x", pixel.Raw()[idx])
	}
	if depth.Raw()[idx] != 0 {
		t.Errorf("expected stored depth to be the near triangle's 0.0, got %v", depth.Raw()[idx])
	}
}
