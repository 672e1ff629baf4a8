package swrast

import "testing"

func TestRasterizeLineCoversEndpoints(t *testing.T) {
	const w, h = 32, 32
	bl, pixel, _ := newTestBlitter(w, h, DepthNone, AaNone, constShader{0xFFFFFFFF})

	ln := [2]Vertex[F32]{
		{Pos: ClipPos{-1, 0, 0, 1}},
		{Pos: ClipPos{1, 0, 0, 1}},
	}
	rasterizeLine(ln, DefaultCoordinateMode.WithoutZClip(), w, h, 0, 0, w, h, bl)

	covered := countCovered(pixel, 0xFFFFFFFF)
	if covered < w/2 {
		t.Errorf("expected a horizontal line spanning most of the width, got %d covered pixels", covered)
	}
}

func TestRasterizeLineRespectsTileBounds(t *testing.T) {
	const w, h = 32, 32
	bl, pixel, _ := newTestBlitter(w, h, DepthNone, AaNone, constShader{0xFFFFFFFF})

	ln := [2]Vertex[F32]{
		{Pos: ClipPos{-1, 0, 0, 1}},
		{Pos: ClipPos{1, 0, 0, 1}},
	}
	// Restrict rasterization to the left half of the tile only.
	rasterizeLine(ln, DefaultCoordinateMode.WithoutZClip(), w, h, 0, 0, w/2, h, bl)

	for x := w / 2; x < w; x++ {
		for y := 0; y < h; y++ {
			if pixel.Raw()[x+y*w] != 0 {
				t.Fatalf("pixel (%d,%d) outside tile bounds was written", x, y)
			}
		}
	}
}

func TestRasterizeLineInterpolatesAttribute(t *testing.T) {
	const w, h = 16, 16
	var captured []F32
	shader := capturingShader{fn: func(vd F32) uint32 {
		captured = append(captured, vd)
		return 0xFFFFFFFF
	}}
	pixel := NewBuffer2D(w, h, uint32(0))
	depth := NewBuffer2D(w, h, float32(1e30))
	bl := newBlitter[F32, uint32, uint32](shader, pixel, depth, DepthNone, PixelModeWrite, AaNone, w, h)

	ln := [2]Vertex[F32]{
		{Pos: ClipPos{-1, 0, 0, 1}, Data: 0},
		{Pos: ClipPos{1, 0, 0, 1}, Data: 100},
	}
	rasterizeLine(ln, DefaultCoordinateMode.WithoutZClip(), w, h, 0, 0, w, h, bl)

	if len(captured) < 2 {
		t.Fatal("expected fragment shader invoked along the line")
	}
	if captured[0] > captured[len(captured)-1] {
		t.Error("expected attribute to increase monotonically along the line")
	}
}

type capturingShader struct {
	fn func(F32) uint32
}

func (s capturingShader) FragmentShader(vd F32) uint32        { return s.fn(vd) }
func (s capturingShader) BlendShader(old, frag uint32) uint32 { return frag }
