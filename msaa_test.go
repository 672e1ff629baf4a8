package swrast

import "testing"

type aaPipeline struct {
	BasePipeline[F32]
	aa AaMode
}

func (p aaPipeline) VertexShader(v [4]float32) (ClipPos, F32) { return ClipPos(v), 0 }
func (aaPipeline) FragmentShader(F32) uint32                  { return 0xFF0000FF }
func (aaPipeline) BlendShader(old, frag uint32) uint32        { return DefaultBlend(old, frag) }
func (p aaPipeline) AaMode() AaMode                            { return p.aa }

func TestMSAALevelZeroMatchesAaNoneInteriorPixels(t *testing.T) {
	const w, h = 40, 40
	verts := [][4]float32{
		{-0.9, -0.9, 0, 1},
		{0.9, -0.9, 0, 1},
		{0, 0.9, 0, 1},
	}

	offPixel := NewBuffer2D(w, h, uint32(0))
	offDepth := NewBuffer2D(w, h, float32(1e30))
	Render[[4]float32, F32, uint32, uint32](aaPipeline{aa: AaNone}, TriangleList[F32]{}, verts, offPixel, offDepth, RenderOptions{Workers: 1})

	msaaPixel := NewBuffer2D(w, h, uint32(0))
	msaaDepth := NewBuffer2D(w, h, float32(1e30))
	Render[[4]float32, F32, uint32, uint32](aaPipeline{aa: MSAA(0)}, TriangleList[F32]{}, verts, msaaPixel, msaaDepth, RenderOptions{Workers: 1})

	// Compare only the strict interior (a small margin away from every
	// edge), since edge pixels may legitimately differ by sub-sample
	// cache bucketing even at level 0.
	cx, cy := w/2, h/3
	idx := cx + cy*w
	if offPixel.Raw()[idx] != msaaPixel.Raw()[idx] {
		t.Errorf("interior pixel differs: AaNone=%#x MSAA(0)=%#x", offPixel.Raw()[idx], msaaPixel.Raw()[idx])
	}
	if offPixel.Raw()[idx] != 0xFF0000FF {
		t.Fatal("expected interior pixel to be covered in both cases")
	}
}

func TestMSAACacheReusesWithinPrimitive(t *testing.T) {
	calls := 0
	cache := newMSAACache[int](8, 8, 1)
	compute := func() int { calls++; return 42 }

	a := cache.get(0, 0, 1, compute)
	b := cache.get(0, 0, 1, compute)
	if a != 42 || b != 42 {
		t.Fatalf("expected cached value 42, got %d %d", a, b)
	}
	if calls != 1 {
		t.Errorf("expected 1 compute call on cache hit, got %d", calls)
	}

	cache.get(0, 0, 2, compute) // different primitive id invalidates
	if calls != 2 {
		t.Errorf("expected cache miss on primitive id change, got %d calls", calls)
	}
}
