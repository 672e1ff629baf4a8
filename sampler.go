package swrast

import "github.com/chewxy/math32"

// AddressMode maps an out-of-[0,1] normalized coordinate back into range
// before a Sampler converts it to a texel index.
type AddressMode int

const (
	// AddressClamp saturates the coordinate to [0, 1].
	AddressClamp AddressMode = iota
	// AddressTile takes the fractional part of the coordinate, modulo 1.
	AddressTile
	// AddressMirror folds the coordinate back and forth at each integer
	// boundary, so 1.5 and -0.5 both map to 0.5.
	AddressMirror
)

func (m AddressMode) apply(u float32) float32 {
	switch m {
	case AddressTile:
		f := u - math32.Floor(u)
		if f < 0 {
			f += 1
		}
		return f
	case AddressMirror:
		f := math32.Abs(u)
		f -= 2 * math32.Floor(f/2)
		if f > 1 {
			f = 2 - f
		}
		return f
	default: // AddressClamp
		return math32.Max(0, math32.Min(1, u))
	}
}

// FilterMode selects how a Sampler reconstructs a continuous value from
// discrete texels.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// Sampler wraps a 2-D Texture with an address mode and filter, presenting
// a continuous-coordinate sampling interface. Texel must support
// WeightedSum2 so FilterLinear can blend neighboring texels; FilterNearest
// never invokes it.
type Sampler[Texel Lerpable[Texel]] struct {
	Texture  Texture[Texel]
	AddressU AddressMode
	AddressV AddressMode
	Filter   FilterMode
}

// NewSampler builds a Sampler with the given address mode applied
// uniformly on both axes.
func NewSampler[Texel Lerpable[Texel]](tex Texture[Texel], address AddressMode, filter FilterMode) *Sampler[Texel] {
	return &Sampler[Texel]{Texture: tex, AddressU: address, AddressV: address, Filter: filter}
}

// Sample returns the filtered texel at normalized coordinate (u, v).
// Per invariant 5, address-mode correction is applied before truncation
// to integer texel indices, so the result never indexes outside the
// underlying texture.
func (s *Sampler[Texel]) Sample(u, v float32) Texel {
	u = s.AddressU.apply(u)
	v = s.AddressV.apply(v)

	size := s.Texture.Size()
	w, h := size[0], size[1]

	switch s.Filter {
	case FilterLinear:
		return s.sampleLinear(u, v, w, h)
	default:
		return s.sampleNearest(u, v, w, h)
	}
}

func (s *Sampler[Texel]) sampleNearest(u, v float32, w, h int) Texel {
	x := clampIndex(int(u*float32(w)), w)
	y := clampIndex(int(v*float32(h)), h)
	return s.Texture.ReadUnchecked([]int{x, y})
}

// sampleLinear implements bilinear filtering: the denormalized coordinate
// is shifted by half a texel (so texel centers sit at integer positions),
// its integer part selects the base texel, and the fractional part
// weights a 2x2 blend against the (+1,+1) neighbor (clamped to the last
// row/column). Interpolation order matches the reference sampler this
// was derived from: each column is blended along y first, then the two
// column results are blended along x.
func (s *Sampler[Texel]) sampleLinear(u, v float32, w, h int) Texel {
	fx := u*float32(w) - 0.5
	fy := v*float32(h) - 0.5

	x0f := math32.Floor(fx)
	y0f := math32.Floor(fy)
	fracX := fx - x0f
	fracY := fy - y0f

	x0 := clampIndex(int(x0f), w)
	x1 := clampIndex(int(x0f)+1, w)
	y0 := clampIndex(int(y0f), h)
	y1 := clampIndex(int(y0f)+1, h)

	t00 := s.Texture.ReadUnchecked([]int{x0, y0})
	t01 := s.Texture.ReadUnchecked([]int{x0, y1})
	t10 := s.Texture.ReadUnchecked([]int{x1, y0})
	t11 := s.Texture.ReadUnchecked([]int{x1, y1})

	col0 := t00.WeightedSum2(t01, 1-fracY, fracY)
	col1 := t10.WeightedSum2(t11, 1-fracY, fracY)
	return col0.WeightedSum2(col1, 1-fracX, fracX)
}

func clampIndex(i, size int) int {
	if size <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
