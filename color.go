package swrast

import "github.com/gogpu/swrast/internal/color"

// ColorF32 is an RGBA color with float32 components in [0, 1],
// implementing VertexData[ColorF32] so it can be carried as a
// per-vertex attribute and interpolated directly.
type ColorF32 struct {
	R, G, B, A float32
}

func (c ColorF32) WeightedSum2(o ColorF32, w, wo float32) ColorF32 {
	return ColorF32{
		R: c.R*w + o.R*wo,
		G: c.G*w + o.G*wo,
		B: c.B*w + o.B*wo,
		A: c.A*w + o.A*wo,
	}
}

func (c ColorF32) WeightedSum3(v1, v2 ColorF32, w0, w1, w2 float32) ColorF32 {
	return ColorF32{
		R: c.R*w0 + v1.R*w1 + v2.R*w2,
		G: c.G*w0 + v1.G*w1 + v2.G*w2,
		B: c.B*w0 + v1.B*w1 + v2.B*w2,
		A: c.A*w0 + v1.A*w1 + v2.A*w2,
	}
}

// ToU8 packs c into a ColorU8, clamping and rounding each channel.
func (c ColorF32) ToU8() ColorU8 {
	return ColorU8{
		R: color.F32ToU8(c.R),
		G: color.F32ToU8(c.G),
		B: color.F32ToU8(c.B),
		A: color.F32ToU8(c.A),
	}
}

// ColorU8 is a byte-packed RGBA color, the common stored Pixel type. It
// does not implement VertexData: attribute interpolation should happen
// in float precision (ColorF32) and be packed to ColorU8 only in the
// fragment shader, since repeatedly rounding through uint8 during
// interpolation would compound quantization error.
type ColorU8 struct {
	R, G, B, A uint8
}

// ToF32 unpacks c into a ColorF32.
func (c ColorU8) ToF32() ColorF32 {
	return ColorF32{
		R: color.U8ToF32(c.R),
		G: color.U8ToF32(c.G),
		B: color.U8ToF32(c.B),
		A: color.U8ToF32(c.A),
	}
}

// Pack32 returns c as a single 0xRRGGBBAA uint32, the layout NewBuffer2D
// pixel targets commonly use.
func (c ColorU8) Pack32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// UnpackColorU8 reverses Pack32.
func UnpackColorU8(v uint32) ColorU8 {
	return ColorU8{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
