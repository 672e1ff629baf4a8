package swrast

// ClipPos is a homogeneous clip-space position produced by a Pipeline's
// vertex stage: (x, y, z, w). Perspective divide happens in the
// rasterizer, not here.
type ClipPos [4]float32

// X, Y, Z, W are convenience accessors.
func (c ClipPos) X() float32 { return c[0] }
func (c ClipPos) Y() float32 { return c[1] }
func (c ClipPos) Z() float32 { return c[2] }
func (c ClipPos) W() float32 { return c[3] }
