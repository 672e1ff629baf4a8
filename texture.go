package swrast

// Texture is a read-only, randomly addressable N-dimensional store of
// texels. Index is a slice of length N; implementations may panic or
// return unspecified data for an out-of-bounds Read, but must not invoke
// undefined behavior (see ReadUnchecked for the unchecked counterpart).
type Texture[Texel any] interface {
	// Size reports the texture's extent along each axis.
	Size() []int

	// PreferredAxes reports the axis order, fastest-varying first, that
	// this texture prefers callers iterate in for cache locality. A nil
	// return means no preference; most 2-D textures prefer [0, 1] (x
	// before y), matching row-major storage.
	PreferredAxes() []int

	// Read returns the texel at index. Behavior for an out-of-bounds
	// index is unspecified but not unsafe: implementations may panic,
	// clamp, or return a zero value.
	Read(index []int) Texel

	// ReadUnchecked returns the texel at an assumed-valid index. Behavior
	// is undefined if index is out of bounds; callers must have already
	// validated it.
	ReadUnchecked(index []int) Texel
}

// Empty is an always-empty Texture and Target, useful as a placeholder
// for an unused pixel or depth target (e.g. a depth-only prepass that
// never writes color).
type Empty[Texel any] struct{}

func (Empty[Texel]) Size() []int { return []int{0, 0} }

func (Empty[Texel]) PreferredAxes() []int { return nil }

func (Empty[Texel]) Read(index []int) Texel {
	panic(ErrEmptyTexture)
}

func (Empty[Texel]) ReadUnchecked(index []int) Texel {
	var zero Texel
	return zero
}

func (Empty[Texel]) ReadExclusiveUnchecked(x, y int) Texel {
	var zero Texel
	return zero
}

func (Empty[Texel]) WriteExclusiveUnchecked(x, y int, texel Texel) {}

func (e *Empty[Texel]) WriteUnchecked(x, y int, texel Texel) {}

func (e *Empty[Texel]) Write(x, y int, texel Texel) {}

func (e *Empty[Texel]) Clear(texel Texel) {}
