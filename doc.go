// Package swrast implements a software (CPU) 3D rasterization pipeline: a
// generic, programmable, fixed-function-style renderer that consumes a
// stream of application-defined vertices and writes shaded pixels and
// depths into in-memory 2D buffers.
//
// swrast has no dependency on a graphics API, a window system, or a model
// file format. Applications provide a Pipeline implementation, a stream of
// vertices, and a pixel and/or depth Target; swrast handles clipping,
// culling, perspective-correct barycentric rasterization, depth testing,
// MSAA resolve, and parallel tile dispatch.
package swrast
