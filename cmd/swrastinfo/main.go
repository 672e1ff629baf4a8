// Command swrastinfo renders one of a few built-in scenes with swrast
// and writes the result to a PNG file, for manual visual sanity-checking
// during development.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/swrast"
)

func main() {
	scene := flag.String("scene", "triangle", "scene to render: triangle, overlap, wireframe")
	out := flag.String("out", "out.png", "output PNG path")
	width := flag.Int("width", 640, "framebuffer width")
	height := flag.Int("height", 480, "framebuffer height")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		swrast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	pixel := swrast.NewBuffer2D(*width, *height, uint32(0))

	switch *scene {
	case "triangle":
		renderTriangle(pixel, *width, *height)
	case "overlap":
		renderOverlap(pixel, *width, *height)
	case "wireframe":
		renderWireframe(pixel, *width, *height)
	default:
		fmt.Fprintf(os.Stderr, "unknown scene %q (want triangle, overlap, or wireframe)\n", *scene)
		os.Exit(1)
	}

	if err := writePNG(*out, pixel, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, "swrastinfo:", err)
		os.Exit(1)
	}
}

type colorPipeline struct {
	swrast.BasePipeline[swrast.ColorF32]
}

func (colorPipeline) VertexShader(v vertex) (swrast.ClipPos, swrast.ColorF32) {
	return v.pos, v.color
}

func (colorPipeline) FragmentShader(vd swrast.ColorF32) uint32 {
	return vd.ToU8().Pack32()
}

func (colorPipeline) BlendShader(old, frag uint32) uint32 {
	return swrast.DefaultBlend(old, frag)
}

type depthPipeline struct {
	colorPipeline
}

func (depthPipeline) DepthMode() swrast.DepthMode { return swrast.DepthLessWrite }

type vertex struct {
	pos   swrast.ClipPos
	color swrast.ColorF32
}

func renderTriangle(pixel *swrast.Buffer2D[uint32], w, h int) {
	verts := []vertex{
		{pos: swrast.ClipPos{-1, -1, 0, 1}, color: swrast.ColorF32{R: 1, A: 1}},
		{pos: swrast.ClipPos{1, -1, 0, 1}, color: swrast.ColorF32{G: 1, A: 1}},
		{pos: swrast.ClipPos{0, 1, 0, 1}, color: swrast.ColorF32{B: 1, A: 1}},
	}
	depth := swrast.NewBuffer2D(w, h, float32(1e30))
	swrast.Render[vertex, swrast.ColorF32, uint32, uint32](
		colorPipeline{}, swrast.TriangleList[swrast.ColorF32]{}, verts, pixel, depth, swrast.RenderOptions{})
}

func renderOverlap(pixel *swrast.Buffer2D[uint32], w, h int) {
	near := []vertex{
		{pos: swrast.ClipPos{-0.8, -0.8, 0.0, 1}, color: swrast.ColorF32{G: 1, A: 1}},
		{pos: swrast.ClipPos{0.8, -0.8, 0.0, 1}, color: swrast.ColorF32{G: 1, A: 1}},
		{pos: swrast.ClipPos{0, 0.8, 0.0, 1}, color: swrast.ColorF32{G: 1, A: 1}},
	}
	far := []vertex{
		{pos: swrast.ClipPos{-0.8, 0.8, 0.5, 1}, color: swrast.ColorF32{R: 1, A: 1}},
		{pos: swrast.ClipPos{0.8, 0.8, 0.5, 1}, color: swrast.ColorF32{R: 1, A: 1}},
		{pos: swrast.ClipPos{0, -0.8, 0.5, 1}, color: swrast.ColorF32{R: 1, A: 1}},
	}
	depth := swrast.NewBuffer2D(w, h, float32(1e30))
	swrast.Render[vertex, swrast.ColorF32, uint32, uint32](
		depthPipeline{}, swrast.TriangleList[swrast.ColorF32]{}, near, pixel, depth, swrast.RenderOptions{})
	swrast.Render[vertex, swrast.ColorF32, uint32, uint32](
		depthPipeline{}, swrast.TriangleList[swrast.ColorF32]{}, far, pixel, depth, swrast.RenderOptions{})
}

func renderWireframe(pixel *swrast.Buffer2D[uint32], w, h int) {
	verts := []vertex{
		{pos: swrast.ClipPos{-0.6, -0.6, 0, 1}, color: swrast.ColorF32{R: 1, G: 1, B: 1, A: 1}},
		{pos: swrast.ClipPos{0.6, -0.6, 0, 1}, color: swrast.ColorF32{R: 1, G: 1, B: 1, A: 1}},
		{pos: swrast.ClipPos{0, 0.6, 0, 1}, color: swrast.ColorF32{R: 1, G: 1, B: 1, A: 1}},
	}
	depth := swrast.NewBuffer2D(w, h, float32(1e30))
	swrast.Render[vertex, swrast.ColorF32, uint32, uint32](
		colorPipeline{}, swrast.LineTriangleList[swrast.ColorF32]{}, verts, pixel, depth, swrast.RenderOptions{})
}

func writePNG(path string, pixel *swrast.Buffer2D[uint32], w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := swrast.UnpackColorU8(pixel.ReadUnchecked([]int{x, y}))
			img.Set(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
