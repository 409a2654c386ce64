package renderer

import (
	"image"
	"math"
	"sync"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// Framebuffer is the shared destination image. Workers copy completed
// tiles into it under a mutex; each tile writes a disjoint pixel range,
// so the final image is deterministic regardless of completion order.
//
// Pixel y increases upward in tile space but downward in the stored
// RGBA buffer, so rows are flipped on write.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	pixels []byte // RGBA rows, top to bottom
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*4),
	}
}

// Width returns the framebuffer width in pixels
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels
func (f *Framebuffer) Height() int { return f.height }

// WriteTile copies a tile's RGBA rows into the framebuffer. The tile
// buffer holds rows bottom to top starting at the tile's YMin.
func (f *Framebuffer) WriteTile(bounds TileBounds, rgba []byte) {
	rowBytes := bounds.Width() * 4

	f.mu.Lock()
	defer f.mu.Unlock()

	for ty := 0; ty < bounds.Height(); ty++ {
		destY := f.height - 1 - (bounds.YMin + ty)
		destOffset := (destY*f.width + bounds.XMin) * 4
		copy(f.pixels[destOffset:destOffset+rowBytes], rgba[ty*rowBytes:(ty+1)*rowBytes])
	}
}

// Snapshot returns a copy of the current pixel data
func (f *Framebuffer) Snapshot() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]byte, len(f.pixels))
	copy(out, f.pixels)
	return out
}

// Image returns the framebuffer contents as an image
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.Snapshot())
	return img
}

// ColourToRGBA converts an accumulated sample sum to an output pixel:
// average over the sample count, gamma correct with a square root and
// clamp below 1 so fireflies cannot overflow the colour range.
func ColourToRGBA(colour core.Vec3, samplesPerPixel int) (r, g, b, a byte) {
	scale := 1.0 / float64(samplesPerPixel)
	return colourComponent(colour.X * scale),
		colourComponent(colour.Y * scale),
		colourComponent(colour.Z * scale),
		255
}

func colourComponent(c float64) byte {
	c = math.Sqrt(c)
	if c < 0 {
		c = 0
	}
	if c > 0.999 {
		c = 0.999
	}
	return byte(256 * c)
}
