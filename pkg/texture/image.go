package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// Image samples colours from a decoded image by surface coordinates.
// V increases upward, so rows are flipped on lookup.
type Image struct {
	img    image.Image
	width  int
	height int
}

// NewImage creates a texture from an already decoded image
func NewImage(img image.Image) *Image {
	bounds := img.Bounds()
	return &Image{
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// LoadImage reads and decodes an image file into a texture
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return NewImage(img), nil
}

// Value returns the pixel colour at the clamped surface coordinates
func (t *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	u = clamp01(u)
	v = 1 - clamp01(v)

	x := int(u * float64(t.width))
	y := int(v * float64(t.height))
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}

	bounds := t.img.Bounds()
	r, g, b, _ := t.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	const scale = 1.0 / 65535.0
	return core.NewVec3(float64(r)*scale, float64(g)*scale, float64(b)*scale)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
