// Package renderer drives the path integrator over the image in
// parallel: the image is split into square tiles, a fixed worker pool
// renders them and the results are assembled into a shared framebuffer.
package renderer

// TileBounds is an inclusive pixel-space rectangle. Pixel y increases
// upward, matching the camera's viewport convention.
type TileBounds struct {
	XMin, YMin, XMax, YMax int
}

// Width returns the number of pixel columns covered
func (b TileBounds) Width() int {
	return b.XMax - b.XMin + 1
}

// Height returns the number of pixel rows covered
func (b TileBounds) Height() int {
	return b.YMax - b.YMin + 1
}

// TileCount returns how many tiles of the given size cover a dimension
func TileCount(dimension, tileSize int) int {
	return (dimension + tileSize - 1) / tileSize
}

// TileGrid partitions an image into square tiles clipped to the image
// bounds. The result covers every pixel exactly once.
func TileGrid(width, height, tileSize int) []TileBounds {
	tilesX := TileCount(width, tileSize)
	tilesY := TileCount(height, tileSize)

	tiles := make([]TileBounds, 0, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			bounds := TileBounds{
				XMin: tx * tileSize,
				YMin: ty * tileSize,
				XMax: (tx+1)*tileSize - 1,
				YMax: (ty+1)*tileSize - 1,
			}
			if bounds.XMax > width-1 {
				bounds.XMax = width - 1
			}
			if bounds.YMax > height-1 {
				bounds.YMax = height - 1
			}
			tiles = append(tiles, bounds)
		}
	}
	return tiles
}
