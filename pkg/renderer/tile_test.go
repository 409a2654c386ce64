package renderer

import "testing"

func TestTileCount(t *testing.T) {
	cases := []struct {
		dimension, tileSize, want int
	}{
		{100, 10, 10},
		{101, 10, 11},
		{99, 10, 10},
		{10, 64, 1},
		{64, 64, 1},
		{65, 64, 2},
	}
	for _, tc := range cases {
		if got := TileCount(tc.dimension, tc.tileSize); got != tc.want {
			t.Errorf("TileCount(%d, %d) = %d, want %d", tc.dimension, tc.tileSize, got, tc.want)
		}
	}
}

func TestTileGridCoversImageExactly(t *testing.T) {
	cases := []struct{ width, height, tileSize int }{
		{100, 80, 10},
		{101, 83, 16}, // non-divisible on both axes
		{1, 1, 64},
		{64, 64, 64},
		{65, 1, 64},
		{640, 480, 33},
	}

	for _, tc := range cases {
		tiles := TileGrid(tc.width, tc.height, tc.tileSize)

		covered := make([]int, tc.width*tc.height)
		for _, bounds := range tiles {
			if bounds.XMin < 0 || bounds.YMin < 0 ||
				bounds.XMax >= tc.width || bounds.YMax >= tc.height {
				t.Fatalf("%dx%d/%d: tile %v outside the image", tc.width, tc.height, tc.tileSize, bounds)
			}
			for y := bounds.YMin; y <= bounds.YMax; y++ {
				for x := bounds.XMin; x <= bounds.XMax; x++ {
					covered[y*tc.width+x]++
				}
			}
		}

		for i, n := range covered {
			if n != 1 {
				t.Fatalf("%dx%d/%d: pixel (%d, %d) covered %d times",
					tc.width, tc.height, tc.tileSize, i%tc.width, i/tc.width, n)
			}
		}
	}
}

func TestTileBoundsDimensions(t *testing.T) {
	bounds := TileBounds{XMin: 10, YMin: 20, XMax: 19, YMax: 24}
	if bounds.Width() != 10 {
		t.Errorf("Width = %d, want 10", bounds.Width())
	}
	if bounds.Height() != 5 {
		t.Errorf("Height = %d, want 5", bounds.Height())
	}
}

func TestTileGridClipsEdgeTiles(t *testing.T) {
	tiles := TileGrid(70, 50, 64)
	if len(tiles) != 2 {
		t.Fatalf("expected 2 tiles, got %d", len(tiles))
	}
	if tiles[0].Width() != 64 || tiles[0].Height() != 50 {
		t.Errorf("first tile = %v", tiles[0])
	}
	if tiles[1].Width() != 6 || tiles[1].Height() != 50 {
		t.Errorf("edge tile = %v", tiles[1])
	}
}
