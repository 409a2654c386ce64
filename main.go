package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/hackmad/raytracing-series/pkg/core"
	"github.com/hackmad/raytracing-series/pkg/preview"
	"github.com/hackmad/raytracing-series/pkg/renderer"
	"github.com/hackmad/raytracing-series/pkg/scene"
	"github.com/hackmad/raytracing-series/web/server"
)

func main() {
	var (
		width     = flag.Int("width", 600, "image width in pixels")
		height    = flag.Int("height", 600, "image height in pixels")
		samples   = flag.Int("samples", 100, "samples per pixel")
		depth     = flag.Int("depth", 50, "maximum ray bounce depth")
		sceneName = flag.String("scene", "cornell-box",
			fmt.Sprintf("scene to render (%s)", strings.Join(scene.Names(), ", ")))
		useBVH   = flag.Bool("bvh", true, "accelerate with a bounding volume hierarchy")
		seed     = flag.Int64("seed", 42, "random seed for reproducible renders")
		out      = flag.String("out", "render.png", "output PNG path")
		threads  = flag.Int("threads", 0, "worker count (0 = number of CPUs)")
		tileSize = flag.Int("tile-size", 64, "square tile edge in pixels")
		gui      = flag.Bool("gui", false, "show a live preview window")
		serve    = flag.Bool("serve", false, "run as a websocket render server")
		port     = flag.Int("port", 8080, "server port when using -serve")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	opts := renderer.Options{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		TileSize:        *tileSize,
		Threads:         *threads,
		Seed:            *seed,
	}

	if *serve {
		srv := server.New(opts, logger)
		if err := srv.ListenAndServe(server.Addr(*port)); err != nil {
			logger.Printf("server failed: %v", err)
			os.Exit(1)
		}
		return
	}

	sc, err := scene.New(*sceneName, float64(*width)/float64(*height), *useBVH,
		core.NewSeededSampler(*seed))
	if err != nil {
		logger.Printf("%v", err)
		os.Exit(1)
	}

	rend := renderer.New(opts, logger)

	if *gui {
		runWithPreview(rend, sc, opts, *sceneName, *out, logger)
		return
	}

	img, err := rend.Render(sc)
	if err != nil {
		logger.Printf("render failed: %v", err)
		os.Exit(1)
	}
	if err := savePNG(img, *out); err != nil {
		logger.Printf("%v", err)
		os.Exit(1)
	}
	logger.Printf("wrote %s", *out)
}

// runWithPreview renders in the background while the preview window
// owns the main goroutine, as the windowing library requires.
func runWithPreview(rend *renderer.Renderer, sc *scene.Scene, opts renderer.Options, title, out string, logger *log.Logger) {
	win := preview.New(opts.Width, opts.Height)
	rend.OnTile(win.UpdateTile)

	go func() {
		img, err := rend.Render(sc)
		if err != nil {
			logger.Printf("render failed: %v", err)
			return
		}
		if err := savePNG(img, out); err != nil {
			logger.Printf("%v", err)
			return
		}
		logger.Printf("wrote %s", out)
	}()

	if err := win.Run("raytracer - " + title); err != nil {
		logger.Printf("preview window failed: %v", err)
		os.Exit(1)
	}
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
