package renderer

import (
	"errors"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/hackmad/raytracing-series/pkg/camera"
	"github.com/hackmad/raytracing-series/pkg/core"
	"github.com/hackmad/raytracing-series/pkg/scene"
)

const progressPollInterval = 25 * time.Millisecond

// Options configures one render. All fields are read-only once
// rendering starts.
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	TileSize        int   // square tile edge, 0 for the default
	Threads         int   // worker count, 0 for GOMAXPROCS
	Seed            int64 // base RNG seed; each worker offsets by its ID
}

// Renderer renders scenes tile by tile on a worker pool
type Renderer struct {
	opts   Options
	log    core.Logger
	onTile func(bounds TileBounds, rgba []byte)
}

// New creates a renderer with the given options. The logger may be nil.
func New(opts Options, log core.Logger) *Renderer {
	if opts.TileSize <= 0 {
		opts.TileSize = 64
	}
	if opts.Threads <= 0 {
		opts.Threads = runtime.NumCPU()
	}
	if opts.SamplesPerPixel <= 0 {
		opts.SamplesPerPixel = 1
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 1
	}
	return &Renderer{opts: opts, log: log}
}

// OnTile registers a listener that receives each completed tile. The
// listener gets its own copy of the pixel data and may be called from
// any worker, so it must be safe for concurrent use.
func (r *Renderer) OnTile(fn func(bounds TileBounds, rgba []byte)) {
	r.onTile = fn
}

// Render renders the scene and returns the finished image. It blocks
// until every tile is done.
func (r *Renderer) Render(sc *scene.Scene) (*image.RGBA, error) {
	if r.opts.Width <= 0 || r.opts.Height <= 0 {
		return nil, errors.New("renderer: image dimensions must be positive")
	}

	integrator := &Integrator{
		World:      sc.World,
		Lights:     sc.Lights,
		Background: sc.Background,
		MaxDepth:   r.opts.MaxDepth,
	}
	fb := NewFramebuffer(r.opts.Width, r.opts.Height)

	pool, err := NewThreadPool(r.opts.Threads, func(id int) *Worker {
		return &Worker{
			ID:      id,
			Sampler: core.NewSeededSampler(r.opts.Seed + int64(id)),
			Tile:    make([]byte, r.opts.TileSize*r.opts.TileSize*4),
		}
	})
	if err != nil {
		return nil, err
	}

	tiles := TileGrid(r.opts.Width, r.opts.Height, r.opts.TileSize)

	var mu sync.Mutex
	remaining := len(tiles)

	start := time.Now()
	if r.log != nil {
		r.log.Printf("rendering %dx%d, %d samples/pixel, %d tiles on %d workers",
			r.opts.Width, r.opts.Height, r.opts.SamplesPerPixel, len(tiles), r.opts.Threads)
	}

	for _, bounds := range tiles {
		bounds := bounds
		pool.Execute(func(w *Worker) {
			r.renderTile(integrator, sc.Camera, bounds, w)

			n := bounds.Width() * bounds.Height() * 4
			fb.WriteTile(bounds, w.Tile[:n])
			if r.onTile != nil {
				rgba := make([]byte, n)
				copy(rgba, w.Tile[:n])
				r.onTile(bounds, rgba)
			}

			mu.Lock()
			remaining--
			mu.Unlock()
		})
	}

	lastLogged := time.Now()
	for {
		mu.Lock()
		left := remaining
		mu.Unlock()
		if left == 0 {
			break
		}
		if r.log != nil && time.Since(lastLogged) >= time.Second {
			r.log.Printf("%d/%d tiles done", len(tiles)-left, len(tiles))
			lastLogged = time.Now()
		}
		time.Sleep(progressPollInterval)
	}
	pool.Shutdown()

	if r.log != nil {
		r.log.Printf("render finished in %v", time.Since(start).Round(time.Millisecond))
	}
	return fb.Image(), nil
}

// renderTile runs the integrator over every pixel of the tile into the
// worker's scratch buffer, rows bottom to top.
func (r *Renderer) renderTile(integrator *Integrator, cam *camera.Camera, bounds TileBounds, w *Worker) {
	width := float64(r.opts.Width)
	height := float64(r.opts.Height)

	i := 0
	for y := bounds.YMin; y <= bounds.YMax; y++ {
		for x := bounds.XMin; x <= bounds.XMax; x++ {
			var colour core.Vec3
			for s := 0; s < r.opts.SamplesPerPixel; s++ {
				u := (float64(x) + w.Sampler.Get1D()) / width
				v := (float64(y) + w.Sampler.Get1D()) / height
				ray := cam.Ray(u, v, w.Sampler)
				colour = colour.Add(integrator.RayColour(ray, integrator.MaxDepth, w.Sampler))
			}

			red, green, blue, alpha := ColourToRGBA(colour, r.opts.SamplesPerPixel)
			w.Tile[i] = red
			w.Tile[i+1] = green
			w.Tile[i+2] = blue
			w.Tile[i+3] = alpha
			i += 4
		}
	}
}
