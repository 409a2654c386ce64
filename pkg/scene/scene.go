// Package scene assembles worlds, lights and cameras for the renderer.
// The renderer itself never parses scene descriptions; it consumes the
// Scene value built here.
package scene

import (
	"fmt"

	"github.com/hackmad/raytracing-series/pkg/camera"
	"github.com/hackmad/raytracing-series/pkg/core"
)

// Scene is everything the renderer needs for one image: camera, world
// geometry, the light-only subset used for importance sampling and a
// background colour function for rays that escape the scene. Built
// once, then read-only and shared across all workers.
type Scene struct {
	Camera     *camera.Camera
	World      core.Hittable
	Lights     core.LightSampler // nil when no lights are importance sampled
	Background func(core.Ray) core.Vec3
}

// Names lists the available scenes in catalog order
func Names() []string {
	return []string{
		"single-sphere",
		"random-spheres",
		"two-perlin-spheres",
		"earth",
		"simple-light",
		"empty-cornell-box",
		"cornell-box",
		"cornell-smoke",
		"final",
	}
}

// New builds the named scene. The sampler drives procedural placement
// and BVH construction, so a fixed seed reproduces the same scene.
func New(name string, aspectRatio float64, useBVH bool, sampler core.Sampler) (*Scene, error) {
	switch name {
	case "single-sphere":
		return singleSphere(aspectRatio), nil
	case "random-spheres":
		return randomSpheres(aspectRatio, useBVH, sampler), nil
	case "two-perlin-spheres":
		return twoPerlinSpheres(aspectRatio, useBVH, sampler), nil
	case "earth":
		return earth(aspectRatio), nil
	case "simple-light":
		return simpleLight(aspectRatio, useBVH, sampler), nil
	case "empty-cornell-box":
		return emptyCornellBox(aspectRatio, useBVH, sampler), nil
	case "cornell-box":
		return cornellBox(aspectRatio, useBVH, sampler), nil
	case "cornell-smoke":
		return cornellSmoke(aspectRatio, useBVH, sampler), nil
	case "final":
		return finalScene(aspectRatio, useBVH, sampler), nil
	default:
		return nil, fmt.Errorf("scene: unknown scene %q (available: %v)", name, Names())
	}
}

// GradientBackground is the blue-to-white sky gradient used by scenes
// without explicit lights.
func GradientBackground(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1)
	return core.NewVec3(1, 1, 1).Multiply(1 - t).
		Add(core.NewVec3(0.5, 0.7, 1).Multiply(t))
}

// BlackBackground is used by scenes lit entirely by area lights
func BlackBackground(ray core.Ray) core.Vec3 {
	return core.NewVec3(0, 0, 0)
}
