package scene

import (
	"github.com/hackmad/raytracing-series/pkg/camera"
	"github.com/hackmad/raytracing-series/pkg/core"
	"github.com/hackmad/raytracing-series/pkg/geometry"
	"github.com/hackmad/raytracing-series/pkg/material"
	"github.com/hackmad/raytracing-series/pkg/texture"
)

// singleSphere is a minimal scene used for smoke tests and determinism
// checks: one diffuse sphere under the gradient sky.
func singleSphere(aspectRatio float64) *Scene {
	world := geometry.NewHittableList(
		&geometry.Sphere{
			Center:   core.NewVec3(0, 0, -1),
			Radius:   0.5,
			Material: material.NewLambertian(texture.NewSolidRGB(0.5, 0.5, 0.5)),
		},
	)

	cam := camera.NewCamera(camera.Config{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   1,
	})

	return &Scene{Camera: cam, World: world, Background: GradientBackground}
}

// randomSpheres is the classic cover scene: a checkered ground plane, a
// grid of small randomized spheres with motion blur on the diffuse ones
// and three large feature spheres.
func randomSpheres(aspectRatio float64, useBVH bool, sampler core.Sampler) *Scene {
	world := geometry.NewHittableList()

	checker := texture.NewChecker(
		texture.NewSolidRGB(0.2, 0.3, 0.1),
		texture.NewSolidRGB(0.9, 0.9, 0.9),
	)
	world.Add(&geometry.Sphere{
		Center:   core.NewVec3(0, -1000, 0),
		Radius:   1000,
		Material: material.NewLambertian(checker),
	})

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			offset := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*offset.X, 0.2, float64(b)+0.9*offset.Y)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			choose := sampler.Get1D()
			switch {
			case choose < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				center1 := center.Add(core.NewVec3(0, 0.5*sampler.Get1D(), 0))
				world.Add(&geometry.MovingSphere{
					Center0: center, Center1: center1,
					Time0: 0, Time1: 1,
					Radius:   0.2,
					Material: material.NewLambertian(texture.NewSolid(albedo)),
				})
			case choose < 0.95:
				s := sampler.Get3D()
				albedo := core.NewVec3(0.5+0.5*s.X, 0.5+0.5*s.Y, 0.5+0.5*s.Z)
				world.Add(&geometry.Sphere{
					Center: center, Radius: 0.2,
					Material: material.NewMetal(texture.NewSolid(albedo), 0.5*sampler.Get1D()),
				})
			default:
				world.Add(&geometry.Sphere{
					Center: center, Radius: 0.2,
					Material: material.NewDielectric(1.5),
				})
			}
		}
	}

	world.Add(&geometry.Sphere{
		Center: core.NewVec3(0, 1, 0), Radius: 1,
		Material: material.NewDielectric(1.5),
	})
	world.Add(&geometry.Sphere{
		Center: core.NewVec3(-4, 1, 0), Radius: 1,
		Material: material.NewLambertian(texture.NewSolidRGB(0.4, 0.2, 0.1)),
	})
	world.Add(&geometry.Sphere{
		Center: core.NewVec3(4, 1, 0), Radius: 1,
		Material: material.NewMetal(texture.NewSolidRGB(0.7, 0.6, 0.5), 0),
	})

	cam := camera.NewCamera(camera.Config{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    0.1,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Camera:     cam,
		World:      wrapBVH(world, 0, 1, useBVH, sampler),
		Background: GradientBackground,
	}
}

// twoPerlinSpheres shows the marble noise texture on a small sphere
// resting on a large one.
func twoPerlinSpheres(aspectRatio float64, useBVH bool, sampler core.Sampler) *Scene {
	marble := texture.NewNoise(4, sampler)

	world := geometry.NewHittableList(
		&geometry.Sphere{
			Center: core.NewVec3(0, -1000, 0), Radius: 1000,
			Material: material.NewLambertian(marble),
		},
		&geometry.Sphere{
			Center: core.NewVec3(0, 2, 0), Radius: 2,
			Material: material.NewLambertian(marble),
		},
	)

	cam := camera.NewCamera(camera.Config{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   10,
	})

	return &Scene{
		Camera:     cam,
		World:      wrapBVH(world, 0, 1, useBVH, sampler),
		Background: GradientBackground,
	}
}

// earth maps the globe texture onto a single sphere under the gradient
// sky.
func earth(aspectRatio float64) *Scene {
	world := geometry.NewHittableList(
		&geometry.Sphere{
			Center: core.NewVec3(0, 0, 0), Radius: 2,
			Material: material.NewLambertian(globeTexture()),
		},
	)

	cam := camera.NewCamera(camera.Config{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   10,
	})

	return &Scene{Camera: cam, World: world, Background: GradientBackground}
}

// simpleLight adds a rectangular area light and a sphere light over the
// marble spheres, with importance sampling toward both.
func simpleLight(aspectRatio float64, useBVH bool, sampler core.Sampler) *Scene {
	marble := texture.NewNoise(4, sampler)
	light := material.NewDiffuseLight(texture.NewSolidRGB(4, 4, 4))

	lightRect := geometry.NewXYRect(3, 5, 1, 3, -2, light)
	lightSphere := &geometry.Sphere{
		Center: core.NewVec3(0, 7, 0), Radius: 2,
		Material: light,
	}

	world := geometry.NewHittableList(
		&geometry.Sphere{
			Center: core.NewVec3(0, -1000, 0), Radius: 1000,
			Material: material.NewLambertian(marble),
		},
		&geometry.Sphere{
			Center: core.NewVec3(0, 2, 0), Radius: 2,
			Material: material.NewLambertian(marble),
		},
		lightRect,
		lightSphere,
	)

	cam := camera.NewCamera(camera.Config{
		LookFrom:    core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   10,
	})

	return &Scene{
		Camera:     cam,
		World:      wrapBVH(world, 0, 1, useBVH, sampler),
		Lights:     geometry.NewHittableList(lightRect, lightSphere),
		Background: BlackBackground,
	}
}

// cornellShell builds the five walls and ceiling light shared by every
// Cornell variant. The returned rect is the unflipped light, suitable
// for importance sampling, and the white material is reused for the
// interior blocks.
func cornellShell(lightX0, lightX1, lightZ0, lightZ1, brightness float64) (*geometry.HittableList, *geometry.XZRect, core.Material) {
	red := material.NewLambertian(texture.NewSolidRGB(0.65, 0.05, 0.05))
	white := material.NewLambertian(texture.NewSolidRGB(0.73, 0.73, 0.73))
	green := material.NewLambertian(texture.NewSolidRGB(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(texture.NewSolidRGB(brightness, brightness, brightness))

	lightRect := geometry.NewXZRect(lightX0, lightX1, lightZ0, lightZ1, 554, light)

	world := geometry.NewHittableList(
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		// The light faces down; flipping makes hits from below the front
		// face so one-sided emission works.
		geometry.NewFlipFace(lightRect),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	)
	return world, lightRect, white
}

// cornellBlocks builds the rotated tall and short boxes of the Cornell
// box.
func cornellBlocks(white core.Material) (tall, short core.Hittable) {
	tall = geometry.NewTranslate(
		geometry.NewRotate(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			geometry.YAxis, 15,
		),
		core.NewVec3(265, 0, 295),
	)
	short = geometry.NewTranslate(
		geometry.NewRotate(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			geometry.YAxis, -18,
		),
		core.NewVec3(130, 0, 65),
	)
	return tall, short
}

// emptyCornellBox is the bare Cornell box: walls and ceiling light only.
func emptyCornellBox(aspectRatio float64, useBVH bool, sampler core.Sampler) *Scene {
	world, lightRect, _ := cornellShell(213, 343, 227, 332, 15)

	return &Scene{
		Camera:     cornellCamera(aspectRatio),
		World:      wrapBVH(world, 0, 1, useBVH, sampler),
		Lights:     geometry.NewHittableList(lightRect),
		Background: BlackBackground,
	}
}

// cornellBox is the standard Cornell box with two rotated boxes and a
// ceiling light.
func cornellBox(aspectRatio float64, useBVH bool, sampler core.Sampler) *Scene {
	world, lightRect, white := cornellShell(213, 343, 227, 332, 15)

	tall, short := cornellBlocks(white)
	world.Add(tall)
	world.Add(short)

	return &Scene{
		Camera:     cornellCamera(aspectRatio),
		World:      wrapBVH(world, 0, 1, useBVH, sampler),
		Lights:     geometry.NewHittableList(lightRect),
		Background: BlackBackground,
	}
}

// cornellSmoke replaces the Cornell box's boxes with constant-density
// volumes of smoke and fog.
func cornellSmoke(aspectRatio float64, useBVH bool, sampler core.Sampler) *Scene {
	world, lightRect, white := cornellShell(113, 443, 127, 432, 7)

	tall, short := cornellBlocks(white)
	world.Add(geometry.NewConstantMedium(tall, 0.01,
		material.NewIsotropic(texture.NewSolidRGB(0, 0, 0)), sampler))
	world.Add(geometry.NewConstantMedium(short, 0.01,
		material.NewIsotropic(texture.NewSolidRGB(1, 1, 1)), sampler))

	return &Scene{
		Camera:     cornellCamera(aspectRatio),
		World:      wrapBVH(world, 0, 1, useBVH, sampler),
		Lights:     geometry.NewHittableList(lightRect),
		Background: BlackBackground,
	}
}

// finalScene exercises every feature at once: a ground of random-height
// boxes, a moving sphere, glass and metal spheres, a subsurface sphere,
// volumetric fog, a textured globe, a marble sphere and a rotated
// cluster of small spheres.
func finalScene(aspectRatio float64, useBVH bool, sampler core.Sampler) *Scene {
	ground := material.NewLambertian(texture.NewSolidRGB(0.48, 0.83, 0.53))

	boxes := make([]core.Hittable, 0, 400)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := 1 + 100*sampler.Get1D()
			boxes = append(boxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+w, y1, z0+w),
				ground,
			))
		}
	}

	light := material.NewDiffuseLight(texture.NewSolidRGB(7, 7, 7))
	lightRect := geometry.NewXZRect(123, 423, 147, 412, 554, light)

	world := geometry.NewHittableList(
		geometry.NewBVH(boxes, 0, 1, sampler),
		geometry.NewFlipFace(lightRect),
	)

	center := core.NewVec3(400, 400, 200)
	world.Add(&geometry.MovingSphere{
		Center0: center, Center1: center.Add(core.NewVec3(30, 0, 0)),
		Time0: 0, Time1: 1,
		Radius:   50,
		Material: material.NewLambertian(texture.NewSolidRGB(0.7, 0.3, 0.1)),
	})

	world.Add(&geometry.Sphere{
		Center: core.NewVec3(260, 150, 45), Radius: 50,
		Material: material.NewDielectric(1.5),
	})
	world.Add(&geometry.Sphere{
		Center: core.NewVec3(0, 150, 145), Radius: 50,
		Material: material.NewMetal(texture.NewSolidRGB(0.8, 0.8, 0.9), 1),
	})

	// Glass sphere filled with a blue medium for a subsurface look.
	boundary := &geometry.Sphere{
		Center: core.NewVec3(360, 150, 145), Radius: 70,
		Material: material.NewDielectric(1.5),
	}
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2,
		material.NewIsotropic(texture.NewSolidRGB(0.2, 0.4, 0.9)), sampler))

	// Thin global fog over the whole scene.
	fogBoundary := &geometry.Sphere{
		Center: core.NewVec3(0, 0, 0), Radius: 5000,
		Material: material.NewDielectric(1.5),
	}
	world.Add(geometry.NewConstantMedium(fogBoundary, 0.0001,
		material.NewIsotropic(texture.NewSolidRGB(1, 1, 1)), sampler))

	world.Add(&geometry.Sphere{
		Center: core.NewVec3(400, 200, 400), Radius: 100,
		Material: material.NewLambertian(globeTexture()),
	})
	world.Add(&geometry.Sphere{
		Center: core.NewVec3(220, 280, 300), Radius: 80,
		Material: material.NewLambertian(texture.NewNoise(0.1, sampler)),
	})

	cluster := make([]core.Hittable, 0, 1000)
	white := material.NewLambertian(texture.NewSolidRGB(0.73, 0.73, 0.73))
	for i := 0; i < 1000; i++ {
		s := sampler.Get3D()
		cluster = append(cluster, &geometry.Sphere{
			Center:   core.NewVec3(165*s.X, 165*s.Y, 165*s.Z),
			Radius:   10,
			Material: white,
		})
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotate(geometry.NewBVH(cluster, 0, 1, sampler), geometry.YAxis, 15),
		core.NewVec3(-100, 270, 395),
	))

	cam := camera.NewCamera(camera.Config{
		LookFrom:    core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Camera:     cam,
		World:      wrapBVH(world, 0, 1, useBVH, sampler),
		Lights:     geometry.NewHittableList(lightRect),
		Background: BlackBackground,
	}
}

func cornellCamera(aspectRatio float64) *camera.Camera {
	return camera.NewCamera(camera.Config{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   10,
	})
}

// globeTexture loads the earth map if present next to the binary,
// otherwise falls back to a flat ocean blue.
func globeTexture() core.Texture {
	if img, err := texture.LoadImage("images/earthmap.jpg"); err == nil {
		return img
	}
	return texture.NewSolidRGB(0.2, 0.4, 0.9)
}

// wrapBVH optionally replaces a flat list with a BVH over its objects
func wrapBVH(list *geometry.HittableList, time0, time1 float64, useBVH bool, sampler core.Sampler) core.Hittable {
	if !useBVH {
		return list
	}
	return geometry.NewBVH(list.Objects, time0, time1, sampler)
}
