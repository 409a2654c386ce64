// Package camera generates primary rays with depth of field and motion
// blur.
package camera

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// Config describes camera placement and optics
type Config struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	VUp         core.Vec3
	VFov        float64 // vertical field of view in degrees
	AspectRatio float64
	Aperture    float64
	FocusDist   float64
	Time0       float64 // shutter open
	Time1       float64 // shutter close
}

// Camera maps normalized image coordinates to world-space rays. Rays
// originate on a thin lens disk and pass through the focus plane, and
// carry a random time within the shutter interval for motion blur.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config Config) *Camera {
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * config.FocusDist)
	vertical := v.Multiply(viewportHeight * config.FocusDist)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// Ray generates a ray through normalized image coordinates (s, t),
// where both range over [0, 1) and t increases upward.
func (c *Camera) Ray(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.SampleInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0 + sampler.Get1D()*(c.time1-c.time0)
	return core.NewRay(origin, direction, time)
}
