package integrator

import (
	"math"

	"github.com/Shihab-Shahriar/raytracing-go/pkg/core"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/material"
)

// Scene interface to avoid circular imports
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BackgroundColors() (topColor, bottomColor core.Vec3)
}

// Intersections closer than tMinHit are ignored to avoid shadow acne
// from self-intersection at the scatter origin.
const tMinHit = 0.001

// PathTracer computes ray colors by forward path tracing with a
// bounded iterative bounce loop
type PathTracer struct {
	MaxDepth int // Maximum number of ray bounces
}

// NewPathTracer creates a path tracer with the given bounce limit
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor traces a ray through the scene and returns its color.
//
// The loop carries the accumulated attenuation and remaining depth as
// explicit state instead of recursing, which bounds stack usage no
// matter how many workers are in flight. A miss resolves to the
// background gradient weighted by the attenuation gathered so far; an
// absorbed scatter or an exhausted depth budget contributes black.
func (pt *PathTracer) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	attenuation := core.NewVec3(1, 1, 1)

	for depth := pt.MaxDepth; depth > 0; depth-- {
		hit, isHit := scene.Hit(ray, tMinHit, math.Inf(1))
		if !isHit {
			return attenuation.MultiplyVec(BackgroundGradient(ray, scene))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.NewVec3(0, 0, 0)
		}

		attenuation = attenuation.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit exhausted, no more light is gathered
	return core.NewVec3(0, 0, 0)
}

// BackgroundGradient returns the sky color for a ray that escapes the
// scene: a vertical blend between the scene's bottom and top colors
// driven by the normalized direction's y component.
func BackgroundGradient(r core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.BackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map y from [-1, 1] to [0, 1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}
