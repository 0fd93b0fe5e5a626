package material

import (
	"github.com/Shihab-Shahriar/raytracing-go/pkg/core"
)

// Lambertian represents a diffuse material that scatters light uniformly
type Lambertian struct {
	Albedo core.Vec3 // Base color of the material
}

// NewLambertian creates a new Lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering.
// The scattered direction is the hit normal plus a point in the unit
// ball, which approximates a cosine-weighted diffuse lobe.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.SamplePointInUnitSphere(sampler.Get3D()))

	// Catch the degenerate case where the ball sample cancels the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
