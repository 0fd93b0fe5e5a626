package scene

import (
	"github.com/Shihab-Shahriar/raytracing-go/pkg/core"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/geometry"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/material"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/renderer"
)

const coverGridRadius = 11 // lattice spans [-11, 11) on both axes

// DefaultCameraConfig returns the camera used by the cover scene
func DefaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
}

// NewCoverScene builds the randomized sphere field: a large diffuse
// ground sphere, one small sphere per lattice cell with a material
// class drawn from a fixed discrete distribution (80% diffuse,
// 15% metal, 5% dielectric), and three fixed feature spheres.
//
// Placement randomness comes from the same counter-based generator as
// the render loop, under its own class identifier. Each lattice cell
// draws from a stream keyed by its own cell index, so the scene is a
// pure function of the user seed.
func NewCoverScene(userSeed uint16) (*Scene, error) {
	s := NewEmptyScene(DefaultCameraConfig())
	seed := core.NewSeed(core.RNGIdentifierScene, 0, userSeed)

	ground, err := geometry.NewSphere(
		core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)
	if err != nil {
		return nil, err
	}
	s.Shapes = append(s.Shapes, ground)

	gridSize := uint32(2 * coverGridRadius)
	featureZone := core.NewVec3(4, 0.2, 0)

	for a := -coverGridRadius; a < coverGridRadius; a++ {
		for b := -coverGridRadius; b < coverGridRadius; b++ {
			cellIndex := uint32(a+coverGridRadius)*gridSize + uint32(b+coverGridRadius)
			rng := core.NewRandomGenerator(seed, core.NewCounter(cellIndex, 0, 0, 0))

			chooseMat := rng.Float64()
			center := core.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)

			// Leave room for the feature spheres
			if center.Subtract(featureZone).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(
					rng.Float64()*rng.Float64(),
					rng.Float64()*rng.Float64(),
					rng.Float64()*rng.Float64(),
				)
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				halfToOne := core.NewUniformDistribution(0.5, 1.0)
				albedo := core.NewVec3(
					halfToOne.Sample(rng),
					halfToOne.Sample(rng),
					halfToOne.Sample(rng),
				)
				fuzz := core.NewUniformDistribution(0, 0.5).Sample(rng)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			sphere, err := geometry.NewSphere(center, 0.2, mat)
			if err != nil {
				return nil, err
			}
			s.Shapes = append(s.Shapes, sphere)
		}
	}

	// One large sphere of each material family
	glass, err := geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))
	if err != nil {
		return nil, err
	}
	diffuse, err := geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	if err != nil {
		return nil, err
	}
	metal, err := geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
	if err != nil {
		return nil, err
	}
	s.Shapes = append(s.Shapes, glass, diffuse, metal)

	return s, nil
}
