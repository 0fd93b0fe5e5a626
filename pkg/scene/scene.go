package scene

import (
	"github.com/Shihab-Shahriar/raytracing-go/pkg/core"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/geometry"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/material"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/renderer"
)

// Scene is an ordered collection of shapes plus the camera and
// background description. It is built once by a single constructing
// path and read-only afterwards, so render workers share it without
// synchronization.
type Scene struct {
	Shapes       []geometry.Shape
	CameraConfig renderer.CameraConfig
	TopColor     core.Vec3
	BottomColor  core.Vec3
}

// NewEmptyScene creates a scene with no shapes and the default sky
// gradient. Every ray traced against it resolves to the background.
func NewEmptyScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Shapes:       make([]geometry.Shape, 0),
		CameraConfig: cameraConfig,
		TopColor:     core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:  core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Hit scans all shapes linearly and returns the closest valid hit.
// On an exact distance tie the first shape in scan order wins: the
// search range only shrinks after an accepted hit, and later shapes at
// the same t fail the exclusive upper bound. Cost is O(len(Shapes)).
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BackgroundColors returns the top and bottom colors of the sky gradient
func (s *Scene) BackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
