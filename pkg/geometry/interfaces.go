package geometry

import (
	"errors"

	"github.com/Shihab-Shahriar/raytracing-go/pkg/core"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/material"
)

// ErrInvalidGeometry reports a construction-time contract violation,
// such as a non-positive radius. Degenerate geometry fails fast here
// instead of propagating NaN through the render.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Shape interface for objects that can report a ray intersection
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
