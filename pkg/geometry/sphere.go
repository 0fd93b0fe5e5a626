package geometry

import (
	"fmt"
	"math"

	"github.com/Shihab-Shahriar/raytracing-go/pkg/core"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/material"
)

// Sphere represents a sphere shape bound to one material
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. The radius must be positive and the
// material non-nil; violations return ErrInvalidGeometry.
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if radius <= 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: sphere radius %v must be positive", ErrInvalidGeometry, radius)
	}
	if mat == nil {
		return nil, fmt.Errorf("%w: sphere requires a material", ErrInvalidGeometry)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		// Fall back to the farther intersection point
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal points from center to hit point
	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
