package renderer

import (
	"fmt"
	"math"

	"github.com/Shihab-Shahriar/raytracing-go/pkg/core"
)

// CameraConfig holds the parameters that define a camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter; 0 = pinhole camera
	FocusDistance float64   // Distance to the focus plane; 0 = distance to LookAt
}

// Camera maps normalized image-plane samples to world-space rays.
// Immutable after construction, so all render units share it freely.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from look-from/look-at parameters
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera vfov %v must be in (0, 180)", config.VFov)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio %v must be positive", config.AspectRatio)
	}
	if config.Aperture < 0 {
		return nil, fmt.Errorf("camera aperture %v must not be negative", config.Aperture)
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		// Auto-focus on the look-at point
		focusDistance = config.LookAt.Subtract(config.Center).Length()
	}
	if focusDistance <= 0 {
		return nil, fmt.Errorf("camera focus distance must be positive")
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis: w points away from the view direction
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for normalized screen coordinates (s, t) in [0, 1).
// With a positive aperture the ray origin is offset by a random point on
// the lens disk, producing defocus blur; aperture 0 collapses to a
// pinhole camera and draws nothing from the sampler.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.NewVec3(0, 0, 0)
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// Forward returns the viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}
