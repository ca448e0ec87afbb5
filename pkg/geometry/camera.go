package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

var (
	// ErrDegenerateCamera means the camera basis cannot be built: the view direction
	// is zero or parallel to the up vector
	ErrDegenerateCamera = errors.New("degenerate camera basis")
	// ErrInvalidCamera means a camera parameter is out of range
	ErrInvalidCamera = errors.New("invalid camera configuration")
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3    // Camera position
	LookAt        core.Vec3    // Point the camera is looking at
	Up            core.Vec3    // Up direction (usually (0,1,0))
	VFov          numeric.Real // Vertical field of view in degrees
	AspectRatio   numeric.Real // Width / height of the viewport
	Aperture      numeric.Real // Lens diameter, 0 for a pinhole camera
	FocusDistance numeric.Real // Distance to the focus plane, 0 means |LookAt - Center|
	ShutterOpen   numeric.Real // Shutter interval start
	ShutterClose  numeric.Real // Shutter interval end, equal to ShutterOpen for no motion blur
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	var zero core.Vec3
	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.ShutterOpen != 0 || override.ShutterClose != 0 {
		result.ShutterOpen = override.ShutterOpen
		result.ShutterClose = override.ShutterClose
	}
	return result
}

// Camera generates primary rays. It is immutable after construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      numeric.Real
	time0, time1    numeric.Real
}

// NewCamera validates config and builds the camera basis
func NewCamera(config CameraConfig) (*Camera, error) {
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, fmt.Errorf("%w: vertical fov %v outside (0, 180)", ErrInvalidCamera, config.VFov)
	}
	if !(config.AspectRatio > 0) || !numeric.IsFinite(config.AspectRatio) {
		return nil, fmt.Errorf("%w: aspect ratio %v", ErrInvalidCamera, config.AspectRatio)
	}
	if !(config.Aperture >= 0) || !numeric.IsFinite(config.Aperture) {
		return nil, fmt.Errorf("%w: aperture %v", ErrInvalidCamera, config.Aperture)
	}
	if !(config.FocusDistance >= 0) || !numeric.IsFinite(config.FocusDistance) {
		return nil, fmt.Errorf("%w: focus distance %v", ErrInvalidCamera, config.FocusDistance)
	}
	if !(config.ShutterClose >= config.ShutterOpen) {
		return nil, fmt.Errorf("%w: shutter closes at %v before opening at %v", ErrInvalidCamera, config.ShutterClose, config.ShutterOpen)
	}

	view := config.Center.Subtract(config.LookAt)
	viewLength := view.Length()
	if viewLength == 0 || !view.IsFinite() {
		return nil, fmt.Errorf("%w: camera center equals look-at point", ErrDegenerateCamera)
	}
	up := config.Up.Normalize()
	if up.LengthSquared() == 0 {
		return nil, fmt.Errorf("%w: zero up vector", ErrDegenerateCamera)
	}

	// Orthonormal basis: w points backwards, u right, v up
	w := view.Divide(viewLength)
	cross := up.Cross(w)
	if cross.Length() < 1e-6 {
		return nil, fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrDegenerateCamera, config.Up)
	}
	u := cross.Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = viewLength
	}

	h := numeric.Tan(numeric.Radians(config.VFov) / 2)
	viewportHeight := 2 * h
	viewportWidth := config.AspectRatio * viewportHeight

	origin := config.Center
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.ShutterOpen,
		time1:           config.ShutterClose,
	}, nil
}

// GetRay generates a ray for viewport coordinates (s, t) where 0 <= s,t <= 1 and
// (0, 0) is the lower left corner. A pinhole camera with a zero-length shutter
// interval draws nothing from rng.
func (c *Camera) GetRay(s, t numeric.Real, rng *numeric.Rand) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(rng).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	time := c.time0
	if c.time1 > c.time0 {
		time = core.RandomInRange(rng, c.time0, c.time1)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAtTime(origin, direction, time)
}

// Basis returns the camera's orthonormal basis: u (right), v (up), w (backwards)
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// Forward returns the viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

// LensRadius returns half the aperture
func (c *Camera) LensRadius() numeric.Real {
	return c.lensRadius
}
