// Package orbit implements a damped orbit camera controller: the camera
// circles a target point and user input eases in over several frames.
package orbit

import (
	"math"

	"github.com/mokiat/gomath/dprec"
)

const (
	DefaultDampingFactor = 0.05
	DefaultRotateSpeed   = 0.005
	DefaultZoomSpeed     = 1.0
	DefaultMinRadius     = 1.0
	DefaultMaxRadius     = 200.0

	maxElevation = math.Pi/2 - 1e-3
	settledDelta = 1e-9
)

type Option func(c *Controller)

// WithDamping sets the fraction of pending motion applied per update. A
// factor of 1 disables damping.
func WithDamping(factor float64) Option {
	return func(c *Controller) {
		c.dampingFactor = min(max(factor, 0.001), 1.0)
	}
}

func WithRotateSpeed(radiansPerPixel float64) Option {
	return func(c *Controller) {
		c.rotateSpeed = radiansPerPixel
	}
}

func WithZoomSpeed(speed float64) Option {
	return func(c *Controller) {
		c.zoomSpeed = speed
	}
}

func WithRadiusBounds(minRadius, maxRadius float64) Option {
	return func(c *Controller) {
		c.minRadius = minRadius
		c.maxRadius = maxRadius
	}
}

type Controller struct {
	target    dprec.Vec3
	azimuth   float64
	elevation float64
	radius    float64

	pendingAzimuth   float64
	pendingElevation float64
	pendingRadius    float64

	dampingFactor float64
	rotateSpeed   float64
	zoomSpeed     float64
	minRadius     float64
	maxRadius     float64
}

// NewController places the camera at position, orbiting target.
func NewController(position, target dprec.Vec3, opts ...Option) *Controller {
	c := &Controller{
		target:        target,
		dampingFactor: DefaultDampingFactor,
		rotateSpeed:   DefaultRotateSpeed,
		zoomSpeed:     DefaultZoomSpeed,
		minRadius:     DefaultMinRadius,
		maxRadius:     DefaultMaxRadius,
	}
	for _, opt := range opts {
		opt(c)
	}

	offset := dprec.Vec3Diff(position, target)
	c.radius = offset.Length()
	if c.radius > 0 {
		c.azimuth = math.Atan2(offset.X, offset.Z)
		c.elevation = math.Asin(offset.Y / c.radius)
	}
	c.clamp()
	return c
}

// Rotate queues a drag of dx, dy pixels.
func (c *Controller) Rotate(dx, dy float64) {
	c.pendingAzimuth -= dx * c.rotateSpeed
	c.pendingElevation += dy * c.rotateSpeed
}

// Zoom queues a scroll. Positive values move the camera closer.
func (c *Controller) Zoom(delta float64) {
	c.pendingRadius -= delta * c.zoomSpeed
}

// Update applies a share of the pending motion.
func (c *Controller) Update() {
	f := c.dampingFactor
	c.azimuth += c.pendingAzimuth * f
	c.elevation += c.pendingElevation * f
	c.radius += c.pendingRadius * f
	c.pendingAzimuth = settle(c.pendingAzimuth * (1 - f))
	c.pendingElevation = settle(c.pendingElevation * (1 - f))
	c.pendingRadius = settle(c.pendingRadius * (1 - f))
	c.clamp()
}

// Settled reports whether no motion is pending.
func (c *Controller) Settled() bool {
	return c.pendingAzimuth == 0 && c.pendingElevation == 0 && c.pendingRadius == 0
}

func (c *Controller) Target() dprec.Vec3 {
	return c.target
}

func (c *Controller) Radius() float64 {
	return c.radius
}

func (c *Controller) Azimuth() float64 {
	return c.azimuth
}

func (c *Controller) Elevation() float64 {
	return c.elevation
}

func (c *Controller) Position() dprec.Vec3 {
	cosEl := math.Cos(c.elevation)
	return dprec.Vec3Sum(c.target, dprec.NewVec3(
		c.radius*cosEl*math.Sin(c.azimuth),
		c.radius*math.Sin(c.elevation),
		c.radius*cosEl*math.Cos(c.azimuth),
	))
}

// Rotation orients a camera looking down its -Z axis at the target.
func (c *Controller) Rotation() dprec.Quat {
	return dprec.QuatProd(
		dprec.RotationQuat(dprec.Radians(c.azimuth), dprec.BasisYVec3()),
		dprec.RotationQuat(dprec.Radians(-c.elevation), dprec.BasisXVec3()),
	)
}

func (c *Controller) Matrix() dprec.Mat4 {
	return dprec.TRSMat4(c.Position(), c.Rotation(), dprec.NewVec3(1, 1, 1))
}

func (c *Controller) clamp() {
	c.elevation = min(max(c.elevation, -maxElevation), maxElevation)
	if c.minRadius <= c.maxRadius {
		c.radius = min(max(c.radius, c.minRadius), c.maxRadius)
	}
}

func settle(v float64) float64 {
	if math.Abs(v) < settledDelta {
		return 0
	}
	return v
}
