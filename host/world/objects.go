package world

import (
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/game/graphics"

	"github.com/nobonobo/firefly-house/host/orbit"
	"github.com/nobonobo/firefly-house/schema"
)

// Renderer tracks the viewport. The engine draws the active scene on its
// own after every UI pass, so Render has nothing left to do.
type Renderer struct {
	width  int
	height int
}

func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
}

func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *Renderer) Render() error {
	return nil
}

// Camera wraps the engine camera. In horizontal-plus mode the engine
// rebuilds the projection from the viewport size every frame, so the
// stored aspect ratio only matters to anamorphic cameras.
type Camera struct {
	camera *graphics.Camera
	info   schema.Camera
}

func (c *Camera) SetAspect(aspect float64) {
	c.camera.SetAspectRatio(float32(aspect))
}

// UpdateProjection reapplies the lens settings.
func (c *Camera) UpdateProjection() {
	c.camera.SetFoV(sprec.Degrees(float32(c.info.FoV)))
	c.camera.SetNear(float32(c.info.Near))
	c.camera.SetFar(float32(c.info.Far))
}

type Controls struct {
	camera *Camera
	orbit  *orbit.Controller
}

func (c *Controls) Orbit() *orbit.Controller {
	return c.orbit
}

func (c *Controls) Update() {
	c.orbit.Update()
	c.apply()
}

func (c *Controls) apply() {
	c.camera.camera.SetMatrix(c.orbit.Matrix())
}

// emitter is the part of *graphics.PointLight a firefly drives.
type emitter interface {
	SetPosition(position dprec.Vec3)
	SetEmitColor(color dprec.Vec3)
}

type PointLight struct {
	light emitter
	color dprec.Vec3
}

func (l *PointLight) SetPosition(position dprec.Vec3) {
	l.light.SetPosition(position)
}

// SetIntensity scales the base color. The engine has no separate
// intensity setting.
func (l *PointLight) SetIntensity(intensity float64) {
	l.light.SetEmitColor(dprec.Vec3Prod(l.color, intensity))
}
