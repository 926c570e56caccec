package scene

import (
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/firefly-house/schema"
)

// Provider is the retained-mode graphics library the scene is built on.
// Implementations own the scene graph; this package only tells them what
// to create.
type Provider interface {
	SetupRenderer(shadowMap bool, shadowType schema.ShadowType) Renderer
	SetupCamera(info schema.Camera) Camera
	AttachControls(camera Camera, target dprec.Vec3) Controls

	// LoadTexture never fails. A texture that cannot be fetched renders
	// blank.
	LoadTexture(path string) Texture

	AddMesh(mesh schema.Mesh, texture Texture)
	AddPoints(points schema.Points)
	AddAmbientLight(light schema.AmbientLight)
	AddDirectionalLight(light schema.DirectionalLight)
	AddPointLight(light schema.PointLight) PointLight
}

type Texture interface {
	Path() string
}

type Renderer interface {
	SetSize(width, height int)
	Render() error
}

type Camera interface {
	SetAspect(aspect float64)
	UpdateProjection()
}

// Controls advance damped camera motion from accumulated user input.
type Controls interface {
	Update()
}

type PointLight interface {
	SetPosition(position dprec.Vec3)
	SetIntensity(intensity float64)
}

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}
