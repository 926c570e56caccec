package scene

import (
	"errors"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/firefly-house/schema"
)

type fakeTexture string

func (t fakeTexture) Path() string { return string(t) }

type fakeRenderer struct {
	width, height int
	renders       int
	err           error
	panicWith     any
}

func (r *fakeRenderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *fakeRenderer) Render() error {
	r.renders++
	if r.panicWith != nil {
		panic(r.panicWith)
	}
	return r.err
}

type fakeCamera struct {
	info        schema.Camera
	aspect      float64
	projections int
}

func (c *fakeCamera) SetAspect(aspect float64) { c.aspect = aspect }
func (c *fakeCamera) UpdateProjection()        { c.projections++ }

type fakeControls struct {
	target  dprec.Vec3
	updates int
}

func (c *fakeControls) Update() { c.updates++ }

type fakePointLight struct {
	info      schema.PointLight
	position  dprec.Vec3
	intensity float64
	updates   int
}

func (l *fakePointLight) SetPosition(position dprec.Vec3) {
	l.position = position
	l.updates++
}

func (l *fakePointLight) SetIntensity(intensity float64) {
	l.intensity = intensity
}

type fakeProvider struct {
	renderer    *fakeRenderer
	camera      *fakeCamera
	controls    *fakeControls
	shadowMap   bool
	shadowType  schema.ShadowType
	textures    []string
	meshes      []schema.Mesh
	meshTexture map[string]Texture
	points      []schema.Points
	ambient     []schema.AmbientLight
	directional []schema.DirectionalLight
	lights      []*fakePointLight
}

var _ Provider = (*fakeProvider)(nil)

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		meshTexture: make(map[string]Texture),
	}
}

func (p *fakeProvider) SetupRenderer(shadowMap bool, shadowType schema.ShadowType) Renderer {
	p.shadowMap = shadowMap
	p.shadowType = shadowType
	p.renderer = &fakeRenderer{}
	return p.renderer
}

func (p *fakeProvider) SetupCamera(info schema.Camera) Camera {
	p.camera = &fakeCamera{info: info}
	return p.camera
}

func (p *fakeProvider) AttachControls(camera Camera, target dprec.Vec3) Controls {
	if camera != Camera(p.camera) {
		panic(errors.New("controls attached to foreign camera"))
	}
	p.controls = &fakeControls{target: target}
	return p.controls
}

func (p *fakeProvider) LoadTexture(path string) Texture {
	p.textures = append(p.textures, path)
	return fakeTexture(path)
}

func (p *fakeProvider) AddMesh(mesh schema.Mesh, texture Texture) {
	p.meshes = append(p.meshes, mesh)
	p.meshTexture[mesh.Name] = texture
}

func (p *fakeProvider) AddPoints(points schema.Points) {
	p.points = append(p.points, points)
}

func (p *fakeProvider) AddAmbientLight(light schema.AmbientLight) {
	p.ambient = append(p.ambient, light)
}

func (p *fakeProvider) AddDirectionalLight(light schema.DirectionalLight) {
	p.directional = append(p.directional, light)
}

func (p *fakeProvider) AddPointLight(light schema.PointLight) PointLight {
	result := &fakePointLight{
		info:      light,
		position:  light.Position,
		intensity: light.Intensity,
	}
	p.lights = append(p.lights, result)
	return result
}

// constSource always returns the same value.
type constSource float64

func (s constSource) Float64() float64 { return float64(s) }
