//go:build js && wasm

package main

import (
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"syscall/js"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/firefly-house/host/scene"
	"github.com/nobonobo/firefly-house/schema"
)

var errNoCamera = errors.New("render called before camera setup")

// threeProvider builds the scene graph with three.js.
type threeProvider struct {
	logger        *slog.Logger
	three         js.Value
	orbitControls js.Value
	container     js.Value

	scene    js.Value
	loader   js.Value
	renderer *threeRenderer
	camera   *threeCamera
	groups   map[string]js.Value
}

var _ scene.Provider = (*threeProvider)(nil)

func newThreeProvider(three, orbitControls, container js.Value, logger *slog.Logger) *threeProvider {
	return &threeProvider{
		logger:        logger,
		three:         three,
		orbitControls: orbitControls,
		container:     container,
		scene:         three.Get("Scene").New(),
		loader:        three.Get("TextureLoader").New(),
		groups:        make(map[string]js.Value),
	}
}

func (p *threeProvider) SetupRenderer(shadowMap bool, shadowType schema.ShadowType) scene.Renderer {
	renderer := p.three.Get("WebGLRenderer").New(map[string]any{
		"antialias": true,
	})
	renderer.Call("setPixelRatio", window.Get("devicePixelRatio"))
	shadows := renderer.Get("shadowMap")
	shadows.Set("enabled", shadowMap)
	shadows.Set("type", p.shadowType(shadowType))
	p.container.Call("appendChild", renderer.Get("domElement"))

	p.renderer = &threeRenderer{
		provider: p,
		value:    renderer,
	}
	return p.renderer
}

func (p *threeProvider) shadowType(kind schema.ShadowType) js.Value {
	switch kind {
	case schema.ShadowTypeBasic:
		return p.three.Get("BasicShadowMap")
	case schema.ShadowTypePCF:
		return p.three.Get("PCFShadowMap")
	default:
		return p.three.Get("PCFSoftShadowMap")
	}
}

func (p *threeProvider) SetupCamera(info schema.Camera) scene.Camera {
	aspect := 1.0
	if w, h := window.Get("innerWidth").Float(), window.Get("innerHeight").Float(); w > 0 && h > 0 {
		aspect = w / h
	}
	camera := p.three.Get("PerspectiveCamera").New(info.FoV, aspect, info.Near, info.Far)
	setVec3(camera.Get("position"), info.Position)
	camera.Call("lookAt", info.Target.X, info.Target.Y, info.Target.Z)
	p.camera = &threeCamera{value: camera}
	return p.camera
}

func (p *threeProvider) AttachControls(camera scene.Camera, target dprec.Vec3) scene.Controls {
	cam, ok := camera.(*threeCamera)
	if !ok || p.renderer == nil {
		p.logger.Warn("Orbit controls unavailable")
		return noControls{}
	}
	controls := p.orbitControls.New(cam.value, p.renderer.value.Get("domElement"))
	controls.Set("enableDamping", true)
	setVec3(controls.Get("target"), target)
	controls.Call("update")
	return &threeControls{value: controls}
}

func (p *threeProvider) LoadTexture(path string) scene.Texture {
	var onLoad, onError js.Func
	release := func() {
		onLoad.Release()
		onError.Release()
	}
	onLoad = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		p.logger.Debug("Texture loaded", slog.String("path", path))
		return nil
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		p.logger.Warn("Texture failed to load", slog.String("path", path))
		return nil
	})
	value := p.loader.Call("load", path, onLoad, js.Undefined(), onError)
	return &threeTexture{path: path, value: value}
}

func (p *threeProvider) AddMesh(mesh schema.Mesh, texture scene.Texture) {
	var geometry js.Value
	switch mesh.Kind {
	case schema.MeshKindPlane:
		geometry = p.three.Get("PlaneGeometry").New(mesh.Size.X, mesh.Size.Y)
	case schema.MeshKindBox:
		geometry = p.three.Get("BoxGeometry").New(mesh.Size.X, mesh.Size.Y, mesh.Size.Z)
	case schema.MeshKindCone:
		geometry = p.three.Get("ConeGeometry").New(mesh.Size.X, mesh.Size.Y, mesh.Segments)
	default:
		p.logger.Warn("Unknown mesh kind", slog.String("mesh", mesh.Name), slog.String("kind", string(mesh.Kind)))
		return
	}

	options := map[string]any{}
	if tex, ok := texture.(*threeTexture); ok {
		options["map"] = tex.value
	} else {
		options["color"] = int(mesh.Color)
	}
	material := p.three.Get("MeshStandardMaterial").New(options)

	object := p.three.Get("Mesh").New(geometry, material)
	object.Set("name", mesh.Name)
	setVec3(object.Get("position"), mesh.Position)
	object.Get("rotation").Call("set", mesh.Rotation.X, mesh.Rotation.Y, mesh.Rotation.Z)
	object.Set("castShadow", mesh.CastShadow)
	object.Set("receiveShadow", mesh.ReceiveShadow)
	p.parent(mesh.Group).Call("add", object)
}

func (p *threeProvider) parent(group string) js.Value {
	if group == "" {
		return p.scene
	}
	if g, ok := p.groups[group]; ok {
		return g
	}
	g := p.three.Get("Group").New()
	g.Set("name", group)
	p.scene.Call("add", g)
	p.groups[group] = g
	return g
}

func (p *threeProvider) AddPoints(points schema.Points) {
	geometry := p.three.Get("BufferGeometry").New()
	geometry.Call("setAttribute", "position",
		p.three.Get("Float32BufferAttribute").New(float32Array(points.Positions), 3),
	)
	material := p.three.Get("PointsMaterial").New(map[string]any{
		"color": int(points.Color),
		"size":  points.Size,
	})
	object := p.three.Get("Points").New(geometry, material)
	object.Set("name", points.Name)
	p.scene.Call("add", object)
}

// float32Array copies the coordinates into a typed array in one transfer.
func float32Array(positions []dprec.Vec3) js.Value {
	data := make([]byte, 0, len(positions)*3*4)
	for _, pos := range positions {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(pos.X)))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(pos.Y)))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(pos.Z)))
	}
	bytes := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(bytes, data)
	return js.Global().Get("Float32Array").New(bytes.Get("buffer"))
}

func (p *threeProvider) AddAmbientLight(light schema.AmbientLight) {
	p.scene.Call("add", p.three.Get("AmbientLight").New(int(light.Color), light.Intensity))
}

func (p *threeProvider) AddDirectionalLight(light schema.DirectionalLight) {
	value := p.three.Get("DirectionalLight").New(int(light.Color), light.Intensity)
	setVec3(value.Get("position"), light.Position)
	value.Set("castShadow", light.CastShadow)
	shadow := value.Get("shadow")
	shadow.Get("mapSize").Set("width", light.Shadow.MapSize)
	shadow.Get("mapSize").Set("height", light.Shadow.MapSize)
	shadow.Get("camera").Set("near", light.Shadow.Near)
	shadow.Get("camera").Set("far", light.Shadow.Far)
	p.scene.Call("add", value)
}

func (p *threeProvider) AddPointLight(light schema.PointLight) scene.PointLight {
	value := p.three.Get("PointLight").New(int(light.Color), light.Intensity, light.Distance)
	setVec3(value.Get("position"), light.Position)
	value.Set("castShadow", light.CastShadow)
	p.scene.Call("add", value)
	return &threePointLight{value: value}
}

func setVec3(target js.Value, v dprec.Vec3) {
	target.Call("set", v.X, v.Y, v.Z)
}

type threeRenderer struct {
	provider *threeProvider
	value    js.Value
}

func (r *threeRenderer) SetSize(width, height int) {
	r.value.Call("setSize", width, height)
}

func (r *threeRenderer) Render() error {
	if r.provider.camera == nil {
		return errNoCamera
	}
	r.value.Call("render", r.provider.scene, r.provider.camera.value)
	return nil
}

type threeCamera struct {
	value js.Value
}

func (c *threeCamera) SetAspect(aspect float64) {
	c.value.Set("aspect", aspect)
}

func (c *threeCamera) UpdateProjection() {
	c.value.Call("updateProjectionMatrix")
}

type threeControls struct {
	value js.Value
}

func (c *threeControls) Update() {
	c.value.Call("update")
}

type noControls struct{}

func (noControls) Update() {}

type threeTexture struct {
	path  string
	value js.Value
}

func (t *threeTexture) Path() string {
	return t.path
}

type threePointLight struct {
	value js.Value
}

func (l *threePointLight) SetPosition(position dprec.Vec3) {
	setVec3(l.value.Get("position"), position)
}

func (l *threePointLight) SetIntensity(intensity float64) {
	l.value.Set("intensity", intensity)
}
