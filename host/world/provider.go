// Package world implements the scene provider on top of the lacking game
// engine. Geometry, materials, lights and the camera are created at
// runtime; a prebuilt house model may replace individual meshes.
package world

import (
	"log/slog"
	"math"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/render"

	"github.com/nobonobo/firefly-house/host/orbit"
	"github.com/nobonobo/firefly-house/host/scene"
	"github.com/nobonobo/firefly-house/schema"
)

const (
	modelName = "House"

	// Matches the radius lacking uses for scene wide ambient lighting.
	ambientRadius = 25000.0

	starScale = 4.0
)

type Provider struct {
	logger *slog.Logger
	scene  *game.Scene
	model  *game.Model

	surfaces *surfaces
	camera   *Camera
	controls *Controls
	skipped  map[string]struct{}
}

var _ scene.Provider = (*Provider)(nil)

// NewProvider targets the given game scene. Meshes found by name in the
// optional house template are taken from it instead of being generated.
func NewProvider(gameScene *game.Scene, house *game.ModelTemplate, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Provider{
		logger:  logger,
		scene:   gameScene,
		skipped: make(map[string]struct{}),
	}
	if gameScene != nil {
		p.surfaces = newSurfaces(gameScene.Graphics().Engine())
	}
	if house != nil {
		p.model = gameScene.InstantiateModel(game.ModelInfo{
			Template:  house,
			Name:      opt.V(modelName),
			IsDynamic: false,
		})
	}
	return p
}

func (p *Provider) SetupRenderer(shadowMap bool, shadowType schema.ShadowType) scene.Renderer {
	if shadowMap && shadowType != schema.ShadowTypePCFSoft {
		p.skip("shadow-type", "engine always filters shadow cascades", slog.String("type", string(shadowType)))
	}
	return &Renderer{}
}

func (p *Provider) SetupCamera(info schema.Camera) scene.Camera {
	graphicsScene := p.scene.Graphics()
	camera := graphicsScene.CreateCamera()
	camera.SetFoVMode(graphics.FoVModeHorizontalPlus)
	camera.SetFoV(sprec.Degrees(float32(info.FoV)))
	camera.SetNear(float32(info.Near))
	camera.SetFar(float32(info.Far))
	camera.SetAutoExposure(false)
	camera.SetExposure(1.0)
	camera.SetAutoFocus(false)
	camera.SetCascadeDistances([]float32{float32(info.Far / 20)})
	graphicsScene.SetActiveCamera(camera)

	p.camera = &Camera{
		camera: camera,
		info:   info,
	}
	return p.camera
}

func (p *Provider) AttachControls(camera scene.Camera, target dprec.Vec3) scene.Controls {
	cam := camera.(*Camera)
	p.controls = &Controls{
		camera: cam,
		orbit:  orbit.NewController(cam.info.Position, target),
	}
	p.controls.apply()
	return p.controls
}

// Controls returns the controls created by AttachControls.
func (p *Provider) Controls() *Controls {
	return p.controls
}

func (p *Provider) LoadTexture(path string) scene.Texture {
	return texture(path)
}

func (p *Provider) AddMesh(mesh schema.Mesh, tex scene.Texture) {
	if p.model != nil && !p.model.FindNode(mesh.Name).IsNil() {
		p.logger.Debug("Mesh provided by house model", slog.String("mesh", mesh.Name))
		return
	}
	if tex != nil {
		p.skip("texture", "textures render as flat colors", slog.String("texture", tex.Path()))
	}
	s, ok := meshShape(mesh)
	if !ok {
		p.logger.Warn("Unknown mesh kind",
			slog.String("mesh", mesh.Name),
			slog.String("kind", string(mesh.Kind)),
		)
		return
	}
	p.createMesh(s, surfaceKey{
		color:      mesh.Color,
		castShadow: mesh.CastShadow,
		twoSided:   mesh.Kind == schema.MeshKindPlane,
	}, dprec.TRSMat4(mesh.Position, eulerQuat(mesh.Rotation), dprec.NewVec3(1, 1, 1)))
}

func (p *Provider) createMesh(s shape, key surfaceKey, matrix dprec.Mat4) {
	engine := p.scene.Graphics().Engine()
	geometry := engine.CreateMeshGeometry(s.geometryInfo())
	definition := engine.CreateMeshDefinition(graphics.MeshDefinitionInfo{
		Geometry:  geometry,
		Materials: []*graphics.Material{p.surfaces.material(key)},
	})
	mesh := p.scene.Graphics().CreateMesh(graphics.MeshInfo{
		Definition: definition,
	})
	mesh.SetMatrix(matrix)
}

// AddPoints draws the stars as unlit cubes. A raster point never drops
// below one pixel but a triangle does, so the cubes are enlarged.
func (p *Provider) AddPoints(points schema.Points) {
	if len(points.Positions) == 0 {
		return
	}
	p.createMesh(starShape(points, points.Size*starScale), surfaceKey{
		color: points.Color,
		unlit: true,
	}, dprec.IdentityMat4())
}

func (p *Provider) AddAmbientLight(light schema.AmbientLight) {
	texture := p.scene.Graphics().Engine().API().CreateColorTextureCube(render.ColorTextureCubeInfo{
		Label:        "ambient",
		Format:       render.DataFormatRGBA8,
		MipmapLayers: []render.MipmapCubeLayer{ambientLayer(light)},
	})
	p.scene.Graphics().CreateAmbientLight(graphics.AmbientLightInfo{
		Position:          dprec.ZeroVec3(),
		InnerRadius:       ambientRadius,
		OuterRadius:       ambientRadius,
		ReflectionTexture: texture,
		RefractionTexture: texture,
	})
}

func (p *Provider) AddDirectionalLight(light schema.DirectionalLight) {
	p.scene.Graphics().CreateDirectionalLight(directionalLightInfo(light))
}

func (p *Provider) AddPointLight(light schema.PointLight) scene.PointLight {
	return &PointLight{
		color: light.Color.RGB(),
		light: p.scene.Graphics().CreatePointLight(pointLightInfo(light)),
	}
}

func directionalLightInfo(light schema.DirectionalLight) graphics.DirectionalLightInfo {
	return graphics.DirectionalLightInfo{
		Position:   light.Position,
		Rotation:   lookRotation(light.Position, dprec.ZeroVec3()),
		EmitColor:  dprec.Vec3Prod(light.Color.RGB(), light.Intensity),
		CastShadow: light.CastShadow,
	}
}

func pointLightInfo(light schema.PointLight) graphics.PointLightInfo {
	return graphics.PointLightInfo{
		Position:   light.Position,
		EmitRange:  light.Distance,
		EmitColor:  dprec.Vec3Prod(light.Color.RGB(), light.Intensity),
		CastShadow: light.CastShadow,
	}
}

// skip logs an unsupported feature once per kind.
func (p *Provider) skip(kind, reason string, attrs ...any) {
	if _, ok := p.skipped[kind]; ok {
		return
	}
	p.skipped[kind] = struct{}{}
	p.logger.Debug("Skipping "+kind+": "+reason, attrs...)
}

// lookRotation orients the -Z axis from one point towards another.
func lookRotation(from, to dprec.Vec3) dprec.Quat {
	dir := dprec.Vec3Diff(from, to)
	length := dir.Length()
	if length == 0 {
		return dprec.IdentityQuat()
	}
	yaw := math.Atan2(dir.X, dir.Z)
	pitch := math.Asin(dir.Y / length)
	return dprec.QuatProd(
		dprec.RotationQuat(dprec.Radians(yaw), dprec.BasisYVec3()),
		dprec.RotationQuat(dprec.Radians(-pitch), dprec.BasisXVec3()),
	)
}

type texture string

func (t texture) Path() string {
	return string(t)
}
