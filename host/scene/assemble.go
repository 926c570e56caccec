package scene

import (
	"log/slog"

	"github.com/nobonobo/firefly-house/schema"
)

// Scene is the result of assembling a blueprint: the handles the render
// loop needs plus its initial state.
type Scene struct {
	State    *RenderState
	Renderer Renderer
	Camera   Camera
	Controls Controls
}

// Assemble populates the provider from the blueprint. It runs once, before
// the first tick.
func Assemble(provider Provider, blueprint schema.Blueprint, logger *slog.Logger) *Scene {
	if logger == nil {
		logger = slog.Default()
	}

	renderer := provider.SetupRenderer(blueprint.ShadowMap, blueprint.ShadowType)
	camera := provider.SetupCamera(blueprint.Camera)

	textures := make(map[string]Texture)
	for _, mesh := range blueprint.Meshes {
		var texture Texture
		if mesh.Texture != "" {
			var ok bool
			if texture, ok = textures[mesh.Texture]; !ok {
				texture = provider.LoadTexture(mesh.Texture)
				textures[mesh.Texture] = texture
			}
		}
		provider.AddMesh(mesh, texture)
	}

	state := &RenderState{
		Fireflies: make([]Firefly, len(blueprint.Fireflies)),
	}
	for i, light := range blueprint.Fireflies {
		state.Fireflies[i] = Firefly{
			Position:  light.Position,
			Intensity: light.Intensity,
			Distance:  light.Distance,
			Color:     light.Color,
			Light:     provider.AddPointLight(light),
		}
	}

	provider.AddPoints(blueprint.Stars)
	provider.AddAmbientLight(blueprint.Ambient)
	provider.AddDirectionalLight(blueprint.Directional)

	controls := provider.AttachControls(camera, blueprint.Camera.Target)

	logger.Info("Scene assembled",
		slog.Int("meshes", len(blueprint.Meshes)),
		slog.Int("textures", len(textures)),
		slog.Int("fireflies", len(state.Fireflies)),
		slog.Int("stars", len(blueprint.Stars.Positions)),
	)
	return &Scene{
		State:    state,
		Renderer: renderer,
		Camera:   camera,
		Controls: controls,
	}
}
