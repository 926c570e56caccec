package world

import (
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/render"

	"github.com/nobonobo/firefly-house/schema"
)

const litShaderSource = `
uniform color vec4
uniform metallic float
uniform roughness float

func #fragment() {
  #color = color
  #normal = normalize(#varyingNormal)
  #metallic = metallic
  #roughness = roughness
}
`

const unlitShaderSource = `
uniform color vec4

func #fragment() {
  #color = color
}
`

const surfaceRoughness = 0.9

type surfaceKey struct {
	color      schema.Color
	unlit      bool
	castShadow bool
	twoSided   bool
}

// surfaces creates and caches flat colored materials.
type surfaces struct {
	engine *graphics.Engine

	litShader    *graphics.Shader
	unlitShader  *graphics.Shader
	shadowShader *graphics.Shader
	materials    map[surfaceKey]*graphics.Material
}

func newSurfaces(engine *graphics.Engine) *surfaces {
	return &surfaces{
		engine:    engine,
		materials: make(map[surfaceKey]*graphics.Material),
	}
}

func (s *surfaces) material(key surfaceKey) *graphics.Material {
	if material, ok := s.materials[key]; ok {
		return material
	}
	info := graphics.MaterialInfo{
		Name: key.color.String(),
	}
	if key.unlit {
		info.ForwardPasses = []graphics.MaterialPassInfo{
			materialPass(s.shader(&s.unlitShader, graphics.ShaderTypeForward, unlitShaderSource), key.twoSided),
		}
	} else {
		info.GeometryPasses = []graphics.MaterialPassInfo{
			materialPass(s.shader(&s.litShader, graphics.ShaderTypeGeometry, litShaderSource), key.twoSided),
		}
	}
	if key.castShadow {
		info.ShadowPasses = []graphics.MaterialPassInfo{
			materialPass(s.shader(&s.shadowShader, graphics.ShaderTypeShadow, ""), key.twoSided),
		}
	}

	material := s.engine.CreateMaterial(info)
	material.SetProperty("color", colorVec4(key.color))
	if !key.unlit {
		material.SetProperty("metallic", float32(0.0))
		material.SetProperty("roughness", float32(surfaceRoughness))
	}
	s.materials[key] = material
	return material
}

func (s *surfaces) shader(slot **graphics.Shader, shaderType graphics.ShaderType, source string) *graphics.Shader {
	if *slot == nil {
		*slot = s.engine.CreateShader(graphics.ShaderInfo{
			ShaderType: shaderType,
			SourceCode: source,
		})
	}
	return *slot
}

func materialPass(shader *graphics.Shader, twoSided bool) graphics.MaterialPassInfo {
	culling := render.CullModeBack
	if twoSided {
		culling = render.CullModeNone
	}
	return graphics.MaterialPassInfo{
		Layer:           0,
		Culling:         opt.V(culling),
		FrontFace:       opt.V(render.FaceOrientationCCW),
		DepthTest:       opt.V(true),
		DepthWrite:      opt.V(true),
		DepthComparison: opt.V(render.ComparisonLessOrEqual),
		Blending:        opt.V(false),
		Shader:          shader,
	}
}

func colorVec4(c schema.Color) sprec.Vec4 {
	rgb := c.RGB()
	return sprec.NewVec4(float32(rgb.X), float32(rgb.Y), float32(rgb.Z), 1.0)
}

// ambientLayer is a single texel cube map of the ambient color scaled by
// its intensity.
func ambientLayer(light schema.AmbientLight) render.MipmapCubeLayer {
	rgb := light.Color.RGB()
	texel := []byte{
		channel(rgb.X * light.Intensity),
		channel(rgb.Y * light.Intensity),
		channel(rgb.Z * light.Intensity),
		0xFF,
	}
	side := func() []byte {
		return append([]byte(nil), texel...)
	}
	return render.MipmapCubeLayer{
		Dimension:      1,
		FrontSideData:  side(),
		BackSideData:   side(),
		LeftSideData:   side(),
		RightSideData:  side(),
		TopSideData:    side(),
		BottomSideData: side(),
	}
}

func channel(v float64) byte {
	return byte(min(max(v, 0), 1)*255 + 0.5)
}
