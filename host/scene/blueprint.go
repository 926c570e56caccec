package scene

import (
	"math"
	"path"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/firefly-house/host/config"
	"github.com/nobonobo/firefly-house/schema"
)

const (
	FireflyColor    schema.Color = 0xffff00
	FireflyDistance              = 5.0

	StarColor schema.Color = 0xffffff
	StarSize               = 0.05

	HouseGroup = "house"

	FloorTexture = "floor_texture.jpg"
	WallTexture  = "wall_texture.jpg"
	DoorTexture  = "door.jpg"

	// Colors shown where textures are not drawn.
	FloorColor schema.Color = 0x3b5323
	WallColor  schema.Color = 0xc2a27a
	DoorColor  schema.Color = 0x6b4226
	RoofColor  schema.Color = 0xb35f45
)

// NewBlueprint describes the whole scene. Firefly and star placement is
// drawn from rng, everything else is fixed.
func NewBlueprint(cfg config.Config, rng RandomSource) schema.Blueprint {
	texture := func(name string) string {
		return path.Join(cfg.TextureDir, name)
	}
	return schema.Blueprint{
		Camera: schema.Camera{
			FoV:      75,
			Near:     0.1,
			Far:      1000,
			Position: dprec.NewVec3(10, 10, 15),
			Target:   dprec.ZeroVec3(),
		},
		ShadowMap:  true,
		ShadowType: schema.ShadowTypePCFSoft,
		Meshes: []schema.Mesh{
			{
				Name:          "Floor",
				Kind:          schema.MeshKindPlane,
				Size:          dprec.NewVec3(20, 20, 0),
				Texture:       texture(FloorTexture),
				Color:         FloorColor,
				Position:      dprec.NewVec3(0, -1, 0),
				Rotation:      dprec.NewVec3(-math.Pi/2, 0, 0),
				ReceiveShadow: true,
			},
			{
				Name:       "Walls",
				Group:      HouseGroup,
				Kind:       schema.MeshKindBox,
				Size:       dprec.NewVec3(4, 2.5, 4),
				Texture:    texture(WallTexture),
				Color:      WallColor,
				Position:   dprec.NewVec3(0, 1.25-1, 0),
				CastShadow: true,
			},
			{
				Name:       "Roof",
				Group:      HouseGroup,
				Kind:       schema.MeshKindCone,
				Size:       dprec.NewVec3(3.5, 1.5, 0),
				Segments:   4,
				Color:      RoofColor,
				Position:   dprec.NewVec3(0, 2, 0),
				Rotation:   dprec.NewVec3(0, math.Pi*0.25, 0),
				CastShadow: true,
			},
			{
				Name:     "Door",
				Group:    HouseGroup,
				Kind:     schema.MeshKindPlane,
				Size:     dprec.NewVec3(1, 1.5, 0),
				Texture:  texture(DoorTexture),
				Color:    DoorColor,
				Position: dprec.NewVec3(0, 0.25, 2.01),
			},
		},
		Stars:   newStars(cfg.Stars, rng),
		Ambient: schema.AmbientLight{Color: 0x404040, Intensity: 0.5},
		Directional: schema.DirectionalLight{
			Color:      0xffffff,
			Intensity:  1,
			Position:   dprec.NewVec3(10, 10, 5),
			CastShadow: true,
			Shadow: schema.Shadow{
				MapSize: 1024,
				Near:    0.1,
				Far:     50,
			},
		},
		Fireflies: newFireflies(cfg.Fireflies, rng),
	}
}

func newFireflies(count int, rng RandomSource) []schema.PointLight {
	result := make([]schema.PointLight, count)
	for i := range result {
		result[i] = schema.PointLight{
			Color:     FireflyColor,
			Intensity: sampleIntensity(rng),
			Distance:  FireflyDistance,
			Position: dprec.NewVec3(
				rng.Float64()*20-10,
				rng.Float64()*5,
				rng.Float64()*20-10,
			),
		}
	}
	return result
}

func newStars(count int, rng RandomSource) schema.Points {
	positions := make([]dprec.Vec3, count)
	for i := range positions {
		positions[i] = dprec.NewVec3(
			rng.Float64()*100-50,
			rng.Float64()*50+20,
			rng.Float64()*100-50,
		)
	}
	return schema.Points{
		Name:      "Stars",
		Color:     StarColor,
		Size:      StarSize,
		Positions: positions,
	}
}
