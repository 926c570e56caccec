package schema

import (
	"fmt"

	"github.com/mokiat/gomath/dprec"
)

// Color is a 0xRRGGBB color value.
type Color uint32

// RGB returns the color as normalized linear components.
func (c Color) RGB() dprec.Vec3 {
	return dprec.NewVec3(
		float64((c>>16)&0xFF)/255.0,
		float64((c>>8)&0xFF)/255.0,
		float64(c&0xFF)/255.0,
	)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

type MeshKind string

const (
	MeshKindPlane MeshKind = "plane"
	MeshKindBox   MeshKind = "box"
	MeshKindCone  MeshKind = "cone"
)

type ShadowType string

const (
	ShadowTypeBasic   ShadowType = "basic"
	ShadowTypePCF     ShadowType = "pcf"
	ShadowTypePCFSoft ShadowType = "pcf-soft"
)

type Camera struct {
	FoV      float64    `json:"fov"`
	Near     float64    `json:"near"`
	Far      float64    `json:"far"`
	Position dprec.Vec3 `json:"position"`
	Target   dprec.Vec3 `json:"target"`
}

// Mesh describes one drawable. Size holds width, height and depth for
// planes and boxes; for cones X is the radius and Y the height. Color is
// used when the mesh has no texture or the renderer cannot draw it.
type Mesh struct {
	Name          string     `json:"name"`
	Group         string     `json:"group,omitempty"`
	Kind          MeshKind   `json:"kind"`
	Size          dprec.Vec3 `json:"size"`
	Segments      int        `json:"segments,omitempty"`
	Texture       string     `json:"texture,omitempty"`
	Color         Color      `json:"color,omitempty"`
	Position      dprec.Vec3 `json:"position"`
	Rotation      dprec.Vec3 `json:"rotation"`
	CastShadow    bool       `json:"castShadow"`
	ReceiveShadow bool       `json:"receiveShadow"`
}

type Points struct {
	Name      string       `json:"name"`
	Color     Color        `json:"color"`
	Size      float64      `json:"size"`
	Positions []dprec.Vec3 `json:"positions"`
}

type AmbientLight struct {
	Color     Color   `json:"color"`
	Intensity float64 `json:"intensity"`
}

type Shadow struct {
	MapSize int     `json:"mapSize"`
	Near    float64 `json:"near"`
	Far     float64 `json:"far"`
}

type DirectionalLight struct {
	Color      Color      `json:"color"`
	Intensity  float64    `json:"intensity"`
	Position   dprec.Vec3 `json:"position"`
	CastShadow bool       `json:"castShadow"`
	Shadow     Shadow     `json:"shadow"`
}

type PointLight struct {
	Color      Color      `json:"color"`
	Intensity  float64    `json:"intensity"`
	Distance   float64    `json:"distance"`
	Position   dprec.Vec3 `json:"position"`
	CastShadow bool       `json:"castShadow"`
}

// Blueprint is the complete static description of the scene, built once
// at startup and handed to a provider.
type Blueprint struct {
	Camera      Camera           `json:"camera"`
	ShadowMap   bool             `json:"shadowMap"`
	ShadowType  ShadowType       `json:"shadowType"`
	Meshes      []Mesh           `json:"meshes"`
	Stars       Points           `json:"stars"`
	Ambient     AmbientLight     `json:"ambient"`
	Directional DirectionalLight `json:"directional"`
	Fireflies   []PointLight     `json:"fireflies"`
}
