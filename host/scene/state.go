package scene

import (
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/firefly-house/schema"
)

// Firefly is a flickering point light. Position and Intensity are the
// authoritative values; Light mirrors them into the scene graph.
type Firefly struct {
	Position  dprec.Vec3
	Intensity float64
	Distance  float64
	Color     schema.Color
	Light     PointLight
}

// RenderState is everything the render loop mutates between frames. It is
// owned by a single Driver and must only be touched from its tick.
type RenderState struct {
	Time      float64
	Frame     uint64
	Fireflies []Firefly

	Width  int
	Height int
}
