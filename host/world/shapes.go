package world

import (
	"math"

	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/render"

	"github.com/nobonobo/firefly-house/schema"
)

const defaultConeSegments = 32

// shape is a flat shaded triangle list in the local space of a mesh.
type shape struct {
	coords  []dprec.Vec3
	normals []dprec.Vec3
	indices []uint32
}

// meshShape builds the geometry for a mesh kind. Planes lie in the XY plane
// facing +Z and cones point up +Y with their base centered below the
// origin, as three.js lays them out.
func meshShape(mesh schema.Mesh) (shape, bool) {
	var s shape
	switch mesh.Kind {
	case schema.MeshKindPlane:
		s.quad(
			dprec.ZeroVec3(),
			dprec.NewVec3(mesh.Size.X/2, 0, 0),
			dprec.NewVec3(0, mesh.Size.Y/2, 0),
			dprec.BasisZVec3(),
		)
	case schema.MeshKindBox:
		s.box(dprec.ZeroVec3(), mesh.Size)
	case schema.MeshKindCone:
		segments := mesh.Segments
		if segments < 3 {
			segments = defaultConeSegments
		}
		s.cone(mesh.Size.X, mesh.Size.Y, segments)
	default:
		return shape{}, false
	}
	return s, true
}

// starShape merges all stars into one shape of small cubes.
func starShape(points schema.Points, edge float64) shape {
	var s shape
	size := dprec.NewVec3(edge, edge, edge)
	for _, position := range points.Positions {
		s.box(position, size)
	}
	return s
}

// triangle appends a triangle wound counter-clockwise when seen from the
// outward side.
func (s *shape) triangle(a, b, c, outward dprec.Vec3) {
	normal := dprec.UnitVec3(dprec.Vec3Cross(dprec.Vec3Diff(b, a), dprec.Vec3Diff(c, a)))
	if dprec.Vec3Dot(normal, outward) < 0 {
		b, c = c, b
		normal = dprec.InverseVec3(normal)
	}
	start := uint32(len(s.coords))
	s.coords = append(s.coords, a, b, c)
	s.normals = append(s.normals, normal, normal, normal)
	s.indices = append(s.indices, start, start+1, start+2)
}

// quad appends the rectangle spanning center±u±v.
func (s *shape) quad(center, u, v, outward dprec.Vec3) {
	p00 := dprec.Vec3MultiDiff(center, u, v)
	p10 := dprec.Vec3Diff(dprec.Vec3Sum(center, u), v)
	p11 := dprec.Vec3MultiSum(center, u, v)
	p01 := dprec.Vec3Diff(dprec.Vec3Sum(center, v), u)
	s.triangle(p00, p10, p11, outward)
	s.triangle(p00, p11, p01, outward)
}

func (s *shape) box(center, size dprec.Vec3) {
	hx := dprec.NewVec3(size.X/2, 0, 0)
	hy := dprec.NewVec3(0, size.Y/2, 0)
	hz := dprec.NewVec3(0, 0, size.Z/2)
	s.quad(dprec.Vec3Sum(center, hx), hy, hz, dprec.BasisXVec3())
	s.quad(dprec.Vec3Diff(center, hx), hy, hz, dprec.InverseVec3(dprec.BasisXVec3()))
	s.quad(dprec.Vec3Sum(center, hy), hx, hz, dprec.BasisYVec3())
	s.quad(dprec.Vec3Diff(center, hy), hx, hz, dprec.InverseVec3(dprec.BasisYVec3()))
	s.quad(dprec.Vec3Sum(center, hz), hx, hy, dprec.BasisZVec3())
	s.quad(dprec.Vec3Diff(center, hz), hx, hy, dprec.InverseVec3(dprec.BasisZVec3()))
}

func (s *shape) cone(radius, height float64, segments int) {
	apex := dprec.NewVec3(0, height/2, 0)
	base := dprec.NewVec3(0, -height/2, 0)
	down := dprec.InverseVec3(dprec.BasisYVec3())
	ring := func(i int) dprec.Vec3 {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		return dprec.NewVec3(radius*math.Sin(theta), -height/2, radius*math.Cos(theta))
	}
	for i := range segments {
		a, b := ring(i), ring(i+1)
		mid := 2 * math.Pi * (float64(i) + 0.5) / float64(segments)
		s.triangle(apex, a, b, dprec.NewVec3(math.Sin(mid), 0, math.Cos(mid)))
		s.triangle(base, a, b, down)
	}
}

// geometryInfo packs the shape into a single triangle fragment.
func (s shape) geometryInfo() graphics.MeshGeometryInfo {
	builder := graphics.NewMeshGeometryBuilder(
		graphics.MeshGeometryBuilderWithCoords(),
		graphics.MeshGeometryBuilderWithNormals(),
	)
	for i := range s.coords {
		builder.Vertex().
			CoordVec3(toSprec(s.coords[i])).
			NormalVec3(toSprec(s.normals[i]))
	}
	offset := builder.IndexOffset()
	for _, index := range s.indices {
		builder.Index(index)
	}
	builder.Fragment(render.TopologyTriangleList, offset, uint32(len(s.indices)))
	return builder.BuildInfo()
}

// eulerQuat converts XYZ Euler angles, the three.js default order.
func eulerQuat(rotation dprec.Vec3) dprec.Quat {
	return dprec.QuatProd(
		dprec.QuatProd(
			dprec.RotationQuat(dprec.Radians(rotation.X), dprec.BasisXVec3()),
			dprec.RotationQuat(dprec.Radians(rotation.Y), dprec.BasisYVec3()),
		),
		dprec.RotationQuat(dprec.Radians(rotation.Z), dprec.BasisZVec3()),
	)
}

func toSprec(v dprec.Vec3) sprec.Vec3 {
	return sprec.NewVec3(float32(v.X), float32(v.Y), float32(v.Z))
}
