package world

import (
	"math"
	"testing"

	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/lacking/render"

	"github.com/nobonobo/firefly-house/schema"
)

// checkFaces verifies that every triangle is wound counter-clockwise around
// its normal and that the normal points away from center.
func checkFaces(t *testing.T, s shape, center dprec.Vec3) {
	t.Helper()
	if len(s.indices)%3 != 0 || len(s.coords) != len(s.normals) {
		t.Fatalf("malformed shape: %d indices, %d coords, %d normals", len(s.indices), len(s.coords), len(s.normals))
	}
	for i := 0; i < len(s.indices); i += 3 {
		a, b, c := s.coords[s.indices[i]], s.coords[s.indices[i+1]], s.coords[s.indices[i+2]]
		normal := s.normals[s.indices[i]]
		if math.Abs(normal.Length()-1) > 1e-9 {
			t.Fatalf("triangle %d normal %+v not unit", i/3, normal)
		}
		cross := dprec.Vec3Cross(dprec.Vec3Diff(b, a), dprec.Vec3Diff(c, a))
		if dprec.Vec3Dot(cross, normal) <= 0 {
			t.Fatalf("triangle %d wound against its normal", i/3)
		}
		centroid := dprec.Vec3Quot(dprec.Vec3MultiSum(a, b, c), 3)
		if dprec.Vec3Dot(dprec.Vec3Diff(centroid, center), normal) <= 0 {
			t.Fatalf("triangle %d normal %+v points inwards", i/3, normal)
		}
	}
}

func TestMeshShapeBox(t *testing.T) {
	s, ok := meshShape(schema.Mesh{Kind: schema.MeshKindBox, Size: dprec.NewVec3(4, 2.5, 4)})
	if !ok {
		t.Fatal("box not supported")
	}
	if len(s.indices) != 36 {
		t.Fatalf("%d indices, want 36", len(s.indices))
	}
	checkFaces(t, s, dprec.ZeroVec3())
	for _, c := range s.coords {
		if math.Abs(c.X) != 2 || math.Abs(c.Y) != 1.25 || math.Abs(c.Z) != 2 {
			t.Fatalf("vertex %+v off the box corners", c)
		}
	}
}

func TestMeshShapePlaneFacesUpWhenRotated(t *testing.T) {
	s, ok := meshShape(schema.Mesh{Kind: schema.MeshKindPlane, Size: dprec.NewVec3(20, 20, 0)})
	if !ok {
		t.Fatal("plane not supported")
	}
	if len(s.indices) != 6 {
		t.Fatalf("%d indices, want 6", len(s.indices))
	}
	for _, n := range s.normals {
		if n != dprec.BasisZVec3() {
			t.Fatalf("plane normal %+v", n)
		}
	}
	up := dprec.QuatVec3Rotation(eulerQuat(dprec.NewVec3(-math.Pi/2, 0, 0)), dprec.BasisZVec3())
	if dprec.Vec3Diff(up, dprec.BasisYVec3()).Length() > 1e-9 {
		t.Fatalf("rotated floor normal %+v, want +Y", up)
	}
}

func TestMeshShapeCone(t *testing.T) {
	s, ok := meshShape(schema.Mesh{Kind: schema.MeshKindCone, Size: dprec.NewVec3(3.5, 1.5, 0), Segments: 4})
	if !ok {
		t.Fatal("cone not supported")
	}
	// four sides plus a four triangle base
	if len(s.indices) != 24 {
		t.Fatalf("%d indices, want 24", len(s.indices))
	}
	checkFaces(t, s, dprec.ZeroVec3())

	var apex bool
	for _, c := range s.coords {
		if c.Y == 0.75 && c.X == 0 && c.Z == 0 {
			apex = true
		}
		if c.Y != 0.75 && c.Y != -0.75 {
			t.Fatalf("vertex %+v outside cone height", c)
		}
		if r := math.Hypot(c.X, c.Z); r > 3.5+1e-9 {
			t.Fatalf("vertex %+v outside cone radius", c)
		}
	}
	if !apex {
		t.Fatal("apex missing")
	}
}

func TestMeshShapeConeDefaultSegments(t *testing.T) {
	s, _ := meshShape(schema.Mesh{Kind: schema.MeshKindCone, Size: dprec.NewVec3(1, 1, 0)})
	if len(s.indices) != defaultConeSegments*6 {
		t.Fatalf("%d indices", len(s.indices))
	}
}

func TestMeshShapeUnknownKind(t *testing.T) {
	if _, ok := meshShape(schema.Mesh{Kind: "torus"}); ok {
		t.Fatal("expected unknown kind to be rejected")
	}
}

func TestStarShape(t *testing.T) {
	stars := schema.Points{
		Positions: []dprec.Vec3{
			dprec.NewVec3(10, 30, -5),
			dprec.NewVec3(-40, 60, 20),
		},
	}
	s := starShape(stars, 0.2)
	if len(s.indices) != 72 {
		t.Fatalf("%d indices, want 72", len(s.indices))
	}
	for i, star := range stars.Positions {
		part := shape{
			coords:  s.coords[i*36 : (i+1)*36],
			normals: s.normals[i*36 : (i+1)*36],
		}
		for j := range part.coords {
			part.indices = append(part.indices, uint32(j))
		}
		checkFaces(t, part, star)
		for _, c := range part.coords {
			d := dprec.Vec3Diff(c, star)
			if math.Abs(d.X) > 0.1+1e-9 || math.Abs(d.Y) > 0.1+1e-9 || math.Abs(d.Z) > 0.1+1e-9 {
				t.Fatalf("star %d vertex %+v too far from %+v", i, c, star)
			}
		}
	}
}

func TestGeometryInfo(t *testing.T) {
	s, _ := meshShape(schema.Mesh{Kind: schema.MeshKindBox, Size: dprec.NewVec3(4, 2.5, 4)})
	info := s.geometryInfo()
	if len(info.Fragments) != 1 {
		t.Fatalf("%d fragments", len(info.Fragments))
	}
	fragment := info.Fragments[0]
	if fragment.Topology != render.TopologyTriangleList || fragment.IndexCount != 36 {
		t.Fatalf("fragment %+v", fragment)
	}
	if !info.VertexFormat.Coord.Specified || !info.VertexFormat.Normal.Specified {
		t.Fatalf("vertex format lacks coords or normals: %+v", info.VertexFormat)
	}
	want := math.Sqrt(2*2 + 1.25*1.25 + 2*2)
	if math.Abs(info.BoundingSphereRadius-want) > 1e-5 {
		t.Fatalf("bounding radius %v, want %v", info.BoundingSphereRadius, want)
	}
}
