package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/terraview/internal/engine/camera"
	"github.com/Faultbox/terraview/internal/engine/terrain"
	"github.com/Faultbox/terraview/pkg/math"
)

const eps = 1e-3

func nearVec(a, b math.Vec3) bool {
	return gomath.Abs(float64(a.X-b.X)) < eps &&
		gomath.Abs(float64(a.Y-b.Y)) < eps &&
		gomath.Abs(float64(a.Z-b.Z)) < eps
}

func flatPlane() *terrain.Mesh {
	m := terrain.Generate(terrain.Parameters{Seed: 1, Size: 10, Subdivisions: 4})
	for i := range m.Vertices {
		m.Vertices[i].Y = 0
	}
	return m
}

func TestScreenRayCenterIsForward(t *testing.T) {
	tr := camera.NewOrbitCamera().Transform()
	r := ScreenRay(tr, 45, 400, 300, 800, 600)
	if !nearVec(r.Direction, tr.Forward()) {
		t.Errorf("center ray %v, want forward %v", r.Direction, tr.Forward())
	}
	if r.Origin != tr.Position {
		t.Errorf("origin %v, want camera position %v", r.Origin, tr.Position)
	}
}

func TestScreenRayCornersSpread(t *testing.T) {
	tr := camera.NewOrbitCamera().Transform()
	right := tr.Forward().Cross(tr.Up())

	left := ScreenRay(tr, 45, 0, 300, 800, 600)
	rightEdge := ScreenRay(tr, 45, 800, 300, 800, 600)
	if left.Direction.Dot(right) >= 0 || rightEdge.Direction.Dot(right) <= 0 {
		t.Error("edge rays should lean toward their side of the screen")
	}

	top := ScreenRay(tr, 45, 400, 0, 800, 600)
	if top.Direction.Dot(tr.Up()) <= 0 {
		t.Error("top ray should lean up")
	}
}

func TestPickFlatTerrain(t *testing.T) {
	m := flatPlane()
	r := Ray{Origin: math.Vec3{X: 1.3, Y: 5, Z: -2.2}, Direction: math.Vec3{Y: -1}}

	p, ok := PickTerrain(r, m)
	if !ok {
		t.Fatal("vertical ray over the plane should hit")
	}
	if !nearVec(p, math.Vec3{X: 1.3, Z: -2.2}) {
		t.Errorf("hit %v, want (1.3, 0, -2.2)", p)
	}
}

func TestPickFromBelow(t *testing.T) {
	m := flatPlane()
	r := Ray{Origin: math.Vec3{X: 0.7, Y: -3, Z: 0.4}, Direction: math.Vec3{Y: 1}}
	if _, ok := PickTerrain(r, m); !ok {
		t.Error("triangles should be hit from both sides")
	}
}

func TestPickMiss(t *testing.T) {
	m := flatPlane()
	tests := []Ray{
		{Origin: math.Vec3{X: 20, Y: 5}, Direction: math.Vec3{Y: -1}},
		{Origin: math.Vec3{Y: 5}, Direction: math.Vec3{Y: 1}},
		{Origin: math.Vec3{Y: 5}, Direction: math.Vec3{X: 1}},
	}
	for i, r := range tests {
		if p, ok := PickTerrain(r, m); ok {
			t.Errorf("ray %d hit at %v, want miss", i, p)
		}
	}
	if _, ok := PickTerrain(Ray{Direction: math.Vec3{Y: -1}}, nil); ok {
		t.Error("nil mesh should never be hit")
	}
}

func TestPickGeneratedTerrainSurface(t *testing.T) {
	m := terrain.Generate(terrain.Parameters{Seed: 9, Size: 10, Subdivisions: 10})
	r := Ray{Origin: math.Vec3{X: 2.3, Y: 50, Z: 2.6}, Direction: math.Vec3{Y: -1}}

	p, ok := PickTerrain(r, m)
	if !ok {
		t.Fatal("expected a hit")
	}
	if gomath.Abs(float64(p.X-2.3)) > eps || gomath.Abs(float64(p.Z-2.6)) > eps {
		t.Errorf("hit %v is off the vertical ray", p)
	}

	// The hit lies on the cell spanning x and z in [2, 3].
	lo, hi := float32(gomath.MaxFloat32), float32(-gomath.MaxFloat32)
	for _, i := range []int{7*11 + 7, 7*11 + 8, 8*11 + 7, 8*11 + 8} {
		lo = min(lo, m.Vertices[i].Y)
		hi = max(hi, m.Vertices[i].Y)
	}
	if p.Y < lo-eps || p.Y > hi+eps {
		t.Errorf("hit height %v outside cell heights [%v, %v]", p.Y, lo, hi)
	}
}

func TestIntersectBoundsInside(t *testing.T) {
	b := terrain.Bounds{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	tmin, tmax, hit := Ray{Direction: math.Vec3{X: 1}}.IntersectBounds(b)
	if !hit || tmin >= 0 || tmax != 1 {
		t.Errorf("inside ray: tmin %v tmax %v hit %v", tmin, tmax, hit)
	}
}
