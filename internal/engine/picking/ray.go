// Package picking casts rays from the camera into the terrain.
package picking

import (
	gomath "math"

	"github.com/Faultbox/terraview/internal/engine/camera"
	"github.com/Faultbox/terraview/internal/engine/terrain"
	"github.com/Faultbox/terraview/pkg/math"
)

// Ray is a half-line from Origin along a unit Direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenRay returns the ray through pixel (x, y) of a w x h viewport seen by
// a camera with the given vertical field of view in degrees.
func ScreenRay(tr camera.Transform, fovY, x, y, w, h float32) Ray {
	ndcX := 2*x/w - 1
	ndcY := 1 - 2*y/h // screen Y grows downward

	tanHalf := float32(gomath.Tan(float64(math.Radians(fovY)) / 2))
	forward := tr.Forward()
	up := tr.Up()
	right := forward.Cross(up)

	dir := forward.
		Add(right.Scale(ndcX * tanHalf * w / h)).
		Add(up.Scale(ndcY * tanHalf))
	return Ray{Origin: tr.Position, Direction: dir.Normalize()}
}

// IntersectBounds returns the entry and exit distances of the ray through
// b. A ray starting inside b has a negative entry.
func (r Ray) IntersectBounds(b terrain.Bounds) (tmin, tmax float32, hit bool) {
	tmin = float32(-gomath.MaxFloat32)
	tmax = float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := b.Min.Array()
	hi := b.Max.Array()

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, 0, false
	}
	return tmin, tmax, true
}

const epsilon = 1e-7

// IntersectTriangle returns the distance to triangle abc, from either side.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -epsilon && det < epsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * inv
	return t, t >= 0
}

// PickTerrain returns the nearest point where the ray meets the mesh.
func PickTerrain(r Ray, m *terrain.Mesh) (math.Vec3, bool) {
	if m == nil || len(m.Indices) == 0 {
		return math.Vec3{}, false
	}
	if _, _, hit := r.IntersectBounds(m.Bounds()); !hit {
		return math.Vec3{}, false
	}

	best := float32(gomath.MaxFloat32)
	found := false
	pos := m.Vertices
	for i := 0; i+2 < len(m.Indices); i += 3 {
		t, hit := r.IntersectTriangle(pos[m.Indices[i]], pos[m.Indices[i+1]], pos[m.Indices[i+2]])
		if hit && t < best {
			best, found = t, true
		}
	}
	if !found {
		return math.Vec3{}, false
	}
	return r.At(best), true
}
