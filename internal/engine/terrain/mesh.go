package terrain

import (
	"github.com/Faultbox/terraview/pkg/math"
)

// Mesh is a generated terrain surface. Indices holds triangle triples,
// flattened. Normals are the raw sums of adjacent face normals and are not
// renormalized.
type Mesh struct {
	Vertices []math.Vec3
	Indices  []uint32
	Normals  []math.Vec3
}

// Vertex is the interleaved GPU layout: position then normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Interleave packs positions and normals for upload.
func (m *Mesh) Interleave() []Vertex {
	out := make([]Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = Vertex{Position: v.Array(), Normal: m.Normals[i].Array()}
	}
	return out
}

// Bounds returns the bounding box of all vertices. An empty mesh has zero
// bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min.X = min(b.Min.X, v.X)
		b.Min.Y = min(b.Min.Y, v.Y)
		b.Min.Z = min(b.Min.Z, v.Z)
		b.Max.X = max(b.Max.X, v.X)
		b.Max.Y = max(b.Max.Y, v.Y)
		b.Max.Z = max(b.Max.Z, v.Z)
	}
	return b
}

// Equal reports whether two meshes have identical vertex, index and normal
// sequences.
func (m *Mesh) Equal(other *Mesh) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.Vertices) != len(other.Vertices) ||
		len(m.Indices) != len(other.Indices) ||
		len(m.Normals) != len(other.Normals) {
		return false
	}
	for i := range m.Vertices {
		if m.Vertices[i] != other.Vertices[i] || m.Normals[i] != other.Normals[i] {
			return false
		}
	}
	for i := range m.Indices {
		if m.Indices[i] != other.Indices[i] {
			return false
		}
	}
	return true
}
