package terrain

import (
	"fmt"

	"github.com/Faultbox/terraview/pkg/math"
	"github.com/Faultbox/terraview/pkg/noise"
)

// SampleScale divides planar coordinates before sampling the noise field.
const SampleScale = 1.5

// Generator builds meshes with a fixed noise backend.
type Generator struct {
	kind   noise.Kind
	source func(seed uint32) noise.Source
}

// NewGenerator returns a generator for the given noise backend.
func NewGenerator(kind noise.Kind) (*Generator, error) {
	if _, err := noise.New(kind, 0); err != nil {
		return nil, err
	}
	return &Generator{
		kind: kind,
		source: func(seed uint32) noise.Source {
			src, _ := noise.New(kind, seed)
			return src
		},
	}, nil
}

// Kind returns the generator's noise backend.
func (g *Generator) Kind() noise.Kind {
	return g.kind
}

var defaultGenerator, _ = NewGenerator(noise.KindPerlin)

// Generate builds a mesh with Perlin noise. See Generator.Generate.
func Generate(p Parameters) *Mesh {
	return defaultGenerator.Generate(p)
}

// Generate builds a flat grid for p, displaces it with noise seeded by
// p.Seed and recomputes normals. The result depends only on p.
//
// p must satisfy Validate; the editing boundary guarantees this, so an
// invalid p is a programming error and panics.
func (g *Generator) Generate(p Parameters) *Mesh {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("terrain: generate called with invalid parameters: %v", err))
	}

	mesh := buildPlane(p.Size, p.Subdivisions)
	displace(mesh.Vertices, g.source(p.Seed))
	CalculateNormals(mesh)
	return mesh
}

// buildPlane creates a size x size grid in the XZ plane centered on the
// origin with n x n cells. Vertices are row-major, z outer and x inner. Each
// cell is split along its (i+1,j)-(i,j+1) diagonal into two triangles wound
// counter-clockwise seen from +Y.
func buildPlane(size float32, n uint32) *Mesh {
	side := int(n) + 1
	half := size / 2
	step := size / float32(n)

	vertices := make([]math.Vec3, 0, side*side)
	for j := 0; j < side; j++ {
		z := float32(j)*step - half
		for i := 0; i < side; i++ {
			x := float32(i)*step - half
			vertices = append(vertices, math.Vec3{X: x, Z: z})
		}
	}

	indices := make([]uint32, 0, int(n)*int(n)*6)
	for j := 0; j < int(n); j++ {
		for i := 0; i < int(n); i++ {
			a := uint32(j*side + i)
			b := a + 1
			c := a + uint32(side)
			d := c + 1
			indices = append(indices,
				a, c, b,
				b, c, d,
			)
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Normals:  make([]math.Vec3, len(vertices)),
	}
}

// displace sets each vertex height from the noise field sampled at its
// planar position divided by SampleScale.
func displace(vertices []math.Vec3, src noise.Source) {
	for i := range vertices {
		v := &vertices[i]
		v.Y = float32(src.Noise2D(float64(v.X)/SampleScale, float64(v.Z)/SampleScale))
	}
}

// CalculateNormals clears the mesh normals and accumulates each triangle's
// unit face normal into its three vertices. Degenerate triangles add nothing.
func CalculateNormals(mesh *Mesh) {
	if len(mesh.Normals) != len(mesh.Vertices) {
		mesh.Normals = make([]math.Vec3, len(mesh.Vertices))
	} else {
		clear(mesh.Normals)
	}

	pos := mesh.Vertices
	for t := 0; t+2 < len(mesh.Indices); t += 3 {
		a, b, c := mesh.Indices[t], mesh.Indices[t+1], mesh.Indices[t+2]

		n := pos[b].Sub(pos[a]).Cross(pos[c].Sub(pos[a])).Normalize()

		mesh.Normals[a] = mesh.Normals[a].Add(n)
		mesh.Normals[b] = mesh.Normals[b].Add(n)
		mesh.Normals[c] = mesh.Normals[c].Add(n)
	}
}
