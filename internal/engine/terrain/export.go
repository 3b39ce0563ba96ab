package terrain

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/terraview/pkg/noise"
)

// Summary describes a generated mesh.
type Summary struct {
	Noise        noise.Kind `yaml:"noise"`
	Seed         uint32     `yaml:"seed"`
	Size         float32    `yaml:"size"`
	Subdivisions uint32     `yaml:"subdivisions"`
	Vertices     int        `yaml:"vertices"`
	Triangles    int        `yaml:"triangles"`
	Min          [3]float32 `yaml:"min"`
	Max          [3]float32 `yaml:"max"`
	Relief       float32    `yaml:"relief"` // max height - min height
}

// Summarize describes m, generated from p with the given noise.
func Summarize(kind noise.Kind, p Parameters, m *Mesh) Summary {
	b := m.Bounds()
	return Summary{
		Noise:        kind,
		Seed:         p.Seed,
		Size:         p.Size,
		Subdivisions: p.Subdivisions,
		Vertices:     len(m.Vertices),
		Triangles:    m.TriangleCount(),
		Min:          b.Min.Array(),
		Max:          b.Max.Array(),
		Relief:       b.Max.Y - b.Min.Y,
	}
}

// WriteOBJ writes m as a Wavefront OBJ with per-vertex normals. Normals are
// normalized on output.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, n := range m.Normals {
		n = n.Normalize()
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing obj: %w", err)
	}
	return nil
}
