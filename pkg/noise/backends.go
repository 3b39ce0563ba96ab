package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Perlin octave settings: alpha=2, beta=2, three octaves keep the summed
// output close to [-1, 1] while adding some fine detail.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// Perlin is gradient noise backed by github.com/aquilax/go-perlin.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a Perlin source for seed.
func NewPerlin(seed uint32) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, int64(seed))}
}

// Noise2D samples the field at (x, y).
func (n *Perlin) Noise2D(x, y float64) float64 {
	return n.p.Noise2D(x, y)
}

// OpenSimplex is simplex-style noise backed by github.com/ojrac/opensimplex-go.
type OpenSimplex struct {
	n opensimplex.Noise
}

// NewOpenSimplex creates an OpenSimplex source for seed.
func NewOpenSimplex(seed uint32) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New(int64(seed))}
}

// Noise2D samples the field at (x, y).
func (n *OpenSimplex) Noise2D(x, y float64) float64 {
	return n.n.Eval2(x, y)
}
