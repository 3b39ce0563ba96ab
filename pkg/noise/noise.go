// Package noise wraps the coherent-noise libraries used for heightmap
// displacement behind a single seeded 2D source.
package noise

import (
	"fmt"
	"strings"
)

// Source is a deterministic, continuous 2D noise function returning values
// roughly within [-1, 1].
type Source interface {
	Noise2D(x, y float64) float64
}

// Kind selects a noise backend.
type Kind string

const (
	KindPerlin      Kind = "perlin"
	KindOpenSimplex Kind = "opensimplex"
)

// Kinds lists the supported backends in display order.
var Kinds = []Kind{KindPerlin, KindOpenSimplex}

// ParseKind converts a config or flag value to a Kind. The empty string
// selects Perlin.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindPerlin:
		return KindPerlin, nil
	case KindOpenSimplex, "simplex":
		return KindOpenSimplex, nil
	}
	return "", fmt.Errorf("unknown noise kind %q", s)
}

// New returns the backend for kind seeded with seed.
func New(kind Kind, seed uint32) (Source, error) {
	switch kind {
	case KindPerlin, "":
		return NewPerlin(seed), nil
	case KindOpenSimplex:
		return NewOpenSimplex(seed), nil
	}
	return nil, fmt.Errorf("unknown noise kind %q", kind)
}
