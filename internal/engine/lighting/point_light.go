// Package lighting provides the point light that shades the terrain.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/terraview/pkg/math"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 4

// PointLight is an omnidirectional light with a smooth range cutoff.
// Intensity is in lumens and is spread evenly over the sphere.
type PointLight struct {
	Position  math.Vec3
	Color     [3]float32 // RGB color (0-1 range)
	Range     float32    // distance at which the light fades to zero
	Intensity float32
}

// DefaultPointLight returns a white 1500 lumen light ten units above the
// origin.
func DefaultPointLight() PointLight {
	return PointLight{
		Position:  math.Vec3{X: 0, Y: 10, Z: 0},
		Color:     [3]float32{1, 1, 1},
		Range:     20,
		Intensity: 1500,
	}
}

// Falloff returns the light reaching a point at squared distance distSq,
// before the surface angle is taken into account. The terrain shader uses
// the same formula.
func (l PointLight) Falloff(distSq float32) float32 {
	if l.Range <= 0 {
		return 0
	}
	ratio := distSq / (l.Range * l.Range)
	window := clamp01(1 - ratio*ratio)
	window *= window

	return l.Intensity / (4 * gomath.Pi) * window / max(distSq, 1e-4)
}

// Illuminance returns the light arriving at p on a surface with normal n.
// n need not be unit length.
func (l PointLight) Illuminance(p, n math.Vec3) float32 {
	toLight := l.Position.Sub(p)
	ndotl := n.Normalize().Dot(toLight.Normalize())
	if ndotl <= 0 {
		return 0
	}
	return l.Falloff(toLight.Dot(toLight)) * ndotl
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of lights in the buffer.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
}

// AddLight adds a point light to the buffer.
// Returns false if buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	return true
}

// SetLights replaces all lights in the buffer, keeping at most
// MaxPointLights.
func (b *PointLightBuffer) SetLights(lights ...PointLight) {
	b.Clear()
	b.Lights = append(b.Lights, lights[:min(len(lights), MaxPointLights)]...)
}

// Positions returns positions as a flat slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *PointLightBuffer) Positions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Position.X
		result[i*3+1] = light.Position.Y
		result[i*3+2] = light.Position.Z
	}
	return result
}

// Colors returns colors as a flat slice for GPU upload.
func (b *PointLightBuffer) Colors() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		copy(result[i*3:i*3+3], light.Color[:])
	}
	return result
}

// Ranges returns ranges as a flat slice for GPU upload.
func (b *PointLightBuffer) Ranges() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Range
	}
	return result
}

// Intensities returns intensities as a flat slice for GPU upload.
func (b *PointLightBuffer) Intensities() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Intensity
	}
	return result
}
