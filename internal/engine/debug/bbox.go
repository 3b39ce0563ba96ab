package debug

import "github.com/Faultbox/terraview/internal/engine/terrain"

// BoundsLineVertexCount is the number of line vertices in a box outline
// (12 edges, 2 endpoints each).
const BoundsLineVertexCount = 24

// BoundsLines returns GL_LINES vertices, xyz per vertex, outlining b grown by
// padding on every side.
func BoundsLines(b terrain.Bounds, padding float32) []float32 {
	minX, minY, minZ := b.Min.X-padding, b.Min.Y-padding, b.Min.Z-padding
	maxX, maxY, maxZ := b.Max.X+padding, b.Max.Y+padding, b.Max.Z+padding

	return []float32{
		// Bottom
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Verticals
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}
