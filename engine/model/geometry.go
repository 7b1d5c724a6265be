package model

import "math"

// BuildTriforce builds the classic three-triangle arrangement: two triangles
// side by side with a third resting on top of them, leaving an inverted
// triangular hole in the middle. The mesh lies in the XY plane facing +Z,
// with the bottom edge on y = 0 and x centered on the origin.
//
// Parameters:
//   - side: the edge length of each of the three triangles
//
// Returns:
//   - []GPUVertex: 9 vertices (3 per triangle)
//   - []uint32: 9 indices forming a triangle list
func BuildTriforce(side float32) ([]GPUVertex, []uint32) {
	h := side * float32(math.Sqrt(3)) / 2

	vertices := make([]GPUVertex, 0, 9)
	emit := func(x, y float32) {
		// UVs span the triforce's bounding box.
		vertices = append(vertices, GPUVertex{
			Position: [3]float32{x, y, 0},
			Normal:   [3]float32{0, 0, 1},
			TexCoord: [2]float32{(x + side) / (2 * side), 1 - y/(2*h)},
		})
	}
	triangle := func(x, y float32) {
		emit(x, y)
		emit(x+side, y)
		emit(x+side/2, y+h)
	}

	triangle(-side, 0)   // bottom left
	triangle(0, 0)       // bottom right
	triangle(-side/2, h) // top

	indices := make([]uint32, 9)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return vertices, indices
}

// BuildGroundPlane builds a quad in the XZ plane with its normal facing +Y,
// centered on the origin at the given height.
//
// Parameters:
//   - size: the edge length of the quad
//   - y: the height of the plane
//   - uvRepeat: how many times the texture tiles across the quad
//
// Returns:
//   - []GPUVertex: 4 corner vertices
//   - []uint32: 6 indices forming two triangles
func BuildGroundPlane(size, y, uvRepeat float32) ([]GPUVertex, []uint32) {
	half := size / 2
	up := [3]float32{0, 1, 0}

	vertices := []GPUVertex{
		{Position: [3]float32{-half, y, -half}, Normal: up, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{half, y, -half}, Normal: up, TexCoord: [2]float32{uvRepeat, 0}},
		{Position: [3]float32{half, y, half}, Normal: up, TexCoord: [2]float32{uvRepeat, uvRepeat}},
		{Position: [3]float32{-half, y, half}, Normal: up, TexCoord: [2]float32{0, uvRepeat}},
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}
	return vertices, indices
}
