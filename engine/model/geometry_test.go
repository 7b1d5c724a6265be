package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTriforceShape(t *testing.T) {
	vertices, indices := BuildTriforce(2)
	require.Len(t, vertices, 9)
	require.Len(t, indices, 9)

	for _, v := range vertices {
		// Flat mesh in the XY plane, facing +Z.
		assert.Equal(t, float32(0), v.Position[2])
		assert.Equal(t, [3]float32{0, 0, 1}, v.Normal)
		// Bottom edge sits on y = 0, nothing below it.
		assert.GreaterOrEqual(t, v.Position[1], float32(0))
		// Centered horizontally on the bounding box [-2, 2].
		assert.GreaterOrEqual(t, v.Position[0], float32(-2))
		assert.LessOrEqual(t, v.Position[0], float32(2))
		// UVs stay in [0, 1].
		assert.GreaterOrEqual(t, v.TexCoord[0], float32(0))
		assert.LessOrEqual(t, v.TexCoord[0], float32(1))
	}

	// The top triangle's apex is the highest point: two triangle heights up.
	var maxY float32
	for _, v := range vertices {
		if v.Position[1] > maxY {
			maxY = v.Position[1]
		}
	}
	assert.InDelta(t, 2*2*0.8660254, maxY, 1e-4)
}

func TestBuildGroundPlaneShape(t *testing.T) {
	vertices, indices := BuildGroundPlane(20, -0.5, 8)
	require.Len(t, vertices, 4)
	require.Len(t, indices, 6)

	for _, v := range vertices {
		assert.Equal(t, float32(-0.5), v.Position[1])
		assert.Equal(t, [3]float32{0, 1, 0}, v.Normal)
	}
	assert.Equal(t, [2]float32{8, 8}, vertices[2].TexCoord)
}

func TestGPUVertexMarshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.5, 0.25},
	}
	require.Equal(t, 32, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, 32)

	all := MarshalVertices([]GPUVertex{v, v, v})
	assert.Len(t, all, 96)
	assert.Equal(t, buf, all[32:64])
}

func TestVertexBufferLayout(t *testing.T) {
	layouts := VertexBufferLayout()
	require.Len(t, layouts, 1)
	assert.Equal(t, uint64(32), layouts[0].ArrayStride)
	require.Len(t, layouts[0].Attributes, 3)
	assert.Equal(t, uint64(24), layouts[0].Attributes[2].Offset)
	assert.Equal(t, uint32(2), layouts[0].Attributes[2].ShaderLocation)
}
