package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct.
// Matches GPUVertex layout exactly (32 bytes, std430 aligned).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 32 bytes (std430 aligned, no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.TexCoord[1]))
	return buf
}

// MarshalVertices serializes a vertex slice into a single contiguous buffer
// for vertex buffer upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: the concatenated vertex data
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, 0, len(vertices)*32)
	for i := range vertices {
		buf = append(buf, vertices[i].Marshal()...)
	}
	return buf
}

// VertexBufferLayout returns the vertex buffer layout matching GPUVertex:
// position at location 0, normal at 1, texcoord at 2.
//
// Returns:
//   - []wgpu.VertexBufferLayout: the single-buffer vertex layout
func VertexBufferLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: 32,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
				{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
			},
		},
	}
}

// GPUModelDataSource is the canonical WGSL definition of the ModelData struct for per-object model matrices.
// Matches GPUModelData layout exactly (64 bytes, std430 aligned).
//
//go:embed assets/model_data.wgsl
var GPUModelDataSource string

// GPUModelData is the GPU-aligned representation of a per-object model matrix.
// Matches the WGSL ModelData struct layout exactly (see GPUModelDataSource).
// Size: 64 bytes (mat4x4<f32> = 16 × float32, std430 aligned, no padding required).
type GPUModelData struct {
	Model [16]float32 // offset 0: 4×4 model-to-world transform matrix (64 bytes)
}

// Size returns the size of the GPUModelData struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUModelData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUModelData struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUModelData) Marshal() []byte {
	buf := make([]byte, 64)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.Model[i]))
	}
	return buf
}

// ModelBindGroupLayoutDescriptor returns the layout for the per-object model
// uniform bind group (group 1): a single uniform buffer visible to the vertex
// stage.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the model bind group layout
func ModelBindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	var g GPUModelData
	return wgpu.BindGroupLayoutDescriptor{
		Label: "model_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(g.Size()),
				},
			},
		},
	}
}
