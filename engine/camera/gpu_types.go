package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (128 bytes, std430 aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// View and projection are kept separate so the fragment stage can light in eye
// space while the vertex stage projects. Matches the WGSL CameraUniform struct
// layout exactly (see GPUCameraUniformSource).
// Size: 128 bytes (std430 / WGSL aligned).
type GPUCameraUniform struct {
	View       [16]float32 // offset  0: view matrix (mat4x4<f32>)
	Projection [16]float32 // offset 64: projection matrix (mat4x4<f32>)
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Projection[i]))
	}
	return buf
}
