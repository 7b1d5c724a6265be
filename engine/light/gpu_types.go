package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUPointLightSource is the canonical WGSL definition of the PointLight struct.
// Matches GPUPointLight layout exactly (64 bytes, std430 aligned).
//
//go:embed assets/point_light.wgsl
var GPUPointLightSource string

// GPUPointLight is the GPU-aligned representation of the point light uniform.
// The position is in eye space: the scene transforms the world-space position
// by the view matrix before marshaling, so the fragment shader never needs the
// view matrix for lighting. Matches the WGSL PointLight struct layout exactly
// (see GPUPointLightSource).
// Size: 64 bytes (std430 / WGSL aligned).
type GPUPointLight struct {
	PositionEye      [3]float32 // offset  0: eye-space light position (vec3<f32>)
	SpecularExponent float32    // offset 12: highlight exponent
	Ambient          [3]float32 // offset 16: per-channel ambient intensity
	_pad0            float32    // offset 28: padding for vec3 alignment
	Diffuse          [3]float32 // offset 32: per-channel diffuse intensity
	_pad1            float32    // offset 44: padding for vec3 alignment
	Specular         [3]float32 // offset 48: per-channel specular intensity
	_pad2            float32    // offset 60: padding to 64-byte alignment
}

// Size returns the size of the GPUPointLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUPointLight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPointLight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUPointLight) Marshal() []byte {
	buf := make([]byte, 64)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.PositionEye[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.PositionEye[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.PositionEye[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.SpecularExponent))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Ambient[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Ambient[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Ambient[2]))
	binary.LittleEndian.PutUint32(buf[28:32], 0) // padding
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Diffuse[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Diffuse[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Diffuse[2]))
	binary.LittleEndian.PutUint32(buf[44:48], 0) // padding
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.Specular[0]))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(g.Specular[1]))
	binary.LittleEndian.PutUint32(buf[56:60], math.Float32bits(g.Specular[2]))
	binary.LittleEndian.PutUint32(buf[60:64], 0) // padding
	return buf
}

// FromLight populates the GPU struct from a Light, using the provided
// eye-space position. The world-to-eye transform happens in the scene, which
// owns the view matrix.
//
// Parameters:
//   - l: the source light
//   - positionEye: the light position already transformed into eye space
func (g *GPUPointLight) FromLight(l Light, positionEye [3]float32) {
	g.PositionEye = positionEye
	g.SpecularExponent = l.SpecularExponent()
	g.Ambient = l.Ambient()
	g.Diffuse = l.Diffuse()
	g.Specular = l.Specular()
}

// BindGroupLayoutDescriptor returns the layout for the light uniform bind
// group (group 3): a single uniform buffer visible to the fragment stage.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the light bind group layout
func BindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	var g GPUPointLight
	return wgpu.BindGroupLayoutDescriptor{
		Label: "light_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(g.Size()),
				},
			},
		},
	}
}
