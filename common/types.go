// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// TextureStagingData holds RGBA pixel data for a texture binding pending GPU upload.
// This is primarily used in the BindGroupProvider to stage texture data before creating the GPU texture and bind group.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Width uint32
	// Height is the height of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Height uint32
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// This is primarily used in the BindGroupProvider to stage sampler data before creating the GPU sampler and bind group.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// Compare specifies the comparison function for comparison samplers.
	Compare wgpu.CompareFunction
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering, which can improve texture quality at oblique viewing angles.
	MaxAnisotropy uint16
}
