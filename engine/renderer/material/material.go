package material

import (
	"triforce/common"
	"triforce/engine/renderer/bind_group_provider"

	"github.com/cogentcore/webgpu/wgpu"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	texture           common.TextureStagingData
	sampler           *common.SamplerStagingData
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a render material: the texture sampled
// by the fragment shader plus its sampler configuration and GPU bindings.
//
// The texture staging data is set at construction; the bind group provider is
// mutable so the scene can attach GPU resources when the material is first
// drawn. Untextured surfaces use a 1x1 solid texture so every material flows
// through the same pipeline layout.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Texture retrieves the staged RGBA texture data pending GPU upload.
	//
	// Returns:
	//   - common.TextureStagingData: the staged texture
	Texture() common.TextureStagingData

	// Sampler retrieves the staged sampler configuration, or nil for the
	// default linear/repeat sampler.
	//
	// Returns:
	//   - *common.SamplerStagingData: the sampler configuration, or nil
	Sampler() *common.SamplerStagingData

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		// Default to a single opaque white texel.
		texture: common.TextureStagingData{
			Pixels: []byte{255, 255, 255, 255},
			Width:  1,
			Height: 1,
		},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// BindGroupLayoutDescriptor returns the layout for the material bind group
// (group 2): a sampled 2D texture at binding 0 and a filtering sampler at
// binding 1, both visible to the fragment stage.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the material bind group layout
func BindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "material_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Texture() common.TextureStagingData {
	return m.texture
}

func (m *material) Sampler() *common.SamplerStagingData {
	return m.sampler
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}
