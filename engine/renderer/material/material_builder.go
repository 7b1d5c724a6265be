package material

import (
	"triforce/common"
	"triforce/engine/renderer/bind_group_provider"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithTexture is an option builder that sets the staged texture data for the material.
//
// Parameters:
//   - tex: the RGBA staging data to upload when the material is initialized
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexture(tex common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.texture = tex
	}
}

// WithSampler is an option builder that sets the sampler configuration for
// the material. When unset, the renderer uses linear filtering with repeat
// addressing.
//
// Parameters:
//   - sampler: the sampler staging data
//
// Returns:
//   - MaterialBuilderOption: a function that applies the sampler option to a material
func WithSampler(sampler common.SamplerStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.sampler = &sampler
	}
}

// WithBindGroupProvider is an option builder that sets the bind group provider for the material.
//
// Parameters:
//   - provider: the bind group provider containing GPU resources for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the bind group provider option to a material
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
