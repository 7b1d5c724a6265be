package model

import (
	"triforce/common"
	"triforce/engine/renderer/bind_group_provider"
	"triforce/engine/renderer/material"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithGeometry is an option builder that stages vertex and index data for GPU
// upload. The vertices are serialized immediately; the index count is derived
// from the index slice.
//
// Parameters:
//   - vertices: the mesh vertices
//   - indices: the triangle list indices
//
// Returns:
//   - ModelBuilderOption: a function that applies the geometry to a model
func WithGeometry(vertices []GPUVertex, indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = MarshalVertices(vertices)
		m.indexData = common.SliceToBytes(indices)
		m.indexCount = len(indices)
	}
}

// WithRenderMaterial is an option builder that assigns the model's material.
//
// Parameters:
//   - mat: the material to assign
//
// Returns:
//   - ModelBuilderOption: a function that applies the material to a model
func WithRenderMaterial(mat material.Material) ModelBuilderOption {
	return func(m *model) {
		m.renderMaterial = mat
	}
}

// WithMeshProvider is an option builder that assigns the bind group provider
// holding the model's GPU mesh resources.
//
// Parameters:
//   - provider: the mesh provider to assign
//
// Returns:
//   - ModelBuilderOption: a function that applies the provider to a model
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}
