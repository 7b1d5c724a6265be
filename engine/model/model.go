package model

import (
	"triforce/engine/renderer/bind_group_provider"
	"triforce/engine/renderer/material"
)

// model is the implementation of the Model interface.
type model struct {
	name                  string
	renderMaterial        material.Material
	meshProvider          bind_group_provider.BindGroupProvider
	vertexData, indexData []byte
	indexCount            int
}

// Model defines the interface for a renderable mesh.
// A Model holds staged vertex/index data pending GPU upload, the
// BindGroupProvider that owns the resulting GPU buffers, and the material
// sampled by the fragment shader. Geometry comes from the procedural builders
// in this package.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// MeshProvider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// VertexData returns the raw vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// RenderMaterial retrieves the render-ready material for this model, or
	// nil if none has been assigned.
	//
	// Returns:
	//   - material.Material: the material or nil
	RenderMaterial() material.Material

	// SetRenderMaterial assigns the render-ready material for this model.
	//
	// Parameters:
	//   - mat: the material to set
	SetRenderMaterial(mat material.Material)

	// SetMeshProvider assigns the BindGroupProvider holding GPU mesh resources.
	//
	// Parameters:
	//   - provider: the mesh provider to set
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)

	// SetVertexData sets the raw vertex data for this model's mesh.
	//
	// Parameters:
	//   - data: the vertex data to set
	SetVertexData(data []byte)

	// SetIndexData sets the raw index data for this model's mesh.
	//
	// Parameters:
	//   - data: the index data to set
	SetIndexData(data []byte)

	// SetIndexCount sets the number of indices in the model's mesh.
	//
	// Parameters:
	//   - count: the index count to set
	SetIndexCount(count int)
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	m.meshProvider = provider
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) SetVertexData(data []byte) {
	m.vertexData = data
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) SetIndexData(data []byte) {
	m.indexData = data
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) SetIndexCount(count int) {
	m.indexCount = count
}

func (m *model) RenderMaterial() material.Material {
	return m.renderMaterial
}

func (m *model) SetRenderMaterial(mat material.Material) {
	m.renderMaterial = mat
}
