package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBindGroupLayout sets a pre-created bind group layout for this provider.
// When set, InitBindGroup reuses it instead of creating a new layout.
//
// Parameters:
//   - bgl: the bind group layout to use for this provider
//
// Returns:
//   - BindGroupProviderOption: a function that sets the bind group layout for this provider
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroupLayout = bgl
	}
}

// WithBuffer sets a pre-created buffer for a specific binding index.
//
// Parameters:
//   - binding: the binding index for this buffer
//   - buf: the buffer to associate with this binding
//
// Returns:
//   - BindGroupProviderOption: a function that sets the buffer for the specified binding
func WithBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
	}
}

// WithIndexCount sets the number of indices for draw calls.
//
// Parameters:
//   - count: the index count
//
// Returns:
//   - BindGroupProviderOption: a function that sets the index count
func WithIndexCount(count int) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.indexCount = count
	}
}
