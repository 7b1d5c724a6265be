package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexSource = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(position, 1.0);
    return out;
}
`

const testFragmentSource = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

func writeShaderFile(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestNewShaderVertex(t *testing.T) {
	path := writeShaderFile(t, "test.vert.wgsl", testVertexSource)

	s := NewShader("test_vertex", ShaderTypeVertex, path)

	assert.Equal(t, "test_vertex", s.Key())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())
	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Equal(t, testVertexSource, s.Source())

	require.NotNil(t, s.Module())
	assert.Equal(t, "test_vertex", s.Module().Label)
	require.NotNil(t, s.Module().WGSLDescriptor)
	assert.Equal(t, testVertexSource, s.Module().WGSLDescriptor.Code)
}

func TestNewShaderFragment(t *testing.T) {
	path := writeShaderFile(t, "test.frag.wgsl", testFragmentSource)

	s := NewShader("test_fragment", ShaderTypeFragment, path)

	assert.Equal(t, ShaderTypeFragment, s.ShaderType())
	assert.Equal(t, "fs_main", s.EntryPoint())
}

func TestNewShaderMissingFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("missing", ShaderTypeVertex, filepath.Join(t.TempDir(), "nope.wgsl"))
	})
}

func TestNewShaderEmptyPathPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("empty", ShaderTypeVertex, "")
	})
}

func TestNewShaderWrongStagePanics(t *testing.T) {
	// A fragment-only source has no vertex entry point.
	path := writeShaderFile(t, "frag_only.wgsl", testFragmentSource)

	assert.Panics(t, func() {
		NewShader("mismatched", ShaderTypeVertex, path)
	})
}

func TestParseEntryPointIgnoresOtherStage(t *testing.T) {
	combined := testVertexSource + testFragmentSource

	assert.Equal(t, "vs_main", parseEntryPoint(combined, ShaderTypeVertex))
	assert.Equal(t, "fs_main", parseEntryPoint(combined, ShaderTypeFragment))
}
