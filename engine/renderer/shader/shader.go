package shader

import (
	"fmt"
	"os"
	"regexp"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader runs in.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

var (
	vertexEntryRe   = regexp.MustCompile(`@vertex\s+fn\s+(\w+)`)
	fragmentEntryRe = regexp.MustCompile(`@fragment\s+fn\s+(\w+)`)
)

// shader is the implementation of the Shader interface.
// It holds the persistent shader data required for pipeline creation.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	entryPoint string
	module     *wgpu.ShaderModuleDescriptor
}

// Shader defines the interface for a loaded WGSL shader. It exposes the
// shader's unique key, source code, entry point, and module descriptor needed
// for pipeline creation. Bind group layouts and vertex layouts are not parsed
// from the source: all pipelines in this engine share one fixed layout,
// declared by the camera/model/material/light packages.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// EntryPoint returns the entry point name for this shader, parsed from the
	// @vertex or @fragment attribute in the source.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// Module returns the wgpu.ShaderModuleDescriptor for this shader.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor

	// ShaderType returns the type of the shader (vertex or fragment).
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType
}

var _ Shader = &shader{}

// NewShader creates a new Shader by reading WGSL source from a file. The
// entry point is parsed from the source's stage attribute. Panics if the file
// cannot be read or no entry point matching the shader type is found; a
// missing shader is a programming error caught at startup, not a runtime
// condition.
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and lookups
//   - shaderType: the type of shader (vertex or fragment)
//   - sourcePath: the file path to read WGSL source from
//
// Returns:
//   - Shader: a new Shader instance with the provided configuration
func NewShader(key string, shaderType ShaderType, sourcePath string) Shader {
	if sourcePath == "" {
		panic(fmt.Sprintf("shader: %s must have a valid source path", key))
	}
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		panic(fmt.Sprintf("shader: failed to read source file %q: %v", sourcePath, err))
	}

	s := &shader{
		key:        key,
		shaderType: shaderType,
		source:     string(data),
	}
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
	s.entryPoint = parseEntryPoint(s.source, shaderType)
	if s.entryPoint == "" {
		panic(fmt.Sprintf("shader: %s has no entry point for its stage in %q", key, sourcePath))
	}
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

// parseEntryPoint extracts the entry point function name for the given stage.
// Returns an empty string when the source has no matching stage attribute.
func parseEntryPoint(source string, shaderType ShaderType) string {
	var re *regexp.Regexp
	switch shaderType {
	case ShaderTypeVertex:
		re = vertexEntryRe
	case ShaderTypeFragment:
		re = fragmentEntryRe
	default:
		return ""
	}
	m := re.FindStringSubmatch(source)
	if m == nil {
		return ""
	}
	return m[1]
}
