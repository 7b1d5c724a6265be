// package shading defines the selectable shading modes and a CPU reference
// implementation of the lighting math. Each mode maps to a render pipeline
// whose fragment shader computes exactly what Shade computes; the reference
// exists so the lighting model has an authoritative, testable definition
// outside the GPU.
package shading

import (
	"math"

	"triforce/common"
	"triforce/engine/light"
)

// Mode selects which lighting terms the fragment shader evaluates. Modes are
// cumulative: diffuse includes ambient, blinn-phong includes both.
type Mode int

const (
	// ModeAmbient evaluates only the ambient term.
	ModeAmbient Mode = iota

	// ModeDiffuse evaluates ambient + Lambertian diffuse.
	ModeDiffuse

	// ModeBlinnPhong evaluates the full model: ambient + diffuse + a
	// half-vector specular highlight.
	ModeBlinnPhong
)

// PipelineKey returns the render pipeline key for this mode. The scene
// registers one pipeline per mode under these keys.
//
// Returns:
//   - string: the pipeline key
func (m Mode) PipelineKey() string {
	switch m {
	case ModeAmbient:
		return "ambient"
	case ModeDiffuse:
		return "diffuse"
	case ModeBlinnPhong:
		return "blinn_phong"
	default:
		return "blinn_phong"
	}
}

// String returns a human-readable name for logging.
//
// Returns:
//   - string: the mode name
func (m Mode) String() string {
	return m.PipelineKey()
}

// ShaderFile returns the fragment shader filename for this mode, relative to
// the configured shader directory.
//
// Returns:
//   - string: the fragment shader filename
func (m Mode) ShaderFile() string {
	return m.PipelineKey() + ".frag.wgsl"
}

// Modes returns all selectable modes in cycle order.
//
// Returns:
//   - []Mode: ambient, diffuse, blinn-phong
func Modes() []Mode {
	return []Mode{ModeAmbient, ModeDiffuse, ModeBlinnPhong}
}

// Shade computes the lit color of a surface point. All positions and normals
// are in eye space, matching the fragment shaders: the viewer sits at the
// origin looking down -Z.
//
// The terms, per channel:
//
//	ambient  = La * K
//	diffuse  = Ld * K * max(0, n.l)
//	specular = Ls * max(0, h.n)^exponent, h = normalize(v + l)
//
// where K is the surface base color, l points from the surface to the light,
// and v points from the surface to the viewer. The normal is renormalized
// before use since interpolation denormalizes it. The specular term is zero
// whenever the light is behind the surface (n.l <= 0). Alpha is always 1.
//
// Parameters:
//   - mode: which terms to evaluate
//   - lt: the light supplying the per-channel intensities and exponent
//   - lightPosEye: the light position in eye space
//   - fragPosEye: the surface point in eye space
//   - normalEye: the surface normal in eye space (any length)
//   - baseColor: the surface base color K
//
// Returns:
//   - [4]float32: the shaded RGBA color, alpha 1
func Shade(mode Mode, lt light.Light, lightPosEye, fragPosEye, normalEye, baseColor [3]float32) [4]float32 {
	n := common.Normalize3(normalEye)

	la := lt.Ambient()
	out := [3]float32{
		la[0] * baseColor[0],
		la[1] * baseColor[1],
		la[2] * baseColor[2],
	}

	if mode == ModeAmbient {
		return [4]float32{out[0], out[1], out[2], 1}
	}

	toLight := common.Normalize3(common.Sub3(lightPosEye, fragPosEye))
	nDotL := common.Dot3(n, toLight)
	lambert := max(nDotL, 0)

	ld := lt.Diffuse()
	out[0] += ld[0] * baseColor[0] * lambert
	out[1] += ld[1] * baseColor[1] * lambert
	out[2] += ld[2] * baseColor[2] * lambert

	if mode == ModeDiffuse || nDotL <= 0 {
		return [4]float32{out[0], out[1], out[2], 1}
	}

	toViewer := common.Normalize3(common.Scale3(fragPosEye, -1))
	half := common.Normalize3(common.Add3(toViewer, toLight))
	hDotN := max(common.Dot3(half, n), 0)
	spec := float32(math.Pow(float64(hDotN), float64(lt.SpecularExponent())))

	ls := lt.Specular()
	out[0] += ls[0] * spec
	out[1] += ls[1] * spec
	out[2] += ls[2] * spec

	return [4]float32{out[0], out[1], out[2], 1}
}
