package shading

import (
	"testing"

	"triforce/engine/light"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

func testLight() light.Light {
	return light.NewLight(
		light.WithAmbient(0.2, 0.25, 0.3),
		light.WithDiffuse(0.7, 0.6, 0.5),
		light.WithSpecular(1.0, 0.9, 0.8),
		light.WithSpecularExponent(100),
	)
}

func TestAmbientIndependentOfGeometry(t *testing.T) {
	lt := testLight()
	base := [3]float32{0.5, 1.0, 0.25}

	a := Shade(ModeAmbient, lt, [3]float32{0, 10, 0}, [3]float32{0, 0, -5}, [3]float32{0, 0, 1}, base)
	b := Shade(ModeAmbient, lt, [3]float32{-3, 1, 7}, [3]float32{9, 9, 9}, [3]float32{0, -1, 0}, base)

	assert.Equal(t, a, b)
	assert.InDelta(t, 0.2*0.5, a[0], epsilon)
	assert.InDelta(t, 0.25*1.0, a[1], epsilon)
	assert.InDelta(t, 0.3*0.25, a[2], epsilon)
	assert.Equal(t, float32(1), a[3])
}

func TestDiffuseAtFullAlignment(t *testing.T) {
	lt := testLight()
	base := [3]float32{0.5, 0.5, 0.5}

	// Light directly along the normal: n.l = 1, diffuse term is Ld * K exactly.
	frag := [3]float32{0, 0, -5}
	normal := [3]float32{0, 0, 1}
	lightPos := [3]float32{0, 0, 5}

	got := Shade(ModeDiffuse, lt, lightPos, frag, normal, base)
	ambient := Shade(ModeAmbient, lt, lightPos, frag, normal, base)

	assert.InDelta(t, float64(ambient[0])+0.7*0.5, float64(got[0]), epsilon)
	assert.InDelta(t, float64(ambient[1])+0.6*0.5, float64(got[1]), epsilon)
	assert.InDelta(t, float64(ambient[2])+0.5*0.5, float64(got[2]), epsilon)
}

func TestLightBehindSurfaceContributesNothing(t *testing.T) {
	lt := testLight()
	base := [3]float32{1, 1, 1}

	// Normal faces the viewer, light sits behind the surface: n.l < 0.
	frag := [3]float32{0, 0, -5}
	normal := [3]float32{0, 0, 1}
	lightPos := [3]float32{0, 0, -20}

	ambient := Shade(ModeAmbient, lt, lightPos, frag, normal, base)
	diffuse := Shade(ModeDiffuse, lt, lightPos, frag, normal, base)
	full := Shade(ModeBlinnPhong, lt, lightPos, frag, normal, base)

	assert.Equal(t, ambient, diffuse)
	assert.Equal(t, ambient, full)
}

func TestSpecularUsesHalfVector(t *testing.T) {
	lt := light.NewLight(
		light.WithAmbient(0, 0, 0),
		light.WithDiffuse(0, 0, 0),
		light.WithSpecular(1, 1, 1),
		light.WithSpecularExponent(1),
	)

	// Viewer and light are both along the normal: h = n, so with exponent 1
	// the specular term is exactly Ls.
	frag := [3]float32{0, 0, -5}
	normal := [3]float32{0, 0, 1}
	lightPos := [3]float32{0, 0, 5}

	got := Shade(ModeBlinnPhong, lt, lightPos, frag, normal, [3]float32{0, 0, 0})
	assert.InDelta(t, 1.0, got[0], epsilon)
	assert.InDelta(t, 1.0, got[1], epsilon)
	assert.InDelta(t, 1.0, got[2], epsilon)
}

func TestSpecularTightensWithExponent(t *testing.T) {
	mk := func(exp float32) light.Light {
		return light.NewLight(
			light.WithAmbient(0, 0, 0),
			light.WithDiffuse(0, 0, 0),
			light.WithSpecular(1, 1, 1),
			light.WithSpecularExponent(exp),
		)
	}

	// Off-peak geometry: the half vector is tilted away from the normal.
	frag := [3]float32{0, 0, -5}
	normal := [3]float32{0, 0, 1}
	lightPos := [3]float32{4, 0, 0}

	low := Shade(ModeBlinnPhong, mk(2), lightPos, frag, normal, [3]float32{0, 0, 0})
	high := Shade(ModeBlinnPhong, mk(100), lightPos, frag, normal, [3]float32{0, 0, 0})

	assert.Greater(t, low[0], high[0])
	assert.Greater(t, high[0], float32(0))
}

func TestNoChannelGoesNegative(t *testing.T) {
	lt := testLight()
	// Grazing and back-facing configurations.
	cases := []struct {
		normal, lightPos [3]float32
	}{
		{[3]float32{0, 0, 1}, [3]float32{0, 0, -100}},
		{[3]float32{1, 0, 0}, [3]float32{-5, 0, -5}},
		{[3]float32{0, 1, 0}, [3]float32{0, -1, -5}},
	}
	for _, tc := range cases {
		for _, mode := range Modes() {
			got := Shade(mode, lt, tc.lightPos, [3]float32{0, 0, -5}, tc.normal, [3]float32{1, 1, 1})
			for i := range 3 {
				assert.GreaterOrEqual(t, got[i], float32(0))
			}
			assert.Equal(t, float32(1), got[3])
		}
	}
}

func TestUnnormalizedNormalMatchesNormalized(t *testing.T) {
	lt := testLight()
	frag := [3]float32{1, 2, -6}
	lightPos := [3]float32{0, 8, 0}
	base := [3]float32{0.8, 0.7, 0.6}

	a := Shade(ModeBlinnPhong, lt, lightPos, frag, [3]float32{0, 0, 1}, base)
	b := Shade(ModeBlinnPhong, lt, lightPos, frag, [3]float32{0, 0, 7.5}, base)
	for i := range 4 {
		assert.InDelta(t, float64(a[i]), float64(b[i]), epsilon)
	}
}

func TestModePipelineKeys(t *testing.T) {
	assert.Equal(t, "ambient", ModeAmbient.PipelineKey())
	assert.Equal(t, "diffuse", ModeDiffuse.PipelineKey())
	assert.Equal(t, "blinn_phong", ModeBlinnPhong.PipelineKey())
	assert.Equal(t, "blinn_phong.frag.wgsl", ModeBlinnPhong.ShaderFile())
	// Unknown modes fall back to the full model.
	assert.Equal(t, "blinn_phong", Mode(99).PipelineKey())
}
