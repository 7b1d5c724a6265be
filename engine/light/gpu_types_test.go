package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUPointLightLayout(t *testing.T) {
	var g GPUPointLight
	require.Equal(t, 64, g.Size())

	l := NewLight(
		WithAmbient(0.1, 0.2, 0.3),
		WithDiffuse(0.4, 0.5, 0.6),
		WithSpecular(0.7, 0.8, 0.9),
		WithSpecularExponent(32),
	)
	g.FromLight(l, [3]float32{1, 2, 3})

	buf := g.Marshal()
	require.Len(t, buf, 64)

	at := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	assert.Equal(t, float32(1), at(0))
	assert.Equal(t, float32(3), at(8))
	assert.Equal(t, float32(32), at(12))
	assert.Equal(t, float32(0.1), at(16))
	assert.Equal(t, float32(0.4), at(32))
	assert.Equal(t, float32(0.9), at(56))
	// Padding slots stay zero.
	assert.Equal(t, float32(0), at(28))
	assert.Equal(t, float32(0), at(44))
	assert.Equal(t, float32(0), at(60))
}

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	assert.Equal(t, [3]float32{0, 10, 5}, l.Position())
	assert.Equal(t, [3]float32{0.2, 0.2, 0.2}, l.Ambient())
	assert.Equal(t, float32(100), l.SpecularExponent())
}
