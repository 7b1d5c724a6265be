package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerboardPattern(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}

	tex, err := Checkerboard(4, 4, 2, white, black)
	require.NoError(t, err)
	require.Equal(t, uint32(4), tex.Width)
	require.Len(t, tex.Pixels, 4*4*4)

	at := func(x, y int) byte {
		return tex.Pixels[(y*4+x)*4] // red channel
	}
	assert.Equal(t, byte(255), at(0, 0))
	assert.Equal(t, byte(0), at(2, 0))
	assert.Equal(t, byte(0), at(0, 2))
	assert.Equal(t, byte(255), at(2, 2))
}

func TestCheckerboardRejectsBadDimensions(t *testing.T) {
	_, err := Checkerboard(0, 4, 2, color.RGBA{}, color.RGBA{})
	assert.Error(t, err)
	_, err = Checkerboard(4, 4, 0, color.RGBA{}, color.RGBA{})
	assert.Error(t, err)
}

func TestSolid(t *testing.T) {
	tex := Solid(color.RGBA{10, 20, 30, 255})
	assert.Equal(t, uint32(1), tex.Width)
	assert.Equal(t, uint32(1), tex.Height)
	assert.Equal(t, []byte{10, 20, 30, 255}, tex.Pixels)
}

func TestLoadFlipsVertically(t *testing.T) {
	// 1x2 image: red on top, blue on bottom.
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})

	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	tex, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint32(2), tex.Height)

	// After the flip the first row is the original bottom row (blue).
	assert.Equal(t, byte(0), tex.Pixels[0])
	assert.Equal(t, byte(255), tex.Pixels[2])
	assert.Equal(t, byte(255), tex.Pixels[4])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
