// package texture produces common.TextureStagingData for material bindings,
// either by decoding image files or by generating pixels procedurally.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"triforce/common"

	"github.com/anthonynsimon/bild/transform"
)

// Load decodes a PNG or JPEG file into RGBA staging data. The image is
// flipped vertically during decode: image files store rows top-down while
// texture coordinates put v = 0 at the bottom.
//
// Parameters:
//   - path: the image file path
//
// Returns:
//   - common.TextureStagingData: RGBA pixels ready for GPU upload
//   - error: error if the file cannot be opened or decoded
func Load(path string) (common.TextureStagingData, error) {
	file, err := os.Open(path)
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("failed to decode texture file %s: %w", path, err)
	}

	rgba := transform.FlipV(img)
	bounds := rgba.Bounds()
	return common.TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}, nil
}

// Checkerboard generates a two-color checkerboard texture.
//
// Parameters:
//   - width, height: texture dimensions in pixels
//   - cell: the edge length of each square in pixels
//   - c1, c2: the two alternating colors
//
// Returns:
//   - common.TextureStagingData: RGBA pixels ready for GPU upload
func Checkerboard(width, height, cell int, c1, c2 color.RGBA) (common.TextureStagingData, error) {
	if width <= 0 || height <= 0 || cell <= 0 {
		return common.TextureStagingData{}, fmt.Errorf("invalid checkerboard dimensions %dx%d cell %d", width, height, cell)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				img.SetRGBA(x, y, c1)
			} else {
				img.SetRGBA(x, y, c2)
			}
		}
	}
	return common.TextureStagingData{
		Pixels: img.Pix,
		Width:  uint32(width),
		Height: uint32(height),
	}, nil
}

// Solid generates a 1x1 single-color texture, useful as the base color of an
// untextured material.
//
// Parameters:
//   - c: the fill color
//
// Returns:
//   - common.TextureStagingData: RGBA pixels ready for GPU upload
func Solid(c color.RGBA) common.TextureStagingData {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return common.TextureStagingData{
		Pixels: img.Pix,
		Width:  1,
		Height: 1,
	}
}
