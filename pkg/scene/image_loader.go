package scene

import (
	"fmt"
	"image"
	_ "image/jpeg" // side-effect registration of the jpeg decoder
	_ "image/png"  // side-effect registration of the png decoder
	"os"
	"path/filepath"

	"golang.org/x/image/bmp" // side-effect registration of the bmp decoder

	"github.com/mravel/pathtracer/pkg/material"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// DiskImageLoader resolves an Image texture's file name against baseDir
// and decodes it with the standard image package, which dispatches by
// sniffed header to png, jpeg, or (via the registration above) bmp.
func DiskImageLoader(baseDir string) ImageLoader {
	return func(name string) (*material.Image, error) {
		f, err := os.Open(filepath.Join(baseDir, name))
		if err != nil {
			return nil, err
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", name, err)
		}

		bounds := img.Bounds()
		width, height := bounds.Dx(), bounds.Dy()
		pixels := make([]byte, width*height*3)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				offset := (y*width + x) * 3
				pixels[offset] = byte(r >> 8)
				pixels[offset+1] = byte(g >> 8)
				pixels[offset+2] = byte(b >> 8)
			}
		}

		return material.NewImage(pixels, width, height, name), nil
	}
}
