package image

import (
	"github.com/disintegration/imaging"
	"image"
)

type Transform func(image.Image) image.Image

// WithSize scales to exactly width x height using Lanczos resampling.
// Aspect ratio is the caller's call, both dimensions are applied as given.
func WithSize(width, height int) Transform {
	return func(img image.Image) image.Image {
		bounds := img.Bounds()
		if width == bounds.Dx() && height == bounds.Dy() {
			return img
		}

		return imaging.Resize(img, width, height, imaging.Lanczos)
	}
}
