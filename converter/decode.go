package converter

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Decode sniffs the format of data and decodes it into an in-memory raster.
// Payloads outside {PNG, JPEG, WebP} are rejected before any decoder runs.
func Decode(data []byte) (image.Image, Type, error) {
	t, err := MakeFromBytes(data)
	if err != nil {
		return nil, Type{}, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, t, err
	}

	return img, t, nil
}
