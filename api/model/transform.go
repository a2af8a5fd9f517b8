package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultQuality  = float32(100)
	WebpContentType = "image/webp"
)

type Size struct {
	Width  int
	Height int
}

type TransformRequest struct {
	Image   []byte
	Size    *Size
	Quality float32
}

type TransformResult struct {
	Body        []byte
	ContentType string
}

// MakeSizeFromString parses the 'WIDTHxHEIGHT' form. Both dimensions must be
// bare positive integers.
func MakeSizeFromString(s string) (*Size, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return nil, fmt.Errorf("size %q is not of the form WIDTHxHEIGHT", s)
	}

	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil || width == 0 {
		return nil, fmt.Errorf("invalid width value: %q", w)
	}

	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil || height == 0 {
		return nil, fmt.Errorf("invalid height value: %q", h)
	}

	return &Size{Width: int(width), Height: int(height)}, nil
}

func MakeQualityFromString(s string) (float32, error) {
	quality, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid quality value: %q", s)
	}
	if math.IsNaN(quality) || quality < 0 || quality > 100 {
		return 0, fmt.Errorf("quality %v is out of range [0.0, 100.0]", quality)
	}

	return float32(quality), nil
}
