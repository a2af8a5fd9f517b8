package converter

import (
	"bytes"
	"fmt"
)

type Type struct {
	s string
}

var (
	WEBP = Type{"webp"}
	JPEG = Type{"jpeg"}
	PNG  = Type{"png"}
)

func (t Type) String() string {
	return t.s
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
)

// MakeFromBytes sniffs the payload's magic bytes over the supported set.
func MakeFromBytes(data []byte) (Type, error) {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return PNG, nil
	case bytes.HasPrefix(data, jpegMagic):
		return JPEG, nil
	case bytes.HasPrefix(data, riffMagic) && len(data) >= 12 && bytes.Equal(data[8:12], webpMagic):
		return WEBP, nil
	}

	return Type{}, fmt.Errorf("unknown image type")
}
