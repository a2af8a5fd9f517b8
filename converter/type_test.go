package converter

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMakeFromBytesPng(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00}

	imageType, err := MakeFromBytes(data)
	assert.NoError(t, err)
	assert.Equal(t, PNG, imageType)
}

func TestMakeFromBytesJpeg(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}

	imageType, err := MakeFromBytes(data)
	assert.NoError(t, err)
	assert.Equal(t, JPEG, imageType)
}

func TestMakeFromBytesWebp(t *testing.T) {
	data := append([]byte("RIFF"), 0x24, 0x00, 0x00, 0x00)
	data = append(data, []byte("WEBPVP8 ")...)

	imageType, err := MakeFromBytes(data)
	assert.NoError(t, err)
	assert.Equal(t, WEBP, imageType)
}

func TestMakeFromBytesRiffButNotWebp(t *testing.T) {
	data := append([]byte("RIFF"), 0x24, 0x00, 0x00, 0x00)
	data = append(data, []byte("WAVEfmt ")...)

	_, err := MakeFromBytes(data)
	assert.Error(t, err)
}

func TestMakeFromBytesUnknown(t *testing.T) {
	_, err := MakeFromBytes([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestMakeFromBytesTruncated(t *testing.T) {
	_, err := MakeFromBytes([]byte("RIFF"))
	assert.Error(t, err)
}
