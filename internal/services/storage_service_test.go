package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffImageTypeJPEG(t *testing.T) {
	data := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 16)...)
	mime, ok := SniffImageType(data)
	require.True(t, ok)
	assert.Equal(t, "image/jpeg", mime)
}

func TestSniffImageTypePNG(t *testing.T) {
	data := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)
	mime, ok := SniffImageType(data)
	require.True(t, ok)
	assert.Equal(t, "image/png", mime)
}

func TestSniffImageTypeWebP(t *testing.T) {
	data := append([]byte("RIFF"), 0x24, 0x00, 0x00, 0x00)
	data = append(data, []byte("WEBPVP8 ")...)
	mime, ok := SniffImageType(data)
	require.True(t, ok)
	assert.Equal(t, "image/webp", mime)
}

func TestSniffImageTypeRejectsRIFFWithoutWebP(t *testing.T) {
	// A WAV file is also RIFF but is not an image.
	data := append([]byte("RIFF"), 0x24, 0x00, 0x00, 0x00)
	data = append(data, []byte("WAVEfmt ")...)
	_, ok := SniffImageType(data)
	assert.False(t, ok)
}

func TestSniffImageTypeRejectsOtherContent(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("GIF89a......"),
		[]byte("<svg xmlns=\"http://www.w3.org/2000/svg\"/>"),
		[]byte("%PDF-1.4"),
		{},
		{0xFF},
	} {
		_, ok := SniffImageType(data)
		assert.False(t, ok)
	}
}

func TestSniffImageTypeIgnoresExtensionSpoofing(t *testing.T) {
	// Content decides, never the filename. Plain text stays rejected no
	// matter what it is called.
	_, ok := SniffImageType([]byte("definitely-not-an-image.png"))
	assert.False(t, ok)
}
