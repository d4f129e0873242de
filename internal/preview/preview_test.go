package preview

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, url, prefix string) []byte {
	t.Helper()
	require.True(t, strings.HasPrefix(url, prefix), "unexpected data url prefix: %.40s", url)
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	require.NoError(t, err)
	return data
}

func TestThumbnailDownscalesPNG(t *testing.T) {
	url, err := Thumbnail(bytes.NewReader(encodePNG(t, 400, 100)), Options{Size: 100})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(decodeDataURL(t, url, "data:image/png;base64,")))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 25, img.Bounds().Dy())
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	url, err := Thumbnail(bytes.NewReader(encodePNG(t, 20, 10)), Options{})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(decodeDataURL(t, url, "data:image/png;base64,")))
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
}

func TestThumbnailEncodesJPEGAsJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 32)), nil))

	url, err := Thumbnail(&buf, Options{})
	require.NoError(t, err)
	_, err = jpeg.Decode(bytes.NewReader(decodeDataURL(t, url, "data:image/jpeg;base64,")))
	require.NoError(t, err)
}

func TestThumbnailRejectsInvalidUploads(t *testing.T) {
	_, err := Thumbnail(bytes.NewReader(nil), Options{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Thumbnail(strings.NewReader("plain text, not a picture"), Options{})
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = Thumbnail(bytes.NewReader(encodePNG(t, 64, 64)), Options{MaxBytes: 16})
	assert.ErrorIs(t, err, ErrTooLarge)
}
