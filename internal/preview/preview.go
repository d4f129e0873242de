// Package preview turns uploaded variant images into inline thumbnails.
package preview

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const (
	// DefaultMaxBytes caps how much of an upload is read for a preview.
	DefaultMaxBytes int64 = 5 << 20
	// DefaultSize is the bounding box, in pixels, of a generated thumbnail.
	DefaultSize = 200
)

var (
	// ErrEmpty is returned when no image data was supplied.
	ErrEmpty = errors.New("preview: empty upload")
	// ErrNotImage is returned when the upload is not a decodable image.
	ErrNotImage = errors.New("preview: upload is not an image")
	// ErrTooLarge is returned when the upload exceeds the configured limit.
	ErrTooLarge = errors.New("preview: upload too large")
)

// Options controls thumbnail generation.
type Options struct {
	MaxBytes int64
	Size     int
}

func (o Options) withDefaults() Options {
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	return o
}

// Thumbnail reads an uploaded image and returns it as a downscaled data URL.
func Thumbnail(r io.Reader, opts Options) (string, error) {
	opts = opts.withDefaults()

	data, err := io.ReadAll(io.LimitReader(r, opts.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if int64(len(data)) > opts.MaxBytes {
		return "", ErrTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mtype.String())
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	thumb := imaging.Fit(img, opts.Size, opts.Size, imaging.Lanczos)

	var out bytes.Buffer
	contentType, err := encode(&out, thumb, mtype)
	if err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(out.Bytes()), nil
}

func encode(w io.Writer, img image.Image, source *mimetype.MIME) (string, error) {
	if source.Is("image/png") || source.Is("image/gif") {
		return "image/png", png.Encode(w, img)
	}
	return "image/jpeg", jpeg.Encode(w, img, &jpeg.Options{Quality: 85})
}
