// Package images normalises uploaded story images.
package images

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned for uploads that are neither png nor jpeg.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ToPNG converts jpeg uploads to png and passes png uploads through untouched.
func ToPNG(imageBytes []byte) ([]byte, error) {
	contentType := http.DetectContentType(imageBytes)

	switch contentType {
	case "image/png":
		return imageBytes, nil
	case "image/jpeg":
		img, err := jpeg.Decode(bytes.NewReader(imageBytes))
		if err != nil {
			return nil, errors.Wrap(err, "unable to decode jpeg")
		}

		buf := new(bytes.Buffer)
		if err := png.Encode(buf, img); err != nil {
			return nil, errors.Wrap(err, "unable to encode png")
		}

		return buf.Bytes(), nil
	}

	return nil, errors.Wrapf(ErrUnsupportedFormat, "content type %#v", contentType)
}
