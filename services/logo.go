package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	logoMaxWidth  = 400
	logoMaxHeight = 160
)

var ErrInvalidDataURL = errors.New("invalid data URL")

// PrepareLogo decodes a base64 image data URL, fits it inside 400x160 while
// keeping the aspect ratio, and re-encodes it as PNG for the PDF header.
func PrepareLogo(dataURL string) ([]byte, error) {
	raw, err := decodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > logoMaxWidth || b.Dy() > logoMaxHeight {
		img = imaging.Fit(img, logoMaxWidth, logoMaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode logo: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeDataURL extracts the payload of "data:<mime>;base64,<payload>".
func decodeDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrInvalidDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return raw, nil
}
