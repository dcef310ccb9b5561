package maps

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg" // registered for image.Decode

	"golang.org/x/image/draw"
)

// Icon is a custom marker image. Data holds encoded PNG or JPEG bytes.
// When Width and Height are set and differ from the source dimensions, the
// image is rescaled Go-side before it is shipped to the native SDK, so
// oversized assets do not blow up marker memory on the map.
type Icon struct {
	Data   []byte
	Width  int
	Height int
}

// encode returns the base64 payload sent over the channel, rescaling
// first when a target size is requested.
func (ic Icon) encode() (string, error) {
	if len(ic.Data) == 0 {
		return "", fmt.Errorf("maps: empty icon data")
	}
	if ic.Width <= 0 || ic.Height <= 0 {
		return base64.StdEncoding.EncodeToString(ic.Data), nil
	}

	src, _, err := image.Decode(bytes.NewReader(ic.Data))
	if err != nil {
		return "", fmt.Errorf("maps: decode icon: %w", err)
	}
	bounds := src.Bounds()
	if bounds.Dx() == ic.Width && bounds.Dy() == ic.Height {
		return base64.StdEncoding.EncodeToString(ic.Data), nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, ic.Width, ic.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return "", fmt.Errorf("maps: encode icon: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
