package maps

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestIcon_EncodePassthrough(t *testing.T) {
	data := encodePNG(t, 8, 8)

	out, err := Icon{Data: data}.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != base64.StdEncoding.EncodeToString(data) {
		t.Error("expected original bytes to pass through without a target size")
	}
}

func TestIcon_EncodeRescales(t *testing.T) {
	data := encodePNG(t, 64, 64)

	out, err := Icon{Data: data, Width: 16, Height: 16}.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(out)
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("dimensions: got %v, want 16x16", img.Bounds())
	}
}

func TestIcon_EncodeMatchingSizeSkipsRescale(t *testing.T) {
	data := encodePNG(t, 16, 16)

	out, err := Icon{Data: data, Width: 16, Height: 16}.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != base64.StdEncoding.EncodeToString(data) {
		t.Error("expected original bytes when size already matches")
	}
}

func TestIcon_EncodeErrors(t *testing.T) {
	if _, err := (Icon{}).encode(); err == nil {
		t.Error("expected error for empty icon data")
	}
	if _, err := (Icon{Data: []byte("not an image"), Width: 4, Height: 4}).encode(); err == nil {
		t.Error("expected error for undecodable icon data")
	}
}
