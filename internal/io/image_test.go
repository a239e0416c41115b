package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPrepareCoverArt_ResizesAndConverts(t *testing.T) {
	svc := NewImageService()

	out, mime, err := svc.PrepareCoverArt(context.Background(), encodePNG(t, 200, 100), 50, true)
	if err != nil {
		t.Fatalf("PrepareCoverArt() error = %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", mime)
	}

	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("size = %dx%d, want 50x25", b.Dx(), b.Dy())
	}
}

func TestPrepareCoverArt_Passthrough(t *testing.T) {
	svc := NewImageService()
	in := encodePNG(t, 10, 10)

	out, mime, err := svc.PrepareCoverArt(context.Background(), in, 100, false)
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/png" {
		t.Errorf("mime = %q, want image/png", mime)
	}
	if !bytes.Equal(out, in) {
		t.Error("small image without conversion should be returned unchanged")
	}
}

func TestPrepareCoverArt_InvalidImage(t *testing.T) {
	if _, _, err := NewImageService().PrepareCoverArt(context.Background(), []byte("nope"), 100, true); err == nil {
		t.Error("expected error for undecodable data")
	}
}
