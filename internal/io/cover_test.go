package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodeTestImage(t *testing.T, width, height int, asPNG bool) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	var err error
	if asPNG {
		err = png.Encode(&buf, img)
	} else {
		err = jpeg.Encode(&buf, img, nil)
	}
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding prepared cover: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestPrepareCover_Resizes(t *testing.T) {
	svc := NewImageService()
	data := encodeTestImage(t, 400, 200, false)

	out, err := svc.PrepareCover(context.Background(), data, 100)
	if err != nil {
		t.Fatalf("PrepareCover() error: %v", err)
	}

	w, h := decodeSize(t, out)
	if w != 100 || h != 50 {
		t.Errorf("prepared size = %dx%d, want 100x50", w, h)
	}
}

func TestPrepareCover_PortraitAspect(t *testing.T) {
	svc := NewImageService()
	data := encodeTestImage(t, 200, 400, false)

	out, err := svc.PrepareCover(context.Background(), data, 100)
	if err != nil {
		t.Fatalf("PrepareCover() error: %v", err)
	}

	w, h := decodeSize(t, out)
	if w != 50 || h != 100 {
		t.Errorf("prepared size = %dx%d, want 50x100", w, h)
	}
}

func TestPrepareCover_SmallImageKept(t *testing.T) {
	svc := NewImageService()
	data := encodeTestImage(t, 60, 40, false)

	out, err := svc.PrepareCover(context.Background(), data, 100)
	if err != nil {
		t.Fatalf("PrepareCover() error: %v", err)
	}

	w, h := decodeSize(t, out)
	if w != 60 || h != 40 {
		t.Errorf("prepared size = %dx%d, want original 60x40", w, h)
	}
}

func TestPrepareCover_PNGConverted(t *testing.T) {
	svc := NewImageService()
	data := encodeTestImage(t, 50, 50, true)

	out, err := svc.PrepareCover(context.Background(), data, 100)
	if err != nil {
		t.Fatalf("PrepareCover() error: %v", err)
	}

	// JPEG magic bytes.
	if len(out) < 2 || out[0] != 0xFF || out[1] != 0xD8 {
		t.Error("prepared cover is not JPEG encoded")
	}
}

func TestPrepareCover_InvalidData(t *testing.T) {
	svc := NewImageService()
	if _, err := svc.PrepareCover(context.Background(), []byte("not an image"), 100); err == nil {
		t.Error("expected error for undecodable data")
	}
}
