package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService prepares cover art for embedding in generated MP3
// files.
//
// Narration players show the embedded cover in their track view, so
// images are clamped to a reasonable size and normalized to JPEG for
// compatibility with older players.
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// PrepareCover decodes an image (JPEG or PNG), scales it down to fit
// within maxSize pixels on its longer edge while keeping the aspect
// ratio, and re-encodes it as JPEG suitable for an ID3 attached
// picture frame. Images already within the limit are only re-encoded.
//
// Catmull-Rom scaling is used for quality; JPEG quality is 90.
//
// Example:
//
//	data, _ := os.ReadFile("cover.png")
//	jpegBytes, err := svc.PrepareCover(ctx, data, 1000)
func (s *ImageService) PrepareCover(ctx context.Context, data []byte, maxSize int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxSize > 0 && (width > maxSize || height > maxSize) {
		ratio := float64(width) / float64(height)
		if width >= height {
			width = maxSize
			height = int(float64(maxSize) / ratio)
		} else {
			height = maxSize
			width = int(float64(maxSize) * ratio)
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
