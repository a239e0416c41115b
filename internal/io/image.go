package ioutils

import (
	"bytes"
	"context"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService prepares cover art for embedding in audio tags.
//
// Podcast artwork is often several megabytes of PNG; embedding it as-is in
// every episode bloats the files. ImageService shrinks the image to a
// maximum edge length and re-encodes it as JPEG.
type ImageService struct {
	// Quality is the JPEG quality used when re-encoding.
	Quality int
}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{Quality: 90}
}

// PrepareCoverArt resizes data to fit within maxSize x maxSize and, when
// toJPEG is set, re-encodes it as JPEG. It returns the image bytes and
// their MIME type.
//
// A maxSize of 0 disables resizing. If neither resizing nor conversion is
// requested the input is returned unchanged, with its sniffed MIME type.
func (s *ImageService) PrepareCoverArt(ctx context.Context, data []byte, maxSize int, toJPEG bool) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	resized := false
	if maxSize > 0 {
		img, resized = fit(img, maxSize)
	}

	if !resized && (!toJPEG || format == "jpeg") {
		return data, "image/" + format, nil
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.Quality}); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/jpeg", nil
}

// fit scales img down to fit within maxSize x maxSize, keeping the aspect
// ratio. Images already small enough are returned untouched.
func fit(img image.Image, maxSize int) (image.Image, bool) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxSize && height <= maxSize {
		return img, false
	}

	if width >= height {
		height = max(1, height*maxSize/width)
		width = maxSize
	} else {
		width = max(1, width*maxSize/height)
		height = maxSize
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst, true
}
