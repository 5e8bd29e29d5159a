package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // frames may be uploaded as PNG

	"github.com/grofast/portal-backend-go/internal/domain/capture"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	_ "golang.org/x/image/webp" // frames may be uploaded as WebP
)

const (
	jpegQuality = 90
	// maxPhotoWidth bounds the stored photo; larger frames are scaled down.
	maxPhotoWidth = 1280
	// maxFrameSide bounds either dimension of an uploaded frame; the header
	// is checked before any pixels are decoded.
	maxFrameSide = 4096
)

func decodeFrame(data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", capture.ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty frame", capture.ErrUnsupportedImage)
	}
	if cfg.Width > maxFrameSide || cfg.Height > maxFrameSide {
		return nil, fmt.Errorf("%w: %dx%d", capture.ErrFrameTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", capture.ErrUnsupportedImage, err)
	}
	return img, nil
}

// mirror flips src horizontally into a new image anchored at the origin.
// The matrix maps source space to destination space.
func mirror(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	m := f64.Aff3{
		-1, 0, float64(b.Dx() + b.Min.X),
		0, 1, float64(-b.Min.Y),
	}
	draw.NearestNeighbor.Transform(dst, m, src, b, draw.Src, nil)
	return dst
}

func downscale(img *image.RGBA) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxPhotoWidth {
		return img
	}
	h := b.Dy() * maxPhotoWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxPhotoWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// encodePhoto mirrors the frame to match the preview and encodes it as JPEG.
func encodePhoto(frame image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, downscale(mirror(frame)), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode photo: %w", err)
	}
	return buf.Bytes(), nil
}

func dataURL(photo []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(photo)
}
