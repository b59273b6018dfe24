package music

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"math"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// NewAlbumCoverFromImage creates a cover whose dimensions are read from the
// header of the encoded image in r. Only the header is decoded.
func NewAlbumCoverFromImage(name, artist string, r io.Reader) (*AlbumCover, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read cover image: %w", err)
	}
	slog.Debug("Read cover image header", "format", format, "width", cfg.Width, "height", cfg.Height)
	return NewAlbumCover(name, artist, cfg.Width, cfg.Height)
}

// FitToMaxResolution returns img unchanged when its resolution is within
// MaxResolution, otherwise a Lanczos3 downscaled copy with the same aspect
// ratio whose width*height does not exceed MaxResolution.
func FitToMaxResolution(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w*h <= MaxResolution {
		return img
	}
	scale := math.Sqrt(float64(MaxResolution) / float64(w*h))
	nw := max(1, int(math.Floor(float64(w)*scale)))
	nh := max(1, int(math.Floor(float64(h)*scale)))
	for nw*nh > MaxResolution {
		if nw >= nh {
			nw--
		} else {
			nh--
		}
	}
	slog.Debug("Downscaling cover image", "from", fmt.Sprintf("%dx%d", w, h), "to", fmt.Sprintf("%dx%d", nw, nh))
	return resize.Resize(uint(nw), uint(nh), img, resize.Lanczos3)
}
