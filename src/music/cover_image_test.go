package music

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func TestNewAlbumCoverFromImage(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer, image.Image) error
	}{
		{"png", func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) }},
		{"bmp", func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 360))); err != nil {
				t.Fatalf("encode error = %v", err)
			}
			cover, err := NewAlbumCoverFromImage("Front", "reid miles", &buf)
			if err != nil {
				t.Fatalf("NewAlbumCoverFromImage() error = %v", err)
			}
			if cover.Width() != 640 || cover.Height() != 360 {
				t.Errorf("dimensions = %dx%d, want 640x360", cover.Width(), cover.Height())
			}
			if cover.AspectRatio() != "16:9" {
				t.Errorf("AspectRatio() = %q, want 16:9", cover.AspectRatio())
			}
		})
	}
}

func TestNewAlbumCoverFromImage_Errors(t *testing.T) {
	if _, err := NewAlbumCoverFromImage("Front", "reid miles", strings.NewReader("not an image")); err == nil {
		t.Error("expected an error for undecodable data")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1200, 1200))); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	if _, err := NewAlbumCoverFromImage("Front", "reid miles", &buf); !errors.Is(err, ErrMaxResolution) {
		t.Errorf("oversized image error = %v, want %v", err, ErrMaxResolution)
	}
}

func TestFitToMaxResolution(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 500, 500))
	if got := FitToMaxResolution(small); got != image.Image(small) {
		t.Error("images within the limit should be returned unchanged")
	}

	large := image.NewRGBA(image.Rect(0, 0, 1600, 900))
	fitted := FitToMaxResolution(large)
	w, h := fitted.Bounds().Dx(), fitted.Bounds().Dy()
	if w*h > MaxResolution {
		t.Errorf("fitted image is %dx%d, over %d pixels", w, h, MaxResolution)
	}
	if w <= h {
		t.Errorf("fitted image %dx%d lost its landscape orientation", w, h)
	}
	if w < 1400 || h < 780 {
		t.Errorf("fitted image %dx%d shrank more than needed", w, h)
	}

	cover, err := NewAlbumCover("Front", "reid miles", 1, 1)
	if err != nil {
		t.Fatalf("NewAlbumCover() error = %v", err)
	}
	if err := cover.SetWidth(w); err != nil {
		t.Fatalf("SetWidth(%d) error = %v", w, err)
	}
	if err := cover.SetHeight(h); err != nil {
		t.Errorf("fitted dimensions rejected by the cover: %v", err)
	}
}
