// Package debug provides screenshot capture and debug geometry for the
// terrain viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes PNG captures of the rendered view.
type Screenshots struct {
	Dir    string
	Prefix string

	now func() time.Time
}

// NewScreenshots creates a capture handler writing to dir.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{Dir: dir, Prefix: prefix, now: time.Now}
}

// ImageFromPixels converts bottom-up RGBA rows, as read back from GL, into a
// top-down image.
func ImageFromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Filename returns the capture path for a terrain seed at the current time.
func (s *Screenshots) Filename(seed uint32) string {
	name := fmt.Sprintf("%s_%d_%s.png", s.Prefix, seed, s.now().Format("2006-01-02_15-04-05"))
	if s.Dir != "" {
		name = filepath.Join(s.Dir, name)
	}
	return name
}

// Capture saves GL pixel data as a PNG and returns its path.
func (s *Screenshots) Capture(pixels []byte, width, height int, seed uint32) (string, error) {
	img, err := ImageFromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.Save(img, seed)
}

// Save writes img as a PNG and returns its path.
func (s *Screenshots) Save(img image.Image, seed uint32) (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := s.Filename(seed)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}
