// Package icon draws the task manager app icon: a checkmark over a clipboard
// outline on a white rounded square.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
)

// The design is laid out on a 24x24 grid and scaled to the requested size.
const viewBox = 24

var (
	ErrInvalidSize = errors.New("invalid icon size")

	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Ink is #8b7355.
	Ink = color.RGBA{R: 139, G: 115, B: 85, A: 255}
)

// Render draws the icon on a transparent size x size canvas.
func Render(size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRoundedRect(img, float64(size/4), Background)

	stroke := float64(max(2, size/10))
	scale := float64(size) / viewBox
	at := func(v float64) int { return int(v * scale) }

	// Checkmark
	drawPolyline(img, []image.Point{
		image.Pt(at(9), at(11)),
		image.Pt(at(12), at(14)),
		image.Pt(at(20), at(6)),
	}, stroke, Ink)

	// Clipboard: right, bottom, left, then the top up to where the check crosses it
	left, top := at(5), at(5)
	right := at(21)
	bottom := top + at(14)
	drawLine(img, image.Pt(right, top), image.Pt(right, bottom), stroke, Ink)
	drawLine(img, image.Pt(right, bottom), image.Pt(left, bottom), stroke, Ink)
	drawLine(img, image.Pt(left, bottom), image.Pt(left, top), stroke, Ink)
	drawLine(img, image.Pt(left, top), image.Pt(at(16), top), stroke, Ink)

	return img, nil
}

func WritePNG(w io.Writer, size int) error {
	img, err := Render(size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// FileName is the name WriteFile uses for an icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// WriteFile renders the icon into dir and returns the written path.
func WriteFile(dir string, size int) (string, error) {
	path := filepath.Join(dir, FileName(size))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WritePNG(f, size); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func fillRoundedRect(img *image.RGBA, radius float64, c color.RGBA) {
	b := img.Bounds()
	minX, minY := float64(b.Min.X)+radius, float64(b.Min.Y)+radius
	maxX, maxY := float64(b.Max.X)-radius, float64(b.Max.Y)-radius

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			// distance to the inner rectangle; zero inside it
			dx := math.Max(0, math.Max(minX-px, px-maxX))
			dy := math.Max(0, math.Max(minY-py, py-maxY))
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func drawPolyline(img *image.RGBA, pts []image.Point, width float64, c color.RGBA) {
	for i := 1; i < len(pts); i++ {
		drawLine(img, pts[i-1], pts[i], width, c)
	}
}

// drawLine strokes a segment with round caps, so consecutive segments join smoothly.
func drawLine(img *image.RGBA, a, b image.Point, width float64, c color.RGBA) {
	half := width / 2
	pad := int(math.Ceil(half))
	area := image.Rect(
		min(a.X, b.X)-pad, min(a.Y, b.Y)-pad,
		max(a.X, b.X)+pad+1, max(a.Y, b.Y)+pad+1,
	).Intersect(img.Bounds())

	ax, ay := float64(a.X), float64(a.Y)
	vx, vy := float64(b.X-a.X), float64(b.Y-a.Y)
	lenSq := vx*vx + vy*vy

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			px, py := float64(x)+0.5-ax, float64(y)+0.5-ay
			t := 0.0
			if lenSq > 0 {
				t = math.Max(0, math.Min(1, (px*vx+py*vy)/lenSq))
			}
			dx, dy := px-t*vx, py-t*vy
			if dx*dx+dy*dy <= half*half {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
