// Package label renders barcode text as a fixed-size printable label.
package label

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// ErrUnencodable is returned when text contains characters that Code128
// cannot represent.
var ErrUnencodable = errors.New("text cannot be encoded as Code128")

// Renderer produces fixed-size label images with a centered Code128
// barcode on a white background. It is stateless and safe for reuse.
type Renderer struct {
	width  int
	height int
	margin int
}

// NewRenderer creates a renderer for labels of the given dimensions.
// margin is the quiet zone kept clear on every side of the barcode.
func NewRenderer(width, height, margin int) *Renderer {
	return &Renderer{width: width, height: height, margin: margin}
}

// Render encodes text as Code128 and centers it on a white label.
func (r *Renderer) Render(text string) (image.Image, error) {
	code, err := code128.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}

	innerW := r.width - 2*r.margin
	innerH := r.height - 2*r.margin

	scaled, err := barcode.Scale(code, innerW, innerH)
	if err != nil {
		return nil, fmt.Errorf("scale barcode to %dx%d: %w", innerW, innerH, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	bounds := scaled.Bounds()
	offset := image.Pt(
		(r.width-bounds.Dx())/2,
		(r.height-bounds.Dy())/2,
	)
	draw.Draw(img, bounds.Add(offset).Sub(bounds.Min), scaled, bounds.Min, draw.Over)

	return img, nil
}

// WritePNG encodes a rendered label as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode label png: %w", err)
	}
	return nil
}
