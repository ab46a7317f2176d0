package label

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererRender(t *testing.T) {
	r := NewRenderer(600, 300, 20)

	t.Run("fixed label size", func(t *testing.T) {
		img, err := r.Render("DT6qbz2RRMA")
		require.NoError(t, err)

		bounds := img.Bounds()
		assert.Equal(t, 600, bounds.Dx())
		assert.Equal(t, 300, bounds.Dy())
	})

	t.Run("white background with dark bars", func(t *testing.T) {
		img, err := r.Render("ABC123")
		require.NoError(t, err)

		// Corners sit inside the quiet margin and must stay white.
		for _, pt := range [][2]int{{0, 0}, {599, 0}, {0, 299}, {599, 299}} {
			cr, cg, cb, _ := img.At(pt[0], pt[1]).RGBA()
			assert.EqualValues(t, 0xffff, cr, "corner %v not white", pt)
			assert.EqualValues(t, 0xffff, cg, "corner %v not white", pt)
			assert.EqualValues(t, 0xffff, cb, "corner %v not white", pt)
		}

		// The center row must contain at least one black module.
		foundBar := false
		for x := 0; x < 600; x++ {
			cr, _, _, _ := img.At(x, 150).RGBA()
			if uint8(cr>>8) == 0 {
				foundBar = true
				break
			}
		}
		assert.True(t, foundBar, "no barcode bars found on center row")
	})

	t.Run("unencodable text", func(t *testing.T) {
		_, err := r.Render("バーコード")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnencodable)
	})
}

func TestWritePNG(t *testing.T) {
	r := NewRenderer(600, 300, 20)

	img, err := r.Render("ABC123")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 600, decoded.Bounds().Dx())
	assert.Equal(t, 300, decoded.Bounds().Dy())
}
