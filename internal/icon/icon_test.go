package icon

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	for _, size := range []int{192, 512} {
		t.Run(FileName(size), func(t *testing.T) {
			img, err := Render(size)
			require.NoError(t, err)

			assert.Equal(t, size, img.Bounds().Dx())
			assert.Equal(t, size, img.Bounds().Dy())

			// rounded corners stay transparent
			assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
			assert.Equal(t, color.RGBA{}, img.RGBAAt(size-1, size-1))

			scale := float64(size) / viewBox
			// checkmark vertex
			assert.Equal(t, Ink, img.RGBAAt(int(12*scale), int(14*scale)))
			// clipboard left edge
			assert.Equal(t, Ink, img.RGBAAt(int(5*scale), int(12*scale)))
			// below the clipboard is plain background
			assert.Equal(t, Background, img.RGBAAt(size/2, size*22/24))
		})
	}
}

func TestRender_SmallSizeUsesMinimumStroke(t *testing.T) {
	img, err := Render(8)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestRender_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := Render(size)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestWritePNG_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, WritePNG(&first, 192))
	require.NoError(t, WritePNG(&second, 192))

	assert.Equal(t, first.Bytes(), second.Bytes())

	img, err := png.Decode(&first)
	require.NoError(t, err)
	assert.Equal(t, 192, img.Bounds().Dx())
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, 192)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "icon-192.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 192, cfg.Width)
	assert.Equal(t, 192, cfg.Height)
}

func TestWriteFile_Errors(t *testing.T) {
	t.Run("invalid size leaves no file", func(t *testing.T) {
		dir := t.TempDir()
		_, err := WriteFile(dir, 0)
		assert.ErrorIs(t, err, ErrInvalidSize)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := WriteFile(filepath.Join(t.TempDir(), "nope"), 192)
		assert.Error(t, err)
	})
}
