package branding

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 225, G: 29, B: 72, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepareLogo(t *testing.T) {
	t.Run("png vira webp", func(t *testing.T) {
		out, err := PrepareLogo(pngBytes(t, 64, 64))
		require.NoError(t, err)

		img, err := webp.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 64, img.Bounds().Dx())
	})

	t.Run("imagem grande é reduzida para 512", func(t *testing.T) {
		out, err := PrepareLogo(pngBytes(t, 1024, 512))
		require.NoError(t, err)

		img, err := webp.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 512, img.Bounds().Dx())
		assert.Equal(t, 256, img.Bounds().Dy())
	})

	t.Run("formato desconhecido rejeitado", func(t *testing.T) {
		_, err := PrepareLogo([]byte("%PDF-1.7 definitivamente nao e imagem"))
		assert.ErrorIs(t, err, ErrLogoInvalidFormat)
	})

	t.Run("payload vazio rejeitado", func(t *testing.T) {
		_, err := PrepareLogo(nil)
		assert.ErrorIs(t, err, ErrLogoInvalidFormat)
	})

	t.Run("acima de 1MB rejeitado", func(t *testing.T) {
		_, err := PrepareLogo(make([]byte, MaxLogoBytes+1))
		assert.ErrorIs(t, err, ErrLogoTooLarge)
	})
}
