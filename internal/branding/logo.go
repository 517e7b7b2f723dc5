// Package branding cuida do logo da loja: valida o arquivo enviado,
// reduz para no máximo 512px e grava como webp no bucket
// stores/{id}/branding/.
package branding

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxLogoBytes = 1 << 20 // 1MB, mesmo limite do painel
	maxLogoEdge  = 512
)

var (
	ErrLogoTooLarge      = errors.New("logo acima de 1MB")
	ErrLogoInvalidFormat = errors.New("formato inválido: use png, jpg ou webp")
)

// PrepareLogo valida e converte o upload para webp. Puro, sem I/O de rede.
func PrepareLogo(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrLogoInvalidFormat
	}
	if len(data) > MaxLogoBytes {
		return nil, ErrLogoTooLarge
	}

	var (
		img image.Image
		err error
	)

	switch http.DetectContentType(data) {
	case "image/png":
		img, err = png.Decode(bytes.NewReader(data))
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "image/webp":
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil, ErrLogoInvalidFormat
	}
	if err != nil {
		return nil, ErrLogoInvalidFormat
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// shrink reduz mantendo proporção quando algum lado passa de maxLogoEdge.
func shrink(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxLogoEdge && h <= maxLogoEdge {
		return img
	}

	ratio := float64(maxLogoEdge) / float64(w)
	if h > w {
		ratio = float64(maxLogoEdge) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*ratio), int(float64(h)*ratio)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
