package placeholder

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/buckket/go-blurhash"
	"github.com/disintegration/imaging"
)

const pngDataURLPrefix = "data:image/png;base64,"

// Decoder превращает blur hash в растровое изображение заданного размера.
type Decoder interface {
	Decode(hash string, width, height int) (image.Image, error)
}

// Renderer сериализует изображение в самодостаточный data URL.
type Renderer interface {
	Render(img image.Image) (string, error)
}

// BlurHashDecoder декодирует хэш формата BlurHash.
// Punch усиливает контраст; ноль равен единице.
type BlurHashDecoder struct {
	Punch int
}

func (d BlurHashDecoder) Decode(hash string, width, height int) (image.Image, error) {
	punch := d.Punch
	if punch <= 0 {
		punch = 1
	}
	img, err := blurhash.Decode(hash, width, height, punch)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования blur hash: %w", err)
	}
	return img, nil
}

// PNGRenderer кодирует изображение в PNG и возвращает его как data:image/png;base64.
type PNGRenderer struct{}

func (PNGRenderer) Render(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("ошибка кодирования PNG: %w", err)
	}
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
