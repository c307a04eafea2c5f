package decode

import (
	"fmt"
	"image"
	"os"

	"github.com/nfnt/resize"

	"refboard/internal/model"
)

// DecodeFile reads and decodes one image file and scales it to the uniform
// board height, preserving aspect ratio. uniformHeight <= 0 keeps the
// original size.
func DecodeFile(src model.ImagePath, uniformHeight int) (*model.DecodedImage, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src.Path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("decode %s: empty image", src.Path)
	}

	if uniformHeight > 0 && bounds.Dy() != uniformHeight {
		img = resize.Resize(0, uint(uniformHeight), img, resize.Lanczos3)
		bounds = img.Bounds()
	}

	return &model.DecodedImage{
		Source: src,
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
