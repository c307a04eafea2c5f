package decode

// Register every decoder on the supported-extension allow-list. PNG, JPEG and
// GIF come from the standard library; BMP from golang.org/x/image; XPM from
// the fyne image collection.
import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/fyne-io/image/xpm"
	_ "golang.org/x/image/bmp"
)
