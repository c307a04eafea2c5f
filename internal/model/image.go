package model

import "image"

// ImagePath identifies one image file produced by the directory scanner.
type ImagePath struct {
	Path string // absolute file path
	Ext  string // lowercase extension including the dot, e.g. ".png"
}

// DecodedImage holds a decoded bitmap scaled to the uniform board height.
type DecodedImage struct {
	Source ImagePath
	Image  image.Image
	Width  int // scaled width in board units
	Height int // scaled height in board units
}

// DecodeResult is emitted by the decode pool, one per submitted file.
// Index is the file's position in scan order; the layout engine uses it to
// restore deterministic placement regardless of decode completion order.
type DecodeResult struct {
	JobID  string
	Index  int
	Source ImagePath
	Image  *DecodedImage // nil when Err is set
	Err    error
}

// Failed returns true if this file could not be decoded.
func (r DecodeResult) Failed() bool {
	return r.Err != nil
}
