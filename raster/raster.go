// Package raster turns a serialized vector document into PNG bytes by
// wrapping oksvg and rasterx.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Error wraps a rasterization failure with the stage it happened in, keeping
// it apart from parse and validation errors of the surrounding pipeline.
type Error struct {
	Stage string
	Err   error
}

func (e Error) Error() string {
	return fmt.Sprintf("rasterize: %s: %s", e.Stage, e.Err)
}

func (e Error) Unwrap() error {
	return e.Err
}

// PNG renders the given document at the given pixel size over a white
// background. A non-empty family becomes the document default font family,
// inherited by every text run that names none.
func PNG(doc []byte, width, height int, family string) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, Error{
			Stage: "setup",
			Err:   fmt.Errorf("invalid size %dx%d", width, height),
		}
	}
	if family != "" {
		attr := fmt.Sprintf("<svg font-family=%q ", family)
		doc = bytes.Replace(doc, []byte("<svg "), []byte(attr), 1)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, Error{
			Stage: "decode",
			Err:   err,
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, Error{
			Stage: "encode",
			Err:   err,
		}
	}
	return buf.Bytes(), nil
}
