// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"math"
	"math/rand/v2"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	jpgBytesPerPixel   = 3.0 // raw RGB estimate; a solid JPEG is far smaller, the rest is padding
	jpgMinDimension    = 16
	jpgMaxDimension    = 4096
	jpgTinyTarget      = 2048 // below this a 1x1 image is used
	jpgWatermarkMinDim = 64
	defaultJPEGQuality = 50
)

// CreateJpg returns a JPEG image normalized to the target size
func (g *Generator) CreateJpg() ([]byte, error) {
	return g.Create(FormatJPG)
}

// encodeJpg renders a square solid-fill image with a text watermark. The side is
// derived from the target size; if the encoding still lands above the target the
// side is halved until it fits or reaches a single pixel.
func (g *Generator) encodeJpg(target int64) ([]byte, error) {
	dim := 1
	if target >= jpgTinyTarget {
		side := int64(math.Sqrt(float64(target) / jpgBytesPerPixel))
		dim = int(clamp(side, jpgMinDimension, jpgMaxDimension))
	}

	background := color.RGBA{
		R: uint8(200 + rand.IntN(56)),
		G: uint8(200 + rand.IntN(56)),
		B: uint8(200 + rand.IntN(56)),
		A: 255,
	}
	watermark := "Test Image " + token(12)

	for {
		data, err := renderJPEG(dim, background, watermark, g.quality)
		if err != nil {
			return nil, err
		}
		if int64(len(data)) <= target || dim == 1 {
			g.log.Debugf("jpg: %dx%d at quality %d, %d bytes encoded", dim, dim, g.quality, len(data))
			return data, nil
		}
		dim /= 2
		if dim < jpgMinDimension {
			dim = 1
		}
	}
}

func renderJPEG(dim int, background color.RGBA, watermark string, quality int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, dim, dim))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	if dim >= jpgWatermarkMinDim {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.RGBA{B: 255, A: 255}),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(dim/16, dim/16+13),
		}
		d.DrawString(watermark)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
