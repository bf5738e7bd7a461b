package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/signintech/gopdf"

	svgo "github.com/ajstarks/svgo"
)

// image renders the symbol as an image.Image, upscaling each module to
// cover at least one pixel and snapping to the nearest module per pixel.
func (s *Symbol) image(size int) image.Image {
	realSize := s.size

	if size < realSize {
		size = realSize
	}

	rect := image.Rectangle{Min: image.Point{}, Max: image.Point{X: size, Y: size}}

	palette := color.Palette([]color.Color{s.options.BackgroundColor, s.options.ForegroundColor})
	img := image.NewPaletted(rect, palette)

	modulesPerPixel := float64(realSize) / float64(size)

	for y := 0; y < size; y++ {
		my := int(float64(y) * modulesPerPixel)

		for x := 0; x < size; x++ {
			mx := int(float64(x) * modulesPerPixel)

			if s.modules[my][mx] {
				img.Set(x, y, s.options.ForegroundColor)
			}
		}
	}

	return img
}

// PNG renders the symbol as a PNG image at least size pixels square.
func (s *Symbol) PNG(size int) ([]byte, error) {
	img := s.image(size)

	encoder := png.Encoder{CompressionLevel: png.BestCompression}

	var buf bytes.Buffer

	if err := encoder.Encode(&buf, img); err != nil {
		return nil, err
	}

	return s.maybeBase64(buf.Bytes(), "image/png"), nil
}

// JPEG renders the symbol as a JPEG image at least size pixels square.
func (s *Symbol) JPEG(size int) ([]byte, error) {
	img := s.image(size)

	var buf bytes.Buffer

	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		return nil, err
	}

	return s.maybeBase64(buf.Bytes(), "image/jpeg"), nil
}

// PDF renders the symbol as a single-page PDF, size points square.
func (s *Symbol) PDF(size int) ([]byte, error) {
	img := s.image(size)

	pdf := gopdf.GoPdf{}
	rect := gopdf.Rect{W: float64(size), H: float64(size)}

	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: rect})
	pdf.AddPage()

	if err := pdf.ImageFrom(img, 0, 0, &rect); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	if err := pdf.Write(&buf); err != nil {
		return nil, err
	}

	return s.maybeBase64(buf.Bytes(), "application/pdf"), nil
}

// SVG renders the symbol as a scalable vector graphic at least size units
// square.
func (s *Symbol) SVG(size int) []byte {
	var buf bytes.Buffer

	bgR, bgG, bgB, bgA := s.options.BackgroundColor.RGBA()
	bgStyle := fmt.Sprintf("fill: rgb(%d, %d, %d); fill-opacity: %.2f",
		bgR>>8, bgG>>8, bgB>>8, float64(bgA>>8)/255)

	fgR, fgG, fgB, fgA := s.options.ForegroundColor.RGBA()
	fgStyle := fmt.Sprintf("fill: rgb(%d, %d, %d); fill-opacity: %.2f",
		fgR>>8, fgG>>8, fgB>>8, float64(fgA>>8)/255)

	scale := math.Floor(float64(size)/float64(s.size)) + 1
	size = int(scale) * s.size

	svg := svgo.New(&buf)

	svg.Start(size, size)
	svg.Rect(0, 0, size, size, bgStyle)
	svg.Group(fgStyle)
	svg.Scale(scale)

	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.modules[y][x] {
				svg.Rect(x, y, 1, 1)
			}
		}
	}

	svg.Gend()
	svg.Gend()
	svg.End()

	return s.maybeBase64(buf.Bytes(), "image/svg+xml")
}

func (s *Symbol) maybeBase64(data []byte, mime string) []byte {
	if !s.options.Base64 {
		return data
	}

	return []byte(fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)))
}
