package store

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/cwbudde/rasterbench/internal/raster"
)

// Encode writes the first rows*cols pixels of ch to w in the given format.
func Encode(w io.Writer, format Format, rows, cols int, ch raster.Channels) error {
	if format == FormatPPM {
		return WritePPM(w, rows, cols, ch)
	}

	img := ToNRGBA(rows, cols, ch)
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// ToNRGBA converts channel planes to an opaque image. Values outside
// 0..255 are clamped.
func ToNRGBA(rows, cols int, ch raster.Channels) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := y*cols + x
			img.SetNRGBA(x, y, color.NRGBA{
				R: clamp8(ch.R[i]),
				G: clamp8(ch.G[i]),
				B: clamp8(ch.B[i]),
				A: 0xff,
			})
		}
	}
	return img
}

// FromImage converts any image to channel planes.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	out := &Image{
		Rows:     b.Dy(),
		Cols:     b.Dx(),
		MaxValue: raster.MaxValue,
		Channels: raster.NewChannels(b.Dx() * b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			i := (y-b.Min.Y)*out.Cols + (x - b.Min.X)
			out.Channels.R[i] = int32(c.R)
			out.Channels.G[i] = int32(c.G)
			out.Channels.B[i] = int32(c.B)
		}
	}
	return out
}

// Load decodes an image file written by FSSink. The format follows the file
// extension.
func Load(path string) (*Image, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	if format == FormatPPM {
		return ReadPPM(file)
	}

	var img image.Image
	switch format {
	case FormatPNG:
		img, err = png.Decode(file)
	case FormatBMP:
		img, err = bmp.Decode(file)
	case FormatTIFF:
		img, err = tiff.Decode(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

func clamp8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > raster.MaxValue {
		return raster.MaxValue
	}
	return uint8(v)
}
