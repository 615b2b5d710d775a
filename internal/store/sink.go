// Package store persists generated channel planes as image files.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/rasterbench/internal/raster"
)

// ErrUnknownFormat is returned for an unsupported image format name.
var ErrUnknownFormat = errors.New("unknown image format")

// Format selects the encoding written by FSSink.
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists the supported formats, the default first.
func Formats() []Format {
	return []Format{FormatPPM, FormatPNG, FormatBMP, FormatTIFF}
}

// ParseFormat maps a format name or file extension to a Format. Empty
// selects PPM.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "", "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Discard is a sink that drops every trial.
var Discard discard

type discard struct{}

func (discard) Write(string, int, int, raster.Channels) error { return nil }
