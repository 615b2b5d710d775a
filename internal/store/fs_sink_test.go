package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/rasterbench/internal/raster"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatPPM},
		{"ppm", FormatPPM},
		{"PNG", FormatPNG},
		{".bmp", FormatBMP},
		{"tif", FormatTIFF},
		{"tiff", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("jpeg"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(jpeg) error = %v, want ErrUnknownFormat", err)
	}
}

func TestNewFSSinkCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	if _, err := NewFSSink(dir, FormatPPM); err != nil {
		t.Fatalf("NewFSSink failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("output directory not created: %v", err)
	}

	if _, err := NewFSSink(dir, Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("NewFSSink(gif) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFSSinkWriteEveryFormat(t *testing.T) {
	ch := scalarChannels(4, 8)

	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			dir := t.TempDir()
			sink, err := NewFSSink(dir, format)
			if err != nil {
				t.Fatal(err)
			}
			if err := sink.Write("scalar", 4, 8, ch); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			path := filepath.Join(dir, "scalar."+string(format))
			if sink.Path("scalar") != path {
				t.Errorf("Path = %s, want %s", sink.Path("scalar"), path)
			}
			if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
				t.Error("temp file left behind")
			}

			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			d, err := Compare(img, &Image{Rows: 4, Cols: 8, Channels: ch})
			if err != nil {
				t.Fatal(err)
			}
			if !d.Identical() {
				t.Errorf("%s round trip differs: %+v", format, d)
			}
		})
	}
}

func TestFSSinkOverwritesPreviousTrial(t *testing.T) {
	sink, err := NewFSSink(t.TempDir(), FormatPPM)
	if err != nil {
		t.Fatal(err)
	}

	first := raster.NewChannels(8)
	if err := sink.Write("vector", 1, 8, first); err != nil {
		t.Fatal(err)
	}
	if err := sink.Write("vector", 2, 4, scalarChannels(2, 4)); err != nil {
		t.Fatal(err)
	}

	img, err := Load(sink.Path("vector"))
	if err != nil {
		t.Fatal(err)
	}
	if img.Rows != 2 || img.Cols != 4 {
		t.Errorf("file holds %dx%d, want the second trial 4x2", img.Cols, img.Rows)
	}
}

func TestFSSinkRejectsShortChannels(t *testing.T) {
	sink, err := NewFSSink(t.TempDir(), FormatPPM)
	if err != nil {
		t.Fatal(err)
	}
	if err := sink.Write("scalar", 4, 4, raster.NewChannels(8)); err == nil {
		t.Error("expected error for channels shorter than rows*cols")
	}
	if err := sink.Write("", 1, 1, raster.NewChannels(1)); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestToNRGBAClamps(t *testing.T) {
	ch := raster.Channels{
		R: []int32{-5, 300},
		G: []int32{0, 255},
		B: []int32{128, 1000},
	}
	img := ToNRGBA(1, 2, ch)

	if c := img.NRGBAAt(0, 0); c.R != 0 || c.G != 0 || c.B != 128 || c.A != 255 {
		t.Errorf("pixel 0 = %+v", c)
	}
	if c := img.NRGBAAt(1, 0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("pixel 1 = %+v", c)
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Write("scalar", 1, 1, raster.NewChannels(1)); err != nil {
		t.Errorf("Discard.Write = %v", err)
	}
}
