package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/rasterbench/internal/raster"
)

// ErrMalformedPPM is returned when a plain PPM stream cannot be parsed.
var ErrMalformedPPM = errors.New("malformed PPM")

// Image is a decoded raster.
type Image struct {
	Rows     int
	Cols     int
	MaxValue int
	Channels raster.Channels
}

// WritePPM writes the first rows*cols pixels of ch as plain (P3) PPM: a
// header of "P3", "<cols> <rows>" and "255", then one "r g b" line per pixel
// in row-major order. Values are written as stored, without clamping.
func WritePPM(w io.Writer, rows, cols int, ch raster.Channels) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n%d\n", cols, rows, raster.MaxValue); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	line := make([]byte, 0, 48)
	n := rows * cols
	for i := 0; i < n; i++ {
		line = line[:0]
		line = strconv.AppendInt(line, int64(ch.R[i]), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(ch.G[i]), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(ch.B[i]), 10)
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("failed to write pixel %d: %w", i, err)
		}
	}
	return nil
}

// ReadPPM decodes a plain (P3) PPM stream. Comments starting with '#' are
// skipped. Images larger than raster.MaxPixels are rejected before any
// pixel storage is allocated.
func ReadPPM(r io.Reader) (*Image, error) {
	tr := &tokenReader{r: bufio.NewReader(r)}

	magic, err := tr.next()
	if err != nil {
		return nil, fmt.Errorf("%w: missing magic: %v", ErrMalformedPPM, err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("%w: magic %q, want P3", ErrMalformedPPM, magic)
	}

	var header [3]int
	for i, field := range []string{"width", "height", "max value"} {
		v, err := tr.nextInt()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedPPM, field, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("%w: %s %d must be positive", ErrMalformedPPM, field, v)
		}
		header[i] = v
	}

	img := &Image{Cols: header[0], Rows: header[1], MaxValue: header[2]}
	if img.Rows > raster.MaxPixels || img.Cols > raster.MaxPixels ||
		int64(img.Rows)*int64(img.Cols) > raster.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrMalformedPPM, img.Cols, img.Rows, raster.MaxPixels)
	}
	n := img.Rows * img.Cols
	img.Channels = raster.NewChannels(n)

	planes := [3][]int32{img.Channels.R, img.Channels.G, img.Channels.B}
	for i := 0; i < n; i++ {
		for c := range planes {
			v, err := tr.nextInt()
			if err != nil {
				return nil, fmt.Errorf("%w: pixel %d: %v", ErrMalformedPPM, i, err)
			}
			planes[c][i] = int32(v)
		}
	}
	return img, nil
}

type tokenReader struct {
	r   *bufio.Reader
	buf []byte
}

func (t *tokenReader) next() (string, error) {
	t.buf = t.buf[:0]
	for {
		c, err := t.r.ReadByte()
		if err == io.EOF && len(t.buf) > 0 {
			return string(t.buf), nil
		}
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}

		switch {
		case c == '#':
			if _, err := t.r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		default:
			t.buf = append(t.buf, c)
		}
	}
}

func (t *tokenReader) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", tok)
	}
	return v, nil
}
