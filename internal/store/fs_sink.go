package store

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cwbudde/rasterbench/internal/raster"
)

// writeBufferSize is 32 MiB; a full-HD PPM is flushed in one or two writes.
const writeBufferSize = 32 << 20

// FSSink writes each trial to <dir>/<name><ext>, replacing the previous
// trial of the same strategy.
//
// Writes go to a temp file that is renamed into place, so a reader never
// sees a half-written image.
type FSSink struct {
	dir    string
	format Format
}

// NewFSSink creates dir if needed and returns a sink writing format.
func NewFSSink(dir string, format Format) (*FSSink, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FSSink{dir: dir, format: format}, nil
}

// Path returns the file written for the named strategy.
func (s *FSSink) Path(name string) string {
	return filepath.Join(s.dir, name+s.format.Ext())
}

// Format returns the encoding the sink writes.
func (s *FSSink) Format() Format {
	return s.format
}

// Write encodes ch and atomically replaces the strategy's file.
func (s *FSSink) Write(name string, rows, cols int, ch raster.Channels) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if ch.Len() < rows*cols {
		return fmt.Errorf("channels hold %d pixels, need %d", ch.Len(), rows*cols)
	}

	finalPath := s.Path(name)
	tempPath := finalPath + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp image file: %w", err)
	}

	w := bufio.NewWriterSize(file, writeBufferSize)
	if err := Encode(w, s.format, rows, cols, ch); err != nil {
		file.Close()
		os.Remove(tempPath)
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to flush image file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close image file: %w", err)
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename image file: %w", err)
	}

	slog.Debug("Image saved", "strategy", name, "path", finalPath, "format", s.format)
	return nil
}
