package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file names whose suffix names no known encoding
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format is the image encoding
type Format int

const (
	FormatPPM Format = iota // Plain-text "P3"
	FormatPNM               // Binary "P6"
	FormatPNG
)

func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNM:
		return "pnm"
	case FormatPNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Compression wraps the encoded image stream
type Compression int

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionSnappy
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionSnappy:
		return "snappy"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// ParseFilename picks the encoding from the file suffix, e.g. "out.ppm" or "out.png.zst"
func ParseFilename(name string) (Format, Compression, error) {
	ext := strings.ToLower(filepath.Ext(name))

	compression := CompressionNone
	switch ext {
	case ".zst":
		compression = CompressionZstd
	case ".sz":
		compression = CompressionSnappy
	}
	if compression != CompressionNone {
		name = strings.TrimSuffix(name, filepath.Ext(name))
		ext = strings.ToLower(filepath.Ext(name))
	}

	switch ext {
	case ".ppm":
		return FormatPPM, compression, nil
	case ".pnm":
		return FormatPNM, compression, nil
	case ".png":
		return FormatPNG, compression, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}
