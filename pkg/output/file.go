package output

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

var logger = log.New("output")

// NewWriter wraps w with the requested compression. Closing the returned
// writer flushes the compressor but leaves w open.
func NewWriter(w io.Writer, compression Compression) (io.WriteCloser, error) {
	switch compression {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZstd:
		return zstd.NewWriter(w)
	case CompressionSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, compression)
	}
}

// NewReader undoes NewWriter
func NewReader(r io.Reader, compression Compression) (io.ReadCloser, error) {
	switch compression {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, compression)
	}
}

// Save encodes img into filename, choosing format and compression from its suffix
func Save(filename string, img *image.RGBA) error {
	format, compression, err := ParseFilename(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}

	if err := encodeTo(file, img, format, compression); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", filename, err)
	}

	logger.Debugf("wrote %s (%v, compression %v)", filename, format, compression)
	return nil
}

// encodeTo encodes img through the compressor into w and flushes the compressor
func encodeTo(w io.Writer, img *image.RGBA, format Format, compression Compression) error {
	stream, err := NewWriter(w, compression)
	if err != nil {
		return err
	}
	if err := Encode(stream, img, format); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}

// Open returns the decompressed encoded image stored in filename
func Open(filename string) (io.ReadCloser, error) {
	_, compression, err := ParseFilename(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	stream, err := NewReader(file, compression)
	if err != nil {
		file.Close()
		return nil, err
	}
	return readCloser{Reader: stream, closers: []io.Closer{stream, file}}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
