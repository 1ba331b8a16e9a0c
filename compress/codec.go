// Package compress provides streaming compression codecs for CSV byte
// sources.
//
// A compressed CSV document becomes a plain io.Reader via NewReader and can
// then be fed to the parsing session through a stream.ReaderSource without
// the session knowing anything about compression. Writers exist for the
// reverse path so tests and tooling can produce compressed fixtures.
//
// Supported formats: None, Gzip, Zstd, S2, and LZ4. Zstd has two builds: a
// cgo implementation backed by libzstd and a pure-Go fallback.
package compress

import (
	"fmt"
	"io"

	"github.com/datapos-io/csvstream/errs"
	"github.com/datapos-io/csvstream/format"
)

// Codec creates streaming readers and writers for one compression format.
type Codec interface {
	// NewReader wraps r so that reads return decompressed bytes.
	// The caller must close the returned reader.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// NewWriter wraps w so that writes are compressed. The caller must
	// close the returned writer to flush the final frame.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// ForType returns the Codec implementing the given compression type.
func ForType(t format.CompressionType) (Codec, error) {
	switch t {
	case format.CompressionNone:
		return NoopCodec{}, nil
	case format.CompressionGzip:
		return GzipCodec{}, nil
	case format.CompressionZstd:
		return ZstdCodec{}, nil
	case format.CompressionS2:
		return S2Codec{}, nil
	case format.CompressionLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", errs.ErrUnknownCompression, t)
	}
}

// NewReader wraps r with the decompressor for t.
func NewReader(t format.CompressionType, r io.Reader) (io.ReadCloser, error) {
	codec, err := ForType(t)
	if err != nil {
		return nil, err
	}

	return codec.NewReader(r)
}

// NewWriter wraps w with the compressor for t.
func NewWriter(t format.CompressionType, w io.Writer) (io.WriteCloser, error) {
	codec, err := ForType(t)
	if err != nil {
		return nil, err
	}

	return codec.NewWriter(w)
}
