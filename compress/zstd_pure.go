//go:build !cgo

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/datapos-io/csvstream/errs"
)

// ZstdCodec streams Zstandard. This build uses the pure-Go implementation
// from klauspost/compress; with cgo enabled the libzstd-backed variant is
// compiled instead.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewReader wraps r with a zstd decompressor.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	if r == nil {
		return nil, errs.ErrNilReader
	}

	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return dec.IOReadCloser(), nil
}

// NewWriter wraps w with a zstd compressor at the default level.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if w == nil {
		return nil, errs.ErrNilReader
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}

	return enc, nil
}
