//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"

	"github.com/datapos-io/csvstream/errs"
)

// ZstdCodec streams Zstandard. This build is backed by libzstd via
// valyala/gozstd; without cgo the pure-Go variant is compiled instead.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewReader wraps r with a zstd decompressor.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	if r == nil {
		return nil, errs.ErrNilReader
	}

	return &zstdReadCloser{zr: gozstd.NewReader(r)}, nil
}

// NewWriter wraps w with a zstd compressor at the default level.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if w == nil {
		return nil, errs.ErrNilReader
	}

	return gozstd.NewWriter(w), nil
}

// zstdReadCloser adapts gozstd.Reader, which releases resources through
// Release rather than Close.
type zstdReadCloser struct {
	zr *gozstd.Reader
}

func (r *zstdReadCloser) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *zstdReadCloser) Close() error {
	r.zr.Release()

	return nil
}
