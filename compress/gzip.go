package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/datapos-io/csvstream/errs"
)

// GzipCodec streams gzip, the most common on-disk format for large CSV
// exports (.csv.gz).
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewReader wraps r with a gzip decompressor. It fails if r does not start
// with a valid gzip header.
func (GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	if r == nil {
		return nil, errs.ErrNilReader
	}

	return gzip.NewReader(r)
}

// NewWriter wraps w with a gzip compressor at the default level.
func (GzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if w == nil {
		return nil, errs.ErrNilReader
	}

	return gzip.NewWriter(w), nil
}
