package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/datapos-io/csvstream/errs"
)

// LZ4Codec streams the LZ4 frame format. Fast decompression makes it a good
// fit for hot ingestion paths.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewReader wraps r with an LZ4 frame decompressor.
func (LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	if r == nil {
		return nil, errs.ErrNilReader
	}

	return io.NopCloser(lz4.NewReader(r)), nil
}

// NewWriter wraps w with an LZ4 frame compressor.
func (LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if w == nil {
		return nil, errs.ErrNilReader
	}

	return lz4.NewWriter(w), nil
}
