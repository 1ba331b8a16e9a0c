package compress

import (
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/datapos-io/csvstream/errs"
)

// S2Codec streams S2, a Snappy-compatible format with balanced speed and
// ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewReader wraps r with an S2 decompressor.
func (S2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	if r == nil {
		return nil, errs.ErrNilReader
	}

	return io.NopCloser(s2.NewReader(r)), nil
}

// NewWriter wraps w with an S2 compressor.
func (S2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if w == nil {
		return nil, errs.ErrNilReader
	}

	return s2.NewWriter(w), nil
}
