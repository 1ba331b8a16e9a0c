package compress

import (
	"io"

	"github.com/datapos-io/csvstream/errs"
)

// NoopCodec passes bytes through unchanged. Useful when the input selection
// is dynamic and plain CSV is one of the choices.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

// NewReader returns r unchanged behind a no-op closer.
func (NoopCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	if r == nil {
		return nil, errs.ErrNilReader
	}

	return io.NopCloser(r), nil
}

// NewWriter returns w unchanged behind a no-op closer.
func (NoopCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if w == nil {
		return nil, errs.ErrNilReader
	}

	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
