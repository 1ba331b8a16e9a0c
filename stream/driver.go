// Package stream pumps byte chunks from a source into a parsing session.
//
// The driver is pure plumbing over the session contract: it performs no
// parsing of its own and the session never depends on it. Hosts with a
// pull-based byte stream use ReaderSource; hosts that push chunks use
// ChannelSource, or call the session's Push/Finalize directly.
package stream

import (
	"context"
	"fmt"
	"io"

	"github.com/datapos-io/csvstream/errs"
	"github.com/datapos-io/csvstream/session"
)

// DefaultChunkSize is the chunk size used by ReaderSource when none is given.
const DefaultChunkSize = 64 * 1024

// ChunkSource supplies ordered byte chunks of a CSV document.
type ChunkSource interface {
	// Next returns the next chunk, or io.EOF after the final one. The
	// returned slice is only valid until the following Next call; callers
	// that retain chunk bytes must copy them. Next honors ctx
	// cancellation.
	Next(ctx context.Context) ([]byte, error)
}

// RowHandler receives each non-empty batch of rows completed by a push or by
// the final flush. A non-nil return stops the pump.
type RowHandler func(rows []session.Row) error

// Pump drains src into sess, invoking handler after every chunk that
// completed rows, then finalizes the session once the source is exhausted.
// It returns the total number of data rows emitted.
//
// Rows completed before a failure are delivered to the handler even when the
// same call also produced the error. Cancellation is cooperative: a cancelled
// context stops the pump between chunks and the session is simply abandoned.
func Pump(ctx context.Context, src ChunkSource, sess *session.Session, handler RowHandler) (int64, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: chunk source", errs.ErrNilReader)
	}
	if sess == nil {
		return 0, fmt.Errorf("%w: session", errs.ErrNilReader)
	}

	var total int64
	for {
		chunk, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, err
		}

		rows, err := sess.Push(chunk)
		total += int64(len(rows))
		if len(rows) > 0 && handler != nil {
			if herr := handler(rows); herr != nil {
				return total, herr
			}
		}
		if err != nil {
			return total, err
		}
	}

	rows, err := sess.Finalize()
	total += int64(len(rows))
	if len(rows) > 0 && handler != nil {
		if herr := handler(rows); herr != nil {
			return total, herr
		}
	}

	return total, err
}

// ReaderSource adapts an io.Reader into a ChunkSource with a fixed-size
// internal chunk buffer. The buffer is reused between Next calls.
type ReaderSource struct {
	r   io.Reader
	buf []byte
	err error
}

var _ ChunkSource = (*ReaderSource)(nil)

// NewReaderSource creates a ReaderSource reading chunks of up to chunkSize
// bytes from r. A chunkSize of zero or less selects DefaultChunkSize.
func NewReaderSource(r io.Reader, chunkSize int) *ReaderSource {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return &ReaderSource{r: r, buf: make([]byte, chunkSize)}
}

// Next reads the next chunk from the underlying reader.
func (s *ReaderSource) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.r == nil {
		return nil, fmt.Errorf("%w: reader source", errs.ErrNilReader)
	}
	if s.err != nil {
		return nil, s.err
	}

	for {
		n, err := s.r.Read(s.buf)
		if err != nil {
			// Sticky: deliver any final bytes first, the error on the
			// following call.
			s.err = err
		}
		if n > 0 {
			return s.buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ChannelSource adapts a channel of chunks into a ChunkSource for push-based
// hosts. Closing the channel ends the stream.
type ChannelSource struct {
	ch <-chan []byte
}

var _ ChunkSource = (*ChannelSource)(nil)

// NewChannelSource creates a ChannelSource over ch.
func NewChannelSource(ch <-chan []byte) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next waits for the next chunk or context cancellation.
func (s *ChannelSource) Next(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case chunk, ok := <-s.ch:
		if !ok {
			return nil, io.EOF
		}

		return chunk, nil
	}
}
