// Package csvstream provides incremental, chunk-fed CSV parsing.
//
// A session consumes arbitrarily sized byte fragments of a CSV document as
// they arrive, with no alignment to record or field boundaries, and emits
// complete decoded rows as soon as they become available. Each input byte is
// examined at most once; only the unfinished tail of a record is retained
// between chunks.
//
// # Core Features
//
//   - Push/Finalize session over raw bytes with per-chunk row delivery
//   - Records and fields split across chunk boundaries, any split point
//   - Growable scratch buffers: no fixed limit on record width or field count
//   - Header capture with normalized names and O(1) xxHash64 column lookup
//   - Whitespace-only row filtering
//   - Streaming drivers over io.Reader and chunk channels
//   - Compressed inputs (gzip, zstd, s2, lz4) via the compress package
//
// # Basic Usage
//
// Incremental parsing:
//
//	sess, _ := csvstream.NewSession(',', true)
//	for chunk := range chunks {
//	    rows, err := sess.Push(chunk)
//	    if err != nil {
//	        return err
//	    }
//	    for _, row := range rows {
//	        fmt.Println(row)
//	    }
//	}
//	tail, err := sess.Finalize()
//
// Single-shot parsing:
//
//	rows, headers, err := csvstream.Parse(data, ',', true)
//
// Streaming from a reader:
//
//	rows, headers, err := csvstream.ParseReader(ctx, file, ',', true)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the session and
// stream packages, simplifying the most common use cases. For fine-grained
// control (session options, custom chunk sources, compressed inputs), use the
// session, stream, and compress packages directly.
package csvstream

import (
	"context"
	"io"

	"github.com/datapos-io/csvstream/session"
	"github.com/datapos-io/csvstream/stream"
)

// Row is one decoded CSV record, re-exported from the session package.
type Row = session.Row

// NewSession creates an incremental parsing session for one CSV document.
// See session.NewSession for option details.
func NewSession(delimiter byte, hasHeaders bool, opts ...session.Option) (*session.Session, error) {
	return session.NewSession(delimiter, hasHeaders, opts...)
}

// Parse parses a complete in-memory CSV document in one shot and returns the
// data rows plus the normalized headers (nil when hasHeaders is false).
func Parse(data []byte, delimiter byte, hasHeaders bool) ([]Row, []string, error) {
	sess, err := session.NewSession(delimiter, hasHeaders)
	if err != nil {
		return nil, nil, err
	}

	rows, err := sess.Push(data)
	if err != nil {
		return rows, sess.Headers(), err
	}

	tail, err := sess.Finalize()
	rows = append(rows, tail...)

	return rows, sess.Headers(), err
}

// ParseReader streams r through a session with the default chunk size and
// collects all rows. For per-batch delivery or custom chunk sizes, use
// stream.Pump directly.
func ParseReader(ctx context.Context, r io.Reader, delimiter byte, hasHeaders bool) ([]Row, []string, error) {
	sess, err := session.NewSession(delimiter, hasHeaders)
	if err != nil {
		return nil, nil, err
	}

	var rows []Row
	_, err = stream.Pump(ctx, stream.NewReaderSource(r, 0), sess, func(batch []Row) error {
		rows = append(rows, batch...)

		return nil
	})

	return rows, sess.Headers(), err
}
