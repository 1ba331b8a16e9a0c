package session

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/datapos-io/csvstream/errs"
	"github.com/datapos-io/csvstream/internal/options"
	"github.com/datapos-io/csvstream/internal/scratch"
	"github.com/datapos-io/csvstream/tokenizer"
)

// Row is one decoded CSV record: an ordered sequence of UTF-8 field values.
// A Row is immutable once returned; ownership transfers to the caller.
type Row []string

// Session is an incremental, chunk-fed CSV parsing session.
//
// Note: a Session is NOT thread-safe and is NOT reusable after Finalize.
// Create a new Session per logical CSV document.
type Session struct {
	rdr  *tokenizer.Reader
	bufs *scratch.Buffers

	// buf holds input received but not yet consumed into rows. After each
	// drain pass it contains only bytes of a record not yet completed.
	buf []byte

	// pending carries a record that began in one pass but did not finish
	// before input ran out.
	pending scratch.Accumulator

	hasHeaders  bool
	filterEmpty bool
	headersDone bool
	headers     []string
	columns     map[uint64]int
	finished    bool
}

// NewSession creates a session for one CSV document.
//
// The delimiter is a single byte and is not validated; header mode controls
// whether the first completed record is captured as headers instead of being
// emitted as data.
func NewSession(delimiter byte, hasHeaders bool, opts ...Option) (*Session, error) {
	cfg := &config{
		recordSize:  scratch.DefaultRecordSize,
		endsSize:    scratch.DefaultEndsSize,
		filterEmpty: true,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Session{
		rdr:         tokenizer.NewReader(delimiter),
		bufs:        scratch.NewBuffers(cfg.recordSize, cfg.endsSize),
		hasHeaders:  hasHeaders,
		filterEmpty: cfg.filterEmpty,
	}, nil
}

// Push feeds one chunk of input and returns the data rows it completed,
// possibly none. Rows returned alongside a non-nil error were completed
// before the failure and remain valid.
func (s *Session) Push(chunk []byte) ([]Row, error) {
	if s.finished {
		return nil, errs.ErrSessionFinished
	}

	s.buf = append(s.buf, chunk...)

	return s.drainRecords(false)
}

// Finalize signals end of input, returns any rows completed by the flush, and
// leaves the session unusable for further pushes.
//
// The tokenizer requires a line terminator to recognize a record, so an
// unterminated final record is completed by the flush: buffered input that
// does not already end with a newline gets a single one appended (at most
// once, never during an incremental push) before the last drain, and the
// drain finishes with end-of-data bookkeeping for any record the tokenizer
// still holds in progress.
func (s *Session) Finalize() ([]Row, error) {
	if s.finished {
		return nil, errs.ErrSessionFinished
	}
	s.finished = true

	if len(s.buf) > 0 && s.buf[len(s.buf)-1] != '\n' {
		s.buf = append(s.buf, '\n')
	}

	return s.drainRecords(true)
}

// drainRecords drives the tokenizer across the buffered input, materializing
// completed records into rows and trimming consumed bytes. Buffer-capacity
// outcomes are handled by growth and retry; they never surface to the caller.
func (s *Session) drainRecords(final bool) ([]Row, error) {
	var rows []Row
	offset := 0

	// Reclaim the carry-over so a record split across pushes is spliced
	// onto the front of this pass's output.
	cur := s.pending
	s.pending = scratch.Accumulator{}

drain:
	for offset < len(s.buf) {
		res, nin, nout, nends := s.rdr.ReadRecord(s.buf[offset:], s.bufs.Record, s.bufs.Ends)

		offset += nin
		cur.Append(s.bufs.Record[:nout], s.bufs.Ends[:nends])

		switch res {
		case tokenizer.Record:
			var err error
			rows, err = s.emitRecord(&cur, rows)
			if err != nil {
				return rows, err
			}
		case tokenizer.InputEmpty, tokenizer.End:
			break drain
		case tokenizer.OutputFull:
			s.bufs.GrowRecord(nout)
		case tokenizer.OutputEndsFull:
			s.bufs.GrowEnds(nends)
		}
	}

	if offset > 0 {
		s.buf = s.buf[:copy(s.buf, s.buf[offset:])]
	}

	if final {
		// End-of-data bookkeeping: an empty span tells the tokenizer to
		// complete a record left in progress by an unterminated final
		// line, then report End.
	flush:
		for {
			res, _, nout, nends := s.rdr.ReadRecord(nil, s.bufs.Record, s.bufs.Ends)
			cur.Append(s.bufs.Record[:nout], s.bufs.Ends[:nends])

			switch res {
			case tokenizer.Record:
				var err error
				rows, err = s.emitRecord(&cur, rows)
				if err != nil {
					return rows, err
				}
			case tokenizer.OutputEndsFull:
				s.bufs.GrowEnds(nends)
			default:
				break flush
			}
		}
		s.buf = s.buf[:0]
	}

	s.pending = cur

	return rows, nil
}

// emitRecord materializes the accumulated record and routes it: the first
// record in header mode is captured as headers, blank rows are discarded when
// filtering is enabled, everything else is appended to rows. The accumulator
// is reset for the next record.
func (s *Session) emitRecord(cur *scratch.Accumulator, rows []Row) ([]Row, error) {
	row, err := materializeRow(cur.Record, cur.Ends)
	if err != nil {
		return rows, err
	}

	if s.hasHeaders && !s.headersDone {
		s.captureHeaders(row)
	} else if !s.filterEmpty || !rowIsBlank(row) {
		rows = append(rows, row)
	}
	cur.Reset()

	return rows, nil
}

// materializeRow decodes the accumulated record bytes into owned strings, one
// per field. Field i spans from the previous cumulative end offset to ends[i].
func materializeRow(record []byte, ends []int) (Row, error) {
	row := make(Row, 0, len(ends))
	start := 0

	for i, end := range ends {
		field := record[start:end]
		if !utf8.Valid(field) {
			return nil, fmt.Errorf("%w: field %d", errs.ErrInvalidUTF8, i)
		}
		row = append(row, string(field))
		start = end
	}

	return row, nil
}

// rowIsBlank reports whether every field is empty after trimming whitespace,
// i.e. the record carries no semantic content.
func rowIsBlank(row Row) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}
