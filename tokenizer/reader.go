// Package tokenizer implements the incremental CSV record tokenizer that the
// parsing session drives.
//
// The tokenizer turns a span of raw input bytes into length-delimited fields.
// It owns no buffers: each ReadRecord call writes decoded field bytes into a
// caller-supplied scratch buffer and field-end offsets into a caller-supplied
// offset buffer, and reports one of five outcomes telling the caller how to
// proceed. All parser state needed to resume mid-field or mid-record lives
// inside the Reader, so input can be fed in fragments of any size with no
// alignment to field or record boundaries.
//
// The tokenizer never returns an error. Structural conditions such as an
// exhausted input span or an undersized output buffer are ordinary outcomes
// the caller is expected to act on.
package tokenizer

// Result is the outcome of a single ReadRecord call.
type Result uint8

const (
	// Record means a complete record was parsed. The caller should
	// materialize the accumulated fields before the next call.
	Record Result = iota

	// InputEmpty means the input span was consumed without completing a
	// record. More input is required.
	InputEmpty

	// OutputFull means the scratch buffer has no room for the next field
	// byte. The caller must grow it and retry; no input byte is lost.
	OutputFull

	// OutputEndsFull means the field-end buffer has no room for the next
	// offset. Same retry contract as OutputFull.
	OutputEndsFull

	// End means an empty input span signalled logical end-of-data and no
	// record remains in progress.
	End
)

func (r Result) String() string {
	switch r {
	case Record:
		return "Record"
	case InputEmpty:
		return "InputEmpty"
	case OutputFull:
		return "OutputFull"
	case OutputEndsFull:
		return "OutputEndsFull"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}

type state uint8

const (
	stateStartField   state = iota // at the start of a record or field
	stateInField                   // inside an unquoted field
	stateInQuoted                  // inside a quoted field
	stateQuotedQuote               // saw a quote inside a quoted field
	stateSkipLinefeed              // a CR terminated the last record; swallow one LF
)

// Quote is the quote character recognized by the tokenizer. Doubled quotes
// inside a quoted field decode to a single literal quote.
const Quote = '"'

// Reader is the stateful record tokenizer. A single Reader parses one logical
// CSV document; its internal state carries partially parsed fields across
// ReadRecord calls. Not safe for concurrent use.
type Reader struct {
	delimiter byte
	st        state

	// recordLen counts the field bytes emitted for the record currently
	// being parsed, across calls. Field-end offsets are reported relative
	// to the start of the record, so a caller accumulating scratch bytes
	// can append the offsets as-is.
	recordLen int

	// recordEnds counts the field ends emitted for the current record.
	// Together with recordLen and st it tells an end-of-data call whether
	// a record is still in progress.
	recordEnds int
}

// NewReader creates a Reader that splits fields on the given delimiter byte.
// The delimiter is not validated; a pathological value such as '\n' is the
// caller's responsibility.
func NewReader(delimiter byte) *Reader {
	return &Reader{delimiter: delimiter}
}

// ReadRecord parses input for the next record, writing decoded field bytes to
// dst and cumulative field-end offsets to ends.
//
// It returns the outcome plus the number of input bytes consumed, scratch
// bytes written, and field-end offsets written by this call. Consumed input
// must not be passed in again; on OutputFull or OutputEndsFull the caller
// copies out the reported partial progress, grows the relevant buffer, and
// calls again with the unconsumed remainder.
//
// An empty input span signals logical end-of-data. If a record is still in
// progress its last field is completed and reported as a Record; otherwise
// the call reports End.
func (r *Reader) ReadRecord(input, dst []byte, ends []int) (Result, int, int, int) {
	if len(input) == 0 {
		return r.readEnd(ends)
	}

	var nin, nout, nends int

	if r.st == stateSkipLinefeed {
		if input[0] == '\n' {
			nin++
		}
		r.st = stateStartField
	}

	for nin < len(input) {
		b := input[nin]

		switch r.st {
		case stateStartField:
			switch b {
			case Quote:
				nin++
				r.st = stateInQuoted
			case r.delimiter:
				if nends >= len(ends) {
					return OutputEndsFull, nin, nout, nends
				}
				nends = r.endField(ends, nends)
				nin++
			case '\n', '\r':
				if nends >= len(ends) {
					return OutputEndsFull, nin, nout, nends
				}
				nends = r.endField(ends, nends)
				nin++

				return r.endRecord(b, nin, nout, nends)
			default:
				if nout >= len(dst) {
					return OutputFull, nin, nout, nends
				}
				dst[nout] = b
				nout++
				nin++
				r.recordLen++
				r.st = stateInField
			}

		case stateInField:
			switch b {
			case r.delimiter:
				if nends >= len(ends) {
					return OutputEndsFull, nin, nout, nends
				}
				nends = r.endField(ends, nends)
				nin++
				r.st = stateStartField
			case '\n', '\r':
				if nends >= len(ends) {
					return OutputEndsFull, nin, nout, nends
				}
				nends = r.endField(ends, nends)
				nin++

				return r.endRecord(b, nin, nout, nends)
			default:
				if nout >= len(dst) {
					return OutputFull, nin, nout, nends
				}
				dst[nout] = b
				nout++
				nin++
				r.recordLen++
			}

		case stateInQuoted:
			if b == Quote {
				nin++
				r.st = stateQuotedQuote

				continue
			}
			// Delimiters and line terminators are literal inside quotes.
			if nout >= len(dst) {
				return OutputFull, nin, nout, nends
			}
			dst[nout] = b
			nout++
			nin++
			r.recordLen++

		case stateQuotedQuote:
			switch b {
			case Quote:
				// Doubled quote decodes to one literal quote.
				if nout >= len(dst) {
					return OutputFull, nin, nout, nends
				}
				dst[nout] = Quote
				nout++
				nin++
				r.recordLen++
				r.st = stateInQuoted
			case r.delimiter:
				if nends >= len(ends) {
					return OutputEndsFull, nin, nout, nends
				}
				nends = r.endField(ends, nends)
				nin++
				r.st = stateStartField
			case '\n', '\r':
				if nends >= len(ends) {
					return OutputEndsFull, nin, nout, nends
				}
				nends = r.endField(ends, nends)
				nin++

				return r.endRecord(b, nin, nout, nends)
			default:
				// Lenient: bytes after a closing quote join the field.
				if nout >= len(dst) {
					return OutputFull, nin, nout, nends
				}
				dst[nout] = b
				nout++
				nin++
				r.recordLen++
				r.st = stateInField
			}
		}
	}

	return InputEmpty, nin, nout, nends
}

// readEnd handles an empty input span. A record still in progress, such as an
// unterminated final line, has its last field completed and is reported as a
// Record so finalization can materialize it.
func (r *Reader) readEnd(ends []int) (Result, int, int, int) {
	if r.st == stateSkipLinefeed {
		r.st = stateStartField
	}
	if r.st == stateStartField && r.recordLen == 0 && r.recordEnds == 0 {
		return End, 0, 0, 0
	}

	if len(ends) == 0 {
		return OutputEndsFull, 0, 0, 0
	}
	nends := r.endField(ends, 0)
	r.recordLen = 0
	r.recordEnds = 0
	r.st = stateStartField

	return Record, 0, 0, nends
}

// endField records the cumulative end offset of the current field. The caller
// has already checked capacity.
func (r *Reader) endField(ends []int, nends int) int {
	ends[nends] = r.recordLen
	r.recordEnds++

	return nends + 1
}

// endRecord resets per-record state and reports a completed record.
// A CR terminator leaves the reader primed to swallow a following LF.
func (r *Reader) endRecord(terminator byte, nin, nout, nends int) (Result, int, int, int) {
	r.recordLen = 0
	r.recordEnds = 0
	if terminator == '\r' {
		r.st = stateSkipLinefeed
	} else {
		r.st = stateStartField
	}

	return Record, nin, nout, nends
}
