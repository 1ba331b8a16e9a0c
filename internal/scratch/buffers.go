// Package scratch owns the growable working buffers the parsing session hands
// to the tokenizer, and the carry-over accumulator for records split across
// drain passes.
package scratch

const (
	// DefaultRecordSize is the initial scratch capacity for record bytes.
	DefaultRecordSize = 1024
	// DefaultEndsSize is the initial capacity for field-end offsets.
	DefaultEndsSize = 32

	recordSlack = 1024
	endsSlack   = 16
)

// Buffers holds the tokenizer output buffers. Both are full-length slices the
// tokenizer writes into; growth doubles past the bytes already written plus a
// fixed slack, which bounds the number of reallocations on pathological rows.
// Buffers never shrink.
type Buffers struct {
	// Record receives decoded field bytes for the record being assembled.
	Record []byte
	// Ends receives cumulative field-end offsets into the record bytes.
	Ends []int
}

// NewBuffers creates scratch buffers with the given initial sizes. Sizes of
// zero or less fall back to the defaults.
func NewBuffers(recordSize, endsSize int) *Buffers {
	if recordSize <= 0 {
		recordSize = DefaultRecordSize
	}
	if endsSize <= 0 {
		endsSize = DefaultEndsSize
	}

	return &Buffers{
		Record: make([]byte, recordSize),
		Ends:   make([]int, endsSize),
	}
}

// GrowRecord enlarges the record scratch after the tokenizer reported it full
// with written bytes produced so far. Existing content is preserved for the
// retry.
func (b *Buffers) GrowRecord(written int) {
	grown := make([]byte, 2*max(len(b.Record), written+recordSlack))
	copy(grown, b.Record)
	b.Record = grown
}

// GrowEnds enlarges the field-end buffer after the tokenizer reported it full
// with written offsets produced so far.
func (b *Buffers) GrowEnds(written int) {
	grown := make([]int, 2*max(len(b.Ends), written+endsSlack))
	copy(grown, b.Ends)
	b.Ends = grown
}

// Accumulator collects the scratch bytes and cumulative field-end offsets of
// the record currently being assembled. The session threads a non-empty
// accumulator from one drain pass to the next when input ran out mid-record,
// splicing it onto the front of the next pass's output.
type Accumulator struct {
	Record []byte
	Ends   []int
}

// Append adds newly produced scratch bytes and field-end offsets. The offsets
// are cumulative into the accumulated record bytes and are stored as-is.
func (a *Accumulator) Append(record []byte, ends []int) {
	if len(record) > 0 {
		a.Record = append(a.Record, record...)
	}
	if len(ends) > 0 {
		a.Ends = append(a.Ends, ends...)
	}
}

// Reset clears the accumulator for the next record, retaining capacity.
func (a *Accumulator) Reset() {
	a.Record = a.Record[:0]
	a.Ends = a.Ends[:0]
}

// Empty reports whether the accumulator holds no partial record state.
func (a *Accumulator) Empty() bool {
	return len(a.Record) == 0 && len(a.Ends) == 0
}
