package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// readAll drives a Reader over the whole input the way the session does:
// accumulating partial progress, growing buffers on demand, and finishing
// with end-of-data bookkeeping.
func readAll(t *testing.T, delimiter byte, input string, dstSize, endsSize int) [][]string {
	t.Helper()

	r := NewReader(delimiter)
	dst := make([]byte, dstSize)
	ends := make([]int, endsSize)

	var (
		rows    [][]string
		record  []byte
		recEnds []int
	)

	materialize := func() {
		row := make([]string, 0, len(recEnds))
		start := 0
		for _, end := range recEnds {
			row = append(row, string(record[start:end]))
			start = end
		}
		rows = append(rows, row)
		record = record[:0]
		recEnds = recEnds[:0]
	}

	offset := 0
	for offset < len(input) {
		res, nin, nout, nends := r.ReadRecord([]byte(input[offset:]), dst, ends)
		offset += nin
		record = append(record, dst[:nout]...)
		recEnds = append(recEnds, ends[:nends]...)

		switch res {
		case Record:
			materialize()
		case InputEmpty, End:
			offset = len(input)
		case OutputFull:
			dst = make([]byte, 2*max(len(dst), nout+8))
		case OutputEndsFull:
			ends = make([]int, 2*max(len(ends), nends+4))
		}
	}

	for {
		res, _, nout, nends := r.ReadRecord(nil, dst, ends)
		record = append(record, dst[:nout]...)
		recEnds = append(recEnds, ends[:nends]...)
		if res != Record {
			require.Equal(t, End, res)

			break
		}
		materialize()
	}

	return rows
}

func TestReader_SimpleRecords(t *testing.T) {
	rows := readAll(t, ',', "a,b\nc,d\n", 64, 8)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, rows)
}

func TestReader_CustomDelimiter(t *testing.T) {
	rows := readAll(t, ';', "a;b\nc;d\n", 64, 8)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, rows)
}

func TestReader_UnterminatedFinalRecord(t *testing.T) {
	rows := readAll(t, ',', "a,b\nc,d", 64, 8)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, rows)
}

func TestReader_BlankLineIsSingleEmptyField(t *testing.T) {
	rows := readAll(t, ',', "\n", 64, 8)
	require.Equal(t, [][]string{{""}}, rows)
}

func TestReader_EmptyFields(t *testing.T) {
	rows := readAll(t, ',', ",,\n", 64, 8)
	require.Equal(t, [][]string{{"", "", ""}}, rows)
}

func TestReader_QuotedFields(t *testing.T) {
	rows := readAll(t, ',', "\"a,b\",c\n", 64, 8)
	require.Equal(t, [][]string{{"a,b", "c"}}, rows)
}

func TestReader_EscapedQuotes(t *testing.T) {
	rows := readAll(t, ',', "\"he said \"\"hi\"\"\",x\n", 64, 8)
	require.Equal(t, [][]string{{`he said "hi"`, "x"}}, rows)
}

func TestReader_NewlineInsideQuotes(t *testing.T) {
	rows := readAll(t, ',', "\"line1\nline2\",z\n", 64, 8)
	require.Equal(t, [][]string{{"line1\nline2", "z"}}, rows)
}

func TestReader_CRLFTerminators(t *testing.T) {
	rows := readAll(t, ',', "a,b\r\nc,d\r\n", 64, 8)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, rows)
}

func TestReader_LoneCRTerminates(t *testing.T) {
	rows := readAll(t, ',', "a\rb\n", 64, 8)
	require.Equal(t, [][]string{{"a"}, {"b"}}, rows)
}

func TestReader_CRLFSplitAcrossCalls(t *testing.T) {
	r := NewReader(',')
	dst := make([]byte, 64)
	ends := make([]int, 8)

	res, nin, nout, nends := r.ReadRecord([]byte("a\r"), dst, ends)
	require.Equal(t, Record, res)
	require.Equal(t, 2, nin)
	require.Equal(t, 1, nout)
	require.Equal(t, 1, nends)
	require.Equal(t, 1, ends[0])

	// The LF belonging to the CRLF pair arrives in the next call and must
	// be swallowed, not parsed as a blank record.
	res, nin, nout, nends = r.ReadRecord([]byte("\nb\n"), dst, ends)
	require.Equal(t, Record, res)
	require.Equal(t, 3, nin)
	require.Equal(t, 1, nout)
	require.Equal(t, byte('b'), dst[0])
	require.Equal(t, 1, nends)
	require.Equal(t, 1, ends[0])
}

func TestReader_InputEmptyMidField(t *testing.T) {
	r := NewReader(',')
	dst := make([]byte, 64)
	ends := make([]int, 8)

	res, nin, nout, nends := r.ReadRecord([]byte("ab"), dst, ends)
	require.Equal(t, InputEmpty, res)
	require.Equal(t, 2, nin)
	require.Equal(t, 2, nout)
	require.Equal(t, 0, nends)

	// Continuation: offsets are cumulative into the record, not per-call.
	res, nin, nout, nends = r.ReadRecord([]byte(",c\n"), dst, ends)
	require.Equal(t, Record, res)
	require.Equal(t, 3, nin)
	require.Equal(t, 1, nout)
	require.Equal(t, byte('c'), dst[0])
	require.Equal(t, 2, nends)
	require.Equal(t, []int{2, 3}, ends[:2])
}

func TestReader_OutputFullReportsPartialProgress(t *testing.T) {
	r := NewReader(',')
	dst := make([]byte, 4)
	ends := make([]int, 8)

	res, nin, nout, nends := r.ReadRecord([]byte("abcdefgh,ij\n"), dst, ends)
	require.Equal(t, OutputFull, res)
	require.Equal(t, 4, nin)
	require.Equal(t, 4, nout)
	require.Equal(t, "abcd", string(dst[:nout]))
	require.Equal(t, 0, nends)

	// Retry with a larger buffer picks up exactly where the last call
	// stopped; the end offset of the first field is cumulative.
	dst = make([]byte, 16)
	res, nin, nout, nends = r.ReadRecord([]byte("efgh,ij\n"), dst, ends)
	require.Equal(t, Record, res)
	require.Equal(t, 8, nin)
	require.Equal(t, 6, nout)
	require.Equal(t, "efghij", string(dst[:nout]))
	require.Equal(t, 2, nends)
	require.Equal(t, []int{8, 10}, ends[:2])
}

func TestReader_OutputEndsFullReportsPartialProgress(t *testing.T) {
	r := NewReader(',')
	dst := make([]byte, 64)
	ends := make([]int, 1)

	res, nin, nout, nends := r.ReadRecord([]byte("a,b,c\n"), dst, ends)
	require.Equal(t, OutputEndsFull, res)
	require.Equal(t, 3, nin)
	require.Equal(t, 2, nout)
	require.Equal(t, 1, nends)
	require.Equal(t, 1, ends[0])

	ends = make([]int, 4)
	res, nin, _, nends = r.ReadRecord([]byte(",c\n"), dst, ends)
	require.Equal(t, Record, res)
	require.Equal(t, 3, nin)
	require.Equal(t, 2, nends)
	require.Equal(t, []int{2, 3}, ends[:2])
}

func TestReader_EndOnEmptyInput(t *testing.T) {
	r := NewReader(',')

	res, nin, nout, nends := r.ReadRecord(nil, make([]byte, 8), make([]int, 2))
	require.Equal(t, End, res)
	require.Zero(t, nin)
	require.Zero(t, nout)
	require.Zero(t, nends)
}

func TestReader_EmptyInputCompletesPendingRecord(t *testing.T) {
	r := NewReader(',')
	dst := make([]byte, 64)
	ends := make([]int, 8)

	res, _, _, _ := r.ReadRecord([]byte("x,y"), dst, ends)
	require.Equal(t, InputEmpty, res)

	res, _, nout, nends := r.ReadRecord(nil, dst, ends)
	require.Equal(t, Record, res)
	require.Zero(t, nout)
	require.Equal(t, 1, nends)
	require.Equal(t, 2, ends[0]) // "xy" accumulated, final field ends at 2

	res, _, _, _ = r.ReadRecord(nil, dst, ends)
	require.Equal(t, End, res)
}

func TestReader_EmptyInputAfterTrailingDelimiter(t *testing.T) {
	r := NewReader(',')
	dst := make([]byte, 64)
	ends := make([]int, 8)

	res, _, _, nends := r.ReadRecord([]byte("a,"), dst, ends)
	require.Equal(t, InputEmpty, res)
	require.Equal(t, 1, nends)

	// "a," ends mid-record with an empty trailing field pending.
	res, _, _, nends = r.ReadRecord(nil, dst, ends)
	require.Equal(t, Record, res)
	require.Equal(t, 1, nends)
	require.Equal(t, 1, ends[0])
}

func TestReader_SingleByteChunks(t *testing.T) {
	input := "a,b,c\n\"x,\ny\",z\r\nlast,row\n"
	want := readAll(t, ',', input, 64, 8)

	r := NewReader(',')
	dst := make([]byte, 64)
	ends := make([]int, 8)

	var (
		rows    [][]string
		record  []byte
		recEnds []int
	)
	for i := 0; i < len(input); i++ {
		res, nin, nout, nends := r.ReadRecord([]byte{input[i]}, dst, ends)
		record = append(record, dst[:nout]...)
		recEnds = append(recEnds, ends[:nends]...)
		require.Contains(t, []Result{Record, InputEmpty}, res)
		require.Equal(t, 1, nin)

		if res == Record {
			row := make([]string, 0, len(recEnds))
			start := 0
			for _, end := range recEnds {
				row = append(row, string(record[start:end]))
				start = end
			}
			rows = append(rows, row)
			record = record[:0]
			recEnds = recEnds[:0]
		}
	}

	require.Equal(t, want, rows)
}

func TestReader_WideRecordThroughGrowth(t *testing.T) {
	long := strings.Repeat("x", 5000)
	rows := readAll(t, ',', long+",y\n", 16, 2)
	require.Len(t, rows, 1)
	require.Equal(t, []string{long, "y"}, rows[0])
}

func TestReader_ManyFieldsThroughGrowth(t *testing.T) {
	fields := make([]string, 100)
	for i := range fields {
		fields[i] = "f"
	}
	rows := readAll(t, ',', strings.Join(fields, ",")+"\n", 8, 2)
	require.Len(t, rows, 1)
	require.Equal(t, fields, rows[0])
}

func TestResult_String(t *testing.T) {
	require.Equal(t, "Record", Record.String())
	require.Equal(t, "InputEmpty", InputEmpty.String())
	require.Equal(t, "OutputFull", OutputFull.String())
	require.Equal(t, "OutputEndsFull", OutputEndsFull.String())
	require.Equal(t, "End", End.String())
	require.Equal(t, "Unknown", Result(42).String())
}
