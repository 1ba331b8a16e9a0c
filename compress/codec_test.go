package compress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datapos-io/csvstream/errs"
	"github.com/datapos-io/csvstream/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionGzip,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat("col1,col2,col3\nval1,val2,val3\n", 500))

	for _, ctype := range allTypes {
		t.Run(ctype.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewWriter(ctype, &buf)
			require.NoError(t, err)
			n, err := w.Write(payload)
			require.NoError(t, err)
			require.Equal(t, len(payload), n)
			require.NoError(t, w.Close())

			r, err := NewReader(ctype, &buf)
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestRoundTrip_Empty(t *testing.T) {
	for _, ctype := range allTypes {
		t.Run(ctype.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewWriter(ctype, &buf)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := NewReader(ctype, &buf)
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}

func TestForType_Unknown(t *testing.T) {
	_, err := ForType(format.CompressionType(0xEE))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)

	_, err = NewReader(format.CompressionType(0xEE), strings.NewReader(""))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)

	_, err = NewWriter(format.CompressionType(0xEE), &bytes.Buffer{})
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestNewReader_NilReader(t *testing.T) {
	for _, ctype := range allTypes {
		t.Run(ctype.String(), func(t *testing.T) {
			_, err := NewReader(ctype, nil)
			require.ErrorIs(t, err, errs.ErrNilReader)
		})
	}
}

func TestNewWriter_NilWriter(t *testing.T) {
	for _, ctype := range allTypes {
		t.Run(ctype.String(), func(t *testing.T) {
			_, err := NewWriter(ctype, nil)
			require.ErrorIs(t, err, errs.ErrNilReader)
		})
	}
}

func TestGzip_RejectsGarbage(t *testing.T) {
	_, err := NewReader(format.CompressionGzip, strings.NewReader("not a gzip stream"))
	require.Error(t, err)
}

func TestNoop_PassesThrough(t *testing.T) {
	r, err := NewReader(format.CompressionNone, strings.NewReader("plain,csv\n"))
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "plain,csv\n", string(got))
}
