package session

import (
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// captureHeaders normalizes the first record's fields and caches them for the
// life of the session, along with an xxHash64 index for column lookup. The
// record is consumed; it is never emitted as data.
func (s *Session) captureHeaders(row Row) {
	headers := make([]string, len(row))
	columns := make(map[uint64]int, len(row))

	for i, name := range row {
		normalized := NormalizeHeaderName(name)
		headers[i] = normalized

		// First occurrence wins when normalized names collide.
		id := xxhash.Sum64String(normalized)
		if _, taken := columns[id]; !taken {
			columns[id] = i
		}
	}

	s.headers = headers
	s.columns = columns
	s.headersDone = true
}

// Headers returns the normalized header names captured from the first record,
// in field order. It returns nil before the first record has been classified
// or when header mode is disabled.
func (s *Session) Headers() []string {
	return s.headers
}

// Column resolves a header name, raw or already normalized, to its field
// index. It reports false before headers are captured or for unknown names.
func (s *Session) Column(name string) (int, bool) {
	if s.columns == nil {
		return 0, false
	}

	idx, ok := s.columns[xxhash.Sum64String(NormalizeHeaderName(name))]

	return idx, ok
}

// NormalizeHeaderName trims leading and trailing whitespace, lowercases the
// name, and replaces every rune that is not alphanumeric or underscore with
// an underscore. The transformation is one-to-one per rune and idempotent.
func NormalizeHeaderName(name string) string {
	trimmed := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	return b.String()
}
