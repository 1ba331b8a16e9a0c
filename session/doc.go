// Package session implements the incremental CSV parsing session.
//
// A Session consumes arbitrarily sized byte fragments of a CSV document in
// arrival order, with no alignment to record or field boundaries, and emits
// complete decoded rows as soon as they become available. Only the minimal
// unfinished tail is retained between calls: every input byte is examined at
// most once and already consumed input is never re-parsed.
//
// # Usage
//
//	sess, _ := session.NewSession(',', true)
//	for chunk := range chunks {
//	    rows, err := sess.Push(chunk)
//	    if err != nil {
//	        return err
//	    }
//	    handle(rows)
//	}
//	rows, err := sess.Finalize()
//
// A session is created once per logical CSV document and finalized exactly
// once; after Finalize it rejects further calls. Sessions are not safe for
// concurrent use: the host contract is at most one in-flight Push or
// Finalize at a time, in chunk-arrival order.
//
// When header mode is enabled, the first completed record is captured as
// headers instead of being emitted. Header names are normalized (trimmed,
// lowercased, non-alphanumeric runes replaced with underscores) and can be
// resolved to field indexes in O(1) via Column, which hashes names with
// xxHash64.
package session
