// Package lazymap implements an insertion-ordered map whose values may be
// deferred. A deferred value is computed by its function the first time the
// key is read and the result is kept; the function is never called again.
//
//	m := lazymap.Of(
//		lazymap.Entry[string, int]{Key: "cheap", Value: 1},
//		lazymap.Entry[string, int]{Key: "costly", Func: computeCostly},
//	)
//	v, err := m.Get("costly") // computeCostly runs here, once
//
// Listing keys, checking membership and deleting never compute anything.
// Values, Items and All compute every value they reach.
//
// A Map is not safe for concurrent use.
package lazymap
