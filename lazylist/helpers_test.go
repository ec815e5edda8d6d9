package lazylist_test

import (
	"github.com/charmingruby/lazyseq/seq"
)

// counted wraps it so every value pulled from the producer increments *pulls.
func counted[T any](it seq.Iterator[T], pulls *int) seq.Iterator[T] {
	return seq.Counting(it, func(T) { *pulls++ })
}

// naturals yields 0, 1, 2, ... forever.
func naturals(pulls *int) seq.Iterator[int] {
	return counted(seq.Generate(func(i int) int { return i }), pulls)
}

// closingSource records Close calls.
type closingSource struct {
	seq.Iterator[int]
	closed int
}

func (c *closingSource) Close() error {
	c.closed++
	return nil
}

// ring is an eager collection; it must be copied, never streamed.
type ring []int

func (r ring) Len() int     { return len(r) }
func (r ring) At(i int) int { return r[i] }
func (r ring) Next() (int, bool, error) {
	panic("collections are copied, never pulled")
}
