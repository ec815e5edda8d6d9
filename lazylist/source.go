package lazylist

import (
	"io"
	"slices"
)

// Source is a one-shot producer of values. Next returns (zero, false, nil)
// once the source is exhausted. A source that also implements io.Closer is
// closed when exhausted or abandoned.
type Source[T any] interface {
	Next() (T, bool, error)
}

// Collection is an eager, fully available collection. Sources implementing it
// are copied when added to a List instead of being streamed.
type Collection[T any] interface {
	Len() int
	At(i int) T
}

// source is one entry of the pending queue.
type source[T any] interface {
	next() (T, bool, error)
	// fork splits the source into two independent sources yielding the same
	// remaining values. The receiver must not be used afterwards.
	fork() (source[T], source[T])
	// reverse returns a source yielding the remaining values backwards. The
	// receiver must not be used afterwards.
	reverse() source[T]
	close() error
}

// snapshot is an immutable copy of an eager collection. The backing array is
// never written, so forks share it.
type snapshot[T any] struct {
	items []T
}

func newSnapshot[T any](values []T) *snapshot[T] {
	return &snapshot[T]{items: slices.Clone(values)}
}

func (s *snapshot[T]) next() (T, bool, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, false, nil
	}
	v := s.items[0]
	s.items = s.items[1:]
	return v, true, nil
}

// take removes and returns up to n values, or all of them when n < 0.
func (s *snapshot[T]) take(n int) []T {
	if n < 0 || n > len(s.items) {
		n = len(s.items)
	}
	out := s.items[:n:n]
	s.items = s.items[n:]
	return out
}

// push appends values without touching the shared backing array.
func (s *snapshot[T]) push(values ...T) {
	s.items = append(slices.Clip(s.items), values...)
}

func (s *snapshot[T]) fork() (source[T], source[T]) {
	return s, &snapshot[T]{items: s.items}
}

func (s *snapshot[T]) reverse() source[T] {
	r := slices.Clone(s.items)
	slices.Reverse(r)
	return &snapshot[T]{items: r}
}

func (s *snapshot[T]) close() error { return nil }

// stream drains a caller-provided Source.
type stream[T any] struct {
	src Source[T]
}

func (s *stream[T]) next() (T, bool, error) {
	return s.src.Next()
}

func (s *stream[T]) fork() (source[T], source[T]) {
	return newTee(s.src)
}

func (s *stream[T]) reverse() source[T] {
	return &reversedSource[T]{inner: s}
}

func (s *stream[T]) close() error {
	return closeSource(s.src)
}

// reversedSource yields the values of inner backwards. The first pull drains
// and buffers inner completely; no other source is touched.
type reversedSource[T any] struct {
	inner  source[T]
	buf    []T
	loaded bool
}

func (r *reversedSource[T]) load() error {
	for {
		v, ok, err := r.inner.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		r.buf = append(r.buf, v)
	}
	r.loaded = true
	return r.inner.close()
}

func (r *reversedSource[T]) next() (T, bool, error) {
	var zero T
	if !r.loaded {
		if err := r.load(); err != nil {
			return zero, false, err
		}
	}
	if len(r.buf) == 0 {
		return zero, false, nil
	}
	last := len(r.buf) - 1
	v := r.buf[last]
	r.buf = r.buf[:last]
	return v, true, nil
}

func (r *reversedSource[T]) fork() (source[T], source[T]) {
	if r.loaded {
		return r, &reversedSource[T]{buf: r.buf, loaded: true}
	}
	mine, theirs := r.inner.fork()
	r.inner = mine
	return r, &reversedSource[T]{inner: theirs, buf: slices.Clone(r.buf)}
}

func (r *reversedSource[T]) reverse() source[T] {
	if r.loaded {
		return &snapshot[T]{items: slices.Clip(r.buf)}
	}
	if len(r.buf) == 0 {
		return r.inner
	}
	return &reversedSource[T]{inner: r}
}

func (r *reversedSource[T]) close() error {
	if r.loaded {
		return nil
	}
	return r.inner.close()
}

func closeSource(src any) error {
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
