// Package seq offers pull-based, fallible iterators. An Iterator is a
// one-shot stream: every value it yields is gone once pulled, which makes it
// the natural destructive source for lazylist.
package seq

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Iterator is a lazy, pull-based iterator. The zero value is an exhausted
// iterator.
type Iterator[T any] struct {
	next func() (T, bool, error)
	stop func()
}

// Next yields the next value. When ok is false and err is nil, iteration is
// complete. A non-nil error is returned as produced by the underlying source.
func (it Iterator[T]) Next() (T, bool, error) {
	if it.next == nil {
		var zero T
		return zero, false, nil
	}
	return it.next()
}

// Close releases resources held by the iterator. It is safe to call more than
// once.
func (it Iterator[T]) Close() error {
	if it.stop != nil {
		it.stop()
	}
	return nil
}

// FromFunc wraps a pull function into an Iterator.
func FromFunc[T any](fn func() (T, bool, error)) Iterator[T] {
	return Iterator[T]{next: fn}
}

// FromSlice creates an iterator over the provided slice without copying.
// Writes to the slice before a position is pulled are visible.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool, error) {
			if idx >= len(values) {
				var zero T
				return zero, false, nil
			}
			v := values[idx]
			idx++
			return v, true, nil
		},
	}
}

// FromSeq adapts a range-over-func sequence. The sequence runs as a coroutine
// that is stopped once exhausted or when Close is called.
func FromSeq[T any](s iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(s)
	return Iterator[T]{
		next: func() (T, bool, error) {
			v, ok := next()
			if !ok {
				stop()
			}
			return v, ok, nil
		},
		stop: stop,
	}
}

// Lines yields the lines of r without their "\n" or "\r\n" terminators,
// reading only as far as the values pulled. Lines have no length limit. A read
// error is returned as is; the part of the line read before it is kept and the
// next pull resumes reading.
func Lines(r io.Reader) Iterator[string] {
	br := bufio.NewReader(r)
	var partial strings.Builder
	done := false
	return Iterator[string]{
		next: func() (string, bool, error) {
			if done {
				return "", false, nil
			}
			chunk, err := br.ReadString('\n')
			partial.WriteString(chunk)
			switch {
			case err == io.EOF:
				done = true
				if partial.Len() == 0 {
					return "", false, nil
				}
			case err != nil:
				return "", false, err
			}
			line := partial.String()
			partial.Reset()
			line = strings.TrimSuffix(line, "\n")
			return strings.TrimSuffix(line, "\r"), true, nil
		},
	}
}

// Fail returns an iterator that reports err on every pull.
func Fail[T any](err error) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool, error) {
			var zero T
			return zero, false, err
		},
	}
}

// Range yields start, start+1, ..., end-1.
func Range(start, end int) Iterator[int] {
	cur := start
	return Iterator[int]{
		next: func() (int, bool, error) {
			if cur >= end {
				return 0, false, nil
			}
			v := cur
			cur++
			return v, true, nil
		},
	}
}

// Repeat yields value forever.
func Repeat[T any](value T) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool, error) {
			return value, true, nil
		},
	}
}

// Iterate yields seed, fn(seed), fn(fn(seed)), ... forever.
func Iterate[T any](seed T, fn func(T) T) Iterator[T] {
	cur := seed
	started := false
	return Iterator[T]{
		next: func() (T, bool, error) {
			if started {
				cur = fn(cur)
			}
			started = true
			return cur, true, nil
		},
	}
}

// Generate yields fn(0), fn(1), ... forever. fn is only called for values
// actually pulled.
func Generate[T any](fn func(i int) T) Iterator[T] {
	i := 0
	return Iterator[T]{
		next: func() (T, bool, error) {
			v := fn(i)
			i++
			return v, true, nil
		},
	}
}

// MapIter lazily transforms iterator values.
func MapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() (B, bool, error) {
			v, ok, err := it.Next()
			if err != nil || !ok {
				var zero B
				return zero, false, err
			}
			return fn(v), true, nil
		},
		stop: it.stop,
	}
}

// FilterIter keeps values satisfying predicate.
func FilterIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool, error) {
			for {
				v, ok, err := it.Next()
				if err != nil || !ok {
					return v, false, err
				}
				if predicate(v) {
					return v, true, nil
				}
			}
		},
		stop: it.stop,
	}
}

// Take returns an iterator that yields at most n elements. The underlying
// iterator is never pulled past the n-th element.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return Iterator[T]{stop: it.stop}
	}
	count := 0
	return Iterator[T]{
		next: func() (T, bool, error) {
			if count >= n {
				var zero T
				return zero, false, nil
			}
			v, ok, err := it.Next()
			if err != nil || !ok {
				return v, false, err
			}
			count++
			return v, true, nil
		},
		stop: it.stop,
	}
}

// Drop skips the first n elements.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return it
	}
	skipped := 0
	return Iterator[T]{
		next: func() (T, bool, error) {
			for skipped < n {
				v, ok, err := it.Next()
				if err != nil || !ok {
					return v, false, err
				}
				skipped++
			}
			return it.Next()
		},
		stop: it.stop,
	}
}

// TakeWhile yields values until predicate first fails.
func TakeWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	done := false
	return Iterator[T]{
		next: func() (T, bool, error) {
			var zero T
			if done {
				return zero, false, nil
			}
			v, ok, err := it.Next()
			if err != nil || !ok {
				return zero, false, err
			}
			if !predicate(v) {
				done = true
				return zero, false, nil
			}
			return v, true, nil
		},
		stop: it.stop,
	}
}

// DropWhile skips values while predicate holds, then yields the rest.
func DropWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	dropping := true
	return Iterator[T]{
		next: func() (T, bool, error) {
			for dropping {
				v, ok, err := it.Next()
				if err != nil || !ok {
					return v, false, err
				}
				if !predicate(v) {
					dropping = false
					return v, true, nil
				}
			}
			return it.Next()
		},
		stop: it.stop,
	}
}

// Counting reports every value pulled through it to fn. Useful to observe how
// far a consumer actually read.
func Counting[T any](it Iterator[T], fn func(T)) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool, error) {
			v, ok, err := it.Next()
			if ok && err == nil {
				fn(v)
			}
			return v, ok, err
		},
		stop: it.stop,
	}
}

// ToSlice exhausts the iterator and collects its values. On error the values
// collected so far are returned with it.
func ToSlice[T any](it Iterator[T]) ([]T, error) {
	var result []T
	for {
		v, ok, err := it.Next()
		if err != nil {
			return result, err
		}
		if !ok {
			break
		}
		result = append(result, v)
	}
	if result == nil {
		return []T{}, nil
	}
	return result, nil
}
