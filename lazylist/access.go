package lazylist

import (
	"fmt"
	"math"
	"slices"
)

// Sentinels for absent slice bounds. With a positive step Begin as start
// means the first element and End as stop means past the last; with a
// negative step End as start means the last element and Begin as stop means
// before the first.
const (
	Begin = math.MinInt
	End   = math.MaxInt
)

// Len returns the number of elements. It drains every pending source.
func (l *List[T]) Len() (int, error) {
	if err := l.fill(all); err != nil {
		return 0, err
	}
	return len(l.items), nil
}

// IsEmpty reports whether the list has no elements, pulling at most one.
func (l *List[T]) IsEmpty() (bool, error) {
	if err := l.fill(1); err != nil {
		return false, err
	}
	return len(l.items) == 0, nil
}

// At returns the element at index i. A non-negative index pulls only the first
// i+1 elements; a negative index counts from the end and drains the list.
func (l *List[T]) At(i int) (T, error) {
	idx, err := l.resolve(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.items[idx], nil
}

// Slice returns a copy of the elements in [start, stop). Negative bounds
// count from the end and out of range bounds are clamped.
func (l *List[T]) Slice(start, stop int) ([]T, error) {
	return l.SliceStep(start, stop, 1)
}

// SliceStep is Slice with a step. Non-negative bounds with a positive step
// materialize only up to stop; any other combination drains the list.
func (l *List[T]) SliceStep(start, stop, step int) ([]T, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	if err := l.fill(sliceNeed(start, stop, step)); err != nil {
		return nil, err
	}

	n := len(l.items)
	lo, hi := adjustBounds(start, stop, step, n)
	var count int
	switch {
	case step > 0 && lo < hi:
		count = (hi-lo-1)/step + 1
	case step < 0 && lo > hi:
		if step < -n {
			step = -n
		}
		count = (lo-hi-1)/(-step) + 1
	}
	out := make([]T, count)
	for k := range count {
		out[k] = l.items[lo+k*step]
	}
	return out, nil
}

// sliceNeed returns how many elements must be materialized to resolve a
// slice: up to stop for non-negative bounds and a positive step, all of them
// otherwise.
func sliceNeed(start, stop, step int) int {
	if step < 0 {
		return all
	}
	if start == Begin {
		start = 0
	}
	switch {
	case start < 0 || stop < 0 || stop == End:
		return all
	case start >= stop:
		return 0
	default:
		return stop
	}
}

// adjustBounds clamps slice bounds to a list of length n.
func adjustBounds(start, stop, step, n int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				if step < 0 {
					return -1
				}
				return 0
			}
			return i
		}
		if i >= n {
			if step < 0 {
				return n - 1
			}
			return n
		}
		return i
	}
	return clamp(start), clamp(stop)
}

// Materialize drains every pending source and returns a copy of all elements.
func (l *List[T]) Materialize() ([]T, error) {
	if err := l.fill(all); err != nil {
		return nil, err
	}
	return slices.Clone(l.items), nil
}

// String drains the list and formats it like a slice. If a source fails, the
// elements pulled so far are shown followed by the error.
func (l *List[T]) String() string {
	if err := l.fill(all); err != nil {
		return fmt.Sprintf("%v <error: %v>", l.items, err)
	}
	return fmt.Sprint(l.items)
}

// resolve turns i into a position in the materialized store, pulling as much
// as needed to decide.
func (l *List[T]) resolve(i int) (int, error) {
	if i >= 0 {
		if err := l.fill(i + 1); err != nil {
			return 0, err
		}
		if i >= len(l.items) {
			return 0, &IndexError{Index: i, Len: len(l.items)}
		}
		return i, nil
	}
	if err := l.fill(all); err != nil {
		return 0, err
	}
	idx := len(l.items) + i
	if idx < 0 {
		return 0, &IndexError{Index: i, Len: len(l.items)}
	}
	return idx, nil
}
