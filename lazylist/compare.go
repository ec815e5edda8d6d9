package lazylist

import (
	"cmp"
	"reflect"
)

// EqualFunc compares two lists element by element, pulling from both in
// lockstep. It stops at the first mismatch or as soon as one list ends, so
// neither list is drained further than needed.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) (bool, error) {
	ca, cb := a.Cursor(), b.Cursor()
	for {
		x, okA, err := ca.Next()
		if err != nil {
			return false, err
		}
		y, okB, err := cb.Next()
		if err != nil {
			return false, err
		}
		if !okA || !okB {
			return okA == okB, nil
		}
		if !eq(x, y) {
			return false, nil
		}
	}
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) (bool, error) {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualSliceFunc compares a list to a slice, pulling at most len(values)+1
// elements from the list.
func EqualSliceFunc[T, U any](l *List[T], values []U, eq func(T, U) bool) (bool, error) {
	c := l.Cursor()
	for _, y := range values {
		x, ok, err := c.Next()
		if err != nil {
			return false, err
		}
		if !ok || !eq(x, y) {
			return false, nil
		}
	}
	_, more, err := c.Next()
	if err != nil {
		return false, err
	}
	return !more, nil
}

// EqualSlice reports whether l holds exactly values.
func EqualSlice[T comparable](l *List[T], values []T) (bool, error) {
	return EqualSliceFunc(l, values, func(x, y T) bool { return x == y })
}

// Equals compares l to another list-like value: a *List[T] or a []T. Elements
// are compared with reflect.DeepEqual. Any other value, arrays included,
// is never equal: a list has no fixed arity.
func (l *List[T]) Equals(other any) (bool, error) {
	switch o := other.(type) {
	case *List[T]:
		if o == nil {
			return false, nil
		}
		return EqualFunc(l, o, deepEqual[T])
	case []T:
		return EqualSliceFunc(l, o, deepEqual[T])
	default:
		return false, nil
	}
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// CompareFunc compares two lists lexicographically, pulling in lockstep. A
// list that is a strict prefix of the other is the smaller one.
func CompareFunc[T, U any](a *List[T], b *List[U], compare func(T, U) int) (int, error) {
	ca, cb := a.Cursor(), b.Cursor()
	for {
		x, okA, err := ca.Next()
		if err != nil {
			return 0, err
		}
		y, okB, err := cb.Next()
		if err != nil {
			return 0, err
		}
		switch {
		case !okA && !okB:
			return 0, nil
		case !okA:
			return -1, nil
		case !okB:
			return 1, nil
		}
		if c := compare(x, y); c != 0 {
			return c, nil
		}
	}
}

// Compare is CompareFunc for ordered elements.
func Compare[T cmp.Ordered](a, b *List[T]) (int, error) {
	return CompareFunc(a, b, cmp.Compare[T])
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
// Elements past the match are not pulled.
func (l *List[T]) IndexFunc(pred func(T) bool) (int, error) {
	return l.IndexFuncRange(0, End, pred)
}

// IndexFuncRange is IndexFunc restricted to [start, stop), with the bounds of
// Slice. The returned index counts from the start of the list. With
// non-negative bounds elements before start are pulled but not tested and
// nothing past the match is pulled; a negative bound drains the list.
func (l *List[T]) IndexFuncRange(start, stop int, pred func(T) bool) (int, error) {
	if start == Begin {
		start = 0
	}
	if start < 0 || stop < 0 {
		if err := l.fill(all); err != nil {
			return -1, err
		}
		start, stop = adjustBounds(start, stop, 1, len(l.items))
	}
	c := &Cursor[T]{list: l, pos: start}
	for c.pos < stop {
		v, ok, err := c.Next()
		if err != nil {
			return -1, err
		}
		if !ok {
			return -1, nil
		}
		if pred(v) {
			return c.pos - 1, nil
		}
	}
	return -1, nil
}

// Index returns the index of the first occurrence of v, or -1.
func Index[T comparable](l *List[T], v T) (int, error) {
	return l.IndexFunc(func(x T) bool { return x == v })
}

// IndexRange returns the index of the first occurrence of v in
// [start, stop), or -1.
func IndexRange[T comparable](l *List[T], v T, start, stop int) (int, error) {
	return l.IndexFuncRange(start, stop, func(x T) bool { return x == v })
}

// ContainsFunc reports whether some element satisfies pred.
func (l *List[T]) ContainsFunc(pred func(T) bool) (bool, error) {
	i, err := l.IndexFunc(pred)
	return i >= 0, err
}

// Contains reports whether v is in the list.
func Contains[T comparable](l *List[T], v T) (bool, error) {
	return l.ContainsFunc(func(x T) bool { return x == v })
}

// CountFunc returns how many elements satisfy pred. It drains the list.
func (l *List[T]) CountFunc(pred func(T) bool) (int, error) {
	if err := l.fill(all); err != nil {
		return 0, err
	}
	n := 0
	for _, v := range l.items {
		if pred(v) {
			n++
		}
	}
	return n, nil
}

// Count returns how many elements equal v.
func Count[T comparable](l *List[T], v T) (int, error) {
	return l.CountFunc(func(x T) bool { return x == v })
}
