package lazylist

import "slices"

// Append adds values at the end without pulling anything.
func (l *List[T]) Append(values ...T) *List[T] {
	if len(values) == 0 {
		return l
	}
	if len(l.pending) == 0 {
		l.items = append(l.items, values...)
		return l
	}
	if s, ok := l.pending[len(l.pending)-1].(*snapshot[T]); ok {
		s.push(values...)
		return l
	}
	l.push(newSnapshot(values))
	return l
}

// Insert inserts values before index i. An index past the end appends and a
// negative index counts from the end, clamped to the start. A non-negative i pulls only the first i elements.
func (l *List[T]) Insert(i int, values ...T) error {
	n := i
	if i < 0 {
		n = all
	}
	if err := l.fill(n); err != nil {
		return err
	}
	pos := min(i, len(l.items))
	if i < 0 {
		pos = max(len(l.items)+i, 0)
	}
	l.items = slices.Insert(l.items, pos, values...)
	return nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) error {
	idx, err := l.resolve(i)
	if err != nil {
		return err
	}
	l.items[idx] = v
	return nil
}

// Delete removes the element at index i.
func (l *List[T]) Delete(i int) error {
	idx, err := l.resolve(i)
	if err != nil {
		return err
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	return nil
}

// Pop removes and returns the element at index i. Pop(-1) removes the last
// element and drains the list.
func (l *List[T]) Pop(i int) (T, error) {
	idx, err := l.resolve(i)
	if err != nil {
		var zero T
		return zero, err
	}
	v := l.items[idx]
	l.items = slices.Delete(l.items, idx, idx+1)
	return v, nil
}

// DeleteRange removes the elements in [start, stop), with the bounds of Slice.
// Non-negative bounds pull only up to stop.
func (l *List[T]) DeleteRange(start, stop int) error {
	return l.Replace(start, stop)
}

// Replace replaces the elements in [start, stop) with values, with the bounds
// of Slice. An empty range inserts values at start. Non-negative bounds pull
// only up to stop.
func (l *List[T]) Replace(start, stop int, values ...T) error {
	need := sliceNeed(start, stop, 1)
	if need == 0 && start > 0 {
		need = start
	}
	if err := l.fill(need); err != nil {
		return err
	}
	lo, hi := adjustBounds(start, stop, 1, len(l.items))
	l.items = slices.Replace(l.items, lo, max(lo, hi), values...)
	return nil
}

// RemoveFunc removes the first element satisfying pred and reports whether
// one was found. Elements past the match are not pulled.
func (l *List[T]) RemoveFunc(pred func(T) bool) (bool, error) {
	idx, err := l.IndexFunc(pred)
	if err != nil || idx < 0 {
		return false, err
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	return true, nil
}

// Remove removes the first occurrence of v.
func Remove[T comparable](l *List[T], v T) (bool, error) {
	return l.RemoveFunc(func(x T) bool { return x == v })
}
