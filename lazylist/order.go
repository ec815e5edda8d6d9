package lazylist

import (
	"cmp"
	"slices"
)

// SortFunc drains the list and sorts it in place. No pending source remains
// afterwards.
func (l *List[T]) SortFunc(compare func(a, b T) int) error {
	if err := l.fill(all); err != nil {
		return err
	}
	slices.SortFunc(l.items, compare)
	return nil
}

// SortStableFunc is SortFunc keeping equal elements in their original order.
func (l *List[T]) SortStableFunc(compare func(a, b T) int) error {
	if err := l.fill(all); err != nil {
		return err
	}
	slices.SortStableFunc(l.items, compare)
	return nil
}

// Sort sorts a list of ordered elements in ascending order.
func Sort[T cmp.Ordered](l *List[T]) error {
	return l.SortFunc(cmp.Compare[T])
}

// Reverse reverses the list in place without pulling from any source. The
// pending sources are queued in reverse order, each one reversed, followed by
// the reversed materialized prefix. A destructive source is drained and
// buffered only when the reversed list first reads from it.
func (l *List[T]) Reverse() *List[T] {
	if len(l.pending) == 0 {
		slices.Reverse(l.items)
		return l
	}
	out := make([]source[T], 0, len(l.pending)+1)
	for i := len(l.pending) - 1; i >= 0; i-- {
		out = append(out, l.pending[i].reverse())
	}
	if len(l.items) > 0 {
		prefix := l.items
		slices.Reverse(prefix)
		out = append(out, &snapshot[T]{items: prefix})
	}
	l.log.Debug().
		Int("materialized", len(l.items)).
		Int("pending", len(l.pending)).
		Msg("reversed")
	l.items = nil
	l.pending = out
	return l
}

// Reversed returns a reversed copy and leaves l unchanged.
func (l *List[T]) Reversed() *List[T] {
	return l.Clone().Reverse()
}
