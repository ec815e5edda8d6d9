package lazylist

import "iter"

// Cursor walks a List by position. Each step reuses the materialized element
// at that position or pulls it from the pending sources, so independent
// cursors over one list share the work. A Cursor is itself a Source.
type Cursor[T any] struct {
	list *List[T]
	pos  int
}

// Cursor returns a cursor positioned before the first element.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}

// Next returns the element at the cursor position and advances. A failed pull
// leaves the position unchanged, so calling Next again retries it.
func (c *Cursor[T]) Next() (T, bool, error) {
	var zero T
	if err := c.list.fill(c.pos + 1); err != nil {
		return zero, false, err
	}
	if c.pos >= len(c.list.items) {
		return zero, false, nil
	}
	v := c.list.items[c.pos]
	c.pos++
	return v, true, nil
}

// Pos returns the index of the element the next call to Next will return.
func (c *Cursor[T]) Pos() int { return c.pos }

// Reset moves the cursor back to the first element.
func (c *Cursor[T]) Reset() { c.pos = 0 }

// All iterates over the list, pulling elements as the loop asks for them. A
// source error ends the iteration with a final (zero, err) pair.
func (l *List[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		c := l.Cursor()
		for {
			v, ok, err := c.Next()
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}
