package lazylist

import (
	"errors"
	"iter"
	"math"
	"slices"

	"github.com/rs/zerolog"

	"github.com/charmingruby/lazyseq/seq"
)

// List is a list whose elements are pulled from its sources on demand. The
// zero value is not usable; create lists with New or one of the From
// constructors.
type List[T any] struct {
	items   []T
	pending []source[T]
	log     zerolog.Logger
}

// New returns an empty list.
func New[T any](opts ...Option) *List[T] {
	o := buildOptions(opts)
	return &List[T]{
		log: o.logger.With().Str("component", "lazylist").Logger(),
	}
}

// Of returns a list holding a copy of values.
func Of[T any](values ...T) *List[T] {
	return New[T]().ExtendSlice(values)
}

// FromSlice returns a list holding a copy of values.
func FromSlice[T any](values []T, opts ...Option) *List[T] {
	return New[T](opts...).ExtendSlice(values)
}

// FromSource returns a list that will draw its elements from src.
func FromSource[T any](src Source[T], opts ...Option) *List[T] {
	return New[T](opts...).Extend(src)
}

// FromSeq returns a list that will draw its elements from s.
func FromSeq[T any](s iter.Seq[T], opts ...Option) *List[T] {
	return New[T](opts...).ExtendSeq(s)
}

// Extend appends the values of src without pulling any of them. If src is a
// Collection it is copied now; otherwise it is drained when its values are
// first needed and reflects the producer's state at that time. The list takes
// ownership of src.
func (l *List[T]) Extend(src Source[T]) *List[T] {
	if src == nil {
		return l
	}
	if c, ok := src.(Collection[T]); ok {
		values := make([]T, c.Len())
		for i := range values {
			values[i] = c.At(i)
		}
		l.push(&snapshot[T]{items: values})
		return l
	}
	l.push(&stream[T]{src: src})
	return l
}

// ExtendSlice appends a copy of values.
func (l *List[T]) ExtendSlice(values []T) *List[T] {
	if len(values) == 0 {
		return l
	}
	if len(l.pending) == 0 {
		l.items = append(l.items, values...)
		return l
	}
	l.push(newSnapshot(values))
	return l
}

// ExtendSeq appends the values of s, pulled on demand.
func (l *List[T]) ExtendSeq(s iter.Seq[T]) *List[T] {
	return l.Extend(seq.FromSeq(s))
}

// ExtendList appends the content of other without materializing it. other
// keeps observing the same content; values of its streams are still pulled
// from their producers only once.
func (l *List[T]) ExtendList(other *List[T]) *List[T] {
	items, pending := other.fork()
	if len(l.pending) == 0 {
		l.items = append(l.items, items...)
	} else if len(items) > 0 {
		l.push(&snapshot[T]{items: items})
	}
	l.pending = append(l.pending, pending...)
	return l
}

// Concat returns a new list holding a followed by b. Neither operand changes.
func Concat[T any](a, b *List[T]) *List[T] {
	return a.Clone().ExtendList(b)
}

// Clone returns an independent list with the same content. Nothing is
// materialized.
func (l *List[T]) Clone() *List[T] {
	items, pending := l.fork()
	return &List[T]{items: items, pending: pending, log: l.log}
}

// Repeat replaces the content with n consecutive copies of itself without
// materializing it. n <= 0 clears the list. ErrRepeatTooLarge is returned,
// and the list left unchanged, when the copies cannot be represented.
func (l *List[T]) Repeat(n int) error {
	switch {
	case n <= 0:
		return l.Clear()
	case n == 1:
		return nil
	case n > math.MaxInt/max(len(l.items), len(l.pending)+1):
		return ErrRepeatTooLarge
	case len(l.pending) == 0:
		l.items = slices.Repeat(l.items, n)
		return nil
	}
	out := make([]source[T], 0, len(l.pending)+1)
	for rep := range n {
		if len(l.items) > 0 {
			out = append(out, &snapshot[T]{items: l.items})
		}
		for i, s := range l.pending {
			if rep == n-1 {
				out = append(out, s)
				continue
			}
			mine, rest := s.fork()
			l.pending[i] = rest
			out = append(out, mine)
		}
	}
	l.items = nil
	l.pending = out
	return nil
}

// Close abandons every pending source, closing those that implement
// io.Closer. Materialized elements stay readable.
func (l *List[T]) Close() error {
	var errs []error
	for _, s := range l.pending {
		if err := s.close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(l.pending) > 0 {
		l.log.Debug().Int("pending", len(l.pending)).Msg("pending sources abandoned")
	}
	l.pending = nil
	return errors.Join(errs...)
}

// Clear removes every element and closes pending sources.
func (l *List[T]) Clear() error {
	l.items = nil
	return l.Close()
}

// Materialized reports how many elements have been pulled so far.
func (l *List[T]) Materialized() int { return len(l.items) }

// Pending reports how many sources have not been exhausted yet.
func (l *List[T]) Pending() int { return len(l.pending) }

func (l *List[T]) push(s source[T]) {
	l.pending = append(l.pending, s)
}

// fork returns a copy of the content, rerouting the receiver's streams so both
// copies can drain them independently.
func (l *List[T]) fork() ([]T, []source[T]) {
	items := slices.Clone(l.items)
	pending := make([]source[T], len(l.pending))
	for i, s := range l.pending {
		mine, theirs := s.fork()
		l.pending[i] = mine
		pending[i] = theirs
	}
	return items, pending
}
