// Package lazylist implements a list that grows lazily from the sources it is
// extended with.
//
// A List keeps a materialized prefix (the elements already pulled) and a
// queue of pending sources. Reading element i pulls from the head of the
// queue until i+1 elements exist, and never further:
//
//	squares := lazylist.FromSource(seq.Generate(func(i int) int { return (i + 1) * (i + 1) }))
//	v, _ := squares.At(100) // 10201, the 102nd square is never computed
//
// Sources come in two kinds. Slices and other values implementing
// Collection are copied when added, so later writes to the caller's
// collection are invisible. Everything else is a destructive stream: it is
// pulled at most once per element, never rewound, and whatever the producer
// yields at read time is what the list observes.
//
// Length, negative indexing, sorting, String and Materialize need every
// element and drain all pending sources. Reverse does not: it reorders the
// queue and reverses each source only when that source is reached.
//
// A List is not safe for concurrent use.
package lazylist
