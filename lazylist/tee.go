package lazylist

// teeShared is the state shared by every reader of one destructive Source.
// Values pulled by the most advanced reader are linked in a chain that the
// lagging readers walk; nodes no reader can reach are garbage collected.
type teeShared[T any] struct {
	src     Source[T]
	done    bool
	closed  bool
	readers int
}

type teeNode[T any] struct {
	value T
	next  *teeNode[T]
}

// teeReader is one independent view of a shared Source. Each value of the
// Source is pulled exactly once, whichever reader asks for it first.
type teeReader[T any] struct {
	shared *teeShared[T]
	at     *teeNode[T]
	closed bool
}

func newTee[T any](src Source[T]) (source[T], source[T]) {
	shared := &teeShared[T]{src: src, readers: 2}
	head := &teeNode[T]{}
	return &teeReader[T]{shared: shared, at: head}, &teeReader[T]{shared: shared, at: head}
}

func (r *teeReader[T]) next() (T, bool, error) {
	var zero T
	if r.at.next != nil {
		r.at = r.at.next
		return r.at.value, true, nil
	}
	if r.shared.done {
		return zero, false, nil
	}
	v, ok, err := r.shared.src.Next()
	if err != nil {
		return zero, false, err
	}
	if !ok {
		r.shared.done = true
		return zero, false, nil
	}
	n := &teeNode[T]{value: v}
	r.at.next = n
	r.at = n
	return v, true, nil
}

func (r *teeReader[T]) fork() (source[T], source[T]) {
	r.shared.readers++
	return r, &teeReader[T]{shared: r.shared, at: r.at}
}

func (r *teeReader[T]) reverse() source[T] {
	return &reversedSource[T]{inner: r}
}

// close releases this reader; the Source is closed with the last one.
func (r *teeReader[T]) close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.shared.readers--
	if r.shared.readers > 0 || r.shared.closed {
		return nil
	}
	r.shared.closed = true
	return closeSource(r.shared.src)
}
