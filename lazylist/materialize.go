package lazylist

// all asks fill for every element.
const all = -1

// fill pulls from the pending queue until at least n elements are
// materialized, or every source is exhausted when n is negative. It never
// pulls more than needed. A source error is returned as is; what was pulled
// before it stays materialized and the failing source stays at the head of the
// queue.
func (l *List[T]) fill(n int) error {
	full := n < 0 && len(l.pending) > 0
	for n < 0 || len(l.items) < n {
		if len(l.pending) == 0 {
			break
		}
		head := l.pending[0]
		if snap, ok := head.(*snapshot[T]); ok {
			need := all
			if n >= 0 {
				need = n - len(l.items)
			}
			l.items = append(l.items, snap.take(need)...)
			if len(snap.items) == 0 {
				l.dropHead()
			}
			continue
		}
		v, ok, err := head.next()
		if err != nil {
			l.log.Debug().Err(err).
				Int("materialized", len(l.items)).
				Int("pending", len(l.pending)).
				Msg("source failed")
			return err
		}
		if !ok {
			l.dropHead()
			l.log.Debug().
				Int("materialized", len(l.items)).
				Int("pending", len(l.pending)).
				Msg("source exhausted")
			if err := head.close(); err != nil {
				return err
			}
			continue
		}
		l.items = append(l.items, v)
	}
	if full {
		l.log.Debug().Int("materialized", len(l.items)).Msg("fully materialized")
	}
	return nil
}

func (l *List[T]) dropHead() {
	l.pending[0] = nil
	l.pending = l.pending[1:]
	if len(l.pending) == 0 {
		l.pending = nil
	}
}
