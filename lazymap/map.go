package lazymap

import (
	"iter"
	"slices"

	"github.com/rs/zerolog"
)

// Entry is a key with its value. When Func is set the value is deferred:
// Value is ignored and Func supplies it on first read.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
	Func  func() (V, error)
}

// Map is an insertion-ordered map with deferred values. Create maps with New,
// Of or FromSeq2.
type Map[K comparable, V any] struct {
	keys     []K
	resolved map[K]V
	pending  map[K]func() (V, error)
	log      zerolog.Logger
}

// New returns an empty map.
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	o := buildOptions(opts)
	return &Map[K, V]{
		resolved: make(map[K]V),
		pending:  make(map[K]func() (V, error)),
		log:      o.logger.With().Str("component", "lazymap").Logger(),
	}
}

// Of returns a map holding entries in order. A later entry for the same key
// replaces the earlier one and keeps its position.
func Of[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	return FromEntries(entries)
}

// FromEntries is Of with options.
func FromEntries[K comparable, V any](entries []Entry[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	for _, e := range entries {
		if e.Func != nil {
			m.SetFunc(e.Key, e.Func)
			continue
		}
		m.Set(e.Key, e.Value)
	}
	return m
}

// FromSeq2 returns a map holding the pairs of s in the order s yields them.
// Every value is a plain, already resolved one.
func FromSeq2[K comparable, V any](s iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	for k, v := range s {
		m.Set(k, v)
	}
	return m
}

// Set stores v under k as a plain value, even when V is a function type. A
// pending deferred value for k is dropped.
func (m *Map[K, V]) Set(k K, v V) {
	m.track(k)
	delete(m.pending, k)
	m.resolved[k] = v
}

// SetFunc stores fn under k as a deferred value.
func (m *Map[K, V]) SetFunc(k K, fn func() (V, error)) {
	m.track(k)
	delete(m.resolved, k)
	m.pending[k] = fn
}

// Get returns the value under k, computing it first if it is deferred. An
// error from the deferred function is returned as is and the value stays
// deferred, so the next Get calls the function again. A missing key returns
// a *KeyError and computes nothing.
func (m *Map[K, V]) Get(k K) (V, error) {
	if v, ok := m.resolved[k]; ok {
		return v, nil
	}
	if _, ok := m.pending[k]; !ok {
		var zero V
		return zero, &KeyError{Key: k}
	}
	return m.resolve(k)
}

// Has reports whether k is in the map without computing anything.
func (m *Map[K, V]) Has(k K) bool {
	if _, ok := m.resolved[k]; ok {
		return true
	}
	_, ok := m.pending[k]
	return ok
}

// Delete removes k and reports whether it was present. A deferred value is
// dropped without being computed.
func (m *Map[K, V]) Delete(k K) bool {
	if !m.Has(k) {
		return false
	}
	delete(m.resolved, k)
	delete(m.pending, k)
	m.keys = slices.DeleteFunc(m.keys, func(x K) bool { return x == k })
	return true
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Pending reports how many values are still deferred.
func (m *Map[K, V]) Pending() int { return len(m.pending) }

// Keys iterates over the keys in insertion order without computing anything.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return slices.Values(slices.Clone(m.keys))
}

// All iterates over the entries in insertion order, computing each deferred
// value when the loop reaches it. An error ends the iteration with a final
// pair carrying the failing key.
func (m *Map[K, V]) All() iter.Seq2[Entry[K, V], error] {
	return func(yield func(Entry[K, V], error) bool) {
		for _, k := range slices.Clone(m.keys) {
			v, err := m.Get(k)
			if err != nil {
				yield(Entry[K, V]{Key: k}, err)
				return
			}
			if !yield(Entry[K, V]{Key: k, Value: v}, nil) {
				return
			}
		}
	}
}

// Items computes every deferred value and returns the entries in insertion
// order.
func (m *Map[K, V]) Items() ([]Entry[K, V], error) {
	out := make([]Entry[K, V], 0, len(m.keys))
	for e, err := range m.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Values computes every deferred value and returns the values in insertion
// order.
func (m *Map[K, V]) Values() ([]V, error) {
	out := make([]V, 0, len(m.keys))
	for e, err := range m.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, e.Value)
	}
	return out, nil
}

func (m *Map[K, V]) track(k K) {
	if !m.Has(k) {
		m.keys = append(m.keys, k)
	}
}

func (m *Map[K, V]) resolve(k K) (V, error) {
	v, err := m.pending[k]()
	if err != nil {
		m.log.Debug().Err(err).Interface("key", k).Msg("resolve failed")
		var zero V
		return zero, err
	}
	delete(m.pending, k)
	m.resolved[k] = v
	m.log.Debug().Interface("key", k).Int("pending", len(m.pending)).Msg("value resolved")
	return v, nil
}
