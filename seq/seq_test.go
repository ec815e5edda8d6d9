package seq_test

import (
	"errors"
	"io"
	"reflect"
	"slices"
	"strings"
	"testing"
	"testing/quick"

	"github.com/charmingruby/lazyseq/seq"
)

func TestIteratorPipeline(t *testing.T) {
	it := seq.FromSlice([]int{1, 2, 3, 4})
	it = seq.Drop(it, 1)
	it = seq.Take(seq.MapIter(it, func(v int) int { return v * 10 }), 2)
	values, err := seq.ToSlice(it)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !reflect.DeepEqual(values, []int{20, 30}) {
		t.Fatalf("unexpected iterator output %v", values)
	}
}

func TestIteratorHelpers(t *testing.T) {
	values, _ := seq.ToSlice(seq.Take(seq.Range(0, 5), 3))
	if !reflect.DeepEqual(values, []int{0, 1, 2}) {
		t.Fatalf("range values mismatch %v", values)
	}
	repeater := seq.Take(seq.Repeat("go"), 2)
	if got, _ := seq.ToSlice(repeater); !reflect.DeepEqual(got, []string{"go", "go"}) {
		t.Fatalf("repeat mismatch %v", got)
	}
	it := seq.TakeWhile(seq.Iterate(1, func(v int) int { return v * 2 }), func(v int) bool { return v < 10 })
	if got, _ := seq.ToSlice(it); !reflect.DeepEqual(got, []int{1, 2, 4, 8}) {
		t.Fatalf("iterate/takewhile mismatch %v", got)
	}
	dropped, _ := seq.ToSlice(seq.DropWhile(seq.FromSlice([]int{0, 0, 3, 0}), func(v int) bool { return v == 0 }))
	if !reflect.DeepEqual(dropped, []int{3, 0}) {
		t.Fatalf("dropwhile mismatch %v", dropped)
	}
	evens, _ := seq.ToSlice(seq.FilterIter(seq.Range(0, 7), func(v int) bool { return v%2 == 0 }))
	if !reflect.DeepEqual(evens, []int{0, 2, 4, 6}) {
		t.Fatalf("filter mismatch %v", evens)
	}
}

func TestZeroIteratorIsExhausted(t *testing.T) {
	var it seq.Iterator[int]
	if _, ok, err := it.Next(); ok || err != nil {
		t.Fatalf("zero iterator should be exhausted, got ok=%v err=%v", ok, err)
	}
	if err := it.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestGenerateOnlyComputesPulledValues(t *testing.T) {
	calls := 0
	it := seq.Generate(func(i int) int {
		calls++
		return i * i
	})
	got, _ := seq.ToSlice(seq.Take(it, 4))
	if !reflect.DeepEqual(got, []int{0, 1, 4, 9}) {
		t.Fatalf("generate mismatch %v", got)
	}
	if calls != 4 {
		t.Fatalf("expected 4 calls, got %d", calls)
	}
}

func TestFromSeqStopsCoroutine(t *testing.T) {
	stopped := false
	it := seq.FromSeq(func(yield func(int) bool) {
		defer func() { stopped = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})
	if v, ok, _ := it.Next(); !ok || v != 0 {
		t.Fatalf("unexpected first value %v %v", v, ok)
	}
	if err := it.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !stopped {
		t.Fatalf("expected sequence to be stopped on Close")
	}
	if _, ok, _ := it.Next(); ok {
		t.Fatalf("expected exhausted iterator after Close")
	}
}

func TestFromSeqFinite(t *testing.T) {
	got, err := seq.ToSlice(seq.FromSeq(slices.Values([]string{"a", "b"})))
	if err != nil || !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected %v %v", got, err)
	}
}

func TestLinesReadsOnDemand(t *testing.T) {
	it := seq.Lines(strings.NewReader("one\ntwo\nthree\n"))
	got, err := seq.ToSlice(it)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one", "two", "three"}) {
		t.Fatalf("lines mismatch %v", got)
	}
}

func TestLinesHasNoLengthLimit(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	it := seq.Lines(strings.NewReader(long + "\r\nlast"))
	got, err := seq.ToSlice(it)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !reflect.DeepEqual(got, []string{long, "last"}) {
		t.Fatalf("expected a %d byte line then %q, got %d lines", len(long), "last", len(got))
	}
}

func TestLinesResumesAfterReadError(t *testing.T) {
	boom := errors.New("boom")
	failed := false
	r := readerFunc(func(p []byte) (int, error) {
		if !failed {
			failed = true
			return copy(p, "par"), boom
		}
		return 0, io.EOF
	})
	it := seq.Lines(io.MultiReader(r, strings.NewReader("tial\nnext\n")))
	if _, _, err := it.Next(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, err := seq.ToSlice(it)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !reflect.DeepEqual(got, []string{"partial", "next"}) {
		t.Fatalf("lines mismatch %v", got)
	}
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	it := seq.FromFunc(func() (int, bool, error) {
		calls++
		if calls == 3 {
			return 0, false, boom
		}
		return calls, true, nil
	})
	got, err := seq.ToSlice(seq.MapIter(it, func(v int) int { return v + 1 }))
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("expected partial values, got %v", got)
	}
	if _, _, err := seq.Fail[int](boom).Next(); err != boom {
		t.Fatalf("fail should return the same error value")
	}
}

func TestCountingObservesPulls(t *testing.T) {
	var seen []int
	it := seq.Counting(seq.Range(0, 100), func(v int) { seen = append(seen, v) })
	_, _ = seq.ToSlice(seq.Take(it, 3))
	if !reflect.DeepEqual(seen, []int{0, 1, 2}) {
		t.Fatalf("counting mismatch %v", seen)
	}
}

func TestTakeDropLaw(t *testing.T) {
	check := func(values []int, n uint8) bool {
		k := int(n % 16)
		head, _ := seq.ToSlice(seq.Take(seq.FromSlice(values), k))
		tail, _ := seq.ToSlice(seq.Drop(seq.FromSlice(values), k))
		return reflect.DeepEqual(append(head, tail...), append([]int{}, values...))
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("take/drop law failed: %v", err)
	}
}
