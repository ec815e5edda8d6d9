package lazylist_test

import (
	"fmt"
	"slices"

	"github.com/charmingruby/lazyseq/lazylist"
	"github.com/charmingruby/lazyseq/seq"
)

func ExampleList_At() {
	computed := 0
	squares := lazylist.FromSource(seq.Generate(func(i int) int {
		computed++
		return (i + 1) * (i + 1)
	}))
	v, _ := squares.At(100)
	fmt.Println(v, computed)
	// Output:
	// 10201 101
}

func ExampleList_Reverse() {
	l := lazylist.FromSlice([]int{1, 2}).ExtendSeq(slices.Values([]int{3, 4, 5}))
	l.Reverse()
	fmt.Println(l)
	// Output:
	// [5 4 3 2 1]
}

func ExampleConcat() {
	a := lazylist.FromSource(seq.Range(0, 3))
	b := lazylist.Of(10, 11)
	fmt.Println(lazylist.Concat(a, b), a, b)
	// Output:
	// [0 1 2 10 11] [0 1 2] [10 11]
}
