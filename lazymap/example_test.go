package lazymap_test

import (
	"fmt"

	"github.com/charmingruby/lazyseq/lazymap"
)

func ExampleMap_Get() {
	computed := 0
	m := lazymap.Of(
		lazymap.Entry[string, int]{Key: "answer", Func: func() (int, error) {
			computed++
			return 42, nil
		}},
	)
	fmt.Println(m.Len(), computed)
	_, _ = m.Get("answer")
	v, _ := m.Get("answer")
	fmt.Println(v, computed)
	// Output:
	// 1 0
	// 42 1
}
