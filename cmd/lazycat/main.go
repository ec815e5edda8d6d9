// Command lazycat prints selected lines of a file, reading only as far into
// the input as the selection requires.
//
//	lazycat --head 10 huge.log
//	lazycat --index=-1 huge.log       # reads everything, prints the last line
//	lazycat --reverse --slice :3 a.txt
package main

import (
	"errors"
	"os"

	"github.com/charmingruby/lazyseq/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return
		}
		os.Exit(1)
	}
}
