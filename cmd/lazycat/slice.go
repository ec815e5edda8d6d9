package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmingruby/lazyseq/lazylist"
)

type bounds struct {
	start, stop, step int
}

// parseSlice parses "start:stop[:step]". Omitted bounds select from the
// beginning or to the end in the direction of step.
func parseSlice(s string) (bounds, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return bounds{}, fmt.Errorf("slice %q: want start:stop[:step]", s)
	}

	b := bounds{step: 1}
	if len(parts) == 3 && parts[2] != "" {
		step, err := strconv.Atoi(parts[2])
		if err != nil {
			return bounds{}, fmt.Errorf("slice %q: step: %w", s, err)
		}
		if step == 0 {
			return bounds{}, errors.New("slice step must not be zero")
		}
		b.step = step
	}

	b.start, b.stop = lazylist.Begin, lazylist.End
	if b.step < 0 {
		b.start, b.stop = lazylist.End, lazylist.Begin
	}
	if parts[0] != "" {
		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return bounds{}, fmt.Errorf("slice %q: start: %w", s, err)
		}
		b.start = v
	}
	if parts[1] != "" {
		v, err := strconv.Atoi(parts[1])
		if err != nil {
			return bounds{}, fmt.Errorf("slice %q: stop: %w", s, err)
		}
		b.stop = v
	}
	return b, nil
}
