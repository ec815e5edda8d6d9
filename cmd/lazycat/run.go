package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmingruby/lazyseq/internal/config"
	"github.com/charmingruby/lazyseq/internal/logging"
	"github.com/charmingruby/lazyseq/lazylist"
	"github.com/charmingruby/lazyseq/seq"
)

const serviceName = "lazycat"

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, config.WithOutput(stderr))
	if err != nil {
		if !errors.Is(err, config.ErrHelp) {
			report(stderr, err)
		}
		return err
	}
	log := logging.New(cfg.Log, stderr, serviceName)

	in, err := openInput(cfg.Input, stdin)
	if err != nil {
		log.Debug().Err(err).Str("input", cfg.Input).Msg("failed to open input")
		report(stderr, err)
		return err
	}
	defer in.Close()

	read := 0
	lines := lazylist.FromSource(
		seq.Counting(seq.Lines(in), func(string) { read++ }),
		lazylist.WithLogger(log),
	)
	defer lines.Close()

	err = render(cfg, lines, stdout)
	log.Debug().Int("lines_read", read).Str("input", cfg.Input).Msg("done")
	if err != nil {
		report(stderr, err)
		return err
	}
	return nil
}

// report prints err for the user regardless of the log level.
func report(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", serviceName, err)
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == config.StdinInput {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// render prints the selection described by cfg. Only the lines the
// selection needs are read.
func render(cfg *config.Config, lines *lazylist.List[string], w io.Writer) error {
	if cfg.Reverse {
		lines.Reverse()
	}
	if cfg.Count {
		n, err := lines.Len()
		if err != nil {
			return fmt.Errorf("count lines: %w", err)
		}
		fmt.Fprintln(w, n)
	}
	for _, i := range cfg.Index {
		line, err := lines.At(i)
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		fmt.Fprintln(w, line)
	}

	var (
		selected []string
		err      error
	)
	switch {
	case cfg.Head > 0:
		selected, err = lines.Slice(0, cfg.Head)
	case cfg.Slice != "":
		var b bounds
		if b, err = parseSlice(cfg.Slice); err == nil {
			selected, err = lines.SliceStep(b.start, b.stop, b.step)
		}
	case cfg.Count || len(cfg.Index) > 0:
		return nil
	default:
		return printAll(lines, w)
	}
	if err != nil {
		return fmt.Errorf("select lines: %w", err)
	}
	for _, line := range selected {
		fmt.Fprintln(w, line)
	}
	return nil
}

func printAll(lines *lazylist.List[string], w io.Writer) error {
	for line, err := range lines.All() {
		if err != nil {
			return fmt.Errorf("read lines: %w", err)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
