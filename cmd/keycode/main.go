// Package main prints the bytes each key press sends, and the command the
// line editor decodes from them. Ctrl-D on its own exits.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/ledit/internal/input/key"
	"github.com/dshills/ledit/internal/terminal"
)

const ctrlD = 0x04

func main() {
	os.Exit(run())
}

func run() int {
	var raw bool
	flag.BoolVar(&raw, "raw", false, "Print bytes only, without decoding")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: keycode [-raw]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the bytes of every key press. Ctrl-D exits.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	fd, ok := terminal.Lookup(os.Stdin)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %v\n", terminal.ErrNotTerminal)
		return 1
	}
	sess := terminal.NewSession(fd)
	if err := sess.Enter(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer sess.Exit()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		sess.Exit()
		os.Exit(130)
	}()

	if err := dump(os.Stdin, os.Stdout, raw); err != nil {
		sess.Exit()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// dump reads chunks from in until end of input or a lone Ctrl-D and writes
// one line per chunk.
func dump(in io.Reader, out io.Writer, raw bool) error {
	w := bufio.NewWriter(out)
	dec := key.NewDecoder()
	buf := make([]byte, 255)

	for {
		n, err := in.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if n == 1 && chunk[0] == ctrlD {
				return w.Flush()
			}
			writeChunk(w, chunk)
			if !raw {
				fmt.Fprintf(w, " %s", dec.Decode(chunk))
			}
			w.WriteByte('\n')
			if ferr := w.Flush(); ferr != nil {
				return ferr
			}
		}
		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			return w.Flush()
		}
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
	}
}

func writeChunk(w *bufio.Writer, chunk []byte) {
	for i, c := range chunk {
		if i > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprintf(w, "%x", c)
	}
}
