package ledit_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing/iotest"

	"github.com/dshills/ledit"
)

func ExampleEditor_ReadLine() {
	// One byte per read, as a terminal delivers typed keys.
	in := iotest.OneByteReader(strings.NewReader("world\x01hello \r"))
	ed := ledit.New(ledit.WithInput(in), ledit.WithOutput(io.Discard))

	line, err := ed.ReadLine("> ", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(line)
	// Output: hello world
}

func ExampleEditor_History() {
	in := iotest.OneByteReader(strings.NewReader("first\rsecond\rthird"))
	ed := ledit.New(ledit.WithInput(in), ledit.WithOutput(io.Discard))

	for {
		line, err := ed.Prompt("$ ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(line)
	}
	fmt.Println(ed.History().Entries())
	// Output:
	// first
	// second
	// [first second third]
}
