package main

import (
	"fmt"
	"io"
	"os"

	jsonval "github.com/Protocol-Lattice/jsonval"
)

func main() {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading stdin: %v\n", err)
		os.Exit(1)
	}

	if err := jsonval.Check(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
