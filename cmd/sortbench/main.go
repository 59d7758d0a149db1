// Command sortbench times the built-in sorting algorithms on random inputs
// of growing size and charts their throughput.
package main

import (
	"os"

	"github.com/katalvlaran/sortlab/cmd/sortbench/command"
)

func main() {
	os.Exit(command.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
