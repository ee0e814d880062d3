package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/fpq/tools/batch"
	"github.com/clktmr/fpq/tools/conv"
	"github.com/clktmr/fpq/tools/eval"
	"github.com/clktmr/fpq/tools/verify"
)

const usageString = `fpq is a tool for working with Q-format fixed-point numbers.

Usage:

	%s <command> [arguments]

The commands are:

	conv     convert between real numbers and fixed-point words
	eval     evaluate an expression with fixed-point arithmetic
	verify   check the arithmetic kernel against big integer references
	batch    run commands read line by line from a file or stdin
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "conv":
		conv.Main(flag.Args())
	case "eval":
		eval.Main(flag.Args())
	case "verify":
		verify.Main(flag.Args())
	case "batch":
		batch.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
