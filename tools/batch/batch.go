// Package batch implements the batch command, running fpq commands read from a
// script. Each line is split into words like a shell would, blank lines and
// lines starting with # are skipped.
package batch

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/buildkite/shellwords"

	"github.com/clktmr/fpq/tools/conv"
	"github.com/clktmr/fpq/tools/eval"
	"github.com/clktmr/fpq/tools/verify"
)

const usageString = `Batch command runner.

Usage: %s [flags] [file]

Reads commands from file, or stdin if no file is given, e.g.

	conv -bits 16 3.5
	eval "floor(3.5 / 2)"

`

var commands = map[string]func(args []string, w io.Writer) error{
	"conv":   conv.Run,
	"eval":   eval.Run,
	"verify": verify.Run,
}

var ErrFailed = errors.New("commands failed")

func Main(args []string) {
	err := Run(args, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// Run executes the command with args, where args[0] is the command name, and
// writes the output of all commands to w.
func Run(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("batch", flag.ContinueOnError)
	flags.SetOutput(w)
	keepGoing := flags.Bool("k", false, "keep going after a command failed")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageString, "batch")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	switch flags.NArg() {
	case 0:
		return run(os.Stdin, w, *keepGoing)
	case 1:
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		return run(f, w, *keepGoing)
	default:
		flags.Usage()
		return fmt.Errorf("too many arguments: %v", flags.Args()[1:])
	}
}

func run(in io.Reader, w io.Writer, keepGoing bool) error {
	failed := 0
	scanner := bufio.NewScanner(in)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		err := dispatch(line, w)
		if err == nil {
			continue
		}
		err = fmt.Errorf("line %d: %w", n, err)
		if !keepGoing {
			return err
		}
		log.Println(err)
		failed++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d", ErrFailed, failed)
	}
	return nil
}

func dispatch(line string, w io.Writer) error {
	args, err := shellwords.Split(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return cmd(args, w)
}
