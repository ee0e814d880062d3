// Package conv implements the conv command, converting between real numbers
// and fixed-point words.
package conv

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/clktmr/fpq/fixed"
)

const usageString = `Real number to fixed-point word converter.

Usage: %s [flags] <value>...

Each value is printed as: input, word, word in hex, int:frac, real.
Values are real numbers, or words with -raw. Use -- before the first
negative value.

`

var errNoValues = errors.New("no values given")

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
// writes its output to w.
func Run(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("conv", flag.ContinueOnError)
	flags.SetOutput(w)
	bits := flags.Int("bits", 16, "number of fractional bits")
	round := flags.Bool("round", false, "round to nearest instead of truncating")
	raw := flags.Bool("raw", false, "values are fixed-point words")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageString, "conv")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errNoValues
	}

	s, err := fixed.NewScale(*bits)
	if err != nil {
		return err
	}

	for _, arg := range flags.Args() {
		var x int64
		if *raw {
			x, err = strconv.ParseInt(arg, 0, 64)
		} else {
			x, err = fromReal(s, arg, *round)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%#x\t%s\t%v\n", arg, x, x, s.Format(x), s.Float(x))
	}
	return nil
}

func fromReal(s fixed.Scale, arg string, round bool) (int64, error) {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, err
	}
	if v := math.Ldexp(f, int(s)); math.IsNaN(v) || v >= math.MaxInt64 || v < math.MinInt64 {
		return 0, fmt.Errorf("%w: %s at %d fractional bits", fixed.ErrOverflow, arg, s)
	}
	if round {
		return s.Round(f), nil
	}
	return s.FromFloat(f), nil
}
