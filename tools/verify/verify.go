// Package verify implements the verify command, checking the fixed-point
// kernel against big integer references on pseudo-random operands.
//
// Built with -tags debug, every division additionally cross-checks the
// production algorithm against bit-serial restoring division.
package verify

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/clktmr/fpq/fixed"
	fpqtesting "github.com/clktmr/fpq/testing"
)

const usageString = `Fixed-point kernel verifier.

Usage: %s [flags]

Multiplies and divides edge case and pseudo-random operand pairs and
compares the results to arbitrary precision references. Built with
-tags debug, every division also runs the bit-serial reference divider and
panics if the two disagree.

`

// ErrMismatch is returned if any result differs from the reference.
var ErrMismatch = errors.New("kernel disagrees with reference")

const maxReported = 10

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
	flags := flag.NewFlagSet("verify", flag.ContinueOnError)
	flags.SetOutput(w)
	bits := flags.Int("bits", 16, "number of fractional bits")
	all := flags.Bool("all", false, "verify every number of fractional bits")
	n := flags.Int("n", 100000, "number of pseudo-random operand pairs")
	seed := flags.Uint64("seed", 1, "pseudo-random seed")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageString, "verify")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	var scales []fixed.Scale
	if *all {
		for b := 1; b < 64; b++ {
			scales = append(scales, fixed.Scale(b))
		}
	} else {
		s, err := fixed.NewScale(*bits)
		if err != nil {
			return err
		}
		scales = append(scales, s)
	}

	p := message.NewPrinter(language.English)
	failed := false
	for _, s := range scales {
		r := rand.New(rand.NewPCG(*seed, uint64(s)))
		rep := check(s, r, *n)
		p.Fprintf(w, "B=%d: %d pairs, %d multiply and %d divide mismatches\n",
			s, rep.pairs, rep.mul, rep.div)
		for _, m := range rep.samples {
			fmt.Fprintln(w, "\t"+m)
		}
		failed = failed || rep.mul+rep.div > 0
	}
	if failed {
		return ErrMismatch
	}
	return nil
}

type report struct {
	pairs, mul, div int
	samples         []string
}

func (rep *report) sample(format string, args ...any) {
	if len(rep.samples) < maxReported {
		rep.samples = append(rep.samples, fmt.Sprintf(format, args...))
	}
}

func check(s fixed.Scale, r *rand.Rand, n int) (rep report) {
	for y, z := range fpqtesting.Pairs(r, n) {
		rep.pairs++

		got, err := s.Mul(y, z)
		want, ok := fpqtesting.Mul(y, z, uint(s))
		if got != want || (err == nil) != ok {
			rep.mul++
			rep.sample("%d * %d: got (%d, %v), want (%d, fits %v)", y, z, got, err, want, ok)
		}

		got, err = s.Div(y, z)
		if z == 0 {
			if got != 0 || !errors.Is(err, fixed.ErrDivisionByZero) {
				rep.div++
				rep.sample("%d / 0: got (%d, %v)", y, got, err)
			}
			continue
		}
		want, ok = fpqtesting.Div(y, z, uint(s))
		if got != want || (err == nil) != ok {
			rep.div++
			rep.sample("%d / %d: got (%d, %v), want (%d, fits %v)", y, z, got, err, want, ok)
		}
	}
	return rep
}
