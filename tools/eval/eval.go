// Package eval implements the eval command, evaluating arithmetic expressions
// the way generated simulation code does: literals are converted by truncation,
// products and quotients go through the fixed-point kernel.
package eval

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/clktmr/fpq/fixed"
)

const usageString = `Fixed-point expression evaluator.

Usage: %s [flags] <expression>

The expression uses Go syntax and may contain numbers, parentheses,
unary and binary + and -, * and /, floor(x) and ceil(x). The result is
printed as: real, word, int:frac. Use -- if the expression starts with -.

`

var (
	errNoExpr      = errors.New("no expression given")
	ErrUnsupported = errors.New("unsupported expression")
)

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
	flags := flag.NewFlagSet("eval", flag.ContinueOnError)
	flags.SetOutput(w)
	bits := flags.Int("bits", 16, "number of fractional bits")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageString, "eval")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errNoExpr
	}

	s, err := fixed.NewScale(*bits)
	if err != nil {
		return err
	}
	x, err := Eval(s, strings.Join(flags.Args(), " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\t%d\t%s\n", s.Float(x), x, s.Format(x))
	return nil
}

// Eval parses expr and evaluates it at scale s.
func Eval(s fixed.Scale, expr string) (int64, error) {
	e, err := parser.ParseExpr(expr)
	if err != nil {
		return 0, err
	}
	return evaluator{s}.eval(e)
}

type evaluator struct {
	s fixed.Scale
}

func (e evaluator) eval(n ast.Expr) (int64, error) {
	switch n := n.(type) {
	case *ast.BasicLit:
		return e.literal(n)
	case *ast.ParenExpr:
		return e.eval(n.X)
	case *ast.UnaryExpr:
		x, err := e.eval(n.X)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case token.ADD:
			return x, nil
		case token.SUB:
			if x == math.MinInt64 {
				return 0, fmt.Errorf("%s: %w", types.ExprString(n), fixed.ErrOverflow)
			}
			return -x, nil
		}
	case *ast.BinaryExpr:
		x, err := e.eval(n.X)
		if err != nil {
			return 0, err
		}
		y, err := e.eval(n.Y)
		if err != nil {
			return 0, err
		}
		var z int64
		switch n.Op {
		case token.ADD:
			z, err = add(x, y)
		case token.SUB:
			if y == math.MinInt64 {
				err = fixed.ErrOverflow
				break
			}
			z, err = add(x, -y)
		case token.MUL:
			z, err = e.s.Mul(x, y)
		case token.QUO:
			z, err = e.s.Div(x, y)
		default:
			return 0, fmt.Errorf("%w: operator %s", ErrUnsupported, n.Op)
		}
		if err != nil {
			return 0, fmt.Errorf("%s: %w", types.ExprString(n), err)
		}
		return z, nil
	case *ast.CallExpr:
		return e.call(n)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupported, types.ExprString(n))
}

func (e evaluator) literal(n *ast.BasicLit) (int64, error) {
	switch n.Kind {
	case token.INT:
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return 0, err
		}
		if i > math.MaxInt64>>e.s || i < math.MinInt64>>e.s {
			return 0, fmt.Errorf("%s: %w", n.Value, fixed.ErrOverflow)
		}
		return fixed.FromInt(e.s, i), nil
	case token.FLOAT:
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return 0, err
		}
		if v := math.Ldexp(f, int(e.s)); v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("%s: %w", n.Value, fixed.ErrOverflow)
		}
		return e.s.FromFloat(f), nil
	}
	return 0, fmt.Errorf("%w: literal %s", ErrUnsupported, n.Value)
}

func (e evaluator) call(n *ast.CallExpr) (int64, error) {
	fn, ok := n.Fun.(*ast.Ident)
	if !ok || len(n.Args) != 1 {
		return 0, fmt.Errorf("%w: %s", ErrUnsupported, types.ExprString(n))
	}
	x, err := e.eval(n.Args[0])
	if err != nil {
		return 0, err
	}
	switch fn.Name {
	case "floor":
		return e.s.Floor(x), nil
	case "ceil":
		return e.s.Ceil(x), nil
	}
	return 0, fmt.Errorf("%w: function %s", ErrUnsupported, fn.Name)
}

func add(x, y int64) (int64, error) {
	z := x + y
	if (x > 0 && y > 0 && z < 0) || (x < 0 && y < 0 && z >= 0) {
		return z, fixed.ErrOverflow
	}
	return z, nil
}
