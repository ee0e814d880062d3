package eval

import (
	"bytes"
	"errors"
	"testing"

	"github.com/clktmr/fpq/fixed"
)

func TestEval(t *testing.T) {
	const s = fixed.Scale(16)
	tests := map[string]struct {
		want int64
		err  error
	}{
		"3.5 * 2":               {458752, nil},
		"3.5 / 2":               {114688, nil},
		"floor(3.5)":            {196608, nil},
		"ceil(3.5)":             {262144, nil},
		"ceil(-1.5)":            {-65536, nil},
		"floor(-1.5)":           {-131072, nil},
		"(1 + 2) * -3":          {-9 << 16, nil},
		"+1 - 0.5":              {1 << 15, nil},
		"-1 / 3":                {-21845, nil},
		"1 / 0":                 {0, fixed.ErrDivisionByZero},
		"floor(2 / (1 - 1))":    {0, fixed.ErrDivisionByZero},
		"100000000 * 100000000": {0, fixed.ErrOverflow},
		"140737488355328":       {0, fixed.ErrOverflow},
		"140737488355327 + 1.0": {0, fixed.ErrOverflow},
		"x":                     {0, ErrUnsupported},
		"sqrt(2)":               {0, ErrUnsupported},
		"floor(1, 2)":           {0, ErrUnsupported},
		"1 % 2":                 {0, ErrUnsupported},
		`"one"`:                 {0, ErrUnsupported},
	}
	for expr, tc := range tests {
		t.Run(expr, func(t *testing.T) {
			got, err := Eval(s, expr)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected error %v, got %v", tc.err, err)
			}
			if err == nil && got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestEvalErrorContext(t *testing.T) {
	_, err := Eval(fixed.Scale(16), "2 * (1 / 0)")
	if expected := "1 / 0: division by zero"; err == nil || err.Error() != expected {
		t.Fatalf("expected %q, got %v", expected, err)
	}
}

func TestEvalSyntax(t *testing.T) {
	if _, err := Eval(fixed.Scale(16), "3.5 *"); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestRun(t *testing.T) {
	tests := map[string]struct {
		args []string
		out  string
	}{
		"product":  {[]string{"eval", "3.5", "*", "2"}, "7\t458752\t7:00000\n"},
		"negative": {[]string{"eval", "--", "-1.5"}, "-1.5\t-98304\t-1:32768\n"},
		"bits":     {[]string{"eval", "-bits", "8", "0.999"}, "0.99609375\t255\t0:255\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			if err := Run(tc.args, &out); err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != tc.out {
				t.Fatalf("expected %q, got %q", tc.out, got)
			}
		})
	}
}
