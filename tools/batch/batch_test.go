package batch

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clktmr/fpq/fixed"
)

const scenarioOutput = "3.5\t229376\t0x38000\t3:32768\t3.5\n" +
	"2\t131072\t0x20000\t2:00000\t2\n" +
	"7\t458752\t7:00000\n" +
	"1.75\t114688\t1:49152\n" +
	"3\t196608\t3:00000\n" +
	"4\t262144\t4:00000\n"

func TestRunFile(t *testing.T) {
	var out bytes.Buffer
	err := Run([]string{"batch", filepath.Join("testdata", "scenario.fpq")}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != scenarioOutput {
		t.Fatalf("expected %q, got %q", scenarioOutput, got)
	}
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	if err := Run([]string{"batch", filepath.Join("testdata", "missing.fpq")}, &out); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRunScript(t *testing.T) {
	tests := map[string]struct {
		script    string
		keepGoing bool
		out       string
		err       error
	}{
		"divByZero": {
			"eval \"1 / 0\"\nconv 1\n", false,
			"",
			fixed.ErrDivisionByZero,
		},
		"keepGoing": {
			"eval \"1 / 0\"\nconv 1\n", true,
			"1\t65536\t0x10000\t1:00000\t1\n",
			ErrFailed,
		},
		"quotedArgs": {
			"eval -bits 8 -- \"-0.5 * 3\"\n", false,
			"-1.5\t-384\t-1:128\n",
			nil,
		},
		"unknown": {
			"rom build\n", false,
			"",
			nil,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(strings.NewReader(tc.script), &out, tc.keepGoing)
			switch {
			case tc.err != nil && !errors.Is(err, tc.err):
				t.Fatalf("expected error %v, got %v", tc.err, err)
			case tc.err == nil && tc.out == "" && err == nil:
				t.Fatal("expected error")
			case tc.err == nil && tc.out != "" && err != nil:
				t.Fatal(err)
			}
			if got := out.String(); got != tc.out {
				t.Fatalf("expected output %q, got %q", tc.out, got)
			}
		})
	}
}

func TestRunLineNumber(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("# header\n\neval \"2 / 0\"\n"), &out, false)
	if expected := "line 3: 2 / 0: division by zero"; err == nil || err.Error() != expected {
		t.Fatalf("expected %q, got %v", expected, err)
	}
}
