//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strings"
	"text/template"
)

var fixedTemplate = `
const scale{{ .Name }} Scale = {{ .Frac }}

func {{ .Name }}U[I constraints.Integer](i I) {{ .Name }} { return {{ .Name }}(int64(i) << {{ .Frac }}) }
func {{ .Name }}F(f float64) {{ .Name }} { return {{ .Name }}(scale{{ .Name }}.FromFloat(f)) }
func {{ .Name }}R(f float64) {{ .Name }} { return {{ .Name }}(scale{{ .Name }}.Round(f)) }

func (x {{ .Name }}) Float() float64 { return scale{{ .Name }}.Float(int64(x)) }
func (x {{ .Name }}) Int() int { return int(x >> {{ .Frac }}) }
func (x {{ .Name }}) Frac() {{ .Name }} { return x & (1<<{{ .Frac }} - 1) }
func (x {{ .Name }}) Floor() {{ .Name }} { return {{ .Name }}(scale{{ .Name }}.Floor(int64(x))) }
func (x {{ .Name }}) Ceil() {{ .Name }} { return {{ .Name }}(scale{{ .Name }}.Ceil(int64(x))) }

func (x {{ .Name }}) Mul(y {{ .Name }}) ({{ .Name }}, error) {
	z, err := scale{{ .Name }}.Mul(int64(x), int64(y))
	return {{ .Name }}(z), err
}

func (x {{ .Name }}) Div(y {{ .Name }}) ({{ .Name }}, error) {
	z, err := scale{{ .Name }}.Div(int64(x), int64(y))
	return {{ .Name }}(z), err
}

func (x {{ .Name }}) Int52_12() xfixed.Int52_12 {
	return xfixed.Int52_12(scale{{ .Name }}.Rescale(int64(x), 12))
}

func (x {{ .Name }}) String() string { return scale{{ .Name }}.Format(int64(x)) }
`

type fixedType struct {
	Name      string
	Int, Frac uint
}

func fromDecl(name string) (f fixedType) {
	f.Name = name

	rest, found := strings.CutPrefix(name, "Int")
	if !found {
		log.Fatalln("invalid name:", name)
	}
	_, err := fmt.Sscanf(rest, "%d_%d", &f.Int, &f.Frac)
	if err != nil && err != io.EOF {
		log.Fatalln(err)
	}
	if f.Int+f.Frac != 64 {
		log.Fatalln("must use all 64 bits:", name)
	}
	if f.Frac == 0 || f.Frac >= 64 {
		log.Fatalln("need 0 < fractional bits < 64:", name)
	}
	return
}

func usage() {
	fmt.Printf("Usage: %v <typename>\n", os.Args[0])
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}

	source := bytes.NewBuffer(nil)
	tmpl, err := template.New("fixedTemplate").Parse(fixedTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Fprintln(source, "package fixed")
	fmt.Fprintln(source, "import (")
	fmt.Fprintln(source, "\"golang.org/x/exp/constraints\"")
	fmt.Fprintln(source, "xfixed \"golang.org/x/image/math/fixed\"")
	fmt.Fprintln(source, ")")

	err = tmpl.Execute(source, fromDecl(os.Args[1]))
	if err != nil {
		log.Fatalln(err)
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile(strings.ToLower(os.Args[1])+"_fixed.go", formattedSource, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
