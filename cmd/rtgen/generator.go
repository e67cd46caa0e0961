// Copyright 2025 go-builtins Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Routine is one named conversion routine to generate.
type Routine struct {
	Name   string // Go identifier, e.g. Floatsisf
	Symbol string // platform symbol, e.g. __floatsisf
	Kind   string // IntToFloat or FloatToInt
	Src    string
	Dst    string
}

// Param returns the parameter name used in the generated signature.
func (r Routine) Param() string {
	if r.Kind == "IntToFloat" {
		return "i"
	}
	return "f"
}

type intType struct {
	goType   string
	abbrev   string // si or di
	unsigned bool
}

type floatType struct {
	goType string
	abbrev string // sf or df
}

var (
	intTypes = []intType{
		{"int32", "si", false},
		{"int64", "di", false},
		{"uint32", "si", true},
		{"uint64", "di", true},
	}
	floatTypes = []floatType{
		{"float32", "sf"},
		{"float64", "df"},
	}
)

// Routines returns every width pair a target needs, integer-to-float
// routines first.
func Routines() []Routine {
	var out []Routine
	for _, it := range intTypes {
		for _, ft := range floatTypes {
			// __floatunsisf, __floatundidf: the "s" of "uns" is shared
			// with the "si" suffix.
			prefix := "float"
			if it.unsigned {
				prefix = "floatun"
			}
			out = append(out, newRoutine(prefix+it.abbrev+ft.abbrev, "IntToFloat", it.goType, ft.goType))
		}
	}
	for _, ft := range floatTypes {
		for _, it := range intTypes {
			prefix := "fix"
			if it.unsigned {
				prefix = "fixuns"
			}
			out = append(out, newRoutine(prefix+ft.abbrev+it.abbrev, "FloatToInt", ft.goType, it.goType))
		}
	}
	return out
}

func newRoutine(base, kind, src, dst string) Routine {
	return Routine{
		Name:   strings.ToUpper(base[:1]) + base[1:],
		Symbol: "__" + base,
		Kind:   kind,
		Src:    src,
		Dst:    dst,
	}
}

var fileTemplate = template.Must(template.New("conv").Parse(`// Code generated by rtgen. DO NOT EDIT.

package {{.Package}}
{{range .Routines}}
{{if eq .Kind "IntToFloat"}}// {{.Name}} converts {{.Src}} to {{.Dst}}, rounding to nearest even.
{{else}}// {{.Name}} converts {{.Src}} to {{.Dst}}, truncating toward zero and
// saturating out-of-range values.
{{end}}//
// Symbol: {{.Symbol}}
func {{.Name}}({{.Param}} {{.Src}}) {{.Dst}} {
	return {{.Kind}}[{{.Src}}, {{.Dst}}]({{.Param}})
}
{{end}}
var intrinsics = [...]Intrinsic{
{{- range .Routines}}
	{Name: "{{.Name}}", Symbol: "{{.Symbol}}", Kind: Kind{{.Kind}}, Src: "{{.Src}}", Dst: "{{.Dst}}", Fn: {{.Name}}},
{{- end}}
}
`))

// Generate renders the routines as a formatted Go source file.
func Generate(pkg string, routines []Routine) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package  string
		Routines []Routine
	}{pkg, routines})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process("conv_gen.go", buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
