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

// Command rtgen generates the named conversion routines of package builtins.
//
// Every routine is a one-line instantiation of the generic IntToFloat or
// FloatToInt algorithm for one (source, destination) width pair, exported
// under a Go name derived from its platform symbol (__floatsisf becomes
// Floatsisf). The generator also emits the intrinsics table that harnesses
// use to enumerate the routines.
//
// Usage:
//
//	rtgen -output conv_gen.go -pkg builtins
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/rtgen -output conv_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "conv_gen.go", "Output Go source file")
	packageOut = flag.String("pkg", "builtins", "Output package name")
)

func main() {
	flag.Parse()

	routines := Routines()
	src, err := Generate(*packageOut, routines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d routines into %s\n", len(routines), *outputFile)
}
