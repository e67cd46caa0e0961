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

// Command rtcheck differentially tests package builtins against a
// WebAssembly reference executed by wazero.
//
// Every conversion routine is run on edge-case and random inputs and its
// result compared bit for bit with the matching WebAssembly instruction;
// memmove and memset are compared with memory.copy and memory.fill over an
// alignment and length matrix. NaN inputs are skipped: float-to-integer
// conversion of NaN is unspecified.
//
// Usage:
//
//	rtcheck                                 # all routines, seed from RTCHECK_SEED or 1
//	rtcheck -n 1000000 -only __fixdfsi,__floatdisf
//	rtcheck -seed 42 -v
//
// The exit status is 1 on error and 2 when any mismatch was found.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ajroetker/go-builtins/internal/wasmref"
)

var (
	iterations = flag.Int("n", 100000, "Random inputs per conversion routine")
	seed       = flag.Uint64("seed", defaultSeed(), "PRNG seed (default: $RTCHECK_SEED or 1)")
	only       = flag.String("only", "", "Comma-separated symbols to check, e.g. __fixdfsi,memmove (default: all)")
	maxSpan    = flag.Int("span", 512, "Largest memory span, in bytes, for memmove/memset checks")
	verbose    = flag.Bool("v", false, "Verbose (development) logging")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	wasmref.SetLogger(logger)

	cfg := Config{
		Iterations: *iterations,
		Seed:       *seed,
		Symbols:    parseList(*only),
		MaxSpan:    *maxSpan,
	}

	report, err := Run(context.Background(), logger, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(RenderReport(report))
	if report.Failed() {
		os.Exit(2)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// defaultSeed reads RTCHECK_SEED, falling back to 1 when unset or invalid.
func defaultSeed() uint64 {
	val := os.Getenv("RTCHECK_SEED")
	if val == "" {
		return 1
	}
	s, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return 1
	}
	return s
}

func parseList(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
