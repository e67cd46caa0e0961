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
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"unsafe"

	"go.uber.org/zap"

	"github.com/ajroetker/go-builtins/builtins"
	"github.com/ajroetker/go-builtins/internal/wasmref"
)

const (
	symbolMemmove = "memmove"
	symbolMemset  = "memset"

	// Room around each memory span so out-of-region writes show up.
	arenaSlack = 256
)

// Config controls one checker run.
type Config struct {
	Iterations int
	Seed       uint64
	Symbols    []string // empty selects every routine
	MaxSpan    int
}

// Result summarizes the comparison of one routine.
type Result struct {
	Symbol        string
	Checked       int
	Mismatches    int
	FirstMismatch string
}

// Report is the outcome of a run.
type Report struct {
	Target   builtins.Target
	WordSize uintptr
	Host     HostInfo
	Seed     uint64
	Results  []Result
}

// Failed reports whether any routine disagreed with the reference.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.Mismatches > 0 {
			return true
		}
	}
	return false
}

// Run compares every selected routine with the reference module.
func Run(ctx context.Context, logger *zap.Logger, cfg Config) (*Report, error) {
	ref, err := wasmref.New(ctx)
	if err != nil {
		return nil, err
	}
	defer ref.Close(ctx)

	maxSpan := min(max(cfg.MaxSpan, 3*int(builtins.WordSize)), (wasmref.MemorySize-2*arenaSlack)/2)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	report := &Report{
		Target:   builtins.CurrentTarget(),
		WordSize: builtins.WordSize,
		Host:     hostInfo(),
		Seed:     cfg.Seed,
	}
	logger.Info("starting differential check",
		zap.Stringer("target", report.Target),
		zap.Uint64("seed", cfg.Seed),
		zap.Int("iterations", cfg.Iterations))

	add := func(res Result) {
		logResult(logger, res)
		report.Results = append(report.Results, res)
	}

	for in := range builtins.Intrinsics() {
		if !selected(cfg.Symbols, in.Symbol) {
			continue
		}
		res, err := checkIntrinsic(ctx, ref, rng, in, cfg.Iterations)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", in.Symbol, err)
		}
		add(res)
	}

	if selected(cfg.Symbols, symbolMemmove) {
		res, err := checkMemmove(ctx, ref, rng, maxSpan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", symbolMemmove, err)
		}
		add(res)
	}
	if selected(cfg.Symbols, symbolMemset) {
		res, err := checkMemset(ctx, ref, rng, maxSpan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", symbolMemset, err)
		}
		add(res)
	}
	return report, nil
}

func selected(symbols []string, symbol string) bool {
	if len(symbols) == 0 {
		return true
	}
	for _, s := range symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

func logResult(logger *zap.Logger, res Result) {
	if res.Mismatches == 0 {
		logger.Debug("routine matches reference",
			zap.String("symbol", res.Symbol),
			zap.Int("checked", res.Checked))
		return
	}
	logger.Warn("routine disagrees with reference",
		zap.String("symbol", res.Symbol),
		zap.Int("checked", res.Checked),
		zap.Int("mismatches", res.Mismatches),
		zap.String("first", res.FirstMismatch))
}

func checkIntrinsic(ctx context.Context, ref *wasmref.Reference, rng *rand.Rand, in builtins.Intrinsic, n int) (Result, error) {
	switch fn := in.Fn.(type) {
	case func(int32) float32:
		return checkConversion(ctx, ref, in.Symbol, fn, intInputs[int32](rng, n))
	case func(int32) float64:
		return checkConversion(ctx, ref, in.Symbol, fn, intInputs[int32](rng, n))
	case func(int64) float32:
		return checkConversion(ctx, ref, in.Symbol, fn, intInputs[int64](rng, n))
	case func(int64) float64:
		return checkConversion(ctx, ref, in.Symbol, fn, intInputs[int64](rng, n))
	case func(uint32) float32:
		return checkConversion(ctx, ref, in.Symbol, fn, intInputs[uint32](rng, n))
	case func(uint32) float64:
		return checkConversion(ctx, ref, in.Symbol, fn, intInputs[uint32](rng, n))
	case func(uint64) float32:
		return checkConversion(ctx, ref, in.Symbol, fn, intInputs[uint64](rng, n))
	case func(uint64) float64:
		return checkConversion(ctx, ref, in.Symbol, fn, intInputs[uint64](rng, n))
	case func(float32) int32:
		return checkConversion(ctx, ref, in.Symbol, fn, floatInputs[float32](rng, n))
	case func(float32) int64:
		return checkConversion(ctx, ref, in.Symbol, fn, floatInputs[float32](rng, n))
	case func(float32) uint32:
		return checkConversion(ctx, ref, in.Symbol, fn, floatInputs[float32](rng, n))
	case func(float32) uint64:
		return checkConversion(ctx, ref, in.Symbol, fn, floatInputs[float32](rng, n))
	case func(float64) int32:
		return checkConversion(ctx, ref, in.Symbol, fn, floatInputs[float64](rng, n))
	case func(float64) int64:
		return checkConversion(ctx, ref, in.Symbol, fn, floatInputs[float64](rng, n))
	case func(float64) uint32:
		return checkConversion(ctx, ref, in.Symbol, fn, floatInputs[float64](rng, n))
	case func(float64) uint64:
		return checkConversion(ctx, ref, in.Symbol, fn, floatInputs[float64](rng, n))
	default:
		return Result{}, fmt.Errorf("unsupported signature %T", in.Fn)
	}
}

func checkConversion[S, D wasmref.Scalar](ctx context.Context, ref *wasmref.Reference, symbol string, fn func(S) D, inputs []S) (Result, error) {
	res := Result{Symbol: symbol}
	for _, v := range inputs {
		want, err := wasmref.Convert[S, D](ctx, ref, symbol, v)
		if err != nil {
			return res, err
		}
		got := fn(v)
		res.Checked++
		if wasmref.Bits(got) != wasmref.Bits(want) {
			res.Mismatches++
			if res.FirstMismatch == "" {
				res.FirstMismatch = fmt.Sprintf("%v: got %v, want %v", v, got, want)
			}
		}
	}
	return res, nil
}

// intInputs returns the edge patterns of I followed by n random values of
// random magnitude.
func intInputs[I builtins.Integers](rng *rand.Rand, n int) []I {
	d := builtins.IntDescOf[I]()
	patterns := intEdgePatterns(d)
	out := make([]I, 0, len(patterns)+n)
	for _, p := range patterns {
		out = append(out, I(p))
	}
	for range n {
		v := rng.Uint64() >> rng.IntN(64)
		if rng.IntN(2) == 0 {
			v = -v
		}
		out = append(out, I(v))
	}
	return out
}

// intEdgePatterns covers the extremes and, around every power of two the
// width allows, the values that round exactly halfway between two floats.
func intEdgePatterns(d builtins.IntDesc) []uint64 {
	ps := []uint64{0, 1, 2, 3, d.Max(), d.Max() - 1, d.Min(), d.Min() + 1, d.Mask()}
	for k := uint(20); k < d.Bits; k++ {
		b := uint64(1) << k
		ps = append(ps, b-1, b, b+1)
		for _, s := range []uint{24, 25, 53, 54} {
			ps = append(ps, b|b>>s, b|b>>(s-1)|b>>s, b|b>>s|1)
		}
	}
	n := len(ps)
	for _, p := range ps[:n] {
		ps = append(ps, -p&d.Mask())
	}
	return ps
}

var floatEdges = []float64{
	0, math.Copysign(0, -1), 0.5, -0.5, 0.999999, -0.999999, 1, -1, 1.5, -1.5,
	1 << 31, -(1 << 31), 1<<31 - 1, -(1<<31 + 1), 1 << 32, 1<<32 - 1, -(1 << 32),
	1 << 63, -(1 << 63), 1<<63 - 1024, -(1<<63 + 2048), 1 << 64, 1<<64 - 2048, -(1 << 64),
	math.MaxFloat32, -math.MaxFloat32, math.MaxFloat64, -math.MaxFloat64,
	math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	math.Inf(1), math.Inf(-1),
}

// floatInputs returns the edge values followed by n random non-NaN values,
// half uniform bit patterns and half scaled into the integer ranges.
func floatInputs[F builtins.Floats](rng *rand.Rand, n int) []F {
	out := make([]F, 0, len(floatEdges)+n)
	for _, e := range floatEdges {
		out = append(out, F(e))
	}
	for len(out) < len(floatEdges)+n {
		var v F
		if rng.IntN(2) == 0 {
			v = builtins.FloatFromBits[F](rng.Uint64())
		} else {
			v = F(math.Ldexp(rng.Float64()*2-1, rng.IntN(70)))
		}
		if v != v {
			continue // NaN is outside the domain
		}
		out = append(out, v)
	}
	return out
}

// spanLengths covers 0, 1, a word either side, every length from two to
// three words, and a few random longer spans.
func spanLengths(rng *rand.Rand, maxSpan int) []int {
	w := int(builtins.WordSize)
	ns := []int{0, 1, w - 1, w}
	for k := 0; k <= w; k++ {
		ns = append(ns, 2*w+k)
	}
	for range 8 {
		ns = append(ns, 3*w+rng.IntN(maxSpan-3*w+1))
	}
	return ns
}

// alignedBase returns the first offset into arena that is word aligned in
// memory.
func alignedBase(arena []byte) int {
	return int(-uintptr(unsafe.Pointer(&arena[0])) & (builtins.WordSize - 1))
}

// compareArena loads the same random contents into arena and the reference
// memory, applies both operations and reports whether the results agree.
func compareArena(ref *wasmref.Reference, rng *rand.Rand, arena []byte, apply func() error, local func()) (bool, error) {
	for i := range arena {
		arena[i] = byte(rng.Uint32())
	}
	if err := ref.Write(0, arena); err != nil {
		return false, err
	}
	if err := apply(); err != nil {
		return false, err
	}
	local()
	want, err := ref.Read(0, uint32(len(arena)))
	if err != nil {
		return false, err
	}
	return bytes.Equal(arena, want), nil
}

func checkMemmove(ctx context.Context, ref *wasmref.Reference, rng *rand.Rand, maxSpan int) (Result, error) {
	res := Result{Symbol: symbolMemmove}
	w := int(builtins.WordSize)
	arena := make([]byte, 2*maxSpan+2*arenaSlack)
	base := alignedBase(arena) + arenaSlack/2

	for _, n := range spanLengths(rng, maxSpan) {
		for srcAlign := range w {
			for dstAlign := range w {
				src := base + w + srcAlign
				layouts := []int{
					base + w + maxSpan + 2*w + dstAlign, // disjoint
					base + 2*w + dstAlign,               // overlapping, dst after src
					base + dstAlign,                     // overlapping, dst before src
				}
				for _, dst := range layouts {
					ok, err := compareArena(ref, rng, arena,
						func() error { return ref.Memmove(ctx, uint32(dst), uint32(src), uint32(n)) },
						func() {
							builtins.Memmove(unsafe.Pointer(&arena[dst]), unsafe.Pointer(&arena[src]), uintptr(n))
						})
					if err != nil {
						return res, err
					}
					res.Checked++
					if !ok {
						res.Mismatches++
						if res.FirstMismatch == "" {
							res.FirstMismatch = fmt.Sprintf("n=%d src=%d dst=%d", n, src, dst)
						}
					}
				}
			}
		}
	}
	return res, nil
}

func checkMemset(ctx context.Context, ref *wasmref.Reference, rng *rand.Rand, maxSpan int) (Result, error) {
	res := Result{Symbol: symbolMemset}
	w := int(builtins.WordSize)
	arena := make([]byte, maxSpan+2*arenaSlack)
	base := alignedBase(arena) + arenaSlack/2

	for _, n := range spanLengths(rng, maxSpan) {
		for align := range w {
			dst := base + align
			c := byte(rng.Uint32())
			ok, err := compareArena(ref, rng, arena,
				func() error { return ref.Memset(ctx, uint32(dst), c, uint32(n)) },
				func() { builtins.Memset(unsafe.Pointer(&arena[dst]), int32(c), uintptr(n)) })
			if err != nil {
				return res, err
			}
			res.Checked++
			if !ok {
				res.Mismatches++
				if res.FirstMismatch == "" {
					res.FirstMismatch = fmt.Sprintf("n=%d dst=%d c=%#x", n, dst, c)
				}
			}
		}
	}
	return res, nil
}
