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

package builtins

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

func TestIntToFloatExamples(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"sisf/max", float64(Floatsisf(math.MaxInt32)), 2147483648},
		{"sisf/min", float64(Floatsisf(math.MinInt32)), -2147483648},
		{"sisf/tie-down", float64(Floatsisf(1<<24 + 1)), 1 << 24},
		{"sisf/tie-up", float64(Floatsisf(1<<24 + 3)), 1<<24 + 4},
		{"sisf/above-tie", float64(Floatsisf(1<<25 + 3)), 1<<25 + 4},
		{"sisf/below-tie", float64(Floatsisf(1<<25 + 1)), 1 << 25},
		{"sisf/neg-tie", float64(Floatsisf(-(1<<24 + 3))), -(1<<24 + 4)},
		{"sidf/exact", Floatsidf(math.MinInt32 + 1), math.MinInt32 + 1},
		{"disf/min", float64(Floatdisf(math.MinInt64)), -(1 << 63)},
		{"didf/max", Floatdidf(math.MaxInt64), 1 << 63},
		{"didf/tie-down", Floatdidf(1<<53 + 1), 1 << 53},
		{"didf/tie-up", Floatdidf(1<<53 + 3), 1<<53 + 4},
		{"didf/sticky", Floatdidf(1<<62 + 1<<9 + 1), 1<<62 + 1<<10},
		{"unsisf/max", float64(Floatunsisf(math.MaxUint32)), 1 << 32},
		{"unsidf/max", Floatunsidf(math.MaxUint32), math.MaxUint32},
		{"undisf/max", float64(Floatundisf(math.MaxUint64)), 1 << 64},
		{"undidf/max", Floatundidf(math.MaxUint64), 1 << 64},
		{"undidf/top-bit", Floatundidf(1<<63 + 1<<10 + 1), 1<<63 + 1<<11},
		{"undidf/top-bit-tie", Floatundidf(1<<63 + 1<<10), 1 << 63},
		{"sisf/small", float64(Floatsisf(-7)), -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestIntToFloatZero(t *testing.T) {
	if b := math.Float32bits(Floatsisf(0)); b != 0 {
		t.Errorf("Floatsisf(0) bits: got %#x, want +0", b)
	}
	if b := math.Float64bits(Floatundidf(0)); b != 0 {
		t.Errorf("Floatundidf(0) bits: got %#x, want +0", b)
	}
}

func TestFloatToIntExamples(t *testing.T) {
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"sfsi/trunc", int64(Fixsfsi(-3.75)), -3},
		{"sfsi/below-one", int64(Fixsfsi(0.999)), 0},
		{"sfsi/neg-below-one", int64(Fixsfsi(-0.999)), 0},
		{"sfsi/saturate-high", int64(Fixsfsi(1e10)), math.MaxInt32},
		{"sfsi/saturate-low", int64(Fixsfsi(-1e10)), math.MinInt32},
		{"sfsi/min-exact", int64(Fixsfsi(-2147483648)), math.MinInt32},
		{"sfsi/pow31", int64(Fixsfsi(2147483648)), math.MaxInt32},
		{"sfsi/inf", int64(Fixsfsi(float32(math.Inf(1)))), math.MaxInt32},
		{"sfsi/neg-inf", int64(Fixsfsi(float32(math.Inf(-1)))), math.MinInt32},
		{"dfsi/largest", int64(Fixdfsi(2147483647.9)), math.MaxInt32},
		{"dfsi/denormal", int64(Fixdfsi(math.SmallestNonzeroFloat64)), 0},
		{"dfdi/trunc", Fixdfdi(-123456789012.9), -123456789012},
		{"dfdi/largest", Fixdfdi(1<<63 - 1024), 1<<63 - 1024},
		{"dfdi/pow63", Fixdfdi(1 << 63), math.MaxInt64},
		{"dfdi/min", Fixdfdi(-(1 << 63)), math.MinInt64},
		{"sfdi/big", Fixsfdi(1 << 40), 1 << 40},
		{"unssfsi/largest", int64(Fixunssfsi(4294967040)), 4294967040},
		{"unssfsi/negative", int64(Fixunssfsi(-1)), 0},
		{"unsdfsi/negative", int64(Fixunsdfsi(-3.7)), 0},
		{"unsdfsi/saturate", int64(Fixunsdfsi(1e20)), math.MaxUint32},
		{"unsdfsi/pow31", int64(Fixunsdfsi(1 << 31)), 1 << 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestFloatToUint64(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"unsdfdi/top-bit", Fixunsdfdi(1 << 63), 1 << 63},
		{"unsdfdi/largest", Fixunsdfdi(1<<64 - 2048), 1<<64 - 2048},
		{"unsdfdi/saturate", Fixunsdfdi(1 << 64), math.MaxUint64},
		{"unsdfdi/inf", Fixunsdfdi(math.Inf(1)), math.MaxUint64},
		{"unsdfdi/neg-inf", Fixunsdfdi(math.Inf(-1)), 0},
		{"unssfdi/largest", Fixunssfdi(1<<64 - 1<<40), 1<<64 - 1<<40},
		{"unssfdi/neg-zero", Fixunssfdi(float32(math.Copysign(0, -1))), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

// bigRound rounds v to the nearest F with math/big, ties to even.
func bigRound[F Floats](v *big.Int) F {
	f := new(big.Float).SetInt(v)
	if FloatDescOf[F]().Bits == 32 {
		r, _ := f.Float32()
		return F(r)
	}
	r, _ := f.Float64()
	return F(r)
}

// randomInt draws values of every magnitude, with extra weight on patterns
// that land exactly on a rounding tie.
func randomInt[I Integers](rng *rand.Rand) I {
	v := rng.Uint64() >> rng.IntN(64)
	if rng.IntN(4) == 0 {
		k := 25 + rng.IntN(39)
		v = v>>k<<k | 1<<(k-25)
	}
	if rng.IntN(2) == 0 {
		v = -v
	}
	return I(v)
}

func checkIntToFloat[I Integers, F Floats](t *testing.T, name string, fn func(I) F) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		for range 20000 {
			i := randomInt[I](rng)
			got := fn(i)

			// Go conversions round to nearest even.
			if want := F(i); FloatBits(got) != FloatBits(want) {
				t.Fatalf("%v: got %v, want %v", i, got, want)
			}

			var b big.Int
			if IntDescOf[I]().Signed {
				b.SetInt64(int64(i))
			} else {
				b.SetUint64(uint64(i))
			}
			if want := bigRound[F](&b); FloatBits(got) != FloatBits(want) {
				t.Fatalf("%v: got %v, math/big says %v", i, got, want)
			}
		}
	})
}

func TestIntToFloatRandom(t *testing.T) {
	checkIntToFloat(t, "sisf", Floatsisf)
	checkIntToFloat(t, "sidf", Floatsidf)
	checkIntToFloat(t, "disf", Floatdisf)
	checkIntToFloat(t, "didf", Floatdidf)
	checkIntToFloat(t, "unsisf", Floatunsisf)
	checkIntToFloat(t, "unsidf", Floatunsidf)
	checkIntToFloat(t, "undisf", Floatundisf)
	checkIntToFloat(t, "undidf", Floatundidf)
}

// inRange reports whether the truncation of f is representable in I, so a
// native Go conversion is well defined.
func inRange[F Floats, I Integers](f F) bool {
	d := IntDescOf[I]()
	lo := -math.Ldexp(1, int(d.MagnitudeBits()))
	if !d.Signed {
		lo = 0
	}
	hi := math.Ldexp(1, int(d.MagnitudeBits()))
	x := math.Trunc(float64(f))
	return x >= lo && x < hi
}

func checkFloatToInt[F Floats, I Integers](t *testing.T, name string, fn func(F) I) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 4))
		checked := 0
		for range 20000 {
			f := F(math.Ldexp(rng.Float64()*2-1, rng.IntN(66)))
			got := fn(f)
			if !inRange[F, I](f) {
				d := IntDescOf[I]()
				want := I(d.Max())
				if f < 0 {
					want = I(d.Min())
				}
				if got != want {
					t.Fatalf("%v: got %v, want saturated %v", f, got, want)
				}
				continue
			}
			if want := I(f); got != want {
				t.Fatalf("%v: got %v, want %v", f, got, want)
			}
			checked++
		}
		if checked == 0 {
			t.Fatal("no in-range inputs generated")
		}
	})
}

func TestFloatToIntRandom(t *testing.T) {
	checkFloatToInt(t, "sfsi", Fixsfsi)
	checkFloatToInt(t, "sfdi", Fixsfdi)
	checkFloatToInt(t, "unssfsi", Fixunssfsi)
	checkFloatToInt(t, "unssfdi", Fixunssfdi)
	checkFloatToInt(t, "dfsi", Fixdfsi)
	checkFloatToInt(t, "dfdi", Fixdfdi)
	checkFloatToInt(t, "unsdfsi", Fixunsdfsi)
	checkFloatToInt(t, "unsdfdi", Fixunsdfdi)
}

// Every int32 survives a round trip through float64.
func TestRoundTripInt32(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 10000 {
		i := int32(rng.Uint32())
		if got := Fixdfsi(Floatsidf(i)); got != i {
			t.Fatalf("Fixdfsi(Floatsidf(%d)) = %d", i, got)
		}
		u := rng.Uint32()
		if got := Fixunsdfsi(Floatunsidf(u)); got != u {
			t.Fatalf("Fixunsdfsi(Floatunsidf(%d)) = %d", u, got)
		}
	}
}

func TestIntrinsics(t *testing.T) {
	seen := map[string]bool{}
	var toFloat, toInt int
	for in := range Intrinsics() {
		if seen[in.Symbol] {
			t.Errorf("duplicate symbol %s", in.Symbol)
		}
		seen[in.Symbol] = true
		switch in.Kind {
		case KindIntToFloat:
			toFloat++
		case KindFloatToInt:
			toInt++
		}
		if in.Fn == nil {
			t.Errorf("%s: nil Fn", in.Symbol)
		}
	}
	if toFloat != 8 || toInt != 8 {
		t.Errorf("got %d int->float and %d float->int routines, want 8 each", toFloat, toInt)
	}

	in, ok := LookupIntrinsic("__fixdfsi")
	if !ok {
		t.Fatal("LookupIntrinsic(__fixdfsi) not found")
	}
	fn, ok := in.Fn.(func(float64) int32)
	if !ok {
		t.Fatalf("__fixdfsi has type %T", in.Fn)
	}
	if fn(-2.5) != -2 {
		t.Errorf("__fixdfsi(-2.5): got %d", fn(-2.5))
	}
	if _, ok := LookupIntrinsic("__nosuch"); ok {
		t.Error("LookupIntrinsic found an unknown symbol")
	}
}

func TestIntrinsicsStopEarly(t *testing.T) {
	n := 0
	for range Intrinsics() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times after break", n)
	}
}
