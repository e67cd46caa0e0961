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
	"iter"
	"math/bits"
)

//go:generate go run ../cmd/rtgen -output conv_gen.go

// Kind distinguishes the two conversion directions.
type Kind int

const (
	// KindIntToFloat converts an integer to a float, rounding to nearest even.
	KindIntToFloat Kind = iota

	// KindFloatToInt converts a float to an integer, truncating and saturating.
	KindFloatToInt
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindIntToFloat:
		return "int->float"
	case KindFloatToInt:
		return "float->int"
	default:
		return "unknown"
	}
}

// Intrinsic describes one named conversion routine.
//
// Fn holds the routine itself with its concrete signature, for example
// func(int32) float32 for __floatsisf.
type Intrinsic struct {
	Name   string
	Symbol string
	Kind   Kind
	Src    string
	Dst    string
	Fn     any
}

// Intrinsics iterates over every named conversion routine, integer-to-float
// routines first.
func Intrinsics() iter.Seq[Intrinsic] {
	return func(yield func(Intrinsic) bool) {
		for _, in := range intrinsics {
			if !yield(in) {
				return
			}
		}
	}
}

// LookupIntrinsic returns the routine exported under symbol, e.g. "__fixdfsi".
func LookupIntrinsic(symbol string) (Intrinsic, bool) {
	for _, in := range intrinsics {
		if in.Symbol == symbol {
			return in, true
		}
	}
	return Intrinsic{}, false
}

// IntToFloat converts i to the nearest value of F, breaking exact ties
// toward an even significand. Zero maps to +0 for every source type.
func IntToFloat[I Integers, F Floats](i I) F {
	if i == 0 {
		return 0
	}

	id := IntDescOf[I]()
	fd := FloatDescOf[F]()
	mantDig := fd.MantDig()

	negative := i < 0
	a := uint64(i) & id.Mask()
	if negative {
		a = -a & id.Mask()
	}

	// number of significant bits
	sd := id.Bits - (uint(bits.LeadingZeros64(a)) - (64 - id.Bits))
	e := uint64(sd - 1)

	if id.Bits < mantDig {
		return FloatFromBits[F](fd.FromParts(negative, e+fd.ExponentBias(), a<<(mantDig-sd)))
	}

	if sd > mantDig {
		// start:  0000000000000000000001xxxxxxxxxxxxxxxxxxxxxxPQxxxxxxxxxxxxxxxxxx
		// finish: 000000000000000000000000000000000000001xxxxxxxxxxxxxxxxxxxxxxPQR
		//
		// P is the lowest bit kept, Q the first bit dropped and R the OR of
		// every bit below Q.
		switch sd {
		case mantDig + 1:
			a <<= 1
		case mantDig + 2:
		default:
			drop := sd - (mantDig + 2)
			var sticky uint64
			if a&(1<<drop-1) != 0 {
				sticky = 1
			}
			a = a>>drop | sticky
		}

		if a&4 != 0 {
			a |= 1 // P into R
		}
		a++ // may add a significant bit
		a >>= 2

		if a&(1<<mantDig) != 0 {
			a >>= 1
			e++
		}
	} else {
		a <<= mantDig - sd
	}

	return FloatFromBits[F](fd.FromParts(negative, e+fd.ExponentBias(), a))
}

// FloatToInt converts f to I, truncating toward zero.
//
// Values with magnitude below one convert to 0, as do negative values when I
// is unsigned. Values beyond the range of I, including infinities, saturate
// to the maximum or minimum of I. NaN is outside the domain: the result is
// unspecified and callers must exclude it.
func FloatToInt[F Floats, I Integers](f F) I {
	id := IntDescOf[I]()
	fd := FloatDescOf[F]()

	negative, exponent, significand := fd.Parts(FloatBits(f))
	significand |= fd.ImplicitBit()

	bias := fd.ExponentBias()
	if exponent < bias || (negative && !id.Signed) {
		return 0
	}

	e := uint(exponent - bias)
	if e >= id.MagnitudeBits() {
		if negative {
			return I(id.Min())
		}
		return I(id.Max())
	}

	var r uint64
	if e < fd.SignificandBits {
		r = significand >> (fd.SignificandBits - e)
	} else {
		r = significand << (e - fd.SignificandBits)
	}

	if negative {
		r = -r
	}
	return I(r)
}
