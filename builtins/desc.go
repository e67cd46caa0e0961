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
	"unsafe"
)

// IntDesc describes an integer type by bit width and signedness.
//
// Values described by an IntDesc are carried around as uint64 bit patterns:
// the low Bits bits hold the two's-complement representation and the upper
// bits are ignored.
type IntDesc struct {
	Bits   uint
	Signed bool
}

// IntDescOf returns the descriptor for the integer type I.
func IntDescOf[I Integers]() IntDesc {
	var zero I
	return IntDesc{
		Bits:   uint(unsafe.Sizeof(zero)) * 8,
		Signed: ^zero < 0,
	}
}

// Mask returns a mask covering the low Bits bits.
func (d IntDesc) Mask() uint64 {
	return ^uint64(0) >> (64 - d.Bits)
}

// Max returns the bit pattern of the largest value of the described type.
func (d IntDesc) Max() uint64 {
	if d.Signed {
		return d.Mask() >> 1
	}
	return d.Mask()
}

// Min returns the bit pattern of the smallest value of the described type.
func (d IntDesc) Min() uint64 {
	if d.Signed {
		return 1 << (d.Bits - 1)
	}
	return 0
}

// MagnitudeBits is the number of bits available to a non-negative value.
func (d IntDesc) MagnitudeBits() uint {
	if d.Signed {
		return d.Bits - 1
	}
	return d.Bits
}

// U64Low returns the low 32 bits of x.
func U64Low(x uint64) uint32 { return uint32(x) }

// U64High returns the high 32 bits of x.
func U64High(x uint64) uint32 { return uint32(x >> 32) }

// U64FromParts composes a uint64 from its halves.
func U64FromParts(lo, hi uint32) uint64 {
	return uint64(lo) | uint64(hi)<<32
}

// I64Low returns the low 32 bits of x. The low half of a signed value carries
// no sign and is always unsigned.
func I64Low(x int64) uint32 { return uint32(x) }

// I64High returns the high 32 bits of x, keeping the sign.
func I64High(x int64) int32 { return int32(x >> 32) }

// I64FromParts composes an int64 from an unsigned low half and a signed high half.
func I64FromParts(lo uint32, hi int32) int64 {
	return int64(lo) | int64(hi)<<32
}

// FloatDesc describes the bit-field layout of an IEEE 754 binary format.
//
// Format: Sign (1 bit) | Exponent (ExponentBits) | Significand (SignificandBits)
//
// Normal values carry an implicit leading significand bit that is not stored.
type FloatDesc struct {
	Bits            uint
	SignificandBits uint
	ExponentBits    uint
}

// FloatDescOf returns the descriptor for the float type F.
func FloatDescOf[F Floats]() FloatDesc {
	var zero F
	if unsafe.Sizeof(zero) == 4 {
		return FloatDesc{Bits: 32, SignificandBits: 23, ExponentBits: 8}
	}
	return FloatDesc{Bits: 64, SignificandBits: 52, ExponentBits: 11}
}

// MantDig is the number of significant bits including the implicit bit.
func (d FloatDesc) MantDig() uint { return d.SignificandBits + 1 }

// SignMask selects the sign bit.
func (d FloatDesc) SignMask() uint64 { return 1 << (d.Bits - 1) }

// SignificandMask selects the stored significand bits.
func (d FloatDesc) SignificandMask() uint64 { return d.ImplicitBit() - 1 }

// ImplicitBit is the leading significand bit of a normal value.
func (d FloatDesc) ImplicitBit() uint64 { return 1 << d.SignificandBits }

// ExponentMax is the biased exponent of infinities and NaNs.
func (d FloatDesc) ExponentMax() uint64 { return 1<<d.ExponentBits - 1 }

// ExponentMask selects the biased exponent field.
func (d FloatDesc) ExponentMask() uint64 { return d.ExponentMax() << d.SignificandBits }

// ExponentBias is the offset stored exponents carry.
func (d FloatDesc) ExponentBias() uint64 { return d.ExponentMax() >> 1 }

// FromParts composes a bit pattern from a sign, a biased exponent and a
// significand. Bits outside each field are discarded, so a significand that
// still carries its implicit bit is accepted.
func (d FloatDesc) FromParts(negative bool, exponent, significand uint64) uint64 {
	var sign uint64
	if negative {
		sign = d.SignMask()
	}
	return sign | (exponent<<d.SignificandBits)&d.ExponentMask() | significand&d.SignificandMask()
}

// Parts splits a bit pattern into sign, biased exponent and stored significand.
func (d FloatDesc) Parts(rep uint64) (negative bool, exponent, significand uint64) {
	negative = rep&d.SignMask() != 0
	exponent = (rep & d.ExponentMask()) >> d.SignificandBits
	significand = rep & d.SignificandMask()
	return negative, exponent, significand
}

// FloatBits returns the IEEE 754 bit pattern of f, zero-extended to 64 bits.
func FloatBits[F Floats](f F) uint64 {
	if unsafe.Sizeof(f) == 4 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(float64(f))
}

// FloatFromBits returns the float whose IEEE 754 bit pattern is rep.
func FloatFromBits[F Floats](rep uint64) F {
	var zero F
	if unsafe.Sizeof(zero) == 4 {
		return F(math.Float32frombits(uint32(rep)))
	}
	return F(math.Float64frombits(rep))
}
