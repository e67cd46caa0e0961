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
	"math/bits"
	"unsafe"
)

// ARM EABI run-time helpers. The 4 and 8 suffixed variants promise word or
// doubleword aligned arguments; they share one implementation with the
// unsuffixed entry point.

// AeabiMemcpy implements __aeabi_memcpy.
func AeabiMemcpy(dst, src unsafe.Pointer, n uintptr) { copyForward(dst, src, n) }

// AeabiMemcpy4 implements __aeabi_memcpy4.
func AeabiMemcpy4(dst, src unsafe.Pointer, n uintptr) { copyForward(dst, src, n) }

// AeabiMemcpy8 implements __aeabi_memcpy8.
func AeabiMemcpy8(dst, src unsafe.Pointer, n uintptr) { copyForward(dst, src, n) }

// AeabiMemmove implements __aeabi_memmove.
func AeabiMemmove(dst, src unsafe.Pointer, n uintptr) { Memmove(dst, src, n) }

// AeabiMemmove4 implements __aeabi_memmove4.
func AeabiMemmove4(dst, src unsafe.Pointer, n uintptr) { Memmove(dst, src, n) }

// AeabiMemmove8 implements __aeabi_memmove8.
func AeabiMemmove8(dst, src unsafe.Pointer, n uintptr) { Memmove(dst, src, n) }

// AeabiMemset implements __aeabi_memset. Note the argument order: the length
// comes before the fill value, unlike memset.
func AeabiMemset(dst unsafe.Pointer, n uintptr, c int32) { setBytes(dst, byte(c), n) }

// AeabiMemset4 implements __aeabi_memset4.
func AeabiMemset4(dst unsafe.Pointer, n uintptr, c int32) { setBytes(dst, byte(c), n) }

// AeabiMemset8 implements __aeabi_memset8.
func AeabiMemset8(dst unsafe.Pointer, n uintptr, c int32) { setBytes(dst, byte(c), n) }

// AeabiMemclr implements __aeabi_memclr.
func AeabiMemclr(dst unsafe.Pointer, n uintptr) { setBytes(dst, 0, n) }

// AeabiMemclr4 implements __aeabi_memclr4.
func AeabiMemclr4(dst unsafe.Pointer, n uintptr) { setBytes(dst, 0, n) }

// AeabiMemclr8 implements __aeabi_memclr8.
func AeabiMemclr8(dst unsafe.Pointer, n uintptr) { setBytes(dst, 0, n) }

// WordDivider is the word-divide and word-modulo capability that an ABI
// adapter exposes on top of the generic division routines.
type WordDivider[T ~uint32 | ~uint64] interface {
	Div(a, b T) T
	Mod(a, b T) T
	DivMod(a, b T) (quotient, remainder T)
}

// Udivmodsi4 returns a / b and, when rem is non-nil, stores a % b into it.
// Division by zero yields a quotient of 0 and a remainder of a.
func Udivmodsi4(a, b uint32, rem *uint32) uint32 {
	q, r := udivmod(a, b)
	if rem != nil {
		*rem = r
	}
	return q
}

// Udivmoddi4 is the 64-bit counterpart of Udivmodsi4.
func Udivmoddi4(a, b uint64, rem *uint64) uint64 {
	var q, r uint64
	if U64High(a) == 0 && U64High(b) == 0 {
		q32, r32 := udivmod(U64Low(a), U64Low(b))
		q, r = uint64(q32), uint64(r32)
	} else {
		q, r = udivmod(a, b)
	}
	if rem != nil {
		*rem = r
	}
	return q
}

// udivmod is restoring shift-subtract division.
func udivmod[T ~uint32 | ~uint64](a, b T) (q, r T) {
	if b == 0 || b > a {
		return 0, a
	}

	// Line the divisor's top bit up with the dividend's.
	sr := bits.Len64(uint64(a)) - bits.Len64(uint64(b))
	d := b << sr
	r = a
	for range sr + 1 {
		q <<= 1
		if r >= d {
			r -= d
			q |= 1
		}
		d >>= 1
	}
	return q, r
}

// EABIDivider32 adapts Udivmodsi4 to the pair-returning shape of
// __aeabi_uidivmod, which hands back the quotient in r0 and the remainder
// in r1.
type EABIDivider32 struct{}

// Div returns a / b.
func (EABIDivider32) Div(a, b uint32) uint32 { return Udivmodsi4(a, b, nil) }

// Mod returns a % b.
func (EABIDivider32) Mod(a, b uint32) uint32 {
	var r uint32
	Udivmodsi4(a, b, &r)
	return r
}

// DivMod returns a / b and a % b.
func (EABIDivider32) DivMod(a, b uint32) (quotient, remainder uint32) {
	quotient = Udivmodsi4(a, b, &remainder)
	return quotient, remainder
}

// EABIDivider64 adapts Udivmoddi4 the way __aeabi_uldivmod does, returning
// the quotient in r0:r1 and the remainder in r2:r3.
type EABIDivider64 struct{}

// Div returns a / b.
func (EABIDivider64) Div(a, b uint64) uint64 { return Udivmoddi4(a, b, nil) }

// Mod returns a % b.
func (EABIDivider64) Mod(a, b uint64) uint64 {
	var r uint64
	Udivmoddi4(a, b, &r)
	return r
}

// DivMod returns a / b and a % b.
func (EABIDivider64) DivMod(a, b uint64) (quotient, remainder uint64) {
	quotient = Udivmoddi4(a, b, &remainder)
	return quotient, remainder
}

var (
	_ WordDivider[uint32] = EABIDivider32{}
	_ WordDivider[uint64] = EABIDivider64{}
)

// AeabiUidivmod implements __aeabi_uidivmod.
func AeabiUidivmod(a, b uint32) (quotient, remainder uint32) {
	return EABIDivider32{}.DivMod(a, b)
}

// AeabiUldivmod implements __aeabi_uldivmod.
func AeabiUldivmod(a, b uint64) (quotient, remainder uint64) {
	return EABIDivider64{}.DivMod(a, b)
}

// AeabiUidiv implements __aeabi_uidiv.
func AeabiUidiv(a, b uint32) uint32 {
	return EABIDivider32{}.Div(a, b)
}
