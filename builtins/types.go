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

// Package builtins provides freestanding software implementations of the
// numeric and memory routines that compiled code expects from a runtime
// support library.
//
// It covers two engines:
//
//   - Correctly rounded conversion between 32/64-bit integers and IEEE 754
//     binary32/binary64 floats (the __floatsisf / __fixdfdi family).
//   - Block memory primitives (forward copy, overlap-safe backward copy,
//     fill) with an alignment-aware generic path and an architecture fast
//     path chosen at build time.
//
// Every routine is a total, allocation-free, re-entrant function of its
// arguments. Nothing here reports errors: out-of-range conversions saturate
// and misuse of the overlap contract is the caller's obligation.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-builtins/builtins"
//
//	f := builtins.Floatsisf(math.MaxInt32) // 2147483648.0
//	i := builtins.Fixunsdfsi(-1.0)         // 0
//
//	builtins.Copy(dst, src)                // memmove semantics
//	builtins.Fill(buf, 0xAB)
package builtins

// Floats is a constraint for the binary floating-point formats the
// conversion engine supports.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types with a supported width.
type SignedInts interface {
	~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types with a supported width.
type UnsignedInts interface {
	~uint32 | ~uint64
}

// Integers is a constraint for all integer types the conversion engine supports.
type Integers interface {
	SignedInts | UnsignedInts
}
