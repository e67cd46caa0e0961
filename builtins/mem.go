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

import "unsafe"

const (
	// WordSize is the machine word size in bytes, the unit of the bulk phase
	// of every memory routine.
	WordSize = unsafe.Sizeof(uintptr(0))

	wordMask = WordSize - 1

	// Below this many bytes the routines copy byte by byte; alignment
	// analysis is not worth it.
	wordCopyThreshold = 2 * WordSize
)

// The routines below operate on raw addresses. Regions must be valid for
// the whole length and must not hold Go pointers: word-sized copies bypass
// the garbage collector's write barriers.

// CopyForward copies n bytes from src to dst in ascending address order.
// It is correct for disjoint regions and for overlapping regions with
// dst < src; any other overlap yields unspecified contents in dst.
func CopyForward(dst, src unsafe.Pointer, n uintptr) {
	copyForward(dst, src, n)
}

// CopyBackward copies n bytes from src to dst in descending address order.
// It is correct for disjoint regions and for overlapping regions with
// dst > src.
func CopyBackward(dst, src unsafe.Pointer, n uintptr) {
	copyBackward(dst, src, n)
}

// SetBytes stores c into the n bytes starting at dst.
func SetBytes(dst unsafe.Pointer, c byte, n uintptr) {
	setBytes(dst, c, n)
}

// Memcpy copies n bytes from src to dst and returns dst. The regions must
// not overlap unless dst < src.
func Memcpy(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	copyForward(dst, src, n)
	return dst
}

// Memmove copies n bytes from src to dst, handling any overlap, and
// returns dst.
func Memmove(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	// The wrapping difference is at least n exactly when a forward copy
	// never overwrites a source byte before reading it.
	if uintptr(dst)-uintptr(src) >= n {
		copyForward(dst, src, n)
	} else {
		copyBackward(dst, src, n)
	}
	return dst
}

// Memset stores the low byte of c into the n bytes starting at dst and
// returns dst.
func Memset(dst unsafe.Pointer, c int32, n uintptr) unsafe.Pointer {
	setBytes(dst, byte(c), n)
	return dst
}

// Memcmp compares n bytes at a and b. It returns the difference of the
// first mismatching pair as unsigned bytes, or 0 if the regions are equal.
func Memcmp(a, b unsafe.Pointer, n uintptr) int32 {
	for i := uintptr(0); i < n; i++ {
		x := *(*byte)(unsafe.Add(a, i))
		y := *(*byte)(unsafe.Add(b, i))
		if x != y {
			return int32(x) - int32(y)
		}
	}
	return 0
}

// Bcmp reports whether n bytes at a and b differ: 0 when equal, non-zero
// otherwise.
func Bcmp(a, b unsafe.Pointer, n uintptr) int32 {
	return Memcmp(a, b, n)
}

// Copy copies min(len(dst), len(src)) bytes from src to dst with memmove
// semantics and returns the number of bytes copied.
func Copy(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	Memmove(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), uintptr(n))
	return n
}

// Fill sets every byte of dst to c.
func Fill(dst []byte, c byte) {
	if len(dst) == 0 {
		return
	}
	setBytes(unsafe.Pointer(unsafe.SliceData(dst)), c, uintptr(len(dst)))
}
