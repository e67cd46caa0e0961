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

// This file holds the portable memory routines. Every helper works on byte
// offsets [from, to) relative to fixed base pointers, so no pointer past the
// end of a region is ever formed.
//
// Word reads of a misaligned source are aligned reads of the words that
// contain source bytes. They can touch up to WordSize-1 bytes outside the
// region but never a word, and so never a page, the region does not reach.

func loadWord(p unsafe.Pointer, off int) uintptr {
	return *(*uintptr)(unsafe.Add(p, off))
}

func storeWord(p unsafe.Pointer, off uintptr, w uintptr) {
	*(*uintptr)(unsafe.Add(p, off)) = w
}

func copyForwardBytes(dst, src unsafe.Pointer, from, to uintptr) {
	for i := from; i < to; i++ {
		*(*byte)(unsafe.Add(dst, i)) = *(*byte)(unsafe.Add(src, i))
	}
}

func copyForwardAlignedWords(dst, src unsafe.Pointer, from, to uintptr) {
	for i := from; i < to; i += WordSize {
		storeWord(dst, i, loadWord(src, int(i)))
	}
}

// copyForwardMisalignedWords rebuilds each destination word from the two
// aligned source words it straddles.
func copyForwardMisalignedWords(dst, src unsafe.Pointer, from, to uintptr) {
	offset := (uintptr(src) + from) & wordMask
	shift := uint(offset * 8)

	lo := loadWord(src, int(from)-int(offset))
	for i := from; i < to; i += WordSize {
		hi := loadWord(src, int(i)-int(offset)+int(WordSize))
		storeWord(dst, i, merge(lo, hi, shift))
		lo = hi
	}
}

func copyForwardGeneric(dst, src unsafe.Pointer, n uintptr) {
	var i uintptr
	if n >= wordCopyThreshold {
		// n >= 2*WordSize, so the prologue always fits.
		head := -uintptr(dst) & wordMask
		copyForwardBytes(dst, src, 0, head)

		words := (n - head) &^ wordMask
		if (uintptr(src)+head)&wordMask == 0 {
			copyForwardAlignedWords(dst, src, head, head+words)
		} else {
			copyForwardMisalignedWords(dst, src, head, head+words)
		}
		i = head + words
	}
	copyForwardBytes(dst, src, i, n)
}

func copyBackwardBytes(dst, src unsafe.Pointer, from, to uintptr) {
	for i := to; i > from; i-- {
		*(*byte)(unsafe.Add(dst, i-1)) = *(*byte)(unsafe.Add(src, i-1))
	}
}

func copyBackwardAlignedWords(dst, src unsafe.Pointer, from, to uintptr) {
	for i := to; i > from; i -= WordSize {
		storeWord(dst, i-WordSize, loadWord(src, int(i-WordSize)))
	}
}

func copyBackwardMisalignedWords(dst, src unsafe.Pointer, from, to uintptr) {
	offset := (uintptr(src) + to) & wordMask
	shift := uint(offset * 8)

	hi := loadWord(src, int(to)-int(offset))
	for i := to; i > from; i -= WordSize {
		lo := loadWord(src, int(i)-int(offset)-int(WordSize))
		storeWord(dst, i-WordSize, merge(lo, hi, shift))
		hi = lo
	}
}

func copyBackwardGeneric(dst, src unsafe.Pointer, n uintptr) {
	i := n
	if n >= wordCopyThreshold {
		tail := (uintptr(dst) + n) & wordMask
		copyBackwardBytes(dst, src, n-tail, n)
		i -= tail

		words := i &^ wordMask
		if (uintptr(src)+i)&wordMask == 0 {
			copyBackwardAlignedWords(dst, src, i-words, i)
		} else {
			copyBackwardMisalignedWords(dst, src, i-words, i)
		}
		i -= words
	}
	copyBackwardBytes(dst, src, 0, i)
}

func setBytesBytes(dst unsafe.Pointer, c byte, from, to uintptr) {
	for i := from; i < to; i++ {
		*(*byte)(unsafe.Add(dst, i)) = c
	}
}

func setBytesWords(dst unsafe.Pointer, c byte, from, to uintptr) {
	w := broadcast(c)
	for i := from; i < to; i += WordSize {
		storeWord(dst, i, w)
	}
}

func setBytesGeneric(dst unsafe.Pointer, c byte, n uintptr) {
	var i uintptr
	if n >= wordCopyThreshold {
		head := -uintptr(dst) & wordMask
		setBytesBytes(dst, c, 0, head)

		words := (n - head) &^ wordMask
		setBytesWords(dst, c, head, head+words)
		i = head + words
	}
	setBytesBytes(dst, c, i, n)
}

// broadcast repeats c in every byte of a word.
func broadcast(c byte) uintptr {
	return uintptr(c) * (^uintptr(0) / 0xFF)
}
