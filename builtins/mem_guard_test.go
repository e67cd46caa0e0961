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

//go:build linux || darwin

package builtins

import (
	"bytes"
	"runtime/debug"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

// guardedPage maps three pages and revokes access to the outer two, so any
// access outside the middle page faults.
func guardedPage(t *testing.T) []byte {
	t.Helper()
	ps := unix.Getpagesize()
	mem, err := unix.Mmap(-1, 0, 3*ps, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		t.Skipf("mmap: %v", err)
	}
	t.Cleanup(func() { _ = unix.Munmap(mem) })

	if err := unix.Mprotect(mem[:ps], unix.PROT_NONE); err != nil {
		t.Fatalf("mprotect: %v", err)
	}
	if err := unix.Mprotect(mem[2*ps:], unix.PROT_NONE); err != nil {
		t.Fatalf("mprotect: %v", err)
	}
	return mem[ps : 2*ps]
}

// noFault runs fn, turning a memory fault into a test failure.
func noFault(t *testing.T, name string, fn func()) {
	t.Helper()
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("%s: fault outside the region: %v", name, r)
		}
	}()
	fn()
}

func TestCopyStaysInsideRegion(t *testing.T) {
	page := guardedPage(t)
	ps := len(page)
	base := unsafe.Pointer(unsafe.SliceData(page))
	at := func(off int) unsafe.Pointer { return unsafe.Add(base, off) }

	w := int(WordSize)
	for n := 2 * w; n <= 6*w; n++ {
		for dstAlign := range w {
			// source flush against the upper guard
			src := ps - n
			dst := 64 + dstAlign
			pattern(page)
			want := bytes.Clone(page)
			copy(want[dst:dst+n], want[src:src+n])
			noFault(t, "forward from page end", func() { CopyForward(at(dst), at(src), uintptr(n)) })
			if !bytes.Equal(want, page) {
				t.Fatalf("forward from page end n=%d dst=%d: wrong contents", n, dst)
			}

			pattern(page)
			want = bytes.Clone(page)
			copy(want[dst:dst+n], want[src:src+n])
			noFault(t, "backward from page end", func() { CopyBackward(at(dst), at(src), uintptr(n)) })
			if !bytes.Equal(want, page) {
				t.Fatalf("backward from page end n=%d dst=%d: wrong contents", n, dst)
			}

			// source flush against the lower guard
			src = 0
			dst = ps - 64 - n - dstAlign
			pattern(page)
			want = bytes.Clone(page)
			copy(want[dst:dst+n], want[src:src+n])
			noFault(t, "forward from page start", func() { CopyForward(at(dst), at(src), uintptr(n)) })
			if !bytes.Equal(want, page) {
				t.Fatalf("forward from page start n=%d dst=%d: wrong contents", n, dst)
			}

			pattern(page)
			want = bytes.Clone(page)
			copy(want[dst:dst+n], want[src:src+n])
			noFault(t, "backward from page start", func() { CopyBackward(at(dst), at(src), uintptr(n)) })
			if !bytes.Equal(want, page) {
				t.Fatalf("backward from page start n=%d dst=%d: wrong contents", n, dst)
			}
		}
	}

	noFault(t, "whole page", func() {
		Memset(base, 0x11, uintptr(ps))
		Memmove(at(1), base, uintptr(ps-1))
		Memmove(base, at(1), uintptr(ps-1))
	})
}
