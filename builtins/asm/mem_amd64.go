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

//go:build !noasm && amd64

package asm

import "unsafe"

// CopyForward copies n bytes from src to dst in ascending address order.
//
//go:noescape
func CopyForward(dst, src unsafe.Pointer, n uintptr)

// CopyBackward copies n bytes from src to dst in descending address order,
// with the direction flag set for the duration of the copy.
//
//go:noescape
func CopyBackward(dst, src unsafe.Pointer, n uintptr)

// SetBytes stores c into the n bytes starting at dst.
//
//go:noescape
func SetBytes(dst unsafe.Pointer, c byte, n uintptr)
