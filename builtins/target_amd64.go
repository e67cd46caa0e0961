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

//go:build amd64 && !noasm

package builtins

import (
	"unsafe"

	"github.com/ajroetker/go-builtins/builtins/asm"
)

const currentTarget = TargetAMD64RepMovs

func copyForward(dst, src unsafe.Pointer, n uintptr) {
	asm.CopyForward(dst, src, n)
}

func copyBackward(dst, src unsafe.Pointer, n uintptr) {
	asm.CopyBackward(dst, src, n)
}

func setBytes(dst unsafe.Pointer, c byte, n uintptr) {
	asm.SetBytes(dst, c, n)
}
