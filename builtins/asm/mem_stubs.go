//go:build !amd64 || noasm

package asm

import "unsafe"

// Stub implementations for non-amd64 or noasm builds.
// These should never be called - package builtins uses the generic routines.

func CopyForward(dst, src unsafe.Pointer, n uintptr)  { panic("REP MOVS not available") }
func CopyBackward(dst, src unsafe.Pointer, n uintptr) { panic("REP MOVS not available") }
func SetBytes(dst unsafe.Pointer, c byte, n uintptr)  { panic("REP STOS not available") }
