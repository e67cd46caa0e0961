//go:build !amd64 || noasm

package builtins

import "unsafe"

const currentTarget = TargetGeneric

func copyForward(dst, src unsafe.Pointer, n uintptr) {
	copyForwardGeneric(dst, src, n)
}

func copyBackward(dst, src unsafe.Pointer, n uintptr) {
	copyBackwardGeneric(dst, src, n)
}

func setBytes(dst unsafe.Pointer, c byte, n uintptr) {
	setBytesGeneric(dst, c, n)
}
