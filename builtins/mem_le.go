//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package builtins

// merge returns the word that starts shift/8 bytes into lo and continues
// into hi, where lo is the aligned word at the lower address.
func merge(lo, hi uintptr, shift uint) uintptr {
	return lo>>shift | hi<<(uint(WordSize*8)-shift)
}
