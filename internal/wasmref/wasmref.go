// Package wasmref is a trusted reference for the routines in package
// builtins, used for differential testing.
//
// It assembles a small WebAssembly module whose exports are the native
// WebAssembly instructions with the same contracts: f32.convert_i32_s for
// __floatsisf, i64.trunc_sat_f64_u for __fixunsdfdi, memory.copy for
// memmove and memory.fill for memset. The module runs in wazero's
// interpreter, so the reference is independent of the host's conversion
// instructions.
//
// Inputs are exchanged as raw bit patterns in the low bits of a uint64,
// the same encoding wazero uses for its value stack.
package wasmref

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

const (
	// MemoryPages is the size of the reference linear memory in 64 KiB pages.
	MemoryPages = 1

	// MemorySize is the size of the reference linear memory in bytes.
	MemorySize = MemoryPages * 65536
)

var (
	// ErrOutOfBounds is returned for linear-memory accesses outside MemorySize.
	ErrOutOfBounds = errors.New("wasmref: access outside linear memory")

	// ErrUnknownSymbol is returned for symbols the module does not export.
	ErrUnknownSymbol = errors.New("wasmref: unknown symbol")
)

// Reference is an instantiated reference module. It is not safe for
// concurrent use.
type Reference struct {
	runtime wazero.Runtime
	module  api.Module
	funcs   map[string]api.Function
}

// New compiles and instantiates the reference module.
func New(ctx context.Context) (*Reference, error) {
	routines := make([]routine, 0, len(conversions)+len(memoryOps))
	routines = append(routines, conversions...)
	routines = append(routines, memoryOps...)
	bin := buildModule(routines)

	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	mod, err := rt.Instantiate(ctx, bin)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("instantiate reference module: %w", err)
	}

	r := &Reference{
		runtime: rt,
		module:  mod,
		funcs:   make(map[string]api.Function, len(routines)),
	}
	for _, rtn := range routines {
		fn := mod.ExportedFunction(rtn.name)
		if fn == nil {
			r.Close(ctx)
			return nil, fmt.Errorf("%w: %s not exported", ErrUnknownSymbol, rtn.name)
		}
		r.funcs[rtn.name] = fn
	}

	Logger().Debug("reference module ready",
		zap.Int("module_bytes", len(bin)),
		zap.Int("functions", len(r.funcs)))
	return r, nil
}

// Close releases the runtime and everything instantiated in it.
func (r *Reference) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}

// Symbols returns the conversion symbols the reference implements.
func Symbols() []string {
	names := make([]string, len(conversions))
	for i, c := range conversions {
		names[i] = c.name
	}
	return names
}

// Call runs the conversion exported as symbol on the bit pattern arg and
// returns the result's bit pattern.
func (r *Reference) Call(ctx context.Context, symbol string, arg uint64) (uint64, error) {
	fn, ok := r.funcs[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	res, err := fn.Call(ctx, arg)
	if err != nil {
		return 0, fmt.Errorf("call %s: %w", symbol, err)
	}
	return res[0], nil
}

// Memmove copies n bytes from src to dst inside the linear memory with
// memory.copy, which handles overlap in either direction.
func (r *Reference) Memmove(ctx context.Context, dst, src, n uint32) error {
	if err := checkRange(dst, n); err != nil {
		return err
	}
	if err := checkRange(src, n); err != nil {
		return err
	}
	_, err := r.funcs[exportMemmove].Call(ctx, api.EncodeU32(dst), api.EncodeU32(src), api.EncodeU32(n))
	if err != nil {
		return fmt.Errorf("memory.copy: %w", err)
	}
	return nil
}

// Memset fills n bytes at dst with c using memory.fill.
func (r *Reference) Memset(ctx context.Context, dst uint32, c byte, n uint32) error {
	if err := checkRange(dst, n); err != nil {
		return err
	}
	_, err := r.funcs[exportMemset].Call(ctx, api.EncodeU32(dst), api.EncodeU32(uint32(c)), api.EncodeU32(n))
	if err != nil {
		return fmt.Errorf("memory.fill: %w", err)
	}
	return nil
}

// Write copies data into the linear memory at offset.
func (r *Reference) Write(offset uint32, data []byte) error {
	if err := checkRange(offset, uint32(len(data))); err != nil {
		return err
	}
	if !r.module.Memory().Write(offset, data) {
		return fmt.Errorf("%w: write %d bytes at %d", ErrOutOfBounds, len(data), offset)
	}
	return nil
}

// Read returns a copy of n bytes of linear memory at offset.
func (r *Reference) Read(offset, n uint32) ([]byte, error) {
	if err := checkRange(offset, n); err != nil {
		return nil, err
	}
	view, ok := r.module.Memory().Read(offset, n)
	if !ok {
		return nil, fmt.Errorf("%w: read %d bytes at %d", ErrOutOfBounds, n, offset)
	}
	out := make([]byte, len(view))
	copy(out, view)
	return out, nil
}

func checkRange(offset, n uint32) error {
	if uint64(offset)+uint64(n) > MemorySize {
		return fmt.Errorf("%w: [%d, %d)", ErrOutOfBounds, offset, uint64(offset)+uint64(n))
	}
	return nil
}
