package wasmref

import (
	"context"
	"math"

	"github.com/ajroetker/go-builtins/builtins"
)

// Scalar is a constraint for the value types the reference converts.
type Scalar interface {
	builtins.Integers | builtins.Floats
}

// Convert runs the reference routine for symbol on v.
func Convert[S, D Scalar](ctx context.Context, r *Reference, symbol string, v S) (D, error) {
	out, err := r.Call(ctx, symbol, Bits(v))
	if err != nil {
		var zero D
		return zero, err
	}
	return FromBits[D](out), nil
}

// Bits encodes v the way the WebAssembly value stack holds it: the value's
// bit pattern, zero-extended to 64 bits.
func Bits[T Scalar](v T) uint64 {
	switch x := any(v).(type) {
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	default:
		return 0
	}
}

// FromBits decodes a value-stack slot into T.
func FromBits[T Scalar](b uint64) T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(int32(uint32(b))).(T)
	case int64:
		return any(int64(b)).(T)
	case uint32:
		return any(uint32(b)).(T)
	case uint64:
		return any(b).(T)
	case float32:
		return any(math.Float32frombits(uint32(b))).(T)
	case float64:
		return any(math.Float64frombits(b)).(T)
	default:
		return zero
	}
}
