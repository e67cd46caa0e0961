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

package wasmref

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReference(t *testing.T) *Reference {
	t.Helper()
	ctx := context.Background()
	r, err := New(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close(ctx) })
	return r
}

func TestEncodeULEB128(t *testing.T) {
	assert.Equal(t, []byte{0x00}, encodeULEB128(0))
	assert.Equal(t, []byte{0x7f}, encodeULEB128(127))
	assert.Equal(t, []byte{0x80, 0x01}, encodeULEB128(128))
	assert.Equal(t, []byte{0xe5, 0x8e, 0x26}, encodeULEB128(624485))
}

func TestBuildModuleHeader(t *testing.T) {
	bin := buildModule(conversions)
	require.GreaterOrEqual(t, len(bin), 8)
	assert.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, bin[:8])
}

func TestSymbols(t *testing.T) {
	syms := Symbols()
	assert.Len(t, syms, 16)
	assert.Contains(t, syms, "__floatsisf")
	assert.Contains(t, syms, "__fixunsdfdi")
}

func TestConversions(t *testing.T) {
	ctx := context.Background()
	r := newReference(t)

	f32, err := Convert[int32, float32](ctx, r, "__floatsisf", math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, float32(2147483648), f32)

	f64, err := Convert[uint64, float64](ctx, r, "__floatundidf", math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, float64(1<<64), f64)

	i32, err := Convert[float64, int32](ctx, r, "__fixdfsi", -1e12)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), i32)

	u32, err := Convert[float32, uint32](ctx, r, "__fixunssfsi", -5)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), u32)

	i64, err := Convert[float32, int64](ctx, r, "__fixsfdi", -2.75)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), i64)
}

func TestUnknownSymbol(t *testing.T) {
	r := newReference(t)
	_, err := r.Call(context.Background(), "__nosuch", 0)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	r := newReference(t)

	require.NoError(t, r.Write(100, []byte("abcdefgh")))
	require.NoError(t, r.Memmove(ctx, 102, 100, 6))
	got, err := r.Read(100, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte("ababcdef"), got)

	require.NoError(t, r.Memset(ctx, 101, 'z', 3))
	got, err = r.Read(100, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte("azzzcdef"), got)

	// Read returns a copy
	got[0] = 'Q'
	again, err := r.Read(100, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), again)
}

func TestOutOfBounds(t *testing.T) {
	ctx := context.Background()
	r := newReference(t)

	assert.ErrorIs(t, r.Write(MemorySize-2, []byte("abc")), ErrOutOfBounds)
	_, err := r.Read(MemorySize, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, r.Memmove(ctx, 0, MemorySize-1, 2), ErrOutOfBounds)
	assert.ErrorIs(t, r.Memset(ctx, MemorySize-1, 0, 2), ErrOutOfBounds)
	assert.NoError(t, r.Memset(ctx, MemorySize-1, 0, 1))
}

func TestBits(t *testing.T) {
	assert.Equal(t, uint64(0xffffffff), Bits(int32(-1)))
	assert.Equal(t, uint64(0x3f800000), Bits(float32(1)))
	assert.Equal(t, int32(-1), FromBits[int32](0xffffffff))
	assert.Equal(t, 2.5, FromBits[float64](Bits(2.5)))
}
