package emitter

import (
	"errors"
	"math"
	"testing"

	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignReduce(t *testing.T) {
	tests := []struct {
		v     int64
		width int
		want  int64
	}{
		{0x7FF, 12, 0x7FF},
		{0x800, 12, -2048},
		{0xFFF, 12, -1},
		{-2048, 12, -2048},
		{0x1F, 6, -1},
		{0x7FFFFFFF, 32, 0x7FFFFFFF},
		{0x80000000, 32, math.MinInt32},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SignReduce64(tc.v, tc.width), "%#x/%d", tc.v, tc.width)
	}
	assert.Equal(t, int32(-32), SignReduce32(0x20, 6))
	assert.Equal(t, int32(31), SignReduce32(31, 6))

	assert.True(t, FitsSigned(2047, 12))
	assert.False(t, FitsSigned(2048, 12))
	assert.True(t, FitsSigned(-2048, 12))
	assert.False(t, FitsSigned(-2049, 12))
	assert.True(t, FitsUnsigned(31, 5))
	assert.False(t, FitsUnsigned(32, 5))
	assert.True(t, FitsUnsigned(math.MaxUint64, 64))
}

func TestBitSlices(t *testing.T) {
	assert.Equal(t, uint32(1), Bit(0x800, 11))
	assert.Equal(t, uint32(0x3F), Bits(0xFC0, 6, 6))
	assert.Equal(t, uint32(0xFFFFFFFF), Bits(-1, 0, 32))
	assert.Equal(t, uint32(1), Bits(-1, 63, 1))
}

type myInt int16

func TestImmFromValue(t *testing.T) {
	assert.Equal(t, int64(-1), ImmFromValue(int8(-1)))
	assert.Equal(t, int64(0xFF), ImmFromValue(uint8(0xFF)))
	assert.Equal(t, int64(0xFFFFFFFF), ImmFromValue(uint32(0xFFFFFFFF)))
	assert.Equal(t, int64(-1), ImmFromValue(uint64(math.MaxUint64)))
	assert.Equal(t, int64(-5), ImmFromValue(myInt(-5)))
	assert.Equal(t, int64(0x3F800000), ImmFromValue(float32(1.0)))
	assert.Equal(t, int64(0x3FF0000000000000), ImmFromValue(1.0))
	assert.Equal(t, int64(math.Float64bits(-2.5)), ImmFromValue(-2.5))
}

func TestCursorWrites(t *testing.T) {
	r := NewSliceRegion(0x10000, 64)
	var c Cursor
	c.Init(r)
	assert.Equal(t, uintptr(0x10000), c.CodePointer())

	c.Write32(0x00a50513)
	c.Write16(0x0505)
	c.Write8(0x7f)
	assert.Equal(t, uintptr(0x10007), c.CodePointer())
	assert.Equal(t, 7, c.Offset())
	assert.Equal(t, []byte{0x13, 0x05, 0xa5, 0x00, 0x05, 0x05, 0x7f}, c.Code())
	assert.Equal(t, uint32(0x00a50513), c.Word32At(0x10000))
	assert.Equal(t, uint16(0x0505), c.Word16At(0x10004))

	c.PatchWord32(0x10000, 0xdeadbeef)
	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, r.Buf[:4])
	c.PatchWord16(0x10004, 0x1234)
	assert.Equal(t, uint16(0x1234), c.Word16At(0x10004))

	aligned := c.Align(16, func(n int) {
		for i := 0; i < n; i++ {
			c.Write8(0)
		}
	})
	assert.Equal(t, uintptr(0x10010), aligned)
	assert.Equal(t, uintptr(0x10010), c.Align(16, func(int) { t.Fatal("already aligned") }))

	c.Flush()
	c.Flush()
	require.Len(t, r.Flushes, 1)
	assert.Equal(t, FlushRange{0x10000, 0x10010}, r.Flushes[0])

	c.SetCodePointer(0x10020)
	assert.Equal(t, 0x20, c.WritableOffset(c.CodePointer()))
	assert.Equal(t, uintptr(0x10020), c.CodePtrFromWritableOffset(0x20))

	err := jiterrors.Catch(func() { c.SetCodePointer(0x20000) })
	assert.True(t, errors.Is(err, jiterrors.ErrEOperandConstraint))
}

type recordingTracer struct {
	emitted, patched int
	flushes          []FlushRange
}

func (r *recordingTracer) Emitted(uintptr, int, uint32) { r.emitted++ }
func (r *recordingTracer) Patched(uintptr, int, uint32) { r.patched++ }
func (r *recordingTracer) Flushed(s, e uintptr)         { r.flushes = append(r.flushes, FlushRange{s, e}) }

func TestCursorTracer(t *testing.T) {
	var c Cursor
	c.Init(NewSliceRegion(0x4000, 16))
	tr := &recordingTracer{}
	c.SetTracer(tr)
	c.Write32(1)
	c.Write16(2)
	c.PatchWord32(0x4000, 3)
	c.Flush()
	assert.Equal(t, 2, tr.emitted)
	assert.Equal(t, 1, tr.patched)
	assert.Equal(t, []FlushRange{{0x4000, 0x4006}}, tr.flushes)
}

var testKinds = []BranchKind{
	{Name: "B", Width: 13, Align: 2},
	{Name: "J", Width: 21, Align: 2},
}

func TestBranchKindDisplacement(t *testing.T) {
	b := testKinds[0]
	assert.Equal(t, int64(4094), b.Displacement("beq", 0x1000, 0x1000+4094, 2))
	assert.Equal(t, int64(-4096), b.Displacement("beq", 0x2000, 0x1000, 2))

	err := jiterrors.Catch(func() { b.Displacement("beq", 0x1000, 0x1000+4096, 2) })
	assert.True(t, errors.Is(err, jiterrors.ErrRBranchRange))
	err = jiterrors.Catch(func() { b.Displacement("beq", 0x1000, 0x1003, 1) })
	assert.True(t, errors.Is(err, jiterrors.ErrRBranchAlign))
	err = jiterrors.Catch(func() { b.Displacement("beq", 0x1000, 0x1002, 4) })
	assert.True(t, errors.Is(err, jiterrors.ErrRBranchAlign))
}

func TestFixupLifecycle(t *testing.T) {
	f := NewFixups(testKinds)
	a := f.Open(0x1010, 0)
	b := f.Open(0x1000, 1)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []FixupBranch{b, a}, f.Pending())

	err := f.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, jiterrors.ErrFFixupUnresolved))
	assert.Contains(t, err.Error(), "J@0x1000 B@0x1010")

	assert.Equal(t, int64(0x20), f.Resolve("beq", a, 0x1030, 2))
	assert.False(t, f.IsPending(a))

	err = jiterrors.Catch(func() { f.Resolve("beq", a, 0x1030, 2) })
	assert.True(t, errors.Is(err, jiterrors.ErrFFixupResolved))

	// An out-of-range target leaves the site pending.
	err = jiterrors.Catch(func() { f.Resolve("jal", b, 0x1000+(1<<20), 2) })
	assert.True(t, errors.Is(err, jiterrors.ErrRBranchRange))
	assert.True(t, f.IsPending(b))

	f.Discard(b)
	assert.NoError(t, f.Check())
	err = jiterrors.Catch(func() { f.Discard(b) })
	assert.True(t, errors.Is(err, jiterrors.ErrFFixupResolved))

	opened, resolved := f.Stats()
	assert.Equal(t, 2, opened)
	assert.Equal(t, 1, resolved)
}

func TestFixupOverwrittenSite(t *testing.T) {
	f := NewFixups(testKinds)
	first := f.Open(0x1000, 0)

	err := jiterrors.Catch(func() { f.Open(0x1000, 1) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, jiterrors.ErrFFixupUnresolved))
	assert.True(t, f.IsPending(first))
	assert.Equal(t, 1, f.Len())

	// Once the first site is retired the address can be reused.
	f.Discard(first)
	second := f.Open(0x1000, 1)
	assert.Equal(t, []FixupBranch{second}, f.Pending())
}
