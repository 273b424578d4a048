package riscv

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// machine runs the straight-line subset of RV32I/RV64I that LI and the
// quick jumps produce. Jumps only record their target.
type machine struct {
	x      [32]int64
	pc     uint64
	xlen   int
	target uint64
	jumped bool
}

func newMachine(xlen int) *machine { return &machine{pc: testBase, xlen: xlen} }

func (m *machine) set(rd uint32, v int64) {
	if rd == 0 {
		return
	}
	if m.xlen == 32 {
		v = int64(int32(v))
	}
	m.x[rd] = v
}

func (m *machine) run(t *testing.T, code []byte) {
	t.Helper()
	for len(code) > 0 {
		require.Equal(t, byte(3), code[0]&3, "compressed word at %#x", m.pc)
		require.False(t, m.jumped, "instruction after a jump at %#x", m.pc)
		w := binary.LittleEndian.Uint32(code)
		rd, f3, rs1, rs2 := w>>7&31, w>>12&7, w>>15&31, w>>20&31
		immI := int64(int32(w) >> 20)
		immU := int64(int32(w & 0xFFFFF000))
		switch w & 0x7F {
		case 0x13:
			switch {
			case f3 == 0:
				m.set(rd, m.x[rs1]+immI)
			case f3 == 1:
				m.set(rd, m.x[rs1]<<(w>>20&63))
			case f3 == 5 && w>>26 == 0 && m.xlen == 32:
				m.set(rd, int64(uint32(m.x[rs1])>>(w>>20&31)))
			case f3 == 5 && w>>26 == 0:
				m.set(rd, int64(uint64(m.x[rs1])>>(w>>20&63)))
			default:
				t.Fatalf("unexpected op-imm %08x", w)
			}
		case 0x1b:
			require.Equal(t, uint32(0), f3, "op-imm-32 %08x", w)
			m.set(rd, int64(int32(m.x[rs1]+immI)))
		case 0x37:
			m.set(rd, immU)
		case 0x17:
			m.set(rd, int64(m.pc)+immU)
		case 0x33:
			require.Equal(t, uint32(0), w>>25|f3, "op %08x", w)
			m.set(rd, m.x[rs1]+m.x[rs2])
		case 0x3b:
			require.Equal(t, uint32(4), w>>25, "op-32 %08x", w)
			m.set(rd, int64(uint32(m.x[rs1]))+m.x[rs2])
		case 0x67:
			m.target = uint64(m.x[rs1]+immI) &^ 1
			m.set(rd, int64(m.pc)+4)
			m.jumped = true
		case 0x6f:
			imm := int64(int32(w)>>31)<<20 | int64(w>>21&0x3FF)<<1 | int64(w>>20&1)<<11 | int64(w>>12&0xFF)<<12
			m.target = uint64(int64(m.pc) + imm)
			m.set(rd, int64(m.pc)+4)
			m.jumped = true
		default:
			t.Fatalf("unexpected opcode %08x", w)
		}
		if m.xlen == 32 {
			m.target = uint64(uint32(m.target))
		}
		code = code[4:]
		m.pc += 4
	}
}

func TestLoadImmediate(t *testing.T) {
	tests := []struct {
		value    uint64
		tier     string
		n, nTemp int
	}{
		{0, TierADDI, 1, 1},
		{1, TierADDI, 1, 1},
		{math.MaxUint64, TierADDI, 1, 1},
		{2047, TierADDI, 1, 1},
		{0xFFFFFFFFFFFFF800, TierADDI, 1, 1},
		{2048, TierLUI, 2, 2},
		{0x12345678, TierLUI, 2, 2},
		{0x7FFFF800, TierLUI, 2, 2},
		{0x7FFFFFFF, TierLUI, 2, 2},
		{0x80000000, TierAUIPC, 1, 1},
		{0xFFFFFFFF, TierUnsigned, 3, 3},
		{0xDEADBEEF, TierUnsigned, 4, 4},
		{0x100000000, TierShifted, 2, 2},
		{0x8000000000000000, TierShifted, 2, 2},
		{0xFFFFFFFF00000000, TierShifted, 2, 2},
		{0x0000800000000000, TierShifted, 2, 2},
		{0x3FF0000000000000, TierShifted, 2, 2},
		{0x7FF0000000000000, TierShifted, 2, 2},
		{0x123456789ABCDEF0, TierLadder, 8, 6},
		{math.MaxInt64, TierLadder, 8, 4},
		{0xFFFFFFFF7FFFFFFF, TierLadder, 7, 5},
		{0x8000000000000001, TierLadder, 3, 4},
	}
	for _, tc := range tests {
		t.Run(tc.tier, func(t *testing.T) {
			e := newTestEmitter(RV64GC(), false)
			e.LI(A0, int64(tc.value))
			assert.Len(t, words(e.Code()), tc.n, "%#x", tc.value)
			m := newMachine(64)
			m.run(t, e.Code())
			assert.Equal(t, int64(tc.value), m.x[A0], "%#x", tc.value)

			e = newTestEmitter(RV64GC(), false)
			e.LIWithTemp(A0, int64(tc.value), T0)
			assert.Len(t, words(e.Code()), tc.nTemp, "%#x with temp", tc.value)
			m = newMachine(64)
			m.run(t, e.Code())
			assert.Equal(t, int64(tc.value), m.x[A0], "%#x with temp", tc.value)
		})
	}
}

func TestLoadImmediateZba(t *testing.T) {
	e := newTestEmitter(RV64GCV(), false)
	e.LI(A0, 0xFFFFFFFF)
	assert.Equal(t, []uint32{0xfff00513, 0x0805053b}, words(e.Code()))
	m := newMachine(64)
	m.run(t, e.Code())
	assert.Equal(t, int64(0xFFFFFFFF), m.x[A0])
}

func TestLoadImmediateRV32(t *testing.T) {
	tests := []struct {
		value int64
		n     int
	}{
		{0, 1},
		{-1, 1},
		{0xFFFFFFFF, 1},
		{0x7FFFF800, 2},
		{0x7FFFFFFF, 2},
		{0x80000000, 1},
		{-0x80000000, 1},
		{0x12345678, 2},
		{0xDEADBEEF, 2},
	}
	for _, tc := range tests {
		e := newTestEmitter(RV32IMC(), false)
		e.LI(A0, tc.value)
		assert.Len(t, words(e.Code()), tc.n, "%#x", tc.value)
		m := newMachine(32)
		m.run(t, e.Code())
		assert.Equal(t, int64(int32(tc.value)), m.x[A0], "%#x", tc.value)
	}
}

func TestLoadImmediateCompressed(t *testing.T) {
	e := newTestEmitter(RV64GC(), true)
	e.LI(A0, 5)
	e.LI(A1, 0x1000)
	assert.Equal(t, []uint32{0x4515, 0x6585}, words(e.Code()))
}

func TestLoadConst(t *testing.T) {
	tests := []struct {
		name string
		emit func(e *Emitter)
		want int64
	}{
		{"float64", func(e *Emitter) { LoadConst(e, A0, 1.0) }, 0x3FF0000000000000},
		{"float32", func(e *Emitter) { LoadConst(e, A0, float32(1.0)) }, 0x3F800000},
		{"uint8", func(e *Emitter) { LoadConst(e, A0, uint8(0xFF)) }, 0xFF},
		{"int8", func(e *Emitter) { LoadConst(e, A0, int8(-1)) }, -1},
		{"uint32", func(e *Emitter) { LoadConst(e, A0, uint32(0x80000000)) }, 0x80000000},
		{"int32", func(e *Emitter) { LoadConst(e, A0, int32(math.MinInt32)) }, math.MinInt32},
		{"uint64", func(e *Emitter) { LoadConst(e, A0, uint64(math.MaxUint64)) }, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(RV64GC(), false)
			tc.emit(e)
			m := newMachine(64)
			m.run(t, e.Code())
			assert.Equal(t, tc.want, m.x[A0])
		})
	}
}

func TestLoadImmediateErrors(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		emit func(e *Emitter)
		want error
	}{
		{"rd is temp", RV64GC(), func(e *Emitter) { e.LIWithTemp(A0, 0x123456789ABCDEF0, A0) }, jiterrors.ErrEOperandConstraint},
		{"rd zero", RV64GC(), func(e *Emitter) { e.LI(ZERO, 1) }, jiterrors.ErrEHintWrite},
		{"rv32 wide", RV32IMC(), func(e *Emitter) { e.LI(A0, 0x100000000) }, jiterrors.ErrRImmRange},
		{"float rd", RV64GC(), func(e *Emitter) { e.LI(F0, 1) }, jiterrors.ErrERegisterClass},
		{"float temp", RV64GC(), func(e *Emitter) { e.LIWithTemp(A0, 1, F1) }, jiterrors.ErrERegisterClass},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(tc.caps, false)
			err := jiterrors.Catch(func() { tc.emit(e) })
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestQuickJAL(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		e := newTestEmitter(RV64GC(), false)
		e.QuickJAL(T0, RA, testBase+0x1000)
		assert.Equal(t, []uint32{0x000010ef}, words(e.Code()))
	})

	t.Run("near", func(t *testing.T) {
		e := newTestEmitter(RV64GC(), false)
		e.QuickJAL(T0, RA, testBase+0x12345678)
		require.Len(t, words(e.Code()), 2)
		m := newMachine(64)
		m.run(t, e.Code())
		assert.Equal(t, uint64(testBase+0x12345678), m.target)
		assert.Equal(t, int64(testBase+8), m.x[RA])
	})

	t.Run("far", func(t *testing.T) {
		const dst = 0x123456789ABC
		e := newTestEmitter(RV64GC(), false)
		e.NOP()
		e.QuickJAL(T0, RA, dst)
		m := newMachine(64)
		m.run(t, e.Code())
		assert.Equal(t, uint64(dst), m.target)
		assert.Equal(t, int64(e.CodePointer()), m.x[RA])
	})

	t.Run("far unlinked", func(t *testing.T) {
		const dst = 0x7FFF12345678
		e := newTestEmitter(RV64GC(), false)
		e.QuickJ(T1, dst)
		m := newMachine(64)
		m.run(t, e.Code())
		assert.Equal(t, uint64(dst), m.target)
		assert.Zero(t, m.x[RA])
	})

	t.Run("call", func(t *testing.T) {
		const fn = 0xFFFFFFFF80001000
		e := newTestEmitter(RV64GC(), false)
		e.QuickCallFunction(fn, T0)
		m := newMachine(64)
		m.run(t, e.Code())
		assert.Equal(t, uint64(fn), m.target)
		assert.Equal(t, int64(e.CodePointer()), m.x[RA])
	})
}
