package loongarch

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// machine runs the straight-line LA64 subset that LI and the quick jumps
// produce. Jumps only record their target.
type machine struct {
	r      [32]int64
	pc     uint64
	target uint64
	jumped bool
}

func newMachine() *machine { return &machine{pc: testBase} }

func (m *machine) set(rd uint32, v int64) {
	if rd != 0 {
		m.r[rd] = v
	}
}

func sext(v uint32, width int) int64 {
	return int64(v<<(32-width)) << 32 >> (64 - width)
}

func (m *machine) run(t *testing.T, code []byte) {
	t.Helper()
	for ; len(code) >= 4; code, m.pc = code[4:], m.pc+4 {
		require.False(t, m.jumped, "instruction after a jump at %#x", m.pc)
		w := binary.LittleEndian.Uint32(code)
		rd, rj := w&31, w>>5&31
		ui12 := w >> 10 & 0xFFF
		si20 := sext(w>>5&0xFFFFF, 20)
		switch {
		case w>>22 == 0x0b:
			m.set(rd, m.r[rj]+sext(ui12, 12))
		case w>>22 == 0x0c:
			m.set(rd, sext(ui12, 12)<<52|m.r[rj]&(1<<52-1))
		case w>>22 == 0x0d:
			m.set(rd, m.r[rj]&int64(ui12))
		case w>>22 == 0x0e:
			m.set(rd, m.r[rj]|int64(ui12))
		case w>>25 == 0x0a:
			m.set(rd, int64(int32(uint32(si20)<<12)))
		case w>>25 == 0x0b:
			m.set(rd, si20<<32|int64(uint32(m.r[rd])))
		case w>>25 == 0x0f:
			m.set(rd, int64(m.pc)+si20<<18)
		case w>>26 == 0x13:
			m.target = uint64(m.r[rj] + sext(w>>10&0xFFFF, 16)<<2)
			m.set(rd, int64(m.pc)+4)
			m.jumped = true
		case w>>26 == 0x14, w>>26 == 0x15:
			offs := sext(w>>10&0xFFFF|(w&0x3FF)<<16, 26) << 2
			m.target = uint64(int64(m.pc) + offs)
			if w>>26 == 0x15 {
				m.set(uint32(RA), int64(m.pc)+4)
			}
			m.jumped = true
		default:
			t.Fatalf("unexpected instruction %08x", w)
		}
	}
}

func TestLoadImmediate(t *testing.T) {
	tests := []struct {
		value uint64
		tier  string
		n     int
	}{
		{0, TierADDI, 1},
		{math.MaxUint64, TierADDI, 1},
		{2047, TierADDI, 1},
		{0xFFFFFFFFFFFFF800, TierADDI, 1},
		{0x800, TierORI, 1},
		{0xFFF, TierORI, 1},
		{0x1000, TierLU12I, 1},
		{0x12345678, TierLU12I, 2},
		{0x7FFFFFFF, TierLU12I, 2},
		{0xFFFFFFFF80000000, TierLU12I, 1},
		{0x80000000, TierLU32I, 2},
		{0xFFFFFFFF, TierLU32I, 2},
		{0x100000000, TierLU32I, 2},
		{0x0000800000000000, TierLU32I, 2},
		{0xFFFFFFFF7FFFFFFF, TierLU32I, 3},
		{0x8000000000000000, TierLU52I, 1},
		{0x3FF0000000000000, TierLU52I, 1},
		{0x123456789ABCDEF0, TierLU52I, 4},
		{math.MaxInt64, TierLU52I, 2},
		{0x8000000000000001, TierLU52I, 2},
		{0x0008000000000000, TierLU52I, 3},
	}
	for _, tc := range tests {
		t.Run(tc.tier, func(t *testing.T) {
			e := newTestEmitter(LA464())
			e.LI(A0, int64(tc.value))
			assert.Len(t, words(e.Code()), tc.n, "%#x", tc.value)
			assert.Equal(t, tc.tier, e.materialize(A1, int64(tc.value)), "%#x", tc.value)
			m := newMachine()
			m.run(t, e.Code())
			assert.Equal(t, int64(tc.value), m.r[A0], "%#x", tc.value)
			assert.Equal(t, int64(tc.value), m.r[A1], "%#x", tc.value)
		})
	}
}

func TestLoadImmediateWords(t *testing.T) {
	e := newTestEmitter(LA464())
	e.LI(A0, 0x12345678)
	assert.Equal(t, []uint32{0x142468a4, 0x0399e084}, words(e.Code()))
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
			e := newTestEmitter(LA464())
			tc.emit(e)
			m := newMachine()
			m.run(t, e.Code())
			assert.Equal(t, tc.want, m.r[A0])
		})
	}
}

func TestLoadImmediateErrors(t *testing.T) {
	tests := []struct {
		name string
		emit func(e *Emitter)
		want error
	}{
		{"rd zero", func(e *Emitter) { e.LI(ZERO, 1) }, jiterrors.ErrEHintWrite},
		{"float rd", func(e *Emitter) { e.LI(F0, 1) }, jiterrors.ErrERegisterClass},
		{"vector rd", func(e *Emitter) { e.LI(V0, 1) }, jiterrors.ErrERegisterClass},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(LA464())
			err := jiterrors.Catch(func() { tc.emit(e) })
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, e.Code())
		})
	}
}

func TestQuickJump(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		e := newTestEmitter(LA464())
		e.QuickJump(T0, RA, testBase+0x1000)
		e.QuickJump(T0, ZERO, testBase+0x1004)
		assert.Equal(t, []uint32{0x54100000, 0x50100000}, words(e.Code()))
	})

	t.Run("near", func(t *testing.T) {
		e := newTestEmitter(LA464())
		e.QuickJump(T0, RA, testBase+0x12345678)
		require.Len(t, words(e.Code()), 2)
		m := newMachine()
		m.run(t, e.Code())
		assert.Equal(t, uint64(testBase+0x12345678), m.target)
		assert.Equal(t, int64(testBase+8), m.r[RA])
	})

	t.Run("top of pc-relative range", func(t *testing.T) {
		for _, delta := range []int64{1<<37 - 1<<17 - 4, 1<<37 - 1<<17, 1<<37 - 4, -1 << 37} {
			dst := uintptr(int64(testBase) + delta)
			e := newTestEmitter(LA464())
			e.QuickJump(T0, ZERO, dst)
			m := newMachine()
			m.run(t, e.Code())
			assert.Equal(t, uint64(dst), m.target, "delta %#x", delta)
		}
		e := newTestEmitter(LA464())
		e.QuickJump(T0, ZERO, testBase+(1<<37-1<<17-4))
		assert.Len(t, words(e.Code()), 2)
	})

	t.Run("far", func(t *testing.T) {
		const dst = 0x123456789ABC
		e := newTestEmitter(LA464())
		e.NOP()
		e.QuickJump(T0, RA, dst)
		m := newMachine()
		m.run(t, e.Code())
		assert.Equal(t, uint64(dst), m.target)
		assert.Equal(t, int64(e.CodePointer()), m.r[RA])
	})

	t.Run("far unlinked", func(t *testing.T) {
		const dst = 0x7FFF12345678
		e := newTestEmitter(LA464())
		e.QuickJump(T1, ZERO, dst)
		m := newMachine()
		m.run(t, e.Code())
		assert.Equal(t, uint64(dst), m.target)
		assert.Zero(t, m.r[RA])
	})

	t.Run("call", func(t *testing.T) {
		const fn = 0xFFFFFFFF80001000
		e := newTestEmitter(LA464())
		e.QuickCallFunction(fn, T0)
		require.Len(t, words(e.Code()), 2)
		m := newMachine()
		m.run(t, e.Code())
		assert.Equal(t, uint64(fn), m.target)
		assert.Equal(t, int64(e.CodePointer()), m.r[RA])
	})

	t.Run("misaligned", func(t *testing.T) {
		e := newTestEmitter(LA464())
		err := jiterrors.Catch(func() { e.QuickJump(T0, ZERO, 0x123456789ABE) })
		assert.True(t, errors.Is(err, jiterrors.ErrRImmAlign), "got %v", err)
	})
}
