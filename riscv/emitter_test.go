package riscv

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = 0x10000

func newTestEmitter(caps Capabilities, compress bool) *Emitter {
	e := NewEmitter(emitter.NewSliceRegion(testBase, 4096), caps)
	e.SetAutoCompress(compress)
	return e
}

// words splits code into instructions; 16-bit forms come back zero-extended.
func words(code []byte) []uint32 {
	var out []uint32
	for len(code) >= 2 {
		if code[0]&3 != 3 {
			out = append(out, uint32(binary.LittleEndian.Uint16(code)))
			code = code[2:]
			continue
		}
		out = append(out, binary.LittleEndian.Uint32(code))
		code = code[4:]
	}
	return out
}

func rv64g() Capabilities {
	c := RV64GC()
	c.C = false
	return c
}

func TestCompression(t *testing.T) {
	gcv, gc := RV64GCV(), RV64GC()
	tests := []struct {
		name string
		caps Capabilities
		emit func(e *Emitter)
		want []uint32
	}{
		{"addi a0,a0,1", gcv, func(e *Emitter) { e.ADDI(A0, A0, 1) }, []uint32{0x0505}},
		{"addi a0,a0,31", gcv, func(e *Emitter) { e.ADDI(A0, A0, 31) }, []uint32{0x057d}},
		{"addi a0,a0,32", gcv, func(e *Emitter) { e.ADDI(A0, A0, 32) }, []uint32{0x02050513}},
		{"addi a0,a0,-32", gcv, func(e *Emitter) { e.ADDI(A0, A0, -32) }, []uint32{0x1501}},
		{"addi a0,a0,-33", gcv, func(e *Emitter) { e.ADDI(A0, A0, -33) }, []uint32{0xfdf50513}},
		{"li a0,5", gcv, func(e *Emitter) { e.ADDI(A0, ZERO, 5) }, []uint32{0x4515}},
		{"addi a0,sp,16", gcv, func(e *Emitter) { e.ADDI(A0, SP, 16) }, []uint32{0x0808}},
		{"addi a0,sp,1024", gcv, func(e *Emitter) { e.ADDI(A0, SP, 1024) }, []uint32{0x40010513}},
		{"addi t0,sp,16", gcv, func(e *Emitter) { e.ADDI(T0, SP, 16) }, []uint32{0x01010293}},
		{"addi sp,sp,-64", gcv, func(e *Emitter) { e.ADDI(SP, SP, -64) }, []uint32{0x7139}},
		{"addi sp,sp,16", gcv, func(e *Emitter) { e.ADDI(SP, SP, 16) }, []uint32{0x0141}},
		{"mv a0,a1", gcv, func(e *Emitter) { e.MV(A0, A1) }, []uint32{0x852e}},
		{"nop", gcv, func(e *Emitter) { e.NOP() }, []uint32{0x0001}},
		{"lw a0,4(a1)", gcv, func(e *Emitter) { e.LW(A0, A1, 4) }, []uint32{0x41c8}},
		{"lw a0,128(a1)", gcv, func(e *Emitter) { e.LW(A0, A1, 128) }, []uint32{0x0805a503}},
		{"lw t0,4(sp)", gcv, func(e *Emitter) { e.LW(T0, SP, 4) }, []uint32{0x4292}},
		{"lw a0,4(sp)", gcv, func(e *Emitter) { e.LW(A0, SP, 4) }, []uint32{0x4512}},
		{"sd ra,8(sp)", gcv, func(e *Emitter) { e.SD(RA, SP, 8) }, []uint32{0xe406}},
		{"sd a0,8(a1)", gcv, func(e *Emitter) { e.SD(A0, A1, 8) }, []uint32{0xe588}},
		{"sd a0,7(a1)", gcv, func(e *Emitter) { e.SD(A0, A1, 7) }, []uint32{0x00a5b3a3}},
		{"lbu a0,1(a1) zcb", gcv, func(e *Emitter) { e.LBU(A0, A1, 1) }, []uint32{0x81c8}},
		{"lbu a0,4(a1) zcb", gcv, func(e *Emitter) { e.LBU(A0, A1, 4) }, []uint32{0x0045c503}},
		{"lbu a0,1(a1)", gc, func(e *Emitter) { e.LBU(A0, A1, 1) }, []uint32{0x0015c503}},
		{"add a0,a0,a1", gcv, func(e *Emitter) { e.ADD(A0, A0, A1) }, []uint32{0x952e}},
		{"add a0,a1,a0", gcv, func(e *Emitter) { e.ADD(A0, A1, A0) }, []uint32{0x952e}},
		{"add a0,a1,zero", gcv, func(e *Emitter) { e.ADD(A0, A1, ZERO) }, []uint32{0x852e}},
		{"add a0,a1,a2", gcv, func(e *Emitter) { e.ADD(A0, A1, A2) }, []uint32{0x00c58533}},
		{"sub a0,a0,a1", gcv, func(e *Emitter) { e.SUB(A0, A0, A1) }, []uint32{0x8d0d}},
		{"sub a0,a1,a0", gcv, func(e *Emitter) { e.SUB(A0, A1, A0) }, []uint32{0x40a58533}},
		{"slli a0,a0,3", gcv, func(e *Emitter) { e.SLLI(A0, A0, 3) }, []uint32{0x050e}},
		{"srli s0,s0,3", gcv, func(e *Emitter) { e.SRLI(S0, S0, 3) }, []uint32{0x800d}},
		{"srli t0,t0,3", gcv, func(e *Emitter) { e.SRLI(T0, T0, 3) }, []uint32{0x0032d293}},
		{"andi a0,a0,-1", gcv, func(e *Emitter) { e.ANDI(A0, A0, -1) }, []uint32{0x997d}},
		{"zext.b a0 zcb", gcv, func(e *Emitter) { e.ZEXT_B(A0, A0) }, []uint32{0x9d61}},
		{"zext.b a0", gc, func(e *Emitter) { e.ZEXT_B(A0, A0) }, []uint32{0x0ff57513}},
		{"not a0 zcb", gcv, func(e *Emitter) { e.NOT(A0, A0) }, []uint32{0x9d75}},
		{"not a0", gc, func(e *Emitter) { e.NOT(A0, A0) }, []uint32{0xfff54513}},
		{"mul a0,a1,a0 zcb", gcv, func(e *Emitter) { e.MUL(A0, A1, A0) }, []uint32{0x9d4d}},
		{"mul a0,a1,a0", gc, func(e *Emitter) { e.MUL(A0, A1, A0) }, []uint32{0x02a58533}},
		{"addw a0,a1,a0", gcv, func(e *Emitter) { e.ADDW(A0, A1, A0) }, []uint32{0x9d2d}},
		{"addiw a0,a0,-1", gcv, func(e *Emitter) { e.ADDIW(A0, A0, -1) }, []uint32{0x357d}},
		{"sext.w a0,a1", gcv, func(e *Emitter) { e.SEXT_W(A0, A1) }, []uint32{0x0005851b}},
		{"lui a0,0x1", gcv, func(e *Emitter) { e.LUI(A0, 0x1000) }, []uint32{0x6505}},
		{"lui a0,0x20", gcv, func(e *Emitter) { e.LUI(A0, 0x20000) }, []uint32{0x00020537}},
		{"lui sp,0x1", gcv, func(e *Emitter) { e.LUI(SP, 0x1000) }, []uint32{0x00001137}},
		{"ret", gcv, func(e *Emitter) { e.RET() }, []uint32{0x8082}},
		{"jalr a0", gcv, func(e *Emitter) { e.JALR(RA, A0, 0) }, []uint32{0x9502}},
		{"jalr ra,4(t0)", gcv, func(e *Emitter) { e.JALR(RA, T0, 4) }, []uint32{0x004280e7}},
		{"fld fa0,16(a1)", gcv, func(e *Emitter) { e.FL(64, F10, A1, 16) }, []uint32{0x2988}},
		{"zext.w a0 zcb", gcv, func(e *Emitter) { e.ZEXT_W(A0, A0) }, []uint32{0x9d71}},
		{"zext.w a0,a1 zba", gcv, func(e *Emitter) { e.ZEXT_W(A0, A1) }, []uint32{0x0805853b}},
		{"zext.w a0", gc, func(e *Emitter) { e.ZEXT_W(A0, A0) }, []uint32{0x1502, 0x9101}},
		{"ebreak", gcv, func(e *Emitter) { e.EBREAK() }, []uint32{0x00100073}},
		{"addi without C", rv64g(), func(e *Emitter) { e.ADDI(A0, A0, 1) }, []uint32{0x00150513}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(tc.caps, true)
			require.NoError(t, jiterrors.Catch(func() { tc.emit(e) }))
			assert.Equal(t, tc.want, words(e.Code()))
		})
	}
}

func TestAutoCompressOff(t *testing.T) {
	e := newTestEmitter(RV64GC(), false)
	assert.False(t, e.AutoCompress())
	e.ADDI(A0, A0, 1)
	e.ZEXT_W(A0, A0)
	e.RET()
	assert.Equal(t, []uint32{0x00150513, 0x02051513, 0x02055513, 0x00008067}, words(e.Code()))

	e = newTestEmitter(rv64g(), true)
	assert.False(t, e.AutoCompress())
}

func TestEmitterErrors(t *testing.T) {
	gc := RV64GC()
	zmmul := Capabilities{RV64: true, Zmmul: true}
	tests := []struct {
		name string
		caps Capabilities
		emit func(e *Emitter)
		want error
	}{
		{"addi to zero", gc, func(e *Emitter) { e.ADDI(ZERO, A0, 1) }, jiterrors.ErrEHintWrite},
		{"lui to zero", gc, func(e *Emitter) { e.LUI(ZERO, 0x1000) }, jiterrors.ErrEHintWrite},
		{"add to zero", gc, func(e *Emitter) { e.ADD(ZERO, A0, A1) }, jiterrors.ErrEHintWrite},
		{"slli to zero", gc, func(e *Emitter) { e.SLLI(ZERO, A0, 1) }, jiterrors.ErrEHintWrite},
		{"li to zero", gc, func(e *Emitter) { e.LI(ZERO, 5) }, jiterrors.ErrEHintWrite},
		{"c.mv from zero", gc, func(e *Emitter) { e.C_MV(A0, ZERO) }, jiterrors.ErrEHintWrite},
		{"c.addi 0", gc, func(e *Emitter) { e.C_ADDI(A0, 0) }, jiterrors.ErrRImmRange},
		{"slli 64", gc, func(e *Emitter) { e.SLLI(A0, A1, 64) }, jiterrors.ErrRImmRange},
		{"slli 0", gc, func(e *Emitter) { e.SLLI(A0, A1, 0) }, jiterrors.ErrRImmRange},
		{"slli 32 on rv32", RV32IMC(), func(e *Emitter) { e.SLLI(A0, A1, 32) }, jiterrors.ErrRImmRange},
		{"c.slli 32 on rv32", RV32IMC(), func(e *Emitter) { e.C_SLLI(A0, 32) }, jiterrors.ErrRImmRange},
		{"lr release", gc, func(e *Emitter) { e.LR_W(A0, A1, OrderRelease) }, jiterrors.ErrEOperandConstraint},
		{"sc acquire", gc, func(e *Emitter) { e.SC_W(A0, A1, A2, OrderAcquire) }, jiterrors.ErrEOperandConstraint},
		{"float width 16", gc, func(e *Emitter) { e.FADD(16, F0, F1, F2, RNE) }, jiterrors.ErrEOperandConstraint},
		{"fadd int reg", gc, func(e *Emitter) { e.FADD(64, A0, F1, F2, RNE) }, jiterrors.ErrERegisterClass},

		{"ld on rv32", RV32IMC(), func(e *Emitter) { e.LD(A0, A1, 0) }, jiterrors.ErrUUnsupported},
		{"addiw on rv32", RV32IMC(), func(e *Emitter) { e.ADDIW(A0, A0, 1) }, jiterrors.ErrUUnsupported},
		{"c.ld on rv32", RV32IMC(), func(e *Emitter) { e.C_LD(A0, A1, 0) }, jiterrors.ErrUUnsupported},
		{"mulw on rv32", RV32IMC(), func(e *Emitter) { e.MULW(A0, A1, A2) }, jiterrors.ErrUUnsupported},
		{"fadd.d without D", RV32IMC(), func(e *Emitter) { e.FADD(64, F0, F1, F2, RNE) }, jiterrors.ErrUUnsupported},
		{"flw without F", RV32IMC(), func(e *Emitter) { e.FL(32, F0, A0, 0) }, jiterrors.ErrUUnsupported},
		{"amoadd without A", RV32IMC(), func(e *Emitter) { e.AMOADD_W(A0, A1, A2, OrderNone) }, jiterrors.ErrUUnsupported},
		{"amoadd.d on rv32", Capabilities{A: true}, func(e *Emitter) { e.AMOADD_D(A0, A1, A2, OrderNone) }, jiterrors.ErrUUnsupported},
		{"sh1add without Zba", gc, func(e *Emitter) { e.SH1ADD(A0, A1, A2) }, jiterrors.ErrUUnsupported},
		{"clz without Zbb", gc, func(e *Emitter) { e.CLZ(A0, A1) }, jiterrors.ErrUUnsupported},
		{"clmul without Zbc", RV64GCV(), func(e *Emitter) { e.CLMUL(A0, A1, A2) }, jiterrors.ErrUUnsupported},
		{"czero without Zicond", gc, func(e *Emitter) { e.CZERO_EQZ(A0, A1, A2) }, jiterrors.ErrUUnsupported},
		{"vadd without V", gc, func(e *Emitter) { e.VADD_VV(V1, V2, V3, VUnmasked) }, jiterrors.ErrUUnsupported},
		{"vsetvli lmul 4", RV64GCV(), func(e *Emitter) { e.VSETVLI(A0, A1, VType(SEW8, VLMul(4), false, false)) }, jiterrors.ErrRImmRange},
		{"zext.w on rv32", RV32IMC(), func(e *Emitter) { e.ZEXT_W(A0, A0) }, jiterrors.ErrUUnsupported},
		{"c.jal on rv64", gc, func(e *Emitter) { e.C_JAL(testBase) }, jiterrors.ErrUUnsupported},
		{"c.zext.b without Zcb", gc, func(e *Emitter) { e.C_ZEXT_B(A0) }, jiterrors.ErrUUnsupported},
		{"c.flw on rv64", gc, func(e *Emitter) { e.C_FLW(F8, A0, 0) }, jiterrors.ErrUUnsupported},
		{"c.nop without C", rv64g(), func(e *Emitter) { e.C_NOP() }, jiterrors.ErrUUnsupported},
		{"c.j fixup without C", rv64g(), func(e *Emitter) { e.C_JFixup() }, jiterrors.ErrUUnsupported},
		{"div with Zmmul only", zmmul, func(e *Emitter) { e.DIV(A0, A1, A2) }, jiterrors.ErrUUnsupported},
		{"csrr without Zicsr", Capabilities{RV64: true}, func(e *Emitter) { e.RDCYCLE(A0) }, jiterrors.ErrUUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(tc.caps, true)
			err := jiterrors.Catch(func() { tc.emit(e) })
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, e.Code(), "nothing is written on failure")
		})
	}

	e := newTestEmitter(zmmul, true)
	e.MUL(A0, A1, A2)
	assert.Equal(t, []uint32{0x02c58533}, words(e.Code()))
}

func TestExtensionWords(t *testing.T) {
	e := newTestEmitter(RV64GCV(), false)
	e.AMOADD_W(A0, A1, A2, OrderAqRl)
	e.LR_D(A0, A1, OrderNone)
	e.SC_W(A0, A2, A1, OrderRelease)
	e.FMADD(64, F10, F11, F12, F13, RNE)
	e.FADD(32, F10, F11, F12, DYN)
	e.FSQRT(64, F10, F11, RTZ)
	e.FCVTToInt(32, true, 64, A0, F10, RTZ)
	e.FCVTFromInt(64, 64, true, F10, A0, RNE)
	e.FMV_X(64, A0, F10)
	e.FNEG(64, F10, F11)
	e.FEQ(64, A0, F10, F11)
	e.FRRM(A0)
	e.FSRMI(ZERO, RTZ)
	e.RDCYCLE(A0)
	e.VSETVLI(A0, A1, VType(SEW32, LMUL1, true, true))
	e.VLE(32, V8, A0, VUnmasked)
	e.VADD_VV(V1, V2, V3, VUnmasked)
	e.VMV_V_X(V8, A0)
	e.SH1ADD(A0, A1, A2)
	e.REV8(A0, A1)
	e.BSETI(A0, A1, 63)
	e.DIV(A0, A1, A2)
	e.FENCE(FenceRW, FenceRW)
	assert.Equal(t, []uint32{
		0x06b6252f, 0x1005b52f, 0x1ac5a52f,
		0x6ac58543, 0x00c5f553, 0x5a059553, 0xc2051553, 0xd2250553, 0xe2050553, 0x22b59553, 0xa2b52553,
		0x00202573, 0x0020d073, 0xc0002573,
		0x0d05f557, 0x02056407, 0x022180d7, 0x5e054457,
		0x20c5a533, 0x6b85d513, 0x2bf59513, 0x02c5c533, 0x0330000f,
	}, words(e.Code()))
}

func TestBranches(t *testing.T) {
	gcv := RV64GCV()
	tests := []struct {
		name string
		caps Capabilities
		emit func(e *Emitter)
		want []uint32
	}{
		{"beqz a0,8", gcv, func(e *Emitter) { e.BEQ(A0, ZERO, testBase+8) }, []uint32{0xc501}},
		{"beq a0,a1,16", gcv, func(e *Emitter) { e.BEQ(A0, A1, testBase+16) }, []uint32{0x00b50863}},
		{"bnez s1,254", gcv, func(e *Emitter) { e.BNE(ZERO, S1, testBase+254) }, []uint32{0xecfd}},
		{"bnez a0,256", gcv, func(e *Emitter) { e.BNEZ(A0, testBase+256) }, []uint32{0x10051063}},
		{"j 16", gcv, func(e *Emitter) { e.J(testBase + 16) }, []uint32{0xa801}},
		{"jal ra,16 rv64", gcv, func(e *Emitter) { e.JAL(RA, testBase+16) }, []uint32{0x010000ef}},
		{"jal ra,16 rv32", RV32IMC(), func(e *Emitter) { e.JAL(RA, testBase+16) }, []uint32{0x2801}},
		{"j 2048", gcv, func(e *Emitter) { e.J(testBase + 2048) }, []uint32{0x0010006f}},
		{"ble a0,a1,8", gcv, func(e *Emitter) { e.BLE(A0, A1, testBase+8) }, []uint32{0x00a5d463}},
		{"bltu a0,a1,4094", gcv, func(e *Emitter) { e.BLTU(A0, A1, testBase+4094) }, []uint32{0x7eb56fe3}},
		{"jal a0,max", gcv, func(e *Emitter) { e.JAL(A0, testBase+1048574) }, []uint32{0x7ffff56f}},
		{"generic bge", gcv, func(e *Emitter) { e.EmitBranch(BGE, A1, A0, testBase+8) }, []uint32{0x00a5d463}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(tc.caps, true)
			tc.emit(e)
			assert.Equal(t, tc.want, words(e.Code()))
		})
	}

	errTests := []struct {
		name string
		caps Capabilities
		emit func(e *Emitter)
		want error
	}{
		{"beq out of range", gcv, func(e *Emitter) { e.BEQ(A0, A1, testBase+4096) }, jiterrors.ErrRBranchRange},
		{"jal out of range", gcv, func(e *Emitter) { e.JAL(RA, testBase+(1<<20)) }, jiterrors.ErrRBranchRange},
		{"beq odd target", gcv, func(e *Emitter) { e.BEQ(A0, A1, testBase+3) }, jiterrors.ErrRBranchAlign},
		{"beq halfword target without C", rv64g(), func(e *Emitter) { e.BEQ(A0, A1, testBase+2) }, jiterrors.ErrRBranchAlign},
		{"c.beqz out of range", gcv, func(e *Emitter) { e.C_BEQZ(A0, testBase+256) }, jiterrors.ErrRBranchRange},
	}
	for _, tc := range errTests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(tc.caps, true)
			err := jiterrors.Catch(func() { tc.emit(e) })
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestFixups(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		e := newTestEmitter(RV64GC(), false)
		fb := e.BEQFixup(A0, A1)
		e.ADDI(A0, A0, 1)
		e.SetJumpTargetHere(fb)
		assert.Equal(t, []uint32{0x00b50463, 0x00150513}, words(e.Code()))
		assert.NoError(t, e.CheckFixups())

		err := jiterrors.Catch(func() { e.SetJumpTargetHere(fb) })
		assert.True(t, errors.Is(err, jiterrors.ErrFFixupResolved))
	})

	t.Run("backward", func(t *testing.T) {
		e := newTestEmitter(RV64GC(), false)
		e.ADDI(A0, A0, 1)
		e.ADDI(A0, A0, 1)
		fb := e.JFixup()
		assert.Equal(t, uintptr(testBase+8), fb.Addr())
		assert.Equal(t, KindJ, fb.Kind())
		e.SetJumpTarget(fb, testBase)
		assert.Equal(t, uint32(0xff9ff06f), words(e.Code())[2])
	})

	t.Run("compressed", func(t *testing.T) {
		e := newTestEmitter(RV64GC(), true)
		fb := e.C_BEQZFixup(A0)
		e.ADDI(A0, A0, 1)
		e.ADDI(A0, A0, 1)
		e.SetJumpTargetHere(fb)
		e.C_NOP()
		back := e.C_JFixup()
		e.SetJumpTarget(back, testBase+2)
		assert.Equal(t, []uint32{0xc119, 0x0505, 0x0505, 0x0001, 0xbfed}, words(e.Code()))
	})

	t.Run("fixup forms stay wide", func(t *testing.T) {
		e := newTestEmitter(RV64GC(), true)
		fb := e.BEQFixup(A0, ZERO)
		j := e.JFixup()
		assert.Equal(t, 8, e.Offset())
		e.SetJumpTarget(fb, testBase+8)
		e.SetJumpTarget(j, testBase+8)
		assert.Equal(t, []uint32{0x00050463, 0x0040006f}, words(e.Code()))
	})

	t.Run("pending and release", func(t *testing.T) {
		e := newTestEmitter(RV64GC(), false)
		a := e.BNEFixup(A0, A1)
		b := e.JALFixup(RA)
		assert.Equal(t, []emitter.FixupBranch{a, b}, e.PendingFixups())

		err := e.CheckFixups()
		require.Error(t, err)
		assert.True(t, errors.Is(err, jiterrors.ErrFFixupUnresolved))
		assert.Contains(t, err.Error(), "B@0x10000 J@0x10004")
		assert.Panics(t, func() { e.Release() })

		// out of range leaves the site open
		err = jiterrors.Catch(func() { e.SetJumpTarget(a, testBase+8192) })
		assert.True(t, errors.Is(err, jiterrors.ErrRBranchRange))
		assert.Len(t, e.PendingFixups(), 2)

		e.SetJumpTargetHere(a)
		e.DiscardFixup(b)
		assert.NoError(t, e.CheckFixups())
		assert.NotPanics(t, func() { e.Release() })
		assert.Equal(t, uint32(0x000000ef), words(e.Code())[1], "discarded jal keeps a zero displacement")
	})

	t.Run("rewind over pending site", func(t *testing.T) {
		e := newTestEmitter(RV64GC(), false)
		start := e.CodePointer()
		first := e.BEQFixup(A0, A1)
		e.SetCodePointer(start)

		err := jiterrors.Catch(func() { e.BNEFixup(A0, A1) })
		require.Error(t, err)
		assert.True(t, errors.Is(err, jiterrors.ErrFFixupUnresolved), "got %v", err)
		assert.Equal(t, []emitter.FixupBranch{first}, e.PendingFixups())
		assert.Error(t, e.CheckFixups())
	})
}

func TestReserveAndAlign(t *testing.T) {
	e := newTestEmitter(RV64GC(), true)
	start := e.ReserveCodeSpace(6)
	assert.Equal(t, uintptr(testBase), start)
	assert.Equal(t, []uint32{0x00100073, 0x9002}, words(e.Code()))

	e = newTestEmitter(RV64GC(), true)
	e.NOP()
	assert.Equal(t, uintptr(testBase+16), e.AlignCode16())
	assert.Equal(t, []uint32{0x0001, 0x00100073, 0x00100073, 0x00100073, 0x9002}, words(e.Code()))
	assert.Equal(t, uintptr(testBase+16), e.AlignCode16())

	err := jiterrors.Catch(func() { e.ReserveCodeSpace(3) })
	assert.True(t, errors.Is(err, jiterrors.ErrRImmAlign))
	err = jiterrors.Catch(func() { newTestEmitter(rv64g(), true).ReserveCodeSpace(6) })
	assert.True(t, errors.Is(err, jiterrors.ErrRImmAlign))

	e.Flush()
	r := e.Region().(*emitter.SliceRegion)
	require.Len(t, r.Flushes, 1)
	assert.Equal(t, emitter.FlushRange{Start: testBase, End: testBase + 16}, r.Flushes[0])
}

func TestTable(t *testing.T) {
	in, err := Lookup(RV64GC(), "addi")
	require.NoError(t, err)
	assert.Equal(t, ADDI, in)

	_, err = Lookup(RV32IMC(), "ld")
	assert.True(t, errors.Is(err, jiterrors.ErrUUnsupported))

	_, err = Lookup(RV64GC(), "frobnicate")
	require.Error(t, err)
	assert.False(t, errors.Is(err, jiterrors.ErrUUnsupported))

	in, err = Lookup(Capabilities{Zbb: true}, "zext.h")
	require.NoError(t, err)
	assert.Equal(t, ZEXT_H32, in)
	in, err = Lookup(Capabilities{RV64: true, Zbb: true}, "zext.h")
	require.NoError(t, err)
	assert.Equal(t, ZEXT_H, in)

	assert.False(t, Supported(RV64GC(), C_MUL))
	assert.True(t, Supported(RV64GCV(), C_MUL))
	assert.True(t, Supported(RV32IMC(), C_JAL))
	assert.False(t, Supported(RV64GC(), C_JAL))

	names := Mnemonics()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "vsetvli")
	assert.Contains(t, names, "c.zext.w")
	assert.NotEmpty(t, Families())

	e := newTestEmitter(Capabilities{RV64: true, Zmmul: true}, false)
	e.Emit32(ADD, EncodeR(ADD, A0, A1, A2))
	err = jiterrors.Catch(func() { e.Emit32(DIV, EncodeR(DIV, A0, A1, A2)) })
	assert.True(t, errors.Is(err, jiterrors.ErrUUnsupported))
	fb := e.EmitBranchFixup(BLTU, A0, A1)
	e.SetJumpTargetHere(fb)
	assert.Equal(t, []uint32{0x00c58533, 0x00b56263}, words(e.Code()))
}

func TestDisassemble(t *testing.T) {
	e := newTestEmitter(RV64GC(), true)
	e.ADDI(A0, A0, 10)
	e.ADD(A0, A1, A2)
	e.ADDI(A0, A0, 100)
	e.RET()
	lines := e.Disassemble()
	require.Len(t, lines, 4)
	assert.Equal(t, uint64(testBase), lines[0].Addr)
	assert.Equal(t, uint64(testBase+2), lines[1].Addr)
	assert.Equal(t, uint64(testBase+6), lines[2].Addr)
	assert.Equal(t, "0529", lines[0].Word())
	assert.Equal(t, "00c58533", lines[1].Word())
	for _, l := range lines {
		assert.False(t, strings.HasPrefix(l.Text, "."), "%s decoded as %q", l.Word(), l.Text)
	}

	var buf bytes.Buffer
	require.NoError(t, emitter.WriteListing(&buf, lines))
	assert.Contains(t, buf.String(), "0x00010002: 00c58533  ")

	bad := Disassemble([]byte{0xff, 0xff, 0xff, 0xff}, 0x2000)
	require.Len(t, bad, 1)
	assert.True(t, strings.HasPrefix(bad[0].Text, ".word"), bad[0].Text)
}
