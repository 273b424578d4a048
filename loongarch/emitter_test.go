package loongarch

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = 0x10000

func newTestEmitter(caps Capabilities) *Emitter {
	return NewEmitter(emitter.NewSliceRegion(testBase, 4096), caps)
}

func words(code []byte) []uint32 {
	var out []uint32
	for ; len(code) >= 4; code = code[4:] {
		out = append(out, binary.LittleEndian.Uint32(code))
	}
	return out
}

func TestEmit(t *testing.T) {
	la := LA464()
	tests := []struct {
		name string
		emit func(e *Emitter)
		want []uint32
	}{
		{"add.w", func(e *Emitter) { e.ADD_W(T0, T1, T2) }, []uint32{0x001039ac}},
		{"nop", func(e *Emitter) { e.NOP() }, []uint32{0x03400000}},
		{"move", func(e *Emitter) { e.MOVE(A0, A1) }, []uint32{0x001500a4}},
		{"not", func(e *Emitter) { e.NOT(A0, A1) }, []uint32{0x001400a4}},
		{"neg.d", func(e *Emitter) { e.NEG_D(A0, A1) }, []uint32{0x00119404}},
		{"zext.w", func(e *Emitter) { e.ZEXT_W(A0, A1) }, []uint32{0x00df00a4}},
		{"ret", func(e *Emitter) { e.RET() }, []uint32{0x4c000020}},
		{"jr ra", func(e *Emitter) { e.JR(RA) }, []uint32{0x4c000020}},
		{"addi.d nop form", func(e *Emitter) { e.ADDI_D(ZERO, ZERO, 0) }, []uint32{0x02c00000}},
		{"alsl.w", func(e *Emitter) { e.ALSL_W(A0, A1, A2, 3) }, []uint32{0x000518a4}},
		{"bstrpick.w", func(e *Emitter) { e.BSTRPICK_W(A0, A1, 15, 8) }, []uint32{0x006fa0a4}},
		{"srai.d", func(e *Emitter) { e.SRAI_D(A0, A1, 40) }, []uint32{0x0049a0a4}},
		{"ld.d st.d", func(e *Emitter) {
			e.LD_D(A0, SP, 2047)
			e.ST_D(RA, SP, -2048)
		}, []uint32{0x28dffc64, 0x29e00061}},
		{"ll/sc", func(e *Emitter) {
			e.LL_W(A0, A1, -4)
			e.STPTR_D(A0, SP, -8)
		}, []uint32{0x20fffca4, 0x27fff864}},
		{"preld", func(e *Emitter) { e.PRELD(PrefetchStore, A1, 16) }, []uint32{0x2ac040a8}},
		{"amswap.w", func(e *Emitter) { e.AMSWAP_W(A0, A1, A2) }, []uint32{0x386014c4}},
		{"amadd_db.d", func(e *Emitter) { e.AMADD_DB_D(A0, A1, A2) }, []uint32{0x386a94c4}},
		{"crc", func(e *Emitter) { e.CRC_W_W_W(A0, A1, A2) }, []uint32{0x002518a4}},
		{"barriers", func(e *Emitter) {
			e.DBAR(0)
			e.IBAR(0)
			e.SYSCALL(0)
		}, []uint32{0x38720000, 0x38728000, 0x002b0000}},
		{"rdtime cpucfg", func(e *Emitter) {
			e.RDTIME_D(A0, A1)
			e.CPUCFG(A0, A1)
		}, []uint32{0x000068a4, 0x00006ca4}},
		{"fp", func(e *Emitter) {
			e.FADD_S(F0, F1, F2)
			e.FMADD_S(F0, F1, F2, F3)
			e.FCMP_COND_D(FCC0, F0, F1, CondCEQ)
			e.FSEL(F0, F1, F2, FCC3)
			e.MOVGR2FR_D(F0, A0)
			e.MOVFR2GR_D(A0, F0)
			e.MOVGR2FCSR(FCSR0, A0)
			e.FLD_S(F0, A1, -8)
		}, []uint32{0x01008820, 0x08118820, 0x0c220400, 0x0d018820, 0x0114a880, 0x0114b804, 0x0114c080, 0x2b3fe0a0}},
		{"lsx", func(e *Emitter) {
			e.VLD(V1, A0, 16)
			e.VADD_W(V0, V1, V2)
			e.VBITSEL_V(V0, V1, V2, V3)
			e.VLDI(V1, -1)
			e.VREPLGR2VR_W(V1, A0)
			e.VSLLI_D(V0, V1, 63)
			e.VINSGR2VR_W(V0, A0, 3)
			e.VPICKVE2GR_DU(A0, V1, 1)
		}, []uint32{0x2c004081, 0x700b0820, 0x0d118820, 0x73e3ffe1, 0x729f0881, 0x732dfc20, 0x72ebec80, 0x72f3f424}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(la)
			require.NoError(t, jiterrors.Catch(func() { tc.emit(e) }))
			assert.Equal(t, tc.want, words(e.Code()))
		})
	}
}

func TestEmitterErrors(t *testing.T) {
	la := LA464()
	base := Capabilities{}
	tests := []struct {
		name string
		caps Capabilities
		emit func(e *Emitter)
		want error
	}{
		{"add to zero", la, func(e *Emitter) { e.ADD_D(ZERO, A0, A1) }, jiterrors.ErrEHintWrite},
		{"addi.d to zero", la, func(e *Emitter) { e.ADDI_D(ZERO, A0, 0) }, jiterrors.ErrEHintWrite},
		{"andi to zero imm", la, func(e *Emitter) { e.ANDI(ZERO, ZERO, 1) }, jiterrors.ErrEHintWrite},
		{"lu12i to zero", la, func(e *Emitter) { e.LU12I_W(ZERO, 1) }, jiterrors.ErrEHintWrite},
		{"slli to zero", la, func(e *Emitter) { e.SLLI_D(ZERO, A0, 1) }, jiterrors.ErrEHintWrite},
		{"move to zero", la, func(e *Emitter) { e.MOVE(ZERO, A0) }, jiterrors.ErrEHintWrite},
		{"li to zero", la, func(e *Emitter) { e.LI(ZERO, 5) }, jiterrors.ErrEHintWrite},
		{"sc.w to zero", la, func(e *Emitter) { e.SC_W(ZERO, A0, 0) }, jiterrors.ErrEHintWrite},
		{"fadd gpr", la, func(e *Emitter) { e.FADD_D(A0, F1, F2) }, jiterrors.ErrERegisterClass},
		{"vadd fpr", la, func(e *Emitter) { e.VADD_B(F0, V1, V2) }, jiterrors.ErrERegisterClass},
		{"amswap overlap", la, func(e *Emitter) { e.AMSWAP_D(A0, A0, A1) }, jiterrors.ErrEOperandConstraint},
		{"slli.w 32", la, func(e *Emitter) { e.SLLI_W(A0, A0, 32) }, jiterrors.ErrRImmRange},
		{"jirl offs 2", la, func(e *Emitter) { e.JIRL(RA, A0, 2) }, jiterrors.ErrRImmAlign},

		{"fadd without FPU", base, func(e *Emitter) { e.FADD_S(F0, F1, F2) }, jiterrors.ErrUUnsupported},
		{"bceqz without FPU", base, func(e *Emitter) { e.BCEQZFixup(FCC0) }, jiterrors.ErrUUnsupported},
		{"vadd without LSX", Capabilities{FPU: true}, func(e *Emitter) { e.VADD_W(V0, V1, V2) }, jiterrors.ErrUUnsupported},
		{"amadd without LAM", base, func(e *Emitter) { e.AMADD_W(A0, A1, A2) }, jiterrors.ErrUUnsupported},
		{"crc without CRC32", base, func(e *Emitter) { e.CRC_W_B_W(A0, A1, A2) }, jiterrors.ErrUUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(tc.caps)
			err := jiterrors.Catch(func() { tc.emit(e) })
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, e.Code(), "nothing is written on failure")
		})
	}
}

func TestBranches(t *testing.T) {
	la := LA464()
	tests := []struct {
		name string
		emit func(e *Emitter)
		want []uint32
	}{
		{"beq a0,a1,8", func(e *Emitter) { e.BEQ(A0, A1, testBase+8) }, []uint32{0x58000885}},
		{"bgt a0,a1,8", func(e *Emitter) { e.BGT(A0, A1, testBase+8) }, []uint32{0x600008a4}},
		{"bnez a0,12", func(e *Emitter) { e.BNEZ(A0, testBase+12) }, []uint32{0x44000c80}},
		{"bceqz fcc1,8", func(e *Emitter) { e.BCEQZ(FCC1, testBase+8) }, []uint32{0x48000820}},
		{"b 0x1000", func(e *Emitter) { e.B(testBase + 0x1000) }, []uint32{0x50100000}},
		{"bl 0x1000", func(e *Emitter) { e.BL(testBase + 0x1000) }, []uint32{0x54100000}},
		{"b max", func(e *Emitter) { e.B(testBase + 0x7fffffc) }, []uint32{0x53fffdff}},
		{"generic blt", func(e *Emitter) { e.EmitBranch(BLT, A1, A0, testBase+8) }, []uint32{0x600008a4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(la)
			tc.emit(e)
			assert.Equal(t, tc.want, words(e.Code()))
		})
	}

	errTests := []struct {
		name string
		emit func(e *Emitter)
		want error
	}{
		{"beq out of range", func(e *Emitter) { e.BEQ(A0, A1, testBase+0x20000) }, jiterrors.ErrRBranchRange},
		{"beqz out of range", func(e *Emitter) { e.BEQZ(A0, testBase+0x400000) }, jiterrors.ErrRBranchRange},
		{"b out of range", func(e *Emitter) { e.B(testBase + 0x8000000) }, jiterrors.ErrRBranchRange},
		{"beq misaligned target", func(e *Emitter) { e.BEQ(A0, A1, testBase+2) }, jiterrors.ErrRBranchAlign},
	}
	for _, tc := range errTests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEmitter(la)
			err := jiterrors.Catch(func() { tc.emit(e) })
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestFixups(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		e := newTestEmitter(LA464())
		fb := e.BEQFixup(A0, A1)
		e.NOP()
		e.SetJumpTargetHere(fb)
		assert.Equal(t, []uint32{0x58000885, 0x03400000}, words(e.Code()))
		assert.NoError(t, e.CheckFixups())

		err := jiterrors.Catch(func() { e.SetJumpTargetHere(fb) })
		assert.True(t, errors.Is(err, jiterrors.ErrFFixupResolved))
	})

	t.Run("backward", func(t *testing.T) {
		e := newTestEmitter(LA464())
		e.NOP()
		e.NOP()
		fb := e.BFixup()
		assert.Equal(t, uintptr(testBase+8), fb.Addr())
		assert.Equal(t, KindJ, fb.Kind())
		e.SetJumpTarget(fb, testBase)
		assert.Equal(t, uint32(0x53fffbff), words(e.Code())[2])
	})

	t.Run("zero compare", func(t *testing.T) {
		e := newTestEmitter(LA464())
		fb := e.BNEZFixup(A0)
		assert.Equal(t, uint32(0x44000080), words(e.Code())[0])
		e.NOP()
		e.NOP()
		e.SetJumpTargetHere(fb)
		cb := e.BCEQZFixup(FCC1)
		e.NOP()
		e.SetJumpTargetHere(cb)
		assert.Equal(t, []uint32{0x44000c80, 0x03400000, 0x03400000, 0x48000820, 0x03400000}, words(e.Code()))
	})

	t.Run("bz range", func(t *testing.T) {
		e := NewEmitter(emitter.NewSliceRegion(testBase, 0x400010), LA464())
		fb := e.BEQZFixup(A0)
		e.SetCodePointer(testBase + 0x3ffffc)
		e.SetJumpTargetHere(fb)
		assert.Equal(t, uint32(0x43fffc8f), words(e.Code())[0])

		e.SetCodePointer(testBase + 0x400004)
		fb = e.BEQZFixup(A0)
		err := jiterrors.Catch(func() { e.SetJumpTarget(fb, testBase) })
		assert.True(t, errors.Is(err, jiterrors.ErrRBranchRange))
	})

	t.Run("pending and release", func(t *testing.T) {
		e := newTestEmitter(LA464())
		a := e.BNEFixup(A0, A1)
		b := e.BLFixup()
		assert.Equal(t, []emitter.FixupBranch{a, b}, e.PendingFixups())

		err := e.CheckFixups()
		require.Error(t, err)
		assert.True(t, errors.Is(err, jiterrors.ErrFFixupUnresolved))
		assert.Contains(t, err.Error(), "B@0x10000 J@0x10004")
		assert.Panics(t, func() { e.Release() })

		err = jiterrors.Catch(func() { e.SetJumpTarget(a, testBase+0x20000) })
		assert.True(t, errors.Is(err, jiterrors.ErrRBranchRange))
		assert.Len(t, e.PendingFixups(), 2)

		e.SetJumpTargetHere(a)
		e.DiscardFixup(b)
		assert.NoError(t, e.CheckFixups())
		assert.NotPanics(t, func() { e.Release() })
		assert.Equal(t, uint32(0x54000000), words(e.Code())[1], "discarded bl keeps a zero displacement")
	})
}

func TestReserveAndAlign(t *testing.T) {
	e := newTestEmitter(LA464())
	start := e.ReserveCodeSpace(8)
	assert.Equal(t, uintptr(testBase), start)
	assert.Equal(t, []uint32{0x002a0000, 0x002a0000}, words(e.Code()))

	e = newTestEmitter(LA464())
	e.NOP()
	assert.Equal(t, uintptr(testBase+16), e.AlignCode16())
	assert.Equal(t, []uint32{0x03400000, 0x002a0000, 0x002a0000, 0x002a0000}, words(e.Code()))
	assert.Equal(t, uintptr(testBase+16), e.AlignCode16())

	err := jiterrors.Catch(func() { e.ReserveCodeSpace(6) })
	assert.True(t, errors.Is(err, jiterrors.ErrRImmAlign))

	assert.Equal(t, uintptr(testBase+4096), e.AlignCodePage())
	assert.Equal(t, 4096, e.Offset())
}

func TestTable(t *testing.T) {
	in, err := Lookup(LA464(), "add.w")
	require.NoError(t, err)
	assert.Equal(t, ADD_W, in)

	_, err = Lookup(Capabilities{}, "fadd.d")
	assert.True(t, errors.Is(err, jiterrors.ErrUUnsupported))

	_, err = Lookup(LA464(), "frobnicate")
	require.Error(t, err)
	assert.False(t, errors.Is(err, jiterrors.ErrUUnsupported))

	assert.True(t, Supported(Capabilities{}, BEQ))
	assert.False(t, Supported(Capabilities{}, VLD))
	assert.True(t, Supported(Capabilities{LSX: true}, VLD))

	names := Mnemonics()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "amswap_db.w")
	assert.Contains(t, names, "vldi")
	assert.Len(t, Families(), 5)

	e := newTestEmitter(Capabilities{})
	e.Emit32(ADD_W, EncodeDJK(ADD_W, T0, T1, T2))
	err = jiterrors.Catch(func() { e.Emit32(FADD_D, EncodeFdFjFk(FADD_D, F0, F1, F2)) })
	assert.True(t, errors.Is(err, jiterrors.ErrUUnsupported))
	fb := e.EmitBranchFixup(BLTU, A0, A1)
	e.SetJumpTargetHere(fb)
	assert.Equal(t, []uint32{0x001039ac, 0x68000485}, words(e.Code()))
}

func TestCapabilities(t *testing.T) {
	c, err := ParseCapabilities("la64_lasx_lam")
	require.NoError(t, err)
	assert.True(t, c.LASX && c.LSX && c.FPU && c.LAM)
	assert.False(t, c.CRC32)
	assert.Equal(t, "la64_fpu_lsx_lasx_lam", c.String())

	c, err = ParseCapabilities("LA464")
	require.NoError(t, err)
	assert.Equal(t, LA464(), c)

	_, err = ParseCapabilities("rv64gc")
	assert.Error(t, err)
	_, err = ParseCapabilities("la64_sve")
	assert.Error(t, err)
}

func TestRegisters(t *testing.T) {
	tests := []struct {
		in   string
		want Reg
	}{
		{"zero", ZERO}, {"$ra", RA}, {"a0", A0}, {"r21", R21}, {"fp", FP}, {"s9", FP},
		{"t8", T8}, {"fa0", F0}, {"ft0", F8}, {"fs7", F31}, {"f12", F12}, {"vr3", V3}, {"xr4", X0 + 4},
	}
	for _, tc := range tests {
		r, err := ParseReg(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, r, tc.in)
	}
	_, err := ParseReg("r32")
	assert.Error(t, err)

	assert.Equal(t, "a0", A0.String())
	assert.Equal(t, "fs0", F24.String())
	assert.Equal(t, "vr7", V7.String())
	assert.True(t, A0.Is(ClassGPR))
	assert.False(t, F0.Is(ClassGPR))

	cf, err := ParseCFR("fcc7")
	require.NoError(t, err)
	assert.Equal(t, FCC7, cf)
	_, err = ParseCFR("fcc8")
	assert.Error(t, err)
	fcsr, err := ParseFCSR("$fcsr3")
	require.NoError(t, err)
	assert.Equal(t, FCSR3, fcsr)

	cond, err := ParseFcond("cult")
	require.NoError(t, err)
	assert.Equal(t, CondCULT, cond)
	assert.Equal(t, "sune", CondSUNE.String())
}

func TestParallelEmitters(t *testing.T) {
	var wg sync.WaitGroup
	codes := make([][]byte, 8)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := NewEmitter(emitter.NewSliceRegion(uintptr(testBase+i*0x1000), 0x1000), LA464())
			e.LI(A0, int64(i)<<40|0x12345)
			fb := e.BEQZFixup(A0)
			e.RET()
			e.SetJumpTargetHere(fb)
			e.Release()
			codes[i] = e.Code()
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(codes); i++ {
		assert.Equal(t, words(codes[1])[len(words(codes[1]))-2:], words(codes[i])[len(words(codes[i]))-2:])
	}
}

func TestDisassemble(t *testing.T) {
	e := newTestEmitter(LA464())
	e.ADD_W(T0, T1, T2)
	e.LI(A0, 0x12345678)
	e.RET()
	lines := e.Disassemble()
	require.Len(t, lines, 4)
	assert.Equal(t, uint64(testBase+4), lines[1].Addr)
	assert.Equal(t, "001039ac", lines[0].Word())
	for _, l := range lines {
		assert.False(t, strings.HasPrefix(l.Text, "."), "%s decoded as %q", l.Word(), l.Text)
	}

	var buf bytes.Buffer
	require.NoError(t, emitter.WriteListing(&buf, lines))
	assert.Contains(t, buf.String(), "0x00010004: 142468a4  ")

	bad := Disassemble([]byte{0xff, 0xff, 0xff, 0xff}, 0x2000)
	require.Len(t, bad, 1)
	assert.True(t, strings.HasPrefix(bad[0].Text, ".word"), bad[0].Text)
}
