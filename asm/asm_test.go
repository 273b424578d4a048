package asm

import (
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

func newTestAssembler(t *testing.T, isa string) *Assembler {
	t.Helper()
	a, err := New(emitter.NewSliceRegion(testBase, 4096), isa)
	require.NoError(t, err)
	return a
}

func words(code []byte) []uint32 {
	out := make([]uint32, 0, len(code)/4)
	for ; len(code) >= 4; code = code[4:] {
		out = append(out, binary.LittleEndian.Uint32(code))
	}
	return out
}

func TestNew(t *testing.T) {
	tests := []struct {
		isa  string
		arch Arch
		name string
	}{
		{"rv64gc", RISCV, "rv64imafdc_zicsr"},
		{"RV32IMC", RISCV, "rv32imc"},
		{"la464", LoongArch, ""},
		{"loongarch", LoongArch, ""},
		{"la64_fpu", LoongArch, "la64_fpu"},
	}
	for _, tc := range tests {
		t.Run(tc.isa, func(t *testing.T) {
			a := newTestAssembler(t, tc.isa)
			assert.Equal(t, tc.arch, a.Arch())
			if tc.name != "" {
				assert.Equal(t, tc.name, a.ISA())
			}
		})
	}
	for _, bad := range []string{"x86", "rv64", "la32", ""} {
		_, err := New(emitter.NewSliceRegion(testBase, 64), bad)
		assert.Error(t, err, bad)
	}
}

func TestRISCV(t *testing.T) {
	tests := []struct {
		src  string
		want uint32
	}{
		{"addi a0, a0, 1", 0x00150513},
		{"addi a0, a0, -1", 0xfff50513},
		{"add a0, a1, a2", 0x00c58533},
		{"ld a0, 8(sp)", 0x00813503},
		{"sd ra, 8(sp)", 0x00113423},
		{"lui a0, 0x12345", 0x12345537},
		{"ecall", 0x00000073},
		{"ebreak", 0x00100073},
		{"nop", 0x00000013},
		{"ret", 0x00008067},
		{"fence", 0x0ff0000f},
		{"fence.tso", 0x8330000f},
		{"amoadd.w.aqrl a0, a1, (a2)", 0x06b6252f},
		{"csrr a0, cycle", 0xc0002573},
		{"csrrs a0, 0xc00, zero", 0xc0002573},
		{"vsetvli t0, a0, e32, m1, ta, ma", 0x0d0572d7},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			a := newTestAssembler(t, "rv64gcv")
			require.NoError(t, a.AssembleString(tc.src))
			assert.Equal(t, []uint32{tc.want}, words(a.Code()))
		})
	}
}

func TestRISCVZfa(t *testing.T) {
	tests := []struct {
		src  string
		want uint32
	}{
		{"fli.d fa0, 1.0", 0xf2180553},
		{"fli.s fa0, 0.5", 0xf0160553},
		{"fli.d fa0, min", 0xf2108553},
		{"fli.s fa0, inf", 0xf01f0553},
		{"fli.d fa0, nan", 0xf21f8553},
		{"fli.h fa0, 1.0", 0xf4180553},
		{"fminm.d fa0, fa1, fa2", 0x2ac5a553},
		{"fleq.d a0, fa1, fa2", 0xa2c5c553},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			a := newTestAssembler(t, "rv64gc_zfh_zfa")
			require.NoError(t, a.AssembleString(tc.src))
			assert.Equal(t, []uint32{tc.want}, words(a.Code()))
		})
	}

	a := newTestAssembler(t, "rv64gc_zfa")
	assert.True(t, errors.Is(a.AssembleString("fli.d fa0, 0.1"), jiterrors.ErrRImmRange))
	assert.Error(t, a.AssembleString("fli.d fa0, one"))
	a = newTestAssembler(t, "rv64gc")
	assert.True(t, errors.Is(a.AssembleString("fli.d fa0, 1.0"), jiterrors.ErrUUnsupported))
}

func TestRISCVCompressed(t *testing.T) {
	a := newTestAssembler(t, "rv64gc")
	require.NoError(t, a.AssembleString("c.addi a0, 1\n.option rvc\nmv a0, a1\n"))
	assert.Equal(t, []byte{0x05, 0x05, 0x2e, 0x85}, a.Code())

	a = newTestAssembler(t, "rv64g")
	err := a.AssembleString("c.addi a0, 1")
	assert.True(t, errors.Is(err, jiterrors.ErrUUnsupported), "got %v", err)
}

func TestRISCVLabels(t *testing.T) {
	t.Run("backward", func(t *testing.T) {
		a := newTestAssembler(t, "rv64gc")
		require.NoError(t, a.AssembleString(`
loop:	addi a0, a0, -1   # count down
	bnez a0, loop
	ret
`))
		assert.Equal(t, []uint32{0xfff50513, 0xfe051ee3, 0x00008067}, words(a.Code()))
		assert.Equal(t, map[string]uintptr{"loop": testBase}, a.Labels())
	})

	t.Run("forward", func(t *testing.T) {
		a := newTestAssembler(t, "rv64gc")
		require.NoError(t, a.AssembleString(`
	beqz a0, done
	addi a0, a0, 1
done:
	ret
`))
		assert.Equal(t, []uint32{0x00050463, 0x00150513, 0x00008067}, words(a.Code()))
	})

	t.Run("jump", func(t *testing.T) {
		a := newTestAssembler(t, "rv64gc")
		require.NoError(t, a.AssembleString("j end\nnop\nend: ret"))
		assert.Equal(t, []uint32{0x0080006f, 0x00000013, 0x00008067}, words(a.Code()))
	})

	t.Run("several waiting", func(t *testing.T) {
		a := newTestAssembler(t, "rv64gc")
		require.NoError(t, a.AssembleString("beqz a0, out\nbnez a1, out\nout:"))
		assert.Equal(t, []uint32{0x00050463, 0x00059263}, words(a.Code()))
	})

	t.Run("undefined", func(t *testing.T) {
		a := newTestAssembler(t, "rv64gc")
		err := a.AssembleString("j nowhere\nbeqz a0, away\n")
		assert.True(t, errors.Is(err, ErrUndefinedLabel), "got %v", err)
		assert.Contains(t, err.Error(), "away, nowhere")
	})

	t.Run("duplicate", func(t *testing.T) {
		a := newTestAssembler(t, "rv64gc")
		err := a.AssembleString("x: nop\nx: nop")
		assert.ErrorContains(t, err, "line 2")
	})
}

func TestRISCVErrors(t *testing.T) {
	tests := []struct {
		src  string
		want error
	}{
		{"addi a0, a0, 4096", jiterrors.ErrRImmRange},
		{"addi fa0, a0, 1", jiterrors.ErrERegisterClass},
		{"vadd.vv v1, v2, v3", jiterrors.ErrUUnsupported},
		{"li zero, 5", jiterrors.ErrEHintWrite},
		{"lr.w a0, 4(a1)", jiterrors.ErrEOperandConstraint},
		{"lui a0, 0x100000", jiterrors.ErrRImmRange},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			a := newTestAssembler(t, "rv64gc")
			err := a.AssembleString(tc.src)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, a.Code())
		})
	}

	syntax := []string{
		"frobnicate a0",
		"add a0, a1",
		"add a0, a1, q9",
		"ld a0, a1",
		"fadd.d fa0, fa1, fa2, sideways",
		"fence rw, z",
		"vsetvli t0, a0, e7, m1",
		".align 3",
		".bogus",
	}
	for _, src := range syntax {
		a := newTestAssembler(t, "rv64gcv")
		assert.Error(t, a.AssembleString(src), src)
		assert.Empty(t, a.Code(), src)
	}
}

func TestLineNumbers(t *testing.T) {
	a := newTestAssembler(t, "rv64gc")
	err := a.Assemble(strings.NewReader("nop\n\n# comment\nadd a0, a1, 12\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "line 4: "), err.Error())
	assert.Len(t, a.Code(), 4)
}

func TestDirectives(t *testing.T) {
	a := newTestAssembler(t, "rv64gc")
	require.NoError(t, a.AssembleString(`
	nop
	.align 16
	.word 0xdeadbeef, 1
	.half 0x1234
	.space 2
`))
	got := words(a.Code()[:24])
	assert.Equal(t, []uint32{0x00000013, 0x00100073, 0x00100073, 0x00100073, 0xdeadbeef, 1}, got)
	assert.Equal(t, []byte{0x34, 0x12, 0x02, 0x90}, a.Code()[24:])
	assert.Equal(t, uintptr(testBase+28), a.PC())

	a = newTestAssembler(t, "rv64gc")
	require.NoError(t, a.AssembleString(".word -1, 0xffffffff\n.half -32768, 0xffff"))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x80, 0xff, 0xff}, a.Code())

	for _, src := range []string{".word 0x100000000", ".word -0x80000001", ".half 0x10000", ".half -32769", ".word 1, 0x1ffffffff"} {
		a := newTestAssembler(t, "rv64gc")
		err := a.AssembleString(src)
		assert.True(t, errors.Is(err, jiterrors.ErrRImmRange), "%s: got %v", src, err)
		assert.Empty(t, a.Code(), src)
	}
}

func TestLI(t *testing.T) {
	a := newTestAssembler(t, "la464")
	require.NoError(t, a.LI("a0", 0x12345678))
	assert.Equal(t, []uint32{0x142468a4, 0x0399e084}, words(a.Code()))
	assert.Error(t, a.LI("q0", 1))
	assert.True(t, errors.Is(a.LI("zero", 1), jiterrors.ErrEHintWrite))
}

func TestLoongArch(t *testing.T) {
	tests := []struct {
		src  string
		want []uint32
	}{
		{"add.d a0, a1, a2", []uint32{0x001098a4}},
		{"add.d $a0, $a1, $a2", []uint32{0x001098a4}},
		{"addi.d a0, a0, 1", []uint32{0x02c00484}},
		{"ret", []uint32{0x4c000020}},
		{"nop", []uint32{0x03400000}},
		{"break", []uint32{0x002a0000}},
		{"li.d a0, 0x12345678", []uint32{0x142468a4, 0x0399e084}},
		{"fcmp.clt.d fcc0, fa0, fa1", []uint32{0x0c210400}},
		{"bl 0x11000", []uint32{0x54100000}},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			a := newTestAssembler(t, "la464")
			require.NoError(t, a.AssembleString(tc.src))
			assert.Equal(t, tc.want, words(a.Code()))
		})
	}
}

func TestLoongArchLabels(t *testing.T) {
	a := newTestAssembler(t, "la464")
	require.NoError(t, a.AssembleString(`
loop:
	addi.d a0, a0, -1
	bnez a0, loop
	beqz a0, done
	b done
done:
	ret
`))
	assert.Equal(t, []uint32{0x02fffc84, 0x47fffc9f, 0x40000880, 0x50000400, 0x4c000020}, words(a.Code()))
}

func TestLoongArchErrors(t *testing.T) {
	tests := []struct {
		isa  string
		src  string
		want error
	}{
		{"la64", "fadd.d fa0, fa1, fa2", jiterrors.ErrUUnsupported},
		{"la64_fpu", "vadd.b vr0, vr1, vr2", jiterrors.ErrUUnsupported},
		{"la464", "addi.d a0, a0, 2048", jiterrors.ErrRImmRange},
		{"la464", "amadd.d a0, a1, a0", jiterrors.ErrEOperandConstraint},
		{"la464", "b 0x10002", jiterrors.ErrRBranchAlign},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			a := newTestAssembler(t, tc.isa)
			err := a.AssembleString(tc.src)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, a.Code())
		})
	}
	a := newTestAssembler(t, "la464")
	assert.Error(t, a.AssembleString(".option rvc"))
	assert.Error(t, a.AssembleString("fcmp.xyz.d fcc0, fa0, fa1"))
}

func TestDisassemble(t *testing.T) {
	a := newTestAssembler(t, "rv64gc")
	require.NoError(t, a.AssembleString("addi a0, a0, 1\nret"))
	lines := a.Disassemble()
	require.Len(t, lines, 2)
	assert.Equal(t, uint64(testBase), lines[0].Addr)
	assert.Contains(t, lines[0].Text, "addi")
	assert.Equal(t, uint64(testBase+4), lines[1].Addr)
}
