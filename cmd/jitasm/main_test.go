package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns everything it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEncode(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "-f", "hex", "addi a0, a0, 1", "ret"}, "00150513\n00008067\n"},
		{[]string{"--caps", "la464", "encode", "-f", "hex", "add.d a0, a1, a2"}, "001098a4\n"},
		{[]string{"--arch", "loongarch", "encode", "-f", "hex", "nop"}, "03400000\n"},
		{[]string{"--caps", "rv64gc", "encode", "-f", "hex", ".option rvc", "mv a0, a1"}, "852e\n"},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	out, err := run(t, "encode", "addi a0, a0, 1")
	require.NoError(t, err)
	assert.Contains(t, out, "0x00010000: 00150513")

	_, err = run(t, "encode", "addi a0, a0, 4096")
	assert.ErrorContains(t, err, "ImmRange")
	_, err = run(t, "--arch", "sparc", "encode", "nop")
	assert.ErrorContains(t, err, "unknown arch")
	_, err = run(t, "--log", "loud", "encode", "nop")
	assert.Error(t, err)
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("JITASM_ARCH", "loongarch")
	t.Setenv("JITASM_BASE", "0x20000")
	out, err := run(t, "encode", "ret")
	require.NoError(t, err)
	assert.Contains(t, out, "0x00020000: 4c000020")
}

func TestLI(t *testing.T) {
	out, err := run(t, "--caps", "la464", "li", "a0", "0x12345678")
	require.NoError(t, err)
	assert.Contains(t, out, "(2 instructions, 8 bytes)")
	assert.Contains(t, out, "142468a4")
	assert.Contains(t, out, "0399e084")

	out, err = run(t, "li", "a0", "16", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "01000513")
	assert.Equal(t, 2, strings.Count(out, "# li a0"))

	_, err = run(t, "li", "zero", "1")
	assert.ErrorContains(t, err, "HintWrite")
	_, err = run(t, "li", "a0", "many")
	assert.ErrorContains(t, err, "bad value")
}

const loopSrc = `# count a0 down to zero
loop:	addi a0, a0, -1
	bnez a0, loop
	ret
`

func TestAsm(t *testing.T) {
	src := writeFile(t, "loop.s", loopSrc)
	out, err := run(t, "asm", "-f", "hex", src)
	require.NoError(t, err)
	assert.Equal(t, "fff50513\nfe051ee3\n00008067\n", out)

	bin := filepath.Join(t.TempDir(), "loop.bin")
	_, err = run(t, "asm", "-f", "bin", "-o", bin, src)
	require.NoError(t, err)
	code, err := os.ReadFile(bin)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x13, 0x05, 0xf5, 0xff, 0xe3, 0x1e, 0x05, 0xfe, 0x67, 0x80, 0x00, 0x00}, code)

	out, err = run(t, "disasm", bin)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Contains(t, out, "0x00010008: 00008067")

	bad := writeFile(t, "bad.s", "nop\nadd a0, a1\n")
	_, err = run(t, "asm", bad)
	assert.ErrorContains(t, err, "line 2")

	undef := writeFile(t, "undef.s", "j away\n")
	_, err = run(t, "asm", undef)
	assert.ErrorContains(t, err, "undefined label")

	_, err = run(t, "asm", "-f", "octal", src)
	assert.ErrorContains(t, err, "unknown format")
}

func TestTrace(t *testing.T) {
	trace := filepath.Join(t.TempDir(), "trace.jsonl")
	_, err := run(t, "--trace", trace, "encode", "beqz a0, out", "nop", "out: ret")
	require.NoError(t, err)
	raw, err := os.ReadFile(trace)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"msg_type":"emit"`)
	assert.Contains(t, lines[0], `"addr":"0x10000"`)
	assert.Contains(t, lines[1], `"word":"00000013"`)
	assert.Contains(t, lines[2], `"msg_type":"patch"`)
	assert.Contains(t, lines[2], `"word":"00050463"`)
	assert.Contains(t, lines[3], `"word":"00008067"`)
}

func TestTable(t *testing.T) {
	out, err := run(t, "--caps", "rv64gc", "table", "I")
	require.NoError(t, err)
	assert.Contains(t, out, "rv64gc")
	assert.Contains(t, out, "addi")
	assert.NotContains(t, out, "vadd.vv")

	out, err = run(t, "--caps", "rv64gc", "table", "--all", "V")
	require.NoError(t, err)
	assert.Contains(t, out, "V (disabled)")
	assert.Contains(t, out, "vadd.vv")

	out, err = run(t, "--caps", "la64", "table", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "LSX (disabled)")
	assert.Contains(t, out, "add.d")

	assert.Contains(t, mnemonics("rv64gc"), "c.addi")
	assert.NotContains(t, mnemonics("rv64g"), "c.addi")
}

func TestScript(t *testing.T) {
	out, err := run(t, "script", "-f", "hex", "-e", `
for (var i = 0; i < 2; i++) emit("addi a0, a0, 1");
label("end");
li("a0", "0x10");
print("pc", pc());
emit("ret");
`)
	require.NoError(t, err)
	assert.Equal(t, "pc 65548\n00150513\n00150513\n01000513\n00008067\n", out)

	path := writeFile(t, "gen.js", `li("a0", 16); emit("j end"); label("end")`)
	out, err = run(t, "script", "-f", "hex", path)
	require.NoError(t, err)
	assert.Equal(t, "01000513\n0040006f\n", out)

	out, err = run(t, "script", "-f", "hex", "-e", `try { emit("bogus") } catch (e) { print("caught") } emit("nop")`)
	require.NoError(t, err)
	assert.Equal(t, "caught\n00000013\n", out)

	_, err = run(t, "script", "-e", `emit("bogus")`)
	assert.ErrorContains(t, err, "script")
	_, err = run(t, "script")
	assert.ErrorContains(t, err, "nothing to run")
}

func TestVerify(t *testing.T) {
	good := writeFile(t, "good.json", `[
  {"name": "addi", "src": ["addi a0, a0, 1"], "words": ["00150513"]},
  {"name": "la ret", "isa": "la464", "base": "0x20000", "src": ["ret"], "words": ["0x4C000020"]},
  {"name": "c.mv", "src": [".option rvc", "mv a0, a1"], "words": ["852e"]},
  {"name": "range", "src": ["addi a0, a0, 4096"], "error": "ImmRange"}
]`)
	out, err := run(t, "verify", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok 4 vectors")

	bad := writeFile(t, "bad.json", `[
  {"name": "addi", "src": ["addi a0, a0, 1"], "words": ["00150513"]},
  {"name": "wrong", "src": ["addi a0, a0, 2"], "words": ["00150513"]}
]`)
	out, err = run(t, "verify", bad)
	assert.ErrorContains(t, err, "1 of 2 vectors differ")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "wrong")
	assert.Contains(t, out, "00250513")

	broken := writeFile(t, "broken.json", `{"src": 1}`)
	_, err = run(t, "verify", broken)
	assert.ErrorContains(t, err, "vectors")
}

func TestChart(t *testing.T) {
	html := filepath.Join(t.TempDir(), "li.html")
	out, err := run(t, "chart", "-o", html, "rv64gc", "la464")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+html)
	assert.Contains(t, out, "rv64gc")
	page, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(page), "echarts")

	st, err := measureLI("la464")
	require.NoError(t, err)
	assert.Equal(t, 1, st.max[12])
	assert.Equal(t, 2, st.max[32])
	assert.LessOrEqual(t, st.max[64], 4)
}

func TestSigBits(t *testing.T) {
	tests := []struct {
		v    int64
		want int
	}{
		{0, 1},
		{-1, 1},
		{1, 2},
		{2047, 12},
		{-2048, 12},
		{2048, 13},
		{-1 << 63, 64},
		{1<<63 - 1, 64},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, sigBits(tc.v), "%#x", tc.v)
	}
}

func TestDisasmWords(t *testing.T) {
	code, err := decodeWords([]string{"00150513", "0x0505"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x13, 0x05, 0x15, 0x00, 0x05, 0x05}, code)
	_, err = decodeWords([]string{"123"})
	assert.Error(t, err)

	out, err := run(t, "disasm", "--words", "00150513", "00008067")
	require.NoError(t, err)
	assert.Contains(t, out, "addi")
	assert.Contains(t, out, "0x00010004: 00008067")

	out, err = run(t, "--caps", "la464", "disasm", "--words", "4c000020")
	require.NoError(t, err)
	assert.Contains(t, out, "4c000020")
}

func TestReplSession(t *testing.T) {
	o := &options{arch: "riscv", base: "0x10000", size: "4KiB", level: "warn"}
	s, err := newReplSession(o)
	require.NoError(t, err)

	var out bytes.Buffer
	assert.False(t, s.exec("top: addi a0, a0, 1", &out))
	assert.Contains(t, out.String(), "0x00010000: 00150513")

	out.Reset()
	assert.False(t, s.exec("add a0, a1", &out))
	assert.Contains(t, out.String(), "error:")

	out.Reset()
	assert.False(t, s.exec(":labels", &out))
	assert.Contains(t, out.String(), "top")
	assert.Contains(t, out.String(), "0x10000")

	out.Reset()
	assert.False(t, s.exec("j top", &out))
	assert.Contains(t, out.String(), "0x00010004: ffdff06f")

	out.Reset()
	assert.False(t, s.exec(":reset", &out))
	assert.False(t, s.exec(":list", &out))
	assert.Empty(t, out.String())
	assert.True(t, s.exec(":quit", &out))
}

func TestOptions(t *testing.T) {
	o := &options{arch: "riscv32", size: "4KiB", base: "0x1000"}
	isa, err := o.isa()
	require.NoError(t, err)
	assert.Equal(t, "rv32gc", isa)
	n, err := o.regionSize()
	require.NoError(t, err)
	assert.Equal(t, 4096, n)

	o.caps = "la64_fpu"
	isa, err = o.isa()
	require.NoError(t, err)
	assert.Equal(t, "la64_fpu", isa)

	o.size = "lots"
	_, err = o.regionSize()
	assert.Error(t, err)
	o.base = "nowhere"
	_, err = o.baseAddr()
	assert.Error(t, err)
}
