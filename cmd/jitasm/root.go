package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/colorfulnotion/jit/asm"
	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/log"
	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	arch    string
	caps    string
	base    string
	size    string
	level   string
	modules string
	color   bool
	trace   string

	tracer    emitter.Tracer
	traceFile io.Closer
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:               "jitasm",
		Short:             "RISC-V and LoongArch64 machine code tool",
		Version:           fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return o.setup(cmd) },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return o.close()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	f := root.PersistentFlags()
	f.StringVar(&o.arch, "arch", env.Str("JITASM_ARCH", "riscv"), "target architecture: riscv, riscv32 or loongarch")
	f.StringVar(&o.caps, "caps", env.Str("JITASM_CAPS"), "ISA string such as rv64gc_zba_zbb or la64_fpu_lsx; overrides --arch")
	f.StringVar(&o.base, "base", env.Str("JITASM_BASE", "0x10000"), "exec address of the first instruction")
	f.StringVar(&o.size, "size", "64KiB", "code region size")
	f.StringVar(&o.level, "log", env.Str("JITASM_LOG", "warn"), "log level (trace, debug, info, warn, error)")
	f.StringVar(&o.modules, "debug", "", "log modules to enable: rv_emit, la_emit, fixup_mod, li_mod, execmem_mod or all")
	f.BoolVar(&o.color, "color", env.Bool("JITASM_COLOR"), "colored log output")
	f.StringVar(&o.trace, "trace", "", "write one JSON line per emitted word to this file, - for stderr")

	root.AddCommand(
		newEncodeCmd(o),
		newLICmd(o),
		newAsmCmd(o),
		newTableCmd(o),
		newReplCmd(o),
		newScriptCmd(o),
		newVerifyCmd(o),
		newChartCmd(o),
		newDisasmCmd(o),
	)
	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	if _, err := log.ParseLevel(o.level); err != nil {
		return err
	}
	log.InitLoggerTo(cmd.ErrOrStderr(), o.level, o.color)
	log.EnableModules(o.modules)

	if o.trace == "" {
		return nil
	}
	isa, err := o.isa()
	if err != nil {
		return err
	}
	var w io.Writer = cmd.ErrOrStderr()
	if o.trace != "-" {
		f, err := os.Create(o.trace)
		if err != nil {
			return err
		}
		o.traceFile = f
		w = f
	}
	o.tracer = newTraceAdapter(log.NewTraceWriter(w, isa))
	return nil
}

func (o *options) close() error {
	if o.traceFile == nil {
		return nil
	}
	err := o.traceFile.Close()
	o.traceFile = nil
	return err
}

// isa resolves the capability string: --caps when given, else the default
// profile of --arch.
func (o *options) isa() (string, error) {
	if o.caps != "" {
		return o.caps, nil
	}
	switch strings.ToLower(o.arch) {
	case "riscv", "riscv64", "rv", "rv64":
		return "rv64gc", nil
	case "riscv32", "rv32":
		return "rv32gc", nil
	case "loongarch", "loongarch64", "la", "la64":
		return "la464", nil
	}
	return "", fmt.Errorf("unknown arch %q", o.arch)
}

func (o *options) baseAddr() (uintptr, error) {
	v, err := strconv.ParseUint(o.base, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad --base %q", o.base)
	}
	return uintptr(v), nil
}

func (o *options) regionSize() (int, error) {
	n, err := units.RAMInBytes(o.size)
	if err != nil {
		return 0, fmt.Errorf("bad --size: %w", err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("bad --size %q", o.size)
	}
	return int(n), nil
}

// newAssembler builds an assembler over a fresh in-memory region.
func (o *options) newAssembler() (*asm.Assembler, error) {
	base, err := o.baseAddr()
	if err != nil {
		return nil, err
	}
	size, err := o.regionSize()
	if err != nil {
		return nil, err
	}
	return o.assemblerIn(emitter.NewSliceRegion(base, size))
}

func (o *options) assemblerIn(r emitter.Region) (*asm.Assembler, error) {
	isa, err := o.isa()
	if err != nil {
		return nil, err
	}
	a, err := asm.New(r, isa)
	if err != nil {
		return nil, err
	}
	if o.tracer != nil {
		a.Cursor().SetTracer(o.tracer)
	}
	log.Debug(log.JitAsm, "assembler ready", "isa", a.ISA(), "base", fmt.Sprintf("%#x", r.ExecAddr()),
		"size", units.BytesSize(float64(len(r.Writable()))))
	return a, nil
}

// parseValue reads a signed or unsigned 64-bit literal in any Go base.
func parseValue(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return v, nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	return int64(v), nil
}
