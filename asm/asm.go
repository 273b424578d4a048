// Package asm is a line-oriented assembler over the riscv and loongarch
// emitters. Each line holds an optional "label:" and one instruction or
// directive; '#' and ';' start a comment. A branch to a label that is not
// yet defined is emitted through the fixup protocol and patched when the
// label appears.
package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/colorfulnotion/jit/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Arch names a backend.
type Arch string

const (
	RISCV     Arch = "riscv"
	LoongArch Arch = "loongarch"
)

var ErrUndefinedLabel = errors.New("undefined label")

// backend adapts one ISA emitter to the assembler.
type backend interface {
	cursor() *emitter.Cursor
	isa() string
	// instruction emits mn with its operands. Encoding failures panic with
	// *jiterrors.EmitError; operand syntax errors are returned.
	instruction(a *Assembler, mn string, ops []string) error
	setJumpTarget(fb emitter.FixupBranch, target uintptr)
	reserve(n int)
	option(name string) error
	li(reg string, v int64) error
	check() error
	disassemble(code []byte, pc uint64) []emitter.Line
}

// Assembler accumulates code for one region. Not safe for concurrent use.
type Assembler struct {
	arch    Arch
	be      backend
	labels  map[string]uintptr
	pending map[string][]emitter.FixupBranch
	lines   int
}

// New returns an assembler writing into region. isa selects the backend by
// its prefix: "rv32"/"rv64" for RISC-V, "la" for LoongArch.
func New(region emitter.Region, isa string) (*Assembler, error) {
	a := &Assembler{
		labels:  map[string]uintptr{},
		pending: map[string][]emitter.FixupBranch{},
	}
	lower := strings.ToLower(strings.TrimSpace(isa))
	var err error
	switch {
	case strings.HasPrefix(lower, "rv"):
		a.arch = RISCV
		a.be, err = newRISCV(region, lower)
	case strings.HasPrefix(lower, "la"):
		a.arch = LoongArch
		a.be, err = newLoongArch(region, lower)
	default:
		err = fmt.Errorf("unknown isa %q", isa)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Assembler) Arch() Arch  { return a.arch }
func (a *Assembler) ISA() string { return a.be.isa() }

// PC is the exec address of the next instruction.
func (a *Assembler) PC() uintptr { return a.be.cursor().CodePointer() }

func (a *Assembler) Code() []byte { return a.be.cursor().Code() }

// Cursor exposes the underlying code buffer, e.g. to install a tracer.
func (a *Assembler) Cursor() *emitter.Cursor { return a.be.cursor() }

// Labels returns a copy of the defined labels.
func (a *Assembler) Labels() map[string]uintptr { return maps.Clone(a.labels) }

// Disassemble lists everything assembled so far.
func (a *Assembler) Disassemble() []emitter.Line {
	c := a.be.cursor()
	return a.be.disassemble(c.Code(), uint64(c.Region().ExecAddr()))
}

// Assemble reads src line by line and stops at the first error.
func (a *Assembler) Assemble(src io.Reader) error {
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		a.lines++
		if err := a.Line(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", a.lines, err)
		}
	}
	return sc.Err()
}

// AssembleString assembles src and finishes the unit.
func (a *Assembler) AssembleString(src string) error {
	if err := a.Assemble(strings.NewReader(src)); err != nil {
		return err
	}
	return a.Finish()
}

// Line assembles a single line. Nothing is written when it fails.
func (a *Assembler) Line(text string) error {
	if i := strings.IndexAny(text, "#;"); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	for {
		i := strings.IndexByte(text, ':')
		if i < 0 || !isIdent(text[:i]) {
			break
		}
		if err := a.Label(text[:i]); err != nil {
			return err
		}
		text = strings.TrimSpace(text[i+1:])
	}
	if text == "" {
		return nil
	}
	mn, rest, _ := strings.Cut(text, " ")
	if j := strings.IndexByte(mn, '\t'); j >= 0 {
		mn, rest = mn[:j], mn[j+1:]+" "+rest
	}
	mn = strings.ToLower(mn)
	ops := splitOperands(rest)

	start := a.PC()
	err := catch(func() error {
		if strings.HasPrefix(mn, ".") {
			return a.directive(mn, ops)
		}
		return a.be.instruction(a, mn, ops)
	})
	if err != nil {
		a.be.cursor().SetCodePointer(start)
		return err
	}
	return nil
}

// Label defines name at the current PC and patches every branch waiting
// for it.
func (a *Assembler) Label(name string) error {
	if !isIdent(name) {
		return fmt.Errorf("bad label %q", name)
	}
	if _, dup := a.labels[name]; dup {
		return fmt.Errorf("label %q defined twice", name)
	}
	pc := a.PC()
	a.labels[name] = pc
	waiting := a.pending[name]
	delete(a.pending, name)
	return jiterrors.Catch(func() {
		for _, fb := range waiting {
			a.be.setJumpTarget(fb, pc)
		}
		if len(waiting) > 0 {
			log.Debug(log.JitAsm, "label resolved", "label", name, "pc", fmt.Sprintf("%#x", pc), "fixups", len(waiting))
		}
	})
}

// Finish fails on labels that were referenced but never defined, then on
// any fixup left open.
func (a *Assembler) Finish() error {
	if len(a.pending) > 0 {
		names := maps.Keys(a.pending)
		slices.Sort(names)
		return fmt.Errorf("%w: %s", ErrUndefinedLabel, strings.Join(names, ", "))
	}
	return a.be.check()
}

// LI loads v into the named register with the backend's materializer.
func (a *Assembler) LI(reg string, v int64) error {
	return catch(func() error { return a.be.li(reg, v) })
}

// target resolves a branch operand. A number is an absolute address and a
// defined label its address; an undefined label returns ok false.
func (a *Assembler) target(op string) (addr uintptr, ok bool, err error) {
	if v, err := parseInt(op); err == nil {
		return uintptr(v), true, nil
	}
	if !isIdent(op) {
		return 0, false, fmt.Errorf("bad branch target %q", op)
	}
	if pc, found := a.labels[op]; found {
		return pc, true, nil
	}
	return 0, false, nil
}

// branch emits a control transfer to op: direct when the target is known,
// through fixup otherwise.
func (a *Assembler) branch(op string, direct func(uintptr), fixup func() emitter.FixupBranch) error {
	dst, ok, err := a.target(op)
	if err != nil {
		return err
	}
	if ok {
		direct(dst)
		return nil
	}
	a.pending[op] = append(a.pending[op], fixup())
	return nil
}

func (a *Assembler) directive(name string, ops []string) error {
	c := a.be.cursor()
	switch name {
	case ".word", ".half":
		if len(ops) == 0 {
			return fmt.Errorf("%s needs a value", name)
		}
		for _, op := range ops {
			v, err := parseInt(op)
			if err != nil {
				return err
			}
			bits := 16
			if name == ".word" {
				bits = 32
			}
			if v < -1<<(bits-1) || v >= 1<<bits {
				jiterrors.Failf(name, "value", jiterrors.ErrRImmRange, "%d does not fit %d bits", v, bits)
			}
			if bits == 32 {
				c.Write32(uint32(v))
			} else {
				c.Write16(uint16(v))
			}
		}
	case ".align":
		n, err := oneInt(name, ops)
		if err != nil {
			return err
		}
		if n <= 0 || n&(n-1) != 0 {
			return fmt.Errorf(".align %d: not a power of two", n)
		}
		c.Align(int(n), a.be.reserve)
	case ".space":
		n, err := oneInt(name, ops)
		if err != nil {
			return err
		}
		a.be.reserve(int(n))
	case ".option":
		if len(ops) != 1 {
			return fmt.Errorf(".option needs one name")
		}
		return a.be.option(strings.ToLower(ops[0]))
	default:
		return fmt.Errorf("unknown directive %s", name)
	}
	return nil
}

// catch runs fn and returns either the emit error it panicked with or the
// error it returned.
func catch(fn func() error) error {
	var inner error
	if err := jiterrors.Catch(func() { inner = fn() }); err != nil {
		return err
	}
	return inner
}
