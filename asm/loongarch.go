package asm

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
	la "github.com/colorfulnotion/jit/loongarch"
)

type laBackend struct {
	e    *la.Emitter
	caps la.Capabilities
}

// newLoongArch accepts "la464" or "la64" with _-separated features; a bare
// "la" or "loongarch" selects LA464.
func newLoongArch(region emitter.Region, isa string) (*laBackend, error) {
	if isa == "la" || isa == "loongarch" || isa == "loongarch64" {
		isa = "la464"
	}
	caps, err := la.ParseCapabilities(isa)
	if err != nil {
		return nil, err
	}
	return &laBackend{e: la.NewEmitter(region, caps), caps: caps}, nil
}

func (b *laBackend) cursor() *emitter.Cursor { return &b.e.Cursor }
func (b *laBackend) isa() string             { return b.caps.String() }
func (b *laBackend) reserve(n int)           { b.e.ReserveCodeSpace(n) }
func (b *laBackend) check() error            { return b.e.CheckFixups() }

func (b *laBackend) setJumpTarget(fb emitter.FixupBranch, target uintptr) {
	b.e.SetJumpTarget(fb, target)
}

func (b *laBackend) disassemble(code []byte, pc uint64) []emitter.Line {
	return la.Disassemble(code, pc)
}

func (b *laBackend) option(name string) error {
	return fmt.Errorf("unknown option %q", name)
}

func (b *laBackend) li(reg string, v int64) error {
	rd, err := la.ParseReg(reg)
	if err != nil {
		return err
	}
	b.e.LI(rd, v)
	return nil
}

func (b *laBackend) reader(mn string, ops []string) *reader[la.Reg] {
	return newReader(mn, ops, la.ParseReg)
}

func (b *laBackend) instruction(a *Assembler, mn string, ops []string) error {
	if ok, err := b.pseudo(a, mn, ops); ok {
		return err
	}
	var cond la.Fcond
	name := mn
	// fcmp.<cond>.<fmt> selects the fcmp.cond descriptor.
	if rest, ok := strings.CutPrefix(mn, "fcmp."); ok {
		c, fmtSuffix, _ := strings.Cut(rest, ".")
		fc, err := la.ParseFcond(c)
		if err != nil {
			return err
		}
		cond, name = fc, "fcmp.cond."+fmtSuffix
	}
	in, err := la.Lookup(b.caps, name)
	if err != nil {
		return err
	}
	return b.encode(a, in, cond, ops)
}

func (b *laBackend) encode(a *Assembler, in la.Inst, cond la.Fcond, ops []string) error {
	e := b.e
	o := b.reader(in.Name, ops)
	want := func(n int) error { return arity(in.Name, ops, n) }
	var w uint32
	switch in.Shape {
	case la.ShapeDJK, la.ShapeFdFjFk, la.ShapeFdJK, la.ShapeVdVjVk, la.ShapeVdJK, la.ShapeDKJ:
		if err := want(3); err != nil {
			return err
		}
		r0, r1, r2 := o.reg(0), o.reg(1), o.reg(2)
		if o.err != nil {
			return o.err
		}
		switch in.Shape {
		case la.ShapeDJK:
			w = la.EncodeDJK(in, r0, r1, r2)
		case la.ShapeFdFjFk:
			w = la.EncodeFdFjFk(in, r0, r1, r2)
		case la.ShapeFdJK:
			w = la.EncodeFdJK(in, r0, r1, r2)
		case la.ShapeVdVjVk:
			w = la.EncodeVdVjVk(in, r0, r1, r2)
		case la.ShapeVdJK:
			w = la.EncodeVdJK(in, r0, r1, r2)
		default:
			w = la.EncodeDKJ(in, r0, r1, r2)
		}

	case la.ShapeFdFjFkFa, la.ShapeVdVjVkVa:
		if err := want(4); err != nil {
			return err
		}
		r0, r1, r2, r3 := o.reg(0), o.reg(1), o.reg(2), o.reg(3)
		if o.err != nil {
			return o.err
		}
		if in.Shape == la.ShapeFdFjFkFa {
			w = la.EncodeFdFjFkFa(in, r0, r1, r2, r3)
		} else {
			w = la.EncodeVdVjVkVa(in, r0, r1, r2, r3)
		}

	case la.ShapeDJKUa2pp1, la.ShapeDJKUa2, la.ShapeDJKUa3:
		if err := want(4); err != nil {
			return err
		}
		rd, rj, rk, sa := o.reg(0), o.reg(1), o.reg(2), o.imm(3)
		if o.err != nil {
			return o.err
		}
		if in.Shape == la.ShapeDJKUa2pp1 {
			w = la.EncodeDJKUa2pp1(in, rd, rj, rk, uimm32(in.Name, sa))
		} else {
			w = la.EncodeDJKUa(in, rd, rj, rk, uimm32(in.Name, sa))
		}

	case la.ShapeDJ, la.ShapeJK, la.ShapeFdFj, la.ShapeFdJ, la.ShapeDFj, la.ShapeVdJ:
		if err := want(2); err != nil {
			return err
		}
		r0, r1 := o.reg(0), o.reg(1)
		if o.err != nil {
			return o.err
		}
		switch in.Shape {
		case la.ShapeDJ:
			w = la.EncodeDJ(in, r0, r1)
		case la.ShapeJK:
			w = la.EncodeJK(in, r0, r1)
		case la.ShapeFdFj:
			w = la.EncodeFdFj(in, r0, r1)
		case la.ShapeFdJ:
			w = la.EncodeFdJ(in, r0, r1)
		case la.ShapeDFj:
			w = la.EncodeDFj(in, r0, r1)
		default:
			w = la.EncodeVdJ(in, r0, r1)
		}

	case la.ShapeDJSk12, la.ShapeDJUk12, la.ShapeDJSk16, la.ShapeDJUk5, la.ShapeDJUk6,
		la.ShapeDJSk14ps2, la.ShapeFdJSk12, la.ShapeVdJSk12, la.ShapeVdVjUk, la.ShapeVdVjSk5,
		la.ShapeVdJUk, la.ShapeDVjUk, la.ShapeDJSk16ps2:
		if err := want(3); err != nil {
			return err
		}
		r0, r1, v := o.reg(0), o.reg(1), o.imm(2)
		if o.err != nil {
			return o.err
		}
		w = encodeRegRegImm(in, r0, r1, v)

	case la.ShapeDJUk5Um5, la.ShapeDJUk6Um6:
		if err := want(4); err != nil {
			return err
		}
		rd, rj, msb, lsb := o.reg(0), o.reg(1), o.imm(2), o.imm(3)
		if o.err != nil {
			return o.err
		}
		w = la.EncodeBitField(in, rd, rj, uimm32(in.Name, msb), uimm32(in.Name, lsb))

	case la.ShapeDSj20, la.ShapeVdSj13:
		if err := want(2); err != nil {
			return err
		}
		r0, v := o.reg(0), o.imm(1)
		if o.err != nil {
			return o.err
		}
		if in.Shape == la.ShapeDSj20 {
			w = la.EncodeDSj20(in, r0, imm32(in.Name, v))
		} else {
			w = la.EncodeVdSj13(in, r0, imm32(in.Name, v))
		}

	case la.ShapeUd5JSk12, la.ShapeUd5JK:
		if err := want(3); err != nil {
			return err
		}
		hint, rj := o.imm(0), o.reg(1)
		if in.Shape == la.ShapeUd5JK {
			rk := o.reg(2)
			if o.err != nil {
				return o.err
			}
			w = la.EncodeUd5JK(in, uimm32(in.Name, hint), rj, rk)
		} else {
			v := o.imm(2)
			if o.err != nil {
				return o.err
			}
			w = la.EncodeUd5JSk12(in, uimm32(in.Name, hint), rj, imm32(in.Name, v))
		}

	case la.ShapeUd15:
		if err := arity(in.Name, ops, 0, 1); err != nil {
			return err
		}
		var code int64
		if len(ops) == 1 {
			code = o.imm(0)
		}
		if o.err != nil {
			return o.err
		}
		w = la.EncodeUd15(in, uimm32(in.Name, code))

	case la.ShapeCdFjFkFcond:
		if err := want(3); err != nil {
			return err
		}
		cd, cerr := la.ParseCFR(ops[0])
		fj, fk := o.reg(1), o.reg(2)
		if cerr != nil {
			return cerr
		}
		if o.err != nil {
			return o.err
		}
		w = la.EncodeCdFjFkFcond(in, cd, fj, fk, cond)

	case la.ShapeFdFjFkCa:
		if err := want(4); err != nil {
			return err
		}
		fd, fj, fk := o.reg(0), o.reg(1), o.reg(2)
		ca, cerr := la.ParseCFR(ops[3])
		if o.err != nil {
			return o.err
		}
		if cerr != nil {
			return cerr
		}
		w = la.EncodeFdFjFkCa(in, fd, fj, fk, ca)

	case la.ShapeJUd5, la.ShapeDUj5:
		if err := want(2); err != nil {
			return err
		}
		fcsrOp, regOp := ops[0], 1
		if in.Shape == la.ShapeDUj5 {
			fcsrOp, regOp = ops[1], 0
		}
		fcsr, ferr := la.ParseFCSR(fcsrOp)
		r := o.reg(regOp)
		if ferr != nil {
			return ferr
		}
		if o.err != nil {
			return o.err
		}
		if in.Shape == la.ShapeJUd5 {
			w = la.EncodeJUd5(in, fcsr, r)
		} else {
			w = la.EncodeDUj5(in, r, fcsr)
		}

	case la.ShapeCdFj, la.ShapeCdJ, la.ShapeFdCj, la.ShapeDCj:
		if err := want(2); err != nil {
			return err
		}
		cfOp, regOp := ops[0], 1
		if in.Shape == la.ShapeFdCj || in.Shape == la.ShapeDCj {
			cfOp, regOp = ops[1], 0
		}
		cf, cerr := la.ParseCFR(cfOp)
		r := o.reg(regOp)
		if cerr != nil {
			return cerr
		}
		if o.err != nil {
			return o.err
		}
		switch in.Shape {
		case la.ShapeCdFj:
			w = la.EncodeCdFj(in, cf, r)
		case la.ShapeCdJ:
			w = la.EncodeCdJ(in, cf, r)
		case la.ShapeFdCj:
			w = la.EncodeFdCj(in, r, cf)
		default:
			w = la.EncodeDCj(in, r, cf)
		}

	case la.ShapeJDSk16ps2:
		if err := want(3); err != nil {
			return err
		}
		rj, rd := o.reg(0), o.reg(1)
		if o.err != nil {
			return o.err
		}
		return a.branch(ops[2],
			func(dst uintptr) { e.EmitBranch(in, rj, rd, dst) },
			func() emitter.FixupBranch { return e.EmitBranchFixup(in, rj, rd) })

	case la.ShapeJSd5k16ps2:
		if err := want(2); err != nil {
			return err
		}
		rj := o.reg(0)
		if o.err != nil {
			return o.err
		}
		if in == la.BEQZ {
			return a.branch(ops[1],
				func(dst uintptr) { e.BEQZ(rj, dst) },
				func() emitter.FixupBranch { return e.BEQZFixup(rj) })
		}
		return a.branch(ops[1],
			func(dst uintptr) { e.BNEZ(rj, dst) },
			func() emitter.FixupBranch { return e.BNEZFixup(rj) })

	case la.ShapeCjSd5k16ps2:
		if err := want(2); err != nil {
			return err
		}
		cj, err := la.ParseCFR(ops[0])
		if err != nil {
			return err
		}
		if in == la.BCEQZ {
			return a.branch(ops[1],
				func(dst uintptr) { e.BCEQZ(cj, dst) },
				func() emitter.FixupBranch { return e.BCEQZFixup(cj) })
		}
		return a.branch(ops[1],
			func(dst uintptr) { e.BCNEZ(cj, dst) },
			func() emitter.FixupBranch { return e.BCNEZFixup(cj) })

	case la.ShapeSd10k16ps2:
		if err := want(1); err != nil {
			return err
		}
		if in == la.BL {
			return a.branch(ops[0], e.BL, e.BLFixup)
		}
		return a.branch(ops[0], e.B, e.BFixup)

	default:
		return fmt.Errorf("%s: shape %s has no assembler syntax", in.Name, in.Shape)
	}
	e.Emit32(in, w)
	return nil
}

// encodeRegRegImm covers every "op r0, r1, imm" shape.
func encodeRegRegImm(in la.Inst, r0, r1 la.Reg, v int64) uint32 {
	switch in.Shape {
	case la.ShapeDJSk12:
		return la.EncodeDJSk12(in, r0, r1, imm32(in.Name, v))
	case la.ShapeDJUk12:
		return la.EncodeDJUk12(in, r0, r1, uimm32(in.Name, v))
	case la.ShapeDJSk16:
		return la.EncodeDJSk16(in, r0, r1, imm32(in.Name, v))
	case la.ShapeDJUk5, la.ShapeDJUk6:
		return la.EncodeDJUk(in, r0, r1, uimm32(in.Name, v))
	case la.ShapeDJSk14ps2:
		return la.EncodeDJSk14ps2(in, r0, r1, imm32(in.Name, v))
	case la.ShapeDJSk16ps2:
		return la.EncodeDJSk16ps2(in, r0, r1, imm32(in.Name, v))
	case la.ShapeFdJSk12:
		return la.EncodeFdJSk12(in, r0, r1, imm32(in.Name, v))
	case la.ShapeVdJSk12:
		return la.EncodeVdJSk12(in, r0, r1, imm32(in.Name, v))
	case la.ShapeVdVjUk:
		return la.EncodeVdVjUk(in, r0, r1, uimm32(in.Name, v))
	case la.ShapeVdVjSk5:
		return la.EncodeVdVjSk5(in, r0, r1, imm32(in.Name, v))
	case la.ShapeVdJUk:
		return la.EncodeVdJUk(in, r0, r1, uimm32(in.Name, v))
	default:
		return la.EncodeDVjUk(in, r0, r1, uimm32(in.Name, v))
	}
}

func (b *laBackend) pseudo(a *Assembler, mn string, ops []string) (bool, error) {
	e := b.e
	o := b.reader(mn, ops)
	swapped := func(direct func(rj, rd la.Reg, dst uintptr), fixup func(rj, rd la.Reg) emitter.FixupBranch) error {
		if err := arity(mn, ops, 3); err != nil {
			return err
		}
		rj, rd := o.reg(0), o.reg(1)
		if o.err != nil {
			return o.err
		}
		return a.branch(ops[2],
			func(dst uintptr) { direct(rj, rd, dst) },
			func() emitter.FixupBranch { return fixup(rj, rd) })
	}
	switch mn {
	case "nop", "ret":
		if err := arity(mn, ops, 0); err != nil {
			return true, err
		}
		if mn == "nop" {
			e.NOP()
		} else {
			e.RET()
		}
	case "move", "jr":
		if mn == "jr" {
			if err := arity(mn, ops, 1); err != nil {
				return true, err
			}
			rj := o.reg(0)
			if o.err != nil {
				return true, o.err
			}
			e.JR(rj)
			return true, nil
		}
		if err := arity(mn, ops, 2); err != nil {
			return true, err
		}
		rd, rj := o.reg(0), o.reg(1)
		if o.err != nil {
			return true, o.err
		}
		e.MOVE(rd, rj)
	case "li", "li.d", "li.w":
		if err := arity(mn, ops, 2); err != nil {
			return true, err
		}
		rd, v := o.reg(0), o.imm(1)
		if o.err != nil {
			return true, o.err
		}
		if mn == "li.w" {
			v = int64(int32(v))
		}
		e.LI(rd, v)
	case "call":
		if err := arity(mn, ops, 1); err != nil {
			return true, err
		}
		return true, a.branch(ops[0],
			func(dst uintptr) { e.QuickCallFunction(dst, la.T8) },
			e.BLFixup)
	case "bgt":
		return true, swapped(e.BGT, func(rj, rd la.Reg) emitter.FixupBranch { return e.BLTFixup(rd, rj) })
	case "ble":
		return true, swapped(e.BLE, func(rj, rd la.Reg) emitter.FixupBranch { return e.BGEFixup(rd, rj) })
	case "bgtu":
		return true, swapped(e.BGTU, func(rj, rd la.Reg) emitter.FixupBranch { return e.BLTUFixup(rd, rj) })
	case "bleu":
		return true, swapped(e.BLEU, func(rj, rd la.Reg) emitter.FixupBranch { return e.BGEUFixup(rd, rj) })
	default:
		return false, nil
	}
	return true, nil
}

// uimm32 narrows a literal for an unsigned field.
func uimm32(op string, v int64) uint32 {
	if v < 0 || v > 0xFFFFFFFF {
		jiterrors.Failf(op, "imm", jiterrors.ErrRImmRange, "%d does not fit any unsigned field", v)
	}
	return uint32(v)
}
