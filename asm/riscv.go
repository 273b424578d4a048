package asm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/colorfulnotion/jit/riscv"
)

var csrNames = map[string]riscv.CSR{
	"fflags":  riscv.CSR_FFLAGS,
	"frm":     riscv.CSR_FRM,
	"fcsr":    riscv.CSR_FCSR,
	"vstart":  0x008,
	"cycle":   riscv.CSR_CYCLE,
	"time":    riscv.CSR_TIME,
	"instret": riscv.CSR_INSTRET,
	"vl":      riscv.CSR_VL,
	"vtype":   riscv.CSR_VTYPE,
	"vlenb":   riscv.CSR_VLENB,
}

var roundingModes = map[string]riscv.RoundingMode{
	"rne": riscv.RNE, "rtz": riscv.RTZ, "rdn": riscv.RDN,
	"rup": riscv.RUP, "rmm": riscv.RMM, "dyn": riscv.DYN,
}

var orderSuffixes = []struct {
	suffix string
	ord    riscv.Ordering
}{
	{".aqrl", riscv.OrderAqRl},
	{".aq", riscv.OrderAcquire},
	{".rl", riscv.OrderRelease},
}

type rvBackend struct {
	e    *riscv.Emitter
	caps riscv.Capabilities
}

func newRISCV(region emitter.Region, isa string) (*rvBackend, error) {
	caps, err := riscv.ParseCapabilities(isa)
	if err != nil {
		return nil, err
	}
	return &rvBackend{e: riscv.NewEmitter(region, caps), caps: caps}, nil
}

func (b *rvBackend) cursor() *emitter.Cursor { return &b.e.Cursor }
func (b *rvBackend) isa() string             { return b.caps.String() }
func (b *rvBackend) reserve(n int)           { b.e.ReserveCodeSpace(n) }
func (b *rvBackend) check() error            { return b.e.CheckFixups() }

func (b *rvBackend) setJumpTarget(fb emitter.FixupBranch, target uintptr) {
	b.e.SetJumpTarget(fb, target)
}

func (b *rvBackend) disassemble(code []byte, pc uint64) []emitter.Line {
	return riscv.Disassemble(code, pc)
}

// option handles ".option rvc" and ".option norvc", which switch
// compression of pseudo-ops and label branches.
func (b *rvBackend) option(name string) error {
	switch name {
	case "rvc":
		b.e.SetAutoCompress(true)
	case "norvc":
		b.e.SetAutoCompress(false)
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}

func (b *rvBackend) li(reg string, v int64) error {
	rd, err := riscv.ParseReg(reg)
	if err != nil {
		return err
	}
	b.e.LI(rd, v)
	return nil
}

func (b *rvBackend) instruction(a *Assembler, mn string, ops []string) error {
	if ok, err := b.pseudo(a, mn, ops); ok {
		return err
	}
	in, err := riscv.Lookup(b.caps, mn)
	ord := riscv.OrderNone
	if err != nil {
		for _, s := range orderSuffixes {
			base, found := strings.CutSuffix(mn, s.suffix)
			if !found {
				continue
			}
			if atomic, lerr := riscv.Lookup(b.caps, base); lerr == nil &&
				(atomic.Shape == riscv.ShapeAMO || atomic.Shape == riscv.ShapeLR) {
				in, ord, err = atomic, s.ord, nil
			}
			break
		}
	}
	if err != nil {
		return err
	}
	if in.Shape.Compressed() {
		return b.compressed(a, in, ops)
	}
	return b.encode(a, in, ord, ops)
}

func (b *rvBackend) reader(mn string, ops []string) *reader[riscv.Reg] {
	return newReader(mn, ops, riscv.ParseReg)
}

// encode assembles a 32-bit instruction from its table shape.
func (b *rvBackend) encode(a *Assembler, in riscv.Inst, ord riscv.Ordering, ops []string) error {
	e := b.e
	o := b.reader(in.Name, ops)
	switch in.Shape {
	case riscv.ShapeR:
		if err := arity(in.Name, ops, 3); err != nil {
			return err
		}
		rd, rs1, rs2 := o.reg(0), o.reg(1), o.reg(2)
		if o.err != nil {
			return o.err
		}
		e.Emit32(in, riscv.EncodeR(in, rd, rs1, rs2))

	case riscv.ShapeR2:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		rd, rs1 := o.reg(0), o.reg(1)
		if o.err != nil {
			return o.err
		}
		e.Emit32(in, riscv.EncodeR2(in, rd, rs1))

	case riscv.ShapeRRm:
		if err := arity(in.Name, ops, 3, 4); err != nil {
			return err
		}
		rd, rs1, rs2 := o.reg(0), o.reg(1), o.reg(2)
		rm, err := roundingMode(ops, 3)
		if o.err != nil {
			return o.err
		}
		if err != nil {
			return err
		}
		e.Emit32(in, riscv.EncodeRRm(in, rd, rs1, rs2, rm))

	case riscv.ShapeR2Rm:
		if err := arity(in.Name, ops, 2, 3); err != nil {
			return err
		}
		rd, rs1 := o.reg(0), o.reg(1)
		rm, err := roundingMode(ops, 2)
		if o.err != nil {
			return o.err
		}
		if err != nil {
			return err
		}
		e.Emit32(in, riscv.EncodeR2Rm(in, rd, rs1, rm))

	case riscv.ShapeR4:
		if err := arity(in.Name, ops, 4, 5); err != nil {
			return err
		}
		rd, rs1, rs2, rs3 := o.reg(0), o.reg(1), o.reg(2), o.reg(3)
		rm, err := roundingMode(ops, 4)
		if o.err != nil {
			return o.err
		}
		if err != nil {
			return err
		}
		e.Emit32(in, riscv.EncodeR4(in, rd, rs1, rs2, rs3, rm))

	case riscv.ShapeAMO:
		if err := arity(in.Name, ops, 3); err != nil {
			return err
		}
		rd, rs2 := o.reg(0), o.reg(1)
		off, rs1 := o.mem(2)
		if o.err != nil {
			return o.err
		}
		requireZeroOffset(in.Name, off)
		e.Emit32(in, riscv.EncodeAtomic(in, rd, rs1, rs2, ord))

	case riscv.ShapeLR:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		rd := o.reg(0)
		off, rs1 := o.mem(1)
		if o.err != nil {
			return o.err
		}
		requireZeroOffset(in.Name, off)
		e.Emit32(in, riscv.EncodeLR(in, rd, rs1, ord))

	case riscv.ShapeI:
		return b.encodeI(in, o)

	case riscv.ShapeIShift, riscv.ShapeIShiftW:
		if err := arity(in.Name, ops, 3); err != nil {
			return err
		}
		rd, rs1, shamt := o.reg(0), o.reg(1), o.imm(2)
		if o.err != nil {
			return o.err
		}
		if in.Shape == riscv.ShapeIShift && !b.caps.RV64 && shamt >= 32 {
			jiterrors.Failf(in.Name, "shamt", jiterrors.ErrRImmRange, "%d does not fit 5 unsigned bits on RV32", shamt)
		}
		e.Emit32(in, riscv.EncodeIShift(in, rd, rs1, uint32(shamt)))

	case riscv.ShapeS:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		rs2 := o.reg(0)
		off, rs1 := o.mem(1)
		if o.err != nil {
			return o.err
		}
		e.Emit32(in, riscv.EncodeS(in, rs2, rs1, imm32(in.Name, off)))

	case riscv.ShapeB:
		if err := arity(in.Name, ops, 3); err != nil {
			return err
		}
		rs1, rs2 := o.reg(0), o.reg(1)
		if o.err != nil {
			return o.err
		}
		return a.branch(ops[2],
			func(dst uintptr) { e.EmitBranch(in, rs1, rs2, dst) },
			func() emitter.FixupBranch { return e.EmitBranchFixup(in, rs1, rs2) })

	case riscv.ShapeU:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		rd, v := o.reg(0), o.imm(1)
		if o.err != nil {
			return o.err
		}
		e.Emit32(in, riscv.EncodeU(in, rd, upper20(in.Name, v)))

	case riscv.ShapeJ:
		if err := arity(in.Name, ops, 1, 2); err != nil {
			return err
		}
		rd := riscv.RA
		if len(ops) == 2 {
			rd = o.reg(0)
		}
		if o.err != nil {
			return o.err
		}
		return a.branch(ops[len(ops)-1],
			func(dst uintptr) { e.JAL(rd, dst) },
			func() emitter.FixupBranch { return e.JALFixup(rd) })

	case riscv.ShapeCSR:
		if err := arity(in.Name, ops, 3); err != nil {
			return err
		}
		rd, rs1 := o.reg(0), o.reg(2)
		csr, err := parseCSR(ops[1])
		if o.err != nil {
			return o.err
		}
		if err != nil {
			return err
		}
		e.Emit32(in, riscv.EncodeCSR(in, rd, csr, rs1))

	case riscv.ShapeCSRI:
		if err := arity(in.Name, ops, 3); err != nil {
			return err
		}
		rd, uimm := o.reg(0), o.imm(2)
		csr, err := parseCSR(ops[1])
		if o.err != nil {
			return o.err
		}
		if err != nil {
			return err
		}
		e.Emit32(in, riscv.EncodeCSRI(in, rd, csr, uint32(uimm)))

	case riscv.ShapeFence:
		if err := arity(in.Name, ops, 0, 2); err != nil {
			return err
		}
		pred, succ := riscv.FenceIORW, riscv.FenceIORW
		if in == riscv.FENCE_TSO {
			pred, succ = riscv.FenceRW, riscv.FenceRW
		}
		if len(ops) == 2 {
			var err error
			if pred, err = parseFence(ops[0]); err != nil {
				return err
			}
			if succ, err = parseFence(ops[1]); err != nil {
				return err
			}
		}
		e.Emit32(in, riscv.EncodeFence(in, pred, succ))

	case riscv.ShapeSys:
		if err := arity(in.Name, ops, 0); err != nil {
			return err
		}
		e.Emit32(in, riscv.EncodeSys(in))

	case riscv.ShapeVSETVLI:
		if err := arity(in.Name, ops, 4, 5, 6); err != nil {
			return err
		}
		rd, rs1 := o.reg(0), o.reg(1)
		vtype, err := parseVType(ops[2:])
		if o.err != nil {
			return o.err
		}
		if err != nil {
			return err
		}
		e.Emit32(in, riscv.EncodeVSETVLI(in, rd, rs1, vtype))

	case riscv.ShapeVLS:
		vm, ops := vectorMask(ops)
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		o.ops = ops
		vd := o.reg(0)
		off, rs1 := o.mem(1)
		if o.err != nil {
			return o.err
		}
		requireZeroOffset(in.Name, off)
		e.Emit32(in, riscv.EncodeVLS(in, vd, rs1, vm))

	case riscv.ShapeVV, riscv.ShapeVX, riscv.ShapeVI:
		return b.encodeVector(in, ops)

	default:
		return fmt.Errorf("%s: shape %s has no assembler syntax", in.Name, in.Shape)
	}
	return nil
}

// encodeI covers "op rd, rs1, imm", loads "op rd, off(rs1)" and the
// one-operand "jalr rs1".
func (b *rvBackend) encodeI(in riscv.Inst, o *reader[riscv.Reg]) error {
	var rd, rs1 riscv.Reg
	var imm int64
	switch {
	case len(o.ops) == 1 && in == riscv.JALR:
		rd, rs1 = riscv.RA, o.reg(0)
	case len(o.ops) == 2 && o.isMem(1):
		rd = o.reg(0)
		imm, rs1 = o.mem(1)
	case len(o.ops) == 3:
		rd, rs1, imm = o.reg(0), o.reg(1), o.imm(2)
	default:
		return fmt.Errorf("%s: expected rd, rs1, imm or rd, off(rs1)", in.Name)
	}
	if o.err != nil {
		return o.err
	}
	b.e.Emit32(in, riscv.EncodeI(in, rd, rs1, imm32(in.Name, imm)))
	return nil
}

// encodeVector takes "vd, vs2, src[, v0.t]". The vmv.v.* moves have no vs2
// operand and are always unmasked.
func (b *rvBackend) encodeVector(in riscv.Inst, ops []string) error {
	vm, ops := vectorMask(ops)
	if strings.HasPrefix(in.Name, "vmv.v.") {
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		ops = []string{ops[0], "v0", ops[1]}
	} else if err := arity(in.Name, ops, 3); err != nil {
		return err
	}
	o := b.reader(in.Name, ops)
	vd, vs2 := o.reg(0), o.reg(1)
	e := b.e
	switch in.Shape {
	case riscv.ShapeVV:
		vs1 := o.reg(2)
		if o.err != nil {
			return o.err
		}
		e.Emit32(in, riscv.EncodeVV(in, vd, vs2, vs1, vm))
	case riscv.ShapeVX:
		rs1 := o.reg(2)
		if o.err != nil {
			return o.err
		}
		e.Emit32(in, riscv.EncodeVX(in, vd, vs2, rs1, vm))
	default:
		simm := o.imm(2)
		if o.err != nil {
			return o.err
		}
		e.Emit32(in, riscv.EncodeVI(in, vd, vs2, imm32(in.Name, simm), vm))
	}
	return nil
}

// compressed assembles a 16-bit instruction. c.j, c.jal, c.beqz and c.bnez
// take label targets.
func (b *rvBackend) compressed(a *Assembler, in riscv.Inst, ops []string) error {
	e := b.e
	o := b.reader(in.Name, ops)
	var w uint16
	switch in.Shape {
	case riscv.ShapeCR:
		switch len(ops) {
		case 0:
			w = riscv.EncodeCR(in, riscv.ZERO, riscv.ZERO)
		case 1:
			rs1 := o.reg(0)
			if o.err != nil {
				return o.err
			}
			requireNonZeroReg(in.Name, "rs1", rs1)
			w = riscv.EncodeCR(in, rs1, riscv.ZERO)
		case 2:
			rd, rs2 := o.reg(0), o.reg(1)
			if o.err != nil {
				return o.err
			}
			requireNonZeroReg(in.Name, "rs2", rs2)
			w = riscv.EncodeCR(in, rd, rs2)
		default:
			return arity(in.Name, ops, 2)
		}

	case riscv.ShapeCI, riscv.ShapeCIShift, riscv.ShapeCILUI, riscv.ShapeCBShift, riscv.ShapeCBAndi:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		rd, v := o.reg(0), o.imm(1)
		if o.err != nil {
			return o.err
		}
		switch in.Shape {
		case riscv.ShapeCI:
			w = riscv.EncodeCI(in, rd, imm32(in.Name, v))
		case riscv.ShapeCIShift:
			w = riscv.EncodeCIShift(in, rd, uint32(v))
		case riscv.ShapeCILUI:
			if v >= 0xFFFE0 && v <= 0xFFFFF {
				v -= 0x100000
			}
			w = riscv.EncodeCILUI(in, rd, imm32(in.Name, v<<12))
		case riscv.ShapeCBShift:
			w = riscv.EncodeCBShift(in, rd, uint32(v))
		default:
			w = riscv.EncodeCBAndi(in, rd, imm32(in.Name, v))
		}

	case riscv.ShapeCI16SP:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		sp, v := o.reg(0), o.imm(1)
		if o.err != nil {
			return o.err
		}
		requireSP(in.Name, sp)
		w = riscv.EncodeCI16SP(in, imm32(in.Name, v))

	case riscv.ShapeCIW:
		if err := arity(in.Name, ops, 3); err != nil {
			return err
		}
		rd, sp, v := o.reg(0), o.reg(1), o.imm(2)
		if o.err != nil {
			return o.err
		}
		requireSP(in.Name, sp)
		w = riscv.EncodeCIW(in, rd, imm32(in.Name, v))

	case riscv.ShapeCILoad4, riscv.ShapeCILoad8, riscv.ShapeCSS4, riscv.ShapeCSS8:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		r := o.reg(0)
		off, sp := o.mem(1)
		if o.err != nil {
			return o.err
		}
		requireSP(in.Name, sp)
		if in.Shape == riscv.ShapeCILoad4 || in.Shape == riscv.ShapeCILoad8 {
			w = riscv.EncodeCILoad(in, r, imm32(in.Name, off))
		} else {
			w = riscv.EncodeCSS(in, r, imm32(in.Name, off))
		}

	case riscv.ShapeCL4, riscv.ShapeCL8, riscv.ShapeCS4, riscv.ShapeCS8,
		riscv.ShapeCLB, riscv.ShapeCSB, riscv.ShapeCLH, riscv.ShapeCSH:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		r := o.reg(0)
		off, rs1 := o.mem(1)
		if o.err != nil {
			return o.err
		}
		switch in.Shape {
		case riscv.ShapeCL4, riscv.ShapeCL8:
			w = riscv.EncodeCL(in, r, rs1, imm32(in.Name, off))
		case riscv.ShapeCS4, riscv.ShapeCS8:
			w = riscv.EncodeCS(in, r, rs1, imm32(in.Name, off))
		case riscv.ShapeCLB:
			w = riscv.EncodeCLB(in, r, rs1, uint32(off))
		case riscv.ShapeCSB:
			w = riscv.EncodeCSB(in, r, rs1, uint32(off))
		case riscv.ShapeCLH:
			w = riscv.EncodeCLH(in, r, rs1, uint32(off))
		default:
			w = riscv.EncodeCSH(in, r, rs1, uint32(off))
		}

	case riscv.ShapeCA:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		rd, rs2 := o.reg(0), o.reg(1)
		if o.err != nil {
			return o.err
		}
		w = riscv.EncodeCA(in, rd, rs2)

	case riscv.ShapeCU:
		if err := arity(in.Name, ops, 1); err != nil {
			return err
		}
		rd := o.reg(0)
		if o.err != nil {
			return o.err
		}
		w = riscv.EncodeCU(in, rd)

	case riscv.ShapeCB:
		if err := arity(in.Name, ops, 2); err != nil {
			return err
		}
		rs1 := o.reg(0)
		if o.err != nil {
			return o.err
		}
		if in == riscv.C_BEQZ {
			return a.branch(ops[1],
				func(dst uintptr) { e.C_BEQZ(rs1, dst) },
				func() emitter.FixupBranch { return e.C_BEQZFixup(rs1) })
		}
		return a.branch(ops[1],
			func(dst uintptr) { e.C_BNEZ(rs1, dst) },
			func() emitter.FixupBranch { return e.C_BNEZFixup(rs1) })

	case riscv.ShapeCJ:
		if err := arity(in.Name, ops, 1); err != nil {
			return err
		}
		if in == riscv.C_JAL {
			return a.branch(ops[0], e.C_JAL, e.C_JALFixup)
		}
		return a.branch(ops[0], e.C_J, e.C_JFixup)

	default:
		return fmt.Errorf("%s: shape %s has no assembler syntax", in.Name, in.Shape)
	}
	e.Emit16(in, w)
	return nil
}

// pseudo handles the assembler aliases. ok is false for anything else.
func (b *rvBackend) pseudo(a *Assembler, mn string, ops []string) (ok bool, err error) {
	e := b.e
	o := b.reader(mn, ops)
	unary := func(fn func(rd, rs riscv.Reg)) error {
		if err := arity(mn, ops, 2); err != nil {
			return err
		}
		rd, rs := o.reg(0), o.reg(1)
		if o.err != nil {
			return o.err
		}
		fn(rd, rs)
		return nil
	}
	floatUnary := func(fn func(bits int, rd, rs riscv.Reg)) error {
		bits := 32
		if strings.HasSuffix(mn, ".d") {
			bits = 64
		}
		return unary(func(rd, rs riscv.Reg) { fn(bits, rd, rs) })
	}
	zeroBranch := func(direct func(rs riscv.Reg, dst uintptr), fixup func(rs riscv.Reg) emitter.FixupBranch) error {
		if err := arity(mn, ops, 2); err != nil {
			return err
		}
		rs := o.reg(0)
		if o.err != nil {
			return o.err
		}
		return a.branch(ops[1],
			func(dst uintptr) { direct(rs, dst) },
			func() emitter.FixupBranch { return fixup(rs) })
	}
	swapped := func(direct func(rs1, rs2 riscv.Reg, dst uintptr), fixup func(rs1, rs2 riscv.Reg) emitter.FixupBranch) error {
		if err := arity(mn, ops, 3); err != nil {
			return err
		}
		rs1, rs2 := o.reg(0), o.reg(1)
		if o.err != nil {
			return o.err
		}
		return a.branch(ops[2],
			func(dst uintptr) { direct(rs1, rs2, dst) },
			func() emitter.FixupBranch { return fixup(rs1, rs2) })
	}

	switch mn {
	case "nop":
		if err := arity(mn, ops, 0); err != nil {
			return true, err
		}
		e.NOP()
	case "ret":
		if err := arity(mn, ops, 0); err != nil {
			return true, err
		}
		e.RET()
	case "li":
		if err := arity(mn, ops, 2); err != nil {
			return true, err
		}
		rd, v := o.reg(0), o.imm(1)
		if o.err != nil {
			return true, o.err
		}
		e.LI(rd, v)
	case "mv":
		return true, unary(e.MV)
	case "not":
		return true, unary(e.NOT)
	case "neg":
		return true, unary(e.NEG)
	case "negw":
		return true, unary(e.NEGW)
	case "sext.w":
		return true, unary(e.SEXT_W)
	case "seqz":
		return true, unary(e.SEQZ)
	case "snez":
		return true, unary(e.SNEZ)
	case "sltz":
		return true, unary(e.SLTZ)
	case "sgtz":
		return true, unary(e.SGTZ)
	case "fmv.s", "fmv.d":
		return true, floatUnary(e.FMV)
	case "fli.h", "fli.s", "fli.d":
		if err := arity(mn, ops, 2); err != nil {
			return true, err
		}
		rd := o.reg(0)
		if o.err != nil {
			return true, o.err
		}
		bits := map[byte]int{'h': 16, 's': 32, 'd': 64}[mn[len(mn)-1]]
		v, err := parseFLI(bits, ops[1])
		if err != nil {
			return true, err
		}
		e.FLI(bits, rd, v)
	case "fneg.s", "fneg.d":
		return true, floatUnary(e.FNEG)
	case "fabs.s", "fabs.d":
		return true, floatUnary(e.FABS)
	case "jr":
		if err := arity(mn, ops, 1); err != nil {
			return true, err
		}
		rs := o.reg(0)
		if o.err != nil {
			return true, o.err
		}
		e.JR(rs)
	case "j":
		if err := arity(mn, ops, 1); err != nil {
			return true, err
		}
		return true, a.branch(ops[0], e.J, e.JFixup)
	case "call", "tail":
		if err := arity(mn, ops, 1); err != nil {
			return true, err
		}
		rd, scratch := riscv.RA, riscv.RA
		if mn == "tail" {
			rd, scratch = riscv.ZERO, riscv.T1
		}
		return true, a.branch(ops[0],
			func(dst uintptr) { e.QuickJAL(scratch, rd, dst) },
			func() emitter.FixupBranch { return e.JALFixup(rd) })
	case "beqz":
		return true, zeroBranch(e.BEQZ, func(rs riscv.Reg) emitter.FixupBranch { return e.BEQFixup(rs, riscv.ZERO) })
	case "bnez":
		return true, zeroBranch(e.BNEZ, func(rs riscv.Reg) emitter.FixupBranch { return e.BNEFixup(rs, riscv.ZERO) })
	case "bltz":
		return true, zeroBranch(
			func(rs riscv.Reg, dst uintptr) { e.BLT(rs, riscv.ZERO, dst) },
			func(rs riscv.Reg) emitter.FixupBranch { return e.BLTFixup(rs, riscv.ZERO) })
	case "bgez":
		return true, zeroBranch(
			func(rs riscv.Reg, dst uintptr) { e.BGE(rs, riscv.ZERO, dst) },
			func(rs riscv.Reg) emitter.FixupBranch { return e.BGEFixup(rs, riscv.ZERO) })
	case "blez":
		return true, zeroBranch(
			func(rs riscv.Reg, dst uintptr) { e.BGE(riscv.ZERO, rs, dst) },
			func(rs riscv.Reg) emitter.FixupBranch { return e.BGEFixup(riscv.ZERO, rs) })
	case "bgtz":
		return true, zeroBranch(
			func(rs riscv.Reg, dst uintptr) { e.BLT(riscv.ZERO, rs, dst) },
			func(rs riscv.Reg) emitter.FixupBranch { return e.BLTFixup(riscv.ZERO, rs) })
	case "bgt":
		return true, swapped(e.BGT, e.BGTFixup)
	case "ble":
		return true, swapped(e.BLE, e.BLEFixup)
	case "bgtu":
		return true, swapped(e.BGTU, e.BGTUFixup)
	case "bleu":
		return true, swapped(e.BLEU, e.BLEUFixup)
	case "csrr":
		if err := arity(mn, ops, 2); err != nil {
			return true, err
		}
		rd := o.reg(0)
		csr, err := parseCSR(ops[1])
		if o.err != nil {
			return true, o.err
		}
		if err != nil {
			return true, err
		}
		e.CSRR(rd, csr)
	case "csrw":
		if err := arity(mn, ops, 2); err != nil {
			return true, err
		}
		rs := o.reg(1)
		csr, err := parseCSR(ops[0])
		if o.err != nil {
			return true, o.err
		}
		if err != nil {
			return true, err
		}
		e.CSRW(csr, rs)
	default:
		return false, nil
	}
	return true, nil
}

func roundingMode(ops []string, i int) (riscv.RoundingMode, error) {
	if i >= len(ops) {
		return riscv.DYN, nil
	}
	rm, ok := roundingModes[strings.ToLower(ops[i])]
	if !ok {
		return 0, fmt.Errorf("unknown rounding mode %q", ops[i])
	}
	return rm, nil
}

func parseCSR(s string) (riscv.CSR, error) {
	if csr, ok := csrNames[strings.ToLower(s)]; ok {
		return csr, nil
	}
	v, err := parseInt(s)
	if err != nil {
		return 0, fmt.Errorf("unknown csr %q", s)
	}
	return riscv.CSR(v), nil
}

// parseFence reads a pred/succ set spelled with the letters i, o, r, w.
func parseFence(s string) (riscv.Fence, error) {
	var f riscv.Fence
	for _, c := range strings.ToLower(s) {
		switch c {
		case 'i':
			f |= riscv.FenceI
		case 'o':
			f |= riscv.FenceO
		case 'r':
			f |= riscv.FenceR
		case 'w':
			f |= riscv.FenceW
		default:
			return 0, fmt.Errorf("bad fence set %q", s)
		}
	}
	if f == 0 {
		return 0, fmt.Errorf("empty fence set")
	}
	return f, nil
}

// parseVType reads "e32, m1[, ta|tu][, ma|mu]"; policies default to
// undisturbed.
func parseVType(ops []string) (uint32, error) {
	sews := map[string]riscv.VSew{"e8": riscv.SEW8, "e16": riscv.SEW16, "e32": riscv.SEW32, "e64": riscv.SEW64}
	lmuls := map[string]riscv.VLMul{
		"m1": riscv.LMUL1, "m2": riscv.LMUL2, "m4": riscv.LMUL4, "m8": riscv.LMUL8,
		"mf2": riscv.LMULF2, "mf4": riscv.LMULF4, "mf8": riscv.LMULF8,
	}
	sew, ok := sews[strings.ToLower(ops[0])]
	if !ok {
		return 0, fmt.Errorf("bad element width %q", ops[0])
	}
	lmul, ok := lmuls[strings.ToLower(ops[1])]
	if !ok {
		return 0, fmt.Errorf("bad group multiplier %q", ops[1])
	}
	var ta, ma bool
	for _, p := range ops[2:] {
		switch strings.ToLower(p) {
		case "ta":
			ta = true
		case "tu":
			ta = false
		case "ma":
			ma = true
		case "mu":
			ma = false
		default:
			return 0, fmt.Errorf("bad policy %q", p)
		}
	}
	return riscv.VType(sew, lmul, ta, ma), nil
}

// vectorMask strips a trailing "v0.t".
func vectorMask(ops []string) (riscv.VUseMask, []string) {
	if n := len(ops); n > 0 && strings.EqualFold(ops[n-1], "v0.t") {
		return riscv.VMaskV0T, ops[:n-1]
	}
	return riscv.VUnmasked, ops
}

func requireZeroOffset(op string, off int64) {
	if off != 0 {
		jiterrors.Failf(op, "offset", jiterrors.ErrEOperandConstraint, "address operand takes no offset")
	}
}

func requireSP(op string, r riscv.Reg) {
	if r != riscv.SP {
		jiterrors.Failf(op, "rs1", jiterrors.ErrEOperandConstraint, "base must be sp")
	}
}

func requireNonZeroReg(op, field string, r riscv.Reg) {
	if r == riscv.ZERO {
		jiterrors.Failf(op, field, jiterrors.ErrEHintWrite, "%s cannot be x0", field)
	}
}

// imm32 narrows a parsed literal; anything past 32 bits cannot fit a field.
func imm32(op string, v int64) int32 {
	if v != int64(int32(v)) {
		jiterrors.Failf(op, "imm", jiterrors.ErrRImmRange, "%d does not fit any field", v)
	}
	return int32(v)
}

// upper20 turns the written 20-bit upper immediate into the full value
// EncodeU takes. Both 0..0xfffff and -0x80000..-1 are accepted.
func upper20(op string, v int64) int32 {
	if v < -0x80000 || v > 0xFFFFF {
		jiterrors.Failf(op, "imm", jiterrors.ErrRImmRange, "%#x does not fit 20 bits", v)
	}
	return int32(uint32(v) << 12)
}

// parseFLI reads an fli operand: a decimal or hex float, inf, nan, or min
// for the smallest normal of the width.
func parseFLI(bits int, op string) (float64, error) {
	if strings.EqualFold(op, "min") {
		return map[int]float64{16: 0x1p-14, 32: 0x1p-126, 64: 0x1p-1022}[bits], nil
	}
	v, err := strconv.ParseFloat(op, 64)
	if err != nil {
		return 0, fmt.Errorf("bad float %q", op)
	}
	if math.IsNaN(v) {
		v = math.NaN()
	}
	return v, nil
}
