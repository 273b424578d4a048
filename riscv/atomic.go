package riscv

import "github.com/colorfulnotion/jit/jiterrors"

func (e *Emitter) requireAtomic(in Inst) {
	e.require(in.Name, e.caps.A, "A")
	if in.Match>>12&7 == 3 {
		e.requireRV64(in)
	}
}

// LR_W and LR_D reject a release-only ordering: a load cannot release.
func (e *Emitter) lr(in Inst, rd, rs1 Reg, ord Ordering) {
	e.requireAtomic(in)
	if ord == OrderRelease {
		jiterrors.Failf(in.Name, "ordering", jiterrors.ErrEOperandConstraint, "lr cannot be release-only")
	}
	e.write32(in, EncodeLR(in, rd, rs1, ord))
}

func (e *Emitter) sc(in Inst, rd, rs2, rs1 Reg, ord Ordering) {
	e.requireAtomic(in)
	if ord == OrderAcquire {
		jiterrors.Failf(in.Name, "ordering", jiterrors.ErrEOperandConstraint, "sc cannot be acquire-only")
	}
	e.write32(in, EncodeAtomic(in, rd, rs1, rs2, ord))
}

// AMO emits any read-modify-write atomic: rd = mem[rs1]; mem[rs1] = rd op rs2.
func (e *Emitter) AMO(in Inst, rd, rs2, rs1 Reg, ord Ordering) {
	e.requireAtomic(in)
	e.write32(in, EncodeAtomic(in, rd, rs1, rs2, ord))
}

func (e *Emitter) LR_W(rd, rs1 Reg, ord Ordering)      { e.lr(LR_W, rd, rs1, ord) }
func (e *Emitter) LR_D(rd, rs1 Reg, ord Ordering)      { e.lr(LR_D, rd, rs1, ord) }
func (e *Emitter) SC_W(rd, rs2, rs1 Reg, ord Ordering) { e.sc(SC_W, rd, rs2, rs1, ord) }
func (e *Emitter) SC_D(rd, rs2, rs1 Reg, ord Ordering) { e.sc(SC_D, rd, rs2, rs1, ord) }

func (e *Emitter) AMOSWAP_W(rd, rs2, rs1 Reg, ord Ordering) { e.AMO(AMOSWAP_W, rd, rs2, rs1, ord) }
func (e *Emitter) AMOADD_W(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOADD_W, rd, rs2, rs1, ord) }
func (e *Emitter) AMOXOR_W(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOXOR_W, rd, rs2, rs1, ord) }
func (e *Emitter) AMOAND_W(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOAND_W, rd, rs2, rs1, ord) }
func (e *Emitter) AMOOR_W(rd, rs2, rs1 Reg, ord Ordering)   { e.AMO(AMOOR_W, rd, rs2, rs1, ord) }
func (e *Emitter) AMOMIN_W(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOMIN_W, rd, rs2, rs1, ord) }
func (e *Emitter) AMOMAX_W(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOMAX_W, rd, rs2, rs1, ord) }
func (e *Emitter) AMOMINU_W(rd, rs2, rs1 Reg, ord Ordering) { e.AMO(AMOMINU_W, rd, rs2, rs1, ord) }
func (e *Emitter) AMOMAXU_W(rd, rs2, rs1 Reg, ord Ordering) { e.AMO(AMOMAXU_W, rd, rs2, rs1, ord) }

func (e *Emitter) AMOSWAP_D(rd, rs2, rs1 Reg, ord Ordering) { e.AMO(AMOSWAP_D, rd, rs2, rs1, ord) }
func (e *Emitter) AMOADD_D(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOADD_D, rd, rs2, rs1, ord) }
func (e *Emitter) AMOXOR_D(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOXOR_D, rd, rs2, rs1, ord) }
func (e *Emitter) AMOAND_D(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOAND_D, rd, rs2, rs1, ord) }
func (e *Emitter) AMOOR_D(rd, rs2, rs1 Reg, ord Ordering)   { e.AMO(AMOOR_D, rd, rs2, rs1, ord) }
func (e *Emitter) AMOMIN_D(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOMIN_D, rd, rs2, rs1, ord) }
func (e *Emitter) AMOMAX_D(rd, rs2, rs1 Reg, ord Ordering)  { e.AMO(AMOMAX_D, rd, rs2, rs1, ord) }
func (e *Emitter) AMOMINU_D(rd, rs2, rs1 Reg, ord Ordering) { e.AMO(AMOMINU_D, rd, rs2, rs1, ord) }
func (e *Emitter) AMOMAXU_D(rd, rs2, rs1 Reg, ord Ordering) { e.AMO(AMOMAXU_D, rd, rs2, rs1, ord) }
