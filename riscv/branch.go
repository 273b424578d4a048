package riscv

import (
	"github.com/colorfulnotion/jit/emitter"
)

// JAL jumps to dst and links into rd. Within CJ range it becomes C.J
// (rd zero) or C.JAL (RV32, rd ra).
func (e *Emitter) JAL(rd Reg, dst uintptr) {
	if e.AutoCompress() && e.inRange(KindCJ, dst) {
		if !e.caps.RV64 && rd == RA {
			e.C_JAL(dst)
			return
		} else if rd == ZERO {
			e.C_J(dst)
			return
		}
	}
	e.write32(JAL, EncodeJ(JAL, rd, e.displacement(JAL, KindJ, dst)))
}

// JALFixup emits a JAL whose target is set later with SetJumpTarget.
func (e *Emitter) JALFixup(rd Reg) emitter.FixupBranch {
	return e.fixup32(JAL, KindJ, EncodeJ(JAL, rd, 0))
}

func (e *Emitter) JALR(rd, rs1 Reg, imm int32) {
	if e.AutoCompress() && rs1 != ZERO && imm == 0 {
		if rd == ZERO {
			e.C_JR(rs1)
			return
		} else if rd == RA {
			e.C_JALR(rs1)
			return
		}
	}
	e.write32(JALR, EncodeI(JALR, rd, rs1, imm))
}

func (e *Emitter) branch(in Inst, rs1, rs2 Reg, dst uintptr) {
	e.write32(in, EncodeB(in, rs1, rs2, e.displacement(in, KindB, dst)))
}

func (e *Emitter) branchFixup(in Inst, rs1, rs2 Reg) emitter.FixupBranch {
	return e.fixup32(in, KindB, EncodeB(in, rs1, rs2, 0))
}

// zeroCompare picks the register compared against zero for C.BEQZ/C.BNEZ.
func (e *Emitter) zeroCompare(rs1, rs2 Reg, dst uintptr) (Reg, bool) {
	if !e.AutoCompress() || !e.inRange(KindCB, dst) {
		return 0, false
	}
	if rs2 == ZERO && CanCompress(rs1) {
		return rs1, true
	}
	if rs1 == ZERO && CanCompress(rs2) {
		return rs2, true
	}
	return 0, false
}

func (e *Emitter) BEQ(rs1, rs2 Reg, dst uintptr) {
	if r, ok := e.zeroCompare(rs1, rs2, dst); ok {
		e.C_BEQZ(r, dst)
		return
	}
	e.branch(BEQ, rs1, rs2, dst)
}

func (e *Emitter) BNE(rs1, rs2 Reg, dst uintptr) {
	if r, ok := e.zeroCompare(rs1, rs2, dst); ok {
		e.C_BNEZ(r, dst)
		return
	}
	e.branch(BNE, rs1, rs2, dst)
}

func (e *Emitter) BLT(rs1, rs2 Reg, dst uintptr)  { e.branch(BLT, rs1, rs2, dst) }
func (e *Emitter) BGE(rs1, rs2 Reg, dst uintptr)  { e.branch(BGE, rs1, rs2, dst) }
func (e *Emitter) BLTU(rs1, rs2 Reg, dst uintptr) { e.branch(BLTU, rs1, rs2, dst) }
func (e *Emitter) BGEU(rs1, rs2 Reg, dst uintptr) { e.branch(BGEU, rs1, rs2, dst) }

func (e *Emitter) BEQFixup(rs1, rs2 Reg) emitter.FixupBranch  { return e.branchFixup(BEQ, rs1, rs2) }
func (e *Emitter) BNEFixup(rs1, rs2 Reg) emitter.FixupBranch  { return e.branchFixup(BNE, rs1, rs2) }
func (e *Emitter) BLTFixup(rs1, rs2 Reg) emitter.FixupBranch  { return e.branchFixup(BLT, rs1, rs2) }
func (e *Emitter) BGEFixup(rs1, rs2 Reg) emitter.FixupBranch  { return e.branchFixup(BGE, rs1, rs2) }
func (e *Emitter) BLTUFixup(rs1, rs2 Reg) emitter.FixupBranch { return e.branchFixup(BLTU, rs1, rs2) }
func (e *Emitter) BGEUFixup(rs1, rs2 Reg) emitter.FixupBranch { return e.branchFixup(BGEU, rs1, rs2) }

// Swapped-operand pseudo branches.
func (e *Emitter) BGT(rs1, rs2 Reg, dst uintptr)  { e.BLT(rs2, rs1, dst) }
func (e *Emitter) BLE(rs1, rs2 Reg, dst uintptr)  { e.BGE(rs2, rs1, dst) }
func (e *Emitter) BGTU(rs1, rs2 Reg, dst uintptr) { e.BLTU(rs2, rs1, dst) }
func (e *Emitter) BLEU(rs1, rs2 Reg, dst uintptr) { e.BGEU(rs2, rs1, dst) }

func (e *Emitter) BGTFixup(rs1, rs2 Reg) emitter.FixupBranch  { return e.BLTFixup(rs2, rs1) }
func (e *Emitter) BLEFixup(rs1, rs2 Reg) emitter.FixupBranch  { return e.BGEFixup(rs2, rs1) }
func (e *Emitter) BGTUFixup(rs1, rs2 Reg) emitter.FixupBranch { return e.BLTUFixup(rs2, rs1) }
func (e *Emitter) BLEUFixup(rs1, rs2 Reg) emitter.FixupBranch { return e.BGEUFixup(rs2, rs1) }
