package riscv

import "github.com/colorfulnotion/jit/emitter"

// RV64 word operations. Results are sign-extended from bit 31.

func (e *Emitter) opW(in Inst, rd, rs1, rs2 Reg) {
	e.requireRV64(in)
	e.op(in, rd, rs1, rs2)
}

func (e *Emitter) ADDIW(rd, rs1 Reg, imm int32) {
	e.requireRV64(ADDIW)
	e.requireNotZero(ADDIW, rd)
	if e.AutoCompress() && rd == rs1 && emitter.SignReduce32(imm, 6) == imm {
		e.C_ADDIW(rd, imm)
		return
	}
	e.write32(ADDIW, EncodeI(ADDIW, rd, rs1, imm))
}

func (e *Emitter) shiftW(in Inst, rd, rs1 Reg, shamt uint32) {
	e.requireRV64(in)
	e.requireNotZero(in, rd)
	e.write32(in, EncodeIShift(in, rd, rs1, shamt))
}

func (e *Emitter) SLLIW(rd, rs1 Reg, shamt uint32) { e.shiftW(SLLIW, rd, rs1, shamt) }
func (e *Emitter) SRLIW(rd, rs1 Reg, shamt uint32) { e.shiftW(SRLIW, rd, rs1, shamt) }
func (e *Emitter) SRAIW(rd, rs1 Reg, shamt uint32) { e.shiftW(SRAIW, rd, rs1, shamt) }

func (e *Emitter) ADDW(rd, rs1, rs2 Reg) {
	e.requireRV64(ADDW)
	if e.compressibleOp(rd, rs1, rs2) {
		e.C_ADDW(rd, rs2)
		return
	} else if e.compressibleOp(rd, rs2, rs1) {
		e.C_ADDW(rd, rs1)
		return
	}
	e.op(ADDW, rd, rs1, rs2)
}

func (e *Emitter) SUBW(rd, rs1, rs2 Reg) {
	e.requireRV64(SUBW)
	if e.compressibleOp(rd, rs1, rs2) {
		e.C_SUBW(rd, rs2)
		return
	}
	e.op(SUBW, rd, rs1, rs2)
}

func (e *Emitter) SLLW(rd, rs1, rs2 Reg) { e.opW(SLLW, rd, rs1, rs2) }
func (e *Emitter) SRLW(rd, rs1, rs2 Reg) { e.opW(SRLW, rd, rs1, rs2) }
func (e *Emitter) SRAW(rd, rs1, rs2 Reg) { e.opW(SRAW, rd, rs1, rs2) }
