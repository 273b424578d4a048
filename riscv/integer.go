package riscv

import (
	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
)

func (e *Emitter) LUI(rd Reg, imm int32) {
	e.requireNotZero(LUI, rd)
	if e.AutoCompress() && rd != SP && imm != 0 && emitter.SignReduce32(imm&0x0003F000, 18) == imm {
		e.C_LUI(rd, imm)
		return
	}
	e.write32(LUI, EncodeU(LUI, rd, imm))
}

func (e *Emitter) AUIPC(rd Reg, imm int32) {
	e.requireNotZero(AUIPC, rd)
	e.write32(AUIPC, EncodeU(AUIPC, rd, imm))
}

// ADDI allows rd zero only for the canonical NOP (addi zero, zero, 0).
func (e *Emitter) ADDI(rd, rs1 Reg, imm int32) {
	if rd == ZERO && (rs1 != ZERO || imm != 0) {
		jiterrors.Failf(ADDI.Name, "rd", jiterrors.ErrEHintWrite, "write to zero is a hint")
	}
	if e.AutoCompress() {
		switch {
		case CanCompress(rd) && rs1 == SP && imm != 0 && imm&0x3FC == imm:
			e.C_ADDI4SPN(rd, imm)
			return
		case rd != ZERO && rd == rs1 && imm != 0 && emitter.SignReduce32(imm, 6) == imm:
			e.C_ADDI(rd, imm)
			return
		case rd != ZERO && rs1 == ZERO && emitter.SignReduce32(imm, 6) == imm:
			e.C_LI(rd, imm)
			return
		case rd == SP && rd == rs1 && imm != 0 && emitter.SignReduce32(imm&^0xF, 10) == imm:
			e.C_ADDI16SP(imm)
			return
		case rd != ZERO && rs1 != ZERO && imm == 0:
			e.C_MV(rd, rs1)
			return
		case rd == ZERO && rs1 == ZERO && imm == 0:
			e.C_NOP()
			return
		}
	}
	e.write32(ADDI, EncodeI(ADDI, rd, rs1, imm))
}

func (e *Emitter) SLTI(rd, rs1 Reg, imm int32) {
	e.requireNotZero(SLTI, rd)
	e.write32(SLTI, EncodeI(SLTI, rd, rs1, imm))
}

func (e *Emitter) SLTIU(rd, rs1 Reg, imm int32) {
	e.requireNotZero(SLTIU, rd)
	e.write32(SLTIU, EncodeI(SLTIU, rd, rs1, imm))
}

func (e *Emitter) XORI(rd, rs1 Reg, imm int32) {
	e.requireNotZero(XORI, rd)
	if e.AutoCompress() && e.caps.Zcb && CanCompress(rd) && rd == rs1 && imm == -1 {
		e.C_NOT(rd)
		return
	}
	e.write32(XORI, EncodeI(XORI, rd, rs1, imm))
}

func (e *Emitter) ORI(rd, rs1 Reg, imm int32) {
	e.requireNotZero(ORI, rd)
	if e.AutoCompress() && rs1 != ZERO && imm == 0 {
		e.C_MV(rd, rs1)
		return
	}
	e.write32(ORI, EncodeI(ORI, rd, rs1, imm))
}

func (e *Emitter) ANDI(rd, rs1 Reg, imm int32) {
	e.requireNotZero(ANDI, rd)
	if e.AutoCompress() && CanCompress(rd) && rd == rs1 {
		if emitter.SignReduce32(imm, 6) == imm {
			e.C_ANDI(rd, imm)
			return
		} else if e.caps.Zcb && imm == 0xFF {
			e.C_ZEXT_B(rd)
			return
		}
	}
	e.write32(ANDI, EncodeI(ANDI, rd, rs1, imm))
}

func (e *Emitter) shiftImm(in Inst, rd, rs1 Reg, shamt uint32) {
	e.requireNotZero(in, rd)
	if shamt == 0 || int(shamt) >= e.caps.Bits() {
		jiterrors.Failf(in.Name, "shamt", jiterrors.ErrRImmRange, "%d outside 1..%d", shamt, e.caps.Bits()-1)
	}
	e.write32(in, EncodeIShift(in, rd, rs1, shamt))
}

func (e *Emitter) SLLI(rd, rs1 Reg, shamt uint32) {
	if e.AutoCompress() && rd != ZERO && rd == rs1 && shamt != 0 && int(shamt) < e.caps.Bits() {
		e.C_SLLI(rd, shamt)
		return
	}
	e.shiftImm(SLLI, rd, rs1, shamt)
}

func (e *Emitter) SRLI(rd, rs1 Reg, shamt uint32) {
	if e.AutoCompress() && CanCompress(rd) && rd == rs1 && shamt != 0 && int(shamt) < e.caps.Bits() {
		e.C_SRLI(rd, shamt)
		return
	}
	e.shiftImm(SRLI, rd, rs1, shamt)
}

func (e *Emitter) SRAI(rd, rs1 Reg, shamt uint32) {
	if e.AutoCompress() && CanCompress(rd) && rd == rs1 && shamt != 0 && int(shamt) < e.caps.Bits() {
		e.C_SRAI(rd, shamt)
		return
	}
	e.shiftImm(SRAI, rd, rs1, shamt)
}

func (e *Emitter) op(in Inst, rd, rs1, rs2 Reg) {
	e.requireNotZero(in, rd)
	e.write32(in, EncodeR(in, rd, rs1, rs2))
}

func (e *Emitter) ADD(rd, rs1, rs2 Reg) {
	e.requireNotZero(ADD, rd)
	if e.AutoCompress() {
		switch {
		case rs1 != ZERO && rs2 == ZERO:
			e.C_MV(rd, rs1)
			return
		case rs1 == ZERO && rs2 != ZERO:
			e.C_MV(rd, rs2)
			return
		case rd == rs1 && rs2 != ZERO:
			e.C_ADD(rd, rs2)
			return
		case rd == rs2 && rs1 != ZERO:
			e.C_ADD(rd, rs1)
			return
		}
	}
	e.op(ADD, rd, rs1, rs2)
}

// compressibleOp reports whether rd = rd op rs2 fits a CA encoding.
func (e *Emitter) compressibleOp(rd, rs1, rs2 Reg) bool {
	return e.AutoCompress() && CanCompress(rd) && rd == rs1 && CanCompress(rs2)
}

func (e *Emitter) SUB(rd, rs1, rs2 Reg) {
	if e.compressibleOp(rd, rs1, rs2) {
		e.C_SUB(rd, rs2)
		return
	}
	e.op(SUB, rd, rs1, rs2)
}

func (e *Emitter) XOR(rd, rs1, rs2 Reg) {
	if e.compressibleOp(rd, rs1, rs2) {
		e.C_XOR(rd, rs2)
		return
	}
	e.op(XOR, rd, rs1, rs2)
}

func (e *Emitter) OR(rd, rs1, rs2 Reg) {
	e.requireNotZero(OR, rd)
	if e.AutoCompress() {
		switch {
		case CanCompress(rd) && rd == rs1 && CanCompress(rs2):
			e.C_OR(rd, rs2)
			return
		case rs1 != ZERO && rs2 == ZERO:
			e.C_MV(rd, rs1)
			return
		case rs1 == ZERO && rs2 != ZERO:
			e.C_MV(rd, rs2)
			return
		}
	}
	e.op(OR, rd, rs1, rs2)
}

func (e *Emitter) AND(rd, rs1, rs2 Reg) {
	if e.compressibleOp(rd, rs1, rs2) {
		e.C_AND(rd, rs2)
		return
	}
	e.op(AND, rd, rs1, rs2)
}

func (e *Emitter) SLL(rd, rs1, rs2 Reg)  { e.op(SLL, rd, rs1, rs2) }
func (e *Emitter) SLT(rd, rs1, rs2 Reg)  { e.op(SLT, rd, rs1, rs2) }
func (e *Emitter) SLTU(rd, rs1, rs2 Reg) { e.op(SLTU, rd, rs1, rs2) }
func (e *Emitter) SRL(rd, rs1, rs2 Reg)  { e.op(SRL, rd, rs1, rs2) }
func (e *Emitter) SRA(rd, rs1, rs2 Reg)  { e.op(SRA, rd, rs1, rs2) }

func (e *Emitter) FENCE(pred, succ Fence) { e.write32(FENCE, EncodeFence(FENCE, pred, succ)) }
func (e *Emitter) FENCE_TSO()             { e.write32(FENCE_TSO, EncodeFence(FENCE_TSO, FenceRW, FenceRW)) }
func (e *Emitter) FENCE_I()               { e.write32(FENCE_I, EncodeSys(FENCE_I)) }
func (e *Emitter) ECALL()                 { e.write32(ECALL, EncodeSys(ECALL)) }
func (e *Emitter) EBREAK()                { e.write32(EBREAK, EncodeSys(EBREAK)) }
