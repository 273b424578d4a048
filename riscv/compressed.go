package riscv

import (
	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
)

// Explicit 16-bit forms. These never fall back to a wide encoding; each one
// fails with ErrUUnsupported when the target lacks the extension it needs.

func (e *Emitter) requireZcb(in Inst) { e.require(in.Name, e.caps.Zcb, "Zcb") }

func (e *Emitter) requireRV32(in Inst) { e.require(in.Name, !e.caps.RV64, "RV32") }

func (e *Emitter) C_NOP() { e.write16(C_ADDI, EncodeCI(C_ADDI, ZERO, 0)) }

func (e *Emitter) C_ADDI4SPN(rd Reg, imm int32) {
	e.write16(C_ADDI4SPN, EncodeCIW(C_ADDI4SPN, rd, imm))
}

func (e *Emitter) C_ADDI(rd Reg, imm int32) {
	requireNonZero(C_ADDI, "rd", rd)
	if imm == 0 {
		jiterrors.Failf(C_ADDI.Name, "imm", jiterrors.ErrRImmRange, "imm 0 is a hint")
	}
	e.write16(C_ADDI, EncodeCI(C_ADDI, rd, imm))
}

func (e *Emitter) C_ADDIW(rd Reg, imm int32) {
	e.requireRV64(C_ADDIW)
	requireNonZero(C_ADDIW, "rd", rd)
	e.write16(C_ADDIW, EncodeCI(C_ADDIW, rd, imm))
}

func (e *Emitter) C_LI(rd Reg, imm int32) {
	requireNonZero(C_LI, "rd", rd)
	e.write16(C_LI, EncodeCI(C_LI, rd, imm))
}

func (e *Emitter) C_ADDI16SP(imm int32) { e.write16(C_ADDI16SP, EncodeCI16SP(C_ADDI16SP, imm)) }

func (e *Emitter) C_LUI(rd Reg, imm int32) { e.write16(C_LUI, EncodeCILUI(C_LUI, rd, imm)) }

func (e *Emitter) C_SLLI(rd Reg, shamt uint32) {
	e.requireShamt(C_SLLI, shamt)
	e.write16(C_SLLI, EncodeCIShift(C_SLLI, rd, shamt))
}

func (e *Emitter) C_SRLI(rd Reg, shamt uint32) {
	e.requireShamt(C_SRLI, shamt)
	e.write16(C_SRLI, EncodeCBShift(C_SRLI, rd, shamt))
}

func (e *Emitter) C_SRAI(rd Reg, shamt uint32) {
	e.requireShamt(C_SRAI, shamt)
	e.write16(C_SRAI, EncodeCBShift(C_SRAI, rd, shamt))
}

func (e *Emitter) requireShamt(in Inst, shamt uint32) {
	if int(shamt) >= e.caps.Bits() {
		jiterrors.Failf(in.Name, "shamt", jiterrors.ErrRImmRange, "%d >= XLEN %d", shamt, e.caps.Bits())
	}
}

func (e *Emitter) C_ANDI(rd Reg, imm int32) { e.write16(C_ANDI, EncodeCBAndi(C_ANDI, rd, imm)) }

func (e *Emitter) C_SUB(rd, rs2 Reg) { e.write16(C_SUB, EncodeCA(C_SUB, rd, rs2)) }
func (e *Emitter) C_XOR(rd, rs2 Reg) { e.write16(C_XOR, EncodeCA(C_XOR, rd, rs2)) }
func (e *Emitter) C_OR(rd, rs2 Reg)  { e.write16(C_OR, EncodeCA(C_OR, rd, rs2)) }
func (e *Emitter) C_AND(rd, rs2 Reg) { e.write16(C_AND, EncodeCA(C_AND, rd, rs2)) }

func (e *Emitter) C_SUBW(rd, rs2 Reg) {
	e.requireRV64(C_SUBW)
	e.write16(C_SUBW, EncodeCA(C_SUBW, rd, rs2))
}

func (e *Emitter) C_ADDW(rd, rs2 Reg) {
	e.requireRV64(C_ADDW)
	e.write16(C_ADDW, EncodeCA(C_ADDW, rd, rs2))
}

func (e *Emitter) C_MUL(rd, rs2 Reg) {
	e.requireZcb(C_MUL)
	e.require(C_MUL.Name, e.caps.Mul(), "M or Zmmul")
	e.write16(C_MUL, EncodeCA(C_MUL, rd, rs2))
}

func (e *Emitter) C_MV(rd, rs2 Reg) {
	requireNonZero(C_MV, "rd", rd)
	requireNonZero(C_MV, "rs2", rs2)
	e.write16(C_MV, EncodeCR(C_MV, rd, rs2))
}

func (e *Emitter) C_ADD(rd, rs2 Reg) {
	requireNonZero(C_ADD, "rd", rd)
	requireNonZero(C_ADD, "rs2", rs2)
	e.write16(C_ADD, EncodeCR(C_ADD, rd, rs2))
}

func (e *Emitter) C_JR(rs1 Reg) {
	requireNonZero(C_JR, "rs1", rs1)
	e.write16(C_JR, EncodeCR(C_JR, rs1, ZERO))
}

func (e *Emitter) C_JALR(rs1 Reg) {
	requireNonZero(C_JALR, "rs1", rs1)
	e.write16(C_JALR, EncodeCR(C_JALR, rs1, ZERO))
}

func (e *Emitter) C_EBREAK() { e.write16(C_EBREAK, EncodeCR(C_EBREAK, ZERO, ZERO)) }

// Zcb unary forms.

func (e *Emitter) C_ZEXT_B(rd Reg) {
	e.requireZcb(C_ZEXT_B)
	e.write16(C_ZEXT_B, EncodeCU(C_ZEXT_B, rd))
}

func (e *Emitter) C_SEXT_B(rd Reg) {
	e.requireZcb(C_SEXT_B)
	e.require(C_SEXT_B.Name, e.caps.Zbb, "Zbb")
	e.write16(C_SEXT_B, EncodeCU(C_SEXT_B, rd))
}

func (e *Emitter) C_ZEXT_H(rd Reg) {
	e.requireZcb(C_ZEXT_H)
	e.require(C_ZEXT_H.Name, e.caps.Zbb, "Zbb")
	e.write16(C_ZEXT_H, EncodeCU(C_ZEXT_H, rd))
}

func (e *Emitter) C_SEXT_H(rd Reg) {
	e.requireZcb(C_SEXT_H)
	e.require(C_SEXT_H.Name, e.caps.Zbb, "Zbb")
	e.write16(C_SEXT_H, EncodeCU(C_SEXT_H, rd))
}

func (e *Emitter) C_ZEXT_W(rd Reg) {
	e.requireZcb(C_ZEXT_W)
	e.requireRV64(C_ZEXT_W)
	e.require(C_ZEXT_W.Name, e.caps.Zba, "Zba")
	e.write16(C_ZEXT_W, EncodeCU(C_ZEXT_W, rd))
}

func (e *Emitter) C_NOT(rd Reg) {
	e.requireZcb(C_NOT)
	e.write16(C_NOT, EncodeCU(C_NOT, rd))
}

// Register-relative loads and stores.

func (e *Emitter) C_LW(rd, rs1 Reg, uimm int32)  { e.write16(C_LW, EncodeCL(C_LW, rd, rs1, uimm)) }
func (e *Emitter) C_SW(rs2, rs1 Reg, uimm int32) { e.write16(C_SW, EncodeCS(C_SW, rs2, rs1, uimm)) }

func (e *Emitter) C_LD(rd, rs1 Reg, uimm int32) {
	e.requireRV64(C_LD)
	e.write16(C_LD, EncodeCL(C_LD, rd, rs1, uimm))
}

func (e *Emitter) C_SD(rs2, rs1 Reg, uimm int32) {
	e.requireRV64(C_SD)
	e.write16(C_SD, EncodeCS(C_SD, rs2, rs1, uimm))
}

func (e *Emitter) C_FLW(rd, rs1 Reg, uimm int32) {
	e.requireRV32(C_FLW)
	e.require(C_FLW.Name, e.caps.F, "F")
	e.write16(C_FLW, EncodeCL(C_FLW, rd, rs1, uimm))
}

func (e *Emitter) C_FSW(rs2, rs1 Reg, uimm int32) {
	e.requireRV32(C_FSW)
	e.require(C_FSW.Name, e.caps.F, "F")
	e.write16(C_FSW, EncodeCS(C_FSW, rs2, rs1, uimm))
}

func (e *Emitter) C_FLD(rd, rs1 Reg, uimm int32) {
	e.require(C_FLD.Name, e.caps.D, "D")
	e.write16(C_FLD, EncodeCL(C_FLD, rd, rs1, uimm))
}

func (e *Emitter) C_FSD(rs2, rs1 Reg, uimm int32) {
	e.require(C_FSD.Name, e.caps.D, "D")
	e.write16(C_FSD, EncodeCS(C_FSD, rs2, rs1, uimm))
}

func (e *Emitter) C_LBU(rd, rs1 Reg, uimm uint32) {
	e.requireZcb(C_LBU)
	e.write16(C_LBU, EncodeCLB(C_LBU, rd, rs1, uimm))
}

func (e *Emitter) C_LH(rd, rs1 Reg, uimm uint32) {
	e.requireZcb(C_LH)
	e.write16(C_LH, EncodeCLH(C_LH, rd, rs1, uimm))
}

func (e *Emitter) C_LHU(rd, rs1 Reg, uimm uint32) {
	e.requireZcb(C_LHU)
	e.write16(C_LHU, EncodeCLH(C_LHU, rd, rs1, uimm))
}

func (e *Emitter) C_SB(rs2, rs1 Reg, uimm uint32) {
	e.requireZcb(C_SB)
	e.write16(C_SB, EncodeCSB(C_SB, rs2, rs1, uimm))
}

func (e *Emitter) C_SH(rs2, rs1 Reg, uimm uint32) {
	e.requireZcb(C_SH)
	e.write16(C_SH, EncodeCSH(C_SH, rs2, rs1, uimm))
}

// Stack-pointer-relative loads and stores.

func (e *Emitter) C_LWSP(rd Reg, uimm int32)  { e.write16(C_LWSP, EncodeCILoad(C_LWSP, rd, uimm)) }
func (e *Emitter) C_SWSP(rs2 Reg, uimm int32) { e.write16(C_SWSP, EncodeCSS(C_SWSP, rs2, uimm)) }

func (e *Emitter) C_LDSP(rd Reg, uimm int32) {
	e.requireRV64(C_LDSP)
	e.write16(C_LDSP, EncodeCILoad(C_LDSP, rd, uimm))
}

func (e *Emitter) C_SDSP(rs2 Reg, uimm int32) {
	e.requireRV64(C_SDSP)
	e.write16(C_SDSP, EncodeCSS(C_SDSP, rs2, uimm))
}

func (e *Emitter) C_FLWSP(rd Reg, uimm int32) {
	e.requireRV32(C_FLWSP)
	e.require(C_FLWSP.Name, e.caps.F, "F")
	e.write16(C_FLWSP, EncodeCILoad(C_FLWSP, rd, uimm))
}

func (e *Emitter) C_FSWSP(rs2 Reg, uimm int32) {
	e.requireRV32(C_FSWSP)
	e.require(C_FSWSP.Name, e.caps.F, "F")
	e.write16(C_FSWSP, EncodeCSS(C_FSWSP, rs2, uimm))
}

func (e *Emitter) C_FLDSP(rd Reg, uimm int32) {
	e.require(C_FLDSP.Name, e.caps.D, "D")
	e.write16(C_FLDSP, EncodeCILoad(C_FLDSP, rd, uimm))
}

func (e *Emitter) C_FSDSP(rs2 Reg, uimm int32) {
	e.require(C_FSDSP.Name, e.caps.D, "D")
	e.write16(C_FSDSP, EncodeCSS(C_FSDSP, rs2, uimm))
}

// Control transfer.

func (e *Emitter) fixup16(in Inst, k emitter.Kind, w uint16) emitter.FixupBranch {
	e.require(in.Name, e.caps.C, "C")
	fb := e.openFixup(k)
	e.write16(in, w)
	return fb
}

func (e *Emitter) C_J(dst uintptr) {
	e.write16(C_J, EncodeCJ(C_J, e.displacement(C_J, KindCJ, dst)))
}

func (e *Emitter) C_JFixup() emitter.FixupBranch {
	return e.fixup16(C_J, KindCJ, EncodeCJ(C_J, 0))
}

// C_JAL links into ra. RV32 only; the same bits are c.addiw on RV64.
func (e *Emitter) C_JAL(dst uintptr) {
	e.requireRV32(C_JAL)
	e.write16(C_JAL, EncodeCJ(C_JAL, e.displacement(C_JAL, KindCJ, dst)))
}

func (e *Emitter) C_JALFixup() emitter.FixupBranch {
	e.requireRV32(C_JAL)
	return e.fixup16(C_JAL, KindCJ, EncodeCJ(C_JAL, 0))
}

func (e *Emitter) C_BEQZ(rs1 Reg, dst uintptr) {
	e.write16(C_BEQZ, EncodeCB(C_BEQZ, rs1, e.displacement(C_BEQZ, KindCB, dst)))
}

func (e *Emitter) C_BEQZFixup(rs1 Reg) emitter.FixupBranch {
	return e.fixup16(C_BEQZ, KindCB, EncodeCB(C_BEQZ, rs1, 0))
}

func (e *Emitter) C_BNEZ(rs1 Reg, dst uintptr) {
	e.write16(C_BNEZ, EncodeCB(C_BNEZ, rs1, e.displacement(C_BNEZ, KindCB, dst)))
}

func (e *Emitter) C_BNEZFixup(rs1 Reg) emitter.FixupBranch {
	return e.fixup16(C_BNEZ, KindCB, EncodeCB(C_BNEZ, rs1, 0))
}
