package loongarch

import (
	"github.com/colorfulnotion/jit/jiterrors"
)

func (e *Emitter) rrr(in Inst, rd, rj, rk Reg) {
	e.requireNotZero(in, rd)
	e.write32(in, EncodeDJK(in, rd, rj, rk))
}

func (e *Emitter) rr(in Inst, rd, rj Reg) {
	e.requireNotZero(in, rd)
	e.write32(in, EncodeDJ(in, rd, rj))
}

func (e *Emitter) ADD_W(rd, rj, rk Reg)   { e.rrr(ADD_W, rd, rj, rk) }
func (e *Emitter) ADD_D(rd, rj, rk Reg)   { e.rrr(ADD_D, rd, rj, rk) }
func (e *Emitter) SUB_W(rd, rj, rk Reg)   { e.rrr(SUB_W, rd, rj, rk) }
func (e *Emitter) SUB_D(rd, rj, rk Reg)   { e.rrr(SUB_D, rd, rj, rk) }
func (e *Emitter) SLT(rd, rj, rk Reg)     { e.rrr(SLT, rd, rj, rk) }
func (e *Emitter) SLTU(rd, rj, rk Reg)    { e.rrr(SLTU, rd, rj, rk) }
func (e *Emitter) MASKEQZ(rd, rj, rk Reg) { e.rrr(MASKEQZ, rd, rj, rk) }
func (e *Emitter) MASKNEZ(rd, rj, rk Reg) { e.rrr(MASKNEZ, rd, rj, rk) }
func (e *Emitter) NOR(rd, rj, rk Reg)     { e.rrr(NOR, rd, rj, rk) }
func (e *Emitter) AND(rd, rj, rk Reg)     { e.rrr(AND, rd, rj, rk) }
func (e *Emitter) OR(rd, rj, rk Reg)      { e.rrr(OR, rd, rj, rk) }
func (e *Emitter) XOR(rd, rj, rk Reg)     { e.rrr(XOR, rd, rj, rk) }
func (e *Emitter) ORN(rd, rj, rk Reg)     { e.rrr(ORN, rd, rj, rk) }
func (e *Emitter) ANDN(rd, rj, rk Reg)    { e.rrr(ANDN, rd, rj, rk) }

// ALSL_W/ALSL_WU/ALSL_D compute (rj << sa2) + rk, sa2 in 1..4.
func (e *Emitter) ALSL_W(rd, rj, rk Reg, sa2 uint32) {
	e.requireNotZero(ALSL_W, rd)
	e.write32(ALSL_W, EncodeDJKUa2pp1(ALSL_W, rd, rj, rk, sa2))
}

func (e *Emitter) ALSL_WU(rd, rj, rk Reg, sa2 uint32) {
	e.requireNotZero(ALSL_WU, rd)
	e.write32(ALSL_WU, EncodeDJKUa2pp1(ALSL_WU, rd, rj, rk, sa2))
}

func (e *Emitter) ALSL_D(rd, rj, rk Reg, sa2 uint32) {
	e.requireNotZero(ALSL_D, rd)
	e.write32(ALSL_D, EncodeDJKUa2pp1(ALSL_D, rd, rj, rk, sa2))
}

// isNop reports the canonical no-op forms that may target zero.
func isNop(rd, rj Reg, imm int32) bool { return rd == ZERO && rj == ZERO && imm == 0 }

func (e *Emitter) ADDI_W(rd, rj Reg, si12 int32) {
	if rd == ZERO && !isNop(rd, rj, si12) {
		jiterrors.Failf(ADDI_W.Name, "rd", jiterrors.ErrEHintWrite, "write to zero")
	}
	e.write32(ADDI_W, EncodeDJSk12(ADDI_W, rd, rj, si12))
}

func (e *Emitter) ADDI_D(rd, rj Reg, si12 int32) {
	if rd == ZERO && !isNop(rd, rj, si12) {
		jiterrors.Failf(ADDI_D.Name, "rd", jiterrors.ErrEHintWrite, "write to zero")
	}
	e.write32(ADDI_D, EncodeDJSk12(ADDI_D, rd, rj, si12))
}

func (e *Emitter) ADDU16I_D(rd, rj Reg, si16 int32) {
	e.requireNotZero(ADDU16I_D, rd)
	e.write32(ADDU16I_D, EncodeDJSk16(ADDU16I_D, rd, rj, si16))
}

func (e *Emitter) SLTI(rd, rj Reg, si12 int32) {
	e.requireNotZero(SLTI, rd)
	e.write32(SLTI, EncodeDJSk12(SLTI, rd, rj, si12))
}

func (e *Emitter) SLTUI(rd, rj Reg, si12 int32) {
	e.requireNotZero(SLTUI, rd)
	e.write32(SLTUI, EncodeDJSk12(SLTUI, rd, rj, si12))
}

// ANDI r0, r0, 0 is the architectural NOP.
func (e *Emitter) ANDI(rd, rj Reg, ui12 uint32) {
	if rd == ZERO && !isNop(rd, rj, int32(ui12)) {
		jiterrors.Failf(ANDI.Name, "rd", jiterrors.ErrEHintWrite, "write to zero")
	}
	e.write32(ANDI, EncodeDJUk12(ANDI, rd, rj, ui12))
}

func (e *Emitter) ORI(rd, rj Reg, ui12 uint32) {
	e.requireNotZero(ORI, rd)
	e.write32(ORI, EncodeDJUk12(ORI, rd, rj, ui12))
}

func (e *Emitter) XORI(rd, rj Reg, ui12 uint32) {
	e.requireNotZero(XORI, rd)
	e.write32(XORI, EncodeDJUk12(XORI, rd, rj, ui12))
}

func (e *Emitter) upper(in Inst, rd Reg, si20 int32) {
	e.requireNotZero(in, rd)
	e.write32(in, EncodeDSj20(in, rd, si20))
}

// LU12I_W sets rd to sext(si20 << 12).
func (e *Emitter) LU12I_W(rd Reg, si20 int32) { e.upper(LU12I_W, rd, si20) }

// LU32I_D replaces bits 63:32 of rd with sext(si20), keeping bits 31:0.
func (e *Emitter) LU32I_D(rd Reg, si20 int32) { e.upper(LU32I_D, rd, si20) }

func (e *Emitter) PCADDI(rd Reg, si20 int32)    { e.upper(PCADDI, rd, si20) }
func (e *Emitter) PCADDU12I(rd Reg, si20 int32) { e.upper(PCADDU12I, rd, si20) }
func (e *Emitter) PCADDU18I(rd Reg, si20 int32) { e.upper(PCADDU18I, rd, si20) }
func (e *Emitter) PCALAU12I(rd Reg, si20 int32) { e.upper(PCALAU12I, rd, si20) }

// LU52I_D sets rd to si12<<52 | rj[51:0].
func (e *Emitter) LU52I_D(rd, rj Reg, si12 int32) {
	e.requireNotZero(LU52I_D, rd)
	e.write32(LU52I_D, EncodeDJSk12(LU52I_D, rd, rj, si12))
}

func (e *Emitter) MUL_W(rd, rj, rk Reg)     { e.rrr(MUL_W, rd, rj, rk) }
func (e *Emitter) MULH_W(rd, rj, rk Reg)    { e.rrr(MULH_W, rd, rj, rk) }
func (e *Emitter) MULH_WU(rd, rj, rk Reg)   { e.rrr(MULH_WU, rd, rj, rk) }
func (e *Emitter) MUL_D(rd, rj, rk Reg)     { e.rrr(MUL_D, rd, rj, rk) }
func (e *Emitter) MULH_D(rd, rj, rk Reg)    { e.rrr(MULH_D, rd, rj, rk) }
func (e *Emitter) MULH_DU(rd, rj, rk Reg)   { e.rrr(MULH_DU, rd, rj, rk) }
func (e *Emitter) MULW_D_W(rd, rj, rk Reg)  { e.rrr(MULW_D_W, rd, rj, rk) }
func (e *Emitter) MULW_D_WU(rd, rj, rk Reg) { e.rrr(MULW_D_WU, rd, rj, rk) }
func (e *Emitter) DIV_W(rd, rj, rk Reg)     { e.rrr(DIV_W, rd, rj, rk) }
func (e *Emitter) MOD_W(rd, rj, rk Reg)     { e.rrr(MOD_W, rd, rj, rk) }
func (e *Emitter) DIV_WU(rd, rj, rk Reg)    { e.rrr(DIV_WU, rd, rj, rk) }
func (e *Emitter) MOD_WU(rd, rj, rk Reg)    { e.rrr(MOD_WU, rd, rj, rk) }
func (e *Emitter) DIV_D(rd, rj, rk Reg)     { e.rrr(DIV_D, rd, rj, rk) }
func (e *Emitter) MOD_D(rd, rj, rk Reg)     { e.rrr(MOD_D, rd, rj, rk) }
func (e *Emitter) DIV_DU(rd, rj, rk Reg)    { e.rrr(DIV_DU, rd, rj, rk) }
func (e *Emitter) MOD_DU(rd, rj, rk Reg)    { e.rrr(MOD_DU, rd, rj, rk) }

func (e *Emitter) SLL_W(rd, rj, rk Reg)  { e.rrr(SLL_W, rd, rj, rk) }
func (e *Emitter) SRL_W(rd, rj, rk Reg)  { e.rrr(SRL_W, rd, rj, rk) }
func (e *Emitter) SRA_W(rd, rj, rk Reg)  { e.rrr(SRA_W, rd, rj, rk) }
func (e *Emitter) ROTR_W(rd, rj, rk Reg) { e.rrr(ROTR_W, rd, rj, rk) }
func (e *Emitter) SLL_D(rd, rj, rk Reg)  { e.rrr(SLL_D, rd, rj, rk) }
func (e *Emitter) SRL_D(rd, rj, rk Reg)  { e.rrr(SRL_D, rd, rj, rk) }
func (e *Emitter) SRA_D(rd, rj, rk Reg)  { e.rrr(SRA_D, rd, rj, rk) }
func (e *Emitter) ROTR_D(rd, rj, rk Reg) { e.rrr(ROTR_D, rd, rj, rk) }

func (e *Emitter) shiftImm(in Inst, rd, rj Reg, ui uint32) {
	e.requireNotZero(in, rd)
	e.write32(in, EncodeDJUk(in, rd, rj, ui))
}

func (e *Emitter) SLLI_W(rd, rj Reg, ui5 uint32)  { e.shiftImm(SLLI_W, rd, rj, ui5) }
func (e *Emitter) SRLI_W(rd, rj Reg, ui5 uint32)  { e.shiftImm(SRLI_W, rd, rj, ui5) }
func (e *Emitter) SRAI_W(rd, rj Reg, ui5 uint32)  { e.shiftImm(SRAI_W, rd, rj, ui5) }
func (e *Emitter) ROTRI_W(rd, rj Reg, ui5 uint32) { e.shiftImm(ROTRI_W, rd, rj, ui5) }
func (e *Emitter) SLLI_D(rd, rj Reg, ui6 uint32)  { e.shiftImm(SLLI_D, rd, rj, ui6) }
func (e *Emitter) SRLI_D(rd, rj Reg, ui6 uint32)  { e.shiftImm(SRLI_D, rd, rj, ui6) }
func (e *Emitter) SRAI_D(rd, rj Reg, ui6 uint32)  { e.shiftImm(SRAI_D, rd, rj, ui6) }
func (e *Emitter) ROTRI_D(rd, rj Reg, ui6 uint32) { e.shiftImm(ROTRI_D, rd, rj, ui6) }

func (e *Emitter) EXT_W_B(rd, rj Reg)   { e.rr(EXT_W_B, rd, rj) }
func (e *Emitter) EXT_W_H(rd, rj Reg)   { e.rr(EXT_W_H, rd, rj) }
func (e *Emitter) CLO_W(rd, rj Reg)     { e.rr(CLO_W, rd, rj) }
func (e *Emitter) CLZ_W(rd, rj Reg)     { e.rr(CLZ_W, rd, rj) }
func (e *Emitter) CTO_W(rd, rj Reg)     { e.rr(CTO_W, rd, rj) }
func (e *Emitter) CTZ_W(rd, rj Reg)     { e.rr(CTZ_W, rd, rj) }
func (e *Emitter) CLO_D(rd, rj Reg)     { e.rr(CLO_D, rd, rj) }
func (e *Emitter) CLZ_D(rd, rj Reg)     { e.rr(CLZ_D, rd, rj) }
func (e *Emitter) CTO_D(rd, rj Reg)     { e.rr(CTO_D, rd, rj) }
func (e *Emitter) CTZ_D(rd, rj Reg)     { e.rr(CTZ_D, rd, rj) }
func (e *Emitter) REVB_2H(rd, rj Reg)   { e.rr(REVB_2H, rd, rj) }
func (e *Emitter) REVB_4H(rd, rj Reg)   { e.rr(REVB_4H, rd, rj) }
func (e *Emitter) REVB_2W(rd, rj Reg)   { e.rr(REVB_2W, rd, rj) }
func (e *Emitter) REVB_D(rd, rj Reg)    { e.rr(REVB_D, rd, rj) }
func (e *Emitter) BITREV_4B(rd, rj Reg) { e.rr(BITREV_4B, rd, rj) }
func (e *Emitter) BITREV_8B(rd, rj Reg) { e.rr(BITREV_8B, rd, rj) }
func (e *Emitter) BITREV_W(rd, rj Reg)  { e.rr(BITREV_W, rd, rj) }
func (e *Emitter) BITREV_D(rd, rj Reg)  { e.rr(BITREV_D, rd, rj) }

func (e *Emitter) BYTEPICK_W(rd, rj, rk Reg, sa2 uint32) {
	e.requireNotZero(BYTEPICK_W, rd)
	e.write32(BYTEPICK_W, EncodeDJKUa(BYTEPICK_W, rd, rj, rk, sa2))
}

func (e *Emitter) BYTEPICK_D(rd, rj, rk Reg, sa3 uint32) {
	e.requireNotZero(BYTEPICK_D, rd)
	e.write32(BYTEPICK_D, EncodeDJKUa(BYTEPICK_D, rd, rj, rk, sa3))
}

func (e *Emitter) bitField(in Inst, rd, rj Reg, msb, lsb uint32) {
	e.requireNotZero(in, rd)
	e.write32(in, EncodeBitField(in, rd, rj, msb, lsb))
}

// BSTRINS_W inserts rj[msb-lsb:0] into rd[msb:lsb].
func (e *Emitter) BSTRINS_W(rd, rj Reg, msb, lsb uint32) { e.bitField(BSTRINS_W, rd, rj, msb, lsb) }
func (e *Emitter) BSTRINS_D(rd, rj Reg, msb, lsb uint32) { e.bitField(BSTRINS_D, rd, rj, msb, lsb) }

// BSTRPICK_D zero-extends rj[msb:lsb] into rd.
func (e *Emitter) BSTRPICK_W(rd, rj Reg, msb, lsb uint32) { e.bitField(BSTRPICK_W, rd, rj, msb, lsb) }
func (e *Emitter) BSTRPICK_D(rd, rj Reg, msb, lsb uint32) { e.bitField(BSTRPICK_D, rd, rj, msb, lsb) }

func (e *Emitter) crc(in Inst, rd, rj, rk Reg) {
	e.require(in.Name, e.caps.CRC32, "CRC32")
	e.rrr(in, rd, rj, rk)
}

func (e *Emitter) CRC_W_B_W(rd, rj, rk Reg)  { e.crc(CRC_W_B_W, rd, rj, rk) }
func (e *Emitter) CRC_W_H_W(rd, rj, rk Reg)  { e.crc(CRC_W_H_W, rd, rj, rk) }
func (e *Emitter) CRC_W_W_W(rd, rj, rk Reg)  { e.crc(CRC_W_W_W, rd, rj, rk) }
func (e *Emitter) CRC_W_D_W(rd, rj, rk Reg)  { e.crc(CRC_W_D_W, rd, rj, rk) }
func (e *Emitter) CRCC_W_B_W(rd, rj, rk Reg) { e.crc(CRCC_W_B_W, rd, rj, rk) }
func (e *Emitter) CRCC_W_H_W(rd, rj, rk Reg) { e.crc(CRCC_W_H_W, rd, rj, rk) }
func (e *Emitter) CRCC_W_W_W(rd, rj, rk Reg) { e.crc(CRCC_W_W_W, rd, rj, rk) }
func (e *Emitter) CRCC_W_D_W(rd, rj, rk Reg) { e.crc(CRCC_W_D_W, rd, rj, rk) }
