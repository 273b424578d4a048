package riscv

import "github.com/colorfulnotion/jit/jiterrors"

func (e *Emitter) zba(in Inst, rd, rs1, rs2 Reg) {
	e.require(in.Name, e.caps.Zba, "Zba")
	e.op(in, rd, rs1, rs2)
}

func (e *Emitter) zbb(in Inst, rd, rs1, rs2 Reg) {
	e.require(in.Name, e.caps.Zbb, "Zbb")
	e.op(in, rd, rs1, rs2)
}

func (e *Emitter) zbbUnary(in Inst, rd, rs1 Reg) {
	e.require(in.Name, e.caps.Zbb, "Zbb")
	e.requireNotZero(in, rd)
	e.write32(in, EncodeR2(in, rd, rs1))
}

// bitImm emits an immediate-shift shaped op whose amount may be zero.
func (e *Emitter) bitImm(in Inst, rd, rs1 Reg, shamt uint32) {
	e.requireNotZero(in, rd)
	limit := e.caps.Bits()
	if in.Shape == ShapeIShiftW {
		limit = 32
	}
	if int(shamt) >= limit {
		jiterrors.Failf(in.Name, "shamt", jiterrors.ErrRImmRange, "%d >= %d", shamt, limit)
	}
	e.write32(in, EncodeIShift(in, rd, rs1, shamt))
}

func (e *Emitter) SH1ADD(rd, rs1, rs2 Reg) { e.zba(SH1ADD, rd, rs1, rs2) }
func (e *Emitter) SH2ADD(rd, rs1, rs2 Reg) { e.zba(SH2ADD, rd, rs1, rs2) }
func (e *Emitter) SH3ADD(rd, rs1, rs2 Reg) { e.zba(SH3ADD, rd, rs1, rs2) }

func (e *Emitter) ADD_UW(rd, rs1, rs2 Reg) {
	e.requireRV64(ADD_UW)
	e.zba(ADD_UW, rd, rs1, rs2)
}

func (e *Emitter) SH1ADD_UW(rd, rs1, rs2 Reg) {
	e.requireRV64(SH1ADD_UW)
	e.zba(SH1ADD_UW, rd, rs1, rs2)
}

func (e *Emitter) SH2ADD_UW(rd, rs1, rs2 Reg) {
	e.requireRV64(SH2ADD_UW)
	e.zba(SH2ADD_UW, rd, rs1, rs2)
}

func (e *Emitter) SH3ADD_UW(rd, rs1, rs2 Reg) {
	e.requireRV64(SH3ADD_UW)
	e.zba(SH3ADD_UW, rd, rs1, rs2)
}

func (e *Emitter) SLLI_UW(rd, rs1 Reg, shamt uint32) {
	e.requireRV64(SLLI_UW)
	e.require(SLLI_UW.Name, e.caps.Zba, "Zba")
	e.bitImm(SLLI_UW, rd, rs1, shamt)
}

func (e *Emitter) ANDN(rd, rs1, rs2 Reg) { e.zbb(ANDN, rd, rs1, rs2) }
func (e *Emitter) ORN(rd, rs1, rs2 Reg)  { e.zbb(ORN, rd, rs1, rs2) }
func (e *Emitter) XNOR(rd, rs1, rs2 Reg) { e.zbb(XNOR, rd, rs1, rs2) }
func (e *Emitter) MAX(rd, rs1, rs2 Reg)  { e.zbb(MAX, rd, rs1, rs2) }
func (e *Emitter) MAXU(rd, rs1, rs2 Reg) { e.zbb(MAXU, rd, rs1, rs2) }
func (e *Emitter) MIN(rd, rs1, rs2 Reg)  { e.zbb(MIN, rd, rs1, rs2) }
func (e *Emitter) MINU(rd, rs1, rs2 Reg) { e.zbb(MINU, rd, rs1, rs2) }
func (e *Emitter) ROL(rd, rs1, rs2 Reg)  { e.zbb(ROL, rd, rs1, rs2) }
func (e *Emitter) ROR(rd, rs1, rs2 Reg)  { e.zbb(ROR, rd, rs1, rs2) }

func (e *Emitter) ROLW(rd, rs1, rs2 Reg) {
	e.requireRV64(ROLW)
	e.zbb(ROLW, rd, rs1, rs2)
}

func (e *Emitter) RORW(rd, rs1, rs2 Reg) {
	e.requireRV64(RORW)
	e.zbb(RORW, rd, rs1, rs2)
}

func (e *Emitter) RORI(rd, rs1 Reg, shamt uint32) {
	e.require(RORI.Name, e.caps.Zbb, "Zbb")
	e.bitImm(RORI, rd, rs1, shamt)
}

func (e *Emitter) RORIW(rd, rs1 Reg, shamt uint32) {
	e.requireRV64(RORIW)
	e.require(RORIW.Name, e.caps.Zbb, "Zbb")
	e.bitImm(RORIW, rd, rs1, shamt)
}

func (e *Emitter) CLZ(rd, rs1 Reg)   { e.zbbUnary(CLZ, rd, rs1) }
func (e *Emitter) CTZ(rd, rs1 Reg)   { e.zbbUnary(CTZ, rd, rs1) }
func (e *Emitter) CPOP(rd, rs1 Reg)  { e.zbbUnary(CPOP, rd, rs1) }
func (e *Emitter) ORC_B(rd, rs1 Reg) { e.zbbUnary(ORC_B, rd, rs1) }

func (e *Emitter) CLZW(rd, rs1 Reg) {
	e.requireRV64(CLZW)
	e.zbbUnary(CLZW, rd, rs1)
}

func (e *Emitter) CTZW(rd, rs1 Reg) {
	e.requireRV64(CTZW)
	e.zbbUnary(CTZW, rd, rs1)
}

func (e *Emitter) CPOPW(rd, rs1 Reg) {
	e.requireRV64(CPOPW)
	e.zbbUnary(CPOPW, rd, rs1)
}

func (e *Emitter) REV8(rd, rs1 Reg) {
	if e.caps.RV64 {
		e.zbbUnary(REV8, rd, rs1)
	} else {
		e.zbbUnary(REV8_32, rd, rs1)
	}
}

// inPlaceCU reports whether rd = op(rs1) can use a Zcb CU form.
func (e *Emitter) inPlaceCU(rd, rs1 Reg) bool {
	return e.AutoCompress() && e.caps.Zcb && CanCompress(rd) && rd == rs1
}

func (e *Emitter) SEXT_B(rd, rs1 Reg) {
	if e.caps.Zbb && e.inPlaceCU(rd, rs1) {
		e.C_SEXT_B(rd)
		return
	}
	e.zbbUnary(SEXT_B, rd, rs1)
}

func (e *Emitter) SEXT_H(rd, rs1 Reg) {
	if e.caps.Zbb && e.inPlaceCU(rd, rs1) {
		e.C_SEXT_H(rd)
		return
	}
	e.zbbUnary(SEXT_H, rd, rs1)
}

func (e *Emitter) ZEXT_H(rd, rs1 Reg) {
	if e.caps.Zbb && e.inPlaceCU(rd, rs1) {
		e.C_ZEXT_H(rd)
		return
	}
	if e.caps.RV64 {
		e.zbbUnary(ZEXT_H, rd, rs1)
	} else {
		e.zbbUnary(ZEXT_H32, rd, rs1)
	}
}

// ZEXT_B is andi rd, rs1, 0xff.
func (e *Emitter) ZEXT_B(rd, rs1 Reg) { e.ANDI(rd, rs1, 0xFF) }

// ZEXT_W clears the upper 32 bits: add.uw with Zba, else a shift pair.
func (e *Emitter) ZEXT_W(rd, rs1 Reg) {
	e.requireRV64(Inst{Name: "zext.w"})
	switch {
	case e.caps.Zba && e.inPlaceCU(rd, rs1):
		e.C_ZEXT_W(rd)
	case e.caps.Zba:
		e.ADD_UW(rd, rs1, ZERO)
	default:
		e.SLLI(rd, rs1, 32)
		e.SRLI(rd, rd, 32)
	}
}

func (e *Emitter) zbc(in Inst, rd, rs1, rs2 Reg) {
	e.require(in.Name, e.caps.Zbc, "Zbc")
	e.op(in, rd, rs1, rs2)
}

func (e *Emitter) CLMUL(rd, rs1, rs2 Reg)  { e.zbc(CLMUL, rd, rs1, rs2) }
func (e *Emitter) CLMULR(rd, rs1, rs2 Reg) { e.zbc(CLMULR, rd, rs1, rs2) }
func (e *Emitter) CLMULH(rd, rs1, rs2 Reg) { e.zbc(CLMULH, rd, rs1, rs2) }

func (e *Emitter) zbs(in Inst, rd, rs1, rs2 Reg) {
	e.require(in.Name, e.caps.Zbs, "Zbs")
	e.op(in, rd, rs1, rs2)
}

func (e *Emitter) zbsImm(in Inst, rd, rs1 Reg, bit uint32) {
	e.require(in.Name, e.caps.Zbs, "Zbs")
	e.bitImm(in, rd, rs1, bit)
}

func (e *Emitter) BCLR(rd, rs1, rs2 Reg)         { e.zbs(BCLR, rd, rs1, rs2) }
func (e *Emitter) BEXT(rd, rs1, rs2 Reg)         { e.zbs(BEXT, rd, rs1, rs2) }
func (e *Emitter) BINV(rd, rs1, rs2 Reg)         { e.zbs(BINV, rd, rs1, rs2) }
func (e *Emitter) BSET(rd, rs1, rs2 Reg)         { e.zbs(BSET, rd, rs1, rs2) }
func (e *Emitter) BCLRI(rd, rs1 Reg, bit uint32) { e.zbsImm(BCLRI, rd, rs1, bit) }
func (e *Emitter) BEXTI(rd, rs1 Reg, bit uint32) { e.zbsImm(BEXTI, rd, rs1, bit) }
func (e *Emitter) BINVI(rd, rs1 Reg, bit uint32) { e.zbsImm(BINVI, rd, rs1, bit) }
func (e *Emitter) BSETI(rd, rs1 Reg, bit uint32) { e.zbsImm(BSETI, rd, rs1, bit) }

// CZERO_EQZ sets rd to zero when rs2 is zero, else to rs1.
func (e *Emitter) CZERO_EQZ(rd, rs1, rs2 Reg) {
	e.require(CZERO_EQZ.Name, e.caps.Zicond, "Zicond")
	e.op(CZERO_EQZ, rd, rs1, rs2)
}

func (e *Emitter) CZERO_NEZ(rd, rs1, rs2 Reg) {
	e.require(CZERO_NEZ.Name, e.caps.Zicond, "Zicond")
	e.op(CZERO_NEZ, rd, rs1, rs2)
}
