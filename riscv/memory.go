package riscv

func (e *Emitter) load(in Inst, rd, rs1 Reg, imm int32) {
	e.write32(in, EncodeI(in, rd, rs1, imm))
}

func (e *Emitter) store(in Inst, rs2, rs1 Reg, imm int32) {
	e.write32(in, EncodeS(in, rs2, rs1, imm))
}

// zcbPair reports whether rd and rs1 both fit a three-bit Zcb field.
func (e *Emitter) zcbPair(rd, rs1 Reg) bool {
	return e.AutoCompress() && e.caps.Zcb && CanCompress(rd) && CanCompress(rs1)
}

func (e *Emitter) LB(rd, rs1 Reg, imm int32) { e.load(LB, rd, rs1, imm) }

func (e *Emitter) LBU(rd, rs1 Reg, imm int32) {
	if e.zcbPair(rd, rs1) && imm&3 == imm {
		e.C_LBU(rd, rs1, uint32(imm))
		return
	}
	e.load(LBU, rd, rs1, imm)
}

func (e *Emitter) LH(rd, rs1 Reg, imm int32) {
	if e.zcbPair(rd, rs1) && imm&2 == imm {
		e.C_LH(rd, rs1, uint32(imm))
		return
	}
	e.load(LH, rd, rs1, imm)
}

func (e *Emitter) LHU(rd, rs1 Reg, imm int32) {
	if e.zcbPair(rd, rs1) && imm&2 == imm {
		e.C_LHU(rd, rs1, uint32(imm))
		return
	}
	e.load(LHU, rd, rs1, imm)
}

func (e *Emitter) LW(rd, rs1 Reg, imm int32) {
	if e.AutoCompress() {
		if CanCompress(rd) && CanCompress(rs1) && imm&0x7C == imm {
			e.C_LW(rd, rs1, imm)
			return
		} else if rd != ZERO && rs1 == SP && imm&0xFC == imm {
			e.C_LWSP(rd, imm)
			return
		}
	}
	e.load(LW, rd, rs1, imm)
}

func (e *Emitter) LWU(rd, rs1 Reg, imm int32) {
	e.requireRV64(LWU)
	e.load(LWU, rd, rs1, imm)
}

func (e *Emitter) LD(rd, rs1 Reg, imm int32) {
	e.requireRV64(LD)
	if e.AutoCompress() {
		if CanCompress(rd) && CanCompress(rs1) && imm&0xF8 == imm {
			e.C_LD(rd, rs1, imm)
			return
		} else if rd != ZERO && rs1 == SP && imm&0x1F8 == imm {
			e.C_LDSP(rd, imm)
			return
		}
	}
	e.load(LD, rd, rs1, imm)
}

func (e *Emitter) SB(rs2, rs1 Reg, imm int32) {
	if e.zcbPair(rs2, rs1) && imm&3 == imm {
		e.C_SB(rs2, rs1, uint32(imm))
		return
	}
	e.store(SB, rs2, rs1, imm)
}

func (e *Emitter) SH(rs2, rs1 Reg, imm int32) {
	if e.zcbPair(rs2, rs1) && imm&2 == imm {
		e.C_SH(rs2, rs1, uint32(imm))
		return
	}
	e.store(SH, rs2, rs1, imm)
}

func (e *Emitter) SW(rs2, rs1 Reg, imm int32) {
	if e.AutoCompress() {
		if CanCompress(rs2) && CanCompress(rs1) && imm&0x7C == imm {
			e.C_SW(rs2, rs1, imm)
			return
		} else if rs1 == SP && imm&0xFC == imm {
			e.C_SWSP(rs2, imm)
			return
		}
	}
	e.store(SW, rs2, rs1, imm)
}

func (e *Emitter) SD(rs2, rs1 Reg, imm int32) {
	e.requireRV64(SD)
	if e.AutoCompress() {
		if CanCompress(rs2) && CanCompress(rs1) && imm&0xF8 == imm {
			e.C_SD(rs2, rs1, imm)
			return
		} else if rs1 == SP && imm&0x1F8 == imm {
			e.C_SDSP(rs2, imm)
			return
		}
	}
	e.store(SD, rs2, rs1, imm)
}

// LoadReg loads an XLEN-wide value: LD on RV64, LW on RV32.
func (e *Emitter) LoadReg(rd, rs1 Reg, imm int32) {
	if e.caps.RV64 {
		e.LD(rd, rs1, imm)
	} else {
		e.LW(rd, rs1, imm)
	}
}

// StoreReg stores an XLEN-wide value.
func (e *Emitter) StoreReg(rs2, rs1 Reg, imm int32) {
	if e.caps.RV64 {
		e.SD(rs2, rs1, imm)
	} else {
		e.SW(rs2, rs1, imm)
	}
}
