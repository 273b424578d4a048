package riscv

func (e *Emitter) mulOp(in Inst, rd, rs1, rs2 Reg) {
	e.require(in.Name, e.caps.Mul(), "M or Zmmul")
	e.op(in, rd, rs1, rs2)
}

func (e *Emitter) divOp(in Inst, rd, rs1, rs2 Reg) {
	e.require(in.Name, e.caps.MulDiv(), "M")
	e.op(in, rd, rs1, rs2)
}

// MUL compresses to c.mul with Zcb; the product commutes so either source
// may alias rd.
func (e *Emitter) MUL(rd, rs1, rs2 Reg) {
	if e.caps.Zcb && e.caps.Mul() {
		if e.compressibleOp(rd, rs1, rs2) {
			e.C_MUL(rd, rs2)
			return
		} else if e.compressibleOp(rd, rs2, rs1) {
			e.C_MUL(rd, rs1)
			return
		}
	}
	e.mulOp(MUL, rd, rs1, rs2)
}

func (e *Emitter) MULH(rd, rs1, rs2 Reg)   { e.mulOp(MULH, rd, rs1, rs2) }
func (e *Emitter) MULHSU(rd, rs1, rs2 Reg) { e.mulOp(MULHSU, rd, rs1, rs2) }
func (e *Emitter) MULHU(rd, rs1, rs2 Reg)  { e.mulOp(MULHU, rd, rs1, rs2) }
func (e *Emitter) DIV(rd, rs1, rs2 Reg)    { e.divOp(DIV, rd, rs1, rs2) }
func (e *Emitter) DIVU(rd, rs1, rs2 Reg)   { e.divOp(DIVU, rd, rs1, rs2) }
func (e *Emitter) REM(rd, rs1, rs2 Reg)    { e.divOp(REM, rd, rs1, rs2) }
func (e *Emitter) REMU(rd, rs1, rs2 Reg)   { e.divOp(REMU, rd, rs1, rs2) }

func (e *Emitter) MULW(rd, rs1, rs2 Reg) {
	e.requireRV64(MULW)
	e.mulOp(MULW, rd, rs1, rs2)
}

func (e *Emitter) DIVW(rd, rs1, rs2 Reg) {
	e.requireRV64(DIVW)
	e.divOp(DIVW, rd, rs1, rs2)
}

func (e *Emitter) DIVUW(rd, rs1, rs2 Reg) {
	e.requireRV64(DIVUW)
	e.divOp(DIVUW, rd, rs1, rs2)
}

func (e *Emitter) REMW(rd, rs1, rs2 Reg) {
	e.requireRV64(REMW)
	e.divOp(REMW, rd, rs1, rs2)
}

func (e *Emitter) REMUW(rd, rs1, rs2 Reg) {
	e.requireRV64(REMUW)
	e.divOp(REMUW, rd, rs1, rs2)
}
