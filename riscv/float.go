package riscv

import "github.com/colorfulnotion/jit/jiterrors"

// Float operations take the operand width in bits (32 or 64) and pick the
// .s or .d form.

func (e *Emitter) pickFP(op string, bits int, s, d Inst) Inst {
	switch bits {
	case 32:
		e.require(s.Name, e.caps.F, "F")
		return s
	case 64:
		e.require(d.Name, e.caps.D, "D")
		return d
	}
	jiterrors.Failf(op, "bits", jiterrors.ErrEOperandConstraint, "float width %d", bits)
	return Inst{}
}

func pickInt(op string, bits int, w, l Inst) Inst {
	switch bits {
	case 32:
		return w
	case 64:
		return l
	}
	jiterrors.Failf(op, "bits", jiterrors.ErrEOperandConstraint, "integer width %d", bits)
	return Inst{}
}

func (e *Emitter) FL(bits int, rd, rs1 Reg, imm int32) {
	in := e.pickFP("fl", bits, FLW, FLD)
	if e.AutoCompress() {
		fits := CanCompress(rd) && CanCompress(rs1)
		switch {
		case bits == 64 && fits && imm&0xF8 == imm:
			e.C_FLD(rd, rs1, imm)
			return
		case bits == 64 && rs1 == SP && imm&0x1F8 == imm:
			e.C_FLDSP(rd, imm)
			return
		case bits == 32 && !e.caps.RV64 && fits && imm&0x7C == imm:
			e.C_FLW(rd, rs1, imm)
			return
		case bits == 32 && !e.caps.RV64 && rs1 == SP && imm&0xFC == imm:
			e.C_FLWSP(rd, imm)
			return
		}
	}
	e.write32(in, EncodeI(in, rd, rs1, imm))
}

func (e *Emitter) FS(bits int, rs2, rs1 Reg, imm int32) {
	in := e.pickFP("fs", bits, FSW, FSD)
	if e.AutoCompress() {
		fits := CanCompress(rs2) && CanCompress(rs1)
		switch {
		case bits == 64 && fits && imm&0xF8 == imm:
			e.C_FSD(rs2, rs1, imm)
			return
		case bits == 64 && rs1 == SP && imm&0x1F8 == imm:
			e.C_FSDSP(rs2, imm)
			return
		case bits == 32 && !e.caps.RV64 && fits && imm&0x7C == imm:
			e.C_FSW(rs2, rs1, imm)
			return
		case bits == 32 && !e.caps.RV64 && rs1 == SP && imm&0xFC == imm:
			e.C_FSWSP(rs2, imm)
			return
		}
	}
	e.write32(in, EncodeS(in, rs2, rs1, imm))
}

func (e *Emitter) fpRm(in Inst, rd, rs1, rs2 Reg, rm RoundingMode) {
	e.write32(in, EncodeRRm(in, rd, rs1, rs2, rm))
}

func (e *Emitter) FADD(bits int, rd, rs1, rs2 Reg, rm RoundingMode) {
	e.fpRm(e.pickFP("fadd", bits, FADD_S, FADD_D), rd, rs1, rs2, rm)
}

func (e *Emitter) FSUB(bits int, rd, rs1, rs2 Reg, rm RoundingMode) {
	e.fpRm(e.pickFP("fsub", bits, FSUB_S, FSUB_D), rd, rs1, rs2, rm)
}

func (e *Emitter) FMUL(bits int, rd, rs1, rs2 Reg, rm RoundingMode) {
	e.fpRm(e.pickFP("fmul", bits, FMUL_S, FMUL_D), rd, rs1, rs2, rm)
}

func (e *Emitter) FDIV(bits int, rd, rs1, rs2 Reg, rm RoundingMode) {
	e.fpRm(e.pickFP("fdiv", bits, FDIV_S, FDIV_D), rd, rs1, rs2, rm)
}

func (e *Emitter) FSQRT(bits int, rd, rs1 Reg, rm RoundingMode) {
	in := e.pickFP("fsqrt", bits, FSQRT_S, FSQRT_D)
	e.write32(in, EncodeR2Rm(in, rd, rs1, rm))
}

func (e *Emitter) fpR(op string, bits int, s, d Inst, rd, rs1, rs2 Reg) {
	in := e.pickFP(op, bits, s, d)
	e.write32(in, EncodeR(in, rd, rs1, rs2))
}

func (e *Emitter) FSGNJ(bits int, rd, rs1, rs2 Reg) {
	e.fpR("fsgnj", bits, FSGNJ_S, FSGNJ_D, rd, rs1, rs2)
}
func (e *Emitter) FSGNJN(bits int, rd, rs1, rs2 Reg) {
	e.fpR("fsgnjn", bits, FSGNJN_S, FSGNJN_D, rd, rs1, rs2)
}
func (e *Emitter) FSGNJX(bits int, rd, rs1, rs2 Reg) {
	e.fpR("fsgnjx", bits, FSGNJX_S, FSGNJX_D, rd, rs1, rs2)
}
func (e *Emitter) FMIN(bits int, rd, rs1, rs2 Reg) { e.fpR("fmin", bits, FMIN_S, FMIN_D, rd, rs1, rs2) }
func (e *Emitter) FMAX(bits int, rd, rs1, rs2 Reg) { e.fpR("fmax", bits, FMAX_S, FMAX_D, rd, rs1, rs2) }

// Comparisons write 0 or 1 to an integer register.
func (e *Emitter) FEQ(bits int, rd, rs1, rs2 Reg) { e.fpR("feq", bits, FEQ_S, FEQ_D, rd, rs1, rs2) }
func (e *Emitter) FLT(bits int, rd, rs1, rs2 Reg) { e.fpR("flt", bits, FLT_S, FLT_D, rd, rs1, rs2) }
func (e *Emitter) FLE(bits int, rd, rs1, rs2 Reg) { e.fpR("fle", bits, FLE_S, FLE_D, rd, rs1, rs2) }

func (e *Emitter) FCLASS(bits int, rd, rs1 Reg) {
	in := e.pickFP("fclass", bits, FCLASS_S, FCLASS_D)
	e.write32(in, EncodeR2(in, rd, rs1))
}

// FMV_X moves the raw bits of a float register to an integer register.
func (e *Emitter) FMV_X(bits int, rd, rs1 Reg) {
	in := e.pickFP("fmv.x", bits, FMV_X_W, FMV_X_D)
	if bits == 64 {
		e.requireRV64(in)
	}
	e.write32(in, EncodeR2(in, rd, rs1))
}

// FMV_F moves the low bits of an integer register into a float register.
func (e *Emitter) FMV_F(bits int, rd, rs1 Reg) {
	in := e.pickFP("fmv.f", bits, FMV_W_X, FMV_D_X)
	if bits == 64 {
		e.requireRV64(in)
	}
	e.write32(in, EncodeR2(in, rd, rs1))
}

func (e *Emitter) r2rm(in Inst, rd, rs1 Reg, rm RoundingMode) {
	e.write32(in, EncodeR2Rm(in, rd, rs1, rm))
}

// FCVTToInt converts a float of fpBits to a signed or unsigned integer of
// intBits, rounding by rm.
func (e *Emitter) FCVTToInt(intBits int, signed bool, fpBits int, rd, rs1 Reg, rm RoundingMode) {
	var s, d Inst
	switch {
	case signed:
		s = pickInt("fcvt", intBits, FCVT_W_S, FCVT_L_S)
		d = pickInt("fcvt", intBits, FCVT_W_D, FCVT_L_D)
	default:
		s = pickInt("fcvt", intBits, FCVT_WU_S, FCVT_LU_S)
		d = pickInt("fcvt", intBits, FCVT_WU_D, FCVT_LU_D)
	}
	in := e.pickFP("fcvt", fpBits, s, d)
	if intBits == 64 {
		e.requireRV64(in)
	}
	e.r2rm(in, rd, rs1, rm)
}

func (e *Emitter) FCVTFromInt(fpBits int, intBits int, signed bool, rd, rs1 Reg, rm RoundingMode) {
	var s, d Inst
	switch {
	case signed:
		s = pickInt("fcvt", intBits, FCVT_S_W, FCVT_S_L)
		d = pickInt("fcvt", intBits, FCVT_D_W, FCVT_D_L)
	default:
		s = pickInt("fcvt", intBits, FCVT_S_WU, FCVT_S_LU)
		d = pickInt("fcvt", intBits, FCVT_D_WU, FCVT_D_LU)
	}
	in := e.pickFP("fcvt", fpBits, s, d)
	if intBits == 64 {
		e.requireRV64(in)
	}
	e.r2rm(in, rd, rs1, rm)
}

// FCVTFloat converts between single and double precision.
func (e *Emitter) FCVTFloat(toBits, fromBits int, rd, rs1 Reg, rm RoundingMode) {
	if toBits == fromBits {
		jiterrors.Failf("fcvt", "bits", jiterrors.ErrEOperandConstraint, "%d to %d is not a conversion", fromBits, toBits)
	}
	e.require("fcvt", e.caps.D, "D")
	e.r2rm(e.pickFP("fcvt", toBits, FCVT_S_D, FCVT_D_S), rd, rs1, rm)
}

func (e *Emitter) fma(op string, bits int, s, d Inst, rd, rs1, rs2, rs3 Reg, rm RoundingMode) {
	in := e.pickFP(op, bits, s, d)
	e.write32(in, EncodeR4(in, rd, rs1, rs2, rs3, rm))
}

// FMADD computes rs1*rs2 + rs3 with a single rounding.
func (e *Emitter) FMADD(bits int, rd, rs1, rs2, rs3 Reg, rm RoundingMode) {
	e.fma("fmadd", bits, FMADD_S, FMADD_D, rd, rs1, rs2, rs3, rm)
}

func (e *Emitter) FMSUB(bits int, rd, rs1, rs2, rs3 Reg, rm RoundingMode) {
	e.fma("fmsub", bits, FMSUB_S, FMSUB_D, rd, rs1, rs2, rs3, rm)
}

func (e *Emitter) FNMSUB(bits int, rd, rs1, rs2, rs3 Reg, rm RoundingMode) {
	e.fma("fnmsub", bits, FNMSUB_S, FNMSUB_D, rd, rs1, rs2, rs3, rm)
}

func (e *Emitter) FNMADD(bits int, rd, rs1, rs2, rs3 Reg, rm RoundingMode) {
	e.fma("fnmadd", bits, FNMADD_S, FNMADD_D, rd, rs1, rs2, rs3, rm)
}
