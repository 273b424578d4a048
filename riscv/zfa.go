package riscv

import (
	"math"

	"github.com/colorfulnotion/jit/jiterrors"
)

// pickFPH is pickFP with a half-precision form, which needs Zfh.
func (e *Emitter) pickFPH(op string, bits int, h, s, d Inst) Inst {
	if bits == 16 {
		e.require(h.Name, e.caps.F && e.caps.Zfh, "Zfh")
		return h
	}
	return e.pickFP(op, bits, s, d)
}

func (e *Emitter) requireZfa(op string) { e.require(op, e.caps.F && e.caps.Zfa, "Zfa") }

// fliValues are the constants FLI can load, by rs1 index. Entry 1 is the
// smallest normal of the target width and is handled separately.
var fliValues = [32]float32{
	-1.0, 0, 0x1p-16, 0x1p-15, 0x1p-8, 0x1p-7, 0.0625, 0.125,
	0.25, 0.3125, 0.375, 0.4375, 0.5, 0.625, 0.75, 0.875,
	1.0, 1.25, 1.5, 1.75, 2.0, 2.5, 3.0, 4.0,
	8.0, 16.0, 128.0, 256.0, 0x1p15, 0x1p16, float32(math.Inf(1)), 0,
}

// fliIndex finds v in the FLI table for a bits-wide format. A NaN matches
// entry 31 when it narrows to the canonical single NaN.
func fliIndex(bits int, v float64) (int, bool) {
	switch {
	case math.IsNaN(v):
		return 31, math.Float32bits(float32(v)) == 0x7FC00000
	case bits == 64 && v == 0x1p-1022, bits == 32 && v == 0x1p-126, bits == 16 && v == 0x1p-14:
		return 1, true
	}
	for i, f := range fliValues {
		if i == 1 || i == 31 || float64(f) != v {
			continue
		}
		// 2^-16 and 2^-15 are subnormal in half precision and 2^16 overflows it.
		if bits == 16 && (i == 2 || i == 3 || i == 29) {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// CanFLI reports whether FLI can load v for the given width on this hart.
func (e *Emitter) CanFLI(bits int, v float64) bool {
	if !e.caps.F || !e.caps.Zfa {
		return false
	}
	switch {
	case bits == 16 && !e.caps.Zfh, bits == 64 && !e.caps.D, bits != 16 && bits != 32 && bits != 64:
		return false
	}
	_, ok := fliIndex(bits, v)
	return ok
}

// FLI loads one of the 32 Zfa constants into rd.
func (e *Emitter) FLI(bits int, rd Reg, v float64) {
	e.requireZfa("fli")
	in := e.pickFPH("fli", bits, FLI_H, FLI_S, FLI_D)
	idx, ok := fliIndex(bits, v)
	if !ok {
		jiterrors.Failf(in.Name, "imm", jiterrors.ErrRImmRange, "%g is not an fli constant", v)
	}
	e.write32(in, EncodeR2(in, rd, X0+Reg(idx)))
}

// FMINM and FMAXM propagate NaN instead of returning the other operand.
func (e *Emitter) FMINM(bits int, rd, rs1, rs2 Reg) {
	e.requireZfa("fminm")
	in := e.pickFPH("fminm", bits, FMINM_H, FMINM_S, FMINM_D)
	e.write32(in, EncodeR(in, rd, rs1, rs2))
}

func (e *Emitter) FMAXM(bits int, rd, rs1, rs2 Reg) {
	e.requireZfa("fmaxm")
	in := e.pickFPH("fmaxm", bits, FMAXM_H, FMAXM_S, FMAXM_D)
	e.write32(in, EncodeR(in, rd, rs1, rs2))
}

// FROUND rounds to an integral value in floating point by rm.
func (e *Emitter) FROUND(bits int, rd, rs1 Reg, rm RoundingMode) {
	e.requireZfa("fround")
	e.r2rm(e.pickFPH("fround", bits, FROUND_H, FROUND_S, FROUND_D), rd, rs1, rm)
}

// FROUNDNX is FROUND that raises inexact.
func (e *Emitter) FROUNDNX(bits int, rd, rs1 Reg, rm RoundingMode) {
	e.requireZfa("froundnx")
	e.r2rm(e.pickFPH("froundnx", bits, FROUNDNX_H, FROUNDNX_S, FROUNDNX_D), rd, rs1, rm)
}

// FLEQ and FLTQ are the quiet comparisons.
func (e *Emitter) FLEQ(bits int, rd, rs1, rs2 Reg) {
	e.requireZfa("fleq")
	e.fpR("fleq", bits, FLEQ_S, FLEQ_D, rd, rs1, rs2)
}

func (e *Emitter) FLTQ(bits int, rd, rs1, rs2 Reg) {
	e.requireZfa("fltq")
	e.fpR("fltq", bits, FLTQ_S, FLTQ_D, rd, rs1, rs2)
}

func (e *Emitter) hasHalfMin() bool { return e.caps.Zfhmin || e.caps.Zfh }

func (e *Emitter) FLH(rd, rs1 Reg, imm int32) {
	e.require(FLH.Name, e.caps.F && e.hasHalfMin(), "Zfhmin")
	e.write32(FLH, EncodeI(FLH, rd, rs1, imm))
}

func (e *Emitter) FSH(rs2, rs1 Reg, imm int32) {
	e.require(FSH.Name, e.caps.F && e.hasHalfMin(), "Zfhmin")
	e.write32(FSH, EncodeS(FSH, rs2, rs1, imm))
}

// FCVTHalf converts between half precision and single or double.
func (e *Emitter) FCVTHalf(toBits, fromBits int, rd, rs1 Reg, rm RoundingMode) {
	var in Inst
	switch {
	case toBits == 16:
		in = e.pickFP("fcvt", fromBits, FCVT_H_S, FCVT_H_D)
	case fromBits == 16:
		in = e.pickFP("fcvt", toBits, FCVT_S_H, FCVT_D_H)
	default:
		jiterrors.Failf("fcvt", "bits", jiterrors.ErrEOperandConstraint, "%d to %d does not involve half precision", fromBits, toBits)
	}
	e.require(in.Name, e.hasHalfMin(), "Zfhmin")
	e.r2rm(in, rd, rs1, rm)
}

// QuickFLI loads the float constant v of the given width into rd. It uses
// FLI when Zfa has the constant, else builds the bit pattern in scratch
// and moves it across. A half constant outside the FLI table is rounded to
// nearest through single precision.
func (e *Emitter) QuickFLI(bits int, rd Reg, v float64, scratch Reg) {
	if e.CanFLI(bits, v) {
		e.FLI(bits, rd, v)
		return
	}
	requireClass(FMV_W_X, "rd", rd, ClassFPR)
	switch bits {
	case 64:
		e.requireRV64(e.pickFP("quickfli", 64, FMV_W_X, FMV_D_X))
		e.quickFMV(64, rd, int64(math.Float64bits(v)), scratch)
	case 32:
		e.pickFP("quickfli", 32, FMV_W_X, FMV_D_X)
		e.quickFMV(32, rd, int64(int32(math.Float32bits(float32(v)))), scratch)
	case 16:
		e.require("quickfli", e.caps.F && e.hasHalfMin(), "Zfhmin")
		e.quickFMV(32, rd, int64(int32(math.Float32bits(float32(v)))), scratch)
		e.FCVTHalf(16, 32, rd, rd, RNE)
	default:
		jiterrors.Failf("quickfli", "bits", jiterrors.ErrEOperandConstraint, "float width %d", bits)
	}
}

// quickFMV moves the low bits of pattern into rd. Zero comes straight from
// the zero register.
func (e *Emitter) quickFMV(bits int, rd Reg, pattern int64, scratch Reg) {
	src := ZERO
	if pattern != 0 {
		requireClass(FMV_W_X, "scratch", scratch, ClassGPR)
		e.LI(scratch, pattern)
		src = scratch
	}
	e.FMV_F(bits, rd, src)
}
