package riscv

import (
	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
)

// RoundingMode is the funct3 field of floating point arithmetic.
type RoundingMode uint32

const (
	RNE RoundingMode = 0
	RTZ RoundingMode = 1
	RDN RoundingMode = 2
	RUP RoundingMode = 3
	RMM RoundingMode = 4
	DYN RoundingMode = 7
)

// Ordering is the aq/rl pair of an atomic.
type Ordering uint32

const (
	OrderNone    Ordering = 0
	OrderRelease Ordering = 1
	OrderAcquire Ordering = 2
	OrderAqRl    Ordering = 3
)

// VUseMask is the vm bit of a vector instruction.
type VUseMask uint32

const (
	VMaskV0T  VUseMask = 0 // execute where v0.mask is set
	VUnmasked VUseMask = 1
)

// Fence is a pred/succ set.
type Fence uint32

const (
	FenceW    Fence = 1
	FenceR    Fence = 2
	FenceO    Fence = 4
	FenceI    Fence = 8
	FenceRW         = FenceR | FenceW
	FenceIORW       = FenceI | FenceO | FenceR | FenceW
)

// CSR is a control and status register number.
type CSR uint32

const (
	CSR_FFLAGS  CSR = 0x001
	CSR_FRM     CSR = 0x002
	CSR_FCSR    CSR = 0x003
	CSR_CYCLE   CSR = 0xC00
	CSR_TIME    CSR = 0xC01
	CSR_INSTRET CSR = 0xC02
	CSR_VL      CSR = 0xC20
	CSR_VTYPE   CSR = 0xC21
	CSR_VLENB   CSR = 0xC22
)

func requireShape(in Inst, shapes ...Shape) {
	for _, s := range shapes {
		if in.Shape == s {
			return
		}
	}
	jiterrors.Failf(in.Name, "", jiterrors.ErrEOperandConstraint, "shape %s used with a %s encoder", in.Shape, shapes[0])
}

func requireClass(in Inst, field string, r Reg, c Class) {
	if !r.Is(c) {
		jiterrors.Failf(in.Name, field, jiterrors.ErrERegisterClass, "%s is not a %s", r, c)
	}
}

func requireSigned(op, field string, v int64, width int) {
	if !emitter.FitsSigned(v, width) {
		jiterrors.Failf(op, field, jiterrors.ErrRImmRange, "%d does not fit %d signed bits", v, width)
	}
}

func requireUnsigned(op, field string, v int64, width int) {
	if v < 0 || !emitter.FitsUnsigned(uint64(v), width) {
		jiterrors.Failf(op, field, jiterrors.ErrRImmRange, "%d does not fit %d unsigned bits", v, width)
	}
}

func requireAligned(op, field string, v int64, align int64) {
	if v%align != 0 {
		jiterrors.Failf(op, field, jiterrors.ErrRImmAlign, "%d is not a multiple of %d", v, align)
	}
}

func requireRoundingMode(in Inst, rm RoundingMode) {
	if rm > RMM && rm != DYN {
		jiterrors.Failf(in.Name, "rm", jiterrors.ErrRImmRange, "rounding mode %d is reserved", rm)
	}
}

func rd7(r Reg) uint32  { return DecodeReg(r) << 7 }
func rs15(r Reg) uint32 { return DecodeReg(r) << 15 }
func rs20(r Reg) uint32 { return DecodeReg(r) << 20 }

// bImm scatters a B-type displacement: [12|10:5] at 25, [4:1|11] at 7.
func bImm(disp int64) uint32 {
	return emitter.Bit(disp, 12)<<31 | emitter.Bits(disp, 5, 6)<<25 |
		emitter.Bits(disp, 1, 4)<<8 | emitter.Bit(disp, 11)<<7
}

// jImm scatters a J-type displacement: [20|10:1|11|19:12] at 12.
func jImm(disp int64) uint32 {
	return emitter.Bit(disp, 20)<<31 | emitter.Bits(disp, 1, 10)<<21 |
		emitter.Bit(disp, 11)<<20 | emitter.Bits(disp, 12, 8)<<12
}

func EncodeR(in Inst, rd, rs1, rs2 Reg) uint32 {
	requireShape(in, ShapeR)
	requireClass(in, "rd", rd, in.class(0))
	requireClass(in, "rs1", rs1, in.class(1))
	requireClass(in, "rs2", rs2, in.class(2))
	return in.Match | rd7(rd) | rs15(rs1) | rs20(rs2)
}

// EncodeR2 encodes a two-register form whose rs2 field is part of the opcode.
func EncodeR2(in Inst, rd, rs1 Reg) uint32 {
	requireShape(in, ShapeR2)
	requireClass(in, "rd", rd, in.class(0))
	requireClass(in, "rs1", rs1, in.class(1))
	return in.Match | rd7(rd) | rs15(rs1)
}

func EncodeRRm(in Inst, rd, rs1, rs2 Reg, rm RoundingMode) uint32 {
	requireShape(in, ShapeRRm)
	requireClass(in, "rd", rd, in.class(0))
	requireClass(in, "rs1", rs1, in.class(1))
	requireClass(in, "rs2", rs2, in.class(2))
	requireRoundingMode(in, rm)
	return in.Match | rd7(rd) | uint32(rm)<<12 | rs15(rs1) | rs20(rs2)
}

func EncodeR2Rm(in Inst, rd, rs1 Reg, rm RoundingMode) uint32 {
	requireShape(in, ShapeR2Rm)
	requireClass(in, "rd", rd, in.class(0))
	requireClass(in, "rs1", rs1, in.class(1))
	requireRoundingMode(in, rm)
	return in.Match | rd7(rd) | uint32(rm)<<12 | rs15(rs1)
}

func EncodeR4(in Inst, rd, rs1, rs2, rs3 Reg, rm RoundingMode) uint32 {
	requireShape(in, ShapeR4)
	requireClass(in, "rd", rd, in.class(0))
	requireClass(in, "rs1", rs1, in.class(1))
	requireClass(in, "rs2", rs2, in.class(2))
	requireClass(in, "rs3", rs3, in.class(3))
	requireRoundingMode(in, rm)
	return in.Match | rd7(rd) | uint32(rm)<<12 | rs15(rs1) | rs20(rs2) | DecodeReg(rs3)<<27
}

// EncodeAtomic encodes an AMO or SC: funct7 = funct5<<2 | aq<<1 | rl.
func EncodeAtomic(in Inst, rd, rs1, rs2 Reg, ord Ordering) uint32 {
	requireShape(in, ShapeAMO)
	requireClass(in, "rd", rd, ClassGPR)
	requireClass(in, "rs1", rs1, ClassGPR)
	requireClass(in, "rs2", rs2, ClassGPR)
	return in.Match | rd7(rd) | rs15(rs1) | rs20(rs2) | uint32(ord&3)<<25
}

func EncodeLR(in Inst, rd, rs1 Reg, ord Ordering) uint32 {
	requireShape(in, ShapeLR)
	requireClass(in, "rd", rd, ClassGPR)
	requireClass(in, "rs1", rs1, ClassGPR)
	return in.Match | rd7(rd) | rs15(rs1) | uint32(ord&3)<<25
}

func EncodeI(in Inst, rd, rs1 Reg, imm int32) uint32 {
	requireShape(in, ShapeI)
	requireClass(in, "rd", rd, in.class(0))
	requireClass(in, "rs1", rs1, ClassGPR)
	requireSigned(in.Name, "imm", int64(imm), 12)
	return in.Match | rd7(rd) | rs15(rs1) | (uint32(imm)&0xFFF)<<20
}

func EncodeIShift(in Inst, rd, rs1 Reg, shamt uint32) uint32 {
	requireShape(in, ShapeIShift, ShapeIShiftW)
	requireClass(in, "rd", rd, ClassGPR)
	requireClass(in, "rs1", rs1, ClassGPR)
	width := 6
	if in.Shape == ShapeIShiftW {
		width = 5
	}
	requireUnsigned(in.Name, "shamt", int64(shamt), width)
	return in.Match | rd7(rd) | rs15(rs1) | shamt<<20
}

// EncodeS encodes a store of rs2 to imm(rs1).
func EncodeS(in Inst, rs2, rs1 Reg, imm int32) uint32 {
	requireShape(in, ShapeS)
	requireClass(in, "rs2", rs2, in.class(0))
	requireClass(in, "rs1", rs1, ClassGPR)
	requireSigned(in.Name, "imm", int64(imm), 12)
	v := int64(imm)
	return in.Match | emitter.Bits(v, 0, 5)<<7 | rs15(rs1) | rs20(rs2) | emitter.Bits(v, 5, 7)<<25
}

func EncodeB(in Inst, rs1, rs2 Reg, disp int32) uint32 {
	requireShape(in, ShapeB)
	requireClass(in, "rs1", rs1, ClassGPR)
	requireClass(in, "rs2", rs2, ClassGPR)
	requireAligned(in.Name, "disp", int64(disp), 2)
	requireSigned(in.Name, "disp", int64(disp), 13)
	return in.Match | rs15(rs1) | rs20(rs2) | bImm(int64(disp))
}

// EncodeU takes the full value whose low 12 bits must be zero.
func EncodeU(in Inst, rd Reg, imm int32) uint32 {
	requireShape(in, ShapeU)
	requireClass(in, "rd", rd, ClassGPR)
	requireAligned(in.Name, "imm", int64(imm), 1<<12)
	return in.Match | rd7(rd) | uint32(imm)&0xFFFFF000
}

func EncodeJ(in Inst, rd Reg, disp int32) uint32 {
	requireShape(in, ShapeJ)
	requireClass(in, "rd", rd, ClassGPR)
	requireAligned(in.Name, "disp", int64(disp), 2)
	requireSigned(in.Name, "disp", int64(disp), 21)
	return in.Match | rd7(rd) | jImm(int64(disp))
}

func EncodeCSR(in Inst, rd Reg, csr CSR, rs1 Reg) uint32 {
	requireShape(in, ShapeCSR)
	requireClass(in, "rd", rd, ClassGPR)
	requireClass(in, "rs1", rs1, ClassGPR)
	requireUnsigned(in.Name, "csr", int64(csr), 12)
	return in.Match | rd7(rd) | rs15(rs1) | uint32(csr)<<20
}

func EncodeCSRI(in Inst, rd Reg, csr CSR, uimm5 uint32) uint32 {
	requireShape(in, ShapeCSRI)
	requireClass(in, "rd", rd, ClassGPR)
	requireUnsigned(in.Name, "csr", int64(csr), 12)
	requireUnsigned(in.Name, "uimm", int64(uimm5), 5)
	return in.Match | rd7(rd) | uimm5<<15 | uint32(csr)<<20
}

func EncodeFence(in Inst, pred, succ Fence) uint32 {
	requireShape(in, ShapeFence)
	requireUnsigned(in.Name, "pred", int64(pred), 4)
	requireUnsigned(in.Name, "succ", int64(succ), 4)
	return in.Match | uint32(succ)<<20 | uint32(pred)<<24
}

func EncodeSys(in Inst) uint32 {
	requireShape(in, ShapeSys)
	return in.Match
}

// EncodeVSETVLI takes the 11-bit vtype (see VType).
func EncodeVSETVLI(in Inst, rd, rs1 Reg, vtype uint32) uint32 {
	requireShape(in, ShapeVSETVLI)
	requireClass(in, "rd", rd, ClassGPR)
	requireClass(in, "rs1", rs1, ClassGPR)
	requireUnsigned(in.Name, "vtype", int64(vtype), 11)
	return in.Match | rd7(rd) | rs15(rs1) | vtype<<20
}

func requireVMask(in Inst, vd Reg, vm VUseMask) {
	if vm == VMaskV0T && DecodeReg(vd) == 0 {
		jiterrors.Failf(in.Name, "vd", jiterrors.ErrEOperandConstraint, "masked operation cannot write v0")
	}
}

// EncodeVLS encodes a unit-stride vector load (vd) or store (vs3).
func EncodeVLS(in Inst, vd, rs1 Reg, vm VUseMask) uint32 {
	requireShape(in, ShapeVLS)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "rs1", rs1, ClassGPR)
	if in.Match&0x7F == opLOAD_FP {
		requireVMask(in, vd, vm)
	}
	return in.Match | rd7(vd) | rs15(rs1) | uint32(vm&1)<<25
}

// Compares produce a mask and may target v0.
func isVCompare(in Inst) bool { return in.Match>>29 == 0b011 }

func EncodeVV(in Inst, vd, vs2, vs1 Reg, vm VUseMask) uint32 {
	requireShape(in, ShapeVV)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "vs2", vs2, ClassVPR)
	requireClass(in, "vs1", vs1, ClassVPR)
	if !isVCompare(in) {
		requireVMask(in, vd, vm)
	}
	return in.Match | rd7(vd) | rs15(vs1) | rs20(vs2) | uint32(vm&1)<<25
}

func EncodeVX(in Inst, vd, vs2, rs1 Reg, vm VUseMask) uint32 {
	requireShape(in, ShapeVX)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "vs2", vs2, ClassVPR)
	requireClass(in, "rs1", rs1, ClassGPR)
	if !isVCompare(in) {
		requireVMask(in, vd, vm)
	}
	return in.Match | rd7(vd) | rs15(rs1) | rs20(vs2) | uint32(vm&1)<<25
}

func EncodeVI(in Inst, vd, vs2 Reg, simm5 int32, vm VUseMask) uint32 {
	requireShape(in, ShapeVI)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "vs2", vs2, ClassVPR)
	requireSigned(in.Name, "simm5", int64(simm5), 5)
	if !isVCompare(in) {
		requireVMask(in, vd, vm)
	}
	return in.Match | rd7(vd) | (uint32(simm5)&0x1F)<<15 | rs20(vs2) | uint32(vm&1)<<25
}
