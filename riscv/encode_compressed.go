package riscv

import (
	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
)

func requireCompressible(in Inst, field string, r Reg, c Class) {
	requireClass(in, field, r, c)
	if !CanCompress(r) {
		jiterrors.Failf(in.Name, field, jiterrors.ErrERegisterClass, "%s is outside x8-x15/f8-f15", r)
	}
}

func requireNonZero(in Inst, field string, r Reg) {
	if DecodeReg(r) == 0 {
		jiterrors.Failf(in.Name, field, jiterrors.ErrEHintWrite, "%s cannot be x0", field)
	}
}

func c16(v uint32) uint16 { return uint16(v) }

// cbImm scatters a CB displacement: [8|4:3] at 10, [7:6|2:1|5] at 2.
func cbImm(disp int64) uint16 {
	b := emitter.Bit
	bs := emitter.Bits
	return c16(b(disp, 8)<<12 | bs(disp, 3, 2)<<10 | bs(disp, 6, 2)<<5 | bs(disp, 1, 2)<<3 | b(disp, 5)<<2)
}

// cjImm scatters a CJ displacement: [11|4|9:8|10|6|7|3:1|5] at 2.
func cjImm(disp int64) uint16 {
	b := emitter.Bit
	bs := emitter.Bits
	return c16(b(disp, 11)<<12 | b(disp, 4)<<11 | bs(disp, 8, 2)<<9 | b(disp, 10)<<8 |
		b(disp, 6)<<7 | b(disp, 7)<<6 | bs(disp, 1, 3)<<3 | b(disp, 5)<<2)
}

// ciImm places a 6-bit field: bit 5 at 12, bits 4:0 at 2.
func ciImm(v uint32) uint16 { return c16((v>>5&1)<<12 | (v&0x1F)<<2) }

func EncodeCR(in Inst, rd, rs2 Reg) uint16 {
	requireShape(in, ShapeCR)
	requireClass(in, "rd", rd, ClassGPR)
	requireClass(in, "rs2", rs2, ClassGPR)
	return c16(in.Match) | c16(DecodeReg(rd)<<7|DecodeReg(rs2)<<2)
}

// EncodeCI encodes c.addi, c.li, c.addiw and c.nop (rd x0, imm 0).
func EncodeCI(in Inst, rd Reg, imm int32) uint16 {
	requireShape(in, ShapeCI)
	requireClass(in, "rd", rd, ClassGPR)
	requireSigned(in.Name, "imm", int64(imm), 6)
	return c16(in.Match) | c16(DecodeReg(rd)<<7) | ciImm(uint32(imm)&0x3F)
}

func EncodeCIShift(in Inst, rd Reg, shamt uint32) uint16 {
	requireShape(in, ShapeCIShift)
	requireClass(in, "rd", rd, ClassGPR)
	requireNonZero(in, "rd", rd)
	if shamt == 0 {
		jiterrors.Failf(in.Name, "shamt", jiterrors.ErrRImmRange, "shift by 0 is a hint")
	}
	requireUnsigned(in.Name, "shamt", int64(shamt), 6)
	return c16(in.Match) | c16(DecodeReg(rd)<<7) | ciImm(shamt)
}

// EncodeCILUI takes the full value (low 12 bits zero, fits 18 bits signed, not 0).
func EncodeCILUI(in Inst, rd Reg, imm int32) uint16 {
	requireShape(in, ShapeCILUI)
	requireClass(in, "rd", rd, ClassGPR)
	if d := DecodeReg(rd); d == 0 || d == 2 {
		jiterrors.Failf(in.Name, "rd", jiterrors.ErrEOperandConstraint, "rd cannot be x0 or sp")
	}
	requireAligned(in.Name, "imm", int64(imm), 1<<12)
	requireSigned(in.Name, "imm", int64(imm), 18)
	if imm == 0 {
		jiterrors.Failf(in.Name, "imm", jiterrors.ErrRImmRange, "imm 0 is reserved")
	}
	return c16(in.Match) | c16(DecodeReg(rd)<<7) | ciImm(emitter.Bits(int64(imm), 12, 6))
}

// EncodeCI16SP encodes c.addi16sp: imm[9] at 12, imm[4|6|8:7|5] at 2.
func EncodeCI16SP(in Inst, imm int32) uint16 {
	requireShape(in, ShapeCI16SP)
	requireAligned(in.Name, "imm", int64(imm), 16)
	requireSigned(in.Name, "imm", int64(imm), 10)
	if imm == 0 {
		jiterrors.Failf(in.Name, "imm", jiterrors.ErrRImmRange, "imm 0 is reserved")
	}
	v := int64(imm)
	field := emitter.Bit(v, 9)<<5 | (emitter.Bit(v, 4)<<1|emitter.Bit(v, 6))<<3 | emitter.Bits(v, 7, 2)<<1 | emitter.Bit(v, 5)
	return c16(in.Match) | ciImm(field)
}

// EncodeCILoad encodes an sp-relative load.
func EncodeCILoad(in Inst, rd Reg, uimm int32) uint16 {
	requireShape(in, ShapeCILoad4, ShapeCILoad8)
	requireClass(in, "rd", rd, in.class(0))
	v := int64(uimm)
	var field uint32
	if in.Shape == ShapeCILoad4 {
		requireAligned(in.Name, "offset", v, 4)
		requireUnsigned(in.Name, "offset", v, 8)
		field = emitter.Bits(v, 2, 4)<<2 | emitter.Bits(v, 6, 2)
	} else {
		requireAligned(in.Name, "offset", v, 8)
		requireUnsigned(in.Name, "offset", v, 9)
		field = emitter.Bits(v, 3, 3)<<3 | emitter.Bits(v, 6, 3)
	}
	if in.class(0) == ClassGPR {
		requireNonZero(in, "rd", rd)
	}
	return c16(in.Match) | c16(DecodeReg(rd)<<7) | ciImm(field)
}

// EncodeCSS encodes an sp-relative store.
func EncodeCSS(in Inst, rs2 Reg, uimm int32) uint16 {
	requireShape(in, ShapeCSS4, ShapeCSS8)
	requireClass(in, "rs2", rs2, in.class(0))
	v := int64(uimm)
	var field uint32
	if in.Shape == ShapeCSS4 {
		requireAligned(in.Name, "offset", v, 4)
		requireUnsigned(in.Name, "offset", v, 8)
		field = emitter.Bits(v, 2, 4)<<2 | emitter.Bits(v, 6, 2)
	} else {
		requireAligned(in.Name, "offset", v, 8)
		requireUnsigned(in.Name, "offset", v, 9)
		field = emitter.Bits(v, 3, 3)<<3 | emitter.Bits(v, 6, 3)
	}
	return c16(in.Match) | c16(DecodeReg(rs2)<<2|field<<7)
}

// EncodeCIW encodes c.addi4spn: nzuimm[5:4|9:6|2|3] at 5.
func EncodeCIW(in Inst, rd Reg, uimm int32) uint16 {
	requireShape(in, ShapeCIW)
	requireCompressible(in, "rd", rd, ClassGPR)
	v := int64(uimm)
	requireAligned(in.Name, "imm", v, 4)
	requireUnsigned(in.Name, "imm", v, 10)
	if uimm == 0 {
		jiterrors.Failf(in.Name, "imm", jiterrors.ErrRImmRange, "imm 0 is reserved")
	}
	field := emitter.Bits(v, 4, 2)<<6 | emitter.Bits(v, 6, 4)<<2 | emitter.Bit(v, 2)<<1 | emitter.Bit(v, 3)
	return c16(in.Match) | c16(CompressReg(rd)<<2|field<<5)
}

// EncodeCL encodes a register-relative load; offset scaled by 4 or 8.
func EncodeCL(in Inst, rd, rs1 Reg, uimm int32) uint16 {
	requireShape(in, ShapeCL4, ShapeCL8)
	requireCompressible(in, "rd", rd, in.class(0))
	requireCompressible(in, "rs1", rs1, ClassGPR)
	return c16(in.Match) | c16(CompressReg(rd)<<2|CompressReg(rs1)<<7) | clOffset(in, in.Shape == ShapeCL4, uimm)
}

// EncodeCS encodes a register-relative store of rs2 to uimm(rs1).
func EncodeCS(in Inst, rs2, rs1 Reg, uimm int32) uint16 {
	requireShape(in, ShapeCS4, ShapeCS8)
	requireCompressible(in, "rs2", rs2, in.class(0))
	requireCompressible(in, "rs1", rs1, ClassGPR)
	return c16(in.Match) | c16(CompressReg(rs2)<<2|CompressReg(rs1)<<7) | clOffset(in, in.Shape == ShapeCS4, uimm)
}

func clOffset(in Inst, word bool, uimm int32) uint16 {
	v := int64(uimm)
	var lo, hi uint32
	if word {
		requireAligned(in.Name, "offset", v, 4)
		requireUnsigned(in.Name, "offset", v, 7)
		lo = emitter.Bit(v, 2)<<1 | emitter.Bit(v, 6)
	} else {
		requireAligned(in.Name, "offset", v, 8)
		requireUnsigned(in.Name, "offset", v, 8)
		lo = emitter.Bits(v, 6, 2)
	}
	hi = emitter.Bits(v, 3, 3)
	return c16(lo<<5 | hi<<10)
}

func EncodeCA(in Inst, rd, rs2 Reg) uint16 {
	requireShape(in, ShapeCA)
	requireCompressible(in, "rd", rd, ClassGPR)
	requireCompressible(in, "rs2", rs2, ClassGPR)
	return c16(in.Match) | c16(CompressReg(rd)<<7|CompressReg(rs2)<<2)
}

func EncodeCBShift(in Inst, rd Reg, shamt uint32) uint16 {
	requireShape(in, ShapeCBShift)
	requireCompressible(in, "rd", rd, ClassGPR)
	if shamt == 0 {
		jiterrors.Failf(in.Name, "shamt", jiterrors.ErrRImmRange, "shift by 0 is a hint")
	}
	requireUnsigned(in.Name, "shamt", int64(shamt), 6)
	return c16(in.Match) | c16(CompressReg(rd)<<7) | ciImm(shamt)
}

func EncodeCBAndi(in Inst, rd Reg, imm int32) uint16 {
	requireShape(in, ShapeCBAndi)
	requireCompressible(in, "rd", rd, ClassGPR)
	requireSigned(in.Name, "imm", int64(imm), 6)
	return c16(in.Match) | c16(CompressReg(rd)<<7) | ciImm(uint32(imm)&0x3F)
}

func EncodeCB(in Inst, rs1 Reg, disp int32) uint16 {
	requireShape(in, ShapeCB)
	requireCompressible(in, "rs1", rs1, ClassGPR)
	requireAligned(in.Name, "disp", int64(disp), 2)
	requireSigned(in.Name, "disp", int64(disp), 9)
	return c16(in.Match) | c16(CompressReg(rs1)<<7) | cbImm(int64(disp))
}

func EncodeCJ(in Inst, disp int32) uint16 {
	requireShape(in, ShapeCJ)
	requireAligned(in.Name, "disp", int64(disp), 2)
	requireSigned(in.Name, "disp", int64(disp), 12)
	return c16(in.Match) | cjImm(int64(disp))
}

// EncodeCLB encodes c.lbu: uimm[0|1] at 6:5.
func EncodeCLB(in Inst, rd, rs1 Reg, uimm uint32) uint16 {
	requireShape(in, ShapeCLB)
	requireCompressible(in, "rd", rd, ClassGPR)
	requireCompressible(in, "rs1", rs1, ClassGPR)
	requireUnsigned(in.Name, "offset", int64(uimm), 2)
	field := (uimm&1)<<1 | uimm>>1
	return c16(in.Match) | c16(CompressReg(rd)<<2|field<<5|CompressReg(rs1)<<7)
}

func EncodeCSB(in Inst, rs2, rs1 Reg, uimm uint32) uint16 {
	requireShape(in, ShapeCSB)
	requireCompressible(in, "rs2", rs2, ClassGPR)
	requireCompressible(in, "rs1", rs1, ClassGPR)
	requireUnsigned(in.Name, "offset", int64(uimm), 2)
	field := (uimm&1)<<1 | uimm>>1
	return c16(in.Match) | c16(CompressReg(rs2)<<2|field<<5|CompressReg(rs1)<<7)
}

// EncodeCLH encodes c.lhu / c.lh: uimm[1] at 5.
func EncodeCLH(in Inst, rd, rs1 Reg, uimm uint32) uint16 {
	requireShape(in, ShapeCLH)
	requireCompressible(in, "rd", rd, ClassGPR)
	requireCompressible(in, "rs1", rs1, ClassGPR)
	requireAligned(in.Name, "offset", int64(uimm), 2)
	requireUnsigned(in.Name, "offset", int64(uimm), 2)
	return c16(in.Match) | c16(CompressReg(rd)<<2|(uimm>>1)<<5|CompressReg(rs1)<<7)
}

func EncodeCSH(in Inst, rs2, rs1 Reg, uimm uint32) uint16 {
	requireShape(in, ShapeCSH)
	requireCompressible(in, "rs2", rs2, ClassGPR)
	requireCompressible(in, "rs1", rs1, ClassGPR)
	requireAligned(in.Name, "offset", int64(uimm), 2)
	requireUnsigned(in.Name, "offset", int64(uimm), 2)
	return c16(in.Match) | c16(CompressReg(rs2)<<2|(uimm>>1)<<5|CompressReg(rs1)<<7)
}

func EncodeCU(in Inst, rd Reg) uint16 {
	requireShape(in, ShapeCU)
	requireCompressible(in, "rd", rd, ClassGPR)
	return c16(in.Match) | c16(CompressReg(rd)<<7)
}
