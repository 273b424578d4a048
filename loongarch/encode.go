package loongarch

import (
	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
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

func requireCFR(in Inst, field string, c CFR) {
	if !IsCFR(c) {
		jiterrors.Failf(in.Name, field, jiterrors.ErrERegisterClass, "%d is not a condition flag", c)
	}
}

func requireFCSR(in Inst, fcsr FCSR) {
	if !IsFCSR(fcsr) {
		jiterrors.Failf(in.Name, "fcsr", jiterrors.ErrERegisterClass, "%d is not an fcsr", fcsr)
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

func gprs(in Inst, names string, regs ...Reg) {
	for i, r := range regs {
		requireClass(in, names[2*i:2*i+2], r, ClassGPR)
	}
}

func d(r Reg) uint32 { return DecodeReg(r) }
func j(r Reg) uint32 { return DecodeReg(r) << 5 }
func k(r Reg) uint32 { return DecodeReg(r) << 10 }
func a(r Reg) uint32 { return DecodeReg(r) << 15 }

// offset validates a branch offset of width bits, scaled by 4.
func offset(in Inst, offs int32, width int) uint32 {
	requireAligned(in.Name, "offs", int64(offs), 4)
	requireSigned(in.Name, "offs", int64(offs), width)
	return uint32(offs >> 2)
}

func EncodeDJK(in Inst, rd, rj, rk Reg) uint32 {
	requireShape(in, ShapeDJK)
	gprs(in, "rdrjrk", rd, rj, rk)
	return in.Match | k(rk) | j(rj) | d(rd)
}

// EncodeDJKUa2pp1 encodes ALSL; the hardware shifts by sa2, which is
// stored minus one.
func EncodeDJKUa2pp1(in Inst, rd, rj, rk Reg, sa2 uint32) uint32 {
	requireShape(in, ShapeDJKUa2pp1)
	gprs(in, "rdrjrk", rd, rj, rk)
	if sa2 < 1 || sa2 > 4 {
		jiterrors.Failf(in.Name, "sa2", jiterrors.ErrRImmRange, "shift %d outside 1..4", sa2)
	}
	return in.Match | (sa2-1)<<15 | k(rk) | j(rj) | d(rd)
}

func EncodeDJKUa(in Inst, rd, rj, rk Reg, sa uint32) uint32 {
	requireShape(in, ShapeDJKUa2, ShapeDJKUa3)
	gprs(in, "rdrjrk", rd, rj, rk)
	width := 2
	if in.Shape == ShapeDJKUa3 {
		width = 3
	}
	requireUnsigned(in.Name, "sa", int64(sa), width)
	return in.Match | sa<<15 | k(rk) | j(rj) | d(rd)
}

func EncodeDJ(in Inst, rd, rj Reg) uint32 {
	requireShape(in, ShapeDJ)
	gprs(in, "rdrj", rd, rj)
	return in.Match | j(rj) | d(rd)
}

func EncodeJK(in Inst, rj, rk Reg) uint32 {
	requireShape(in, ShapeJK)
	gprs(in, "rjrk", rj, rk)
	return in.Match | k(rk) | j(rj)
}

func EncodeDJSk12(in Inst, rd, rj Reg, si12 int32) uint32 {
	requireShape(in, ShapeDJSk12)
	gprs(in, "rdrj", rd, rj)
	requireSigned(in.Name, "si12", int64(si12), 12)
	return in.Match | (uint32(si12)&0xFFF)<<10 | j(rj) | d(rd)
}

func EncodeDJUk12(in Inst, rd, rj Reg, ui12 uint32) uint32 {
	requireShape(in, ShapeDJUk12)
	gprs(in, "rdrj", rd, rj)
	requireUnsigned(in.Name, "ui12", int64(ui12), 12)
	return in.Match | ui12<<10 | j(rj) | d(rd)
}

func EncodeDJSk16(in Inst, rd, rj Reg, si16 int32) uint32 {
	requireShape(in, ShapeDJSk16)
	gprs(in, "rdrj", rd, rj)
	requireSigned(in.Name, "si16", int64(si16), 16)
	return in.Match | (uint32(si16)&0xFFFF)<<10 | j(rj) | d(rd)
}

func EncodeDSj20(in Inst, rd Reg, si20 int32) uint32 {
	requireShape(in, ShapeDSj20)
	gprs(in, "rd", rd)
	requireSigned(in.Name, "si20", int64(si20), 20)
	return in.Match | (uint32(si20)&0xFFFFF)<<5 | d(rd)
}

// EncodeDJUk encodes the immediate shifts: ui5 for .w, ui6 for .d.
func EncodeDJUk(in Inst, rd, rj Reg, ui uint32) uint32 {
	requireShape(in, ShapeDJUk5, ShapeDJUk6)
	gprs(in, "rdrj", rd, rj)
	width := 5
	if in.Shape == ShapeDJUk6 {
		width = 6
	}
	requireUnsigned(in.Name, "ui", int64(ui), width)
	return in.Match | ui<<10 | j(rj) | d(rd)
}

// EncodeBitField encodes BSTRINS/BSTRPICK. msb must not be below lsb.
func EncodeBitField(in Inst, rd, rj Reg, msb, lsb uint32) uint32 {
	requireShape(in, ShapeDJUk5Um5, ShapeDJUk6Um6)
	gprs(in, "rdrj", rd, rj)
	width := 5
	if in.Shape == ShapeDJUk6Um6 {
		width = 6
	}
	requireUnsigned(in.Name, "msb", int64(msb), width)
	requireUnsigned(in.Name, "lsb", int64(lsb), width)
	if msb < lsb {
		jiterrors.Failf(in.Name, "msb", jiterrors.ErrEOperandConstraint, "msb %d below lsb %d", msb, lsb)
	}
	return in.Match | msb<<16 | lsb<<10 | j(rj) | d(rd)
}

// EncodeJDSk16ps2 encodes a two-register compare branch with an 18-bit
// byte offset.
func EncodeJDSk16ps2(in Inst, rj, rd Reg, offs int32) uint32 {
	requireShape(in, ShapeJDSk16ps2)
	gprs(in, "rjrd", rj, rd)
	return in.Match | (offset(in, offs, 18)&0xFFFF)<<10 | j(rj) | d(rd)
}

func EncodeDJSk16ps2(in Inst, rd, rj Reg, offs int32) uint32 {
	requireShape(in, ShapeDJSk16ps2)
	gprs(in, "rdrj", rd, rj)
	return in.Match | (offset(in, offs, 18)&0xFFFF)<<10 | j(rj) | d(rd)
}

// offs21 places a 23-bit byte offset: [17:2] at 10, [22:18] at 0.
func offs21(o uint32) uint32 { return (o&0xFFFF)<<10 | (o>>16)&0x1F }

// offs26 places a 28-bit byte offset: [17:2] at 10, [27:18] at 0.
func offs26(o uint32) uint32 { return (o&0xFFFF)<<10 | (o>>16)&0x3FF }

func EncodeJSd5k16ps2(in Inst, rj Reg, offs int32) uint32 {
	requireShape(in, ShapeJSd5k16ps2)
	gprs(in, "rj", rj)
	return in.Match | offs21(offset(in, offs, 23)) | j(rj)
}

func EncodeSd10k16ps2(in Inst, offs int32) uint32 {
	requireShape(in, ShapeSd10k16ps2)
	return in.Match | offs26(offset(in, offs, 28))
}

func EncodeDJSk14ps2(in Inst, rd, rj Reg, offs int32) uint32 {
	requireShape(in, ShapeDJSk14ps2)
	gprs(in, "rdrj", rd, rj)
	return in.Match | (offset(in, offs, 16)&0x3FFF)<<10 | j(rj) | d(rd)
}

func EncodeUd5JSk12(in Inst, hint uint32, rj Reg, si12 int32) uint32 {
	requireShape(in, ShapeUd5JSk12)
	gprs(in, "rj", rj)
	requireUnsigned(in.Name, "hint", int64(hint), 5)
	requireSigned(in.Name, "si12", int64(si12), 12)
	return in.Match | (uint32(si12)&0xFFF)<<10 | j(rj) | hint
}

func EncodeUd5JK(in Inst, hint uint32, rj, rk Reg) uint32 {
	requireShape(in, ShapeUd5JK)
	gprs(in, "rjrk", rj, rk)
	requireUnsigned(in.Name, "hint", int64(hint), 5)
	return in.Match | k(rk) | j(rj) | hint
}

// EncodeDKJ encodes an AM* atomic: rd receives the old value of (rj), rk
// is the operand. rd must differ from rj and rk.
func EncodeDKJ(in Inst, rd, rk, rj Reg) uint32 {
	requireShape(in, ShapeDKJ)
	gprs(in, "rdrkrj", rd, rk, rj)
	if rd != ZERO && (rd == rj || rd == rk) {
		jiterrors.Failf(in.Name, "rd", jiterrors.ErrEOperandConstraint, "%s overlaps a source", rd)
	}
	return in.Match | k(rk) | j(rj) | d(rd)
}

func EncodeUd15(in Inst, code uint32) uint32 {
	requireShape(in, ShapeUd15)
	requireUnsigned(in.Name, "code", int64(code), 15)
	return in.Match | code
}

func EncodeFdFjFk(in Inst, fd, fj, fk Reg) uint32 {
	requireShape(in, ShapeFdFjFk)
	requireClass(in, "fd", fd, ClassFPR)
	requireClass(in, "fj", fj, ClassFPR)
	requireClass(in, "fk", fk, ClassFPR)
	return in.Match | k(fk) | j(fj) | d(fd)
}

func EncodeFdFjFkFa(in Inst, fd, fj, fk, fa Reg) uint32 {
	requireShape(in, ShapeFdFjFkFa)
	requireClass(in, "fd", fd, ClassFPR)
	requireClass(in, "fj", fj, ClassFPR)
	requireClass(in, "fk", fk, ClassFPR)
	requireClass(in, "fa", fa, ClassFPR)
	return in.Match | a(fa) | k(fk) | j(fj) | d(fd)
}

func EncodeFdFj(in Inst, fd, fj Reg) uint32 {
	requireShape(in, ShapeFdFj)
	requireClass(in, "fd", fd, ClassFPR)
	requireClass(in, "fj", fj, ClassFPR)
	return in.Match | j(fj) | d(fd)
}

func EncodeCdFjFkFcond(in Inst, cd CFR, fj, fk Reg, cond Fcond) uint32 {
	requireShape(in, ShapeCdFjFkFcond)
	requireCFR(in, "cd", cd)
	requireClass(in, "fj", fj, ClassFPR)
	requireClass(in, "fk", fk, ClassFPR)
	if _, ok := fcondNames[cond]; !ok {
		jiterrors.Failf(in.Name, "cond", jiterrors.ErrRImmRange, "condition %#x is reserved", uint32(cond))
	}
	return in.Match | uint32(cond)<<15 | k(fk) | j(fj) | uint32(cd)
}

func EncodeFdFjFkCa(in Inst, fd, fj, fk Reg, ca CFR) uint32 {
	requireShape(in, ShapeFdFjFkCa)
	requireClass(in, "fd", fd, ClassFPR)
	requireClass(in, "fj", fj, ClassFPR)
	requireClass(in, "fk", fk, ClassFPR)
	requireCFR(in, "ca", ca)
	return in.Match | uint32(ca)<<15 | k(fk) | j(fj) | d(fd)
}

func EncodeFdJ(in Inst, fd, rj Reg) uint32 {
	requireShape(in, ShapeFdJ)
	requireClass(in, "fd", fd, ClassFPR)
	requireClass(in, "rj", rj, ClassGPR)
	return in.Match | j(rj) | d(fd)
}

func EncodeDFj(in Inst, rd, fj Reg) uint32 {
	requireShape(in, ShapeDFj)
	requireClass(in, "rd", rd, ClassGPR)
	requireClass(in, "fj", fj, ClassFPR)
	return in.Match | j(fj) | d(rd)
}

func EncodeJUd5(in Inst, fcsr FCSR, rj Reg) uint32 {
	requireShape(in, ShapeJUd5)
	requireFCSR(in, fcsr)
	requireClass(in, "rj", rj, ClassGPR)
	return in.Match | j(rj) | uint32(fcsr)
}

func EncodeDUj5(in Inst, rd Reg, fcsr FCSR) uint32 {
	requireShape(in, ShapeDUj5)
	requireClass(in, "rd", rd, ClassGPR)
	requireFCSR(in, fcsr)
	return in.Match | uint32(fcsr)<<5 | d(rd)
}

func EncodeCdFj(in Inst, cd CFR, fj Reg) uint32 {
	requireShape(in, ShapeCdFj)
	requireCFR(in, "cd", cd)
	requireClass(in, "fj", fj, ClassFPR)
	return in.Match | j(fj) | uint32(cd)
}

func EncodeFdCj(in Inst, fd Reg, cj CFR) uint32 {
	requireShape(in, ShapeFdCj)
	requireClass(in, "fd", fd, ClassFPR)
	requireCFR(in, "cj", cj)
	return in.Match | uint32(cj)<<5 | d(fd)
}

func EncodeCdJ(in Inst, cd CFR, rj Reg) uint32 {
	requireShape(in, ShapeCdJ)
	requireCFR(in, "cd", cd)
	requireClass(in, "rj", rj, ClassGPR)
	return in.Match | j(rj) | uint32(cd)
}

func EncodeDCj(in Inst, rd Reg, cj CFR) uint32 {
	requireShape(in, ShapeDCj)
	requireClass(in, "rd", rd, ClassGPR)
	requireCFR(in, "cj", cj)
	return in.Match | uint32(cj)<<5 | d(rd)
}

func EncodeCjSd5k16ps2(in Inst, cj CFR, offs int32) uint32 {
	requireShape(in, ShapeCjSd5k16ps2)
	requireCFR(in, "cj", cj)
	return in.Match | offs21(offset(in, offs, 23)) | uint32(cj)<<5
}

func EncodeFdJSk12(in Inst, fd, rj Reg, si12 int32) uint32 {
	requireShape(in, ShapeFdJSk12)
	requireClass(in, "fd", fd, ClassFPR)
	requireClass(in, "rj", rj, ClassGPR)
	requireSigned(in.Name, "si12", int64(si12), 12)
	return in.Match | (uint32(si12)&0xFFF)<<10 | j(rj) | d(fd)
}

func EncodeFdJK(in Inst, fd, rj, rk Reg) uint32 {
	requireShape(in, ShapeFdJK)
	requireClass(in, "fd", fd, ClassFPR)
	requireClass(in, "rj", rj, ClassGPR)
	requireClass(in, "rk", rk, ClassGPR)
	return in.Match | k(rk) | j(rj) | d(fd)
}

func EncodeVdVjVk(in Inst, vd, vj, vk Reg) uint32 {
	requireShape(in, ShapeVdVjVk)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "vj", vj, ClassVPR)
	requireClass(in, "vk", vk, ClassVPR)
	return in.Match | k(vk) | j(vj) | d(vd)
}

func EncodeVdVjVkVa(in Inst, vd, vj, vk, va Reg) uint32 {
	requireShape(in, ShapeVdVjVkVa)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "vj", vj, ClassVPR)
	requireClass(in, "vk", vk, ClassVPR)
	requireClass(in, "va", va, ClassVPR)
	return in.Match | a(va) | k(vk) | j(vj) | d(vd)
}

func EncodeVdJSk12(in Inst, vd, rj Reg, si12 int32) uint32 {
	requireShape(in, ShapeVdJSk12)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "rj", rj, ClassGPR)
	requireSigned(in.Name, "si12", int64(si12), 12)
	return in.Match | (uint32(si12)&0xFFF)<<10 | j(rj) | d(vd)
}

func EncodeVdJK(in Inst, vd, rj, rk Reg) uint32 {
	requireShape(in, ShapeVdJK)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "rj", rj, ClassGPR)
	requireClass(in, "rk", rk, ClassGPR)
	return in.Match | k(rk) | j(rj) | d(vd)
}

// EncodeVdSj13 encodes VLDI. The 13-bit field carries either a signed
// 10-bit value (bit 12 clear) or a mode and byte pattern.
func EncodeVdSj13(in Inst, vd Reg, i13 int32) uint32 {
	requireShape(in, ShapeVdSj13)
	requireClass(in, "vd", vd, ClassVPR)
	requireSigned(in.Name, "i13", int64(i13), 13)
	return in.Match | (uint32(i13)&0x1FFF)<<5 | d(vd)
}

func EncodeVdJ(in Inst, vd, rj Reg) uint32 {
	requireShape(in, ShapeVdJ)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "rj", rj, ClassGPR)
	return in.Match | j(rj) | d(vd)
}

func EncodeVdVjUk(in Inst, vd, vj Reg, ui uint32) uint32 {
	requireShape(in, ShapeVdVjUk)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "vj", vj, ClassVPR)
	requireUnsigned(in.Name, "ui", int64(ui), int(in.Width))
	return in.Match | ui<<10 | j(vj) | d(vd)
}

func EncodeVdVjSk5(in Inst, vd, vj Reg, si5 int32) uint32 {
	requireShape(in, ShapeVdVjSk5)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "vj", vj, ClassVPR)
	requireSigned(in.Name, "si5", int64(si5), 5)
	return in.Match | (uint32(si5)&0x1F)<<10 | j(vj) | d(vd)
}

func EncodeVdJUk(in Inst, vd, rj Reg, idx uint32) uint32 {
	requireShape(in, ShapeVdJUk)
	requireClass(in, "vd", vd, ClassVPR)
	requireClass(in, "rj", rj, ClassGPR)
	requireUnsigned(in.Name, "idx", int64(idx), int(in.Width))
	return in.Match | idx<<10 | j(rj) | d(vd)
}

func EncodeDVjUk(in Inst, rd, vj Reg, idx uint32) uint32 {
	requireShape(in, ShapeDVjUk)
	requireClass(in, "rd", rd, ClassGPR)
	requireClass(in, "vj", vj, ClassVPR)
	requireUnsigned(in.Name, "idx", int64(idx), int(in.Width))
	return in.Match | idx<<10 | j(vj) | d(rd)
}
