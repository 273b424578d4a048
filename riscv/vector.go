package riscv

import "github.com/colorfulnotion/jit/jiterrors"

type VSew uint32

const (
	SEW8  VSew = 0
	SEW16 VSew = 1
	SEW32 VSew = 2
	SEW64 VSew = 3
)

type VLMul uint32

const (
	LMUL1  VLMul = 0
	LMUL2  VLMul = 1
	LMUL4  VLMul = 2
	LMUL8  VLMul = 3
	LMULF8 VLMul = 5
	LMULF4 VLMul = 6
	LMULF2 VLMul = 7
)

// VType packs the vsetvli immediate.
func VType(sew VSew, lmul VLMul, tailAgnostic, maskAgnostic bool) uint32 {
	v := uint32(sew)<<3 | uint32(lmul)
	if tailAgnostic {
		v |= 1 << 6
	}
	if maskAgnostic {
		v |= 1 << 7
	}
	return v
}

func (e *Emitter) requireV(in Inst) { e.require(in.Name, e.caps.V, "V") }

func (e *Emitter) VSETVLI(rd, rs1 Reg, vtype uint32) {
	e.requireV(VSETVLI)
	if vtype&4 != 0 && vtype&3 == 0 {
		jiterrors.Failf(VSETVLI.Name, "vtype", jiterrors.ErrRImmRange, "lmul encoding 4 is reserved")
	}
	e.write32(VSETVLI, EncodeVSETVLI(VSETVLI, rd, rs1, vtype))
}

func pickEEW(op string, bits int, e8, e16, e32, e64 Inst) Inst {
	switch bits {
	case 8:
		return e8
	case 16:
		return e16
	case 32:
		return e32
	case 64:
		return e64
	}
	jiterrors.Failf(op, "eew", jiterrors.ErrEOperandConstraint, "element width %d", bits)
	return Inst{}
}

// VLE loads vl elements of the given width from (rs1).
func (e *Emitter) VLE(bits int, vd, rs1 Reg, vm VUseMask) {
	in := pickEEW("vle", bits, VLE8_V, VLE16_V, VLE32_V, VLE64_V)
	e.requireV(in)
	e.write32(in, EncodeVLS(in, vd, rs1, vm))
}

func (e *Emitter) VSE(bits int, vs3, rs1 Reg, vm VUseMask) {
	in := pickEEW("vse", bits, VSE8_V, VSE16_V, VSE32_V, VSE64_V)
	e.requireV(in)
	e.write32(in, EncodeVLS(in, vs3, rs1, vm))
}

func (e *Emitter) vv(in Inst, vd, vs2, vs1 Reg, vm VUseMask) {
	e.requireV(in)
	e.write32(in, EncodeVV(in, vd, vs2, vs1, vm))
}

func (e *Emitter) vx(in Inst, vd, vs2, rs1 Reg, vm VUseMask) {
	e.requireV(in)
	e.write32(in, EncodeVX(in, vd, vs2, rs1, vm))
}

func (e *Emitter) vi(in Inst, vd, vs2 Reg, simm5 int32, vm VUseMask) {
	e.requireV(in)
	e.write32(in, EncodeVI(in, vd, vs2, simm5, vm))
}

func (e *Emitter) VADD_VV(vd, vs2, vs1 Reg, vm VUseMask)         { e.vv(VADD_VV, vd, vs2, vs1, vm) }
func (e *Emitter) VADD_VX(vd, vs2, rs1 Reg, vm VUseMask)         { e.vx(VADD_VX, vd, vs2, rs1, vm) }
func (e *Emitter) VADD_VI(vd, vs2 Reg, simm5 int32, vm VUseMask) { e.vi(VADD_VI, vd, vs2, simm5, vm) }
func (e *Emitter) VSUB_VV(vd, vs2, vs1 Reg, vm VUseMask)         { e.vv(VSUB_VV, vd, vs2, vs1, vm) }
func (e *Emitter) VSUB_VX(vd, vs2, rs1 Reg, vm VUseMask)         { e.vx(VSUB_VX, vd, vs2, rs1, vm) }
func (e *Emitter) VAND_VV(vd, vs2, vs1 Reg, vm VUseMask)         { e.vv(VAND_VV, vd, vs2, vs1, vm) }
func (e *Emitter) VAND_VX(vd, vs2, rs1 Reg, vm VUseMask)         { e.vx(VAND_VX, vd, vs2, rs1, vm) }
func (e *Emitter) VAND_VI(vd, vs2 Reg, simm5 int32, vm VUseMask) { e.vi(VAND_VI, vd, vs2, simm5, vm) }
func (e *Emitter) VOR_VV(vd, vs2, vs1 Reg, vm VUseMask)          { e.vv(VOR_VV, vd, vs2, vs1, vm) }
func (e *Emitter) VOR_VX(vd, vs2, rs1 Reg, vm VUseMask)          { e.vx(VOR_VX, vd, vs2, rs1, vm) }
func (e *Emitter) VOR_VI(vd, vs2 Reg, simm5 int32, vm VUseMask)  { e.vi(VOR_VI, vd, vs2, simm5, vm) }
func (e *Emitter) VXOR_VV(vd, vs2, vs1 Reg, vm VUseMask)         { e.vv(VXOR_VV, vd, vs2, vs1, vm) }
func (e *Emitter) VXOR_VX(vd, vs2, rs1 Reg, vm VUseMask)         { e.vx(VXOR_VX, vd, vs2, rs1, vm) }
func (e *Emitter) VXOR_VI(vd, vs2 Reg, simm5 int32, vm VUseMask) { e.vi(VXOR_VI, vd, vs2, simm5, vm) }

// Mask-producing compares.
func (e *Emitter) VMSEQ_VV(vd, vs2, vs1 Reg, vm VUseMask)         { e.vv(VMSEQ_VV, vd, vs2, vs1, vm) }
func (e *Emitter) VMSEQ_VX(vd, vs2, rs1 Reg, vm VUseMask)         { e.vx(VMSEQ_VX, vd, vs2, rs1, vm) }
func (e *Emitter) VMSEQ_VI(vd, vs2 Reg, simm5 int32, vm VUseMask) { e.vi(VMSEQ_VI, vd, vs2, simm5, vm) }

// Splats. vmv.v.* is always unmasked with vs2 zero.
func (e *Emitter) VMV_V_V(vd, vs1 Reg)         { e.vv(VMV_V_V, vd, V0, vs1, VUnmasked) }
func (e *Emitter) VMV_V_X(vd, rs1 Reg)         { e.vx(VMV_V_X, vd, V0, rs1, VUnmasked) }
func (e *Emitter) VMV_V_I(vd Reg, simm5 int32) { e.vi(VMV_V_I, vd, V0, simm5, VUnmasked) }
