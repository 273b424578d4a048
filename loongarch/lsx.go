package loongarch

func (e *Emitter) requireLSX(in Inst) { e.require(in.Name, e.caps.LSX, "LSX") }

func (e *Emitter) vvv(in Inst, vd, vj, vk Reg) {
	e.requireLSX(in)
	e.write32(in, EncodeVdVjVk(in, vd, vj, vk))
}

func (e *Emitter) VLD(vd, rj Reg, si12 int32) {
	e.requireLSX(VLD)
	e.write32(VLD, EncodeVdJSk12(VLD, vd, rj, si12))
}

func (e *Emitter) VST(vd, rj Reg, si12 int32) {
	e.requireLSX(VST)
	e.write32(VST, EncodeVdJSk12(VST, vd, rj, si12))
}

func (e *Emitter) VLDX(vd, rj, rk Reg) {
	e.requireLSX(VLDX)
	e.write32(VLDX, EncodeVdJK(VLDX, vd, rj, rk))
}

func (e *Emitter) VSTX(vd, rj, rk Reg) {
	e.requireLSX(VSTX)
	e.write32(VSTX, EncodeVdJK(VSTX, vd, rj, rk))
}

// VLDI replicates an immediate pattern into vd. With bit 12 clear, i13 is
// a signed 10-bit value broadcast to bytes (bits 11:10 select the lane).
func (e *Emitter) VLDI(vd Reg, i13 int32) {
	e.requireLSX(VLDI)
	e.write32(VLDI, EncodeVdSj13(VLDI, vd, i13))
}

func (e *Emitter) VADD_B(vd, vj, vk Reg) { e.vvv(VADD_B, vd, vj, vk) }
func (e *Emitter) VADD_H(vd, vj, vk Reg) { e.vvv(VADD_H, vd, vj, vk) }
func (e *Emitter) VADD_W(vd, vj, vk Reg) { e.vvv(VADD_W, vd, vj, vk) }
func (e *Emitter) VADD_D(vd, vj, vk Reg) { e.vvv(VADD_D, vd, vj, vk) }
func (e *Emitter) VSUB_B(vd, vj, vk Reg) { e.vvv(VSUB_B, vd, vj, vk) }
func (e *Emitter) VSUB_H(vd, vj, vk Reg) { e.vvv(VSUB_H, vd, vj, vk) }
func (e *Emitter) VSUB_W(vd, vj, vk Reg) { e.vvv(VSUB_W, vd, vj, vk) }
func (e *Emitter) VSUB_D(vd, vj, vk Reg) { e.vvv(VSUB_D, vd, vj, vk) }
func (e *Emitter) VMUL_W(vd, vj, vk Reg) { e.vvv(VMUL_W, vd, vj, vk) }
func (e *Emitter) VSEQ_W(vd, vj, vk Reg) { e.vvv(VSEQ_W, vd, vj, vk) }
func (e *Emitter) VAND_V(vd, vj, vk Reg) { e.vvv(VAND_V, vd, vj, vk) }
func (e *Emitter) VOR_V(vd, vj, vk Reg)  { e.vvv(VOR_V, vd, vj, vk) }
func (e *Emitter) VXOR_V(vd, vj, vk Reg) { e.vvv(VXOR_V, vd, vj, vk) }
func (e *Emitter) VNOR_V(vd, vj, vk Reg) { e.vvv(VNOR_V, vd, vj, vk) }

func (e *Emitter) VFADD_S(vd, vj, vk Reg) { e.vvv(VFADD_S, vd, vj, vk) }
func (e *Emitter) VFMUL_S(vd, vj, vk Reg) { e.vvv(VFMUL_S, vd, vj, vk) }

func (e *Emitter) VFMADD_S(vd, vj, vk, va Reg) {
	e.requireLSX(VFMADD_S)
	e.write32(VFMADD_S, EncodeVdVjVkVa(VFMADD_S, vd, vj, vk, va))
}

// VBITSEL_V takes bits of vk where va is set, else of vj.
func (e *Emitter) VBITSEL_V(vd, vj, vk, va Reg) {
	e.requireLSX(VBITSEL_V)
	e.write32(VBITSEL_V, EncodeVdVjVkVa(VBITSEL_V, vd, vj, vk, va))
}

func (e *Emitter) vreplgr(in Inst, vd, rj Reg) {
	e.requireLSX(in)
	e.write32(in, EncodeVdJ(in, vd, rj))
}

func (e *Emitter) VREPLGR2VR_B(vd, rj Reg) { e.vreplgr(VREPLGR2VR_B, vd, rj) }
func (e *Emitter) VREPLGR2VR_H(vd, rj Reg) { e.vreplgr(VREPLGR2VR_H, vd, rj) }
func (e *Emitter) VREPLGR2VR_W(vd, rj Reg) { e.vreplgr(VREPLGR2VR_W, vd, rj) }
func (e *Emitter) VREPLGR2VR_D(vd, rj Reg) { e.vreplgr(VREPLGR2VR_D, vd, rj) }

func (e *Emitter) VSEQI_W(vd, vj Reg, si5 int32) {
	e.requireLSX(VSEQI_W)
	e.write32(VSEQI_W, EncodeVdVjSk5(VSEQI_W, vd, vj, si5))
}

func (e *Emitter) vui(in Inst, vd, vj Reg, ui uint32) {
	e.requireLSX(in)
	e.write32(in, EncodeVdVjUk(in, vd, vj, ui))
}

func (e *Emitter) VSLLI_W(vd, vj Reg, ui5 uint32)    { e.vui(VSLLI_W, vd, vj, ui5) }
func (e *Emitter) VSLLI_D(vd, vj Reg, ui6 uint32)    { e.vui(VSLLI_D, vd, vj, ui6) }
func (e *Emitter) VSRLI_W(vd, vj Reg, ui5 uint32)    { e.vui(VSRLI_W, vd, vj, ui5) }
func (e *Emitter) VSRLI_D(vd, vj Reg, ui6 uint32)    { e.vui(VSRLI_D, vd, vj, ui6) }
func (e *Emitter) VREPLVEI_W(vd, vj Reg, idx uint32) { e.vui(VREPLVEI_W, vd, vj, idx) }
func (e *Emitter) VREPLVEI_D(vd, vj Reg, idx uint32) { e.vui(VREPLVEI_D, vd, vj, idx) }

func (e *Emitter) vins(in Inst, vd, rj Reg, idx uint32) {
	e.requireLSX(in)
	e.write32(in, EncodeVdJUk(in, vd, rj, idx))
}

func (e *Emitter) VINSGR2VR_B(vd, rj Reg, idx uint32) { e.vins(VINSGR2VR_B, vd, rj, idx) }
func (e *Emitter) VINSGR2VR_H(vd, rj Reg, idx uint32) { e.vins(VINSGR2VR_H, vd, rj, idx) }
func (e *Emitter) VINSGR2VR_W(vd, rj Reg, idx uint32) { e.vins(VINSGR2VR_W, vd, rj, idx) }
func (e *Emitter) VINSGR2VR_D(vd, rj Reg, idx uint32) { e.vins(VINSGR2VR_D, vd, rj, idx) }

func (e *Emitter) vpick(in Inst, rd, vj Reg, idx uint32) {
	e.requireLSX(in)
	e.requireNotZero(in, rd)
	e.write32(in, EncodeDVjUk(in, rd, vj, idx))
}

func (e *Emitter) VPICKVE2GR_W(rd, vj Reg, idx uint32)  { e.vpick(VPICKVE2GR_W, rd, vj, idx) }
func (e *Emitter) VPICKVE2GR_D(rd, vj Reg, idx uint32)  { e.vpick(VPICKVE2GR_D, rd, vj, idx) }
func (e *Emitter) VPICKVE2GR_WU(rd, vj Reg, idx uint32) { e.vpick(VPICKVE2GR_WU, rd, vj, idx) }
func (e *Emitter) VPICKVE2GR_DU(rd, vj Reg, idx uint32) { e.vpick(VPICKVE2GR_DU, rd, vj, idx) }
