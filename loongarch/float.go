package loongarch

func (e *Emitter) requireFPU(in Inst) { e.require(in.Name, e.caps.FPU, "FPU") }

func (e *Emitter) fff(in Inst, fd, fj, fk Reg) {
	e.requireFPU(in)
	e.write32(in, EncodeFdFjFk(in, fd, fj, fk))
}

func (e *Emitter) ff(in Inst, fd, fj Reg) {
	e.requireFPU(in)
	e.write32(in, EncodeFdFj(in, fd, fj))
}

func (e *Emitter) ffff(in Inst, fd, fj, fk, fa Reg) {
	e.requireFPU(in)
	e.write32(in, EncodeFdFjFkFa(in, fd, fj, fk, fa))
}

func (e *Emitter) FADD_S(fd, fj, fk Reg)      { e.fff(FADD_S, fd, fj, fk) }
func (e *Emitter) FADD_D(fd, fj, fk Reg)      { e.fff(FADD_D, fd, fj, fk) }
func (e *Emitter) FSUB_S(fd, fj, fk Reg)      { e.fff(FSUB_S, fd, fj, fk) }
func (e *Emitter) FSUB_D(fd, fj, fk Reg)      { e.fff(FSUB_D, fd, fj, fk) }
func (e *Emitter) FMUL_S(fd, fj, fk Reg)      { e.fff(FMUL_S, fd, fj, fk) }
func (e *Emitter) FMUL_D(fd, fj, fk Reg)      { e.fff(FMUL_D, fd, fj, fk) }
func (e *Emitter) FDIV_S(fd, fj, fk Reg)      { e.fff(FDIV_S, fd, fj, fk) }
func (e *Emitter) FDIV_D(fd, fj, fk Reg)      { e.fff(FDIV_D, fd, fj, fk) }
func (e *Emitter) FMAX_S(fd, fj, fk Reg)      { e.fff(FMAX_S, fd, fj, fk) }
func (e *Emitter) FMAX_D(fd, fj, fk Reg)      { e.fff(FMAX_D, fd, fj, fk) }
func (e *Emitter) FMIN_S(fd, fj, fk Reg)      { e.fff(FMIN_S, fd, fj, fk) }
func (e *Emitter) FMIN_D(fd, fj, fk Reg)      { e.fff(FMIN_D, fd, fj, fk) }
func (e *Emitter) FMAXA_S(fd, fj, fk Reg)     { e.fff(FMAXA_S, fd, fj, fk) }
func (e *Emitter) FMAXA_D(fd, fj, fk Reg)     { e.fff(FMAXA_D, fd, fj, fk) }
func (e *Emitter) FMINA_S(fd, fj, fk Reg)     { e.fff(FMINA_S, fd, fj, fk) }
func (e *Emitter) FMINA_D(fd, fj, fk Reg)     { e.fff(FMINA_D, fd, fj, fk) }
func (e *Emitter) FSCALEB_S(fd, fj, fk Reg)   { e.fff(FSCALEB_S, fd, fj, fk) }
func (e *Emitter) FSCALEB_D(fd, fj, fk Reg)   { e.fff(FSCALEB_D, fd, fj, fk) }
func (e *Emitter) FCOPYSIGN_S(fd, fj, fk Reg) { e.fff(FCOPYSIGN_S, fd, fj, fk) }
func (e *Emitter) FCOPYSIGN_D(fd, fj, fk Reg) { e.fff(FCOPYSIGN_D, fd, fj, fk) }

// FMADD_D computes fj*fk + fa with a single rounding.
func (e *Emitter) FMADD_S(fd, fj, fk, fa Reg)  { e.ffff(FMADD_S, fd, fj, fk, fa) }
func (e *Emitter) FMADD_D(fd, fj, fk, fa Reg)  { e.ffff(FMADD_D, fd, fj, fk, fa) }
func (e *Emitter) FMSUB_S(fd, fj, fk, fa Reg)  { e.ffff(FMSUB_S, fd, fj, fk, fa) }
func (e *Emitter) FMSUB_D(fd, fj, fk, fa Reg)  { e.ffff(FMSUB_D, fd, fj, fk, fa) }
func (e *Emitter) FNMADD_S(fd, fj, fk, fa Reg) { e.ffff(FNMADD_S, fd, fj, fk, fa) }
func (e *Emitter) FNMADD_D(fd, fj, fk, fa Reg) { e.ffff(FNMADD_D, fd, fj, fk, fa) }
func (e *Emitter) FNMSUB_S(fd, fj, fk, fa Reg) { e.ffff(FNMSUB_S, fd, fj, fk, fa) }
func (e *Emitter) FNMSUB_D(fd, fj, fk, fa Reg) { e.ffff(FNMSUB_D, fd, fj, fk, fa) }

func (e *Emitter) FABS_S(fd, fj Reg)      { e.ff(FABS_S, fd, fj) }
func (e *Emitter) FABS_D(fd, fj Reg)      { e.ff(FABS_D, fd, fj) }
func (e *Emitter) FNEG_S(fd, fj Reg)      { e.ff(FNEG_S, fd, fj) }
func (e *Emitter) FNEG_D(fd, fj Reg)      { e.ff(FNEG_D, fd, fj) }
func (e *Emitter) FLOGB_S(fd, fj Reg)     { e.ff(FLOGB_S, fd, fj) }
func (e *Emitter) FLOGB_D(fd, fj Reg)     { e.ff(FLOGB_D, fd, fj) }
func (e *Emitter) FCLASS_S(fd, fj Reg)    { e.ff(FCLASS_S, fd, fj) }
func (e *Emitter) FCLASS_D(fd, fj Reg)    { e.ff(FCLASS_D, fd, fj) }
func (e *Emitter) FSQRT_S(fd, fj Reg)     { e.ff(FSQRT_S, fd, fj) }
func (e *Emitter) FSQRT_D(fd, fj Reg)     { e.ff(FSQRT_D, fd, fj) }
func (e *Emitter) FRECIP_S(fd, fj Reg)    { e.ff(FRECIP_S, fd, fj) }
func (e *Emitter) FRECIP_D(fd, fj Reg)    { e.ff(FRECIP_D, fd, fj) }
func (e *Emitter) FRSQRT_S(fd, fj Reg)    { e.ff(FRSQRT_S, fd, fj) }
func (e *Emitter) FRSQRT_D(fd, fj Reg)    { e.ff(FRSQRT_D, fd, fj) }
func (e *Emitter) FMOV_S(fd, fj Reg)      { e.ff(FMOV_S, fd, fj) }
func (e *Emitter) FMOV_D(fd, fj Reg)      { e.ff(FMOV_D, fd, fj) }
func (e *Emitter) FCVT_S_D(fd, fj Reg)    { e.ff(FCVT_S_D, fd, fj) }
func (e *Emitter) FCVT_D_S(fd, fj Reg)    { e.ff(FCVT_D_S, fd, fj) }
func (e *Emitter) FFINT_S_W(fd, fj Reg)   { e.ff(FFINT_S_W, fd, fj) }
func (e *Emitter) FFINT_S_L(fd, fj Reg)   { e.ff(FFINT_S_L, fd, fj) }
func (e *Emitter) FFINT_D_W(fd, fj Reg)   { e.ff(FFINT_D_W, fd, fj) }
func (e *Emitter) FFINT_D_L(fd, fj Reg)   { e.ff(FFINT_D_L, fd, fj) }
func (e *Emitter) FTINT_W_S(fd, fj Reg)   { e.ff(FTINT_W_S, fd, fj) }
func (e *Emitter) FTINT_W_D(fd, fj Reg)   { e.ff(FTINT_W_D, fd, fj) }
func (e *Emitter) FTINT_L_S(fd, fj Reg)   { e.ff(FTINT_L_S, fd, fj) }
func (e *Emitter) FTINT_L_D(fd, fj Reg)   { e.ff(FTINT_L_D, fd, fj) }
func (e *Emitter) FTINTRZ_W_S(fd, fj Reg) { e.ff(FTINTRZ_W_S, fd, fj) }
func (e *Emitter) FTINTRZ_W_D(fd, fj Reg) { e.ff(FTINTRZ_W_D, fd, fj) }
func (e *Emitter) FTINTRZ_L_S(fd, fj Reg) { e.ff(FTINTRZ_L_S, fd, fj) }
func (e *Emitter) FTINTRZ_L_D(fd, fj Reg) { e.ff(FTINTRZ_L_D, fd, fj) }
func (e *Emitter) FRINT_S(fd, fj Reg)     { e.ff(FRINT_S, fd, fj) }
func (e *Emitter) FRINT_D(fd, fj Reg)     { e.ff(FRINT_D, fd, fj) }

// FCMP_COND_S sets cd to the result of comparing fj and fk under cond.
func (e *Emitter) FCMP_COND_S(cd CFR, fj, fk Reg, cond Fcond) {
	e.requireFPU(FCMP_COND_S)
	e.write32(FCMP_COND_S, EncodeCdFjFkFcond(FCMP_COND_S, cd, fj, fk, cond))
}

func (e *Emitter) FCMP_COND_D(cd CFR, fj, fk Reg, cond Fcond) {
	e.requireFPU(FCMP_COND_D)
	e.write32(FCMP_COND_D, EncodeCdFjFkFcond(FCMP_COND_D, cd, fj, fk, cond))
}

// FSEL picks fk when ca is set, else fj.
func (e *Emitter) FSEL(fd, fj, fk Reg, ca CFR) {
	e.requireFPU(FSEL)
	e.write32(FSEL, EncodeFdFjFkCa(FSEL, fd, fj, fk, ca))
}

func (e *Emitter) MOVGR2FR_W(fd, rj Reg) {
	e.requireFPU(MOVGR2FR_W)
	e.write32(MOVGR2FR_W, EncodeFdJ(MOVGR2FR_W, fd, rj))
}

func (e *Emitter) MOVGR2FR_D(fd, rj Reg) {
	e.requireFPU(MOVGR2FR_D)
	e.write32(MOVGR2FR_D, EncodeFdJ(MOVGR2FR_D, fd, rj))
}

func (e *Emitter) MOVGR2FRH_W(fd, rj Reg) {
	e.requireFPU(MOVGR2FRH_W)
	e.write32(MOVGR2FRH_W, EncodeFdJ(MOVGR2FRH_W, fd, rj))
}

func (e *Emitter) MOVFR2GR_S(rd, fj Reg) {
	e.requireFPU(MOVFR2GR_S)
	e.requireNotZero(MOVFR2GR_S, rd)
	e.write32(MOVFR2GR_S, EncodeDFj(MOVFR2GR_S, rd, fj))
}

func (e *Emitter) MOVFR2GR_D(rd, fj Reg) {
	e.requireFPU(MOVFR2GR_D)
	e.requireNotZero(MOVFR2GR_D, rd)
	e.write32(MOVFR2GR_D, EncodeDFj(MOVFR2GR_D, rd, fj))
}

func (e *Emitter) MOVGR2FCSR(fcsr FCSR, rj Reg) {
	e.requireFPU(MOVGR2FCSR)
	e.write32(MOVGR2FCSR, EncodeJUd5(MOVGR2FCSR, fcsr, rj))
}

func (e *Emitter) MOVFCSR2GR(rd Reg, fcsr FCSR) {
	e.requireFPU(MOVFCSR2GR)
	e.requireNotZero(MOVFCSR2GR, rd)
	e.write32(MOVFCSR2GR, EncodeDUj5(MOVFCSR2GR, rd, fcsr))
}

func (e *Emitter) MOVFR2CF(cd CFR, fj Reg) {
	e.requireFPU(MOVFR2CF)
	e.write32(MOVFR2CF, EncodeCdFj(MOVFR2CF, cd, fj))
}

func (e *Emitter) MOVCF2FR(fd Reg, cj CFR) {
	e.requireFPU(MOVCF2FR)
	e.write32(MOVCF2FR, EncodeFdCj(MOVCF2FR, fd, cj))
}

func (e *Emitter) MOVGR2CF(cd CFR, rj Reg) {
	e.requireFPU(MOVGR2CF)
	e.write32(MOVGR2CF, EncodeCdJ(MOVGR2CF, cd, rj))
}

func (e *Emitter) MOVCF2GR(rd Reg, cj CFR) {
	e.requireFPU(MOVCF2GR)
	e.requireNotZero(MOVCF2GR, rd)
	e.write32(MOVCF2GR, EncodeDCj(MOVCF2GR, rd, cj))
}

func (e *Emitter) fmem(in Inst, fd, rj Reg, si12 int32) {
	e.requireFPU(in)
	e.write32(in, EncodeFdJSk12(in, fd, rj, si12))
}

func (e *Emitter) fmemx(in Inst, fd, rj, rk Reg) {
	e.requireFPU(in)
	e.write32(in, EncodeFdJK(in, fd, rj, rk))
}

func (e *Emitter) FLD_S(fd, rj Reg, si12 int32) { e.fmem(FLD_S, fd, rj, si12) }
func (e *Emitter) FLD_D(fd, rj Reg, si12 int32) { e.fmem(FLD_D, fd, rj, si12) }
func (e *Emitter) FST_S(fd, rj Reg, si12 int32) { e.fmem(FST_S, fd, rj, si12) }
func (e *Emitter) FST_D(fd, rj Reg, si12 int32) { e.fmem(FST_D, fd, rj, si12) }
func (e *Emitter) FLDX_S(fd, rj, rk Reg)        { e.fmemx(FLDX_S, fd, rj, rk) }
func (e *Emitter) FLDX_D(fd, rj, rk Reg)        { e.fmemx(FLDX_D, fd, rj, rk) }
func (e *Emitter) FSTX_S(fd, rj, rk Reg)        { e.fmemx(FSTX_S, fd, rj, rk) }
func (e *Emitter) FSTX_D(fd, rj, rk Reg)        { e.fmemx(FSTX_D, fd, rj, rk) }
