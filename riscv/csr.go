package riscv

func (e *Emitter) csr(in Inst, rd Reg, csr CSR, rs1 Reg) {
	e.require(in.Name, e.caps.Zicsr, "Zicsr")
	e.write32(in, EncodeCSR(in, rd, csr, rs1))
}

func (e *Emitter) csri(in Inst, rd Reg, csr CSR, uimm5 uint32) {
	e.require(in.Name, e.caps.Zicsr, "Zicsr")
	e.write32(in, EncodeCSRI(in, rd, csr, uimm5))
}

func (e *Emitter) CSRRW(rd Reg, csr CSR, rs1 Reg)       { e.csr(CSRRW, rd, csr, rs1) }
func (e *Emitter) CSRRS(rd Reg, csr CSR, rs1 Reg)       { e.csr(CSRRS, rd, csr, rs1) }
func (e *Emitter) CSRRC(rd Reg, csr CSR, rs1 Reg)       { e.csr(CSRRC, rd, csr, rs1) }
func (e *Emitter) CSRRWI(rd Reg, csr CSR, uimm5 uint32) { e.csri(CSRRWI, rd, csr, uimm5) }
func (e *Emitter) CSRRSI(rd Reg, csr CSR, uimm5 uint32) { e.csri(CSRRSI, rd, csr, uimm5) }
func (e *Emitter) CSRRCI(rd Reg, csr CSR, uimm5 uint32) { e.csri(CSRRCI, rd, csr, uimm5) }

// Pseudo-instructions over the CSR forms.

func (e *Emitter) CSRR(rd Reg, csr CSR)  { e.CSRRS(rd, csr, ZERO) }
func (e *Emitter) CSRW(csr CSR, rs1 Reg) { e.CSRRW(ZERO, csr, rs1) }
func (e *Emitter) CSRS(csr CSR, rs1 Reg) { e.CSRRS(ZERO, csr, rs1) }
func (e *Emitter) CSRC(csr CSR, rs1 Reg) { e.CSRRC(ZERO, csr, rs1) }

// FRRM reads the dynamic rounding mode; FSRM swaps it.
func (e *Emitter) FRRM(rd Reg)                   { e.CSRR(rd, CSR_FRM) }
func (e *Emitter) FSRM(rd, rs1 Reg)              { e.CSRRW(rd, CSR_FRM, rs1) }
func (e *Emitter) FSRMI(rd Reg, rm RoundingMode) { e.CSRRWI(rd, CSR_FRM, uint32(rm)) }
func (e *Emitter) FRFLAGS(rd Reg)                { e.CSRR(rd, CSR_FFLAGS) }
func (e *Emitter) FSFLAGS(rd, rs1 Reg)           { e.CSRRW(rd, CSR_FFLAGS, rs1) }
func (e *Emitter) FRCSR(rd Reg)                  { e.CSRR(rd, CSR_FCSR) }
func (e *Emitter) FSCSR(rd, rs1 Reg)             { e.CSRRW(rd, CSR_FCSR, rs1) }

func (e *Emitter) RDCYCLE(rd Reg)   { e.CSRR(rd, CSR_CYCLE) }
func (e *Emitter) RDTIME(rd Reg)    { e.CSRR(rd, CSR_TIME) }
func (e *Emitter) RDINSTRET(rd Reg) { e.CSRR(rd, CSR_INSTRET) }
