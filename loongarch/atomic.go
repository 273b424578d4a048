package loongarch

// AM emits any AM* atomic: rd = mem[rj]; mem[rj] = rd op rk. The _DB
// variants carry full barrier semantics.
func (e *Emitter) AM(in Inst, rd, rk, rj Reg) {
	e.require(in.Name, e.caps.LAM, "LAM")
	e.write32(in, EncodeDKJ(in, rd, rk, rj))
}

func (e *Emitter) AMSWAP_W(rd, rk, rj Reg) { e.AM(AMSWAP_W, rd, rk, rj) }
func (e *Emitter) AMSWAP_D(rd, rk, rj Reg) { e.AM(AMSWAP_D, rd, rk, rj) }
func (e *Emitter) AMADD_W(rd, rk, rj Reg)  { e.AM(AMADD_W, rd, rk, rj) }
func (e *Emitter) AMADD_D(rd, rk, rj Reg)  { e.AM(AMADD_D, rd, rk, rj) }
func (e *Emitter) AMAND_W(rd, rk, rj Reg)  { e.AM(AMAND_W, rd, rk, rj) }
func (e *Emitter) AMAND_D(rd, rk, rj Reg)  { e.AM(AMAND_D, rd, rk, rj) }
func (e *Emitter) AMOR_W(rd, rk, rj Reg)   { e.AM(AMOR_W, rd, rk, rj) }
func (e *Emitter) AMOR_D(rd, rk, rj Reg)   { e.AM(AMOR_D, rd, rk, rj) }
func (e *Emitter) AMXOR_W(rd, rk, rj Reg)  { e.AM(AMXOR_W, rd, rk, rj) }
func (e *Emitter) AMXOR_D(rd, rk, rj Reg)  { e.AM(AMXOR_D, rd, rk, rj) }
func (e *Emitter) AMMAX_W(rd, rk, rj Reg)  { e.AM(AMMAX_W, rd, rk, rj) }
func (e *Emitter) AMMAX_D(rd, rk, rj Reg)  { e.AM(AMMAX_D, rd, rk, rj) }
func (e *Emitter) AMMIN_W(rd, rk, rj Reg)  { e.AM(AMMIN_W, rd, rk, rj) }
func (e *Emitter) AMMIN_D(rd, rk, rj Reg)  { e.AM(AMMIN_D, rd, rk, rj) }
func (e *Emitter) AMMAX_WU(rd, rk, rj Reg) { e.AM(AMMAX_WU, rd, rk, rj) }
func (e *Emitter) AMMAX_DU(rd, rk, rj Reg) { e.AM(AMMAX_DU, rd, rk, rj) }
func (e *Emitter) AMMIN_WU(rd, rk, rj Reg) { e.AM(AMMIN_WU, rd, rk, rj) }
func (e *Emitter) AMMIN_DU(rd, rk, rj Reg) { e.AM(AMMIN_DU, rd, rk, rj) }

func (e *Emitter) AMSWAP_DB_W(rd, rk, rj Reg) { e.AM(AMSWAP_DB_W, rd, rk, rj) }
func (e *Emitter) AMSWAP_DB_D(rd, rk, rj Reg) { e.AM(AMSWAP_DB_D, rd, rk, rj) }
func (e *Emitter) AMADD_DB_W(rd, rk, rj Reg)  { e.AM(AMADD_DB_W, rd, rk, rj) }
func (e *Emitter) AMADD_DB_D(rd, rk, rj Reg)  { e.AM(AMADD_DB_D, rd, rk, rj) }
func (e *Emitter) AMAND_DB_W(rd, rk, rj Reg)  { e.AM(AMAND_DB_W, rd, rk, rj) }
func (e *Emitter) AMAND_DB_D(rd, rk, rj Reg)  { e.AM(AMAND_DB_D, rd, rk, rj) }
func (e *Emitter) AMOR_DB_W(rd, rk, rj Reg)   { e.AM(AMOR_DB_W, rd, rk, rj) }
func (e *Emitter) AMOR_DB_D(rd, rk, rj Reg)   { e.AM(AMOR_DB_D, rd, rk, rj) }
func (e *Emitter) AMXOR_DB_W(rd, rk, rj Reg)  { e.AM(AMXOR_DB_W, rd, rk, rj) }
func (e *Emitter) AMXOR_DB_D(rd, rk, rj Reg)  { e.AM(AMXOR_DB_D, rd, rk, rj) }
func (e *Emitter) AMMAX_DB_W(rd, rk, rj Reg)  { e.AM(AMMAX_DB_W, rd, rk, rj) }
func (e *Emitter) AMMAX_DB_D(rd, rk, rj Reg)  { e.AM(AMMAX_DB_D, rd, rk, rj) }
func (e *Emitter) AMMIN_DB_W(rd, rk, rj Reg)  { e.AM(AMMIN_DB_W, rd, rk, rj) }
func (e *Emitter) AMMIN_DB_D(rd, rk, rj Reg)  { e.AM(AMMIN_DB_D, rd, rk, rj) }
func (e *Emitter) AMMAX_DB_WU(rd, rk, rj Reg) { e.AM(AMMAX_DB_WU, rd, rk, rj) }
func (e *Emitter) AMMAX_DB_DU(rd, rk, rj Reg) { e.AM(AMMAX_DB_DU, rd, rk, rj) }
func (e *Emitter) AMMIN_DB_WU(rd, rk, rj Reg) { e.AM(AMMIN_DB_WU, rd, rk, rj) }
func (e *Emitter) AMMIN_DB_DU(rd, rk, rj Reg) { e.AM(AMMIN_DB_DU, rd, rk, rj) }
