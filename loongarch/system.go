package loongarch

func (e *Emitter) SYSCALL(code uint32) { e.write32(SYSCALL, EncodeUd15(SYSCALL, code)) }
func (e *Emitter) BREAK(code uint32)   { e.write32(BREAK, EncodeUd15(BREAK, code)) }

// DBAR 0 is a full memory barrier; IBAR 0 orders instruction fetch after
// preceding stores.
func (e *Emitter) DBAR(hint uint32) { e.write32(DBAR, EncodeUd15(DBAR, hint)) }
func (e *Emitter) IBAR(hint uint32) { e.write32(IBAR, EncodeUd15(IBAR, hint)) }

// ASRTLE_D traps unless rj <= rk.
func (e *Emitter) ASRTLE_D(rj, rk Reg) { e.write32(ASRTLE_D, EncodeJK(ASRTLE_D, rj, rk)) }
func (e *Emitter) ASRTGT_D(rj, rk Reg) { e.write32(ASRTGT_D, EncodeJK(ASRTGT_D, rj, rk)) }

// RDTIME* write the counter to rd and the counter id to rj.
func (e *Emitter) RDTIMEL_W(rd, rj Reg) { e.write32(RDTIMEL_W, EncodeDJ(RDTIMEL_W, rd, rj)) }
func (e *Emitter) RDTIMEH_W(rd, rj Reg) { e.write32(RDTIMEH_W, EncodeDJ(RDTIMEH_W, rd, rj)) }
func (e *Emitter) RDTIME_D(rd, rj Reg)  { e.write32(RDTIME_D, EncodeDJ(RDTIME_D, rd, rj)) }

func (e *Emitter) CPUCFG(rd, rj Reg) { e.rr(CPUCFG, rd, rj) }
