package loongarch

func (e *Emitter) load(in Inst, rd, rj Reg, si12 int32) {
	e.write32(in, EncodeDJSk12(in, rd, rj, si12))
}

func (e *Emitter) store(in Inst, rd, rj Reg, si12 int32) {
	e.write32(in, EncodeDJSk12(in, rd, rj, si12))
}

func (e *Emitter) LD_B(rd, rj Reg, si12 int32)  { e.load(LD_B, rd, rj, si12) }
func (e *Emitter) LD_H(rd, rj Reg, si12 int32)  { e.load(LD_H, rd, rj, si12) }
func (e *Emitter) LD_W(rd, rj Reg, si12 int32)  { e.load(LD_W, rd, rj, si12) }
func (e *Emitter) LD_D(rd, rj Reg, si12 int32)  { e.load(LD_D, rd, rj, si12) }
func (e *Emitter) LD_BU(rd, rj Reg, si12 int32) { e.load(LD_BU, rd, rj, si12) }
func (e *Emitter) LD_HU(rd, rj Reg, si12 int32) { e.load(LD_HU, rd, rj, si12) }
func (e *Emitter) LD_WU(rd, rj Reg, si12 int32) { e.load(LD_WU, rd, rj, si12) }

func (e *Emitter) ST_B(rd, rj Reg, si12 int32) { e.store(ST_B, rd, rj, si12) }
func (e *Emitter) ST_H(rd, rj Reg, si12 int32) { e.store(ST_H, rd, rj, si12) }
func (e *Emitter) ST_W(rd, rj Reg, si12 int32) { e.store(ST_W, rd, rj, si12) }
func (e *Emitter) ST_D(rd, rj Reg, si12 int32) { e.store(ST_D, rd, rj, si12) }

// Indexed forms address rj+rk.
func (e *Emitter) LDX_B(rd, rj, rk Reg)  { e.write32(LDX_B, EncodeDJK(LDX_B, rd, rj, rk)) }
func (e *Emitter) LDX_H(rd, rj, rk Reg)  { e.write32(LDX_H, EncodeDJK(LDX_H, rd, rj, rk)) }
func (e *Emitter) LDX_W(rd, rj, rk Reg)  { e.write32(LDX_W, EncodeDJK(LDX_W, rd, rj, rk)) }
func (e *Emitter) LDX_D(rd, rj, rk Reg)  { e.write32(LDX_D, EncodeDJK(LDX_D, rd, rj, rk)) }
func (e *Emitter) LDX_BU(rd, rj, rk Reg) { e.write32(LDX_BU, EncodeDJK(LDX_BU, rd, rj, rk)) }
func (e *Emitter) LDX_HU(rd, rj, rk Reg) { e.write32(LDX_HU, EncodeDJK(LDX_HU, rd, rj, rk)) }
func (e *Emitter) LDX_WU(rd, rj, rk Reg) { e.write32(LDX_WU, EncodeDJK(LDX_WU, rd, rj, rk)) }
func (e *Emitter) STX_B(rd, rj, rk Reg)  { e.write32(STX_B, EncodeDJK(STX_B, rd, rj, rk)) }
func (e *Emitter) STX_H(rd, rj, rk Reg)  { e.write32(STX_H, EncodeDJK(STX_H, rd, rj, rk)) }
func (e *Emitter) STX_W(rd, rj, rk Reg)  { e.write32(STX_W, EncodeDJK(STX_W, rd, rj, rk)) }
func (e *Emitter) STX_D(rd, rj, rk Reg)  { e.write32(STX_D, EncodeDJK(STX_D, rd, rj, rk)) }

// Pointer forms take a byte offset that must be a multiple of 4 within 16
// signed bits.
func (e *Emitter) LDPTR_W(rd, rj Reg, offs int32) {
	e.write32(LDPTR_W, EncodeDJSk14ps2(LDPTR_W, rd, rj, offs))
}
func (e *Emitter) LDPTR_D(rd, rj Reg, offs int32) {
	e.write32(LDPTR_D, EncodeDJSk14ps2(LDPTR_D, rd, rj, offs))
}
func (e *Emitter) STPTR_W(rd, rj Reg, offs int32) {
	e.write32(STPTR_W, EncodeDJSk14ps2(STPTR_W, rd, rj, offs))
}
func (e *Emitter) STPTR_D(rd, rj Reg, offs int32) {
	e.write32(STPTR_D, EncodeDJSk14ps2(STPTR_D, rd, rj, offs))
}

// LL_W and LL_D open a reservation at rj+offs.
func (e *Emitter) LL_W(rd, rj Reg, offs int32) {
	e.requireNotZero(LL_W, rd)
	e.write32(LL_W, EncodeDJSk14ps2(LL_W, rd, rj, offs))
}

func (e *Emitter) LL_D(rd, rj Reg, offs int32) {
	e.requireNotZero(LL_D, rd)
	e.write32(LL_D, EncodeDJSk14ps2(LL_D, rd, rj, offs))
}

// SC_W and SC_D store rd and overwrite it with 1 on success, 0 on failure.
func (e *Emitter) SC_W(rd, rj Reg, offs int32) {
	e.requireNotZero(SC_W, rd)
	e.write32(SC_W, EncodeDJSk14ps2(SC_W, rd, rj, offs))
}

func (e *Emitter) SC_D(rd, rj Reg, offs int32) {
	e.requireNotZero(SC_D, rd)
	e.write32(SC_D, EncodeDJSk14ps2(SC_D, rd, rj, offs))
}

// Prefetch hints: 0 load, 8 store.
const (
	PrefetchLoad  uint32 = 0
	PrefetchStore uint32 = 8
)

func (e *Emitter) PRELD(hint uint32, rj Reg, si12 int32) {
	e.write32(PRELD, EncodeUd5JSk12(PRELD, hint, rj, si12))
}

func (e *Emitter) PRELDX(hint uint32, rj, rk Reg) {
	e.write32(PRELDX, EncodeUd5JK(PRELDX, hint, rj, rk))
}
