package loongarch

import (
	"github.com/colorfulnotion/jit/emitter"
)

func (e *Emitter) branch(in Inst, rj, rd Reg, dst uintptr) {
	e.write32(in, EncodeJDSk16ps2(in, rj, rd, e.displacement(in, KindB, dst)))
}

func (e *Emitter) branchFixup(in Inst, rj, rd Reg) emitter.FixupBranch {
	return e.fixup32(in, KindB, EncodeJDSk16ps2(in, rj, rd, 0))
}

func (e *Emitter) BEQ(rj, rd Reg, dst uintptr)  { e.branch(BEQ, rj, rd, dst) }
func (e *Emitter) BNE(rj, rd Reg, dst uintptr)  { e.branch(BNE, rj, rd, dst) }
func (e *Emitter) BLT(rj, rd Reg, dst uintptr)  { e.branch(BLT, rj, rd, dst) }
func (e *Emitter) BGE(rj, rd Reg, dst uintptr)  { e.branch(BGE, rj, rd, dst) }
func (e *Emitter) BLTU(rj, rd Reg, dst uintptr) { e.branch(BLTU, rj, rd, dst) }
func (e *Emitter) BGEU(rj, rd Reg, dst uintptr) { e.branch(BGEU, rj, rd, dst) }

func (e *Emitter) BEQFixup(rj, rd Reg) emitter.FixupBranch  { return e.branchFixup(BEQ, rj, rd) }
func (e *Emitter) BNEFixup(rj, rd Reg) emitter.FixupBranch  { return e.branchFixup(BNE, rj, rd) }
func (e *Emitter) BLTFixup(rj, rd Reg) emitter.FixupBranch  { return e.branchFixup(BLT, rj, rd) }
func (e *Emitter) BGEFixup(rj, rd Reg) emitter.FixupBranch  { return e.branchFixup(BGE, rj, rd) }
func (e *Emitter) BLTUFixup(rj, rd Reg) emitter.FixupBranch { return e.branchFixup(BLTU, rj, rd) }
func (e *Emitter) BGEUFixup(rj, rd Reg) emitter.FixupBranch { return e.branchFixup(BGEU, rj, rd) }

func (e *Emitter) BEQZ(rj Reg, dst uintptr) {
	e.write32(BEQZ, EncodeJSd5k16ps2(BEQZ, rj, e.displacement(BEQZ, KindBZ, dst)))
}

func (e *Emitter) BNEZ(rj Reg, dst uintptr) {
	e.write32(BNEZ, EncodeJSd5k16ps2(BNEZ, rj, e.displacement(BNEZ, KindBZ, dst)))
}

func (e *Emitter) BEQZFixup(rj Reg) emitter.FixupBranch {
	return e.fixup32(BEQZ, KindBZ, EncodeJSd5k16ps2(BEQZ, rj, 0))
}

func (e *Emitter) BNEZFixup(rj Reg) emitter.FixupBranch {
	return e.fixup32(BNEZ, KindBZ, EncodeJSd5k16ps2(BNEZ, rj, 0))
}

func (e *Emitter) BCEQZ(cj CFR, dst uintptr) {
	e.require(BCEQZ.Name, e.caps.FPU, "FPU")
	e.write32(BCEQZ, EncodeCjSd5k16ps2(BCEQZ, cj, e.displacement(BCEQZ, KindCBZ, dst)))
}

func (e *Emitter) BCNEZ(cj CFR, dst uintptr) {
	e.require(BCNEZ.Name, e.caps.FPU, "FPU")
	e.write32(BCNEZ, EncodeCjSd5k16ps2(BCNEZ, cj, e.displacement(BCNEZ, KindCBZ, dst)))
}

func (e *Emitter) BCEQZFixup(cj CFR) emitter.FixupBranch {
	e.require(BCEQZ.Name, e.caps.FPU, "FPU")
	return e.fixup32(BCEQZ, KindCBZ, EncodeCjSd5k16ps2(BCEQZ, cj, 0))
}

func (e *Emitter) BCNEZFixup(cj CFR) emitter.FixupBranch {
	e.require(BCNEZ.Name, e.caps.FPU, "FPU")
	return e.fixup32(BCNEZ, KindCBZ, EncodeCjSd5k16ps2(BCNEZ, cj, 0))
}

// B jumps to dst, within +-128MiB.
func (e *Emitter) B(dst uintptr) {
	e.write32(B, EncodeSd10k16ps2(B, e.displacement(B, KindJ, dst)))
}

// BL calls dst, linking into ra.
func (e *Emitter) BL(dst uintptr) {
	e.write32(BL, EncodeSd10k16ps2(BL, e.displacement(BL, KindJ, dst)))
}

func (e *Emitter) BFixup() emitter.FixupBranch {
	return e.fixup32(B, KindJ, EncodeSd10k16ps2(B, 0))
}

func (e *Emitter) BLFixup() emitter.FixupBranch {
	return e.fixup32(BL, KindJ, EncodeSd10k16ps2(BL, 0))
}

// JIRL jumps to rj+offs and links into rd. offs is in bytes.
func (e *Emitter) JIRL(rd, rj Reg, offs int32) {
	e.write32(JIRL, EncodeDJSk16ps2(JIRL, rd, rj, offs))
}

// Swapped-operand pseudo branches.
func (e *Emitter) BGT(rj, rd Reg, dst uintptr)  { e.BLT(rd, rj, dst) }
func (e *Emitter) BLE(rj, rd Reg, dst uintptr)  { e.BGE(rd, rj, dst) }
func (e *Emitter) BGTU(rj, rd Reg, dst uintptr) { e.BLTU(rd, rj, dst) }
func (e *Emitter) BLEU(rj, rd Reg, dst uintptr) { e.BGEU(rd, rj, dst) }
