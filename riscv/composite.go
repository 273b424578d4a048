package riscv

import "github.com/colorfulnotion/jit/emitter"

// Standard pseudo-instructions.

func (e *Emitter) NOP()                      { e.ADDI(ZERO, ZERO, 0) }
func (e *Emitter) MV(rd, rs1 Reg)            { e.ADDI(rd, rs1, 0) }
func (e *Emitter) NOT(rd, rs1 Reg)           { e.XORI(rd, rs1, -1) }
func (e *Emitter) NEG(rd, rs1 Reg)           { e.SUB(rd, ZERO, rs1) }
func (e *Emitter) NEGW(rd, rs1 Reg)          { e.SUBW(rd, ZERO, rs1) }
func (e *Emitter) SEXT_W(rd, rs1 Reg)        { e.ADDIW(rd, rs1, 0) }
func (e *Emitter) SEQZ(rd, rs1 Reg)          { e.SLTIU(rd, rs1, 1) }
func (e *Emitter) SNEZ(rd, rs1 Reg)          { e.SLTU(rd, ZERO, rs1) }
func (e *Emitter) SLTZ(rd, rs1 Reg)          { e.SLT(rd, rs1, ZERO) }
func (e *Emitter) SGTZ(rd, rs1 Reg)          { e.SLT(rd, ZERO, rs1) }
func (e *Emitter) J(dst uintptr)             { e.JAL(ZERO, dst) }
func (e *Emitter) JR(rs1 Reg)                { e.JALR(ZERO, rs1, 0) }
func (e *Emitter) RET()                      { e.JALR(ZERO, RA, 0) }
func (e *Emitter) BEQZ(rs1 Reg, dst uintptr) { e.BEQ(rs1, ZERO, dst) }
func (e *Emitter) BNEZ(rs1 Reg, dst uintptr) { e.BNE(rs1, ZERO, dst) }

func (e *Emitter) JFixup() emitter.FixupBranch { return e.JALFixup(ZERO) }

func (e *Emitter) FMV(bits int, rd, rs Reg)  { e.FSGNJ(bits, rd, rs, rs) }
func (e *Emitter) FNEG(bits int, rd, rs Reg) { e.FSGNJN(bits, rd, rs, rs) }
func (e *Emitter) FABS(bits int, rd, rs Reg) { e.FSGNJX(bits, rd, rs, rs) }

// QuickJAL jumps to dst linking into rd. Out of JAL range it loads the
// target into scratch and uses JALR, preferring a pc-relative AUIPC.
func (e *Emitter) QuickJAL(scratch, rd Reg, dst uintptr) {
	if e.inRange(KindJ, dst) {
		e.JAL(rd, dst)
		return
	}
	pc := int64(e.CodePointer())
	delta := int64(dst) - pc
	var lower int32
	if delta >= -0x100000000 && delta < 0x100000000 {
		lower = int32(emitter.SignReduce64(delta, 12))
		upper := ((delta - int64(lower)) >> 12) << 12
		e.LI(scratch, pc+upper)
	} else {
		lower = int32(emitter.SignReduce64(int64(dst), 12))
		temp := rd
		if rd == scratch {
			temp = ZERO
		}
		e.LIWithTemp(scratch, int64(dst)-int64(lower), temp)
	}
	e.JALR(rd, scratch, lower)
}

// QuickJ is an unlinked QuickJAL.
func (e *Emitter) QuickJ(scratch Reg, dst uintptr) { e.QuickJAL(scratch, ZERO, dst) }

// QuickCallFunction calls fn, linking into ra.
func (e *Emitter) QuickCallFunction(fn uintptr, scratch Reg) { e.QuickJAL(scratch, RA, fn) }
