package loongarch

import "github.com/colorfulnotion/jit/emitter"

func (e *Emitter) NOP()              { e.ANDI(ZERO, ZERO, 0) }
func (e *Emitter) MOVE(rd, rj Reg)   { e.OR(rd, rj, ZERO) }
func (e *Emitter) NOT(rd, rj Reg)    { e.NOR(rd, rj, ZERO) }
func (e *Emitter) NEG_D(rd, rj Reg)  { e.SUB_D(rd, ZERO, rj) }
func (e *Emitter) SEXT_W(rd, rj Reg) { e.ADDI_W(rd, rj, 0) }
func (e *Emitter) ZEXT_W(rd, rj Reg) { e.BSTRPICK_D(rd, rj, 31, 0) }
func (e *Emitter) JR(rj Reg)         { e.JIRL(ZERO, rj, 0) }
func (e *Emitter) RET()              { e.JIRL(ZERO, RA, 0) }

func (e *Emitter) JFixup() emitter.FixupBranch { return e.BFixup() }

// QuickJump jumps to dst linking into rd (zero or ra). Out of B range it
// builds the target in scratch, pc-relative when within +-128GiB.
func (e *Emitter) QuickJump(scratch, rd Reg, dst uintptr) {
	if e.inRange(KindJ, dst) {
		switch rd {
		case ZERO:
			e.B(dst)
			return
		case RA:
			e.BL(dst)
			return
		}
	}
	delta := int64(dst) - int64(e.CodePointer())
	lower := emitter.SignReduce64(delta, 18)
	// Near the top of the range the rounded high part spills past si20.
	if hi := (delta - lower) >> 18; emitter.FitsSigned(hi, 20) {
		e.PCADDU18I(scratch, int32(hi))
	} else {
		lower = emitter.SignReduce64(int64(dst), 18)
		e.LI(scratch, int64(dst)-lower)
	}
	e.JIRL(rd, scratch, int32(lower))
}

// QuickCallFunction calls fn, linking into ra.
func (e *Emitter) QuickCallFunction(fn uintptr, scratch Reg) { e.QuickJump(scratch, RA, fn) }
