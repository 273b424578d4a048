package riscv

import (
	"fmt"
	"math/bits"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/colorfulnotion/jit/log"
	"golang.org/x/exp/constraints"
)

// LoadConst loads any integer or float constant into rd. Floats load their
// IEEE bit pattern.
func LoadConst[T constraints.Integer | constraints.Float](e *Emitter, rd Reg, v T) {
	e.LI(rd, emitter.ImmFromValue(v))
}

// LI loads v into rd with the shortest sequence it knows.
func (e *Emitter) LI(rd Reg, v int64) { e.LIWithTemp(rd, v, ZERO) }

// LIWithTemp is LI allowed to clobber temp for 64-bit values.
func (e *Emitter) LIWithTemp(rd Reg, v int64, temp Reg) {
	if rd == ZERO {
		jiterrors.Failf("li", "rd", jiterrors.ErrEHintWrite, "li to zero")
	}
	e.SetRegToImmediate(rd, uint64(v), temp)
}

func (e *Emitter) SetRegToImmediate(rd Reg, value uint64, temp Reg) {
	requireClass(Inst{Name: "li"}, "rd", rd, ClassGPR)
	requireClass(Inst{Name: "li"}, "temp", temp, ClassGPR)
	if rd == temp {
		jiterrors.Failf("li", "temp", jiterrors.ErrEOperandConstraint, "temp cannot be rd")
	}
	v := int64(value)
	if !e.caps.RV64 {
		if !emitter.FitsSigned(v, 32) && value>>32 != 0 {
			jiterrors.Failf("li", "imm", jiterrors.ErrRImmRange, "%#x needs 64 bits on RV32", value)
		}
		v = int64(int32(v))
	}
	start := e.Offset()
	tier := e.materialize(rd, v, temp)
	if log.ModuleEnabled(log.ImmMonitoring) {
		log.Debug(log.ImmMonitoring, "li", "rd", rd.String(), "value", fmt.Sprintf("%#x", value), "tier", tier, "bytes", e.Offset()-start)
	}
}

// Materializer tiers, in the order they are tried.
const (
	TierADDI     = "addi"
	TierLUI      = "lui"
	TierAUIPC    = "auipc"
	TierShifted  = "shifted"
	TierUnsigned = "unsigned32"
	TierTemp     = "temp"
	TierLadder   = "ladder"
)

func (e *Emitter) materialize(rd Reg, v int64, temp Reg) string {
	if emitter.FitsSigned(v, 12) {
		e.ADDI(rd, ZERO, int32(v))
		return TierADDI
	}
	if e.useUpper(rd, v, false) {
		return TierLUI
	}
	pc := int64(e.CodePointer())
	if e.useUpper(rd, v-pc, true) {
		return TierAUIPC
	}
	for start := uint32(1); start <= 32; start++ {
		simm32 := int32(v >> start)
		if int64(simm32)<<start == v {
			e.LI(rd, int64(simm32))
			e.SLLI(rd, rd, start)
			return TierShifted
		}
	}
	if v>>32 == 0 {
		e.LI(rd, int64(int32(v)))
		e.ZEXT_W(rd, rd)
		return TierUnsigned
	}
	if temp != ZERO {
		lower := int32(v)
		upper := int32((v - int64(lower)) >> 32)
		e.LI(rd, int64(upper))
		e.SLLI(rd, rd, 32)
		e.LI(temp, int64(lower))
		e.ADD(rd, rd, temp)
		return TierTemp
	}

	e.LI(rd, v>>32)
	remaining := uint32(v)
	shifted := uint32(0)
	for remaining != 0 {
		// 11-bit chunks never need sign compensation.
		targetShift := min(uint32(bits.LeadingZeros32(remaining))+11, 32)
		sourceShift := 32 - targetShift
		chunk := (remaining >> sourceShift) & 0x7FF
		e.SLLI(rd, rd, targetShift-shifted)
		e.ADDI(rd, rd, int32(chunk))
		shifted = targetShift
		remaining &^= chunk << sourceShift
	}
	if shifted < 32 {
		e.SLLI(rd, rd, 32-shifted)
	}
	return TierLadder
}

// useUpper emits LUI (or AUIPC when pcRel) followed by the low 12 bits when
// v fits 32 signed bits. AUIPC cannot produce a positive value whose upper
// part has bit 31 set, so that case is declined.
func (e *Emitter) useUpper(rd Reg, v int64, pcRel bool) bool {
	if !emitter.FitsSigned(v, 32) {
		return false
	}
	lower := int32(emitter.SignReduce64(v, 12))
	upper := int32(((v - int64(lower)) >> 12) << 12)
	clearUpper := e.caps.RV64 && v >= 0 && upper < 0
	if clearUpper && pcRel {
		return false
	}
	if pcRel {
		e.AUIPC(rd, upper)
	} else {
		e.LUI(rd, upper)
	}
	switch {
	case clearUpper:
		e.ADDIW(rd, rd, lower)
	case lower != 0:
		e.ADDI(rd, rd, lower)
	}
	return true
}
