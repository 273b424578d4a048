package loongarch

import (
	"fmt"

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

// Materializer tiers, named after the last instruction of the sequence.
const (
	TierADDI  = "addi.d"
	TierORI   = "ori"
	TierLU12I = "lu12i.w"
	TierLU32I = "lu32i.d"
	TierLU52I = "lu52i.d"
)

// LI loads v into rd in at most four instructions.
func (e *Emitter) LI(rd Reg, v int64) {
	requireClass(Inst{Name: "li"}, "rd", rd, ClassGPR)
	if rd == ZERO {
		jiterrors.Failf("li", "rd", jiterrors.ErrEHintWrite, "li to zero")
	}
	start := e.Offset()
	tier := e.materialize(rd, v)
	if log.ModuleEnabled(log.ImmMonitoring) {
		log.Debug(log.ImmMonitoring, "li", "rd", rd.String(), "value", fmt.Sprintf("%#x", uint64(v)), "tier", tier, "bytes", e.Offset()-start)
	}
}

func (e *Emitter) materialize(rd Reg, v int64) string {
	switch {
	case emitter.FitsSigned(v, 12):
		e.ADDI_D(rd, ZERO, int32(v))
		return TierADDI
	case v >= 0 && v < 0x1000:
		e.ORI(rd, ZERO, uint32(v))
		return TierORI
	case emitter.SignReduce64(v, 52) == 0:
		e.LU52I_D(rd, ZERO, int32(v>>52))
		return TierLU52I
	}

	low := int64(int32(v))
	switch {
	case emitter.FitsSigned(low, 12):
		e.ADDI_D(rd, ZERO, int32(low))
	case low >= 0 && low < 0x1000:
		e.ORI(rd, ZERO, uint32(low))
	default:
		e.LU12I_W(rd, int32(low>>12))
		if low&0xFFF != 0 {
			e.ORI(rd, rd, uint32(low&0xFFF))
		}
	}
	if low == v {
		return TierLU12I
	}
	tier := TierLU12I
	if emitter.SignReduce64(v, 52) != low {
		e.LU32I_D(rd, int32(emitter.SignReduce64(v>>32, 20)))
		tier = TierLU32I
	}
	if emitter.SignReduce64(v, 52) != v {
		e.LU52I_D(rd, rd, int32(emitter.SignReduce64(v>>52, 12)))
		tier = TierLU52I
	}
	return tier
}
