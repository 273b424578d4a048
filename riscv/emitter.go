package riscv

import (
	"fmt"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/colorfulnotion/jit/log"
)

// Branch kinds. Displacements are in bytes.
const (
	KindB emitter.Kind = iota
	KindJ
	KindCB
	KindCJ
)

var branchKinds = []emitter.BranchKind{
	KindB:  {Name: "B", Width: 13, Align: 2},
	KindJ:  {Name: "J", Width: 21, Align: 2},
	KindCB: {Name: "CB", Width: 9, Align: 2},
	KindCJ: {Name: "CJ", Width: 12, Align: 2},
}

// BranchKinds returns the displacement table used by the emitter.
func BranchKinds() []emitter.BranchKind { return branchKinds }

// Emitter writes RISC-V machine code into a Region. It is not safe for
// concurrent use; emit disjoint regions from separate Emitters instead.
type Emitter struct {
	emitter.Cursor
	caps         Capabilities
	autoCompress bool
	fixups       *emitter.Fixups
}

func NewEmitter(region emitter.Region, caps Capabilities) *Emitter {
	e := &Emitter{
		caps:   caps,
		fixups: emitter.NewFixups(branchKinds),
	}
	e.Init(region)
	return e
}

func (e *Emitter) Capabilities() Capabilities { return e.caps }

// SetAutoCompress enables substitution of 16-bit encodings. It has no
// effect unless the target has the C extension.
func (e *Emitter) SetAutoCompress(on bool) { e.autoCompress = on }

func (e *Emitter) AutoCompress() bool { return e.autoCompress && e.caps.C }

func (e *Emitter) write32(in Inst, w uint32) {
	if log.ModuleEnabled(log.RiscVEmit) {
		log.Trace(log.RiscVEmit, in.Name, "addr", fmt.Sprintf("%#x", e.CodePointer()), "word", fmt.Sprintf("%08x", w))
	}
	e.Write32(w)
}

func (e *Emitter) write16(in Inst, w uint16) {
	if !e.caps.C {
		jiterrors.Failf(in.Name, "", jiterrors.ErrUUnsupported, "compressed instructions need C")
	}
	if log.ModuleEnabled(log.RiscVEmit) {
		log.Trace(log.RiscVEmit, in.Name, "addr", fmt.Sprintf("%#x", e.CodePointer()), "word", fmt.Sprintf("%04x", w))
	}
	e.Write16(w)
}

func (e *Emitter) require(op string, ok bool, ext string) {
	if !ok {
		jiterrors.Failf(op, "", jiterrors.ErrUUnsupported, "needs %s on %s", ext, e.caps)
	}
}

func (e *Emitter) requireRV64(in Inst) { e.require(in.Name, e.caps.RV64, "RV64") }

func (e *Emitter) requireNotZero(in Inst, rd Reg) {
	if rd == ZERO {
		jiterrors.Failf(in.Name, "rd", jiterrors.ErrEHintWrite, "write to zero is a hint")
	}
}

// instAlign is the alignment every instruction start must have.
func (e *Emitter) instAlign() int64 {
	if e.caps.C {
		return 2
	}
	return 4
}

func (e *Emitter) inRange(k emitter.Kind, dst uintptr) bool {
	bk := branchKinds[k]
	disp := int64(dst) - int64(e.CodePointer())
	return int64(dst)%e.instAlign() == 0 && bk.Aligned(disp) && bk.InRange(disp)
}

func (e *Emitter) displacement(in Inst, k emitter.Kind, dst uintptr) int32 {
	return int32(branchKinds[k].Displacement(in.Name, e.CodePointer(), dst, e.instAlign()))
}

// ReserveCodeSpace fills n bytes with breakpoints and returns where they start.
func (e *Emitter) ReserveCodeSpace(n int) uintptr {
	start := e.CodePointer()
	if n&1 != 0 || (n&3 != 0 && !e.caps.C) {
		jiterrors.Failf("reserve", "bytes", jiterrors.ErrRImmAlign, "%d bytes", n)
	}
	for i := 0; i < n/4; i++ {
		e.EBREAK()
	}
	if n&2 != 0 {
		e.C_EBREAK()
	}
	return start
}

func (e *Emitter) AlignCode16() uintptr {
	return e.Align(16, func(n int) { e.ReserveCodeSpace(n) })
}

func (e *Emitter) AlignCodePage() uintptr {
	return e.Align(e.Region().PageSize(), func(n int) { e.ReserveCodeSpace(n) })
}

// SetJumpTarget patches a pending branch to reach target.
func (e *Emitter) SetJumpTarget(fb emitter.FixupBranch, target uintptr) {
	addr := fb.Addr()
	switch fb.Kind() {
	case KindB:
		disp := e.fixups.Resolve("B", fb, target, e.instAlign())
		e.PatchWord32(addr, e.Word32At(addr)&0x01FFF07F|bImm(disp))
	case KindJ:
		disp := e.fixups.Resolve("J", fb, target, e.instAlign())
		e.PatchWord32(addr, e.Word32At(addr)&0x00000FFF|jImm(disp))
	case KindCB:
		disp := e.fixups.Resolve("CB", fb, target, e.instAlign())
		e.PatchWord16(addr, e.Word16At(addr)&0xE383|cbImm(disp))
	case KindCJ:
		disp := e.fixups.Resolve("CJ", fb, target, e.instAlign())
		e.PatchWord16(addr, e.Word16At(addr)&0xE003|cjImm(disp))
	default:
		jiterrors.Failf("fixup", "kind", jiterrors.ErrFFixupResolved, "unknown kind %d", fb.Kind())
	}
}

// SetJumpTargetHere patches fb to reach the current code pointer.
func (e *Emitter) SetJumpTargetHere(fb emitter.FixupBranch) {
	e.SetJumpTarget(fb, e.CodePointer())
}

// DiscardFixup drops a pending fixup, leaving its branch pointing at itself.
func (e *Emitter) DiscardFixup(fb emitter.FixupBranch) { e.fixups.Discard(fb) }

func (e *Emitter) PendingFixups() []emitter.FixupBranch { return e.fixups.Pending() }

// CheckFixups reports every fixup that was opened and never resolved.
func (e *Emitter) CheckFixups() error { return e.fixups.Check() }

// Release ends a compilation unit; unresolved fixups are a bug.
func (e *Emitter) Release() {
	if err := e.fixups.Check(); err != nil {
		panic(err)
	}
}

func (e *Emitter) openFixup(k emitter.Kind) emitter.FixupBranch {
	return e.fixups.Open(e.CodePointer(), k)
}

// fixup32 writes an already encoded branch word and opens its fixup.
func (e *Emitter) fixup32(in Inst, k emitter.Kind, w uint32) emitter.FixupBranch {
	fb := e.openFixup(k)
	e.write32(in, w)
	return fb
}
